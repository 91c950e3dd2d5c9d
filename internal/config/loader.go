package config

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Loader reads TOML configuration files into a registry.
type Loader struct {
	registry *Registry
}

// NewLoader creates a loader that applies values to the registry.
func NewLoader(registry *Registry) *Loader {
	return &Loader{registry: registry}
}

// Load reads and applies configuration from a file. A missing file is
// not an error; the registry keeps its defaults.
func (l *Loader) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return l.apply(path, data)
}

// LoadReader reads and applies configuration from an io.Reader.
func (l *Loader) LoadReader(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	return l.apply("<reader>", data)
}

// apply parses TOML data and stores every known setting it contains.
func (l *Loader) apply(source string, data []byte) error {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing config %s: %w", source, err)
	}

	for path, value := range flatten("", raw) {
		if !l.registry.Has(path) {
			// Unknown keys are tolerated so configs can be shared
			// across versions.
			continue
		}
		if err := l.registry.Set(path, value); err != nil {
			return fmt.Errorf("config %s: %w", source, err)
		}
	}
	return nil
}

// flatten converts a nested TOML map into dot-separated paths.
func flatten(prefix string, m map[string]any) map[string]any {
	result := make(map[string]any)
	for key, value := range m {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok {
			for p, v := range flatten(path, nested) {
				result[p] = v
			}
			continue
		}
		result[path] = value
	}
	return result
}
