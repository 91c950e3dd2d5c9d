package config

import (
	"fmt"
	"sort"
	"sync"
)

// Setting paths used by the displacement engine.
const (
	// SettingMaintainColumn controls whether a chain of vertical moves
	// keeps the column the chain started at.
	SettingMaintainColumn = "move.maintainColumn"

	// SettingWholeLines controls whether multi-line selections move as
	// whole-line blocks on the vertical axis.
	SettingWholeLines = "move.wholeLines"

	// SettingTabWidth is the column width of a tab character.
	SettingTabWidth = "editor.tabWidth"
)

// Registry maintains setting definitions and their current values.
// It provides type-safe access with fallback to registered defaults.
type Registry struct {
	mu       sync.RWMutex
	settings map[string]*Setting
	values   map[string]any
}

// New creates an empty settings registry.
func New() *Registry {
	return &Registry{
		settings: make(map[string]*Setting),
		values:   make(map[string]any),
	}
}

// NewWithDefaults creates a registry with the built-in settings.
func NewWithDefaults() *Registry {
	r := New()
	r.RegisterDefaults()
	return r
}

// RegisterDefaults registers the built-in settings.
func (r *Registry) RegisterDefaults() {
	r.MustRegister(Setting{
		Path:        SettingMaintainColumn,
		Type:        TypeBool,
		Default:     true,
		Description: "Keep the starting column across a chain of vertical moves",
	})
	r.MustRegister(Setting{
		Path:        SettingWholeLines,
		Type:        TypeBool,
		Default:     true,
		Description: "Move multi-line selections as whole-line blocks vertically",
	})
	r.MustRegister(Setting{
		Path:        SettingTabWidth,
		Type:        TypeInt,
		Default:     4,
		Description: "Column width of a tab character",
		Minimum:     intPtr(1),
		Maximum:     intPtr(16),
	})
}

// Register adds a setting definition to the registry.
// Returns an error if a setting with the same path already exists.
func (r *Registry) Register(setting Setting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.settings[setting.Path]; exists {
		return fmt.Errorf("%w: %s", ErrSettingAlreadyRegistered, setting.Path)
	}

	s := setting
	r.settings[setting.Path] = &s
	return nil
}

// MustRegister registers a setting and panics on error.
// Useful for registering built-in settings at init time.
func (r *Registry) MustRegister(setting Setting) {
	if err := r.Register(setting); err != nil {
		panic(err)
	}
}

// Definition returns the setting definition for the given path.
// Returns nil if the setting is not registered.
func (r *Registry) Definition(path string) *Setting {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings[path]
}

// Has checks if a setting is registered.
func (r *Registry) Has(path string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.settings[path]
	return exists
}

// Paths returns all registered setting paths, sorted.
func (r *Registry) Paths() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.settings))
	for path := range r.settings {
		result = append(result, path)
	}
	sort.Strings(result)
	return result
}

// Set validates and stores a value for a registered setting.
func (r *Registry) Set(path string, value any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	setting, ok := r.settings[path]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSettingNotFound, path)
	}
	if err := setting.Validate(value); err != nil {
		return err
	}

	r.values[path] = value
	return nil
}

// Reset removes any stored value, reverting the setting to its default.
func (r *Registry) Reset(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, path)
}

// Get returns the value at the given path, falling back to the default.
func (r *Registry) Get(path string) (any, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if val, ok := r.values[path]; ok {
		return val, nil
	}
	setting, ok := r.settings[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSettingNotFound, path)
	}
	return setting.Default, nil
}

// Bool returns a boolean setting. Unregistered paths return false.
func (r *Registry) Bool(path string) bool {
	val, err := r.Get(path)
	if err != nil {
		return false
	}
	b, _ := val.(bool)
	return b
}

// Int returns an integer setting. Unregistered paths return 0.
func (r *Registry) Int(path string) int {
	val, err := r.Get(path)
	if err != nil {
		return 0
	}
	n, _ := toInt(val)
	return n
}

// String returns a string setting. Unregistered paths return "".
func (r *Registry) String(path string) string {
	val, err := r.Get(path)
	if err != nil {
		return ""
	}
	s, _ := val.(string)
	return s
}
