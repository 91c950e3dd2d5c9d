package config

import "fmt"

// SettingType is the data type of a setting.
type SettingType uint8

const (
	// TypeBool is a boolean setting.
	TypeBool SettingType = iota
	// TypeInt is an integer setting.
	TypeInt
	// TypeString is a string setting.
	TypeString
)

// String returns a string representation of the type.
func (t SettingType) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeString:
		return "string"
	default:
		return "unknown"
	}
}

// Setting defines a configuration setting with its metadata.
type Setting struct {
	// Path is the dot-separated path (e.g., "move.maintainColumn").
	Path string

	// Type is the setting's data type.
	Type SettingType

	// Default is the default value.
	Default any

	// Description is human-readable documentation.
	Description string

	// Minimum for integer settings (nil means no minimum).
	Minimum *int

	// Maximum for integer settings (nil means no maximum).
	Maximum *int
}

// Validate checks if a value is valid for this setting.
func (s *Setting) Validate(value any) error {
	switch s.Type {
	case TypeBool:
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("%w: %s expects bool, got %T", ErrInvalidValue, s.Path, value)
		}
	case TypeInt:
		n, ok := toInt(value)
		if !ok {
			return fmt.Errorf("%w: %s expects integer, got %T", ErrInvalidValue, s.Path, value)
		}
		if s.Minimum != nil && n < *s.Minimum {
			return fmt.Errorf("%w: %s must be >= %d", ErrInvalidValue, s.Path, *s.Minimum)
		}
		if s.Maximum != nil && n > *s.Maximum {
			return fmt.Errorf("%w: %s must be <= %d", ErrInvalidValue, s.Path, *s.Maximum)
		}
	case TypeString:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("%w: %s expects string, got %T", ErrInvalidValue, s.Path, value)
		}
	}
	return nil
}

// toInt normalizes the integer types TOML decoding can produce.
func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// intPtr returns a pointer to n, for Minimum/Maximum fields.
func intPtr(n int) *int {
	return &n
}
