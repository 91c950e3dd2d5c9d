// Package config provides the settings registry, TOML loading, and live
// reload for movetext configuration.
//
// Settings are addressed by dot-separated paths such as
// "move.maintainColumn". The registry defines each setting's type,
// default, and validation rules; loaded values are validated against
// those definitions before they take effect.
package config
