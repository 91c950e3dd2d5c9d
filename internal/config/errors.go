package config

import "errors"

// Configuration errors.
var (
	// ErrSettingNotFound indicates the setting path is not registered.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrSettingAlreadyRegistered indicates a duplicate registration.
	ErrSettingAlreadyRegistered = errors.New("setting already registered")

	// ErrInvalidValue indicates a value failed validation.
	ErrInvalidValue = errors.New("invalid setting value")

	// ErrWatcherClosed indicates the watcher has been closed.
	ErrWatcherClosed = errors.New("watcher is closed")
)
