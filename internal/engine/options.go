package engine

import "github.com/dshills/movetext/internal/engine/buffer"

// Default configuration values.
const (
	DefaultTabWidth = 4
)

// Option configures a Session during creation.
type Option func(*Session)

// WithContent sets the initial content of the session's buffer.
func WithContent(content string) Option {
	return func(s *Session) {
		s.initContent = content
	}
}

// WithTabWidth sets the tab width for the session.
func WithTabWidth(width int) Option {
	return func(s *Session) {
		if width > 0 {
			s.tabWidth = width
		}
	}
}

// WithLineEnding sets the line ending style for the session.
func WithLineEnding(ending buffer.LineEnding) Option {
	return func(s *Session) {
		s.lineEnding = ending
	}
}
