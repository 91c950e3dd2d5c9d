package engine

import (
	"io"

	"github.com/google/uuid"

	"github.com/dshills/movetext/internal/engine/buffer"
	"github.com/dshills/movetext/internal/engine/cursor"
)

// Re-export commonly used types for convenience.
type (
	// ByteOffset is a byte position in the buffer.
	ByteOffset = buffer.ByteOffset

	// Point represents a line/column position.
	Point = buffer.Point

	// Range represents a byte range in the buffer.
	Range = buffer.Range

	// Selection represents a cursor selection.
	Selection = cursor.Selection

	// LineEnding specifies the line ending style.
	LineEnding = buffer.LineEnding

	// RevisionID uniquely identifies a buffer revision.
	RevisionID = buffer.RevisionID
)

// Re-export constants.
const (
	LineEndingLF   = buffer.LineEndingLF
	LineEndingCRLF = buffer.LineEndingCRLF
)

// Session is a per-buffer editing session. It pairs a buffer with a
// single selection and the session-local state used by the displacement
// commands. The host guarantees serialized command execution, so Session
// itself adds no locking beyond what the buffer provides.
type Session struct {
	id  uuid.UUID
	buf *buffer.Buffer

	sel        cursor.Selection
	markActive bool

	// startColumn is the remembered column for chained vertical moves.
	// Valid only while startColumnSet is true; cleared by the dispatcher
	// when a non-vertical-move command runs.
	startColumn    uint32
	startColumnSet bool

	// Configuration applied at construction
	tabWidth    int
	lineEnding  buffer.LineEnding
	initContent string
}

// NewSession creates a new editing session with the given options.
func NewSession(opts ...Option) *Session {
	s := &Session{
		id:         uuid.New(),
		tabWidth:   DefaultTabWidth,
		lineEnding: buffer.LineEndingLF,
	}

	for _, opt := range opts {
		opt(s)
	}

	bufOpts := []buffer.Option{
		buffer.WithTabWidth(s.tabWidth),
		buffer.WithLineEnding(s.lineEnding),
	}
	if s.initContent != "" {
		s.buf = buffer.NewBufferFromString(s.initContent, bufOpts...)
	} else {
		s.buf = buffer.NewBuffer(bufOpts...)
	}

	s.sel = cursor.NewCursorSelection(0)
	return s
}

// NewSessionFromReader creates a session with content from an io.Reader.
func NewSessionFromReader(r io.Reader, opts ...Option) (*Session, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	opts = append(opts, WithContent(string(data)))
	return NewSession(opts...), nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Buffer returns the session's buffer.
func (s *Session) Buffer() *buffer.Buffer {
	return s.buf
}

// Selection and cursor state

// Selection returns the current selection.
// When the mark is inactive this is a bare cursor.
func (s *Session) Selection() cursor.Selection {
	return s.sel
}

// MarkActive reports whether the selection is active.
func (s *Session) MarkActive() bool {
	return s.markActive
}

// SetSelection installs a selection and activates the mark.
func (s *Session) SetSelection(sel cursor.Selection) {
	s.sel = sel.Clamp(s.buf.Len())
	s.markActive = true
}

// SetCursor collapses the selection to a cursor and deactivates the mark.
func (s *Session) SetCursor(offset ByteOffset) {
	if offset < 0 {
		offset = 0
	}
	if max := s.buf.Len(); offset > max {
		offset = max
	}
	s.sel = cursor.NewCursorSelection(offset)
	s.markActive = false
}

// DeactivateMark keeps the cursor position but drops the selection.
func (s *Session) DeactivateMark() {
	s.sel = s.sel.Collapse()
	s.markActive = false
}

// CursorOffset returns the head position.
func (s *Session) CursorOffset() ByteOffset {
	return s.sel.Head
}

// CursorPoint returns the head position as line/column.
func (s *Session) CursorPoint() Point {
	return s.buf.OffsetToPoint(s.sel.Head)
}

// Buffer queries (proxied for handler convenience)

// Text returns the full buffer content.
func (s *Session) Text() string { return s.buf.Text() }

// TextRange returns text in the given byte range.
func (s *Session) TextRange(start, end ByteOffset) string { return s.buf.TextRange(start, end) }

// Len returns the buffer length in bytes.
func (s *Session) Len() ByteOffset { return s.buf.Len() }

// LineCount returns the number of lines.
func (s *Session) LineCount() uint32 { return s.buf.LineCount() }

// LineText returns the text of a line (without newline).
func (s *Session) LineText(line uint32) string { return s.buf.LineText(line) }

// LineLen returns the byte length of a line (without newline).
func (s *Session) LineLen(line uint32) uint32 { return s.buf.LineLen(line) }

// LineStartOffset returns the byte offset of the start of a line.
func (s *Session) LineStartOffset(line uint32) ByteOffset { return s.buf.LineStartOffset(line) }

// LineEndOffset returns the byte offset of the end of a line.
func (s *Session) LineEndOffset(line uint32) ByteOffset { return s.buf.LineEndOffset(line) }

// OffsetToPoint converts a byte offset to line/column.
func (s *Session) OffsetToPoint(offset ByteOffset) Point { return s.buf.OffsetToPoint(offset) }

// PointToOffset converts line/column to a byte offset, clamping the
// column to the target line's length.
func (s *Session) PointToOffset(point Point) ByteOffset { return s.buf.PointToOffset(point) }

// LastContentLine returns the last line that holds content. For a buffer
// ending in a newline this is the line before the trailing empty line.
func (s *Session) LastContentLine() uint32 {
	last := s.buf.LineCount() - 1
	if last > 0 && s.buf.LineLen(last) == 0 {
		return last - 1
	}
	return last
}

// Mutations

// Extract removes and returns the text in [start, end).
func (s *Session) Extract(start, end ByteOffset) (string, error) {
	return s.buf.Extract(start, end)
}

// Insert inserts text at the given offset and returns the end position.
func (s *Session) Insert(offset ByteOffset, text string) (ByteOffset, error) {
	return s.buf.Insert(offset, text)
}

// Delete removes the text in [start, end).
func (s *Session) Delete(start, end ByteOffset) error {
	return s.buf.Delete(start, end)
}

// Remembered start column

// StartColumn returns the remembered start column for chained vertical
// moves, and whether one is set.
func (s *Session) StartColumn() (uint32, bool) {
	return s.startColumn, s.startColumnSet
}

// SetStartColumn records the start column for the current move chain.
func (s *Session) SetStartColumn(col uint32) {
	s.startColumn = col
	s.startColumnSet = true
}

// ClearStartColumn forgets the remembered column, ending the chain.
func (s *Session) ClearStartColumn() {
	s.startColumnSet = false
}
