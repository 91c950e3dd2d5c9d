package buffer

import (
	"errors"
	"io"
	"strings"
	"sync"
)

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
)

// LineEnding specifies the line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	if le == LineEndingCRLF {
		return "\\r\\n"
	}
	return "\\n"
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	if le == LineEndingCRLF {
		return "\r\n"
	}
	return "\n"
}

// Buffer is a mutable text store with line-aware addressing.
// All text is normalized to LF internally; the configured line ending
// only affects serialization. All methods are thread-safe.
type Buffer struct {
	mu         sync.RWMutex
	text       string
	lines      lineIndex
	revisionID RevisionID
	lineEnding LineEnding
	tabWidth   int
}

// NewBuffer creates a new empty buffer.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		revisionID: NewRevisionID(),
		lineEnding: LineEndingLF,
		tabWidth:   4,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewBufferFromString creates a buffer with initial content.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	b.text = normalizeLineEndings(s)
	b.lines = computeLineIndex(b.text)
	return b
}

// NewBufferFromReader creates a buffer from an io.Reader.
func NewBufferFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewBufferFromString(string(data), opts...), nil
}

// normalizeLineEndings converts CRLF and bare CR to LF.
func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// Read Operations

// Text returns the full buffer content as a string.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text
}

// TextRange returns text in the given byte range.
// Out-of-range offsets are clamped to the buffer bounds.
func (b *Buffer) TextRange(start, end ByteOffset) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	start, end = clampRange(start, end, ByteOffset(len(b.text)))
	return b.text[start:end]
}

// Len returns the total byte length of the buffer.
func (b *Buffer) Len() ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return ByteOffset(len(b.text))
}

// LineCount returns the number of lines.
// A buffer ending in a newline has a final empty line.
func (b *Buffer) LineCount() uint32 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lines.lineCount()
}

// LineText returns the text of a specific line (without newline).
func (b *Buffer) LineText(line uint32) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if line >= b.lines.lineCount() {
		return ""
	}
	return b.text[b.lines.lineStart(line):b.lines.lineEnd(line, len(b.text))]
}

// LineLen returns the length of a specific line in bytes (without newline).
func (b *Buffer) LineLen(line uint32) uint32 {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if line >= b.lines.lineCount() {
		return 0
	}
	return uint32(b.lines.lineEnd(line, len(b.text)) - b.lines.lineStart(line))
}

// Coordinate Conversion

// OffsetToPoint converts a byte offset to line/column.
// Offsets outside the buffer are clamped.
func (b *Buffer) OffsetToPoint(offset ByteOffset) Point {
	b.mu.RLock()
	defer b.mu.RUnlock()

	off := int(clampOffset(offset, ByteOffset(len(b.text))))
	line := b.lines.lineAt(off)
	return Point{Line: line, Column: uint32(off - b.lines.lineStart(line))}
}

// PointToOffset converts line/column to a byte offset.
// The column is clamped to the line's length; the line is clamped to the
// last line of the buffer.
func (b *Buffer) PointToOffset(point Point) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()

	line := point.Line
	if max := b.lines.lineCount() - 1; line > max {
		line = max
	}
	start := b.lines.lineStart(line)
	end := b.lines.lineEnd(line, len(b.text))
	col := int(point.Column)
	if col > end-start {
		col = end - start
	}
	return ByteOffset(start + col)
}

// LineStartOffset returns the byte offset of the start of a line.
func (b *Buffer) LineStartOffset(line uint32) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if line >= b.lines.lineCount() {
		return ByteOffset(len(b.text))
	}
	return ByteOffset(b.lines.lineStart(line))
}

// LineEndOffset returns the byte offset of the end of a line (before newline).
func (b *Buffer) LineEndOffset(line uint32) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if line >= b.lines.lineCount() {
		return ByteOffset(len(b.text))
	}
	return ByteOffset(b.lines.lineEnd(line, len(b.text)))
}

// Write Operations

// Apply performs a single edit and reports what changed.
// The other mutation methods are implemented in terms of Apply.
func (b *Buffer) Apply(e Edit) (EditResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	start, end := e.Range.Start, e.Range.End
	if start < 0 || start > end || end > ByteOffset(len(b.text)) {
		return EditResult{}, ErrRangeInvalid
	}

	old := b.text[start:end]
	text := normalizeLineEndings(e.NewText)
	b.apply(b.text[:start] + text + b.text[end:])

	return EditResult{
		OldRange: e.Range,
		NewRange: Range{Start: start, End: start + ByteOffset(len(text))},
		OldText:  old,
		Delta:    int64(len(text)) - int64(len(old)),
	}, nil
}

// Insert inserts text at the given offset.
// Returns the end position of the inserted text.
func (b *Buffer) Insert(offset ByteOffset, text string) (ByteOffset, error) {
	res, err := b.Apply(NewInsert(offset, text))
	if err != nil {
		// An insert's range is empty, so the only failure is the offset.
		return 0, ErrOffsetOutOfRange
	}
	return res.NewRange.End, nil
}

// Delete removes text in the given range.
func (b *Buffer) Delete(start, end ByteOffset) error {
	_, err := b.Apply(NewDelete(start, end))
	return err
}

// Extract removes text in the given range and returns it.
// This is the delete-and-return primitive used for text relocation.
func (b *Buffer) Extract(start, end ByteOffset) (string, error) {
	res, err := b.Apply(NewDelete(start, end))
	if err != nil {
		return "", err
	}
	return res.OldText, nil
}

// Replace replaces text in the given range with new text.
// Returns the end position of the replacement text.
func (b *Buffer) Replace(start, end ByteOffset, text string) (ByteOffset, error) {
	res, err := b.Apply(NewEdit(Range{Start: start, End: end}, text))
	if err != nil {
		return 0, err
	}
	return res.NewRange.End, nil
}

// apply installs new text, rebuilds the line index, and bumps the revision.
// Callers must hold the write lock.
func (b *Buffer) apply(text string) {
	b.text = text
	b.lines = computeLineIndex(text)
	b.revisionID = NewRevisionID()
}

// Buffer State

// RevisionID returns the current revision ID.
func (b *Buffer) RevisionID() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revisionID
}

// IsEmpty returns true if the buffer is empty.
func (b *Buffer) IsEmpty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.text) == 0
}

// LineEnding returns the buffer's line ending style.
func (b *Buffer) LineEnding() LineEnding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineEnding
}

// TabWidth returns the buffer's tab width.
func (b *Buffer) TabWidth() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tabWidth
}

// SetTabWidth sets the buffer's tab width.
func (b *Buffer) SetTabWidth(width int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if width > 0 {
		b.tabWidth = width
	}
}

// Helpers

func clampOffset(offset, max ByteOffset) ByteOffset {
	if offset < 0 {
		return 0
	}
	if offset > max {
		return max
	}
	return offset
}

func clampRange(start, end, max ByteOffset) (ByteOffset, ByteOffset) {
	start = clampOffset(start, max)
	end = clampOffset(end, max)
	if end < start {
		end = start
	}
	return start, end
}
