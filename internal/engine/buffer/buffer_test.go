package buffer

import (
	"errors"
	"strings"
	"testing"
)

// TestNewBufferEmpty verifies a new buffer starts empty with one line.
func TestNewBufferEmpty(t *testing.T) {
	b := NewBuffer()
	if !b.IsEmpty() {
		t.Error("expected new buffer to be empty")
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
	if b.LineCount() != 1 {
		t.Errorf("LineCount() = %d, want 1", b.LineCount())
	}
}

// TestNewBufferFromString verifies content and line accounting.
func TestNewBufferFromString(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantText  string
		wantLines uint32
	}{
		{"single line", "hello", "hello", 1},
		{"two lines", "a\nb", "a\nb", 2},
		{"trailing newline", "a\nb\nc\n", "a\nb\nc\n", 4},
		{"crlf normalized", "a\r\nb", "a\nb", 2},
		{"bare cr normalized", "a\rb", "a\nb", 2},
		{"empty", "", "", 1},
		{"only newline", "\n", "\n", 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBufferFromString(tc.content)
			if got := b.Text(); got != tc.wantText {
				t.Errorf("Text() = %q, want %q", got, tc.wantText)
			}
			if got := b.LineCount(); got != tc.wantLines {
				t.Errorf("LineCount() = %d, want %d", got, tc.wantLines)
			}
		})
	}
}

// TestNewBufferFromReader verifies reader construction.
func TestNewBufferFromReader(t *testing.T) {
	b, err := NewBufferFromReader(strings.NewReader("one\ntwo\n"))
	if err != nil {
		t.Fatalf("NewBufferFromReader() error: %v", err)
	}
	if got := b.Text(); got != "one\ntwo\n" {
		t.Errorf("Text() = %q, want %q", got, "one\ntwo\n")
	}
}

// TestLineText verifies per-line text extraction.
func TestLineText(t *testing.T) {
	b := NewBufferFromString("alpha\nbeta\n\ngamma")

	tests := []struct {
		line uint32
		want string
	}{
		{0, "alpha"},
		{1, "beta"},
		{2, ""},
		{3, "gamma"},
		{4, ""}, // out of range
	}

	for _, tc := range tests {
		if got := b.LineText(tc.line); got != tc.want {
			t.Errorf("LineText(%d) = %q, want %q", tc.line, got, tc.want)
		}
	}
}

// TestLineOffsets verifies line start/end offsets.
func TestLineOffsets(t *testing.T) {
	b := NewBufferFromString("ab\ncde\n")

	tests := []struct {
		line      uint32
		wantStart ByteOffset
		wantEnd   ByteOffset
	}{
		{0, 0, 2},
		{1, 3, 6},
		{2, 7, 7}, // trailing empty line
	}

	for _, tc := range tests {
		if got := b.LineStartOffset(tc.line); got != tc.wantStart {
			t.Errorf("LineStartOffset(%d) = %d, want %d", tc.line, got, tc.wantStart)
		}
		if got := b.LineEndOffset(tc.line); got != tc.wantEnd {
			t.Errorf("LineEndOffset(%d) = %d, want %d", tc.line, got, tc.wantEnd)
		}
	}
}

// TestOffsetToPoint verifies offset to line/column conversion.
func TestOffsetToPoint(t *testing.T) {
	b := NewBufferFromString("ab\ncde\nf")

	tests := []struct {
		offset ByteOffset
		want   Point
	}{
		{0, Point{Line: 0, Column: 0}},
		{1, Point{Line: 0, Column: 1}},
		{2, Point{Line: 0, Column: 2}}, // on the newline
		{3, Point{Line: 1, Column: 0}},
		{6, Point{Line: 1, Column: 3}},
		{7, Point{Line: 2, Column: 0}},
		{8, Point{Line: 2, Column: 1}},
		{99, Point{Line: 2, Column: 1}}, // clamped
	}

	for _, tc := range tests {
		if got := b.OffsetToPoint(tc.offset); got != tc.want {
			t.Errorf("OffsetToPoint(%d) = %v, want %v", tc.offset, got, tc.want)
		}
	}
}

// TestPointToOffset verifies line/column to offset conversion with clamping.
func TestPointToOffset(t *testing.T) {
	b := NewBufferFromString("ab\ncde\nf")

	tests := []struct {
		point Point
		want  ByteOffset
	}{
		{Point{Line: 0, Column: 0}, 0},
		{Point{Line: 0, Column: 2}, 2},
		{Point{Line: 0, Column: 10}, 2}, // column clamped to line length
		{Point{Line: 1, Column: 1}, 4},
		{Point{Line: 2, Column: 1}, 8},
		{Point{Line: 9, Column: 0}, 7}, // line clamped to last line
	}

	for _, tc := range tests {
		if got := b.PointToOffset(tc.point); got != tc.want {
			t.Errorf("PointToOffset(%v) = %d, want %d", tc.point, got, tc.want)
		}
	}
}

// TestInsert verifies insertion and revision bumping.
func TestInsert(t *testing.T) {
	b := NewBufferFromString("hello world")
	rev := b.RevisionID()

	end, err := b.Insert(5, ",")
	if err != nil {
		t.Fatalf("Insert() error: %v", err)
	}
	if end != 6 {
		t.Errorf("Insert() end = %d, want 6", end)
	}
	if got := b.Text(); got != "hello, world" {
		t.Errorf("Text() = %q, want %q", got, "hello, world")
	}
	if b.RevisionID() == rev {
		t.Error("expected revision to change after insert")
	}
}

// TestInsertOutOfRange verifies out-of-range inserts are rejected.
func TestInsertOutOfRange(t *testing.T) {
	b := NewBufferFromString("abc")

	if _, err := b.Insert(-1, "x"); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("Insert(-1) error = %v, want ErrOffsetOutOfRange", err)
	}
	if _, err := b.Insert(4, "x"); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("Insert(4) error = %v, want ErrOffsetOutOfRange", err)
	}
	if got := b.Text(); got != "abc" {
		t.Errorf("buffer modified by failed insert: %q", got)
	}
}

// TestDelete verifies range deletion.
func TestDelete(t *testing.T) {
	b := NewBufferFromString("hello, world")

	if err := b.Delete(5, 7); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if got := b.Text(); got != "helloworld" {
		t.Errorf("Text() = %q, want %q", got, "helloworld")
	}

	if err := b.Delete(3, 2); !errors.Is(err, ErrRangeInvalid) {
		t.Errorf("Delete(3, 2) error = %v, want ErrRangeInvalid", err)
	}
}

// TestExtract verifies delete-and-return semantics.
func TestExtract(t *testing.T) {
	b := NewBufferFromString("one two three")

	text, err := b.Extract(4, 8)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if text != "two " {
		t.Errorf("Extract() = %q, want %q", text, "two ")
	}
	if got := b.Text(); got != "one three" {
		t.Errorf("Text() = %q, want %q", got, "one three")
	}

	if _, err := b.Extract(0, 99); !errors.Is(err, ErrRangeInvalid) {
		t.Errorf("Extract(0, 99) error = %v, want ErrRangeInvalid", err)
	}
}

// TestReplace verifies range replacement.
func TestReplace(t *testing.T) {
	b := NewBufferFromString("hello world")

	end, err := b.Replace(6, 11, "there")
	if err != nil {
		t.Fatalf("Replace() error: %v", err)
	}
	if end != 11 {
		t.Errorf("Replace() end = %d, want 11", end)
	}
	if got := b.Text(); got != "hello there" {
		t.Errorf("Text() = %q, want %q", got, "hello there")
	}
}

// TestApplyEdit verifies the edit primitive and its change report.
func TestApplyEdit(t *testing.T) {
	b := NewBufferFromString("hello world")

	res, err := b.Apply(NewEdit(Range{Start: 6, End: 11}, "there"))
	if err != nil {
		t.Fatalf("Apply(replace) error: %v", err)
	}
	if res.OldText != "world" {
		t.Errorf("OldText = %q, want %q", res.OldText, "world")
	}
	if res.NewRange != (Range{Start: 6, End: 11}) {
		t.Errorf("NewRange = %v", res.NewRange)
	}
	if res.Delta != 0 {
		t.Errorf("Delta = %d, want 0", res.Delta)
	}

	res, err = b.Apply(NewInsert(5, ","))
	if err != nil {
		t.Fatalf("Apply(insert) error: %v", err)
	}
	if res.Delta != 1 {
		t.Errorf("Delta = %d, want 1", res.Delta)
	}
	if got := b.Text(); got != "hello, there" {
		t.Errorf("Text() = %q, want %q", got, "hello, there")
	}

	res, err = b.Apply(NewDelete(5, 6))
	if err != nil {
		t.Fatalf("Apply(delete) error: %v", err)
	}
	if res.OldText != "," || res.Delta != -1 {
		t.Errorf("delete result = %+v", res)
	}

	if _, err := b.Apply(NewDelete(3, 2)); !errors.Is(err, ErrRangeInvalid) {
		t.Errorf("Apply(3, 2) error = %v, want ErrRangeInvalid", err)
	}
}

// TestTextRange verifies range reads with clamping.
func TestTextRange(t *testing.T) {
	b := NewBufferFromString("abcdef")

	if got := b.TextRange(1, 4); got != "bcd" {
		t.Errorf("TextRange(1, 4) = %q, want %q", got, "bcd")
	}
	if got := b.TextRange(4, 99); got != "ef" {
		t.Errorf("TextRange(4, 99) = %q, want %q", got, "ef")
	}
	if got := b.TextRange(-5, 2); got != "ab" {
		t.Errorf("TextRange(-5, 2) = %q, want %q", got, "ab")
	}
}

// TestDetectLineEnding verifies line ending detection.
func TestDetectLineEnding(t *testing.T) {
	tests := []struct {
		name string
		text string
		want LineEnding
	}{
		{"lf", "a\nb\n", LineEndingLF},
		{"crlf", "a\r\nb\r\n", LineEndingCRLF},
		{"mixed mostly lf", "a\nb\nc\r\n", LineEndingLF},
		{"none", "abc", LineEndingLF},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectLineEnding(tc.text); got != tc.want {
				t.Errorf("DetectLineEnding(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

// TestLineLen verifies line length excludes the newline.
func TestLineLen(t *testing.T) {
	b := NewBufferFromString("ab\ncde\n")

	if got := b.LineLen(0); got != 2 {
		t.Errorf("LineLen(0) = %d, want 2", got)
	}
	if got := b.LineLen(1); got != 3 {
		t.Errorf("LineLen(1) = %d, want 3", got)
	}
	if got := b.LineLen(2); got != 0 {
		t.Errorf("LineLen(2) = %d, want 0", got)
	}
}
