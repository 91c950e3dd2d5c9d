package move

import (
	"errors"
	"testing"

	"github.com/dshills/movetext/internal/engine"
	"github.com/dshills/movetext/internal/engine/cursor"
)

// TestMoveLinesUp verifies the spec's whole-line block move example:
// lines 2-3 swap with line 1.
func TestMoveLinesUp(t *testing.T) {
	s := engine.NewSession(engine.WithContent("a\nbb\ncc\nd\n"))
	s.SetSelection(cursor.NewSelection(2, 7)) // "bb\ncc"

	if err := Move(s, down(-1)); err != nil {
		t.Fatalf("Move() error: %v", err)
	}
	if want := "bb\ncc\na\nd\n"; s.Text() != want {
		t.Errorf("Text() = %q, want %q", s.Text(), want)
	}
	sel := s.Selection()
	if sel.Start() != 0 || sel.End() != 5 {
		t.Errorf("selection = %v, want [0:5)", sel)
	}
}

// TestMoveLinesDown verifies block movement toward the bottom.
func TestMoveLinesDown(t *testing.T) {
	s := engine.NewSession(engine.WithContent("a\nbb\ncc\nd\n"))
	s.SetSelection(cursor.NewSelection(2, 7))

	if err := Move(s, down(1)); err != nil {
		t.Fatalf("Move() error: %v", err)
	}
	if want := "a\nd\nbb\ncc\n"; s.Text() != want {
		t.Errorf("Text() = %q, want %q", s.Text(), want)
	}
}

// TestMoveLinesRoundTrip verifies down-then-up restores content and
// selection bounds.
func TestMoveLinesRoundTrip(t *testing.T) {
	s := engine.NewSession(engine.WithContent("a\nbb\ncc\nd\ne\n"))
	s.SetSelection(cursor.NewSelection(7, 2)) // backward over "bb\ncc"
	before := s.Text()

	if err := Move(s, down(1)); err != nil {
		t.Fatalf("Move(down) error: %v", err)
	}
	if err := Move(s, down(-1)); err != nil {
		t.Fatalf("Move(up) error: %v", err)
	}
	if s.Text() != before {
		t.Errorf("Text() = %q, want %q", s.Text(), before)
	}
	sel := s.Selection()
	if sel.Anchor != 7 || sel.Head != 2 {
		t.Errorf("selection = %v, want Anchor=7 Head=2", sel)
	}
}

// TestMoveLinesEndAtLineStart verifies a selection ending exactly at a
// line start does not drag that line along.
func TestMoveLinesEndAtLineStart(t *testing.T) {
	s := engine.NewSession(engine.WithContent("a\nbb\ncc\nd\n"))
	s.SetSelection(cursor.NewSelection(2, 8)) // "bb\ncc\n", ends at "d" line start

	if err := Move(s, down(-1)); err != nil {
		t.Fatalf("Move() error: %v", err)
	}
	if want := "bb\ncc\na\nd\n"; s.Text() != want {
		t.Errorf("Text() = %q, want %q", s.Text(), want)
	}
	// Selection still covers the block including its final newline.
	sel := s.Selection()
	if sel.Start() != 0 || sel.End() != 6 {
		t.Errorf("selection = %v, want [0:6)", sel)
	}
}

// TestMoveLinesSubLineOffsets verifies selection ends are restored at
// their original sub-line positions within the moved block.
func TestMoveLinesSubLineOffsets(t *testing.T) {
	s := engine.NewSession(engine.WithContent("a\nbb\ncc\nd\n"))
	s.SetSelection(cursor.NewSelection(3, 6)) // "b\nc" inside the block

	if err := Move(s, down(-1)); err != nil {
		t.Fatalf("Move() error: %v", err)
	}
	if want := "bb\ncc\na\nd\n"; s.Text() != want {
		t.Errorf("Text() = %q, want %q", s.Text(), want)
	}
	sel := s.Selection()
	if sel.Start() != 1 || sel.End() != 4 {
		t.Errorf("selection = %v, want [1:4)", sel)
	}
	if got := s.TextRange(sel.Start(), sel.End()); got != "b\nc" {
		t.Errorf("selected text = %q, want %q", got, "b\nc")
	}
}

// TestMoveLinesBoundaries verifies block boundary checks.
func TestMoveLinesBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		anchor int64
		head   int64
		arg    int
	}{
		{"top block up", 0, 4, -1},
		{"bottom block down", 5, 9, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := engine.NewSession(engine.WithContent("a\nbb\ncc\nd\n"))
			s.SetSelection(cursor.NewSelection(tc.anchor, tc.head))
			before := s.Text()

			if err := Move(s, down(tc.arg)); !errors.Is(err, ErrBoundary) {
				t.Errorf("Move() error = %v, want ErrBoundary", err)
			}
			if s.Text() != before {
				t.Errorf("buffer modified by rejected move: %q", s.Text())
			}
		})
	}
}

// TestMoveLinesToUnterminatedEnd verifies moving a block below a final
// line that lacks a newline.
func TestMoveLinesToUnterminatedEnd(t *testing.T) {
	s := engine.NewSession(engine.WithContent("aa\nbb\ncc"))
	s.SetSelection(cursor.NewSelection(0, 5)) // "aa\nbb"

	if err := Move(s, down(1)); err != nil {
		t.Fatalf("Move() error: %v", err)
	}
	if want := "cc\naa\nbb"; s.Text() != want {
		t.Errorf("Text() = %q, want %q", s.Text(), want)
	}
	sel := s.Selection()
	if got := s.TextRange(sel.Start(), sel.End()); got != "aa\nbb" {
		t.Errorf("selected text = %q, want %q", got, "aa\nbb")
	}
}

// TestMoveLinesHorizontally verifies rigid shifting of a multi-line
// selection, including a line only touched by the range end.
func TestMoveLinesHorizontally(t *testing.T) {
	s := engine.NewSession(engine.WithContent("one\ntwo\nthree\n"))
	s.SetSelection(cursor.NewSelection(1, 9)) // line 0 into line 2

	if err := Move(s, right(2)); err != nil {
		t.Fatalf("Move() error: %v", err)
	}
	if want := "  one\n  two\n  three\n"; s.Text() != want {
		t.Errorf("Text() = %q, want %q", s.Text(), want)
	}
	sel := s.Selection()
	if sel.Start() != 3 || sel.End() != 15 {
		t.Errorf("selection = %v, want [3:15)", sel)
	}
}

// TestMoveLinesHorizontallyLeft verifies outdenting clamps at column 0.
func TestMoveLinesHorizontallyLeft(t *testing.T) {
	s := engine.NewSession(engine.WithContent("  one\ntwo\n"))
	s.SetSelection(cursor.NewSelection(2, 8))

	if err := Move(s, right(-2)); err != nil {
		t.Fatalf("Move() error: %v", err)
	}
	if want := "one\ntwo\n"; s.Text() != want {
		t.Errorf("Text() = %q, want %q", s.Text(), want)
	}
	sel := s.Selection()
	if sel.Start() != 0 || sel.End() != 6 {
		t.Errorf("selection = %v, want [0:6)", sel)
	}
}
