package move

import (
	"errors"
	"testing"

	"github.com/dshills/movetext/internal/engine"
	"github.com/dshills/movetext/internal/engine/cursor"
)

// sessionAt creates a session with the cursor at the given line/column.
func sessionAt(t *testing.T, content string, line, col uint32) *engine.Session {
	t.Helper()
	s := engine.NewSession(engine.WithContent(content))
	s.SetCursor(s.PointToOffset(engine.Point{Line: line, Column: col}))
	return s
}

// down returns a vertical request with default options.
func down(n int) Request {
	return Request{Axis: AxisVertical, Magnitude: n, Options: DefaultOptions()}
}

// right returns a horizontal request with default options.
func right(n int) Request {
	return Request{Axis: AxisHorizontal, Magnitude: n, Options: DefaultOptions()}
}

// TestMoveLineDown verifies the spec's basic line move example.
func TestMoveLineDown(t *testing.T) {
	s := sessionAt(t, "a\nb\nc\n", 1, 0)

	if err := Move(s, down(1)); err != nil {
		t.Fatalf("Move() error: %v", err)
	}
	if want := "a\nc\nb\n"; s.Text() != want {
		t.Errorf("Text() = %q, want %q", s.Text(), want)
	}
	if got := s.CursorPoint(); got.Line != 2 || got.Column != 0 {
		t.Errorf("cursor at %v, want (2:0)", got)
	}
}

// TestMoveLineUp verifies moving a line toward the top.
func TestMoveLineUp(t *testing.T) {
	s := sessionAt(t, "a\nb\nc\n", 1, 0)

	if err := Move(s, down(-1)); err != nil {
		t.Fatalf("Move() error: %v", err)
	}
	if want := "b\na\nc\n"; s.Text() != want {
		t.Errorf("Text() = %q, want %q", s.Text(), want)
	}
	if got := s.CursorPoint(); got.Line != 0 {
		t.Errorf("cursor on line %d, want 0", got.Line)
	}
}

// TestMoveLineBoundaries verifies boundary violations reject the move
// and leave the buffer untouched.
func TestMoveLineBoundaries(t *testing.T) {
	tests := []struct {
		name string
		line uint32
		arg  int
	}{
		{"top line up", 0, -1},
		{"bottom line down", 2, 1},
		{"past top", 1, -2},
		{"past bottom", 1, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := sessionAt(t, "a\nb\nc\n", tc.line, 0)
			before := s.Text()

			err := Move(s, down(tc.arg))
			if !errors.Is(err, ErrBoundary) {
				t.Errorf("Move() error = %v, want ErrBoundary", err)
			}
			if s.Text() != before {
				t.Errorf("buffer modified by rejected move: %q", s.Text())
			}
		})
	}
}

// TestMoveLineRoundTrip verifies down-then-up restores the buffer.
func TestMoveLineRoundTrip(t *testing.T) {
	s := sessionAt(t, "one\ntwo\nthree\nfour\n", 1, 2)
	before := s.Text()

	if err := Move(s, down(2)); err != nil {
		t.Fatalf("Move(down 2) error: %v", err)
	}
	if err := Move(s, down(-2)); err != nil {
		t.Fatalf("Move(up 2) error: %v", err)
	}
	if s.Text() != before {
		t.Errorf("Text() = %q, want %q", s.Text(), before)
	}
	if got := s.CursorPoint(); got.Line != 1 || got.Column != 2 {
		t.Errorf("cursor at %v, want (1:2)", got)
	}
}

// TestMoveLinePreservesLength verifies the content length invariant.
func TestMoveLinePreservesLength(t *testing.T) {
	s := sessionAt(t, "alpha\nbeta\ngamma\n", 0, 3)
	before := s.Len()

	if err := Move(s, down(1)); err != nil {
		t.Fatalf("Move() error: %v", err)
	}
	if s.Len() != before {
		t.Errorf("Len() = %d, want %d", s.Len(), before)
	}
}

// TestMoveLineColumnTravels verifies the cursor column rides along with
// the relocated line: crossing a shorter line never clamps it, because
// the line under the cursor is the one that moved.
func TestMoveLineColumnTravels(t *testing.T) {
	s := sessionAt(t, "abcdef\nx\nlonger\n", 0, 4)

	if err := Move(s, down(1)); err != nil {
		t.Fatalf("first Move() error: %v", err)
	}
	if want := "x\nabcdef\nlonger\n"; s.Text() != want {
		t.Errorf("Text() = %q, want %q", s.Text(), want)
	}
	if got := s.CursorPoint(); got.Line != 1 || got.Column != 4 {
		t.Errorf("cursor at %v, want (1:4)", got)
	}

	if err := Move(s, down(1)); err != nil {
		t.Fatalf("second Move() error: %v", err)
	}
	if want := "x\nlonger\nabcdef\n"; s.Text() != want {
		t.Errorf("Text() = %q, want %q", s.Text(), want)
	}
	if got := s.CursorPoint(); got.Line != 2 || got.Column != 4 {
		t.Errorf("cursor at %v, want (2:4)", got)
	}
}

// TestMoveRangeColumnMaintained verifies a chained selection move clamps
// on a short line and restores the chain's start column afterwards.
func TestMoveRangeColumnMaintained(t *testing.T) {
	s := engine.NewSession(engine.WithContent("abcdef\nx\nlonger\n"))
	s.SetSelection(cursor.NewSelection(4, 5)) // "e"

	if err := Move(s, down(1)); err != nil {
		t.Fatalf("first Move() error: %v", err)
	}
	if want := "abcdf\nxe\nlonger\n"; s.Text() != want {
		t.Errorf("Text() = %q, want %q", s.Text(), want)
	}
	// Short line: the landing column clamps to its length.
	if got := s.OffsetToPoint(s.Selection().Start()); got.Line != 1 || got.Column != 1 {
		t.Errorf("selection starts at %v, want (1:1)", got)
	}

	if err := Move(s, down(1)); err != nil {
		t.Fatalf("second Move() error: %v", err)
	}
	if want := "abcdf\nx\nlongeer\n"; s.Text() != want {
		t.Errorf("Text() = %q, want %q", s.Text(), want)
	}
	// Long line again: the chain's original column comes back.
	if got := s.OffsetToPoint(s.Selection().Start()); got.Line != 2 || got.Column != 4 {
		t.Errorf("selection starts at %v, want (2:4)", got)
	}
}

// TestMoveRangeColumnRecomputed verifies the disabled policy re-derives
// the column from each landing position.
func TestMoveRangeColumnRecomputed(t *testing.T) {
	opts := Options{MaintainColumn: false, WholeLines: true}
	s := engine.NewSession(engine.WithContent("abcdef\nx\nlonger\n"))
	s.SetSelection(cursor.NewSelection(4, 5)) // "e"

	if err := Move(s, Request{Axis: AxisVertical, Magnitude: 1, Options: opts}); err != nil {
		t.Fatalf("first Move() error: %v", err)
	}
	if err := Move(s, Request{Axis: AxisVertical, Magnitude: 1, Options: opts}); err != nil {
		t.Fatalf("second Move() error: %v", err)
	}
	// The clamp on the short line became the new column.
	if want := "abcdf\nx\nleonger\n"; s.Text() != want {
		t.Errorf("Text() = %q, want %q", s.Text(), want)
	}
	if got := s.OffsetToPoint(s.Selection().Start()); got.Line != 2 || got.Column != 1 {
		t.Errorf("selection starts at %v, want (2:1)", got)
	}
}

// TestMoveLastLineWithoutNewline verifies moving a final unterminated
// line swaps cleanly without growing the buffer.
func TestMoveLastLineWithoutNewline(t *testing.T) {
	s := sessionAt(t, "a\nb", 1, 0)

	if err := Move(s, down(-1)); err != nil {
		t.Fatalf("Move() error: %v", err)
	}
	if want := "b\na"; s.Text() != want {
		t.Errorf("Text() = %q, want %q", s.Text(), want)
	}
}

// TestMoveLineDownToUnterminatedEnd verifies moving a line below a
// final unterminated line.
func TestMoveLineDownToUnterminatedEnd(t *testing.T) {
	s := sessionAt(t, "a\nb", 0, 0)

	if err := Move(s, down(1)); err != nil {
		t.Fatalf("Move() error: %v", err)
	}
	if want := "b\na"; s.Text() != want {
		t.Errorf("Text() = %q, want %q", s.Text(), want)
	}
	if got := s.CursorPoint(); got.Line != 1 {
		t.Errorf("cursor on line %d, want 1", got.Line)
	}
}

// TestMoveRangeVertically verifies single-range selection displacement.
func TestMoveRangeVertically(t *testing.T) {
	s := engine.NewSession(engine.WithContent("one\ntwo\n"))
	s.SetSelection(cursor.NewSelection(0, 3)) // "one"

	if err := Move(s, down(1)); err != nil {
		t.Fatalf("Move() error: %v", err)
	}
	if want := "\nonetwo\n"; s.Text() != want {
		t.Errorf("Text() = %q, want %q", s.Text(), want)
	}
	sel := s.Selection()
	if sel.Start() != 1 || sel.End() != 4 {
		t.Errorf("selection = %v, want [1:4)", sel)
	}
	if !sel.IsForward() {
		t.Error("expected forward selection preserved")
	}
}

// TestMoveRangeVerticallyBackward verifies directionality preservation.
func TestMoveRangeVerticallyBackward(t *testing.T) {
	s := engine.NewSession(engine.WithContent("one\ntwo\n"))
	s.SetSelection(cursor.NewSelection(3, 0)) // backward over "one"

	if err := Move(s, down(1)); err != nil {
		t.Fatalf("Move() error: %v", err)
	}
	sel := s.Selection()
	if !sel.IsBackward() {
		t.Errorf("selection = %v, want backward", sel)
	}
	if sel.Len() != 3 {
		t.Errorf("selection length = %d, want 3", sel.Len())
	}
}

// TestMoveRangeVerticallyBoundary verifies selection boundary checks.
func TestMoveRangeVerticallyBoundary(t *testing.T) {
	s := engine.NewSession(engine.WithContent("one\ntwo\n"))
	s.SetSelection(cursor.NewSelection(0, 3))
	before := s.Text()

	if err := Move(s, down(-1)); !errors.Is(err, ErrBoundary) {
		t.Errorf("Move(up) error = %v, want ErrBoundary", err)
	}
	if s.Text() != before {
		t.Errorf("buffer modified by rejected move: %q", s.Text())
	}
}
