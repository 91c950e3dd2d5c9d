package move

import (
	"strings"

	"github.com/dshills/movetext/internal/engine"
	"github.com/dshills/movetext/internal/engine/cursor"
)

// moveRangeHorizontally displaces the selected byte range by the
// requested number of characters.
func moveRangeHorizontally(s *engine.Session, req Request) error {
	sel := s.Selection()
	r := sel.Range()
	arg := int64(req.Magnitude)

	if arg < 0 && r.Start+arg < 0 {
		return ErrBoundary
	}
	if arg > 0 && r.End+arg > s.Len() {
		return ErrBoundary
	}

	text, err := s.Extract(r.Start, r.End)
	if err != nil {
		return err
	}

	insertAt := r.Start + arg
	end, err := s.Insert(insertAt, text)
	if err != nil {
		return err
	}

	s.SetSelection(cursor.FromRange(engine.Range{Start: insertAt, End: end}, sel.IsBackward()))
	return nil
}

// moveLineHorizontally shifts the cursor's line sideways. On a blank
// line the shift degenerates to inserting or deleting whitespace at the
// cursor; otherwise the whole line's indentation shifts rigidly.
func moveLineHorizontally(s *engine.Session, req Request) error {
	cur := s.CursorPoint()
	arg := int64(req.Magnitude)
	lineText := s.LineText(cur.Line)

	if strings.TrimSpace(lineText) == "" {
		return moveBlankLine(s, cur, arg)
	}

	deltas, err := s.RigidShiftLines(cur.Line, cur.Line, req.Magnitude)
	if err != nil {
		return err
	}

	// The line start itself is unaffected by a single-line shift.
	lineStart := s.LineStartOffset(cur.Line)
	newOff := s.CursorOffset() + deltas[0]
	if newOff < lineStart {
		newOff = lineStart
	}
	s.SetCursor(newOff)
	return nil
}

// moveBlankLine handles horizontal movement on an empty or
// whitespace-only line: right inserts blanks at the cursor, left eats
// them without crossing the line start.
func moveBlankLine(s *engine.Session, cur engine.Point, arg int64) error {
	offset := s.CursorOffset()

	if arg > 0 {
		if _, err := s.Insert(offset, strings.Repeat(" ", int(arg))); err != nil {
			return err
		}
		s.SetCursor(offset + arg)
		return nil
	}

	lineStart := s.LineStartOffset(cur.Line)
	n := -arg
	if avail := offset - lineStart; n > avail {
		n = avail
	}
	if n == 0 {
		return nil
	}
	if err := s.Delete(offset-n, offset); err != nil {
		return err
	}
	s.SetCursor(offset - n)
	return nil
}
