package move

import (
	"github.com/dshills/movetext/internal/engine"
	"github.com/dshills/movetext/internal/engine/cursor"
)

// moveRangeVertically displaces the selected byte range by the requested
// number of lines, keeping the range aligned to the target column.
func moveRangeVertically(s *engine.Session, req Request) error {
	sel := s.Selection()
	r := sel.Range()
	first, last := touchedLines(s, r)

	if err := checkVerticalBounds(s, first, last, req.Magnitude); err != nil {
		return err
	}

	startPt := s.OffsetToPoint(r.Start)
	col := targetColumn(s, startPt.Column, req.Options.MaintainColumn)

	text, err := s.Extract(r.Start, r.End)
	if err != nil {
		return err
	}

	// After extraction the cursor conceptually sits at the range start;
	// advance it by the requested lines and land on the target column,
	// clamped to the destination line's length.
	target := engine.Point{
		Line:   uint32(int64(startPt.Line) + int64(req.Magnitude)),
		Column: col,
	}
	insertAt := s.PointToOffset(target)

	end, err := s.Insert(insertAt, text)
	if err != nil {
		return err
	}

	s.SetSelection(cursor.FromRange(engine.Range{Start: insertAt, End: end}, sel.IsBackward()))
	return nil
}

// moveLineVertically displaces the cursor's line by the requested number
// of lines and restores the cursor column on the relocated line.
func moveLineVertically(s *engine.Session, req Request) error {
	cur := s.CursorPoint()

	if err := checkVerticalBounds(s, cur.Line, cur.Line, req.Magnitude); err != nil {
		return err
	}

	col := targetColumn(s, cur.Column, req.Options.MaintainColumn)

	text, _, err := extractLineBlock(s, cur.Line, cur.Line)
	if err != nil {
		return err
	}

	targetLine := uint32(int64(cur.Line) + int64(req.Magnitude))
	contentStart, err := insertLineBlock(s, targetLine, text)
	if err != nil {
		return err
	}

	landing := s.OffsetToPoint(contentStart)
	s.SetCursor(s.PointToOffset(engine.Point{Line: landing.Line, Column: col}))
	return nil
}
