package move

import (
	"github.com/dshills/movetext/internal/engine"
	"github.com/dshills/movetext/internal/engine/cursor"
)

// moveLinesVertically displaces every line touched by the selection as
// one block, then restores the selection at its original sub-line
// positions within the relocated block.
func moveLinesVertically(s *engine.Session, req Request) error {
	sel := s.Selection()
	r := sel.Range()
	first, last := touchedLines(s, r)

	if err := checkVerticalBounds(s, first, last, req.Magnitude); err != nil {
		return err
	}

	// Offsets of the range's ends relative to the expanded block, so the
	// selection can be rebuilt after the block moves. trailing goes
	// negative when the selection swallowed the block's final newline.
	blockStart := s.LineStartOffset(first)
	contentEnd := s.LineEndOffset(last)
	leading := r.Start - blockStart
	trailing := contentEnd - r.End

	text, contentLen, err := extractLineBlock(s, first, last)
	if err != nil {
		return err
	}

	targetLine := uint32(int64(first) + int64(req.Magnitude))
	contentStart, err := insertLineBlock(s, targetLine, text)
	if err != nil {
		return err
	}

	s.SetSelection(cursor.FromRange(engine.Range{
		Start: contentStart + leading,
		End:   contentStart + contentLen - trailing,
	}, sel.IsBackward()))
	return nil
}

// moveLinesHorizontally rigidly shifts the indentation of every line
// touched by the selection. Unlike vertical expansion, a line that the
// range's end merely touches still shifts.
func moveLinesHorizontally(s *engine.Session, req Request) error {
	sel := s.Selection()
	r := sel.Range()

	first := s.OffsetToPoint(r.Start).Line
	last := s.OffsetToPoint(r.End).Line

	// Capture pre-shift geometry for rebuilding the selection.
	anchorPt := s.OffsetToPoint(sel.Anchor)
	headPt := s.OffsetToPoint(sel.Head)
	anchorLineStart := s.LineStartOffset(anchorPt.Line)
	headLineStart := s.LineStartOffset(headPt.Line)

	deltas, err := s.RigidShiftLines(first, last, req.Magnitude)
	if err != nil {
		return err
	}

	s.SetSelection(cursor.Selection{
		Anchor: shiftedOffset(sel.Anchor, anchorPt.Line, anchorLineStart, first, deltas),
		Head:   shiftedOffset(sel.Head, headPt.Line, headLineStart, first, deltas),
	})
	return nil
}

// shiftedOffset maps a pre-shift offset to its post-shift location.
// lineStart is the offset's line start before the shift; first is the
// first shifted line. An offset that sat inside removed whitespace is
// pinned to its line's new start.
func shiftedOffset(off engine.ByteOffset, line uint32, lineStart engine.ByteOffset, first uint32, deltas []int64) engine.ByteOffset {
	if line < first {
		return off
	}

	var before int64
	idx := int(line - first)
	if idx >= len(deltas) {
		idx = len(deltas) - 1
	}
	for i := 0; i < idx; i++ {
		before += deltas[i]
	}

	newLineStart := lineStart + before
	newOff := off + before + deltas[idx]
	if newOff < newLineStart {
		newOff = newLineStart
	}
	return newOff
}
