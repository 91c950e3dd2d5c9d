package move

import (
	"errors"
	"fmt"

	"github.com/dshills/movetext/internal/engine"
)

// ErrBoundary indicates a move would push content past the start or end
// of the buffer. The buffer is never modified by a rejected move.
var ErrBoundary = errors.New("move would cross buffer boundary")

// Axis selects the direction family of a displacement.
type Axis uint8

const (
	// AxisVertical moves content across lines.
	AxisVertical Axis = iota
	// AxisHorizontal moves content across columns.
	AxisHorizontal
)

// String returns a string representation of the axis.
func (a Axis) String() string {
	if a == AxisHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// Strategy identifies how a selection is displaced.
type Strategy uint8

const (
	// StrategySingleRange moves the selected byte range as-is.
	StrategySingleRange Strategy = iota
	// StrategyWholeLine moves every line touched by the selection.
	StrategyWholeLine
)

// String returns a string representation of the strategy.
func (st Strategy) String() string {
	if st == StrategyWholeLine {
		return "whole-line"
	}
	return "single-range"
}

// Options holds the displacement policies read from configuration.
type Options struct {
	// MaintainColumn keeps a chain of vertical moves aligned to the
	// column the chain started at, instead of re-deriving the column
	// from each intermediate landing position.
	MaintainColumn bool

	// WholeLines moves multi-line selections as whole-line blocks on
	// the vertical axis.
	WholeLines bool
}

// DefaultOptions returns the default displacement policies.
func DefaultOptions() Options {
	return Options{MaintainColumn: true, WholeLines: true}
}

// Request describes one displacement.
type Request struct {
	// Axis is the direction family.
	Axis Axis

	// Magnitude is the signed distance in lines (vertical) or
	// characters (horizontal). Positive is down/right.
	Magnitude int

	// Options are the displacement policies in effect.
	Options Options
}

// ChooseStrategy selects the displacement strategy for a selection.
// Horizontal moves of multi-line selections always shift whole lines;
// vertical moves do so only when the whole-lines policy is enabled.
func ChooseStrategy(axis Axis, multiLine bool, opts Options) Strategy {
	if !multiLine {
		return StrategySingleRange
	}
	if axis == AxisHorizontal {
		return StrategyWholeLine
	}
	if opts.WholeLines {
		return StrategyWholeLine
	}
	return StrategySingleRange
}

// Move applies a displacement request to the session.
// With an active mark the selection is displaced; otherwise the current
// line is. The buffer is left untouched when an error is returned.
func Move(s *engine.Session, req Request) error {
	if req.Magnitude == 0 {
		return nil
	}

	if req.Axis == AxisHorizontal {
		// Horizontal moves break any vertical move chain.
		s.ClearStartColumn()
	}

	var err error
	if !s.MarkActive() {
		if req.Axis == AxisVertical {
			err = moveLineVertically(s, req)
		} else {
			err = moveLineHorizontally(s, req)
		}
	} else {
		first, last := touchedLines(s, s.Selection().Range())
		multiLine := last > first

		switch ChooseStrategy(req.Axis, multiLine, req.Options) {
		case StrategyWholeLine:
			if req.Axis == AxisVertical {
				err = moveLinesVertically(s, req)
			} else {
				err = moveLinesHorizontally(s, req)
			}
		default:
			if req.Axis == AxisVertical {
				err = moveRangeVertically(s, req)
			} else {
				err = moveRangeHorizontally(s, req)
			}
		}
	}

	if err != nil {
		return fmt.Errorf("move %s: %w", req.direction(), err)
	}
	return nil
}

// direction names the request's direction for error context.
func (r Request) direction() string {
	if r.Axis == AxisHorizontal {
		if r.Magnitude < 0 {
			return "left"
		}
		return "right"
	}
	if r.Magnitude < 0 {
		return "up"
	}
	return "down"
}

// touchedLines returns the first and last line a range occupies. A range
// ending exactly at a line start does not occupy that line, matching the
// usual editor convention for line-wise region expansion.
func touchedLines(s *engine.Session, r engine.Range) (uint32, uint32) {
	first := s.OffsetToPoint(r.Start).Line
	endPt := s.OffsetToPoint(r.End)
	last := endPt.Line
	if last > first && endPt.Column == 0 && r.End > r.Start {
		last--
	}
	return first, last
}

// targetColumn resolves the column a vertical move should land on. With
// the maintain-column policy the column recorded at the start of the
// move chain wins; otherwise the current column is used each time.
func targetColumn(s *engine.Session, current uint32, maintain bool) uint32 {
	if !maintain {
		s.ClearStartColumn()
		return current
	}
	if col, ok := s.StartColumn(); ok {
		return col
	}
	s.SetStartColumn(current)
	return current
}

// checkVerticalBounds rejects a move of lines [first, last] by arg lines
// when any part of the block would leave the buffer's content lines.
func checkVerticalBounds(s *engine.Session, first, last uint32, arg int) error {
	if arg < 0 && int64(first)+int64(arg) < 0 {
		return ErrBoundary
	}
	if arg > 0 && int64(last)+int64(arg) > int64(s.LastContentLine()) {
		return ErrBoundary
	}
	return nil
}
