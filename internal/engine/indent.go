package engine

import "strings"

// RigidShiftLines shifts the leading whitespace of every line in
// [firstLine, lastLine] by delta columns. Positive delta inserts spaces
// at each line start; negative delta removes leading whitespace, never
// past column zero. Empty lines are left untouched.
//
// The returned slice holds the byte delta applied to each line, indexed
// from firstLine, so callers can re-derive selection offsets.
func (s *Session) RigidShiftLines(firstLine, lastLine uint32, delta int) ([]int64, error) {
	if lastLine >= s.buf.LineCount() {
		lastLine = s.buf.LineCount() - 1
	}
	if firstLine > lastLine {
		return nil, ErrRangeInvalid
	}

	deltas := make([]int64, lastLine-firstLine+1)

	// Walk lines in reverse so earlier offsets stay valid.
	for line := lastLine; ; line-- {
		d, err := s.rigidShiftLine(line, delta)
		if err != nil {
			return nil, err
		}
		deltas[line-firstLine] = d

		if line == firstLine {
			break
		}
	}

	return deltas, nil
}

// rigidShiftLine shifts one line's indentation and returns the byte delta.
func (s *Session) rigidShiftLine(line uint32, delta int) (int64, error) {
	lineText := s.buf.LineText(line)
	if len(lineText) == 0 {
		return 0, nil
	}

	lineStart := s.buf.LineStartOffset(line)

	if delta > 0 {
		pad := strings.Repeat(" ", delta)
		if _, err := s.buf.Insert(lineStart, pad); err != nil {
			return 0, err
		}
		return int64(delta), nil
	}

	// Count leading whitespace in columns, tabs expanding to tabWidth.
	toRemove := -delta
	columns := 0
	bytes := 0
	for _, r := range lineText {
		if columns >= toRemove {
			break
		}
		if r == ' ' {
			columns++
			bytes++
		} else if r == '\t' {
			columns += s.tabWidth
			bytes++
		} else {
			break
		}
	}

	if bytes == 0 {
		return 0, nil
	}
	if err := s.buf.Delete(lineStart, lineStart+int64(bytes)); err != nil {
		return 0, err
	}
	return -int64(bytes), nil
}
