package buffer

import "sort"

// lineIndex records the byte position of every newline in the text.
// It provides O(log n) offset-to-line lookups and O(1) line-to-offset
// lookups. The index is rebuilt after each edit; for the buffer sizes
// this engine targets that is cheaper than maintaining a rope.
type lineIndex struct {
	newlines []int // byte positions of '\n', ascending
}

// computeLineIndex scans the text and records all newline positions.
func computeLineIndex(s string) lineIndex {
	var idx lineIndex
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			idx.newlines = append(idx.newlines, i)
		}
	}
	return idx
}

// lineCount returns the number of lines.
// Text with a trailing newline has a final empty line.
func (idx *lineIndex) lineCount() uint32 {
	return uint32(len(idx.newlines)) + 1
}

// lineStart returns the byte offset of the start of the given line.
// The caller must ensure line < lineCount().
func (idx *lineIndex) lineStart(line uint32) int {
	if line == 0 {
		return 0
	}
	return idx.newlines[line-1] + 1
}

// lineEnd returns the byte offset of the end of the given line, before
// its newline. textLen is the total text length, used for the last line.
func (idx *lineIndex) lineEnd(line uint32, textLen int) int {
	if int(line) < len(idx.newlines) {
		return idx.newlines[line]
	}
	return textLen
}

// lineAt returns the line containing the given byte offset.
// An offset equal to a newline position belongs to that newline's line.
func (idx *lineIndex) lineAt(offset int) uint32 {
	// Number of newlines strictly before offset.
	return uint32(sort.SearchInts(idx.newlines, offset))
}
