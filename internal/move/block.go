package move

import (
	"strings"

	"github.com/dshills/movetext/internal/engine"
)

// extractLineBlock removes lines [first, last] from the buffer as one
// block, including the trailing newline. When the block ends the buffer
// without a newline, the newline preceding the block is taken instead
// and rotated to the end, so the extracted text always ends in "\n" and
// the buffer length balance is preserved.
//
// Returns the block text and the content length (the block without its
// moved newline), which callers use to re-derive selection offsets.
func extractLineBlock(s *engine.Session, first, last uint32) (string, int64, error) {
	start := s.LineStartOffset(first)
	end := s.LineEndOffset(last)
	contentLen := end - start

	if end < s.Len() {
		text, err := s.Extract(start, end+1)
		return text, contentLen, err
	}

	if start > 0 {
		// The byte before a line start is always a newline.
		text, err := s.Extract(start-1, end)
		if err != nil {
			return "", 0, err
		}
		return text[1:] + "\n", contentLen, err
	}

	// Block is the entire buffer; only reachable outside normal moves
	// since boundary checks reject single-line vertical displacement.
	text, err := s.Extract(start, end)
	return text + "\n", contentLen, err
}

// insertLineBlock inserts a block (ending in "\n") at the start of
// targetLine and returns the offset where the block's content begins.
// When the target lies past a final line that lacks a newline, the
// block's trailing newline is rotated to the front so no newline is
// gained or lost.
func insertLineBlock(s *engine.Session, targetLine uint32, text string) (engine.ByteOffset, error) {
	if targetLine < s.LineCount() {
		insertAt := s.LineStartOffset(targetLine)
		if _, err := s.Insert(insertAt, text); err != nil {
			return 0, err
		}
		return insertAt, nil
	}

	insertAt := s.Len()
	rotated := "\n" + strings.TrimSuffix(text, "\n")
	if _, err := s.Insert(insertAt, rotated); err != nil {
		return 0, err
	}
	return insertAt + 1, nil
}
