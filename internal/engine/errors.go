package engine

import "github.com/dshills/movetext/internal/engine/buffer"

// Buffer error sentinels, re-exported so a single errors.Is target
// matches failures surfaced through either layer.
var (
	// ErrOffsetOutOfRange indicates an offset is outside the valid buffer range.
	ErrOffsetOutOfRange = buffer.ErrOffsetOutOfRange

	// ErrRangeInvalid indicates an invalid range (e.g., end < start).
	ErrRangeInvalid = buffer.ErrRangeInvalid
)
