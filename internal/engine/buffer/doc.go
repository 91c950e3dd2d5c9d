// Package buffer provides a thread-safe text buffer backed by a flat byte
// string with a newline index. It is the primary interface for text
// manipulation in the movetext engine.
//
// The buffer package provides:
//
//   - Thread-safe read/write access via sync.RWMutex
//   - Coordinate conversion between byte offsets and line/column positions
//   - Range extraction (delete-and-return) for text relocation
//   - Line ending normalization
//   - Revision tracking for change management
//
// Basic usage:
//
//	// Create a buffer with some text
//	buf := buffer.NewBufferFromString("Hello, World!")
//
//	// Insert text
//	buf.Insert(7, "Beautiful ")  // "Hello, Beautiful World!"
//
//	// Extract a range (delete and return it)
//	text, _ := buf.Extract(0, 7)  // text == "Hello, "
//
// Position Types:
//
//   - ByteOffset: Raw byte position in the buffer
//   - Point: Line and column position (0-indexed, column in bytes)
//
// Thread Safety:
//
// All Buffer methods are thread-safe. Read operations acquire a read lock,
// while write operations acquire an exclusive write lock.
package buffer
