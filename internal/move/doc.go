// Package move implements the text displacement engine: relocating a
// line or an active selection vertically or horizontally within a
// buffer while preserving the selection's shape.
//
// Every displacement is described by a Request (axis, signed magnitude,
// policy options) and applied by Move, which picks one of two
// strategies:
//
//   - SingleRange: extract the selected byte range, advance it by lines
//     or characters, and reinsert it.
//   - WholeLine: expand the range to full lines and move the block as a
//     unit (vertical), or rigidly shift the touched lines' indentation
//     (horizontal).
//
// With no active mark the current line stands in for the selection.
//
// Boundary violations (moving the top line up, the bottom line down, or
// a range past either end of the buffer) are rejected with ErrBoundary
// before any mutation, so a failed move never changes the buffer.
package move
