// Package move provides handlers for text displacement actions.
//
// The MoveHandler type maps "move.*" actions onto the displacement
// engine:
//   - move.textUp: move the line or selection up
//   - move.textDown: move the line or selection down
//   - move.textLeft: move the line or selection left
//   - move.textRight: move the line or selection right
//
// Repeat counts multiply the displacement distance. Boundary violations
// are reported as errors and leave the buffer untouched.
package move
