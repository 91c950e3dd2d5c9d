// Package dispatcher routes actions to handlers and coordinates execution.
//
// Actions are routed by namespace prefix ("move" in "move.textDown")
// with a fallback to exact-name registration. The dispatcher owns the
// cross-action state the displacement engine needs, such as resetting
// the vertical move column chain when an unrelated action runs.
package dispatcher
