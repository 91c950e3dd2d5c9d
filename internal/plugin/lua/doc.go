// Package lua provides Lua scripting for movetext.
//
// Scripts load the "movetext" module and drive the displacement engine
// through it:
//
//	local mt = require("movetext")
//	mt.move_down(2)
//	mt.set("move.wholeLines", false)
//
// gopher-lua's LState is not goroutine-safe; the Runtime serializes all
// access behind a mutex.
package lua
