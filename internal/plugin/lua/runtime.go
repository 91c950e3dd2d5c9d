package lua

import (
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/movetext/internal/config"
	"github.com/dshills/movetext/internal/dispatcher"
	movehandler "github.com/dshills/movetext/internal/dispatcher/handlers/move"
	"github.com/dshills/movetext/internal/input"
)

// Runtime hosts a Lua state with the movetext module preloaded.
type Runtime struct {
	mu sync.Mutex

	L          *lua.LState
	dispatcher *dispatcher.Dispatcher
	registry   *config.Registry

	closed bool
}

// NewRuntime creates a Lua runtime bound to a dispatcher and registry.
func NewRuntime(d *dispatcher.Dispatcher, registry *config.Registry) *Runtime {
	r := &Runtime{
		L:          lua.NewState(),
		dispatcher: d,
		registry:   registry,
	}
	r.L.PreloadModule("movetext", r.loader)
	return r
}

// Exec runs a chunk of Lua source.
func (r *Runtime) Exec(source string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRuntimeClosed
	}
	return r.L.DoString(source)
}

// ExecFile runs a Lua script from a file.
func (r *Runtime) ExecFile(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRuntimeClosed
	}
	return r.L.DoFile(path)
}

// Close releases the Lua state.
func (r *Runtime) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.closed = true
	r.L.Close()
}

// loader builds the movetext module table.
func (r *Runtime) loader(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"move_up":    r.moveFn(movehandler.ActionTextUp),
		"move_down":  r.moveFn(movehandler.ActionTextDown),
		"move_left":  r.moveFn(movehandler.ActionTextLeft),
		"move_right": r.moveFn(movehandler.ActionTextRight),
		"get":        r.getFn,
		"set":        r.setFn,
		"text":       r.textFn,
		"cursor":     r.cursorFn,
	})
	L.Push(mod)
	return 1
}

// moveFn returns a Lua function dispatching the named move action.
// From Lua: ok, err = mt.move_down(n); n defaults to 1.
func (r *Runtime) moveFn(actionName string) lua.LGFunction {
	return func(L *lua.LState) int {
		count := L.OptInt(1, 1)

		action := input.NewAction(actionName).WithCount(count)
		action.Source = input.SourcePlugin

		result := r.dispatcher.Dispatch(action)
		if result.IsError() {
			L.Push(lua.LFalse)
			L.Push(lua.LString(result.Error.Error()))
			return 2
		}
		L.Push(lua.LTrue)
		return 1
	}
}

// getFn returns a configuration value. From Lua: v = mt.get(path).
func (r *Runtime) getFn(L *lua.LState) int {
	path := L.CheckString(1)

	val, err := r.registry.Get(path)
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(toLuaValue(val))
	return 1
}

// setFn sets a configuration value. From Lua: ok, err = mt.set(path, v).
func (r *Runtime) setFn(L *lua.LState) int {
	path := L.CheckString(1)
	value := toGoValue(L.CheckAny(2))

	if err := r.registry.Set(path, value); err != nil {
		L.Push(lua.LFalse)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LTrue)
	return 1
}

// textFn returns the session's full text.
func (r *Runtime) textFn(L *lua.LState) int {
	s := r.dispatcher.Session()
	if s == nil {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(s.Text()))
	return 1
}

// cursorFn returns the cursor position as (line, column), 0-indexed.
func (r *Runtime) cursorFn(L *lua.LState) int {
	s := r.dispatcher.Session()
	if s == nil {
		L.Push(lua.LNil)
		return 1
	}
	pt := s.CursorPoint()
	L.Push(lua.LNumber(pt.Line))
	L.Push(lua.LNumber(pt.Column))
	return 2
}

// toLuaValue converts a Go config value to a Lua value.
func toLuaValue(v any) lua.LValue {
	switch val := v.(type) {
	case nil:
		return lua.LNil
	case bool:
		return lua.LBool(val)
	case int:
		return lua.LNumber(val)
	case int64:
		return lua.LNumber(val)
	case float64:
		return lua.LNumber(val)
	case string:
		return lua.LString(val)
	default:
		return lua.LNil
	}
}

// toGoValue converts a Lua value to a Go config value. Integral numbers
// become ints so they validate against integer settings.
func toGoValue(lv lua.LValue) any {
	switch v := lv.(type) {
	case lua.LBool:
		return bool(v)
	case lua.LNumber:
		f := float64(v)
		if f == float64(int64(f)) {
			return int(f)
		}
		return f
	case lua.LString:
		return string(v)
	default:
		return nil
	}
}
