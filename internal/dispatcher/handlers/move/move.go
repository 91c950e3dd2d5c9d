package move

import (
	"github.com/dshills/movetext/internal/config"
	"github.com/dshills/movetext/internal/dispatcher/execctx"
	"github.com/dshills/movetext/internal/dispatcher/handler"
	"github.com/dshills/movetext/internal/input"
	textmove "github.com/dshills/movetext/internal/move"
)

// Action names for displacement operations.
const (
	ActionTextUp    = "move.textUp"
	ActionTextDown  = "move.textDown"
	ActionTextLeft  = "move.textLeft"
	ActionTextRight = "move.textRight"
)

// MoveHandler handles text displacement operations.
type MoveHandler struct{}

// NewMoveHandler creates a new move handler.
func NewMoveHandler() *MoveHandler {
	return &MoveHandler{}
}

// Namespace returns the move namespace.
func (h *MoveHandler) Namespace() string {
	return "move"
}

// CanHandle returns true if this handler can process the action.
func (h *MoveHandler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionTextUp, ActionTextDown, ActionTextLeft, ActionTextRight:
		return true
	}
	return false
}

// HandleAction processes a displacement action.
func (h *MoveHandler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.ValidateForEdit(); err != nil {
		return handler.Error(err)
	}

	count := ctx.GetCount()

	var req textmove.Request
	switch action.Name {
	case ActionTextUp:
		req = textmove.Request{Axis: textmove.AxisVertical, Magnitude: -count}
	case ActionTextDown:
		req = textmove.Request{Axis: textmove.AxisVertical, Magnitude: count}
	case ActionTextLeft:
		req = textmove.Request{Axis: textmove.AxisHorizontal, Magnitude: -count}
	case ActionTextRight:
		req = textmove.Request{Axis: textmove.AxisHorizontal, Magnitude: count}
	default:
		return handler.Errorf("unknown move action: %s", action.Name)
	}
	req.Options = h.options(ctx)

	if err := textmove.Move(ctx.Session, req); err != nil {
		return handler.Error(err)
	}

	if req.Axis == textmove.AxisVertical {
		return handler.Success().WithRedraw()
	}
	return handler.Success().WithRedrawLines(h.affectedLines(ctx)...)
}

// options resolves displacement policies from configuration.
func (h *MoveHandler) options(ctx *execctx.ExecutionContext) textmove.Options {
	opts := textmove.DefaultOptions()
	if ctx.Config != nil {
		opts.MaintainColumn = ctx.Config.Bool(config.SettingMaintainColumn)
		opts.WholeLines = ctx.Config.Bool(config.SettingWholeLines)
	}
	return opts
}

// affectedLines returns the lines covered by the current selection.
func (h *MoveHandler) affectedLines(ctx *execctx.ExecutionContext) []uint32 {
	s := ctx.Session
	r := s.Selection().Range()
	first := s.OffsetToPoint(r.Start).Line
	last := s.OffsetToPoint(r.End).Line

	lines := make([]uint32, 0, last-first+1)
	for line := first; line <= last; line++ {
		lines = append(lines, line)
	}
	return lines
}
