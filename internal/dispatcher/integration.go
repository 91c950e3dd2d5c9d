package dispatcher

import (
	"github.com/dshills/movetext/internal/dispatcher/execctx"
	movehandler "github.com/dshills/movetext/internal/dispatcher/handlers/move"
	"github.com/dshills/movetext/internal/engine"
)

// NewSystem creates a dispatcher with the standard handlers registered
// and bound to the given session and settings.
func NewSystem(s *engine.Session, settings execctx.ConfigInterface) *Dispatcher {
	d := NewWithDefaults()
	d.SetSession(s)
	d.SetSettings(settings)

	d.RegisterNamespace(movehandler.NewMoveHandler())

	// Vertical moves continue the column chain; everything else,
	// including horizontal moves, resets it.
	d.MarkColumnChaining(movehandler.ActionTextUp, movehandler.ActionTextDown)

	return d
}
