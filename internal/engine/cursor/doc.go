// Package cursor provides the selection model for the movetext engine.
//
// A Selection is an immutable value pairing an anchor (the non-moving end)
// with a head (the cursor). When Anchor == Head the selection is just a
// cursor. Directionality — whether the head sits before or after the
// anchor — is preserved by every operation that rebuilds a selection,
// which is what lets text displacement keep the user's selection shape
// intact across moves.
package cursor
