// Package engine provides the editing session facade for movetext.
//
// A Session owns one buffer, one selection, and the small amount of
// per-buffer state the displacement commands need: whether the mark is
// active and the remembered start column used to keep repeated vertical
// moves aligned. The host editor is expected to serialize command
// execution; the engine adds no background work of its own.
package engine
