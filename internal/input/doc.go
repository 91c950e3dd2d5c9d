// Package input defines the action types produced by input sources and
// consumed by the dispatcher.
package input
