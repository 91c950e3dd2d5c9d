package input

// Direction represents a directional command.
type Direction uint8

const (
	// DirNone indicates no direction.
	DirNone Direction = iota
	// DirUp indicates upward direction.
	DirUp
	// DirDown indicates downward direction.
	DirDown
	// DirLeft indicates leftward direction.
	DirLeft
	// DirRight indicates rightward direction.
	DirRight
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// ActionSource indicates the origin of an action.
type ActionSource uint8

const (
	// SourceKeyboard indicates the action originated from keyboard input.
	SourceKeyboard ActionSource = iota
	// SourcePlugin indicates the action originated from a plugin.
	SourcePlugin
	// SourceAPI indicates the action originated from an API call.
	SourceAPI
)

// String returns a string representation of the action source.
func (s ActionSource) String() string {
	switch s {
	case SourcePlugin:
		return "plugin"
	case SourceAPI:
		return "api"
	default:
		return "keyboard"
	}
}

// Action is a named command routed through the dispatcher, such as
// "move.textDown".
type Action struct {
	// Name is the action identifier, namespaced by the prefix before
	// the first dot.
	Name string

	// Count is the repeat count (0 means unspecified, treated as 1).
	Count int

	// Source indicates where the action originated.
	Source ActionSource
}

// NewAction creates an action with the given name.
func NewAction(name string) Action {
	return Action{Name: name}
}

// WithCount returns a copy of the action with a repeat count.
func (a Action) WithCount(count int) Action {
	a.Count = count
	return a
}

// Namespace returns the action's namespace prefix, or "" when the name
// is not namespaced.
func (a Action) Namespace() string {
	for i := 0; i < len(a.Name); i++ {
		if a.Name[i] == '.' {
			return a.Name[:i]
		}
	}
	return ""
}
