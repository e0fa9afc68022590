package session

// State is the lifecycle position of a Session.
type State int

const (
	// StateEmpty is a new session with nothing bound.
	StateEmpty State = iota
	// StateInputReady has a validated, open input.
	StateInputReady
	// StateReady has both input and output open.
	StateReady
	// StateClosed is terminal.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateInputReady:
		return "input-ready"
	case StateReady:
		return "ready"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}
