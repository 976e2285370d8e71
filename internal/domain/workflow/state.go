package workflow

import "github.com/formtrack/formtrack/internal/domain/entity"

// State is a node in a state machine. Values are plain strings so
// that both the form review lifecycle and view lifecycles can be
// expressed with the same machinery.
type State string

// String returns the string representation of the state
func (s State) String() string {
	return string(s)
}

// Review lifecycle states. These mirror the backend's status values
// one to one, so converting between the two is a cast.
const (
	StatePending   State = State(entity.StatusPending)
	StateApproved  State = State(entity.StatusApproved)
	StateRejected  State = State(entity.StatusRejected)
	StateCompleted State = State(entity.StatusCompleted)
)

var reviewTerminal = map[State]bool{
	StateApproved:  true,
	StateRejected:  true,
	StateCompleted: true,
}

// IsTerminal returns true if the review lifecycle permits no further
// transitions out of this state. Every state except pending is
// terminal for this client.
func (s State) IsTerminal() bool {
	return reviewTerminal[s]
}

// StateOf converts a backend status into its lifecycle state
func StateOf(status entity.Status) State {
	return State(status)
}

// Status converts a lifecycle state back to the backend status value
func (s State) Status() entity.Status {
	return entity.Status(s)
}
