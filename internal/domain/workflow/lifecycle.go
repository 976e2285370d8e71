package workflow

import "github.com/formtrack/formtrack/internal/domain/entity"

// reviewBuilder holds the transition table for the form review
// lifecycle. Pending is the only state with outgoing transitions:
// a reviewer approves or rejects, and a back-office step may later
// mark an approved form completed.
var reviewBuilder = func() *Builder {
	b := NewBuilder()
	b.Configure(StatePending).
		Permit(TriggerApprove, StateApproved).
		Permit(TriggerReject, StateRejected)
	b.Configure(StateApproved).
		Permit(TriggerComplete, StateCompleted)
	return b
}()

// NewReviewLifecycle builds a review lifecycle machine positioned at
// the given backend status.
func NewReviewLifecycle(status entity.Status) StateMachine {
	return reviewBuilder.Build(StateOf(status))
}

// ReviewerTriggers returns the transitions a reviewer may fire on a
// form in the given status via this client. Completion is excluded:
// it is not reachable from the review screens.
func ReviewerTriggers(status entity.Status) []Trigger {
	machine := NewReviewLifecycle(status)
	var triggers []Trigger
	for _, t := range machine.PermittedTriggers() {
		if t == TriggerComplete {
			continue
		}
		triggers = append(triggers, t)
	}
	return triggers
}
