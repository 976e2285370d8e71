package workflow

// Trigger represents an event that can cause a state transition
type Trigger string

// Review lifecycle triggers. Approve and Reject are the only ones a
// reviewer can fire from this client; Complete belongs to a later
// back-office step and is configured for completeness.
const (
	TriggerApprove  Trigger = "APPROVE"
	TriggerReject   Trigger = "REJECT"
	TriggerComplete Trigger = "COMPLETE"
)

// String returns the string representation of the trigger
func (t Trigger) String() string {
	return string(t)
}
