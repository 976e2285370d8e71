package workflow

import (
	"testing"

	"github.com/formtrack/formtrack/internal/domain/entity"
)

func TestReviewerTriggers(t *testing.T) {
	tests := []struct {
		status entity.Status
		want   []Trigger
	}{
		{entity.StatusPending, []Trigger{TriggerApprove, TriggerReject}},
		{entity.StatusApproved, nil},
		{entity.StatusRejected, nil},
		{entity.StatusCompleted, nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got := ReviewerTriggers(tt.status)
			if len(got) != len(tt.want) {
				t.Fatalf("ReviewerTriggers(%s) = %v, want %v", tt.status, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("ReviewerTriggers(%s) = %v, want %v", tt.status, got, tt.want)
				}
			}
		})
	}
}

func TestReviewLifecycle_ApprovedCanComplete(t *testing.T) {
	m := NewReviewLifecycle(entity.StatusApproved)

	// Completion exists in the lifecycle but is never offered to reviewers.
	if !m.CanFire(TriggerComplete) {
		t.Error("CanFire(COMPLETE) from approved = false, want true")
	}
	if got := ReviewerTriggers(entity.StatusApproved); len(got) != 0 {
		t.Errorf("ReviewerTriggers(approved) = %v, want none", got)
	}
}
