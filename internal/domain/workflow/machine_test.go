package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/formtrack/formtrack/internal/domain/entity"
)

func TestState_IsTerminal(t *testing.T) {
	tests := []struct {
		state    State
		expected bool
	}{
		{StatePending, false},
		{StateApproved, true},
		{StateRejected, true},
		{StateCompleted, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			if got := tt.state.IsTerminal(); got != tt.expected {
				t.Errorf("State.IsTerminal() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestStateOf_RoundTrip(t *testing.T) {
	for _, status := range entity.Statuses() {
		if got := StateOf(status).Status(); got != status {
			t.Errorf("StateOf(%s).Status() = %s, want %s", status, got, status)
		}
	}
}

func TestMachine_Fire(t *testing.T) {
	b := NewBuilder()
	b.Configure(StatePending).
		Permit(TriggerApprove, StateApproved).
		Permit(TriggerReject, StateRejected)

	tests := []struct {
		name      string
		initial   State
		trigger   Trigger
		wantState State
		wantErr   error
	}{
		{"approve from pending", StatePending, TriggerApprove, StateApproved, nil},
		{"reject from pending", StatePending, TriggerReject, StateRejected, nil},
		{"approve from approved", StateApproved, TriggerApprove, StateApproved, ErrInvalidTransition},
		{"reject from rejected", StateRejected, TriggerReject, StateRejected, ErrInvalidTransition},
		{"complete from pending", StatePending, TriggerComplete, StatePending, ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := b.Build(tt.initial)
			err := m.Fire(context.Background(), tt.trigger)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Fire() error = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("Fire() unexpected error: %v", err)
			}
			if m.State() != tt.wantState {
				t.Errorf("State() = %s, want %s", m.State(), tt.wantState)
			}
		})
	}
}

func TestMachine_GuardedTransition(t *testing.T) {
	allowed := false
	b := NewBuilder()
	b.Configure(StatePending).
		PermitIf(TriggerApprove, StateApproved, func(ctx context.Context) bool { return allowed })

	m := b.Build(StatePending)

	if err := m.Fire(context.Background(), TriggerApprove); !errors.Is(err, ErrGuardFailed) {
		t.Fatalf("Fire() with failing guard error = %v, want ErrGuardFailed", err)
	}
	if m.State() != StatePending {
		t.Fatalf("failed guard must not change state, got %s", m.State())
	}

	allowed = true
	if err := m.Fire(context.Background(), TriggerApprove); err != nil {
		t.Fatalf("Fire() with passing guard error = %v", err)
	}
	if m.State() != StateApproved {
		t.Fatalf("State() = %s, want %s", m.State(), StateApproved)
	}
}

func TestMachine_CanFire(t *testing.T) {
	m := NewReviewLifecycle(entity.StatusPending)

	if !m.CanFire(TriggerApprove) {
		t.Error("CanFire(APPROVE) from pending = false, want true")
	}
	if !m.CanFire(TriggerReject) {
		t.Error("CanFire(REJECT) from pending = false, want true")
	}
	if m.CanFire(TriggerComplete) {
		t.Error("CanFire(COMPLETE) from pending = true, want false")
	}
}

func TestMachine_InstancesAreIndependent(t *testing.T) {
	first := NewReviewLifecycle(entity.StatusPending)
	second := NewReviewLifecycle(entity.StatusPending)

	if err := first.Fire(context.Background(), TriggerApprove); err != nil {
		t.Fatalf("Fire() error = %v", err)
	}
	if second.State() != StatePending {
		t.Errorf("second machine state = %s, want %s", second.State(), StatePending)
	}
}

func TestPermittedTriggers_StableOrder(t *testing.T) {
	m := NewReviewLifecycle(entity.StatusPending)

	got := m.PermittedTriggers()
	want := []Trigger{TriggerApprove, TriggerReject}
	if len(got) != len(want) {
		t.Fatalf("PermittedTriggers() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("PermittedTriggers() = %v, want %v", got, want)
		}
	}
}
