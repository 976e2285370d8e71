package workflow

import (
	"context"
	"fmt"
	"sort"
)

// GuardFunc evaluates whether a transition should be allowed
type GuardFunc func(ctx context.Context) bool

// Builder assembles a transition table and stamps out independent
// machine instances from it.
type Builder struct {
	configs map[State]*stateConfig
}

// StateConfiguration configures transitions out of one state
type StateConfiguration struct {
	config *stateConfig
}

type transition struct {
	toState State
	guard   GuardFunc
}

type stateConfig struct {
	transitions map[Trigger][]transition
}

// NewBuilder creates an empty state machine builder
func NewBuilder() *Builder {
	return &Builder{configs: make(map[State]*stateConfig)}
}

// Configure returns the configuration for the given state, creating
// it if the state has not been configured before
func (b *Builder) Configure(state State) StateConfiguration {
	if state == "" {
		panic("workflow: cannot configure empty state")
	}
	config, ok := b.configs[state]
	if !ok {
		config = &stateConfig{transitions: make(map[Trigger][]transition)}
		b.configs[state] = config
	}
	return StateConfiguration{config: config}
}

// Permit allows a trigger to transition to the target state
func (c StateConfiguration) Permit(trigger Trigger, toState State) StateConfiguration {
	return c.PermitIf(trigger, toState, nil)
}

// PermitIf allows a trigger to transition to the target state when the
// guard passes. Multiple transitions for the same trigger are tried in
// registration order.
func (c StateConfiguration) PermitIf(trigger Trigger, toState State, guard GuardFunc) StateConfiguration {
	if toState == "" {
		panic("workflow: cannot permit transition to empty state")
	}
	c.config.transitions[trigger] = append(c.config.transitions[trigger], transition{
		toState: toState,
		guard:   guard,
	})
	return c
}

// Build creates a machine instance starting at the initial state. The
// transition table is copied, so later builder changes do not affect
// machines already built.
func (b *Builder) Build(initialState State) StateMachine {
	if initialState == "" {
		panic("workflow: cannot build with empty initial state")
	}

	configs := make(map[State]*stateConfig, len(b.configs))
	for state, config := range b.configs {
		transitions := make(map[Trigger][]transition, len(config.transitions))
		for trigger, ts := range config.transitions {
			transitions[trigger] = append([]transition(nil), ts...)
		}
		configs[state] = &stateConfig{transitions: transitions}
	}

	return &stateMachine{currentState: initialState, configs: configs}
}

type stateMachine struct {
	currentState State
	configs      map[State]*stateConfig
}

func (m *stateMachine) State() State {
	return m.currentState
}

func (m *stateMachine) CanFire(trigger Trigger) bool {
	config, ok := m.configs[m.currentState]
	if !ok {
		return false
	}
	return len(config.transitions[trigger]) > 0
}

func (m *stateMachine) Fire(ctx context.Context, trigger Trigger) error {
	config, ok := m.configs[m.currentState]
	if !ok {
		return fmt.Errorf("%w: trigger %s from unconfigured state %s", ErrInvalidTransition, trigger, m.currentState)
	}

	transitions := config.transitions[trigger]
	if len(transitions) == 0 {
		return fmt.Errorf("%w: trigger %s from state %s", ErrInvalidTransition, trigger, m.currentState)
	}

	for _, t := range transitions {
		if t.guard == nil || t.guard(ctx) {
			m.currentState = t.toState
			return nil
		}
	}

	return fmt.Errorf("%w: trigger %s from state %s", ErrGuardFailed, trigger, m.currentState)
}

func (m *stateMachine) PermittedTriggers() []Trigger {
	config, ok := m.configs[m.currentState]
	if !ok {
		return nil
	}

	triggers := make([]Trigger, 0, len(config.transitions))
	for trigger := range config.transitions {
		triggers = append(triggers, trigger)
	}
	sort.Slice(triggers, func(i, j int) bool { return triggers[i] < triggers[j] })
	return triggers
}
