package tui

import (
	"github.com/formtrack/formtrack/internal/dashboard"
	"github.com/formtrack/formtrack/internal/domain/entity"
)

// Messages produced by background commands. Each carries only the
// outcome; view state itself lives in the workflows, which the update
// loop re-reads after every message.

type dashboardLoadedMsg struct {
	snap dashboard.Snapshot
}

type referenceDataLoadedMsg struct {
	err error
}

type costCentersLoadedMsg struct {
	customerID int64
	err        error
}

type formsRefreshedMsg struct {
	err error
}

type submitDoneMsg struct {
	created *entity.Form
	err     error
}

type transitionDoneMsg struct {
	formID int64
	err    error
}

type exportDoneMsg struct {
	path string
	err  error
}
