package form

import "github.com/formtrack/formtrack/internal/domain/workflow"

// View lifecycle for the create-form screen.
const (
	StateIdle                 workflow.State = "idle"
	StateLoadingReferenceData workflow.State = "loading_reference_data"
	StateReady                workflow.State = "ready"
	StateSubmitting           workflow.State = "submitting"
	StateSubmittedOk          workflow.State = "submitted_ok"
	StateSubmittedError       workflow.State = "submitted_error"
)

const (
	triggerLoad    workflow.Trigger = "LOAD"
	triggerLoaded  workflow.Trigger = "LOADED"
	triggerSubmit  workflow.Trigger = "SUBMIT"
	triggerSucceed workflow.Trigger = "SUCCEED"
	triggerFail    workflow.Trigger = "FAIL"
	triggerReset   workflow.Trigger = "RESET"
)

var viewBuilder = func() *workflow.Builder {
	b := workflow.NewBuilder()
	b.Configure(StateIdle).
		Permit(triggerLoad, StateLoadingReferenceData)
	b.Configure(StateLoadingReferenceData).
		Permit(triggerLoaded, StateReady)
	b.Configure(StateReady).
		Permit(triggerSubmit, StateSubmitting)
	b.Configure(StateSubmitting).
		Permit(triggerSucceed, StateSubmittedOk).
		Permit(triggerFail, StateSubmittedError)
	b.Configure(StateSubmittedOk).
		Permit(triggerReset, StateReady)
	b.Configure(StateSubmittedError).
		Permit(triggerReset, StateReady)
	return b
}()
