package listing

import (
	"context"
	"fmt"
	"sync"

	"github.com/formtrack/formtrack/internal/api"
	"github.com/formtrack/formtrack/internal/domain/entity"
	"github.com/formtrack/formtrack/internal/domain/workflow"
	"go.uber.org/zap"
)

// Backend is the slice of the API client the listing workflow needs
type Backend interface {
	ListForms(ctx context.Context, filter api.FormFilter) ([]entity.Form, int, error)
	UpdateFormStatus(ctx context.Context, id int64, status entity.Status) (*entity.Form, error)
}

// Mode selects which forms the listing shows
type Mode int

const (
	// ModeOwn lists forms submitted by the current user
	ModeOwn Mode = iota
	// ModeReview lists forms assigned to the current user for review
	ModeReview
)

func (m Mode) String() string {
	if m == ModeReview {
		return "review"
	}
	return "own"
}

// ErrNotReviewer is returned when an identity without review rights
// asks for reviewer behavior
var ErrNotReviewer = fmt.Errorf("current user cannot review forms")

// Workflow drives the forms listing: filter state, mode switching,
// and status transitions. Consistency comes from full refetches, not
// local mutation; after every transition the whole filtered list is
// re-read so the display always reflects backend truth.
type Workflow struct {
	backend  Backend
	identity entity.Identity
	logger   *zap.Logger

	mu           sync.Mutex
	mode         Mode
	typeFilter   entity.FormType
	statusFilter entity.Status
	forms        []entity.Form
	total        int
}

// NewWorkflow creates a listing workflow in own-forms mode
func NewWorkflow(backend Backend, identity entity.Identity, logger *zap.Logger) *Workflow {
	return &Workflow{
		backend:  backend,
		identity: identity,
		logger:   logger,
	}
}

// Mode returns the current view mode
func (w *Workflow) Mode() Mode {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.mode
}

// Filter returns the active filters
func (w *Workflow) Filter() (entity.FormType, entity.Status) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.typeFilter, w.statusFilter
}

// Forms returns the most recently fetched list
func (w *Workflow) Forms() []entity.Form {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.forms
}

// Total returns the backend's total count for the current filter
func (w *Workflow) Total() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.total
}

// SetMode switches between own-forms and review mode and refetches.
// Review mode is refused for identities that cannot review.
func (w *Workflow) SetMode(ctx context.Context, mode Mode) error {
	if mode == ModeReview && !w.identity.CanReview() {
		return ErrNotReviewer
	}
	w.mu.Lock()
	w.mode = mode
	w.mu.Unlock()
	return w.Refresh(ctx)
}

// SetTypeFilter narrows the listing to one form type ("" = all) and
// refetches
func (w *Workflow) SetTypeFilter(ctx context.Context, t entity.FormType) error {
	w.mu.Lock()
	w.typeFilter = t
	w.mu.Unlock()
	return w.Refresh(ctx)
}

// SetStatusFilter narrows the listing to one status ("" = all) and
// refetches
func (w *Workflow) SetStatusFilter(ctx context.Context, s entity.Status) error {
	w.mu.Lock()
	w.statusFilter = s
	w.mu.Unlock()
	return w.Refresh(ctx)
}

func (w *Workflow) filter() api.FormFilter {
	w.mu.Lock()
	defer w.mu.Unlock()
	filter := api.FormFilter{
		FormType: w.typeFilter,
		Status:   w.statusFilter,
	}
	if w.mode == ModeReview {
		filter.AssignedToID = w.identity.UserID
	} else {
		filter.SubmittedByID = w.identity.UserID
	}
	return filter
}

// Refresh re-fetches the full filtered list from the backend. On
// failure the previously displayed list is left untouched.
func (w *Workflow) Refresh(ctx context.Context) error {
	forms, total, err := w.backend.ListForms(ctx, w.filter())
	if err != nil {
		w.logger.Error("Failed to load forms",
			zap.String("mode", w.Mode().String()),
			zap.Error(err))
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.forms = forms
	w.total = total
	return nil
}

// Actions returns the status transitions the current user may fire on
// a form: approve and reject, exactly when review mode is active and
// the form is still pending.
func (w *Workflow) Actions(form entity.Form) []workflow.Trigger {
	w.mu.Lock()
	mode := w.mode
	w.mu.Unlock()

	if mode != ModeReview || !w.identity.CanReview() {
		return nil
	}
	return workflow.ReviewerTriggers(form.Status)
}

// Approve transitions a pending form to approved
func (w *Workflow) Approve(ctx context.Context, form entity.Form) error {
	return w.transition(ctx, form, workflow.TriggerApprove)
}

// Reject transitions a pending form to rejected
func (w *Workflow) Reject(ctx context.Context, form entity.Form) error {
	return w.transition(ctx, form, workflow.TriggerReject)
}

// transition validates the trigger against the review lifecycle,
// issues the status update, then refetches the whole list. A failed
// update leaves the displayed list unchanged.
func (w *Workflow) transition(ctx context.Context, form entity.Form, trigger workflow.Trigger) error {
	if w.Mode() != ModeReview || !w.identity.CanReview() {
		return ErrNotReviewer
	}

	machine := workflow.NewReviewLifecycle(form.Status)
	if err := machine.Fire(ctx, trigger); err != nil {
		return err
	}

	target := machine.State().Status()
	if _, err := w.backend.UpdateFormStatus(ctx, form.ID, target); err != nil {
		w.logger.Error("Status transition failed",
			zap.Int64("form_id", form.ID),
			zap.String("target_status", target.String()),
			zap.Error(err))
		return err
	}

	w.logger.Info("Form status updated",
		zap.Int64("form_id", form.ID),
		zap.String("status", target.String()))

	return w.Refresh(ctx)
}
