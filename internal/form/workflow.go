package form

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/formtrack/formtrack/internal/api"
	"github.com/formtrack/formtrack/internal/domain/entity"
	"github.com/formtrack/formtrack/internal/domain/workflow"
	"github.com/formtrack/formtrack/pkg/utils"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Backend is the slice of the API client the submission workflow needs
type Backend interface {
	ListCustomers(ctx context.Context) ([]entity.Customer, error)
	ListUsers(ctx context.Context, role entity.Role) ([]entity.User, error)
	ListCostCenters(ctx context.Context, customerID int64) ([]entity.CostCenter, error)
	CreateForm(ctx context.Context, input api.CreateFormInput) (*entity.Form, error)
}

// UploadLimits are the advisory client-side attachment checks
type UploadLimits struct {
	MaxSize           int64
	AllowedExtensions []string
}

// Draft holds the user-entered field values for a form in progress.
// Amount is kept as raw input and only parsed during validation, so
// a failed submission round-trips exactly what the user typed.
type Draft struct {
	FormType       entity.FormType
	Amount         string
	Remarks        string
	CustomerID     int64
	CostCenterID   int64
	AssignedToID   int64
	AttachmentPath string
	AttachmentSize int64
}

func defaultDraft() Draft {
	return Draft{FormType: entity.FormTypeReimbursement}
}

// Workflow drives the create-form view: reference-data loading, the
// customer to cost-center cascade, validation, multipart submission,
// and the reset-on-success / preserve-on-failure contract.
type Workflow struct {
	backend  Backend
	identity entity.Identity
	limits   UploadLimits
	logger   *zap.Logger

	mu           sync.Mutex
	machine      workflow.StateMachine
	draft        Draft
	customers    []entity.Customer
	managers     []entity.User
	costCenters  []entity.CostCenter
	customersErr error
	managersErr  error
	lastCreated  *entity.Form
}

// NewWorkflow creates a submission workflow for the given identity
func NewWorkflow(backend Backend, identity entity.Identity, limits UploadLimits, logger *zap.Logger) *Workflow {
	return &Workflow{
		backend:  backend,
		identity: identity,
		limits:   limits,
		logger:   logger,
		machine:  viewBuilder.Build(StateIdle),
		draft:    defaultDraft(),
	}
}

// State returns the current view state
func (w *Workflow) State() workflow.State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.machine.State()
}

// Draft returns a copy of the current field values
func (w *Workflow) Draft() Draft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

// Customers returns the loaded customer reference list
func (w *Workflow) Customers() []entity.Customer {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.customers
}

// Managers returns the loaded project-manager reference list
func (w *Workflow) Managers() []entity.User {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.managers
}

// CostCenters returns the cost centers scoped to the selected
// customer; empty until a customer is chosen
func (w *Workflow) CostCenters() []entity.CostCenter {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.costCenters
}

// LastCreated returns the form created by the most recent successful
// submission, if any
func (w *Workflow) LastCreated() *entity.Form {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastCreated
}

// ReferenceDataErrors returns the failures from the initial
// reference-data load. A failed branch leaves the form usable for
// fields that do not depend on it.
func (w *Workflow) ReferenceDataErrors() []error {
	w.mu.Lock()
	defer w.mu.Unlock()
	var errs []error
	if w.customersErr != nil {
		errs = append(errs, w.customersErr)
	}
	if w.managersErr != nil {
		errs = append(errs, w.managersErr)
	}
	return errs
}

// Start loads the customer and project-manager reference lists
// concurrently. Either branch may fail without blocking the other;
// the view always reaches the ready state.
func (w *Workflow) Start(ctx context.Context) error {
	w.mu.Lock()
	if err := w.machine.Fire(ctx, triggerLoad); err != nil {
		w.mu.Unlock()
		return err
	}
	w.mu.Unlock()

	var (
		wg           sync.WaitGroup
		customers    []entity.Customer
		managers     []entity.User
		customersErr error
		managersErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		customers, customersErr = w.backend.ListCustomers(ctx)
	}()
	go func() {
		defer wg.Done()
		managers, managersErr = w.backend.ListUsers(ctx, entity.RoleProjectManager)
	}()
	wg.Wait()

	if customersErr != nil {
		w.logger.Error("Failed to load customers", zap.Error(customersErr))
	}
	if managersErr != nil {
		w.logger.Error("Failed to load project managers", zap.Error(managersErr))
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.customers = customers
	w.managers = managers
	w.customersErr = customersErr
	w.managersErr = managersErr
	return w.machine.Fire(ctx, triggerLoaded)
}

// SelectCustomer records the chosen customer, invalidates any prior
// cost-center choice, and fetches the cost centers scoped to the new
// customer. Cost centers are never valid across customers.
func (w *Workflow) SelectCustomer(ctx context.Context, customerID int64) error {
	w.mu.Lock()
	w.draft.CustomerID = customerID
	w.draft.CostCenterID = 0
	w.costCenters = nil
	w.mu.Unlock()

	if customerID == 0 {
		return nil
	}

	costCenters, err := w.backend.ListCostCenters(ctx, customerID)
	if err != nil {
		w.logger.Error("Failed to load cost centers",
			zap.Int64("customer_id", customerID),
			zap.Error(err))
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	// the user may have switched customers again while this fetch
	// was in flight; a stale result must not repopulate the list
	if w.draft.CustomerID != customerID {
		return nil
	}
	w.costCenters = costCenters
	return nil
}

// SelectCostCenter records the chosen cost center. Rejected until a
// customer has been selected.
func (w *Workflow) SelectCostCenter(costCenterID int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.draft.CustomerID == 0 {
		return &ValidationError{Fields: map[string]string{
			"cost_center": "select a customer first",
		}}
	}
	w.draft.CostCenterID = costCenterID
	return nil
}

// SetFormType records the chosen form type
func (w *Workflow) SetFormType(t entity.FormType) error {
	if !t.IsValid() {
		return &ValidationError{Fields: map[string]string{
			"form_type": "unknown form type: " + t.String(),
		}}
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.FormType = t
	return nil
}

// SetAmount records the raw amount input
func (w *Workflow) SetAmount(raw string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Amount = raw
}

// SetRemarks records the remarks text
func (w *Workflow) SetRemarks(remarks string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Remarks = remarks
}

// SelectManager records the optional reviewer assignment
func (w *Workflow) SelectManager(userID int64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.AssignedToID = userID
}

// Attach records the optional attachment by path and size
func (w *Workflow) Attach(path string, size int64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.AttachmentPath = path
	w.draft.AttachmentSize = size
}

// ClearAttachment removes the attachment from the draft
func (w *Workflow) ClearAttachment() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.AttachmentPath = ""
	w.draft.AttachmentSize = 0
}

// Validate runs the pre-flight checks on the current draft and
// returns nil when the draft may be submitted
func (w *Workflow) Validate() *ValidationError {
	w.mu.Lock()
	draft := w.draft
	w.mu.Unlock()
	return validateDraft(draft, w.limits)
}

func validateDraft(draft Draft, limits UploadLimits) *ValidationError {
	fields := make(map[string]string)

	if !draft.FormType.IsValid() {
		fields["form_type"] = "choose a form type"
	}

	if draft.Amount == "" {
		fields["total_amount"] = "enter an amount"
	} else if amount, err := decimal.NewFromString(draft.Amount); err != nil {
		fields["total_amount"] = "not a valid amount"
	} else if err := utils.ValidateAmount(amount); err != nil {
		fields["total_amount"] = "amount must be greater than zero"
	}

	if draft.CustomerID == 0 {
		fields["customer"] = "select a customer"
	}
	if draft.CostCenterID == 0 {
		fields["cost_center"] = "select a cost center"
	}

	if draft.AttachmentPath != "" {
		if err := utils.ValidateAttachment(draft.AttachmentPath, draft.AttachmentSize, limits.MaxSize, limits.AllowedExtensions); err != nil {
			fields["attachment"] = err.Error()
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// Submit validates the draft and creates the form. On success every
// field resets to its default, including the attachment and the
// cost-center list. On failure the draft is preserved untouched so
// the user can retry without re-entering anything.
func (w *Workflow) Submit(ctx context.Context) (*entity.Form, error) {
	w.mu.Lock()
	draft := w.draft
	w.mu.Unlock()

	if verr := validateDraft(draft, w.limits); verr != nil {
		return nil, verr
	}

	w.mu.Lock()
	if err := w.machine.Fire(ctx, triggerSubmit); err != nil {
		w.mu.Unlock()
		return nil, err
	}
	w.mu.Unlock()

	amount, err := decimal.NewFromString(draft.Amount)
	if err != nil {
		// unreachable after validation, but never submit garbage
		w.fail(ctx, err)
		return nil, err
	}

	input := api.CreateFormInput{
		FormType:      draft.FormType,
		TotalAmount:   amount,
		Remarks:       draft.Remarks,
		CostCenterID:  draft.CostCenterID,
		SubmittedByID: w.identity.UserID,
		AssignedToID:  draft.AssignedToID,
	}

	if draft.AttachmentPath != "" {
		file, err := os.Open(draft.AttachmentPath)
		if err != nil {
			w.fail(ctx, err)
			return nil, err
		}
		defer file.Close()
		input.Attachment = &api.Attachment{
			Filename: filepath.Base(draft.AttachmentPath),
			Content:  file,
		}
	}

	created, err := w.backend.CreateForm(ctx, input)
	if err != nil {
		w.fail(ctx, err)
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.machine.Fire(ctx, triggerSucceed); err != nil {
		return nil, err
	}
	w.draft = defaultDraft()
	w.costCenters = nil
	w.lastCreated = created

	w.logger.Info("Form submitted",
		zap.Int64("form_id", created.ID),
		zap.String("form_number", created.FormNumber),
		zap.String("form_type", created.FormType.String()))
	return created, nil
}

func (w *Workflow) fail(ctx context.Context, cause error) {
	w.logger.Error("Form submission failed", zap.Error(cause))
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.machine.Fire(ctx, triggerFail); err != nil {
		w.logger.Error("Submission state transition failed", zap.Error(err))
	}
}

// Acknowledge dismisses the submitted-ok or submitted-error notice
// and returns the view to the ready state
func (w *Workflow) Acknowledge(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.machine.Fire(ctx, triggerReset)
}
