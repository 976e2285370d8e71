package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FormType identifies the kind of request a form represents
type FormType string

const (
	FormTypeReimbursement FormType = "reimbursement"
	FormTypeCashAdvance   FormType = "cash_advance"
	FormTypeLiquidation   FormType = "liquidation"
)

var validFormTypes = map[FormType]bool{
	FormTypeReimbursement: true,
	FormTypeCashAdvance:   true,
	FormTypeLiquidation:   true,
}

// FormTypes lists every valid form type in display order
func FormTypes() []FormType {
	return []FormType{FormTypeReimbursement, FormTypeCashAdvance, FormTypeLiquidation}
}

// IsValid returns true if the form type is one of the known kinds
func (t FormType) IsValid() bool {
	return validFormTypes[t]
}

// String returns the wire representation of the form type
func (t FormType) String() string {
	return string(t)
}

// Label returns a human-readable name for the form type
func (t FormType) Label() string {
	switch t {
	case FormTypeReimbursement:
		return "Reimbursement"
	case FormTypeCashAdvance:
		return "Cash Advance"
	case FormTypeLiquidation:
		return "Liquidation"
	default:
		return string(t)
	}
}

// Status is the review status of a form
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

var validStatuses = map[Status]bool{
	StatusPending:   true,
	StatusApproved:  true,
	StatusRejected:  true,
	StatusCompleted: true,
}

// Statuses lists every valid status in display order
func Statuses() []Status {
	return []Status{StatusPending, StatusApproved, StatusRejected, StatusCompleted}
}

// IsValid returns true if the status is a known status value
func (s Status) IsValid() bool {
	return validStatuses[s]
}

// String returns the wire representation of the status
func (s Status) String() string {
	return string(s)
}

// Form is a reimbursement, cash-advance, or liquidation request.
// All fields are backend-owned; the client never assigns IDs or
// the display FormNumber.
type Form struct {
	ID             int64           `json:"id"`
	FormNumber     string          `json:"form_number"`
	FormType       FormType        `json:"form_type"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Remarks        string          `json:"remarks,omitempty"`
	Status         Status          `json:"status"`
	DateCreated    time.Time       `json:"date_created"`
	AttachmentPath string          `json:"attachment_path,omitempty"`
	CostCenterID   int64           `json:"cost_center_id"`
	CostCenter     CostCenter      `json:"cost_center"`
	SubmittedByID  int64           `json:"submitted_by_id"`
	SubmittedBy    User            `json:"submitted_by"`
	AssignedToID   *int64          `json:"assigned_to_id,omitempty"`
	AssignedTo     *User           `json:"assigned_to,omitempty"`
}

// HasAttachment reports whether the backend stored an attachment for this form
func (f *Form) HasAttachment() bool {
	return f.AttachmentPath != ""
}
