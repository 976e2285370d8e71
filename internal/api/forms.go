package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/formtrack/formtrack/internal/domain/entity"
	"github.com/shopspring/decimal"
)

type formListResponse struct {
	Forms []entity.Form `json:"forms"`
	Total int           `json:"total"`
}

// FormFilter narrows a forms listing. Zero values are omitted from
// the query, so an empty filter returns everything; filters only ever
// narrow results.
type FormFilter struct {
	FormType      entity.FormType
	Status        entity.Status
	SubmittedByID int64
	AssignedToID  int64
}

func (f FormFilter) query() url.Values {
	query := url.Values{}
	if f.FormType != "" {
		query.Set("form_type", f.FormType.String())
	}
	if f.Status != "" {
		query.Set("status", f.Status.String())
	}
	if f.SubmittedByID != 0 {
		query.Set("submitted_by_id", strconv.FormatInt(f.SubmittedByID, 10))
	}
	if f.AssignedToID != 0 {
		query.Set("assigned_to_id", strconv.FormatInt(f.AssignedToID, 10))
	}
	return query
}

// ListForms fetches forms matching the filter along with the backend's
// total count
func (c *Client) ListForms(ctx context.Context, filter FormFilter) ([]entity.Form, int, error) {
	var resp formListResponse
	if err := c.getJSON(ctx, "/forms", filter.query(), &resp); err != nil {
		return nil, 0, err
	}
	return resp.Forms, resp.Total, nil
}

// GetForm fetches a single form by id
func (c *Client) GetForm(ctx context.Context, id int64) (*entity.Form, error) {
	var form entity.Form
	if err := c.getJSON(ctx, fmt.Sprintf("/forms/%d", id), nil, &form); err != nil {
		return nil, err
	}
	return &form, nil
}

// CreateFormInput holds the fields for a new form submission. Optional
// fields left at their zero value are omitted from the multipart body.
type CreateFormInput struct {
	FormType      entity.FormType
	TotalAmount   decimal.Decimal
	Remarks       string
	CostCenterID  int64
	SubmittedByID int64
	AssignedToID  int64 // 0 = unassigned
	Attachment    *Attachment
}

// CreateForm submits a new form as multipart form data and returns
// the created record with its backend-assigned id and form number
func (c *Client) CreateForm(ctx context.Context, input CreateFormInput) (*entity.Form, error) {
	fields := map[string]string{
		"form_type":       input.FormType.String(),
		"total_amount":    input.TotalAmount.String(),
		"cost_center_id":  strconv.FormatInt(input.CostCenterID, 10),
		"submitted_by_id": strconv.FormatInt(input.SubmittedByID, 10),
		"remarks":         input.Remarks,
	}
	if input.AssignedToID != 0 {
		fields["assigned_to_id"] = strconv.FormatInt(input.AssignedToID, 10)
	}

	var form entity.Form
	if err := c.doMultipart(ctx, http.MethodPost, "/forms", fields, input.Attachment, &form); err != nil {
		return nil, err
	}
	return &form, nil
}

// UpdateFormStatus transitions a form to the given status and returns
// the updated record
func (c *Client) UpdateFormStatus(ctx context.Context, id int64, status entity.Status) (*entity.Form, error) {
	fields := map[string]string{"status": status.String()}

	var form entity.Form
	if err := c.doMultipart(ctx, http.MethodPut, fmt.Sprintf("/forms/%d/status", id), fields, nil, &form); err != nil {
		return nil, err
	}
	return &form, nil
}

// AssignForm assigns a form to a reviewer and returns the updated record
func (c *Client) AssignForm(ctx context.Context, id, assignedToID int64) (*entity.Form, error) {
	fields := map[string]string{"assigned_to_id": strconv.FormatInt(assignedToID, 10)}

	var form entity.Form
	if err := c.doMultipart(ctx, http.MethodPut, fmt.Sprintf("/forms/%d/assign", id), fields, nil, &form); err != nil {
		return nil, err
	}
	return &form, nil
}
