package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/formtrack/formtrack/internal/domain/entity"
)

type costCenterListResponse struct {
	CostCenters []entity.CostCenter `json:"cost_centers"`
}

// ListCostCenters fetches cost centers, scoped to a customer when
// customerID is non-zero
func (c *Client) ListCostCenters(ctx context.Context, customerID int64) ([]entity.CostCenter, error) {
	var query url.Values
	if customerID != 0 {
		query = url.Values{"customer_id": []string{strconv.FormatInt(customerID, 10)}}
	}

	var resp costCenterListResponse
	if err := c.getJSON(ctx, "/cost-centers", query, &resp); err != nil {
		return nil, err
	}
	return resp.CostCenters, nil
}

// CreateCostCenterInput holds the fields for a new cost center
type CreateCostCenterInput struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
	CustomerID  int64  `json:"customer_id"`
}

// CreateCostCenter creates a cost center and returns the stored record
func (c *Client) CreateCostCenter(ctx context.Context, input CreateCostCenterInput) (*entity.CostCenter, error) {
	var costCenter entity.CostCenter
	if err := c.postJSON(ctx, "/cost-centers", input, &costCenter); err != nil {
		return nil, err
	}
	return &costCenter, nil
}
