package api

import (
	"context"

	"github.com/formtrack/formtrack/internal/domain/entity"
)

type customerListResponse struct {
	Customers []entity.Customer `json:"customers"`
}

// ListCustomers fetches all customers
func (c *Client) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	var resp customerListResponse
	if err := c.getJSON(ctx, "/customers", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Customers, nil
}

// CreateCustomerInput holds the fields for a new customer
type CreateCustomerInput struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}

// CreateCustomer creates a customer and returns the stored record
func (c *Client) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*entity.Customer, error) {
	var customer entity.Customer
	if err := c.postJSON(ctx, "/customers", input, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}
