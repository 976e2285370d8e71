package entity

// Customer is a billing client that owns zero or more cost centers
type Customer struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}

// CostCenter is a budget unit under a single customer. Cost centers
// are only meaningful within their owning customer, so a customer
// change always invalidates any prior cost-center choice.
type CostCenter struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Code        string   `json:"code"`
	Description string   `json:"description,omitempty"`
	CustomerID  int64    `json:"customer_id"`
	Customer    Customer `json:"customer"`
}
