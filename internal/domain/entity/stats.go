package entity

// DashboardStats is the backend's precomputed aggregate over the
// current user's submissions. It is a read projection; the client
// never derives or reconciles these counts locally.
type DashboardStats struct {
	TotalForms    int `json:"total_forms"`
	PendingForms  int `json:"pending_forms"`
	ApprovedForms int `json:"approved_forms"`
	RejectedForms int `json:"rejected_forms"`
}
