package api

import (
	"context"

	"github.com/formtrack/formtrack/internal/domain/entity"
)

// DashboardStats fetches the backend's precomputed aggregate for the
// current user's submissions
func (c *Client) DashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	var stats entity.DashboardStats
	if err := c.getJSON(ctx, "/dashboard/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
