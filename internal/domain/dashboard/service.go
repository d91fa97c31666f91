package dashboard

import "context"

// Service assembles the landing-page dashboard.
type Service interface {
	// GetDashboard returns today's headcount stats plus the latest
	// attendance activity.
	GetDashboard(ctx context.Context) (DashboardResponse, error)
}
