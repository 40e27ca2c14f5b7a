package dashboard

import "context"

// DashboardService composes cross-employee rollups for reporting surfaces
type DashboardService interface {
	Overview(ctx context.Context) (OverviewResponse, error)
}
