package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/staffhq/attendance-backend-go/internal/domain/dashboard"
)

const (
	lateRankingLimit   = 10
	upcomingLeaveLimit = 10
	upcomingLeaveDays  = 7
)

type DashboardServiceImpl struct {
	dashboardRepo dashboard.DashboardRepository
	now           func() time.Time
}

func NewDashboardService(repo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		dashboardRepo: repo,
		now:           time.Now,
	}
}

// Overview implements dashboard.DashboardService. The rollups are
// independent queries, so they fan out concurrently.
func (s *DashboardServiceImpl) Overview(ctx context.Context) (dashboard.OverviewResponse, error) {
	today := s.now().UTC().Truncate(24 * time.Hour)
	year, month := today.Year(), int(today.Month())
	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	var resp dashboard.OverviewResponse

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.dashboardRepo.CountActiveEmployees(gctx)
		resp.TotalEmployees = n
		return err
	})
	g.Go(func() error {
		n, err := s.dashboardRepo.CountPendingLeaves(gctx)
		resp.PendingLeaves = n
		return err
	})
	g.Go(func() error {
		n, err := s.dashboardRepo.CountOnLeave(gctx, today)
		resp.OnLeaveToday = n
		return err
	})
	g.Go(func() error {
		sum, err := s.dashboardRepo.SumNetSalary(gctx, year, month)
		resp.PayrollNetTotal = sum
		return err
	})
	g.Go(func() error {
		ranking, err := s.dashboardRepo.LateRanking(gctx, monthStart, monthEnd, lateRankingLimit)
		resp.LateComerRanking = ranking
		return err
	})
	g.Go(func() error {
		upcoming, err := s.dashboardRepo.UpcomingLeaves(gctx, today, today.AddDate(0, 0, upcomingLeaveDays), upcomingLeaveLimit)
		resp.UpcomingLeaves = upcoming
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.OverviewResponse{}, err
	}

	return resp, nil
}
