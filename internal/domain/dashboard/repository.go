package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type DashboardRepository interface {
	// CountActiveEmployees returns the number of active employees
	CountActiveEmployees(ctx context.Context) (int64, error)

	// CountPendingLeaves returns the number of pending leave entries
	CountPendingLeaves(ctx context.Context) (int64, error)

	// CountOnLeave returns the number of approved leave entries on a date
	CountOnLeave(ctx context.Context, date time.Time) (int64, error)

	// SumNetSalary returns the total net payroll persisted for a month
	SumNetSalary(ctx context.Context, year, month int) (decimal.Decimal, error)

	// LateRanking returns employees ranked by late attendance count within
	// [from, to], descending
	LateRanking(ctx context.Context, from, to time.Time, limit int) ([]LateComer, error)

	// UpcomingLeaves returns approved leave-days within [from, to] ordered
	// by date
	UpcomingLeaves(ctx context.Context, from, to time.Time, limit int) ([]UpcomingLeave, error)
}
