package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffhq/attendance-backend-go/internal/domain/attendance"
	"github.com/staffhq/attendance-backend-go/internal/domain/dashboard"
	"github.com/staffhq/attendance-backend-go/internal/domain/leave"
	"github.com/staffhq/attendance-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// CountActiveEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountActiveEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE is_active = true`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active employees: %w", err)
	}
	return count, nil
}

// CountPendingLeaves implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountPendingLeaves(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leaves WHERE status = $1`, leave.StatusPending).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending leaves: %w", err)
	}
	return count, nil
}

// CountOnLeave implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountOnLeave(ctx context.Context, date time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM leaves WHERE status = $1 AND date = $2`,
		leave.StatusApproved, date,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees on leave: %w", err)
	}
	return count, nil
}

// SumNetSalary implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) SumNetSalary(ctx context.Context, year, month int) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	var sum decimal.Decimal
	err := q.QueryRow(ctx,
		`SELECT COALESCE(SUM(net_salary), 0) FROM salary_records WHERE year = $1 AND month = $2`,
		year, month,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum net salary for %d-%02d: %w", year, month, err)
	}
	return sum, nil
}

// LateRanking implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) LateRanking(ctx context.Context, from, to time.Time, limit int) ([]dashboard.LateComer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.employee_id, e.emp_id, e.full_name, COUNT(*) AS late_count
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.status = $1 AND a.date BETWEEN $2 AND $3
		GROUP BY a.employee_id, e.emp_id, e.full_name
		ORDER BY late_count DESC, e.emp_id
		LIMIT $4
	`

	rows, err := q.Query(ctx, query, attendance.StatusLate, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query late ranking: %w", err)
	}
	defer rows.Close()

	var ranking []dashboard.LateComer
	for rows.Next() {
		var entry dashboard.LateComer
		if err := rows.Scan(&entry.EmployeeID, &entry.EmpID, &entry.EmployeeName, &entry.LateCount); err != nil {
			return nil, err
		}
		ranking = append(ranking, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ranking, nil
}

// UpcomingLeaves implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) UpcomingLeaves(ctx context.Context, from, to time.Time, limit int) ([]dashboard.UpcomingLeave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.employee_id, e.emp_id, e.full_name, l.date, l.leave_type, l.is_paid
		FROM leaves l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.status = $1 AND l.date BETWEEN $2 AND $3
		ORDER BY l.date, e.emp_id
		LIMIT $4
	`

	rows, err := q.Query(ctx, query, leave.StatusApproved, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming leaves: %w", err)
	}
	defer rows.Close()

	var upcoming []dashboard.UpcomingLeave
	for rows.Next() {
		var entry dashboard.UpcomingLeave
		var date time.Time
		if err := rows.Scan(&entry.EmployeeID, &entry.EmpID, &entry.EmployeeName, &date, &entry.LeaveType, &entry.IsPaid); err != nil {
			return nil, err
		}
		entry.Date = date.Format("2006-01-02")
		upcoming = append(upcoming, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return upcoming, nil
}
