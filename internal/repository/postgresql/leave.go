package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/staffhq/attendance-backend-go/internal/domain/leave"
	"github.com/staffhq/attendance-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `
	l.id, l.employee_id, l.date, l.leave_type, l.is_paid, l.status, l.reason,
	l.amended, l.amended_by, l.created_at, l.updated_at
`

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var entry leave.Leave
	err := row.Scan(
		&entry.ID, &entry.EmployeeID, &entry.Date, &entry.LeaveType, &entry.IsPaid,
		&entry.Status, &entry.Reason, &entry.Amended, &entry.AmendedBy,
		&entry.CreatedAt, &entry.UpdatedAt,
	)
	return entry, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, entry leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (employee_id, date, leave_type, is_paid, status, reason)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, employee_id, date, leave_type, is_paid, status, reason,
			amended, amended_by, created_at, updated_at
	`

	created, err := scanLeave(q.QueryRow(ctx, query,
		entry.EmployeeID, entry.Date, entry.LeaveType, entry.IsPaid, entry.Status, entry.Reason,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return leave.Leave{}, leave.ErrLeaveExists
		}
		return leave.Leave{}, fmt.Errorf("failed to create leave entry: %w", err)
	}

	return created, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `, e.full_name, e.emp_id
		FROM leaves l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`

	var entry leave.Leave
	err := q.QueryRow(ctx, query, id).Scan(
		&entry.ID, &entry.EmployeeID, &entry.Date, &entry.LeaveType, &entry.IsPaid,
		&entry.Status, &entry.Reason, &entry.Amended, &entry.AmendedBy,
		&entry.CreatedAt, &entry.UpdatedAt, &entry.EmployeeName, &entry.EmpID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave entry %s: %w", id, err)
	}

	return entry, nil
}

// Update implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Update(ctx context.Context, entry leave.Leave) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves
		SET leave_type = $1, is_paid = $2, status = $3, reason = $4,
			amended = $5, amended_by = $6, updated_at = NOW()
		WHERE id = $7
	`

	tag, err := q.Exec(ctx, query,
		entry.LeaveType, entry.IsPaid, entry.Status, entry.Reason,
		entry.Amended, entry.AmendedBy, entry.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave entry %s: %w", entry.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}

// ListApprovedByEmployeeRange implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListApprovedByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leaves l
		WHERE l.employee_id = $1 AND l.status = $2 AND l.date BETWEEN $3 AND $4
		ORDER BY l.date
	`

	rows, err := q.Query(ctx, query, employeeID, leave.StatusApproved, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leaves for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	var entries []leave.Leave
	for rows.Next() {
		entry, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// List implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) List(ctx context.Context, filter leave.ListLeaveFilter) ([]leave.Leave, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "1=1"
	args := []any{}
	argPos := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		where += fmt.Sprintf(" AND l.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Status != nil && *filter.Status != "" {
		where += fmt.Sprintf(" AND l.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		where += fmt.Sprintf(" AND l.date >= $%d", argPos)
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		where += fmt.Sprintf(" AND l.date <= $%d", argPos)
		args = append(args, *filter.EndDate)
		argPos++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM leaves l WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave entries: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s, e.full_name, e.emp_id
		FROM leaves l
		JOIN employees e ON e.id = l.employee_id
		WHERE %s
		ORDER BY l.date DESC, e.emp_id
		LIMIT $%d OFFSET $%d
	`, leaveColumns, where, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave entries: %w", err)
	}
	defer rows.Close()

	var entries []leave.Leave
	for rows.Next() {
		var entry leave.Leave
		err := rows.Scan(
			&entry.ID, &entry.EmployeeID, &entry.Date, &entry.LeaveType, &entry.IsPaid,
			&entry.Status, &entry.Reason, &entry.Amended, &entry.AmendedBy,
			&entry.CreatedAt, &entry.UpdatedAt, &entry.EmployeeName, &entry.EmpID,
		)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
