package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffhq/attendance-backend-go/internal/domain/payroll"
	"github.com/staffhq/attendance-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const salaryColumns = `
	s.id, s.employee_id, s.year, s.month, s.gross_salary, s.deductions,
	s.bonus_applied, s.half_day_deductions, s.unpaid_leave_days, s.net_salary,
	s.generated_at
`

func scanSalaryRecord(row pgx.Row) (payroll.SalaryRecord, error) {
	var rec payroll.SalaryRecord
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Year, &rec.Month, &rec.GrossSalary,
		&rec.Deductions, &rec.BonusApplied, &rec.HalfDayDeductions,
		&rec.UnpaidLeaveDays, &rec.NetSalary, &rec.GeneratedAt,
	)
	return rec, err
}

// Upsert implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Upsert(ctx context.Context, record payroll.SalaryRecord) (payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_records (
			employee_id, year, month, gross_salary, deductions, bonus_applied,
			half_day_deductions, unpaid_leave_days, net_salary, generated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (employee_id, year, month) DO UPDATE SET
			gross_salary = EXCLUDED.gross_salary,
			deductions = EXCLUDED.deductions,
			bonus_applied = EXCLUDED.bonus_applied,
			half_day_deductions = EXCLUDED.half_day_deductions,
			unpaid_leave_days = EXCLUDED.unpaid_leave_days,
			net_salary = EXCLUDED.net_salary,
			generated_at = NOW()
		RETURNING id, employee_id, year, month, gross_salary, deductions,
			bonus_applied, half_day_deductions, unpaid_leave_days, net_salary,
			generated_at
	`

	saved, err := scanSalaryRecord(q.QueryRow(ctx, query,
		record.EmployeeID, record.Year, record.Month, record.GrossSalary,
		record.Deductions, record.BonusApplied, record.HalfDayDeductions,
		record.UnpaidLeaveDays, record.NetSalary,
	))
	if err != nil {
		return payroll.SalaryRecord{}, fmt.Errorf("failed to upsert salary record: %w", err)
	}

	return saved, nil
}

// GetByEmployeePeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByEmployeePeriod(ctx context.Context, employeeID string, year, month int) (payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryColumns + `, e.full_name, e.emp_id
		FROM salary_records s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.employee_id = $1 AND s.year = $2 AND s.month = $3
	`

	var rec payroll.SalaryRecord
	err := q.QueryRow(ctx, query, employeeID, year, month).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Year, &rec.Month, &rec.GrossSalary,
		&rec.Deductions, &rec.BonusApplied, &rec.HalfDayDeductions,
		&rec.UnpaidLeaveDays, &rec.NetSalary, &rec.GeneratedAt,
		&rec.EmployeeName, &rec.EmpID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryRecord{}, payroll.ErrSalaryRecordNotFound
		}
		return payroll.SalaryRecord{}, fmt.Errorf("failed to get salary record for employee %s %d-%02d: %w", employeeID, year, month, err)
	}

	return rec, nil
}

// ListByPeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListByPeriod(ctx context.Context, year, month int) ([]payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryColumns + `, e.full_name, e.emp_id
		FROM salary_records s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.year = $1 AND s.month = $2
		ORDER BY e.emp_id
	`

	rows, err := q.Query(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary records for %d-%02d: %w", year, month, err)
	}
	defer rows.Close()

	var records []payroll.SalaryRecord
	for rows.Next() {
		var rec payroll.SalaryRecord
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Year, &rec.Month, &rec.GrossSalary,
			&rec.Deductions, &rec.BonusApplied, &rec.HalfDayDeductions,
			&rec.UnpaidLeaveDays, &rec.NetSalary, &rec.GeneratedAt,
			&rec.EmployeeName, &rec.EmpID,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ListByEmployee implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, limit int) ([]payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryColumns + `
		FROM salary_records s
		WHERE s.employee_id = $1
		ORDER BY s.year DESC, s.month DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, employeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary records for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	var records []payroll.SalaryRecord
	for rows.Next() {
		rec, err := scanSalaryRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
