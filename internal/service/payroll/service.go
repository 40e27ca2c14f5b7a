package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/staffhq/attendance-backend-go/internal/domain/attendance"
	"github.com/staffhq/attendance-backend-go/internal/domain/employee"
	"github.com/staffhq/attendance-backend-go/internal/domain/leave"
	"github.com/staffhq/attendance-backend-go/internal/domain/payroll"
	"github.com/staffhq/attendance-backend-go/internal/domain/setting"
	"github.com/staffhq/attendance-backend-go/internal/pkg/database"
)

type PayrollServiceImpl struct {
	tx             database.TxManager
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
	settings       setting.SettingService
	rates          *RateCalculator
}

func NewPayrollService(
	tx database.TxManager,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	settings setting.SettingService,
	rates *RateCalculator,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		tx:             tx,
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		settings:       settings,
		rates:          rates,
	}
}

// CalculateForMonth implements payroll.PayrollService.
func (s *PayrollServiceImpl) CalculateForMonth(ctx context.Context, employeeID string, year, month int) (payroll.SalaryRecordResponse, error) {
	if month < 1 || month > 12 {
		return payroll.SalaryRecordResponse{}, fmt.Errorf("%w: month %d", payroll.ErrInvalidPeriod, month)
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}
	if err := validateForPayroll(emp, year, month); err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	first, last := monthBounds(year, month)
	if last.Before(first) {
		return payroll.SalaryRecordResponse{}, fmt.Errorf("%w: %d-%02d has no days", payroll.ErrInvalidPeriod, year, month)
	}

	// Settings coercion failures recover to defaults; payroll must never
	// fail open on configuration.
	globalBonus := s.settings.GetDecimal(ctx, setting.KeyGlobalBonus, decimal.Zero)
	dailyRate := s.rates.DailyRate(ctx, emp)

	var record payroll.SalaryRecord
	err = s.tx.WithinSnapshot(ctx, func(ctx context.Context) error {
		atts, err := s.attendanceRepo.ListByEmployeeRange(ctx, emp.ID, first, last)
		if err != nil {
			return fmt.Errorf("failed to load attendance for %s %d-%02d: %w", emp.EmpID, year, month, err)
		}
		leaves, err := s.leaveRepo.ListApprovedByEmployeeRange(ctx, emp.ID, first, last)
		if err != nil {
			return fmt.Errorf("failed to load approved leaves for %s %d-%02d: %w", emp.EmpID, year, month, err)
		}

		record = computeMonth(emp, year, month, dailyRate, globalBonus, atts, leaves)

		record, err = s.payrollRepo.Upsert(ctx, record)
		if err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if isWriteConflict(err) {
			return payroll.SalaryRecordResponse{}, payroll.ErrRecomputeConflict
		}
		return payroll.SalaryRecordResponse{}, err
	}

	slog.Info("salary record generated",
		"emp_id", emp.EmpID,
		"year", year,
		"month", month,
		"net_salary", record.NetSalary.String(),
	)

	return mapToRecordResponse(record), nil
}

// CalculateForAll implements payroll.PayrollService.
func (s *PayrollServiceImpl) CalculateForAll(ctx context.Context, year, month int) (payroll.BatchResultResponse, error) {
	if month < 1 || month > 12 {
		return payroll.BatchResultResponse{}, fmt.Errorf("%w: month %d", payroll.ErrInvalidPeriod, month)
	}

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return payroll.BatchResultResponse{}, fmt.Errorf("failed to list active employees: %w", err)
	}

	result := payroll.BatchResultResponse{Year: year, Month: month}
	for _, emp := range employees {
		rec, err := s.CalculateForMonth(ctx, emp.ID, year, month)
		if err != nil {
			// One employee's failure must not abort the rest of the run.
			slog.Warn("payroll calculation failed",
				"emp_id", emp.EmpID,
				"year", year,
				"month", month,
				"error", err,
			)
			result.Failures = append(result.Failures, payroll.BatchFailure{
				EmployeeID: emp.ID,
				EmpID:      emp.EmpID,
				Error:      err.Error(),
			})
			continue
		}
		result.Generated = append(result.Generated, rec)
	}

	return result, nil
}

// GetRecord implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetRecord(ctx context.Context, employeeID string, year, month int) (payroll.SalaryRecordResponse, error) {
	record, err := s.payrollRepo.GetByEmployeePeriod(ctx, employeeID, year, month)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}
	return mapToRecordResponse(record), nil
}

// ListByPeriod implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListByPeriod(ctx context.Context, year, month int) ([]payroll.SalaryRecordResponse, error) {
	records, err := s.payrollRepo.ListByPeriod(ctx, year, month)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.SalaryRecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToRecordResponse(r))
	}
	return result, nil
}

// validateForPayroll fails fast on data inconsistencies, naming the
// offending employee-month.
func validateForPayroll(emp employee.Employee, year, month int) error {
	if !emp.EmploymentType.Valid() {
		return fmt.Errorf("%w: %s has employment type %q (%d-%02d)",
			payroll.ErrIncompleteEmployee, emp.EmpID, emp.EmploymentType, year, month)
	}
	if emp.BaseSalary.IsNegative() {
		return fmt.Errorf("%w: %s has negative base salary (%d-%02d)",
			payroll.ErrIncompleteEmployee, emp.EmpID, year, month)
	}
	return nil
}

// isWriteConflict reports whether err is a serialization failure or unique
// violation from two recomputes racing on the same salary record key.
func isWriteConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "23505"
	}
	return false
}

func mapToRecordResponse(r payroll.SalaryRecord) payroll.SalaryRecordResponse {
	return payroll.SalaryRecordResponse{
		ID:                r.ID,
		EmployeeID:        r.EmployeeID,
		EmployeeName:      r.EmployeeName,
		EmpID:             r.EmpID,
		Year:              r.Year,
		Month:             r.Month,
		GrossSalary:       r.GrossSalary,
		Deductions:        r.Deductions,
		BonusApplied:      r.BonusApplied,
		HalfDayDeductions: r.HalfDayDeductions,
		UnpaidLeaveDays:   r.UnpaidLeaveDays,
		NetSalary:         r.NetSalary,
	}
}
