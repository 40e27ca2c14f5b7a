package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhq/attendance-backend-go/internal/domain/attendance"
	"github.com/staffhq/attendance-backend-go/internal/domain/employee"
	"github.com/staffhq/attendance-backend-go/internal/domain/leave"
	"github.com/staffhq/attendance-backend-go/internal/domain/payroll"
	"github.com/staffhq/attendance-backend-go/internal/domain/setting"
	"github.com/staffhq/attendance-backend-go/internal/repository/memory"
	settingService "github.com/staffhq/attendance-backend-go/internal/service/setting"
)

type payrollFixture struct {
	service        payroll.PayrollService
	employeeRepo   *memory.EmployeeRepository
	attendanceRepo *memory.AttendanceRepository
	leaveRepo      *memory.LeaveRepository
	payrollRepo    *memory.PayrollRepository
	settingRepo    *memory.SettingRepository
}

func newPayrollFixture(t *testing.T) *payrollFixture {
	t.Helper()

	f := &payrollFixture{
		employeeRepo:   memory.NewEmployeeRepository(),
		attendanceRepo: memory.NewAttendanceRepository(),
		leaveRepo:      memory.NewLeaveRepository(),
		payrollRepo:    memory.NewPayrollRepository(),
		settingRepo:    memory.NewSettingRepository(),
	}

	settings := settingService.NewSettingService(f.settingRepo)
	f.service = NewPayrollService(
		memory.NewTxManager(),
		f.payrollRepo,
		f.employeeRepo,
		f.attendanceRepo,
		f.leaveRepo,
		settings,
		NewRateCalculator(settings),
	)
	return f
}

func (f *payrollFixture) createEmployee(t *testing.T, empID string, empType employee.EmploymentType, baseSalary string) employee.Employee {
	t.Helper()
	emp, err := f.employeeRepo.Create(context.Background(), employee.Employee{
		EmpID:          empID,
		FullName:       "Test " + empID,
		Email:          empID + "@example.com",
		EmploymentType: empType,
		BaseSalary:     decimal.RequireFromString(baseSalary),
		BonusAmount:    decimal.Zero,
		WorkingHours:   decimal.NewFromInt(8),
		IsActive:       true,
	})
	require.NoError(t, err)
	return emp
}

func (f *payrollFixture) addAttendance(t *testing.T, employeeID string, day time.Time, status attendance.Status) {
	t.Helper()
	_, err := f.attendanceRepo.Upsert(context.Background(), attendance.Attendance{
		EmployeeID: employeeID,
		Date:       day,
		Status:     status,
	})
	require.NoError(t, err)
}

func (f *payrollFixture) addApprovedLeave(t *testing.T, employeeID string, day time.Time, isPaid bool) {
	t.Helper()
	_, err := f.leaveRepo.Create(context.Background(), leave.Leave{
		EmployeeID: employeeID,
		Date:       day,
		LeaveType:  leave.TypeNormal,
		IsPaid:     isPaid,
		Status:     leave.StatusApproved,
	})
	require.NoError(t, err)
}

func TestCalculateForMonthFullTime(t *testing.T) {
	ctx := context.Background()
	f := newPayrollFixture(t)
	emp := f.createEmployee(t, "EMP-001", employee.EmploymentTypeFullTime, "30000")

	f.addAttendance(t, emp.ID, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), attendance.StatusAbsent)
	f.addAttendance(t, emp.ID, time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), attendance.StatusHalfDay)
	f.addApprovedLeave(t, emp.ID, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), false)

	rec, err := f.service.CalculateForMonth(ctx, emp.ID, 2025, 3)
	require.NoError(t, err)

	assert.Equal(t, "30000", rec.GrossSalary.String())
	assert.Equal(t, "2", rec.UnpaidLeaveDays.String())
	assert.Equal(t, "3409.1", rec.Deductions.String())
	assert.Equal(t, "26590.9", rec.NetSalary.String())

	stored, err := f.payrollRepo.GetByEmployeePeriod(ctx, emp.ID, 2025, 3)
	require.NoError(t, err)
	assert.Equal(t, rec.NetSalary.String(), stored.NetSalary.String())
}

func TestCalculateForMonthIgnoresRowsOutsidePeriod(t *testing.T) {
	ctx := context.Background()
	f := newPayrollFixture(t)
	emp := f.createEmployee(t, "EMP-001", employee.EmploymentTypeFullTime, "30000")

	// Adjacent-month rows must not leak into the March record
	f.addAttendance(t, emp.ID, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), attendance.StatusAbsent)
	f.addAttendance(t, emp.ID, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), attendance.StatusAbsent)
	f.addApprovedLeave(t, emp.ID, time.Date(2025, 2, 27, 0, 0, 0, 0, time.UTC), false)

	rec, err := f.service.CalculateForMonth(ctx, emp.ID, 2025, 3)
	require.NoError(t, err)

	assert.Equal(t, "0", rec.UnpaidLeaveDays.String())
	assert.Equal(t, "0", rec.Deductions.String())
	assert.Equal(t, "30000", rec.NetSalary.String())
}

func TestCalculateForMonthOnlyCountsApprovedLeaves(t *testing.T) {
	ctx := context.Background()
	f := newPayrollFixture(t)
	emp := f.createEmployee(t, "EMP-001", employee.EmploymentTypeFullTime, "30000")

	_, err := f.leaveRepo.Create(ctx, leave.Leave{
		EmployeeID: emp.ID,
		Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		LeaveType:  leave.TypeNormal,
		IsPaid:     false,
		Status:     leave.StatusPending,
	})
	require.NoError(t, err)

	rec, err := f.service.CalculateForMonth(ctx, emp.ID, 2025, 3)
	require.NoError(t, err)

	assert.Equal(t, "0", rec.UnpaidLeaveDays.String())
	assert.Equal(t, "30000", rec.NetSalary.String())
}

func TestCalculateForMonthIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newPayrollFixture(t)
	emp := f.createEmployee(t, "EMP-001", employee.EmploymentTypeFullTime, "30000")
	f.addAttendance(t, emp.ID, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), attendance.StatusHalfDay)

	first, err := f.service.CalculateForMonth(ctx, emp.ID, 2025, 3)
	require.NoError(t, err)
	second, err := f.service.CalculateForMonth(ctx, emp.ID, 2025, 3)
	require.NoError(t, err)

	// The record is overwritten in place: same key, same values
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.NetSalary.String(), second.NetSalary.String())

	records, err := f.payrollRepo.ListByEmployee(ctx, emp.ID, 10)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestCalculateForMonthRecomputesAfterLedgerChange(t *testing.T) {
	ctx := context.Background()
	f := newPayrollFixture(t)
	emp := f.createEmployee(t, "EMP-001", employee.EmploymentTypeFullTime, "22000")

	first, err := f.service.CalculateForMonth(ctx, emp.ID, 2025, 3)
	require.NoError(t, err)
	assert.Equal(t, "22000", first.NetSalary.String())

	f.addApprovedLeave(t, emp.ID, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), false)

	second, err := f.service.CalculateForMonth(ctx, emp.ID, 2025, 3)
	require.NoError(t, err)
	assert.Equal(t, "1", second.UnpaidLeaveDays.String())
	assert.Equal(t, "21000", second.NetSalary.String())
}

func TestCalculateForMonthInvalidPeriod(t *testing.T) {
	f := newPayrollFixture(t)
	emp := f.createEmployee(t, "EMP-001", employee.EmploymentTypeFullTime, "30000")

	_, err := f.service.CalculateForMonth(context.Background(), emp.ID, 2025, 13)
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)

	_, err = f.service.CalculateForMonth(context.Background(), emp.ID, 2025, 0)
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}

func TestCalculateForMonthUnknownEmployee(t *testing.T) {
	f := newPayrollFixture(t)

	_, err := f.service.CalculateForMonth(context.Background(), "missing", 2025, 3)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCalculateForMonthIncompleteEmployee(t *testing.T) {
	ctx := context.Background()
	f := newPayrollFixture(t)
	emp := f.createEmployee(t, "EMP-001", employee.EmploymentType("contractor"), "30000")

	_, err := f.service.CalculateForMonth(ctx, emp.ID, 2025, 3)
	assert.ErrorIs(t, err, payroll.ErrIncompleteEmployee)
}

func TestCalculateForAllCollectsFailures(t *testing.T) {
	ctx := context.Background()
	f := newPayrollFixture(t)
	good := f.createEmployee(t, "EMP-001", employee.EmploymentTypeFullTime, "30000")
	bad := f.createEmployee(t, "EMP-002", employee.EmploymentType("contractor"), "30000")

	result, err := f.service.CalculateForAll(ctx, 2025, 3)
	require.NoError(t, err)

	require.Len(t, result.Generated, 1)
	assert.Equal(t, good.ID, result.Generated[0].EmployeeID)

	require.Len(t, result.Failures, 1)
	assert.Equal(t, bad.ID, result.Failures[0].EmployeeID)
	assert.Equal(t, "EMP-002", result.Failures[0].EmpID)
	assert.NotEmpty(t, result.Failures[0].Error)
}

func TestCalculateForAllSkipsInactiveEmployees(t *testing.T) {
	ctx := context.Background()
	f := newPayrollFixture(t)
	active := f.createEmployee(t, "EMP-001", employee.EmploymentTypeFullTime, "30000")
	inactive := f.createEmployee(t, "EMP-002", employee.EmploymentTypeFullTime, "30000")
	require.NoError(t, f.employeeRepo.SetActive(ctx, inactive.ID, false))

	result, err := f.service.CalculateForAll(ctx, 2025, 3)
	require.NoError(t, err)

	require.Len(t, result.Generated, 1)
	assert.Equal(t, active.ID, result.Generated[0].EmployeeID)
	assert.Empty(t, result.Failures)
}

func TestCalculateForMonthHonorsGlobalBonusSetting(t *testing.T) {
	ctx := context.Background()
	f := newPayrollFixture(t)
	_, err := f.settingRepo.Upsert(ctx, setting.KeyGlobalBonus, "250")
	require.NoError(t, err)

	emp, err := f.employeeRepo.Create(ctx, employee.Employee{
		EmpID:          "EMP-001",
		FullName:       "Bonus Case",
		Email:          "bonus@example.com",
		EmploymentType: employee.EmploymentTypeFullTime,
		BaseSalary:     decimal.RequireFromString("30000"),
		BonusAmount:    decimal.Zero,
		BonusEligible:  true,
		IsActive:       true,
	})
	require.NoError(t, err)

	rec, err := f.service.CalculateForMonth(ctx, emp.ID, 2025, 3)
	require.NoError(t, err)

	assert.Equal(t, "250", rec.BonusApplied.String())
	assert.Equal(t, "30250", rec.NetSalary.String())
}

func TestGetRecordNotFound(t *testing.T) {
	f := newPayrollFixture(t)

	_, err := f.service.GetRecord(context.Background(), "emp", 2025, 3)
	assert.ErrorIs(t, err, payroll.ErrSalaryRecordNotFound)
}
