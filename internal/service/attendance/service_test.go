package attendance

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhq/attendance-backend-go/internal/domain/attendance"
	"github.com/staffhq/attendance-backend-go/internal/domain/employee"
	"github.com/staffhq/attendance-backend-go/internal/pkg/validator"
	"github.com/staffhq/attendance-backend-go/internal/repository/memory"
)

type attendanceFixture struct {
	service      attendance.AttendanceService
	employeeRepo *memory.EmployeeRepository
}

func newAttendanceFixture(t *testing.T) *attendanceFixture {
	t.Helper()
	f := &attendanceFixture{employeeRepo: memory.NewEmployeeRepository()}
	f.service = NewAttendanceService(memory.NewTxManager(), memory.NewAttendanceRepository(), f.employeeRepo)
	return f
}

func (f *attendanceFixture) createEmployee(t *testing.T) employee.Employee {
	t.Helper()
	emp, err := f.employeeRepo.Create(context.Background(), employee.Employee{
		EmpID:          "EMP-001",
		FullName:       "Test Employee",
		Email:          "test@example.com",
		EmploymentType: employee.EmploymentTypeFullTime,
		BaseSalary:     decimal.RequireFromString("30000"),
		WorkingHours:   decimal.NewFromInt(8),
		IsActive:       true,
	})
	require.NoError(t, err)
	return emp
}

func strPtr(s string) *string { return &s }

func TestRecordDerivesHours(t *testing.T) {
	f := newAttendanceFixture(t)
	emp := f.createEmployee(t)

	resp, err := f.service.Record(context.Background(), attendance.RecordAttendanceRequest{
		EmployeeID: emp.ID,
		Date:       "2025-03-10",
		TimeIn:     strPtr("09:00"),
		TimeOut:    strPtr("17:30"),
		Status:     "present",
	})
	require.NoError(t, err)

	require.NotNil(t, resp.HoursWorked)
	assert.Equal(t, "8.5", resp.HoursWorked.String())
	assert.Equal(t, "2025-03-10", resp.Date)
}

func TestRecordReplacesExistingRow(t *testing.T) {
	ctx := context.Background()
	f := newAttendanceFixture(t)
	emp := f.createEmployee(t)

	first, err := f.service.Record(ctx, attendance.RecordAttendanceRequest{
		EmployeeID: emp.ID,
		Date:       "2025-03-10",
		Status:     "present",
	})
	require.NoError(t, err)

	second, err := f.service.Record(ctx, attendance.RecordAttendanceRequest{
		EmployeeID: emp.ID,
		Date:       "2025-03-10",
		Status:     "half_day",
	})
	require.NoError(t, err)

	// Same (employee, date) key: the row is replaced, not duplicated
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "half_day", second.Status)

	list, err := f.service.List(ctx, attendance.ListAttendanceFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.TotalCount)
}

func TestRecordRejectsInvalidInput(t *testing.T) {
	f := newAttendanceFixture(t)
	emp := f.createEmployee(t)

	cases := []attendance.RecordAttendanceRequest{
		{EmployeeID: "", Date: "2025-03-10", Status: "present"},
		{EmployeeID: emp.ID, Date: "10/03/2025", Status: "present"},
		{EmployeeID: emp.ID, Date: "2025-03-10", Status: "vacation"},
		{EmployeeID: emp.ID, Date: "2025-03-10", Status: "present", TimeIn: strPtr("9am")},
	}
	for _, req := range cases {
		_, err := f.service.Record(context.Background(), req)
		var validationErrs validator.ValidationErrors
		assert.ErrorAs(t, err, &validationErrs)
	}
}

func TestRecordUnknownEmployee(t *testing.T) {
	f := newAttendanceFixture(t)

	_, err := f.service.Record(context.Background(), attendance.RecordAttendanceRequest{
		EmployeeID: "missing",
		Date:       "2025-03-10",
		Status:     "present",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestListFiltersByStatus(t *testing.T) {
	ctx := context.Background()
	f := newAttendanceFixture(t)
	emp := f.createEmployee(t)

	for day, status := range map[string]string{
		"2025-03-10": "present",
		"2025-03-11": "late",
		"2025-03-12": "present",
	} {
		_, err := f.service.Record(ctx, attendance.RecordAttendanceRequest{
			EmployeeID: emp.ID,
			Date:       day,
			Status:     status,
		})
		require.NoError(t, err)
	}

	late := "late"
	list, err := f.service.List(ctx, attendance.ListAttendanceFilter{Status: &late})
	require.NoError(t, err)

	assert.Equal(t, int64(1), list.TotalCount)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "2025-03-11", list.Data[0].Date)
}

func TestListRejectsUnknownStatusFilter(t *testing.T) {
	f := newAttendanceFixture(t)

	bad := "vacation"
	_, err := f.service.List(context.Background(), attendance.ListAttendanceFilter{Status: &bad})
	assert.ErrorIs(t, err, attendance.ErrInvalidStatus)
}
