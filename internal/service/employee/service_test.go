package employee

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhq/attendance-backend-go/internal/domain/employee"
	"github.com/staffhq/attendance-backend-go/internal/pkg/validator"
	"github.com/staffhq/attendance-backend-go/internal/repository/memory"
)

func newEmployeeFixture() (employee.EmployeeService, *memory.EmployeeRepository) {
	repo := memory.NewEmployeeRepository()
	return NewEmployeeService(repo), repo
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		EmpID:          "EMP-001",
		FullName:       "Ada Example",
		Email:          "ada@example.com",
		EmploymentType: "full_time",
		BaseSalary:     decimal.RequireFromString("30000"),
	}
}

func TestCreateAppliesDefaults(t *testing.T) {
	svc, _ := newEmployeeFixture()

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.True(t, resp.IsActive)
	assert.Equal(t, "8", resp.WorkingHours.String())
	assert.Equal(t, 22, resp.PaidLeaveQuota)
	assert.True(t, resp.BonusAmount.IsZero())
}

func TestCreateDefaultsQuotaByEmploymentType(t *testing.T) {
	svc, _ := newEmployeeFixture()

	req := validCreateRequest()
	req.EmpID = "EMP-002"
	req.Email = "pt@example.com"
	req.EmploymentType = "part_time"
	req.BaseSalary = decimal.RequireFromString("1000")

	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 11, resp.PaidLeaveQuota)

	req.EmpID = "EMP-003"
	req.Email = "hr@example.com"
	req.EmploymentType = "hourly"
	req.BaseSalary = decimal.RequireFromString("25")

	resp, err = svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.PaidLeaveQuota)
}

func TestCreateRejectsInvalidRequests(t *testing.T) {
	svc, _ := newEmployeeFixture()

	cases := []func(*employee.CreateEmployeeRequest){
		func(r *employee.CreateEmployeeRequest) { r.EmpID = "" },
		func(r *employee.CreateEmployeeRequest) { r.EmpID = "emp 001" },
		func(r *employee.CreateEmployeeRequest) { r.Email = "not-an-email" },
		func(r *employee.CreateEmployeeRequest) { r.EmploymentType = "freelance" },
		func(r *employee.CreateEmployeeRequest) { r.BaseSalary = decimal.RequireFromString("-1") },
	}
	for i, mutate := range cases {
		req := validCreateRequest()
		mutate(&req)
		_, err := svc.Create(context.Background(), req)
		var validationErrs validator.ValidationErrors
		assert.ErrorAs(t, err, &validationErrs, "case %d", i)
	}
}

func TestCreateDuplicateEmpID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newEmployeeFixture()

	_, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	dup := validCreateRequest()
	dup.Email = "other@example.com"
	_, err = svc.Create(ctx, dup)
	assert.ErrorIs(t, err, employee.ErrEmpIDExists)
}

func TestGetByEmpID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newEmployeeFixture()

	_, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	resp, err := svc.GetByEmpID(ctx, "EMP-001")
	require.NoError(t, err)
	assert.Equal(t, "Ada Example", resp.FullName)

	_, err = svc.GetByEmpID(ctx, "EMP-999")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUpdatePatchesOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := newEmployeeFixture()

	created, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	newSalary := decimal.RequireFromString("32000")
	resp, err := svc.Update(ctx, employee.UpdateEmployeeRequest{
		ID:         created.ID,
		BaseSalary: &newSalary,
	})
	require.NoError(t, err)

	assert.Equal(t, "32000", resp.BaseSalary.String())
	assert.Equal(t, created.FullName, resp.FullName)
	assert.Equal(t, created.Email, resp.Email)
}

func TestToggleActiveFlips(t *testing.T) {
	ctx := context.Background()
	svc, _ := newEmployeeFixture()

	created, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)
	require.True(t, created.IsActive)

	resp, err := svc.ToggleActive(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, resp.IsActive)

	resp, err = svc.ToggleActive(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, resp.IsActive)
}

func TestListSearchesByNameAndCode(t *testing.T) {
	ctx := context.Background()
	svc, _ := newEmployeeFixture()

	_, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	other := validCreateRequest()
	other.EmpID = "EMP-002"
	other.FullName = "Grace Sample"
	other.Email = "grace@example.com"
	_, err = svc.Create(ctx, other)
	require.NoError(t, err)

	list, err := svc.List(ctx, employee.ListEmployeeFilter{Search: "grace"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.TotalCount)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "EMP-002", list.Data[0].EmpID)
}
