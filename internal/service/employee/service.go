package employee

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/staffhq/attendance-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	empType := employee.EmploymentType(req.EmploymentType)

	bonusAmount := decimal.Zero
	if req.BonusAmount != nil {
		bonusAmount = *req.BonusAmount
	}
	workingHours := employee.DefaultWorkingHours
	if req.WorkingHours != nil {
		workingHours = *req.WorkingHours
	}
	quota := empType.DefaultPaidLeaveQuota()
	if req.PaidLeaveQuota != nil {
		quota = *req.PaidLeaveQuota
	}

	emp := employee.Employee{
		EmpID:          req.EmpID,
		FullName:       req.FullName,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		EmploymentType: empType,
		BaseSalary:     req.BaseSalary,
		BonusAmount:    bonusAmount,
		BonusEligible:  req.BonusEligible,
		WorkingHours:   workingHours,
		PaidLeaveQuota: quota,
		IsActive:       true,
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapToResponse(emp), nil
}

// GetByEmpID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByEmpID(ctx context.Context, empID string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByEmpID(ctx, empID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListEmployeeFilter) (employee.ListEmployeeResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, mapToResponse(emp))
	}

	return employee.ListEmployeeResponse{
		Data:       result,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		emp.PhoneNumber = req.PhoneNumber
	}
	if req.EmploymentType != nil {
		emp.EmploymentType = employee.EmploymentType(*req.EmploymentType)
	}
	if req.BaseSalary != nil {
		emp.BaseSalary = *req.BaseSalary
	}
	if req.BonusAmount != nil {
		emp.BonusAmount = *req.BonusAmount
	}
	if req.BonusEligible != nil {
		emp.BonusEligible = *req.BonusEligible
	}
	if req.WorkingHours != nil {
		emp.WorkingHours = *req.WorkingHours
	}
	if req.PaidLeaveQuota != nil {
		emp.PaidLeaveQuota = *req.PaidLeaveQuota
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToResponse(emp), nil
}

// ToggleActive implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ToggleActive(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp.IsActive = !emp.IsActive
	if err := s.employeeRepo.SetActive(ctx, id, emp.IsActive); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToResponse(emp), nil
}

func mapToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:             emp.ID,
		EmpID:          emp.EmpID,
		FullName:       emp.FullName,
		Email:          emp.Email,
		PhoneNumber:    emp.PhoneNumber,
		EmploymentType: string(emp.EmploymentType),
		BaseSalary:     emp.BaseSalary,
		BonusAmount:    emp.BonusAmount,
		BonusEligible:  emp.BonusEligible,
		WorkingHours:   emp.WorkingHours,
		PaidLeaveQuota: emp.PaidLeaveQuota,
		IsActive:       emp.IsActive,
	}
}
