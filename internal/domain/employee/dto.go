package employee

import (
	"github.com/shopspring/decimal"

	"github.com/staffhq/attendance-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmpID          string           `json:"emp_id"`
	FullName       string           `json:"full_name"`
	Email          string           `json:"email"`
	PhoneNumber    *string          `json:"phone_number,omitempty"`
	EmploymentType string           `json:"employment_type"`
	BaseSalary     decimal.Decimal  `json:"base_salary"`
	BonusAmount    *decimal.Decimal `json:"bonus_amount,omitempty"`
	BonusEligible  bool             `json:"bonus_eligible"`
	WorkingHours   *decimal.Decimal `json:"working_hours,omitempty"`
	PaidLeaveQuota *int             `json:"paid_leave_quota,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmpID) {
		errs = append(errs, validator.ValidationError{
			Field:   "emp_id",
			Message: "emp_id is required",
		})
	} else if !validator.IsValidEmpID(r.EmpID) {
		errs = append(errs, validator.ValidationError{
			Field:   "emp_id",
			Message: "emp_id must be 2-32 uppercase letters, digits or dashes",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not valid",
		})
	}

	if !EmploymentType(r.EmploymentType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_type",
			Message: "employment_type must be full_time, part_time or hourly",
		})
	}

	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}

	if r.WorkingHours != nil && r.WorkingHours.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "working_hours",
			Message: "working_hours must not be negative",
		})
	}

	if r.PaidLeaveQuota != nil && *r.PaidLeaveQuota < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "paid_leave_quota",
			Message: "paid_leave_quota must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID             string           `json:"id"`
	FullName       *string          `json:"full_name,omitempty"`
	Email          *string          `json:"email,omitempty"`
	PhoneNumber    *string          `json:"phone_number,omitempty"`
	EmploymentType *string          `json:"employment_type,omitempty"`
	BaseSalary     *decimal.Decimal `json:"base_salary,omitempty"`
	BonusAmount    *decimal.Decimal `json:"bonus_amount,omitempty"`
	BonusEligible  *bool            `json:"bonus_eligible,omitempty"`
	WorkingHours   *decimal.Decimal `json:"working_hours,omitempty"`
	PaidLeaveQuota *int             `json:"paid_leave_quota,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not valid",
		})
	}

	if r.EmploymentType != nil && !EmploymentType(*r.EmploymentType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_type",
			Message: "employment_type must be full_time, part_time or hourly",
		})
	}

	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListEmployeeFilter struct {
	Search string
	Page   int
	Limit  int
}

type EmployeeResponse struct {
	ID             string          `json:"id"`
	EmpID          string          `json:"emp_id"`
	FullName       string          `json:"full_name"`
	Email          string          `json:"email"`
	PhoneNumber    *string         `json:"phone_number,omitempty"`
	EmploymentType string          `json:"employment_type"`
	BaseSalary     decimal.Decimal `json:"base_salary"`
	BonusAmount    decimal.Decimal `json:"bonus_amount"`
	BonusEligible  bool            `json:"bonus_eligible"`
	WorkingHours   decimal.Decimal `json:"working_hours"`
	PaidLeaveQuota int             `json:"paid_leave_quota"`
	IsActive       bool            `json:"is_active"`
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}
