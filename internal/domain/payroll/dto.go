package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/staffhq/attendance-backend-go/internal/pkg/validator"
)

type CalculateRequest struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
}

func (r *CalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	errs = append(errs, validatePeriod(r.Year, r.Month)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CalculateBatchRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (r *CalculateBatchRequest) Validate() error {
	if errs := validatePeriod(r.Year, r.Month); len(errs) > 0 {
		return errs
	}
	return nil
}

func validatePeriod(year, month int) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if year < 2000 || year > 2200 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2200",
		})
	}
	if month < 1 || month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	return errs
}

type SalaryRecordResponse struct {
	ID                string          `json:"id"`
	EmployeeID        string          `json:"employee_id"`
	EmployeeName      *string         `json:"employee_name,omitempty"`
	EmpID             *string         `json:"emp_id,omitempty"`
	Year              int             `json:"year"`
	Month             int             `json:"month"`
	GrossSalary       decimal.Decimal `json:"gross_salary"`
	Deductions        decimal.Decimal `json:"deductions"`
	BonusApplied      decimal.Decimal `json:"bonus_applied"`
	HalfDayDeductions decimal.Decimal `json:"half_day_deductions"`
	UnpaidLeaveDays   decimal.Decimal `json:"unpaid_leave_days"`
	NetSalary         decimal.Decimal `json:"net_salary"`
}

// BatchFailure reports one employee-month the batch could not compute.
// Failures never abort the rest of the batch.
type BatchFailure struct {
	EmployeeID string `json:"employee_id"`
	EmpID      string `json:"emp_id"`
	Error      string `json:"error"`
}

type BatchResultResponse struct {
	Year      int                    `json:"year"`
	Month     int                    `json:"month"`
	Generated []SalaryRecordResponse `json:"generated"`
	Failures  []BatchFailure         `json:"failures,omitempty"`
}
