package leave

import (
	"github.com/staffhq/attendance-backend-go/internal/pkg/validator"
)

type RequestLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"` // YYYY-MM-DD
	LeaveType  string `json:"leave_type"`
	IsPaid     bool   `json:"is_paid"`
	Reason     string `json:"reason,omitempty"`
	Actor      string `json:"-"`
}

func (r *RequestLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.LeaveType != "" && !LeaveType(r.LeaveType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be normal, sick, emergency or other",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateLeaveRequest struct {
	ID        string  `json:"id"`
	LeaveType *string `json:"leave_type,omitempty"`
	IsPaid    *bool   `json:"is_paid,omitempty"`
	Status    *string `json:"status,omitempty"`
	Reason    *string `json:"reason,omitempty"`
	Actor     string  `json:"-"`
}

func (r *UpdateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.LeaveType != nil && !LeaveType(*r.LeaveType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be normal, sick, emergency or other",
		})
	}

	if r.Status != nil && !Status(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be pending, approved or rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListLeaveFilter struct {
	EmployeeID *string
	Status     *string
	StartDate  *string
	EndDate    *string
	Page       int
	Limit      int
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	EmpID        *string `json:"emp_id,omitempty"`
	Date         string  `json:"date"`
	LeaveType    string  `json:"leave_type"`
	IsPaid       bool    `json:"is_paid"`
	Status       string  `json:"status"`
	Reason       string  `json:"reason,omitempty"`
	Amended      bool    `json:"amended"`
	AmendedBy    *string `json:"amended_by,omitempty"`
}

type ListLeaveResponse struct {
	Data       []LeaveResponse `json:"data"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
}
