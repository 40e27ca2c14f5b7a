package attendance

import (
	"github.com/shopspring/decimal"

	"github.com/staffhq/attendance-backend-go/internal/pkg/validator"
)

type RecordAttendanceRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`    // YYYY-MM-DD
	TimeIn     *string `json:"time_in"` // HH:MM
	TimeOut    *string `json:"time_out"`
	Status     string  `json:"status"`
	Remarks    string  `json:"remarks,omitempty"`
}

func (r *RecordAttendanceRequest) Validate() error {
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

	if !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be present, absent, leave, half_day or late",
		})
	}

	if r.TimeIn != nil {
		if _, ok := validator.IsValidClock(*r.TimeIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "time_in",
				Message: "time_in must be in HH:MM format",
			})
		}
	}
	if r.TimeOut != nil {
		if _, ok := validator.IsValidClock(*r.TimeOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "time_out",
				Message: "time_out must be in HH:MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListAttendanceFilter struct {
	EmployeeID *string
	Status     *string
	StartDate  *string
	EndDate    *string
	Page       int
	Limit      int
}

type AttendanceResponse struct {
	ID           string           `json:"id"`
	EmployeeID   string           `json:"employee_id"`
	EmployeeName *string          `json:"employee_name,omitempty"`
	EmpID        *string          `json:"emp_id,omitempty"`
	Date         string           `json:"date"`
	TimeIn       *string          `json:"time_in,omitempty"`
	TimeOut      *string          `json:"time_out,omitempty"`
	HoursWorked  *decimal.Decimal `json:"hours_worked,omitempty"`
	Status       string           `json:"status"`
	Remarks      string           `json:"remarks,omitempty"`
}

type ListAttendanceResponse struct {
	Data       []AttendanceResponse `json:"data"`
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
}
