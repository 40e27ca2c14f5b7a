package response

import (
	"errors"
	"net/http"

	"github.com/staffhq/attendance-backend-go/internal/domain/attendance"
	"github.com/staffhq/attendance-backend-go/internal/domain/employee"
	"github.com/staffhq/attendance-backend-go/internal/domain/leave"
	"github.com/staffhq/attendance-backend-go/internal/domain/payroll"
	"github.com/staffhq/attendance-backend-go/internal/domain/setting"
	"github.com/staffhq/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmpIDExists):
		Conflict(w, "Employee ID already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave entry not found")
	case errors.Is(err, leave.ErrLeaveExists):
		Conflict(w, "Leave entry already exists for this date")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrSalaryRecordNotFound):
		NotFound(w, "Salary record not found")
	case errors.Is(err, payroll.ErrRecomputeConflict):
		Conflict(w, "A concurrent payroll run is in progress, retry the request")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, payroll.ErrIncompleteEmployee):
		BadRequest(w, err.Error(), nil)

	// Setting domain errors
	case errors.Is(err, setting.ErrSettingNotFound):
		NotFound(w, "Setting not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
