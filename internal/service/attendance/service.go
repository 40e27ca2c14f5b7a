package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/staffhq/attendance-backend-go/internal/domain/attendance"
	"github.com/staffhq/attendance-backend-go/internal/domain/employee"
	"github.com/staffhq/attendance-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	tx             database.TxManager
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	tx database.TxManager,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		tx:             tx,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// Record implements attendance.AttendanceService. Hours are derived before
// the row is persisted, inside one transaction, so readers never observe a
// row whose hours lag behind its clock times.
func (s *AttendanceServiceImpl) Record(ctx context.Context, req attendance.RecordAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	timeIn, err := combineClock(date, req.TimeIn)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	timeOut, err := combineClock(date, req.TimeOut)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	entry := attendance.Attendance{
		EmployeeID: emp.ID,
		Date:       date,
		TimeIn:     timeIn,
		TimeOut:    timeOut,
		Status:     attendance.Status(req.Status),
		Remarks:    req.Remarks,
	}
	entry.HoursWorked = DeriveHours(emp, entry.Status, entry.TimeIn, entry.TimeOut)

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		entry, err = s.attendanceRepo.Upsert(ctx, entry)
		return err
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapToResponse(entry), nil
}

// Get implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Get(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	entry, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return mapToResponse(entry), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListAttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Status != nil && !attendance.Status(*filter.Status).Valid() {
		return attendance.ListAttendanceResponse{}, attendance.ErrInvalidStatus
	}

	entries, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	result := make([]attendance.AttendanceResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, mapToResponse(e))
	}

	return attendance.ListAttendanceResponse{
		Data:       result,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// combineClock anchors an HH:MM wall-clock string on the entry date.
func combineClock(date time.Time, clock *string) (*time.Time, error) {
	if clock == nil {
		return nil, nil
	}
	t, err := time.Parse("15:04", *clock)
	if err != nil {
		return nil, fmt.Errorf("invalid clock time %q: %w", *clock, err)
	}
	combined := time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
	return &combined, nil
}

func mapToResponse(e attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:           e.ID,
		EmployeeID:   e.EmployeeID,
		EmployeeName: e.EmployeeName,
		EmpID:        e.EmpID,
		Date:         e.Date.Format("2006-01-02"),
		HoursWorked:  e.HoursWorked,
		Status:       string(e.Status),
		Remarks:      e.Remarks,
	}
	if e.TimeIn != nil {
		s := e.TimeIn.Format("15:04")
		resp.TimeIn = &s
	}
	if e.TimeOut != nil {
		s := e.TimeOut.Format("15:04")
		resp.TimeOut = &s
	}
	return resp
}
