package leave

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/staffhq/attendance-backend-go/internal/domain/employee"
	"github.com/staffhq/attendance-backend-go/internal/domain/leave"
	"github.com/staffhq/attendance-backend-go/internal/domain/payroll"
	"github.com/staffhq/attendance-backend-go/internal/pkg/database"
)

type LeaveServiceImpl struct {
	tx           database.TxManager
	leaveRepo    leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
	publisher    leave.Publisher
	payrollSvc   payroll.PayrollService
}

func NewLeaveService(
	tx database.TxManager,
	leaveRepo leave.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
	publisher leave.Publisher,
	payrollSvc payroll.PayrollService,
) leave.LeaveService {
	return &LeaveServiceImpl{
		tx:           tx,
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
		publisher:    publisher,
		payrollSvc:   payrollSvc,
	}
}

// Request implements leave.LeaveService.
func (s *LeaveServiceImpl) Request(ctx context.Context, req leave.RequestLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	leaveType := leave.LeaveType(req.LeaveType)
	if leaveType == "" {
		leaveType = leave.TypeNormal
	}

	entry := leave.Leave{
		EmployeeID: emp.ID,
		Date:       date,
		LeaveType:  leaveType,
		IsPaid:     req.IsPaid,
		Status:     leave.StatusPending,
		Reason:     req.Reason,
	}

	entry, err = s.leaveRepo.Create(ctx, entry)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	s.publish(entry, emp, req.Actor, leave.ActionCreated, nil)

	return mapToResponse(entry), nil
}

// Update implements leave.LeaveService. Changing any mutable field of an
// existing row marks it amended and records the amending actor.
func (s *LeaveServiceImpl) Update(ctx context.Context, req leave.UpdateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	entry, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	before := entry

	if req.LeaveType != nil {
		entry.LeaveType = leave.LeaveType(*req.LeaveType)
	}
	if req.IsPaid != nil {
		entry.IsPaid = *req.IsPaid
	}
	if req.Status != nil {
		entry.Status = leave.Status(*req.Status)
	}
	if req.Reason != nil {
		entry.Reason = *req.Reason
	}

	changes := diffEntries(before, entry)
	if len(changes) == 0 {
		return mapToResponse(entry), nil
	}

	entry.Amended = true
	if req.Actor != "" {
		actor := req.Actor
		entry.AmendedBy = &actor
	}

	if err := s.leaveRepo.Update(ctx, entry); err != nil {
		return leave.LeaveResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, entry.EmployeeID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	action := leave.ActionAmended
	switch {
	case before.Status != leave.StatusApproved && entry.Status == leave.StatusApproved:
		action = leave.ActionApproved
	case before.Status != leave.StatusRejected && entry.Status == leave.StatusRejected:
		action = leave.ActionRejected
	}
	s.publish(entry, emp, req.Actor, action, changes)

	// A status or is_paid change alters the pay inputs for the entry's
	// month, so the affected salary record is recomputed right away.
	_, statusChanged := changes["status"]
	_, paidChanged := changes["is_paid"]
	if statusChanged || paidChanged {
		s.recompute(ctx, entry)
	}

	return mapToResponse(entry), nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, id, actor string) (leave.LeaveResponse, error) {
	status := string(leave.StatusApproved)
	return s.Update(ctx, leave.UpdateLeaveRequest{ID: id, Status: &status, Actor: actor})
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, id, actor string) (leave.LeaveResponse, error) {
	status := string(leave.StatusRejected)
	return s.Update(ctx, leave.UpdateLeaveRequest{ID: id, Status: &status, Actor: actor})
}

// Get implements leave.LeaveService.
func (s *LeaveServiceImpl) Get(ctx context.Context, id string) (leave.LeaveResponse, error) {
	entry, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return mapToResponse(entry), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.ListLeaveFilter) (leave.ListLeaveResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	entries, total, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	result := make([]leave.LeaveResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, mapToResponse(e))
	}

	return leave.ListLeaveResponse{
		Data:       result,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *LeaveServiceImpl) recompute(ctx context.Context, entry leave.Leave) {
	year, month := entry.Date.Year(), int(entry.Date.Month())
	if _, err := s.payrollSvc.CalculateForMonth(ctx, entry.EmployeeID, year, month); err != nil {
		// The leave mutation itself succeeded; a failed recompute is
		// reported, not rolled back.
		slog.Warn("payroll recompute after leave change failed",
			"employee_id", entry.EmployeeID,
			"year", year,
			"month", month,
			"error", err,
		)
	}
}

func (s *LeaveServiceImpl) publish(entry leave.Leave, emp employee.Employee, actor string, action leave.Action, changes map[string]leave.FieldChange) {
	if s.publisher == nil {
		return
	}
	if actor == "" {
		actor = "system"
	}
	s.publisher.Publish(leave.Event{
		ID:         uuid.NewString(),
		Actor:      actor,
		Action:     action,
		EmployeeID: emp.ID,
		EmpID:      emp.EmpID,
		Date:       entry.Date,
		Changes:    changes,
		OccurredAt: time.Now().UTC(),
	})
}

func diffEntries(before, after leave.Leave) map[string]leave.FieldChange {
	changes := make(map[string]leave.FieldChange)
	if before.LeaveType != after.LeaveType {
		changes["leave_type"] = leave.FieldChange{Before: string(before.LeaveType), After: string(after.LeaveType)}
	}
	if before.IsPaid != after.IsPaid {
		changes["is_paid"] = leave.FieldChange{Before: strconv.FormatBool(before.IsPaid), After: strconv.FormatBool(after.IsPaid)}
	}
	if before.Status != after.Status {
		changes["status"] = leave.FieldChange{Before: string(before.Status), After: string(after.Status)}
	}
	if before.Reason != after.Reason {
		changes["reason"] = leave.FieldChange{Before: before.Reason, After: after.Reason}
	}
	return changes
}

func mapToResponse(e leave.Leave) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:           e.ID,
		EmployeeID:   e.EmployeeID,
		EmployeeName: e.EmployeeName,
		EmpID:        e.EmpID,
		Date:         e.Date.Format("2006-01-02"),
		LeaveType:    string(e.LeaveType),
		IsPaid:       e.IsPaid,
		Status:       string(e.Status),
		Reason:       e.Reason,
		Amended:      e.Amended,
		AmendedBy:    e.AmendedBy,
	}
}
