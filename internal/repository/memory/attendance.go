package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/staffhq/attendance-backend-go/internal/domain/attendance"
)

type attendanceKey struct {
	employeeID string
	date       string
}

type AttendanceRepository struct {
	mu   sync.RWMutex
	rows map[attendanceKey]attendance.Attendance
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{rows: make(map[attendanceKey]attendance.Attendance)}
}

func attKey(employeeID string, date time.Time) attendanceKey {
	return attendanceKey{employeeID: employeeID, date: date.Format("2006-01-02")}
}

func (r *AttendanceRepository) Upsert(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := attKey(att.EmployeeID, att.Date)
	if existing, ok := r.rows[key]; ok {
		att.ID = existing.ID
		att.CreatedAt = existing.CreatedAt
	} else {
		att.ID = uuid.NewString()
		att.CreatedAt = time.Now()
	}
	att.UpdatedAt = time.Now()
	r.rows[key] = att
	return att, nil
}

func (r *AttendanceRepository) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, att := range r.rows {
		if att.ID == id {
			return att, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (r *AttendanceRepository) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	att, ok := r.rows[attKey(employeeID, date)]
	if !ok {
		return nil, nil
	}
	return &att, nil
}

func (r *AttendanceRepository) ListByEmployeeRange(_ context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var atts []attendance.Attendance
	for _, att := range r.rows {
		if att.EmployeeID != employeeID {
			continue
		}
		if att.Date.Before(from) || att.Date.After(to) {
			continue
		}
		atts = append(atts, att)
	}
	sort.Slice(atts, func(i, j int) bool { return atts[i].Date.Before(atts[j].Date) })
	return atts, nil
}

func (r *AttendanceRepository) List(_ context.Context, filter attendance.ListAttendanceFilter) ([]attendance.Attendance, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []attendance.Attendance
	for _, att := range r.rows {
		if filter.EmployeeID != nil && *filter.EmployeeID != "" && att.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && *filter.Status != "" && string(att.Status) != *filter.Status {
			continue
		}
		day := att.Date.Format("2006-01-02")
		if filter.StartDate != nil && *filter.StartDate != "" && day < *filter.StartDate {
			continue
		}
		if filter.EndDate != nil && *filter.EndDate != "" && day > *filter.EndDate {
			continue
		}
		matched = append(matched, att)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Date.After(matched[j].Date) })

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}
