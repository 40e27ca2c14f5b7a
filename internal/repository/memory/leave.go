package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/staffhq/attendance-backend-go/internal/domain/leave"
)

type LeaveRepository struct {
	mu      sync.RWMutex
	entries map[string]leave.Leave
}

func NewLeaveRepository() *LeaveRepository {
	return &LeaveRepository{entries: make(map[string]leave.Leave)}
}

func (r *LeaveRepository) Create(_ context.Context, entry leave.Leave) (leave.Leave, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	day := entry.Date.Format("2006-01-02")
	for _, existing := range r.entries {
		if existing.EmployeeID == entry.EmployeeID && existing.Date.Format("2006-01-02") == day {
			return leave.Leave{}, leave.ErrLeaveExists
		}
	}

	entry.ID = uuid.NewString()
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = entry.CreatedAt
	r.entries[entry.ID] = entry
	return entry, nil
}

func (r *LeaveRepository) GetByID(_ context.Context, id string) (leave.Leave, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[id]
	if !ok {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}
	return entry, nil
}

func (r *LeaveRepository) Update(_ context.Context, entry leave.Leave) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.entries[entry.ID]
	if !ok {
		return leave.ErrLeaveNotFound
	}
	entry.CreatedAt = existing.CreatedAt
	entry.UpdatedAt = time.Now()
	r.entries[entry.ID] = entry
	return nil
}

func (r *LeaveRepository) ListApprovedByEmployeeRange(_ context.Context, employeeID string, from, to time.Time) ([]leave.Leave, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var entries []leave.Leave
	for _, entry := range r.entries {
		if entry.EmployeeID != employeeID || entry.Status != leave.StatusApproved {
			continue
		}
		if entry.Date.Before(from) || entry.Date.After(to) {
			continue
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date.Before(entries[j].Date) })
	return entries, nil
}

func (r *LeaveRepository) List(_ context.Context, filter leave.ListLeaveFilter) ([]leave.Leave, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []leave.Leave
	for _, entry := range r.entries {
		if filter.EmployeeID != nil && *filter.EmployeeID != "" && entry.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && *filter.Status != "" && string(entry.Status) != *filter.Status {
			continue
		}
		day := entry.Date.Format("2006-01-02")
		if filter.StartDate != nil && *filter.StartDate != "" && day < *filter.StartDate {
			continue
		}
		if filter.EndDate != nil && *filter.EndDate != "" && day > *filter.EndDate {
			continue
		}
		matched = append(matched, entry)
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
