package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/staffhq/attendance-backend-go/internal/domain/payroll"
)

type PayrollRepository struct {
	mu      sync.RWMutex
	records map[string]payroll.SalaryRecord
}

func NewPayrollRepository() *PayrollRepository {
	return &PayrollRepository{records: make(map[string]payroll.SalaryRecord)}
}

func salaryKey(employeeID string, year, month int) string {
	return fmt.Sprintf("%s/%d-%02d", employeeID, year, month)
}

func (r *PayrollRepository) Upsert(_ context.Context, record payroll.SalaryRecord) (payroll.SalaryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := salaryKey(record.EmployeeID, record.Year, record.Month)
	if existing, ok := r.records[key]; ok {
		record.ID = existing.ID
	} else {
		record.ID = uuid.NewString()
	}
	record.GeneratedAt = time.Now()
	r.records[key] = record
	return record, nil
}

func (r *PayrollRepository) GetByEmployeePeriod(_ context.Context, employeeID string, year, month int) (payroll.SalaryRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[salaryKey(employeeID, year, month)]
	if !ok {
		return payroll.SalaryRecord{}, payroll.ErrSalaryRecordNotFound
	}
	return record, nil
}

func (r *PayrollRepository) ListByPeriod(_ context.Context, year, month int) ([]payroll.SalaryRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var records []payroll.SalaryRecord
	for _, record := range r.records {
		if record.Year == year && record.Month == month {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].EmployeeID < records[j].EmployeeID })
	return records, nil
}

func (r *PayrollRepository) ListByEmployee(_ context.Context, employeeID string, limit int) ([]payroll.SalaryRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var records []payroll.SalaryRecord
	for _, record := range r.records {
		if record.EmployeeID == employeeID {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Year != records[j].Year {
			return records[i].Year > records[j].Year
		}
		return records[i].Month > records[j].Month
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}
