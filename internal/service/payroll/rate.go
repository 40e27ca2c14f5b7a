package payroll

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/staffhq/attendance-backend-go/internal/domain/employee"
	"github.com/staffhq/attendance-backend-go/internal/domain/setting"
)

// RateCalculator derives the per-day monetary rate for an employee.
type RateCalculator struct {
	settings setting.SettingService
}

func NewRateCalculator(settings setting.SettingService) *RateCalculator {
	return &RateCalculator{settings: settings}
}

// DailyRate returns the per-day rate:
//   - full_time: base_salary / working_days_per_month, rounded to 2 decimals
//   - part_time: base_salary as-is (already a per-day rate)
//   - hourly: zero; hourly pay is hours x rate inside the engine
//
// The working-days setting falls back to 22 when absent, unparsable or
// non-positive, so the division can never be by zero.
func (c *RateCalculator) DailyRate(ctx context.Context, emp employee.Employee) decimal.Decimal {
	switch emp.EmploymentType {
	case employee.EmploymentTypeFullTime:
		if emp.BaseSalary.IsZero() {
			return decimal.Zero
		}
		workingDays := c.settings.GetInt(ctx, setting.KeyWorkingDaysPerMonth, setting.DefaultWorkingDaysPerMonth)
		if workingDays <= 0 {
			workingDays = setting.DefaultWorkingDaysPerMonth
		}
		return emp.BaseSalary.DivRound(decimal.NewFromInt(int64(workingDays)), 2)
	case employee.EmploymentTypePartTime:
		return emp.BaseSalary
	default:
		return decimal.Zero
	}
}
