package dashboard

import "github.com/shopspring/decimal"

// OverviewResponse is the combined response for the manager dashboard
type OverviewResponse struct {
	TotalEmployees   int64           `json:"total_employees"`
	PendingLeaves    int64           `json:"pending_leaves"`
	OnLeaveToday     int64           `json:"on_leave_today"`
	PayrollNetTotal  decimal.Decimal `json:"payroll_net_total"` // current month
	LateComerRanking []LateComer     `json:"late_comer_ranking"`
	UpcomingLeaves   []UpcomingLeave `json:"upcoming_leaves"` // next 7 days
}

// LateComer is one entry of the monthly lateness ranking
type LateComer struct {
	EmployeeID   string `json:"employee_id"`
	EmpID        string `json:"emp_id"`
	EmployeeName string `json:"employee_name"`
	LateCount    int64  `json:"late_count"`
}

// UpcomingLeave is one approved leave-day in the near future
type UpcomingLeave struct {
	EmployeeID   string `json:"employee_id"`
	EmpID        string `json:"emp_id"`
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"`
	LeaveType    string `json:"leave_type"`
	IsPaid       bool   `json:"is_paid"`
}
