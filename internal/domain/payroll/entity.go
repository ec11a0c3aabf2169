package payroll

import (
	"github.com/shopspring/decimal"
)

// Config is the payroll configuration resolved from settings and passed
// explicitly into the engine. No ambient lookups happen at compute time.
type Config struct {
	WorkingDays      int
	SalaryCycleStart int
	SalaryCycleEnd   int
}

const DefaultWorkingDays = 26

// ReportRow is one staff member's payroll result for a month.
// FinalSalary is deliberately unclamped: advance deductions larger than
// the earned salary produce a negative payout.
type ReportRow struct {
	StaffID          int64
	StaffName        string
	MonthlySalary    decimal.Decimal
	DaysPresent      int
	WorkingDays      int
	AttendanceRatio  decimal.Decimal
	CalculatedSalary decimal.Decimal
	AdvanceDeduction decimal.Decimal
	FinalSalary      decimal.Decimal
}
