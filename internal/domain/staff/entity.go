package staff

import (
	"time"

	"github.com/shopspring/decimal"
)

// Staff is a payroll-tracked worker. Hidden staff are soft-deleted:
// excluded from active listings and reports but kept for history.
type Staff struct {
	ID               int64
	Name             string
	Phone            *string
	MonthlySalary    decimal.Decimal
	SalaryCycleStart int
	SalaryCycleEnd   int
	Hidden           bool
	CreatedAt        time.Time
}

// SalaryRecord is one row of a staff member's salary history.
// At most one record per staff has EffectiveTo == nil.
type SalaryRecord struct {
	ID            int64
	StaffID       int64
	Salary        decimal.Decimal
	EffectiveFrom time.Time
	EffectiveTo   *time.Time
	CreatedAt     time.Time
}

// SalaryCycle is the per-staff payroll window boundary (day-of-month).
type SalaryCycle struct {
	Start int
	End   int
}

const (
	DefaultCycleStart = 1
	DefaultCycleEnd   = 31
)
