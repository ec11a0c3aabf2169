package advance

import (
	"time"

	"github.com/shopspring/decimal"
)

// RepaymentType describes how an advance is scheduled for recovery.
type RepaymentType string

const (
	RepaymentOneTime RepaymentType = "OneTime"
	RepaymentWeekly  RepaymentType = "Weekly"
	RepaymentMonthly RepaymentType = "Monthly"
)

func (t RepaymentType) Valid() bool {
	return t == RepaymentOneTime || t == RepaymentWeekly || t == RepaymentMonthly
}

// Status is the advance lifecycle: Active until the remaining amount
// reaches zero, then Completed. Completed is terminal.
type Status string

const (
	StatusActive    Status = "Active"
	StatusCompleted Status = "Completed"
)

// Advance is a cash advance against salary. RemainingAmount tracks the
// ad-hoc payment view; the installment rows track the scheduled view.
// The two views are deliberately not reconciled against each other.
type Advance struct {
	ID              int64
	StaffID         int64
	Amount          decimal.Decimal
	Date            time.Time
	RepaymentType   RepaymentType
	EMIAmount       decimal.Decimal
	TotalEMICount   int
	RemainingAmount decimal.Decimal
	Status          Status
	CreatedAt       time.Time

	// Joined fields
	StaffName *string
}

// Repayment is one installment of an advance's recovery schedule.
type Repayment struct {
	ID        int64
	AdvanceID int64
	Amount    decimal.Decimal
	DueDate   time.Time
	IsPaid    bool
	PaidDate  *time.Time
	CreatedAt time.Time

	// Joined fields
	StaffID   *int64
	StaffName *string
}

// Outstanding is the per-staff balance: total advance issued minus the
// sum of installments marked paid.
type Outstanding struct {
	StaffID     int64
	StaffName   string
	TotalIssued decimal.Decimal
	TotalRepaid decimal.Decimal
	Outstanding decimal.Decimal
}

// PendingAdvance summarizes an advance's still-unpaid installments.
type PendingAdvance struct {
	AdvanceID           int64
	StaffID             int64
	StaffName           string
	TotalAmount         decimal.Decimal
	AdvanceDate         time.Time
	PendingAmount       decimal.Decimal
	PendingInstallments int
}
