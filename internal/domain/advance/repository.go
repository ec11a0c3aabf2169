package advance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type AdvanceRepository interface {
	// Create inserts the advance row; RemainingAmount starts at Amount.
	Create(ctx context.Context, a Advance) (Advance, error)

	GetByID(ctx context.Context, id int64) (Advance, error)

	// ListAll returns every advance joined with the staff name, newest
	// first. Includes hidden staff's historical advances.
	ListAll(ctx context.Context) ([]Advance, error)

	// ApplyPayment atomically decrements remaining_amount and flips the
	// status to Completed once it reaches zero or below. Completed never
	// reverts.
	ApplyPayment(ctx context.Context, id int64, paid decimal.Decimal) error

	// SumIssuedByRange totals advance amounts issued in [first, last].
	SumIssuedByRange(ctx context.Context, first, last time.Time) (decimal.Decimal, error)

	// SumRemainingActive totals remaining_amount over Active advances for
	// non-hidden staff.
	SumRemainingActive(ctx context.Context) (decimal.Decimal, error)

	// CreateRepayments inserts the installment schedule for an advance.
	CreateRepayments(ctx context.Context, advanceID int64, installments []Repayment) error

	GetRepaymentByID(ctx context.Context, id int64) (Repayment, error)

	// MarkRepaymentPaid sets is_paid and the paid date on one installment.
	MarkRepaymentPaid(ctx context.Context, id int64, paidDate time.Time) error

	// RepaymentHistory lists an advance's installments ordered by due date.
	RepaymentHistory(ctx context.Context, advanceID int64) ([]Repayment, error)

	// ListPendingRepayments returns unpaid installments, optionally
	// filtered by staff and due-date range, ordered by due date.
	ListPendingRepayments(ctx context.Context, staffID *int64, first, last *time.Time) ([]Repayment, error)

	// SumUnpaidDueByRange totals unpaid installment amounts for one staff
	// member with due dates in [first, last]. This is the payroll
	// deduction figure, independent of remaining_amount.
	SumUnpaidDueByRange(ctx context.Context, staffID int64, first, last time.Time) (decimal.Decimal, error)

	// OutstandingByStaff aggregates issued minus repaid per non-hidden
	// staff member, returning only positive balances.
	OutstandingByStaff(ctx context.Context) ([]Outstanding, error)

	// ListPendingAdvances aggregates unpaid installment totals per
	// advance, returning only advances with a positive pending amount.
	ListPendingAdvances(ctx context.Context, staffID *int64) ([]PendingAdvance, error)
}
