package advance

import (
	"context"
	"time"
)

// AdvanceService defines business logic for salary advances
type AdvanceService interface {
	// AddAdvance creates an advance and its installment schedule in a
	// single transaction
	AddAdvance(ctx context.Context, req AddAdvanceRequest) (AdvanceResponse, error)

	// GetAdvance retrieves one advance with its staff name
	GetAdvance(ctx context.Context, id int64) (AdvanceResponse, error)

	// ListAdvances retrieves all advances, newest first
	ListAdvances(ctx context.Context) ([]AdvanceResponse, error)

	// RecordPayment applies an ad-hoc payment against the remaining
	// amount. Rejects negative amounts and amounts above the remainder.
	RecordPayment(ctx context.Context, req RecordPaymentRequest) (AdvanceResponse, error)

	// MarkInstallmentPaid marks one scheduled installment as paid
	MarkInstallmentPaid(ctx context.Context, req MarkRepaymentPaidRequest) (RepaymentResponse, error)

	// GetRepaymentHistory lists an advance's installments by due date
	GetRepaymentHistory(ctx context.Context, advanceID int64) ([]RepaymentResponse, error)

	// ListPendingRepayments lists unpaid installments, optionally filtered
	// by staff and due-date range
	ListPendingRepayments(ctx context.Context, staffID *int64, first, last *time.Time) ([]RepaymentResponse, error)

	// GetOutstandingBalances aggregates issued minus repaid per staff
	GetOutstandingBalances(ctx context.Context) ([]OutstandingResponse, error)

	// ListPendingAdvances lists advances that still have unpaid installments
	ListPendingAdvances(ctx context.Context, staffID *int64) ([]PendingAdvanceResponse, error)

	// NotifyDueRepayments sends a reminder for every unpaid installment
	// due on or before the date. Members without a phone number are
	// skipped. Returns the number of reminders sent.
	NotifyDueRepayments(ctx context.Context, due time.Time) (int, error)
}
