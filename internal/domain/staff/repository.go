package staff

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type StaffRepository interface {
	// Create inserts a staff row and its opening salary history record.
	Create(ctx context.Context, s Staff) (Staff, error)

	// GetByID returns the staff member regardless of the hidden flag,
	// so historical records stay queryable by id.
	GetByID(ctx context.Context, id int64) (Staff, error)

	// GetByPhone returns the staff member holding a phone number, hidden
	// included. Used for the duplicate-phone check.
	GetByPhone(ctx context.Context, phone string) (Staff, error)

	// ListActive returns non-hidden staff ordered by name.
	ListActive(ctx context.Context) ([]Staff, error)

	Update(ctx context.Context, s Staff) error

	// Hide soft-deletes a staff member.
	Hide(ctx context.Context, id int64) error

	// CloseCurrentSalary sets effective_to on the open salary history row.
	CloseCurrentSalary(ctx context.Context, staffID int64, effectiveTo time.Time) error

	// InsertSalaryRecord opens a new salary history row and updates the
	// staff row's current salary.
	InsertSalaryRecord(ctx context.Context, staffID int64, salary decimal.Decimal, effectiveFrom time.Time) error

	SalaryHistory(ctx context.Context, staffID int64) ([]SalaryRecord, error)

	GetSalaryCycle(ctx context.Context, staffID int64) (SalaryCycle, error)
	SetSalaryCycle(ctx context.Context, staffID int64, cycle SalaryCycle) error
}
