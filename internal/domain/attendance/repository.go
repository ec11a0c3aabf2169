package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Upsert writes a record keyed on (staff_id, date), overwriting any
	// existing mark for that day.
	Upsert(ctx context.Context, rec Record) error

	// ListByDate returns all stored records for a date.
	ListByDate(ctx context.Context, date time.Time) ([]Record, error)

	// ListByStaffAndRange returns stored records for a staff member with
	// dates in [first, last], ascending.
	ListByStaffAndRange(ctx context.Context, staffID int64, first, last time.Time) ([]Record, error)

	// ListByRange returns stored records for all staff with dates in
	// [first, last], ordered by staff then date.
	ListByRange(ctx context.Context, first, last time.Time) ([]Record, error)

	// CountByDate reports how many records exist for a date. Zero means
	// the auto-marker has not run and nothing was marked manually.
	CountByDate(ctx context.Context, date time.Time) (int64, error)

	// MonthTotals returns recorded-row and present-or-holiday counts over
	// a date range, for the dashboard attendance percentage.
	MonthTotals(ctx context.Context, first, last time.Time) (total int64, present int64, err error)
}
