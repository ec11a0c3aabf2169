package holiday

import (
	"context"
	"time"
)

// HolidayService defines business logic for holiday management
type HolidayService interface {
	// AddHoliday registers a holiday and credits every active staff member
	// as present on that date, in a single transaction
	AddHoliday(ctx context.Context, req AddHolidayRequest) (HolidayResponse, error)

	// RemoveHoliday deletes the holiday entry. Attendance written when the
	// holiday was added is not reverted.
	RemoveHoliday(ctx context.Context, date time.Time) error

	// ListHolidays returns holidays in [first, last]; zero-value bounds
	// list everything
	ListHolidays(ctx context.Context, first, last time.Time) ([]HolidayResponse, error)

	// IsHoliday reports whether a date is a registered holiday
	IsHoliday(ctx context.Context, date time.Time) (bool, error)
}
