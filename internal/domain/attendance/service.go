package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// MarkAttendance records or overwrites a staff member's mark for a date
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) error

	// GetDailyAttendance resolves every active staff member's status for a
	// date; a registered holiday forces present+holiday for everyone
	GetDailyAttendance(ctx context.Context, date time.Time) (DailyAttendanceResponse, error)

	// GetMonthlyAttendance returns one staff member's full calendar month,
	// absent-filling days with no stored record
	GetMonthlyAttendance(ctx context.Context, staffID int64, year, month int) (MonthlyAttendanceResponse, error)

	// GetMonthlyAttendanceAll resolves the full calendar month for every
	// active staff member
	GetMonthlyAttendanceAll(ctx context.Context, year, month int) (MonthlyAttendanceAllResponse, error)

	// AutoMarkToday marks all active staff present for today if no record
	// exists yet for the date. Returns the number of staff marked.
	AutoMarkToday(ctx context.Context) (int, error)
}
