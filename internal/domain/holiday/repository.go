package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	// Upsert inserts or replaces the holiday for a date (date is unique).
	Upsert(ctx context.Context, h Holiday) (Holiday, error)

	// Exists reports whether a date is a registered holiday.
	Exists(ctx context.Context, date time.Time) (bool, error)

	// ListByRange returns holidays with dates in [first, last] ordered by
	// date. Zero-value bounds list everything.
	ListByRange(ctx context.Context, first, last time.Time) ([]Holiday, error)

	// DeleteByDate removes the holiday entry only; attendance rows written
	// when it was added are left untouched.
	DeleteByDate(ctx context.Context, date time.Time) error
}
