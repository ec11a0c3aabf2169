package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/staffbook/staffbook-backend-go/internal/domain/holiday"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

// Upsert implements holiday.HolidayRepository.
func (r *holidayRepository) Upsert(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (date, name)
		VALUES ($1, $2)
		ON CONFLICT (date)
		DO UPDATE SET name = EXCLUDED.name
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, h.Date, h.Name).Scan(&h.ID, &h.CreatedAt)
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to upsert holiday: %w", err)
	}

	return h, nil
}

// Exists implements holiday.HolidayRepository.
func (r *holidayRepository) Exists(ctx context.Context, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM holidays WHERE date = $1)`, date).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check holiday: %w", err)
	}

	return exists, nil
}

// ListByRange implements holiday.HolidayRepository.
func (r *holidayRepository) ListByRange(ctx context.Context, first, last time.Time) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, name, created_at
		FROM holidays
		WHERE ($1::date IS NULL OR date >= $1)
		  AND ($2::date IS NULL OR date <= $2)
		ORDER BY date
	`

	var firstArg, lastArg *time.Time
	if !first.IsZero() {
		firstArg = &first
	}
	if !last.IsZero() {
		lastArg = &last
	}

	rows, err := q.Query(ctx, query, firstArg, lastArg)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var result []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		result = append(result, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holidays: %w", err)
	}

	return result, nil
}

// DeleteByDate implements holiday.HolidayRepository.
func (r *holidayRepository) DeleteByDate(ctx context.Context, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE date = $1`, date)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}
