package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/staffbook/staffbook-backend-go/internal/domain/attendance"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Upsert implements attendance.AttendanceRepository.
func (r *attendanceRepository) Upsert(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (staff_id, date, is_present, is_holiday)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (staff_id, date)
		DO UPDATE SET is_present = EXCLUDED.is_present, is_holiday = EXCLUDED.is_holiday
	`

	if _, err := q.Exec(ctx, query, rec.StaffID, rec.Date, rec.IsPresent, rec.IsHoliday); err != nil {
		return fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return nil
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, date, is_present, is_holiday, created_at
		FROM attendance
		WHERE date = $1
		ORDER BY staff_id
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// ListByStaffAndRange implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByStaffAndRange(ctx context.Context, staffID int64, first, last time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, date, is_present, is_holiday, created_at
		FROM attendance
		WHERE staff_id = $1
		  AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, staffID, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by range: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// ListByRange implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByRange(ctx context.Context, first, last time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, date, is_present, is_holiday, created_at
		FROM attendance
		WHERE date BETWEEN $1 AND $2
		ORDER BY staff_id, date
	`

	rows, err := q.Query(ctx, query, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by range: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// CountByDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) CountByDate(ctx context.Context, date time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendance WHERE date = $1`, date).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance: %w", err)
	}

	return count, nil
}

// MonthTotals implements attendance.AttendanceRepository.
func (r *attendanceRepository) MonthTotals(ctx context.Context, first, last time.Time) (int64, int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE is_present OR is_holiday)
		FROM attendance a
		JOIN staff s ON s.id = a.staff_id
		WHERE a.date BETWEEN $1 AND $2
		  AND s.hidden = FALSE
	`

	var total, present int64
	if err := q.QueryRow(ctx, query, first, last).Scan(&total, &present); err != nil {
		return 0, 0, fmt.Errorf("failed to get attendance totals: %w", err)
	}

	return total, present, nil
}

func scanRecords(rows pgx.Rows) ([]attendance.Record, error) {
	var result []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.StaffID, &rec.Date, &rec.IsPresent, &rec.IsHoliday, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return result, nil
}
