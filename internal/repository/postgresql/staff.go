package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/staffbook/staffbook-backend-go/internal/domain/staff"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/database"
)

type staffRepository struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepository{db: db}
}

// Create implements staff.StaffRepository.
func (r *staffRepository) Create(ctx context.Context, s staff.Staff) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO staff (name, phone, monthly_salary, salary_cycle_start, salary_cycle_end)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		s.Name,
		s.Phone,
		s.MonthlySalary,
		s.SalaryCycleStart,
		s.SalaryCycleEnd,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return staff.Staff{}, fmt.Errorf("failed to create staff: %w", err)
	}

	historyQuery := `
		INSERT INTO salary_history (staff_id, salary, effective_from)
		VALUES ($1, $2, $3)
	`

	if _, err := q.Exec(ctx, historyQuery, s.ID, s.MonthlySalary, s.CreatedAt); err != nil {
		return staff.Staff{}, fmt.Errorf("failed to create opening salary record: %w", err)
	}

	return s, nil
}

// GetByID implements staff.StaffRepository.
func (r *staffRepository) GetByID(ctx context.Context, id int64) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, phone, monthly_salary, salary_cycle_start, salary_cycle_end, hidden, created_at
		FROM staff
		WHERE id = $1
	`

	var s staff.Staff
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Phone, &s.MonthlySalary,
		&s.SalaryCycleStart, &s.SalaryCycleEnd, &s.Hidden, &s.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff: %w", err)
	}

	return s, nil
}

// GetByPhone implements staff.StaffRepository.
func (r *staffRepository) GetByPhone(ctx context.Context, phone string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, phone, monthly_salary, salary_cycle_start, salary_cycle_end, hidden, created_at
		FROM staff
		WHERE phone = $1
		LIMIT 1
	`

	var s staff.Staff
	err := q.QueryRow(ctx, query, phone).Scan(
		&s.ID, &s.Name, &s.Phone, &s.MonthlySalary,
		&s.SalaryCycleStart, &s.SalaryCycleEnd, &s.Hidden, &s.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff by phone: %w", err)
	}

	return s, nil
}

// ListActive implements staff.StaffRepository.
func (r *staffRepository) ListActive(ctx context.Context) ([]staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, phone, monthly_salary, salary_cycle_start, salary_cycle_end, hidden, created_at
		FROM staff
		WHERE hidden = FALSE
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	var result []staff.Staff
	for rows.Next() {
		var s staff.Staff
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Phone, &s.MonthlySalary,
			&s.SalaryCycleStart, &s.SalaryCycleEnd, &s.Hidden, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate staff: %w", err)
	}

	return result, nil
}

// Update implements staff.StaffRepository.
func (r *staffRepository) Update(ctx context.Context, s staff.Staff) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE staff
		SET name = $2, phone = $3
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, s.ID, s.Name, s.Phone)
	if err != nil {
		return fmt.Errorf("failed to update staff: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}

	return nil
}

// Hide implements staff.StaffRepository.
func (r *staffRepository) Hide(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE staff SET hidden = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to hide staff: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}

	return nil
}

// CloseCurrentSalary implements staff.StaffRepository.
func (r *staffRepository) CloseCurrentSalary(ctx context.Context, staffID int64, effectiveTo time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_history
		SET effective_to = $2
		WHERE staff_id = $1
		  AND effective_to IS NULL
	`

	if _, err := q.Exec(ctx, query, staffID, effectiveTo); err != nil {
		return fmt.Errorf("failed to close current salary record: %w", err)
	}

	return nil
}

// InsertSalaryRecord implements staff.StaffRepository.
func (r *staffRepository) InsertSalaryRecord(ctx context.Context, staffID int64, salary decimal.Decimal, effectiveFrom time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_history (staff_id, salary, effective_from)
		VALUES ($1, $2, $3)
	`

	if _, err := q.Exec(ctx, query, staffID, salary, effectiveFrom); err != nil {
		return fmt.Errorf("failed to insert salary record: %w", err)
	}

	updateQuery := `
		UPDATE staff
		SET monthly_salary = $2
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, updateQuery, staffID, salary)
	if err != nil {
		return fmt.Errorf("failed to update staff salary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}

	return nil
}

// SalaryHistory implements staff.StaffRepository.
func (r *staffRepository) SalaryHistory(ctx context.Context, staffID int64) ([]staff.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, salary, effective_from, effective_to, created_at
		FROM salary_history
		WHERE staff_id = $1
		ORDER BY effective_from DESC
	`

	rows, err := q.Query(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary history: %w", err)
	}
	defer rows.Close()

	var result []staff.SalaryRecord
	for rows.Next() {
		var rec staff.SalaryRecord
		if err := rows.Scan(
			&rec.ID, &rec.StaffID, &rec.Salary,
			&rec.EffectiveFrom, &rec.EffectiveTo, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan salary record: %w", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate salary history: %w", err)
	}

	return result, nil
}

// GetSalaryCycle implements staff.StaffRepository.
func (r *staffRepository) GetSalaryCycle(ctx context.Context, staffID int64) (staff.SalaryCycle, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT salary_cycle_start, salary_cycle_end
		FROM staff
		WHERE id = $1
	`

	var cycle staff.SalaryCycle
	err := q.QueryRow(ctx, query, staffID).Scan(&cycle.Start, &cycle.End)
	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.SalaryCycle{}, staff.ErrStaffNotFound
		}
		return staff.SalaryCycle{}, fmt.Errorf("failed to get salary cycle: %w", err)
	}

	return cycle, nil
}

// SetSalaryCycle implements staff.StaffRepository.
func (r *staffRepository) SetSalaryCycle(ctx context.Context, staffID int64, cycle staff.SalaryCycle) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE staff
		SET salary_cycle_start = $2, salary_cycle_end = $3
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, staffID, cycle.Start, cycle.End)
	if err != nil {
		return fmt.Errorf("failed to set salary cycle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}

	return nil
}
