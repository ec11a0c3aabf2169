package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/staffbook/staffbook-backend-go/internal/domain/advance"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/database"
)

type advanceRepository struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepository{db: db}
}

// Create implements advance.AdvanceRepository.
func (r *advanceRepository) Create(ctx context.Context, a advance.Advance) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO advances (
			staff_id, amount, date, repayment_type,
			emi_amount, total_emi_count, remaining_amount, status
		) VALUES ($1, $2, $3, $4, $5, $6, $2, $7)
		RETURNING id, remaining_amount, created_at
	`

	err := q.QueryRow(ctx, query,
		a.StaffID,
		a.Amount,
		a.Date,
		a.RepaymentType,
		a.EMIAmount,
		a.TotalEMICount,
		advance.StatusActive,
	).Scan(&a.ID, &a.RemainingAmount, &a.CreatedAt)
	if err != nil {
		return advance.Advance{}, fmt.Errorf("failed to create advance: %w", err)
	}

	a.Status = advance.StatusActive
	return a, nil
}

// GetByID implements advance.AdvanceRepository.
func (r *advanceRepository) GetByID(ctx context.Context, id int64) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.staff_id, a.amount, a.date, a.repayment_type,
		       a.emi_amount, a.total_emi_count, a.remaining_amount, a.status,
		       a.created_at, s.name
		FROM advances a
		JOIN staff s ON s.id = a.staff_id
		WHERE a.id = $1
	`

	var a advance.Advance
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.StaffID, &a.Amount, &a.Date, &a.RepaymentType,
		&a.EMIAmount, &a.TotalEMICount, &a.RemainingAmount, &a.Status,
		&a.CreatedAt, &a.StaffName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.Advance{}, advance.ErrAdvanceNotFound
		}
		return advance.Advance{}, fmt.Errorf("failed to get advance: %w", err)
	}

	return a, nil
}

// ListAll implements advance.AdvanceRepository.
func (r *advanceRepository) ListAll(ctx context.Context) ([]advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.staff_id, a.amount, a.date, a.repayment_type,
		       a.emi_amount, a.total_emi_count, a.remaining_amount, a.status,
		       a.created_at, s.name
		FROM advances a
		JOIN staff s ON s.id = a.staff_id
		ORDER BY a.date DESC, a.id DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}
	defer rows.Close()

	return scanAdvances(rows)
}

// ApplyPayment implements advance.AdvanceRepository.
func (r *advanceRepository) ApplyPayment(ctx context.Context, id int64, paid decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	// Completed is terminal, so the status CASE never reverts it.
	query := `
		UPDATE advances
		SET remaining_amount = remaining_amount - $2,
		    status = CASE WHEN remaining_amount - $2 <= 0 THEN 'Completed' ELSE status END
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, paid)
	if err != nil {
		return fmt.Errorf("failed to apply payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return advance.ErrAdvanceNotFound
	}

	return nil
}

// SumIssuedByRange implements advance.AdvanceRepository.
func (r *advanceRepository) SumIssuedByRange(ctx context.Context, first, last time.Time) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(a.amount), 0)
		FROM advances a
		JOIN staff s ON s.id = a.staff_id
		WHERE a.date BETWEEN $1 AND $2
		  AND s.hidden = FALSE
	`

	var sum decimal.Decimal
	if err := q.QueryRow(ctx, query, first, last).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum issued advances: %w", err)
	}

	return sum, nil
}

// SumRemainingActive implements advance.AdvanceRepository.
func (r *advanceRepository) SumRemainingActive(ctx context.Context) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(a.remaining_amount), 0)
		FROM advances a
		JOIN staff s ON s.id = a.staff_id
		WHERE a.status = 'Active'
		  AND s.hidden = FALSE
	`

	var sum decimal.Decimal
	if err := q.QueryRow(ctx, query).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum remaining advances: %w", err)
	}

	return sum, nil
}

// CreateRepayments implements advance.AdvanceRepository.
func (r *advanceRepository) CreateRepayments(ctx context.Context, advanceID int64, installments []advance.Repayment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO advance_repayments (advance_id, amount, due_date)
		VALUES ($1, $2, $3)
	`

	for _, inst := range installments {
		if _, err := q.Exec(ctx, query, advanceID, inst.Amount, inst.DueDate); err != nil {
			return fmt.Errorf("failed to create repayment installment: %w", err)
		}
	}

	return nil
}

// GetRepaymentByID implements advance.AdvanceRepository.
func (r *advanceRepository) GetRepaymentByID(ctx context.Context, id int64) (advance.Repayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ar.id, ar.advance_id, ar.amount, ar.due_date, ar.is_paid, ar.paid_date,
		       ar.created_at, a.staff_id, s.name
		FROM advance_repayments ar
		JOIN advances a ON a.id = ar.advance_id
		JOIN staff s ON s.id = a.staff_id
		WHERE ar.id = $1
	`

	var rep advance.Repayment
	err := q.QueryRow(ctx, query, id).Scan(
		&rep.ID, &rep.AdvanceID, &rep.Amount, &rep.DueDate, &rep.IsPaid, &rep.PaidDate,
		&rep.CreatedAt, &rep.StaffID, &rep.StaffName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.Repayment{}, advance.ErrRepaymentNotFound
		}
		return advance.Repayment{}, fmt.Errorf("failed to get repayment: %w", err)
	}

	return rep, nil
}

// MarkRepaymentPaid implements advance.AdvanceRepository.
func (r *advanceRepository) MarkRepaymentPaid(ctx context.Context, id int64, paidDate time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE advance_repayments
		SET is_paid = TRUE, paid_date = $2
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, paidDate)
	if err != nil {
		return fmt.Errorf("failed to mark repayment paid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return advance.ErrRepaymentNotFound
	}

	return nil
}

// RepaymentHistory implements advance.AdvanceRepository.
func (r *advanceRepository) RepaymentHistory(ctx context.Context, advanceID int64) ([]advance.Repayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ar.id, ar.advance_id, ar.amount, ar.due_date, ar.is_paid, ar.paid_date,
		       ar.created_at, a.staff_id, s.name
		FROM advance_repayments ar
		JOIN advances a ON a.id = ar.advance_id
		JOIN staff s ON s.id = a.staff_id
		WHERE ar.advance_id = $1
		ORDER BY ar.due_date
	`

	rows, err := q.Query(ctx, query, advanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list repayment history: %w", err)
	}
	defer rows.Close()

	return scanRepayments(rows)
}

// ListPendingRepayments implements advance.AdvanceRepository.
func (r *advanceRepository) ListPendingRepayments(ctx context.Context, staffID *int64, first, last *time.Time) ([]advance.Repayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ar.id, ar.advance_id, ar.amount, ar.due_date, ar.is_paid, ar.paid_date,
		       ar.created_at, a.staff_id, s.name
		FROM advance_repayments ar
		JOIN advances a ON a.id = ar.advance_id
		JOIN staff s ON s.id = a.staff_id
		WHERE ar.is_paid = FALSE
		  AND ($1::bigint IS NULL OR a.staff_id = $1)
		  AND ($2::date IS NULL OR ar.due_date >= $2)
		  AND ($3::date IS NULL OR ar.due_date <= $3)
		ORDER BY ar.due_date
	`

	rows, err := q.Query(ctx, query, staffID, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending repayments: %w", err)
	}
	defer rows.Close()

	return scanRepayments(rows)
}

// SumUnpaidDueByRange implements advance.AdvanceRepository.
func (r *advanceRepository) SumUnpaidDueByRange(ctx context.Context, staffID int64, first, last time.Time) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(ar.amount), 0)
		FROM advance_repayments ar
		JOIN advances a ON a.id = ar.advance_id
		WHERE a.staff_id = $1
		  AND ar.is_paid = FALSE
		  AND ar.due_date BETWEEN $2 AND $3
	`

	var sum decimal.Decimal
	if err := q.QueryRow(ctx, query, staffID, first, last).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum unpaid repayments: %w", err)
	}

	return sum, nil
}

// OutstandingByStaff implements advance.AdvanceRepository.
func (r *advanceRepository) OutstandingByStaff(ctx context.Context) ([]advance.Outstanding, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.name,
		       COALESCE(SUM(a.amount), 0) AS total_issued,
		       COALESCE((
		           SELECT SUM(ar.amount)
		           FROM advance_repayments ar
		           JOIN advances a2 ON a2.id = ar.advance_id
		           WHERE a2.staff_id = s.id
		             AND ar.is_paid = TRUE
		       ), 0) AS total_repaid
		FROM staff s
		JOIN advances a ON a.staff_id = s.id
		WHERE s.hidden = FALSE
		GROUP BY s.id, s.name
		HAVING COALESCE(SUM(a.amount), 0) - COALESCE((
		           SELECT SUM(ar.amount)
		           FROM advance_repayments ar
		           JOIN advances a2 ON a2.id = ar.advance_id
		           WHERE a2.staff_id = s.id
		             AND ar.is_paid = TRUE
		       ), 0) > 0
		ORDER BY s.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list outstanding balances: %w", err)
	}
	defer rows.Close()

	var result []advance.Outstanding
	for rows.Next() {
		var o advance.Outstanding
		if err := rows.Scan(&o.StaffID, &o.StaffName, &o.TotalIssued, &o.TotalRepaid); err != nil {
			return nil, fmt.Errorf("failed to scan outstanding balance: %w", err)
		}
		o.Outstanding = o.TotalIssued.Sub(o.TotalRepaid)
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate outstanding balances: %w", err)
	}

	return result, nil
}

// ListPendingAdvances implements advance.AdvanceRepository.
func (r *advanceRepository) ListPendingAdvances(ctx context.Context, staffID *int64) ([]advance.PendingAdvance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.staff_id, s.name, a.amount, a.date,
		       COALESCE(SUM(ar.amount) FILTER (WHERE ar.is_paid = FALSE), 0) AS pending_amount,
		       COUNT(*) FILTER (WHERE ar.is_paid = FALSE) AS pending_installments
		FROM advances a
		JOIN staff s ON s.id = a.staff_id
		JOIN advance_repayments ar ON ar.advance_id = a.id
		WHERE s.hidden = FALSE
		  AND ($1::bigint IS NULL OR a.staff_id = $1)
		GROUP BY a.id, a.staff_id, s.name, a.amount, a.date
		HAVING COALESCE(SUM(ar.amount) FILTER (WHERE ar.is_paid = FALSE), 0) > 0
		ORDER BY a.date
	`

	rows, err := q.Query(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending advances: %w", err)
	}
	defer rows.Close()

	var result []advance.PendingAdvance
	for rows.Next() {
		var p advance.PendingAdvance
		if err := rows.Scan(
			&p.AdvanceID, &p.StaffID, &p.StaffName, &p.TotalAmount, &p.AdvanceDate,
			&p.PendingAmount, &p.PendingInstallments,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pending advance: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pending advances: %w", err)
	}

	return result, nil
}

func scanAdvances(rows pgx.Rows) ([]advance.Advance, error) {
	var result []advance.Advance
	for rows.Next() {
		var a advance.Advance
		if err := rows.Scan(
			&a.ID, &a.StaffID, &a.Amount, &a.Date, &a.RepaymentType,
			&a.EMIAmount, &a.TotalEMICount, &a.RemainingAmount, &a.Status,
			&a.CreatedAt, &a.StaffName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan advance: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate advances: %w", err)
	}

	return result, nil
}

func scanRepayments(rows pgx.Rows) ([]advance.Repayment, error) {
	var result []advance.Repayment
	for rows.Next() {
		var rep advance.Repayment
		if err := rows.Scan(
			&rep.ID, &rep.AdvanceID, &rep.Amount, &rep.DueDate, &rep.IsPaid, &rep.PaidDate,
			&rep.CreatedAt, &rep.StaffID, &rep.StaffName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan repayment: %w", err)
		}
		result = append(result, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate repayments: %w", err)
	}

	return result, nil
}
