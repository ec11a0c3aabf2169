package advance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/staffbook/staffbook-backend-go/internal/domain/advance"
	"github.com/staffbook/staffbook-backend-go/internal/domain/staff"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/calendar"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/database"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/messaging"
	"github.com/staffbook/staffbook-backend-go/internal/repository/postgresql"
)

type AdvanceServiceImpl struct {
	db          *database.DB
	advanceRepo advance.AdvanceRepository
	staffRepo   staff.StaffRepository
	notifier    messaging.Notifier
}

func NewAdvanceService(
	db *database.DB,
	advanceRepo advance.AdvanceRepository,
	staffRepo staff.StaffRepository,
	notifier messaging.Notifier,
) advance.AdvanceService {
	return &AdvanceServiceImpl{
		db:          db,
		advanceRepo: advanceRepo,
		staffRepo:   staffRepo,
		notifier:    notifier,
	}
}

func (s *AdvanceServiceImpl) AddAdvance(ctx context.Context, req advance.AddAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	member, err := s.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	date, _ := time.Parse(calendar.DateFormat, req.Date)
	date = calendar.Normalize(date)

	repaymentType := advance.RepaymentType(req.RepaymentType)
	emiCount := 1
	if repaymentType != advance.RepaymentOneTime {
		emiCount = *req.EMICount
	}

	installments, err := advance.BuildRepaymentSchedule(req.Amount, date, repaymentType, emiCount)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	newAdvance := advance.Advance{
		StaffID:       req.StaffID,
		Amount:        req.Amount,
		Date:          date,
		RepaymentType: repaymentType,
		EMIAmount:     installments[0].Amount,
		TotalEMICount: len(installments),
	}
	if req.EMIAmount != nil {
		newAdvance.EMIAmount = *req.EMIAmount
	}

	var created advance.Advance
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		c, err := s.advanceRepo.Create(txCtx, newAdvance)
		if err != nil {
			return fmt.Errorf("failed to create advance: %w", err)
		}
		created = c

		if err := s.advanceRepo.CreateRepayments(txCtx, created.ID, installments); err != nil {
			return fmt.Errorf("failed to create repayment schedule: %w", err)
		}
		return nil
	})
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	created.StaffName = &member.Name
	s.notifyAdvance(ctx, member, created)

	return toAdvanceResponse(created), nil
}

// notifyAdvance is best effort; a delivery failure never fails the
// recorded advance.
func (s *AdvanceServiceImpl) notifyAdvance(ctx context.Context, member staff.Staff, a advance.Advance) {
	if member.Phone == nil {
		return
	}

	msg := messaging.RenderAdvanceNotification(member.Name, a.Amount, a.Date)
	if err := s.notifier.Send(ctx, *member.Phone, msg); err != nil {
		slog.ErrorContext(ctx, "advance notification failed", "staff_id", member.ID, "error", err)
	}
}

func (s *AdvanceServiceImpl) GetAdvance(ctx context.Context, id int64) (advance.AdvanceResponse, error) {
	a, err := s.advanceRepo.GetByID(ctx, id)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	return toAdvanceResponse(a), nil
}

func (s *AdvanceServiceImpl) ListAdvances(ctx context.Context) ([]advance.AdvanceResponse, error) {
	advances, err := s.advanceRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]advance.AdvanceResponse, 0, len(advances))
	for _, a := range advances {
		result = append(result, toAdvanceResponse(a))
	}

	return result, nil
}

func (s *AdvanceServiceImpl) RecordPayment(ctx context.Context, req advance.RecordPaymentRequest) (advance.AdvanceResponse, error) {
	a, err := s.advanceRepo.GetByID(ctx, req.AdvanceID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	if req.Amount.IsNegative() {
		return advance.AdvanceResponse{}, advance.ErrNegativePayment
	}
	if req.Amount.GreaterThan(a.RemainingAmount) {
		return advance.AdvanceResponse{}, advance.ErrOverPayment
	}

	if err := s.advanceRepo.ApplyPayment(ctx, req.AdvanceID, req.Amount); err != nil {
		return advance.AdvanceResponse{}, err
	}

	updated, err := s.advanceRepo.GetByID(ctx, req.AdvanceID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	return toAdvanceResponse(updated), nil
}

func (s *AdvanceServiceImpl) MarkInstallmentPaid(ctx context.Context, req advance.MarkRepaymentPaidRequest) (advance.RepaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.RepaymentResponse{}, err
	}

	if _, err := s.advanceRepo.GetRepaymentByID(ctx, req.RepaymentID); err != nil {
		return advance.RepaymentResponse{}, err
	}

	paidDate := calendar.Normalize(time.Now().UTC())
	if req.PaidDate != nil {
		d, _ := time.Parse(calendar.DateFormat, *req.PaidDate)
		paidDate = calendar.Normalize(d)
	}

	if err := s.advanceRepo.MarkRepaymentPaid(ctx, req.RepaymentID, paidDate); err != nil {
		return advance.RepaymentResponse{}, err
	}

	rep, err := s.advanceRepo.GetRepaymentByID(ctx, req.RepaymentID)
	if err != nil {
		return advance.RepaymentResponse{}, err
	}

	return toRepaymentResponse(rep), nil
}

func (s *AdvanceServiceImpl) GetRepaymentHistory(ctx context.Context, advanceID int64) ([]advance.RepaymentResponse, error) {
	if _, err := s.advanceRepo.GetByID(ctx, advanceID); err != nil {
		return nil, err
	}

	reps, err := s.advanceRepo.RepaymentHistory(ctx, advanceID)
	if err != nil {
		return nil, err
	}

	return toRepaymentResponses(reps), nil
}

func (s *AdvanceServiceImpl) ListPendingRepayments(ctx context.Context, staffID *int64, first, last *time.Time) ([]advance.RepaymentResponse, error) {
	reps, err := s.advanceRepo.ListPendingRepayments(ctx, staffID, first, last)
	if err != nil {
		return nil, err
	}

	return toRepaymentResponses(reps), nil
}

func (s *AdvanceServiceImpl) GetOutstandingBalances(ctx context.Context) ([]advance.OutstandingResponse, error) {
	balances, err := s.advanceRepo.OutstandingByStaff(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]advance.OutstandingResponse, 0, len(balances))
	for _, b := range balances {
		result = append(result, advance.OutstandingResponse{
			StaffID:     b.StaffID,
			StaffName:   b.StaffName,
			TotalIssued: b.TotalIssued,
			TotalRepaid: b.TotalRepaid,
			Outstanding: b.Outstanding,
		})
	}

	return result, nil
}

func (s *AdvanceServiceImpl) ListPendingAdvances(ctx context.Context, staffID *int64) ([]advance.PendingAdvanceResponse, error) {
	pending, err := s.advanceRepo.ListPendingAdvances(ctx, staffID)
	if err != nil {
		return nil, err
	}

	result := make([]advance.PendingAdvanceResponse, 0, len(pending))
	for _, p := range pending {
		result = append(result, advance.PendingAdvanceResponse{
			AdvanceID:           p.AdvanceID,
			StaffID:             p.StaffID,
			StaffName:           p.StaffName,
			TotalAmount:         p.TotalAmount,
			AdvanceDate:         p.AdvanceDate.Format(calendar.DateFormat),
			PendingAmount:       p.PendingAmount,
			PendingInstallments: p.PendingInstallments,
		})
	}

	return result, nil
}

// NotifyDueRepayments is best effort per installment: a failed lookup
// or delivery is logged and skipped, the rest still go out.
func (s *AdvanceServiceImpl) NotifyDueRepayments(ctx context.Context, due time.Time) (int, error) {
	last := calendar.Normalize(due)

	pending, err := s.advanceRepo.ListPendingRepayments(ctx, nil, nil, &last)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, rep := range pending {
		if rep.StaffID == nil {
			continue
		}

		member, err := s.staffRepo.GetByID(ctx, *rep.StaffID)
		if err != nil {
			slog.ErrorContext(ctx, "repayment reminder lookup failed", "staff_id", *rep.StaffID, "error", err)
			continue
		}
		if member.Phone == nil {
			continue
		}

		msg := messaging.RenderRepaymentReminder(member.Name, rep.Amount, rep.DueDate)
		if err := s.notifier.Send(ctx, *member.Phone, msg); err != nil {
			slog.ErrorContext(ctx, "repayment reminder delivery failed", "staff_id", member.ID, "error", err)
			continue
		}
		sent++
	}

	return sent, nil
}

func toAdvanceResponse(a advance.Advance) advance.AdvanceResponse {
	return advance.AdvanceResponse{
		ID:              a.ID,
		StaffID:         a.StaffID,
		StaffName:       a.StaffName,
		Amount:          a.Amount,
		Date:            a.Date.Format(calendar.DateFormat),
		RepaymentType:   string(a.RepaymentType),
		EMIAmount:       a.EMIAmount,
		TotalEMICount:   a.TotalEMICount,
		RemainingAmount: a.RemainingAmount,
		Status:          string(a.Status),
	}
}

func toRepaymentResponse(rep advance.Repayment) advance.RepaymentResponse {
	resp := advance.RepaymentResponse{
		ID:        rep.ID,
		AdvanceID: rep.AdvanceID,
		StaffID:   rep.StaffID,
		StaffName: rep.StaffName,
		Amount:    rep.Amount,
		DueDate:   rep.DueDate.Format(calendar.DateFormat),
		IsPaid:    rep.IsPaid,
	}
	if rep.PaidDate != nil {
		paid := rep.PaidDate.Format(calendar.DateFormat)
		resp.PaidDate = &paid
	}
	return resp
}

func toRepaymentResponses(reps []advance.Repayment) []advance.RepaymentResponse {
	result := make([]advance.RepaymentResponse, 0, len(reps))
	for _, rep := range reps {
		result = append(result, toRepaymentResponse(rep))
	}
	return result
}
