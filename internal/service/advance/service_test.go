package advance

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffbook/staffbook-backend-go/internal/domain/advance"
	"github.com/staffbook/staffbook-backend-go/internal/domain/staff"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/calendar"
)

type fakeAdvanceRepo struct {
	advance.AdvanceRepository
	advances   map[int64]advance.Advance
	repayments map[int64]advance.Repayment
	pending    []advance.Repayment
}

func (f *fakeAdvanceRepo) GetByID(ctx context.Context, id int64) (advance.Advance, error) {
	a, ok := f.advances[id]
	if !ok {
		return advance.Advance{}, advance.ErrAdvanceNotFound
	}
	return a, nil
}

func (f *fakeAdvanceRepo) ApplyPayment(ctx context.Context, id int64, paid decimal.Decimal) error {
	a, ok := f.advances[id]
	if !ok {
		return advance.ErrAdvanceNotFound
	}
	a.RemainingAmount = a.RemainingAmount.Sub(paid)
	// Completed is terminal; it never reverts to Active.
	if a.RemainingAmount.LessThanOrEqual(decimal.Zero) {
		a.Status = advance.StatusCompleted
	}
	f.advances[id] = a
	return nil
}

func (f *fakeAdvanceRepo) GetRepaymentByID(ctx context.Context, id int64) (advance.Repayment, error) {
	rep, ok := f.repayments[id]
	if !ok {
		return advance.Repayment{}, advance.ErrRepaymentNotFound
	}
	return rep, nil
}

func (f *fakeAdvanceRepo) MarkRepaymentPaid(ctx context.Context, id int64, paidDate time.Time) error {
	rep, ok := f.repayments[id]
	if !ok {
		return advance.ErrRepaymentNotFound
	}
	rep.IsPaid = true
	rep.PaidDate = &paidDate
	f.repayments[id] = rep
	return nil
}

func (f *fakeAdvanceRepo) ListPendingRepayments(ctx context.Context, staffID *int64, first, last *time.Time) ([]advance.Repayment, error) {
	var out []advance.Repayment
	for _, rep := range f.pending {
		if last != nil && rep.DueDate.After(*last) {
			continue
		}
		out = append(out, rep)
	}
	return out, nil
}

type fakeStaffRepo struct {
	staff.StaffRepository
	members map[int64]staff.Staff
}

func (f *fakeStaffRepo) GetByID(ctx context.Context, id int64) (staff.Staff, error) {
	m, ok := f.members[id]
	if !ok {
		return staff.Staff{}, staff.ErrStaffNotFound
	}
	return m, nil
}

type fakeNotifier struct {
	sent map[string]string
}

func (f *fakeNotifier) Send(ctx context.Context, toNumber string, message string) error {
	if f.sent == nil {
		f.sent = make(map[string]string)
	}
	f.sent[toNumber] = message
	return nil
}

func activeAdvance(id int64, amount, remaining int64) advance.Advance {
	return advance.Advance{
		ID:              id,
		StaffID:         1,
		Amount:          decimal.NewFromInt(amount),
		Date:            time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		RepaymentType:   advance.RepaymentMonthly,
		RemainingAmount: decimal.NewFromInt(remaining),
		Status:          advance.StatusActive,
	}
}

func newTestService(repo *fakeAdvanceRepo) advance.AdvanceService {
	return NewAdvanceService(nil, repo, nil, nil)
}

func TestRecordPayment(t *testing.T) {
	repo := &fakeAdvanceRepo{advances: map[int64]advance.Advance{
		1: activeAdvance(1, 6000, 6000),
	}}
	svc := newTestService(repo)

	resp, err := svc.RecordPayment(context.Background(), advance.RecordPaymentRequest{
		AdvanceID: 1,
		Amount:    decimal.NewFromInt(2000),
	})
	require.NoError(t, err)

	assert.Equal(t, "4000", resp.RemainingAmount.String())
	assert.Equal(t, string(advance.StatusActive), resp.Status)
}

func TestRecordPayment_CompletesAtZero(t *testing.T) {
	repo := &fakeAdvanceRepo{advances: map[int64]advance.Advance{
		1: activeAdvance(1, 6000, 2000),
	}}
	svc := newTestService(repo)

	resp, err := svc.RecordPayment(context.Background(), advance.RecordPaymentRequest{
		AdvanceID: 1,
		Amount:    decimal.NewFromInt(2000),
	})
	require.NoError(t, err)

	assert.True(t, resp.RemainingAmount.IsZero())
	assert.Equal(t, string(advance.StatusCompleted), resp.Status)
}

func TestRecordPayment_Negative(t *testing.T) {
	repo := &fakeAdvanceRepo{advances: map[int64]advance.Advance{
		1: activeAdvance(1, 6000, 6000),
	}}
	svc := newTestService(repo)

	_, err := svc.RecordPayment(context.Background(), advance.RecordPaymentRequest{
		AdvanceID: 1,
		Amount:    decimal.NewFromInt(-100),
	})
	assert.ErrorIs(t, err, advance.ErrNegativePayment)
}

func TestRecordPayment_ExceedsRemaining(t *testing.T) {
	repo := &fakeAdvanceRepo{advances: map[int64]advance.Advance{
		1: activeAdvance(1, 6000, 1500),
	}}
	svc := newTestService(repo)

	_, err := svc.RecordPayment(context.Background(), advance.RecordPaymentRequest{
		AdvanceID: 1,
		Amount:    decimal.NewFromInt(2000),
	})
	assert.ErrorIs(t, err, advance.ErrOverPayment)
}

func TestRecordPayment_UnknownAdvance(t *testing.T) {
	repo := &fakeAdvanceRepo{advances: map[int64]advance.Advance{}}
	svc := newTestService(repo)

	_, err := svc.RecordPayment(context.Background(), advance.RecordPaymentRequest{
		AdvanceID: 99,
		Amount:    decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, advance.ErrAdvanceNotFound)
}

func TestMarkInstallmentPaid(t *testing.T) {
	repo := &fakeAdvanceRepo{repayments: map[int64]advance.Repayment{
		7: {
			ID:        7,
			AdvanceID: 1,
			Amount:    decimal.NewFromInt(2000),
			DueDate:   time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		},
	}}
	svc := newTestService(repo)

	paidDate := "2024-04-03"
	resp, err := svc.MarkInstallmentPaid(context.Background(), advance.MarkRepaymentPaidRequest{
		RepaymentID: 7,
		PaidDate:    &paidDate,
	})
	require.NoError(t, err)

	assert.True(t, resp.IsPaid)
	require.NotNil(t, resp.PaidDate)
	assert.Equal(t, "2024-04-03", *resp.PaidDate)
}

func TestMarkInstallmentPaid_DefaultsToToday(t *testing.T) {
	repo := &fakeAdvanceRepo{repayments: map[int64]advance.Repayment{
		7: {ID: 7, AdvanceID: 1, Amount: decimal.NewFromInt(2000), DueDate: time.Now()},
	}}
	svc := newTestService(repo)

	resp, err := svc.MarkInstallmentPaid(context.Background(), advance.MarkRepaymentPaidRequest{RepaymentID: 7})
	require.NoError(t, err)

	require.NotNil(t, resp.PaidDate)
	today := calendar.Normalize(time.Now().UTC()).Format(calendar.DateFormat)
	assert.Equal(t, today, *resp.PaidDate)
}

func TestMarkInstallmentPaid_BadDate(t *testing.T) {
	svc := newTestService(&fakeAdvanceRepo{})

	bad := "03-04-2024"
	_, err := svc.MarkInstallmentPaid(context.Background(), advance.MarkRepaymentPaidRequest{
		RepaymentID: 7,
		PaidDate:    &bad,
	})
	assert.Error(t, err)
}

func TestNotifyDueRepayments(t *testing.T) {
	staffID1, staffID2 := int64(1), int64(2)
	phone := "9876543210"
	due := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)

	repo := &fakeAdvanceRepo{pending: []advance.Repayment{
		{ID: 7, AdvanceID: 1, Amount: decimal.NewFromInt(2000), DueDate: due, StaffID: &staffID1},
		{ID: 8, AdvanceID: 2, Amount: decimal.NewFromInt(1500), DueDate: due, StaffID: &staffID2},
		{ID: 9, AdvanceID: 1, Amount: decimal.NewFromInt(2000), DueDate: due.AddDate(0, 1, 0), StaffID: &staffID1},
	}}
	staffRepo := &fakeStaffRepo{members: map[int64]staff.Staff{
		1: {ID: 1, Name: "Ravi", Phone: &phone},
		2: {ID: 2, Name: "Sita"}, // no phone on file
	}}
	notifier := &fakeNotifier{}
	svc := NewAdvanceService(nil, repo, staffRepo, notifier)

	sent, err := svc.NotifyDueRepayments(context.Background(), due)
	require.NoError(t, err)

	// Sita has no phone and installment 9 is not due yet.
	assert.Equal(t, 1, sent)
	require.Contains(t, notifier.sent, phone)
	msg := notifier.sent[phone]
	assert.Contains(t, msg, "Ravi")
	assert.Contains(t, msg, "2000.00")
	assert.Contains(t, msg, "2024-04-01")
}

func TestNotifyDueRepayments_NonePending(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewAdvanceService(nil, &fakeAdvanceRepo{}, &fakeStaffRepo{}, notifier)

	sent, err := svc.NotifyDueRepayments(context.Background(), time.Now().UTC())
	require.NoError(t, err)

	assert.Equal(t, 0, sent)
	assert.Empty(t, notifier.sent)
}
