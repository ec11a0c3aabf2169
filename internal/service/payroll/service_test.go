package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffbook/staffbook-backend-go/internal/domain/advance"
	"github.com/staffbook/staffbook-backend-go/internal/domain/attendance"
	"github.com/staffbook/staffbook-backend-go/internal/domain/holiday"
	"github.com/staffbook/staffbook-backend-go/internal/domain/payroll"
	"github.com/staffbook/staffbook-backend-go/internal/domain/setting"
	"github.com/staffbook/staffbook-backend-go/internal/domain/staff"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/calendar"
)

// In-memory repositories backing the report computation. Only the
// methods the payroll service touches do real work.

type fakeStaffRepo struct {
	staff.StaffRepository
	active []staff.Staff
}

func (f *fakeStaffRepo) ListActive(ctx context.Context) ([]staff.Staff, error) {
	return f.active, nil
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	records map[int64][]attendance.Record
	total   int64
	present int64
}

func (f *fakeAttendanceRepo) ListByStaffAndRange(ctx context.Context, staffID int64, first, last time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records[staffID] {
		if !rec.Date.Before(first) && !rec.Date.After(last) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) MonthTotals(ctx context.Context, first, last time.Time) (int64, int64, error) {
	return f.total, f.present, nil
}

type fakeHolidayRepo struct {
	holiday.HolidayRepository
	holidays []holiday.Holiday
}

func (f *fakeHolidayRepo) ListByRange(ctx context.Context, first, last time.Time) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.holidays {
		if !h.Date.Before(first) && !h.Date.After(last) {
			out = append(out, h)
		}
	}
	return out, nil
}

type fakeAdvanceRepo struct {
	advance.AdvanceRepository
	unpaidDue map[int64]decimal.Decimal
	issued    decimal.Decimal
	remaining decimal.Decimal
}

func (f *fakeAdvanceRepo) SumUnpaidDueByRange(ctx context.Context, staffID int64, first, last time.Time) (decimal.Decimal, error) {
	if due, ok := f.unpaidDue[staffID]; ok {
		return due, nil
	}
	return decimal.Zero, nil
}

func (f *fakeAdvanceRepo) SumIssuedByRange(ctx context.Context, first, last time.Time) (decimal.Decimal, error) {
	return f.issued, nil
}

func (f *fakeAdvanceRepo) SumRemainingActive(ctx context.Context) (decimal.Decimal, error) {
	return f.remaining, nil
}

type fakeSettingService struct {
	setting.SettingService
	workingDays int
	cycleStart  int
	cycleEnd    int
}

func (f *fakeSettingService) WorkingDays(ctx context.Context) (int, error) {
	return f.workingDays, nil
}

func (f *fakeSettingService) SalaryCycle(ctx context.Context) (int, int, error) {
	return f.cycleStart, f.cycleEnd, nil
}

type fakeNotifier struct {
	sent map[string]string
	err  error
}

func (f *fakeNotifier) Send(ctx context.Context, toNumber string, message string) error {
	if f.err != nil {
		return f.err
	}
	if f.sent == nil {
		f.sent = make(map[string]string)
	}
	f.sent[toNumber] = message
	return nil
}

func member(id int64, name string, salary int64) staff.Staff {
	return staff.Staff{ID: id, Name: name, MonthlySalary: decimal.NewFromInt(salary)}
}

func day(value string) time.Time {
	d, err := time.Parse(calendar.DateFormat, value)
	if err != nil {
		panic(err)
	}
	return d
}

func presentRange(staffID int64, from, to string) []attendance.Record {
	var recs []attendance.Record
	for _, d := range calendar.DatesBetween(day(from), day(to)) {
		recs = append(recs, attendance.Record{StaffID: staffID, Date: d, IsPresent: true})
	}
	return recs
}

func newTestService(staffRepo *fakeStaffRepo, attRepo *fakeAttendanceRepo, holRepo *fakeHolidayRepo, advRepo *fakeAdvanceRepo) payroll.PayrollService {
	return newTestServiceWithNotifier(staffRepo, attRepo, holRepo, advRepo, &fakeNotifier{})
}

func newTestServiceWithNotifier(staffRepo *fakeStaffRepo, attRepo *fakeAttendanceRepo, holRepo *fakeHolidayRepo, advRepo *fakeAdvanceRepo, notifier *fakeNotifier) payroll.PayrollService {
	return NewPayrollService(staffRepo, attRepo, holRepo, advRepo, &fakeSettingService{
		workingDays: payroll.DefaultWorkingDays,
		cycleStart:  staff.DefaultCycleStart,
		cycleEnd:    staff.DefaultCycleEnd,
	}, notifier)
}

func TestGetMonthlyReport_FullMonth(t *testing.T) {
	staffRepo := &fakeStaffRepo{active: []staff.Staff{member(1, "Ravi", 31000)}}
	attRepo := &fakeAttendanceRepo{records: map[int64][]attendance.Record{
		1: presentRange(1, "2024-03-01", "2024-03-31"),
	}}
	holRepo := &fakeHolidayRepo{}
	advRepo := &fakeAdvanceRepo{}

	svc := newTestService(staffRepo, attRepo, holRepo, advRepo)

	resp, err := svc.GetMonthlyReport(context.Background(), payroll.ReportRequest{Year: 2024, Month: 3})
	require.NoError(t, err)

	assert.Equal(t, 31, resp.WorkingDays)
	require.Len(t, resp.Rows, 1)
	row := resp.Rows[0]
	assert.Equal(t, 31, row.DaysPresent)
	assert.Equal(t, "31000.00", row.CalculatedSalary.StringFixed(2))
	assert.Equal(t, "31000.00", row.FinalSalary.StringFixed(2))
}

func TestGetMonthlyReport_HolidayCreditsUnmarkedDay(t *testing.T) {
	// One registered holiday shrinks the denominator and still counts as
	// a present day even with no stored record for it.
	staffRepo := &fakeStaffRepo{active: []staff.Staff{member(1, "Ravi", 30000)}}
	attRepo := &fakeAttendanceRepo{records: map[int64][]attendance.Record{
		1: presentRange(1, "2024-03-02", "2024-03-31"),
	}}
	holRepo := &fakeHolidayRepo{holidays: []holiday.Holiday{
		{ID: 1, Date: day("2024-03-01"), Name: "Festival"},
	}}
	advRepo := &fakeAdvanceRepo{}

	svc := newTestService(staffRepo, attRepo, holRepo, advRepo)

	resp, err := svc.GetMonthlyReport(context.Background(), payroll.ReportRequest{Year: 2024, Month: 3})
	require.NoError(t, err)

	assert.Equal(t, 30, resp.WorkingDays)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, 31, resp.Rows[0].DaysPresent)
}

func TestGetMonthlyReport_AdvanceDeduction(t *testing.T) {
	staffRepo := &fakeStaffRepo{active: []staff.Staff{member(1, "Ravi", 31000)}}
	attRepo := &fakeAttendanceRepo{records: map[int64][]attendance.Record{
		1: presentRange(1, "2024-03-01", "2024-03-31"),
	}}
	holRepo := &fakeHolidayRepo{}
	advRepo := &fakeAdvanceRepo{unpaidDue: map[int64]decimal.Decimal{
		1: decimal.NewFromInt(2000),
	}}

	svc := newTestService(staffRepo, attRepo, holRepo, advRepo)

	resp, err := svc.GetMonthlyReport(context.Background(), payroll.ReportRequest{Year: 2024, Month: 3})
	require.NoError(t, err)

	require.Len(t, resp.Rows, 1)
	row := resp.Rows[0]
	assert.Equal(t, "2000.00", row.AdvanceDeduction.StringFixed(2))
	assert.Equal(t, "29000.00", row.FinalSalary.StringFixed(2))
}

func TestGetMonthlyReport_OnlyActiveStaff(t *testing.T) {
	// The staff repository already filters hidden members; the report
	// must not reach around it.
	staffRepo := &fakeStaffRepo{active: []staff.Staff{
		member(1, "Ravi", 30000),
		member(2, "Sita", 25000),
	}}
	attRepo := &fakeAttendanceRepo{records: map[int64][]attendance.Record{}}
	holRepo := &fakeHolidayRepo{}
	advRepo := &fakeAdvanceRepo{}

	svc := newTestService(staffRepo, attRepo, holRepo, advRepo)

	resp, err := svc.GetMonthlyReport(context.Background(), payroll.ReportRequest{Year: 2024, Month: 3})
	require.NoError(t, err)

	require.Len(t, resp.Rows, 2)
	for _, row := range resp.Rows {
		assert.Equal(t, 0, row.DaysPresent)
		assert.True(t, row.FinalSalary.IsZero())
	}
}

func TestGetMonthlyReport_InvalidPeriod(t *testing.T) {
	svc := newTestService(&fakeStaffRepo{}, &fakeAttendanceRepo{}, &fakeHolidayRepo{}, &fakeAdvanceRepo{})

	_, err := svc.GetMonthlyReport(context.Background(), payroll.ReportRequest{Year: 2024, Month: 13})
	assert.Error(t, err)

	_, err = svc.GetMonthlyReport(context.Background(), payroll.ReportRequest{Year: 0, Month: 3})
	assert.Error(t, err)
}

func TestGetDashboardStats(t *testing.T) {
	staffRepo := &fakeStaffRepo{active: []staff.Staff{
		member(1, "Ravi", 31000),
		member(2, "Sita", 15500),
	}}
	attRepo := &fakeAttendanceRepo{
		records: map[int64][]attendance.Record{
			1: presentRange(1, "2024-03-01", "2024-03-31"),
		},
		total:   40,
		present: 30,
	}
	holRepo := &fakeHolidayRepo{}
	advRepo := &fakeAdvanceRepo{
		issued:    decimal.NewFromInt(5000),
		remaining: decimal.NewFromInt(3000),
	}

	svc := newTestService(staffRepo, attRepo, holRepo, advRepo)

	stats, err := svc.GetDashboardStats(context.Background(), 2024, 3)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalStaff)
	assert.Equal(t, "75.00", stats.AvgAttendance.StringFixed(2))
	// Ravi earns the full 31000, Sita nothing.
	assert.Equal(t, "31000.00", stats.TotalPayroll.StringFixed(2))
	assert.Equal(t, "5000.00", stats.TotalAdvances.StringFixed(2))
	assert.Equal(t, "3000.00", stats.PendingAdvances.StringFixed(2))
}

func TestGetDashboardStats_InvalidPeriod(t *testing.T) {
	svc := newTestService(&fakeStaffRepo{}, &fakeAttendanceRepo{}, &fakeHolidayRepo{}, &fakeAdvanceRepo{})

	_, err := svc.GetDashboardStats(context.Background(), 2024, 0)
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)

	_, err = svc.GetDashboardStats(context.Background(), 0, 3)
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}

func TestSendMonthlySummaries(t *testing.T) {
	phone := "9876543210"
	ravi := member(1, "Ravi", 31000)
	ravi.Phone = &phone
	sita := member(2, "Sita", 25000) // no phone on file

	staffRepo := &fakeStaffRepo{active: []staff.Staff{ravi, sita}}
	attRepo := &fakeAttendanceRepo{records: map[int64][]attendance.Record{
		1: presentRange(1, "2024-03-01", "2024-03-31"),
	}}
	advRepo := &fakeAdvanceRepo{unpaidDue: map[int64]decimal.Decimal{
		1: decimal.NewFromInt(2000),
	}}
	notifier := &fakeNotifier{}

	svc := newTestServiceWithNotifier(staffRepo, attRepo, &fakeHolidayRepo{}, advRepo, notifier)

	sent, err := svc.SendMonthlySummaries(context.Background(), payroll.ReportRequest{Year: 2024, Month: 3})
	require.NoError(t, err)

	assert.Equal(t, 1, sent)
	require.Contains(t, notifier.sent, phone)
	msg := notifier.sent[phone]
	assert.Contains(t, msg, "Ravi")
	assert.Contains(t, msg, "29000.00")
}

func TestSendMonthlySummaries_DeliveryFailureSkipped(t *testing.T) {
	phone := "9876543210"
	ravi := member(1, "Ravi", 31000)
	ravi.Phone = &phone

	staffRepo := &fakeStaffRepo{active: []staff.Staff{ravi}}
	attRepo := &fakeAttendanceRepo{records: map[int64][]attendance.Record{}}
	notifier := &fakeNotifier{err: assert.AnError}

	svc := newTestServiceWithNotifier(staffRepo, attRepo, &fakeHolidayRepo{}, &fakeAdvanceRepo{}, notifier)

	sent, err := svc.SendMonthlySummaries(context.Background(), payroll.ReportRequest{Year: 2024, Month: 3})
	require.NoError(t, err)
	assert.Equal(t, 0, sent)
}

func TestGetDashboardStats_NoRecords(t *testing.T) {
	svc := newTestService(&fakeStaffRepo{}, &fakeAttendanceRepo{}, &fakeHolidayRepo{}, &fakeAdvanceRepo{})

	stats, err := svc.GetDashboardStats(context.Background(), 2024, 3)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalStaff)
	assert.True(t, stats.AvgAttendance.IsZero())
	assert.True(t, stats.TotalPayroll.IsZero())
}
