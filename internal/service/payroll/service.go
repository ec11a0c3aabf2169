package payroll

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffbook/staffbook-backend-go/internal/domain/advance"
	"github.com/staffbook/staffbook-backend-go/internal/domain/attendance"
	"github.com/staffbook/staffbook-backend-go/internal/domain/holiday"
	"github.com/staffbook/staffbook-backend-go/internal/domain/payroll"
	"github.com/staffbook/staffbook-backend-go/internal/domain/setting"
	"github.com/staffbook/staffbook-backend-go/internal/domain/staff"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/calendar"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/messaging"
	attendanceservice "github.com/staffbook/staffbook-backend-go/internal/service/attendance"
)

type PayrollServiceImpl struct {
	staffRepo      staff.StaffRepository
	attendanceRepo attendance.AttendanceRepository
	holidayRepo    holiday.HolidayRepository
	advanceRepo    advance.AdvanceRepository
	settingService setting.SettingService
	notifier       messaging.Notifier
}

func NewPayrollService(
	staffRepo staff.StaffRepository,
	attendanceRepo attendance.AttendanceRepository,
	holidayRepo holiday.HolidayRepository,
	advanceRepo advance.AdvanceRepository,
	settingService setting.SettingService,
	notifier messaging.Notifier,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		staffRepo:      staffRepo,
		attendanceRepo: attendanceRepo,
		holidayRepo:    holidayRepo,
		advanceRepo:    advanceRepo,
		settingService: settingService,
		notifier:       notifier,
	}
}

// resolveConfig loads the payroll configuration once per request. The
// computation below only sees the resolved record, never the settings
// store.
func (s *PayrollServiceImpl) resolveConfig(ctx context.Context) (payroll.Config, error) {
	workingDays, err := s.settingService.WorkingDays(ctx)
	if err != nil {
		return payroll.Config{}, err
	}
	cycleStart, cycleEnd, err := s.settingService.SalaryCycle(ctx)
	if err != nil {
		return payroll.Config{}, err
	}

	return payroll.Config{
		WorkingDays:      workingDays,
		SalaryCycleStart: cycleStart,
		SalaryCycleEnd:   cycleEnd,
	}, nil
}

func (s *PayrollServiceImpl) GetMonthlyReport(ctx context.Context, req payroll.ReportRequest) (payroll.MonthlyReportResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.MonthlyReportResponse{}, err
	}

	cfg, err := s.resolveConfig(ctx)
	if err != nil {
		return payroll.MonthlyReportResponse{}, err
	}

	rows, workingDays, err := s.computeReport(ctx, req.Year, time.Month(req.Month), cfg)
	if err != nil {
		return payroll.MonthlyReportResponse{}, err
	}

	resp := payroll.MonthlyReportResponse{
		Year:        req.Year,
		Month:       req.Month,
		WorkingDays: workingDays,
		Rows:        make([]payroll.ReportRowResponse, 0, len(rows)),
	}
	for _, row := range rows {
		resp.Rows = append(resp.Rows, toReportRowResponse(row))
	}

	return resp, nil
}

// computeReport evaluates one payroll period. The period is the slice
// of the calendar month bounded by the configured salary cycle; the
// default 1/31 cycle covers the whole month, making workingDays equal
// to daysInMonth minus holidays.
func (s *PayrollServiceImpl) computeReport(ctx context.Context, year int, month time.Month, cfg payroll.Config) ([]payroll.ReportRow, int, error) {
	first, last := calendar.CycleWindow(year, month, cfg.SalaryCycleStart, cfg.SalaryCycleEnd)

	holidays, err := s.holidayRepo.ListByRange(ctx, first, last)
	if err != nil {
		return nil, 0, err
	}
	workingDays := len(calendar.DatesBetween(first, last)) - len(holidays)

	members, err := s.staffRepo.ListActive(ctx)
	if err != nil {
		return nil, 0, err
	}

	rows := make([]payroll.ReportRow, 0, len(members))
	for _, m := range members {
		records, err := s.attendanceRepo.ListByStaffAndRange(ctx, m.ID, first, last)
		if err != nil {
			return nil, 0, err
		}

		days := attendanceservice.ResolveMonth(first, last, records, holidays)
		daysPresent := CountPresent(days)

		deduction, err := s.advanceRepo.SumUnpaidDueByRange(ctx, m.ID, first, last)
		if err != nil {
			return nil, 0, err
		}

		rows = append(rows, ComputeRow(m.ID, m.Name, m.MonthlySalary, daysPresent, workingDays, deduction))
	}

	return rows, workingDays, nil
}

func (s *PayrollServiceImpl) GetDashboardStats(ctx context.Context, year, month int) (payroll.DashboardStatsResponse, error) {
	if year < 1 || month < 1 || month > 12 {
		return payroll.DashboardStatsResponse{}, payroll.ErrInvalidPeriod
	}

	cfg, err := s.resolveConfig(ctx)
	if err != nil {
		return payroll.DashboardStatsResponse{}, err
	}

	first, last := calendar.MonthRange(year, time.Month(month))

	members, err := s.staffRepo.ListActive(ctx)
	if err != nil {
		return payroll.DashboardStatsResponse{}, err
	}

	total, present, err := s.attendanceRepo.MonthTotals(ctx, first, last)
	if err != nil {
		return payroll.DashboardStatsResponse{}, err
	}

	avgAttendance := decimal.Zero
	if total > 0 {
		avgAttendance = decimal.NewFromInt(present).
			Div(decimal.NewFromInt(total)).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	rows, _, err := s.computeReport(ctx, year, time.Month(month), cfg)
	if err != nil {
		return payroll.DashboardStatsResponse{}, err
	}
	totalPayroll := decimal.Zero
	for _, row := range rows {
		totalPayroll = totalPayroll.Add(row.FinalSalary)
	}

	totalAdvances, err := s.advanceRepo.SumIssuedByRange(ctx, first, last)
	if err != nil {
		return payroll.DashboardStatsResponse{}, err
	}

	pendingAdvances, err := s.advanceRepo.SumRemainingActive(ctx)
	if err != nil {
		return payroll.DashboardStatsResponse{}, err
	}

	return payroll.DashboardStatsResponse{
		TotalStaff:      len(members),
		AvgAttendance:   avgAttendance,
		TotalPayroll:    totalPayroll,
		TotalAdvances:   totalAdvances,
		PendingAdvances: pendingAdvances,
	}, nil
}

// SendMonthlySummaries is best effort per member: one failed delivery
// is logged and skipped, the rest still go out.
func (s *PayrollServiceImpl) SendMonthlySummaries(ctx context.Context, req payroll.ReportRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	cfg, err := s.resolveConfig(ctx)
	if err != nil {
		return 0, err
	}

	rows, _, err := s.computeReport(ctx, req.Year, time.Month(req.Month), cfg)
	if err != nil {
		return 0, err
	}

	members, err := s.staffRepo.ListActive(ctx)
	if err != nil {
		return 0, err
	}
	phoneByID := make(map[int64]*string, len(members))
	for _, m := range members {
		phoneByID[m.ID] = m.Phone
	}

	sent := 0
	for _, row := range rows {
		phone := phoneByID[row.StaffID]
		if phone == nil {
			continue
		}

		msg := messaging.RenderAttendanceSummary(
			row.StaffName, req.Year, req.Month,
			row.DaysPresent, row.CalculatedSalary, row.AdvanceDeduction, row.FinalSalary,
		)
		if err := s.notifier.Send(ctx, *phone, msg); err != nil {
			slog.ErrorContext(ctx, "monthly summary delivery failed", "staff_id", row.StaffID, "error", err)
			continue
		}
		sent++
	}

	return sent, nil
}

func toReportRowResponse(row payroll.ReportRow) payroll.ReportRowResponse {
	return payroll.ReportRowResponse{
		StaffID:          row.StaffID,
		StaffName:        row.StaffName,
		MonthlySalary:    row.MonthlySalary,
		DaysPresent:      row.DaysPresent,
		WorkingDays:      row.WorkingDays,
		AttendanceRatio:  row.AttendanceRatio,
		CalculatedSalary: row.CalculatedSalary,
		AdvanceDeduction: row.AdvanceDeduction,
		FinalSalary:      row.FinalSalary,
	}
}
