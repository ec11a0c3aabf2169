package attendance

import (
	"context"
	"log/slog"
	"time"

	"github.com/staffbook/staffbook-backend-go/internal/domain/attendance"
	"github.com/staffbook/staffbook-backend-go/internal/domain/holiday"
	"github.com/staffbook/staffbook-backend-go/internal/domain/staff"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/calendar"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	staffRepo      staff.StaffRepository
	holidayRepo    holiday.HolidayRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	staffRepo staff.StaffRepository,
	holidayRepo holiday.HolidayRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		staffRepo:      staffRepo,
		holidayRepo:    holidayRepo,
	}
}

func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		return err
	}

	date, _ := time.Parse(calendar.DateFormat, req.Date)

	return s.attendanceRepo.Upsert(ctx, attendance.Record{
		StaffID:   req.StaffID,
		Date:      calendar.Normalize(date),
		IsPresent: req.IsPresent,
		IsHoliday: req.IsHoliday,
	})
}

func (s *AttendanceServiceImpl) GetDailyAttendance(ctx context.Context, date time.Time) (attendance.DailyAttendanceResponse, error) {
	date = calendar.Normalize(date)

	members, err := s.staffRepo.ListActive(ctx)
	if err != nil {
		return attendance.DailyAttendanceResponse{}, err
	}

	isHoliday, err := s.holidayRepo.Exists(ctx, date)
	if err != nil {
		return attendance.DailyAttendanceResponse{}, err
	}

	records, err := s.attendanceRepo.ListByDate(ctx, date)
	if err != nil {
		return attendance.DailyAttendanceResponse{}, err
	}

	byStaff := make(map[int64]attendance.Record, len(records))
	for _, rec := range records {
		byStaff[rec.StaffID] = rec
	}

	resp := attendance.DailyAttendanceResponse{
		Date:      date.Format(calendar.DateFormat),
		IsHoliday: isHoliday,
		Entries:   make([]attendance.DailyEntryResponse, 0, len(members)),
	}
	for _, m := range members {
		entry := attendance.DailyEntryResponse{
			StaffID:   m.ID,
			StaffName: m.Name,
		}
		switch {
		case isHoliday:
			// A registered holiday credits everyone regardless of marks.
			entry.IsPresent = true
			entry.IsHoliday = true
		default:
			if rec, ok := byStaff[m.ID]; ok {
				entry.IsPresent = rec.IsPresent
				entry.IsHoliday = rec.IsHoliday
			}
		}
		resp.Entries = append(resp.Entries, entry)
	}

	return resp, nil
}

func (s *AttendanceServiceImpl) GetMonthlyAttendance(ctx context.Context, staffID int64, year, month int) (attendance.MonthlyAttendanceResponse, error) {
	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		return attendance.MonthlyAttendanceResponse{}, err
	}

	first, last := calendar.MonthRange(year, time.Month(month))

	records, err := s.attendanceRepo.ListByStaffAndRange(ctx, staffID, first, last)
	if err != nil {
		return attendance.MonthlyAttendanceResponse{}, err
	}

	holidays, err := s.holidayRepo.ListByRange(ctx, first, last)
	if err != nil {
		return attendance.MonthlyAttendanceResponse{}, err
	}

	days := ResolveMonth(first, last, records, holidays)

	resp := attendance.MonthlyAttendanceResponse{
		StaffID: staffID,
		Year:    year,
		Month:   month,
		Days:    make([]attendance.DayStatusResponse, 0, len(days)),
	}
	for _, d := range days {
		resp.Days = append(resp.Days, attendance.DayStatusResponse{
			Date:      d.Date.Format(calendar.DateFormat),
			IsPresent: d.IsPresent,
			IsHoliday: d.IsHoliday,
		})
	}

	return resp, nil
}

// GetMonthlyAttendanceAll builds the full month sheet for every active
// staff member from a single range query, grouping stored records by
// staff before the per-member overlay.
func (s *AttendanceServiceImpl) GetMonthlyAttendanceAll(ctx context.Context, year, month int) (attendance.MonthlyAttendanceAllResponse, error) {
	first, last := calendar.MonthRange(year, time.Month(month))

	members, err := s.staffRepo.ListActive(ctx)
	if err != nil {
		return attendance.MonthlyAttendanceAllResponse{}, err
	}

	records, err := s.attendanceRepo.ListByRange(ctx, first, last)
	if err != nil {
		return attendance.MonthlyAttendanceAllResponse{}, err
	}
	byStaff := make(map[int64][]attendance.Record, len(members))
	for _, rec := range records {
		byStaff[rec.StaffID] = append(byStaff[rec.StaffID], rec)
	}

	holidays, err := s.holidayRepo.ListByRange(ctx, first, last)
	if err != nil {
		return attendance.MonthlyAttendanceAllResponse{}, err
	}

	resp := attendance.MonthlyAttendanceAllResponse{
		Year:  year,
		Month: month,
		Staff: make([]attendance.StaffMonthResponse, 0, len(members)),
	}
	for _, m := range members {
		days := ResolveMonth(first, last, byStaff[m.ID], holidays)

		sheet := attendance.StaffMonthResponse{
			StaffID:   m.ID,
			StaffName: m.Name,
			Days:      make([]attendance.DayStatusResponse, 0, len(days)),
		}
		for _, d := range days {
			sheet.Days = append(sheet.Days, attendance.DayStatusResponse{
				Date:      d.Date.Format(calendar.DateFormat),
				IsPresent: d.IsPresent,
				IsHoliday: d.IsHoliday,
			})
		}
		resp.Staff = append(resp.Staff, sheet)
	}

	return resp, nil
}

// ResolveMonth overlays stored records and registered holidays onto the
// full [first, last] date range. Days with no stored record resolve to
// absent; the holiday flag comes from the holiday register, not from
// the stored record.
func ResolveMonth(first, last time.Time, records []attendance.Record, holidays []holiday.Holiday) []attendance.DayStatus {
	presentByDate := make(map[string]bool, len(records))
	for _, rec := range records {
		presentByDate[rec.Date.Format(calendar.DateFormat)] = rec.IsPresent
	}

	holidayDates := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		holidayDates[h.Date.Format(calendar.DateFormat)] = true
	}

	dates := calendar.DatesBetween(first, last)
	days := make([]attendance.DayStatus, 0, len(dates))
	for _, d := range dates {
		key := d.Format(calendar.DateFormat)
		days = append(days, attendance.DayStatus{
			Date:      d,
			IsPresent: presentByDate[key],
			IsHoliday: holidayDates[key],
		})
	}

	return days
}

func (s *AttendanceServiceImpl) AutoMarkToday(ctx context.Context) (int, error) {
	today := calendar.Normalize(time.Now().UTC())

	count, err := s.attendanceRepo.CountByDate(ctx, today)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	members, err := s.staffRepo.ListActive(ctx)
	if err != nil {
		return 0, err
	}

	isHoliday, err := s.holidayRepo.Exists(ctx, today)
	if err != nil {
		return 0, err
	}

	marked := 0
	for _, m := range members {
		err := s.attendanceRepo.Upsert(ctx, attendance.Record{
			StaffID:   m.ID,
			Date:      today,
			IsPresent: true,
			IsHoliday: isHoliday,
		})
		if err != nil {
			slog.ErrorContext(ctx, "auto mark failed", "staff_id", m.ID, "error", err)
			continue
		}
		marked++
	}

	return marked, nil
}
