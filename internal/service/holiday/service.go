package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/staffbook/staffbook-backend-go/internal/domain/attendance"
	"github.com/staffbook/staffbook-backend-go/internal/domain/holiday"
	"github.com/staffbook/staffbook-backend-go/internal/domain/staff"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/calendar"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/database"
	"github.com/staffbook/staffbook-backend-go/internal/repository/postgresql"
)

type HolidayServiceImpl struct {
	db             *database.DB
	holidayRepo    holiday.HolidayRepository
	staffRepo      staff.StaffRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewHolidayService(
	db *database.DB,
	holidayRepo holiday.HolidayRepository,
	staffRepo staff.StaffRepository,
	attendanceRepo attendance.AttendanceRepository,
) holiday.HolidayService {
	return &HolidayServiceImpl{
		db:             db,
		holidayRepo:    holidayRepo,
		staffRepo:      staffRepo,
		attendanceRepo: attendanceRepo,
	}
}

func (s *HolidayServiceImpl) AddHoliday(ctx context.Context, req holiday.AddHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := time.Parse(calendar.DateFormat, req.Date)
	date = calendar.Normalize(date)

	var created holiday.Holiday
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		h, err := s.holidayRepo.Upsert(txCtx, holiday.Holiday{Date: date, Name: req.Name})
		if err != nil {
			return fmt.Errorf("failed to upsert holiday: %w", err)
		}
		created = h

		// Credit every active staff member for the day.
		members, err := s.staffRepo.ListActive(txCtx)
		if err != nil {
			return fmt.Errorf("failed to list staff: %w", err)
		}
		for _, m := range members {
			rec := attendance.Record{
				StaffID:   m.ID,
				Date:      date,
				IsPresent: true,
				IsHoliday: true,
			}
			if err := s.attendanceRepo.Upsert(txCtx, rec); err != nil {
				return fmt.Errorf("failed to mark holiday attendance: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	return toHolidayResponse(created), nil
}

// RemoveHoliday deletes the register entry only. Attendance rows stamped
// when the holiday was added stay as written.
func (s *HolidayServiceImpl) RemoveHoliday(ctx context.Context, date time.Time) error {
	return s.holidayRepo.DeleteByDate(ctx, calendar.Normalize(date))
}

func (s *HolidayServiceImpl) ListHolidays(ctx context.Context, first, last time.Time) ([]holiday.HolidayResponse, error) {
	holidays, err := s.holidayRepo.ListByRange(ctx, first, last)
	if err != nil {
		return nil, err
	}

	result := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		result = append(result, toHolidayResponse(h))
	}

	return result, nil
}

func (s *HolidayServiceImpl) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	return s.holidayRepo.Exists(ctx, calendar.Normalize(date))
}

func toHolidayResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:   h.ID,
		Date: h.Date.Format(calendar.DateFormat),
		Name: h.Name,
	}
}
