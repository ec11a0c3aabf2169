package holiday

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffbook/staffbook-backend-go/internal/domain/attendance"
	"github.com/staffbook/staffbook-backend-go/internal/domain/holiday"
	"github.com/staffbook/staffbook-backend-go/internal/domain/staff"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/calendar"
)

type fakeHolidayRepo struct {
	holiday.HolidayRepository
	byDate map[string]holiday.Holiday
	nextID int64
}

func newFakeHolidayRepo() *fakeHolidayRepo {
	return &fakeHolidayRepo{byDate: make(map[string]holiday.Holiday)}
}

func (f *fakeHolidayRepo) Upsert(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	key := h.Date.Format(calendar.DateFormat)
	if existing, ok := f.byDate[key]; ok {
		existing.Name = h.Name
		f.byDate[key] = existing
		return existing, nil
	}
	f.nextID++
	h.ID = f.nextID
	f.byDate[key] = h
	return h, nil
}

func (f *fakeHolidayRepo) Exists(ctx context.Context, date time.Time) (bool, error) {
	_, ok := f.byDate[date.Format(calendar.DateFormat)]
	return ok, nil
}

func (f *fakeHolidayRepo) DeleteByDate(ctx context.Context, date time.Time) error {
	delete(f.byDate, date.Format(calendar.DateFormat))
	return nil
}

type fakeStaffRepo struct {
	staff.StaffRepository
	active []staff.Staff
}

func (f *fakeStaffRepo) ListActive(ctx context.Context) ([]staff.Staff, error) {
	return f.active, nil
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	upserts []attendance.Record
}

func (f *fakeAttendanceRepo) Upsert(ctx context.Context, rec attendance.Record) error {
	for i, existing := range f.upserts {
		if existing.StaffID == rec.StaffID && existing.Date.Equal(rec.Date) {
			f.upserts[i] = rec
			return nil
		}
	}
	f.upserts = append(f.upserts, rec)
	return nil
}

func member(id int64, name string) staff.Staff {
	return staff.Staff{ID: id, Name: name, MonthlySalary: decimal.NewFromInt(30000)}
}

func TestAddHoliday_MarksAllActiveStaff(t *testing.T) {
	holRepo := newFakeHolidayRepo()
	staffRepo := &fakeStaffRepo{active: []staff.Staff{member(1, "Ravi"), member(2, "Sita")}}
	attRepo := &fakeAttendanceRepo{}

	svc := NewHolidayService(nil, holRepo, staffRepo, attRepo)

	resp, err := svc.AddHoliday(context.Background(), holiday.AddHolidayRequest{
		Date: "2024-03-25",
		Name: "Holi",
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-03-25", resp.Date)
	assert.Equal(t, "Holi", resp.Name)

	require.Len(t, attRepo.upserts, 2)
	for _, rec := range attRepo.upserts {
		assert.True(t, rec.IsPresent)
		assert.True(t, rec.IsHoliday)
		assert.Equal(t, "2024-03-25", rec.Date.Format(calendar.DateFormat))
	}
}

func TestAddHoliday_Idempotent(t *testing.T) {
	holRepo := newFakeHolidayRepo()
	staffRepo := &fakeStaffRepo{active: []staff.Staff{member(1, "Ravi")}}
	attRepo := &fakeAttendanceRepo{}

	svc := NewHolidayService(nil, holRepo, staffRepo, attRepo)

	first, err := svc.AddHoliday(context.Background(), holiday.AddHolidayRequest{Date: "2024-03-25", Name: "Holi"})
	require.NoError(t, err)
	second, err := svc.AddHoliday(context.Background(), holiday.AddHolidayRequest{Date: "2024-03-25", Name: "Holi Festival"})
	require.NoError(t, err)

	// The register keeps one row per date and the attendance stamp stays
	// a single record per member.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Holi Festival", second.Name)
	assert.Len(t, holRepo.byDate, 1)
	assert.Len(t, attRepo.upserts, 1)
}

func TestAddHoliday_BadRequest(t *testing.T) {
	svc := NewHolidayService(nil, newFakeHolidayRepo(), &fakeStaffRepo{}, &fakeAttendanceRepo{})

	_, err := svc.AddHoliday(context.Background(), holiday.AddHolidayRequest{Date: "25-03-2024", Name: "Holi"})
	assert.Error(t, err)

	_, err = svc.AddHoliday(context.Background(), holiday.AddHolidayRequest{Date: "2024-03-25"})
	assert.Error(t, err)
}

func TestRemoveHoliday_KeepsAttendance(t *testing.T) {
	holRepo := newFakeHolidayRepo()
	staffRepo := &fakeStaffRepo{active: []staff.Staff{member(1, "Ravi")}}
	attRepo := &fakeAttendanceRepo{}

	svc := NewHolidayService(nil, holRepo, staffRepo, attRepo)

	_, err := svc.AddHoliday(context.Background(), holiday.AddHolidayRequest{Date: "2024-03-25", Name: "Holi"})
	require.NoError(t, err)

	date := time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC)
	require.NoError(t, svc.RemoveHoliday(context.Background(), date))

	ok, err := svc.IsHoliday(context.Background(), date)
	require.NoError(t, err)
	assert.False(t, ok)

	// Attendance stamped at add time stays as written.
	require.Len(t, attRepo.upserts, 1)
	assert.True(t, attRepo.upserts[0].IsHoliday)
}

func TestIsHoliday(t *testing.T) {
	holRepo := newFakeHolidayRepo()
	svc := NewHolidayService(nil, holRepo, &fakeStaffRepo{}, &fakeAttendanceRepo{})

	_, err := svc.AddHoliday(context.Background(), holiday.AddHolidayRequest{Date: "2024-03-25", Name: "Holi"})
	require.NoError(t, err)

	ok, err := svc.IsHoliday(context.Background(), time.Date(2024, time.March, 25, 13, 45, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.IsHoliday(context.Background(), time.Date(2024, time.March, 26, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, ok)
}
