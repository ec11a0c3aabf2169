package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffbook/staffbook-backend-go/internal/domain/attendance"
	"github.com/staffbook/staffbook-backend-go/internal/domain/holiday"
	"github.com/staffbook/staffbook-backend-go/internal/domain/staff"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/calendar"
)

type fakeStaffRepo struct {
	staff.StaffRepository
	active []staff.Staff
}

func (f *fakeStaffRepo) ListActive(ctx context.Context) ([]staff.Staff, error) {
	return f.active, nil
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	records []attendance.Record
}

func (f *fakeAttendanceRepo) ListByRange(ctx context.Context, first, last time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if !rec.Date.Before(first) && !rec.Date.After(last) {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeHolidayRepo struct {
	holiday.HolidayRepository
	holidays []holiday.Holiday
}

func (f *fakeHolidayRepo) ListByRange(ctx context.Context, first, last time.Time) ([]holiday.Holiday, error) {
	return f.holidays, nil
}

func day(value string) time.Time {
	d, err := time.Parse(calendar.DateFormat, value)
	if err != nil {
		panic(err)
	}
	return d
}

func TestResolveMonth_FullSheet(t *testing.T) {
	first, last := calendar.MonthRange(2024, time.March)

	days := ResolveMonth(first, last, nil, nil)

	require.Len(t, days, 31)
	assert.Equal(t, first, days[0].Date)
	assert.Equal(t, last, days[30].Date)
	for _, d := range days {
		assert.False(t, d.IsPresent, "unmarked day %s must resolve absent", d.Date)
		assert.False(t, d.IsHoliday)
	}
}

func TestResolveMonth_OverlaysRecords(t *testing.T) {
	first, last := calendar.MonthRange(2024, time.March)
	records := []attendance.Record{
		{StaffID: 1, Date: day("2024-03-05"), IsPresent: true},
		{StaffID: 1, Date: day("2024-03-06"), IsPresent: false},
	}

	days := ResolveMonth(first, last, records, nil)

	assert.True(t, days[4].IsPresent)
	// An explicit absent mark behaves the same as no mark.
	assert.False(t, days[5].IsPresent)
	assert.False(t, days[6].IsPresent)
}

func TestResolveMonth_HolidayFromRegister(t *testing.T) {
	// The holiday flag comes from the register even when the stored
	// record says otherwise, and independently of presence.
	first, last := calendar.MonthRange(2024, time.March)
	records := []attendance.Record{
		{StaffID: 1, Date: day("2024-03-10"), IsPresent: false, IsHoliday: true},
	}
	holidays := []holiday.Holiday{
		{ID: 1, Date: day("2024-03-15"), Name: "Festival"},
	}

	days := ResolveMonth(first, last, records, holidays)

	assert.False(t, days[9].IsHoliday, "record flag alone does not make a holiday")
	assert.True(t, days[14].IsHoliday)
	assert.False(t, days[14].IsPresent, "a register holiday does not imply a presence mark")
}

func TestGetMonthlyAttendanceAll(t *testing.T) {
	staffRepo := &fakeStaffRepo{active: []staff.Staff{
		{ID: 1, Name: "Ravi"},
		{ID: 2, Name: "Sita"},
	}}
	attRepo := &fakeAttendanceRepo{records: []attendance.Record{
		{StaffID: 1, Date: day("2024-03-05"), IsPresent: true},
		{StaffID: 2, Date: day("2024-03-05"), IsPresent: false},
		{StaffID: 2, Date: day("2024-03-06"), IsPresent: true},
	}}
	holRepo := &fakeHolidayRepo{holidays: []holiday.Holiday{
		{ID: 1, Date: day("2024-03-15"), Name: "Festival"},
	}}

	svc := NewAttendanceService(nil, attRepo, staffRepo, holRepo)

	resp, err := svc.GetMonthlyAttendanceAll(context.Background(), 2024, 3)
	require.NoError(t, err)

	assert.Equal(t, 2024, resp.Year)
	assert.Equal(t, 3, resp.Month)
	require.Len(t, resp.Staff, 2)

	ravi, sita := resp.Staff[0], resp.Staff[1]
	require.Len(t, ravi.Days, 31)
	require.Len(t, sita.Days, 31)

	// Records land on the right member's sheet.
	assert.True(t, ravi.Days[4].IsPresent)
	assert.False(t, sita.Days[4].IsPresent)
	assert.True(t, sita.Days[5].IsPresent)
	assert.False(t, ravi.Days[5].IsPresent)

	// The register holiday shows on every sheet.
	assert.True(t, ravi.Days[14].IsHoliday)
	assert.True(t, sita.Days[14].IsHoliday)
}

func TestGetMonthlyAttendanceAll_NoStaff(t *testing.T) {
	svc := NewAttendanceService(nil, &fakeAttendanceRepo{}, &fakeStaffRepo{}, &fakeHolidayRepo{})

	resp, err := svc.GetMonthlyAttendanceAll(context.Background(), 2024, 3)
	require.NoError(t, err)
	assert.Empty(t, resp.Staff)
}

func TestResolveMonth_RecordsOutsideRangeIgnored(t *testing.T) {
	first, last := calendar.MonthRange(2024, time.March)
	records := []attendance.Record{
		{StaffID: 1, Date: day("2024-02-28"), IsPresent: true},
		{StaffID: 1, Date: day("2024-04-01"), IsPresent: true},
	}

	days := ResolveMonth(first, last, records, nil)

	for _, d := range days {
		assert.False(t, d.IsPresent)
	}
}
