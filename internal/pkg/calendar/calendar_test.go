package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.January, 31},
		{2024, time.February, 29}, // leap year
		{2023, time.February, 28},
		{2000, time.February, 29}, // divisible by 400
		{1900, time.February, 28}, // divisible by 100 but not 400
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, c := range cases {
		got := DaysInMonth(c.year, c.month)
		if got != c.want {
			t.Errorf("DaysInMonth(%d, %v) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

func TestMonthRange(t *testing.T) {
	first, last := MonthRange(2024, time.February)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), first)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), last)

	first, last = MonthRange(2023, time.December)
	assert.Equal(t, 1, first.Day())
	assert.Equal(t, 31, last.Day())
	assert.Equal(t, time.December, last.Month())
}

func TestDatesBetween(t *testing.T) {
	first, last := MonthRange(2024, time.February)
	dates := DatesBetween(first, last)
	assert.Len(t, dates, 29)
	assert.Equal(t, first, dates[0])
	assert.Equal(t, last, dates[len(dates)-1])

	for i := 1; i < len(dates); i++ {
		assert.Equal(t, dates[i-1].AddDate(0, 0, 1), dates[i], "dates must ascend by one day")
	}

	// Restartable: a second call yields the same sequence.
	again := DatesBetween(first, last)
	assert.Equal(t, dates, again)
}

func TestDatesBetween_SingleAndEmpty(t *testing.T) {
	day := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	assert.Len(t, DatesBetween(day, day), 1)
	assert.Empty(t, DatesBetween(day.AddDate(0, 0, 1), day))
}

func TestNormalize(t *testing.T) {
	stamp := time.Date(2024, time.March, 15, 18, 30, 12, 999, time.FixedZone("IST", 5*3600+1800))
	got := Normalize(stamp)
	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 15, got.Day())
}

func TestCycleWindow(t *testing.T) {
	cases := []struct {
		name       string
		year       int
		month      time.Month
		start, end int
		wantFirst  string
		wantLast   string
	}{
		{"default covers whole month", 2024, time.March, 1, 31, "2024-03-01", "2024-03-31"},
		{"end clamps to short month", 2024, time.February, 1, 31, "2024-02-01", "2024-02-29"},
		{"mid-month window", 2024, time.March, 5, 20, "2024-03-05", "2024-03-20"},
		{"start below one clamps up", 2024, time.March, 0, 31, "2024-03-01", "2024-03-31"},
		{"end before start collapses", 2024, time.March, 20, 10, "2024-03-20", "2024-03-20"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			first, last := CycleWindow(c.year, c.month, c.start, c.end)
			assert.Equal(t, c.wantFirst, first.Format(DateFormat))
			assert.Equal(t, c.wantLast, last.Format(DateFormat))
		})
	}
}

func TestNextMonthFirst(t *testing.T) {
	cases := []struct {
		from string
		n    int
		want string
	}{
		{"2024-03-15", 1, "2024-04-01"},
		{"2024-03-01", 2, "2024-05-01"},
		{"2024-12-10", 1, "2025-01-01"},
		{"2024-11-30", 3, "2025-02-01"},
	}
	for _, c := range cases {
		from, _ := time.Parse(DateFormat, c.from)
		got := NextMonthFirst(from, c.n)
		assert.Equal(t, c.want, got.Format(DateFormat), "NextMonthFirst(%s, %d)", c.from, c.n)
	}
}
