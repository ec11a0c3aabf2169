package calendar

import (
	"time"
)

// DateFormat is the canonical wire format for plain dates.
const DateFormat = "2006-01-02"

// Normalize truncates a timestamp to midnight UTC. All payroll and
// attendance arithmetic operates on normalized dates.
func Normalize(value time.Time) time.Time {
	year, month, day := value.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysInMonth returns the number of calendar days in a month,
// accounting for leap years.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthRange returns the first and last day of a month, inclusive.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// DatesBetween returns every date from first to last inclusive, ascending.
// A first after last yields an empty slice.
func DatesBetween(first, last time.Time) []time.Time {
	first = Normalize(first)
	last = Normalize(last)

	var dates []time.Time
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		dates = append(dates, day)
	}
	return dates
}

// CycleWindow returns the inclusive window inside a month bounded by
// two day-of-month values. Days past the end of the month clamp to its
// last day, so the default 1/31 cycle always covers the whole month.
func CycleWindow(year int, month time.Month, startDay, endDay int) (time.Time, time.Time) {
	days := DaysInMonth(year, month)
	if startDay < 1 {
		startDay = 1
	}
	if startDay > days {
		startDay = days
	}
	if endDay > days {
		endDay = days
	}
	if endDay < startDay {
		endDay = startDay
	}
	first := time.Date(year, month, startDay, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, month, endDay, 0, 0, 0, 0, time.UTC)
	return first, last
}

// NextMonthFirst returns the first day of the month n months after the
// month containing value. Used for installment due dates.
func NextMonthFirst(value time.Time, n int) time.Time {
	value = Normalize(value)
	return time.Date(value.Year(), value.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
}
