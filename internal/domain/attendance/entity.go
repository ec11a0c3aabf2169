package attendance

import "time"

// Record is the stored per-staff per-date attendance mark.
// Absence is encoded as IsPresent == false and IsHoliday == false.
type Record struct {
	ID        int64
	StaffID   int64
	Date      time.Time
	IsPresent bool
	IsHoliday bool
	CreatedAt time.Time
}

// DayStatus is one calendar day in a staff member's monthly sheet.
type DayStatus struct {
	Date      time.Time
	IsPresent bool
	IsHoliday bool
}
