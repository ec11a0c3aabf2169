package attendance

import (
	"github.com/staffbook/staffbook-backend-go/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	StaffID   int64  `json:"staff_id"`
	Date      string `json:"date"`
	IsPresent bool   `json:"is_present"`
	IsHoliday bool   `json:"is_holiday"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StaffID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a date in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DailyEntryResponse struct {
	StaffID   int64  `json:"staff_id"`
	StaffName string `json:"staff_name"`
	IsPresent bool   `json:"is_present"`
	IsHoliday bool   `json:"is_holiday"`
}

type DailyAttendanceResponse struct {
	Date      string               `json:"date"`
	IsHoliday bool                 `json:"is_holiday"`
	Entries   []DailyEntryResponse `json:"entries"`
}

type DayStatusResponse struct {
	Date      string `json:"date"`
	IsPresent bool   `json:"is_present"`
	IsHoliday bool   `json:"is_holiday"`
}

type MonthlyAttendanceResponse struct {
	StaffID int64               `json:"staff_id"`
	Year    int                 `json:"year"`
	Month   int                 `json:"month"`
	Days    []DayStatusResponse `json:"days"`
}

type StaffMonthResponse struct {
	StaffID   int64               `json:"staff_id"`
	StaffName string              `json:"staff_name"`
	Days      []DayStatusResponse `json:"days"`
}

type MonthlyAttendanceAllResponse struct {
	Year  int                  `json:"year"`
	Month int                  `json:"month"`
	Staff []StaffMonthResponse `json:"staff"`
}
