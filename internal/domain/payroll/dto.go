package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/validator"
)

type ReportRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (r *ReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 1 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a positive year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReportRowResponse struct {
	StaffID          int64           `json:"staff_id"`
	StaffName        string          `json:"staff_name"`
	MonthlySalary    decimal.Decimal `json:"monthly_salary"`
	DaysPresent      int             `json:"days_present"`
	WorkingDays      int             `json:"working_days"`
	AttendanceRatio  decimal.Decimal `json:"attendance_ratio"`
	CalculatedSalary decimal.Decimal `json:"calculated_salary"`
	AdvanceDeduction decimal.Decimal `json:"advance_deduction"`
	FinalSalary      decimal.Decimal `json:"final_salary"`
}

type MonthlyReportResponse struct {
	Year        int                 `json:"year"`
	Month       int                 `json:"month"`
	WorkingDays int                 `json:"working_days"`
	Rows        []ReportRowResponse `json:"rows"`
}

type DashboardStatsResponse struct {
	TotalStaff      int             `json:"total_staff"`
	AvgAttendance   decimal.Decimal `json:"avg_attendance"`
	TotalPayroll    decimal.Decimal `json:"total_payroll"`
	TotalAdvances   decimal.Decimal `json:"total_advances"`
	PendingAdvances decimal.Decimal `json:"pending_advances"`
}
