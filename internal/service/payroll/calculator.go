package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffbook/staffbook-backend-go/internal/domain/attendance"
	"github.com/staffbook/staffbook-backend-go/internal/domain/payroll"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/calendar"
)

// WorkingDays is the payroll denominator for a month: calendar days
// minus registered holidays.
func WorkingDays(year int, month time.Month, holidayCount int) int {
	return calendar.DaysInMonth(year, month) - holidayCount
}

// CountPresent counts days marked present or holiday in a resolved
// month sheet.
func CountPresent(days []attendance.DayStatus) int {
	count := 0
	for _, d := range days {
		if d.IsPresent || d.IsHoliday {
			count++
		}
	}
	return count
}

// ComputeRow pro-rates one staff member's salary by attendance and
// subtracts the advance deduction. FinalSalary stays unclamped so an
// oversized deduction surfaces as a negative payout instead of silently
// writing the shortfall off.
func ComputeRow(staffID int64, name string, monthlySalary decimal.Decimal, daysPresent, workingDays int, advanceDeduction decimal.Decimal) payroll.ReportRow {
	ratio := decimal.Zero
	if workingDays > 0 {
		ratio = decimal.NewFromInt(int64(daysPresent)).Div(decimal.NewFromInt(int64(workingDays)))
	}

	calculated := monthlySalary.Mul(ratio).Round(2)

	return payroll.ReportRow{
		StaffID:          staffID,
		StaffName:        name,
		MonthlySalary:    monthlySalary,
		DaysPresent:      daysPresent,
		WorkingDays:      workingDays,
		AttendanceRatio:  ratio,
		CalculatedSalary: calculated,
		AdvanceDeduction: advanceDeduction,
		FinalSalary:      calculated.Sub(advanceDeduction),
	}
}
