package messaging

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffbook/staffbook-backend-go/internal/pkg/calendar"
)

// RenderAttendanceSummary builds the monthly summary message sent to a
// staff member after payroll is computed.
func RenderAttendanceSummary(name string, year, month, daysPresent int, calculated, advance, final decimal.Decimal) string {
	return fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your attendance summary for %04d-%02d:\n"+
			"You were present on %d days.\n"+
			"Salary: Rs %s\n"+
			"Advance: Rs %s\n"+
			"Final: Rs %s\n\n"+
			"Thank you for your hard work!",
		name, year, month, daysPresent,
		calculated.StringFixed(2), advance.StringFixed(2), final.StringFixed(2),
	)
}

// RenderAdvanceNotification builds the message sent when a new advance
// is recorded for a staff member.
func RenderAdvanceNotification(name string, amount decimal.Decimal, date time.Time) string {
	return fmt.Sprintf(
		"Dear %s,\n\n"+
			"An advance payment of Rs %s has been recorded on %s.\n"+
			"This will be deducted from your salary.\n\n"+
			"Thank you!",
		name, amount.StringFixed(2), date.Format(calendar.DateFormat),
	)
}

// RenderRepaymentReminder builds the reminder message for an unpaid
// advance installment.
func RenderRepaymentReminder(name string, amount decimal.Decimal, dueDate time.Time) string {
	return fmt.Sprintf(
		"Dear %s,\n\n"+
			"This is a reminder that you have an advance repayment of Rs %s due on %s.\n\n"+
			"Please ensure this is deducted from your salary.\n\n"+
			"Thank you!",
		name, amount.StringFixed(2), dueDate.Format(calendar.DateFormat),
	)
}
