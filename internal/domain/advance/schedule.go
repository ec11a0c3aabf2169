package advance

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/calendar"
)

// BuildRepaymentSchedule turns an advance into its installment rows at
// creation time.
//
// OneTime: a single installment for the full amount, due on the 1st of
// the month after the advance date.
//
// Monthly with n EMIs: n installments due on the 1st of month+1..month+n,
// split equally to two decimal places; the last installment absorbs the
// rounding remainder so the schedule always sums to the advance amount.
//
// Weekly shares the monthly due-date arithmetic; the two types only
// differ by label in the bookkeeping.
func BuildRepaymentSchedule(amount decimal.Decimal, date time.Time, repaymentType RepaymentType, emiCount int) ([]Repayment, error) {
	if !repaymentType.Valid() {
		return nil, ErrInvalidEMISchedule
	}

	if repaymentType == RepaymentOneTime {
		return []Repayment{{
			Amount:  amount,
			DueDate: calendar.NextMonthFirst(date, 1),
		}}, nil
	}

	if emiCount < 1 {
		return nil, ErrInvalidEMISchedule
	}

	each := amount.Div(decimal.NewFromInt(int64(emiCount))).Round(2)
	installments := make([]Repayment, 0, emiCount)
	allocated := decimal.Zero
	for i := 1; i <= emiCount; i++ {
		portion := each
		if i == emiCount {
			portion = amount.Sub(allocated)
		}
		allocated = allocated.Add(portion)
		installments = append(installments, Repayment{
			Amount:  portion,
			DueDate: calendar.NextMonthFirst(date, i),
		})
	}
	return installments, nil
}
