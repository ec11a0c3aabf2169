package advance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBuildRepaymentSchedule_OneTime(t *testing.T) {
	schedule, err := BuildRepaymentSchedule(decimal.NewFromInt(5000), date("2024-03-15"), RepaymentOneTime, 0)
	require.NoError(t, err)
	require.Len(t, schedule, 1)
	assert.True(t, schedule[0].Amount.Equal(decimal.NewFromInt(5000)))
	assert.Equal(t, date("2024-04-01"), schedule[0].DueDate)
	assert.False(t, schedule[0].IsPaid)
}

func TestBuildRepaymentSchedule_Monthly_EvenSplit(t *testing.T) {
	schedule, err := BuildRepaymentSchedule(decimal.NewFromInt(3000), date("2024-01-10"), RepaymentMonthly, 3)
	require.NoError(t, err)
	require.Len(t, schedule, 3)

	for i, installment := range schedule {
		assert.True(t, installment.Amount.Equal(decimal.NewFromInt(1000)),
			"installment %d = %s, want 1000", i, installment.Amount)
	}
	assert.Equal(t, date("2024-02-01"), schedule[0].DueDate)
	assert.Equal(t, date("2024-03-01"), schedule[1].DueDate)
	assert.Equal(t, date("2024-04-01"), schedule[2].DueDate)
}

func TestBuildRepaymentSchedule_Monthly_YearBoundary(t *testing.T) {
	schedule, err := BuildRepaymentSchedule(decimal.NewFromInt(6000), date("2024-11-20"), RepaymentMonthly, 3)
	require.NoError(t, err)
	require.Len(t, schedule, 3)
	assert.Equal(t, date("2024-12-01"), schedule[0].DueDate)
	assert.Equal(t, date("2025-01-01"), schedule[1].DueDate)
	assert.Equal(t, date("2025-02-01"), schedule[2].DueDate)
}

func TestBuildRepaymentSchedule_SumEqualsAmount(t *testing.T) {
	cases := []struct {
		amount string
		count  int
	}{
		{"3000", 3},
		{"1000", 3}, // 333.33 + 333.33 + 333.34
		{"100", 7},
		{"999.99", 4},
	}
	for _, c := range cases {
		amount := decimal.RequireFromString(c.amount)
		schedule, err := BuildRepaymentSchedule(amount, date("2024-01-01"), RepaymentMonthly, c.count)
		require.NoError(t, err)
		require.Len(t, schedule, c.count)

		sum := decimal.Zero
		for _, installment := range schedule {
			sum = sum.Add(installment.Amount)
		}
		assert.True(t, sum.Equal(amount), "amount=%s count=%d: schedule sums to %s", c.amount, c.count, sum)
	}
}

func TestBuildRepaymentSchedule_WeeklyMatchesMonthlyCadence(t *testing.T) {
	monthly, err := BuildRepaymentSchedule(decimal.NewFromInt(2000), date("2024-05-05"), RepaymentMonthly, 2)
	require.NoError(t, err)
	weekly, err := BuildRepaymentSchedule(decimal.NewFromInt(2000), date("2024-05-05"), RepaymentWeekly, 2)
	require.NoError(t, err)

	require.Len(t, weekly, len(monthly))
	for i := range monthly {
		assert.Equal(t, monthly[i].DueDate, weekly[i].DueDate)
		assert.True(t, monthly[i].Amount.Equal(weekly[i].Amount))
	}
}

func TestBuildRepaymentSchedule_Invalid(t *testing.T) {
	_, err := BuildRepaymentSchedule(decimal.NewFromInt(1000), date("2024-01-01"), RepaymentMonthly, 0)
	assert.ErrorIs(t, err, ErrInvalidEMISchedule)

	_, err = BuildRepaymentSchedule(decimal.NewFromInt(1000), date("2024-01-01"), RepaymentType("Daily"), 1)
	assert.ErrorIs(t, err, ErrInvalidEMISchedule)
}
