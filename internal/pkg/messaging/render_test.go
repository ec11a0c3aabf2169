package messaging

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRenderAttendanceSummary(t *testing.T) {
	msg := RenderAttendanceSummary(
		"Asha",
		2025, 3, 24,
		decimal.NewFromInt(27692),
		decimal.NewFromInt(2000),
		decimal.NewFromInt(25692),
	)

	assert.Contains(t, msg, "Dear Asha,")
	assert.Contains(t, msg, "2025-03")
	assert.Contains(t, msg, "present on 24 days")
	assert.Contains(t, msg, "Salary: Rs 27692.00")
	assert.Contains(t, msg, "Advance: Rs 2000.00")
	assert.Contains(t, msg, "Final: Rs 25692.00")
}

func TestRenderAdvanceNotification(t *testing.T) {
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	msg := RenderAdvanceNotification("Ravi", decimal.NewFromFloat(1500.50), date)

	assert.Contains(t, msg, "Dear Ravi,")
	assert.Contains(t, msg, "Rs 1500.50")
	assert.Contains(t, msg, "2025-03-15")
}

func TestRenderRepaymentReminder(t *testing.T) {
	due := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	msg := RenderRepaymentReminder("Ravi", decimal.NewFromInt(500), due)

	assert.Contains(t, msg, "repayment of Rs 500.00")
	assert.Contains(t, msg, "due on 2025-04-01")
}
