package advance

import "errors"

var (
	ErrAdvanceNotFound    = errors.New("advance not found")
	ErrRepaymentNotFound  = errors.New("advance repayment not found")
	ErrNegativePayment    = errors.New("payment amount must not be negative")
	ErrOverPayment        = errors.New("payment exceeds the remaining advance amount")
	ErrInvalidEMISchedule = errors.New("invalid EMI schedule")
)
