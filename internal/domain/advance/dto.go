package advance

import (
	"github.com/shopspring/decimal"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/validator"
)

type AddAdvanceRequest struct {
	StaffID       int64            `json:"staff_id"`
	Amount        decimal.Decimal  `json:"amount"`
	Date          string           `json:"date"`
	RepaymentType string           `json:"repayment_type"`
	EMIAmount     *decimal.Decimal `json:"emi_amount,omitempty"`
	EMICount      *int             `json:"emi_count,omitempty"`
}

func (r *AddAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StaffID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a date in YYYY-MM-DD format"})
	}
	if !RepaymentType(r.RepaymentType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "repayment_type", Message: "must be 'OneTime', 'Weekly' or 'Monthly'"})
	}
	if RepaymentType(r.RepaymentType) != RepaymentOneTime {
		if r.EMICount == nil || *r.EMICount < 1 {
			errs = append(errs, validator.ValidationError{Field: "emi_count", Message: "must be at least 1"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordPaymentRequest struct {
	AdvanceID int64           `json:"-"`
	Amount    decimal.Decimal `json:"amount"`
}

type MarkRepaymentPaidRequest struct {
	RepaymentID int64   `json:"-"`
	PaidDate    *string `json:"paid_date,omitempty"`
}

func (r *MarkRepaymentPaidRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PaidDate != nil {
		if _, ok := validator.IsValidDate(*r.PaidDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "paid_date", Message: "must be a date in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdvanceResponse struct {
	ID              int64           `json:"id"`
	StaffID         int64           `json:"staff_id"`
	StaffName       *string         `json:"staff_name,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	Date            string          `json:"date"`
	RepaymentType   string          `json:"repayment_type"`
	EMIAmount       decimal.Decimal `json:"emi_amount"`
	TotalEMICount   int             `json:"total_emi_count"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	Status          string          `json:"status"`
}

type RepaymentResponse struct {
	ID        int64           `json:"id"`
	AdvanceID int64           `json:"advance_id"`
	StaffID   *int64          `json:"staff_id,omitempty"`
	StaffName *string         `json:"staff_name,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	DueDate   string          `json:"due_date"`
	IsPaid    bool            `json:"is_paid"`
	PaidDate  *string         `json:"paid_date,omitempty"`
}

type OutstandingResponse struct {
	StaffID     int64           `json:"staff_id"`
	StaffName   string          `json:"staff_name"`
	TotalIssued decimal.Decimal `json:"total_issued"`
	TotalRepaid decimal.Decimal `json:"total_repaid"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

type PendingAdvanceResponse struct {
	AdvanceID           int64           `json:"advance_id"`
	StaffID             int64           `json:"staff_id"`
	StaffName           string          `json:"staff_name"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
	AdvanceDate         string          `json:"advance_date"`
	PendingAmount       decimal.Decimal `json:"pending_amount"`
	PendingInstallments int             `json:"pending_installments"`
}
