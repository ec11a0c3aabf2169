package staff

import (
	"github.com/shopspring/decimal"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/validator"
)

type CreateStaffRequest struct {
	Name             string          `json:"name"`
	Phone            *string         `json:"phone,omitempty"`
	MonthlySalary    decimal.Decimal `json:"monthly_salary"`
	SalaryCycleStart *int            `json:"salary_cycle_start,omitempty"`
	SalaryCycleEnd   *int            `json:"salary_cycle_end,omitempty"`
}

func (r *CreateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !r.MonthlySalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "must be greater than zero"})
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "is not a valid phone number"})
	}
	if r.SalaryCycleStart != nil && !validator.IsValidCycleDay(*r.SalaryCycleStart) {
		errs = append(errs, validator.ValidationError{Field: "salary_cycle_start", Message: "must be between 1 and 31"})
	}
	if r.SalaryCycleEnd != nil && !validator.IsValidCycleDay(*r.SalaryCycleEnd) {
		errs = append(errs, validator.ValidationError{Field: "salary_cycle_end", Message: "must be between 1 and 31"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStaffRequest struct {
	ID            int64           `json:"-"`
	Name          string          `json:"name"`
	Phone         *string         `json:"phone,omitempty"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
}

func (r *UpdateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !r.MonthlySalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "must be greater than zero"})
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "is not a valid phone number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSalaryRequest struct {
	StaffID       int64           `json:"-"`
	Salary        decimal.Decimal `json:"salary"`
	EffectiveFrom string          `json:"effective_from"`
}

func (r *UpdateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Salary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be greater than zero"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveFrom); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_from", Message: "must be a date in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSalaryCycleRequest struct {
	StaffID int64 `json:"-"`
	Start   int   `json:"start"`
	End     int   `json:"end"`
}

func (r *UpdateSalaryCycleRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidCycleDay(r.Start) {
		errs = append(errs, validator.ValidationError{Field: "start", Message: "must be between 1 and 31"})
	}
	if !validator.IsValidCycleDay(r.End) {
		errs = append(errs, validator.ValidationError{Field: "end", Message: "must be between 1 and 31"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StaffResponse struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Phone            *string         `json:"phone,omitempty"`
	MonthlySalary    decimal.Decimal `json:"monthly_salary"`
	SalaryCycleStart int             `json:"salary_cycle_start"`
	SalaryCycleEnd   int             `json:"salary_cycle_end"`
}

type SalaryRecordResponse struct {
	ID            int64           `json:"id"`
	Salary        decimal.Decimal `json:"salary"`
	EffectiveFrom string          `json:"effective_from"`
	EffectiveTo   *string         `json:"effective_to,omitempty"`
}
