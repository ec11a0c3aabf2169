package setting

import (
	"github.com/staffbook/staffbook-backend-go/internal/pkg/validator"
)

type UpdateSettingsRequest struct {
	WorkingDays      *int    `json:"working_days,omitempty"`
	SalaryCycleStart *int    `json:"salary_cycle_start,omitempty"`
	SalaryCycleEnd   *int    `json:"salary_cycle_end,omitempty"`
	TwilioAccountSID *string `json:"twilio_account_sid,omitempty"`
	TwilioAuthToken  *string `json:"twilio_auth_token,omitempty"`
	TwilioFromNumber *string `json:"twilio_from_number,omitempty"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.WorkingDays != nil && (*r.WorkingDays < 1 || *r.WorkingDays > 31) {
		errs = append(errs, validator.ValidationError{Field: "working_days", Message: "must be between 1 and 31"})
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

type SettingsResponse struct {
	WorkingDays      int    `json:"working_days"`
	SalaryCycleStart int    `json:"salary_cycle_start"`
	SalaryCycleEnd   int    `json:"salary_cycle_end"`
	TwilioAccountSID string `json:"twilio_account_sid,omitempty"`
	TwilioFromNumber string `json:"twilio_from_number,omitempty"`
}
