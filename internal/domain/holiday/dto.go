package holiday

import (
	"github.com/staffbook/staffbook-backend-go/internal/pkg/validator"
)

type AddHolidayRequest struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

func (r *AddHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a date in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID   int64  `json:"id"`
	Date string `json:"date"`
	Name string `json:"name"`
}
