package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/staffbook/staffbook-backend-go/internal/domain/holiday"
	"github.com/staffbook/staffbook-backend-go/internal/handler/http/response"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/calendar"
)

type HolidayHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Remove(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &HolidayHandlerImpl{holidayService: holidayService}
}

// Add implements HolidayHandler.
func (h *HolidayHandlerImpl) Add(w http.ResponseWriter, r *http.Request) {
	var req holiday.AddHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.holidayService.AddHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday added", created)
}

// List implements HolidayHandler. The range comes from either a
// from/to date pair or a year/month pair; with no filter at all the
// whole register is returned.
func (h *HolidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var first, last time.Time
	switch {
	case q.Get("from") != "" || q.Get("to") != "":
		var err error
		first, err = time.Parse(calendar.DateFormat, q.Get("from"))
		if err == nil {
			last, err = time.Parse(calendar.DateFormat, q.Get("to"))
		}
		if err != nil || last.Before(first) {
			response.BadRequest(w, "from and to must be dates in YYYY-MM-DD format with from on or before to", nil)
			return
		}
	case q.Get("year") != "" || q.Get("month") != "":
		year, month, ok := yearMonthQuery(r)
		if !ok {
			response.BadRequest(w, "year and month must be supplied together", nil)
			return
		}
		first, last = calendar.MonthRange(year, time.Month(month))
	}

	holidays, err := h.holidayService.ListHolidays(r.Context(), first, last)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}

// Remove implements HolidayHandler.
func (h *HolidayHandlerImpl) Remove(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(calendar.DateFormat, chi.URLParam(r, "date"))
	if err != nil {
		response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
		return
	}

	if err := h.holidayService.RemoveHoliday(r.Context(), date); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday removed", nil)
}
