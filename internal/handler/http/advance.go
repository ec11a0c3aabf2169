package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/staffbook/staffbook-backend-go/internal/domain/advance"
	"github.com/staffbook/staffbook-backend-go/internal/handler/http/response"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/calendar"
)

type AdvanceHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	RecordPayment(w http.ResponseWriter, r *http.Request)
	GetRepayments(w http.ResponseWriter, r *http.Request)
	MarkRepaymentPaid(w http.ResponseWriter, r *http.Request)
	Outstanding(w http.ResponseWriter, r *http.Request)
	PendingAdvances(w http.ResponseWriter, r *http.Request)
	PendingRepayments(w http.ResponseWriter, r *http.Request)
}

type AdvanceHandlerImpl struct {
	advanceService advance.AdvanceService
}

func NewAdvanceHandler(advanceService advance.AdvanceService) AdvanceHandler {
	return &AdvanceHandlerImpl{advanceService: advanceService}
}

// Add implements AdvanceHandler.
func (h *AdvanceHandlerImpl) Add(w http.ResponseWriter, r *http.Request) {
	var req advance.AddAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.advanceService.AddAdvance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Advance recorded", created)
}

// List implements AdvanceHandler.
func (h *AdvanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	advances, err := h.advanceService.ListAdvances(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, advances)
}

// Get implements AdvanceHandler.
func (h *AdvanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid advance id", nil)
		return
	}

	a, err := h.advanceService.GetAdvance(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, a)
}

// RecordPayment implements AdvanceHandler.
func (h *AdvanceHandlerImpl) RecordPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid advance id", nil)
		return
	}

	var req advance.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.AdvanceID = id

	updated, err := h.advanceService.RecordPayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// GetRepayments implements AdvanceHandler.
func (h *AdvanceHandlerImpl) GetRepayments(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid advance id", nil)
		return
	}

	history, err := h.advanceService.GetRepaymentHistory(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, history)
}

// MarkRepaymentPaid implements AdvanceHandler.
func (h *AdvanceHandlerImpl) MarkRepaymentPaid(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid repayment id", nil)
		return
	}

	req := advance.MarkRepaymentPaidRequest{RepaymentID: id}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
		req.RepaymentID = id
	}

	paid, err := h.advanceService.MarkInstallmentPaid(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, paid)
}

// Outstanding implements AdvanceHandler.
func (h *AdvanceHandlerImpl) Outstanding(w http.ResponseWriter, r *http.Request) {
	balances, err := h.advanceService.GetOutstandingBalances(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balances)
}

// PendingAdvances implements AdvanceHandler.
func (h *AdvanceHandlerImpl) PendingAdvances(w http.ResponseWriter, r *http.Request) {
	staffID, ok := staffIDQuery(r)
	if !ok {
		response.BadRequest(w, "Invalid staff_id", nil)
		return
	}

	pending, err := h.advanceService.ListPendingAdvances(r.Context(), staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, pending)
}

// PendingRepayments implements AdvanceHandler.
func (h *AdvanceHandlerImpl) PendingRepayments(w http.ResponseWriter, r *http.Request) {
	staffID, ok := staffIDQuery(r)
	if !ok {
		response.BadRequest(w, "Invalid staff_id", nil)
		return
	}

	var first, last *time.Time
	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := time.Parse(calendar.DateFormat, raw)
		if err != nil {
			response.BadRequest(w, "from must be in YYYY-MM-DD format", nil)
			return
		}
		first = &parsed
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		parsed, err := time.Parse(calendar.DateFormat, raw)
		if err != nil {
			response.BadRequest(w, "to must be in YYYY-MM-DD format", nil)
			return
		}
		last = &parsed
	}

	pending, err := h.advanceService.ListPendingRepayments(r.Context(), staffID, first, last)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, pending)
}

func staffIDQuery(r *http.Request) (*int64, bool) {
	raw := r.URL.Query().Get("staff_id")
	if raw == "" {
		return nil, true
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, false
	}
	return &id, true
}
