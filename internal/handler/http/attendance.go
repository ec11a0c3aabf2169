package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/staffbook/staffbook-backend-go/internal/domain/attendance"
	"github.com/staffbook/staffbook-backend-go/internal/handler/http/response"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/calendar"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	GetDaily(w http.ResponseWriter, r *http.Request)
	GetMonthly(w http.ResponseWriter, r *http.Request)
	GetMonthlyAll(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Mark implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.attendanceService.MarkAttendance(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance recorded", nil)
}

// GetDaily implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetDaily(w http.ResponseWriter, r *http.Request) {
	date := time.Now().UTC()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(calendar.DateFormat, raw)
		if err != nil {
			response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
			return
		}
		date = parsed
	}

	daily, err := h.attendanceService.GetDailyAttendance(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, daily)
}

// GetMonthly implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetMonthly(w http.ResponseWriter, r *http.Request) {
	staffID, ok := idParam(r, "staffID")
	if !ok {
		response.BadRequest(w, "Invalid staff id", nil)
		return
	}

	year, month, ok := yearMonthQuery(r)
	if !ok {
		response.BadRequest(w, "year and month query parameters are required", nil)
		return
	}

	monthly, err := h.attendanceService.GetMonthlyAttendance(r.Context(), staffID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, monthly)
}

// GetMonthlyAll implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetMonthlyAll(w http.ResponseWriter, r *http.Request) {
	year, month, ok := yearMonthQuery(r)
	if !ok {
		response.BadRequest(w, "year and month query parameters are required", nil)
		return
	}

	monthly, err := h.attendanceService.GetMonthlyAttendanceAll(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, monthly)
}

// yearMonthQuery reads the year/month pair, defaulting to the current
// month when both are absent.
func yearMonthQuery(r *http.Request) (int, int, bool) {
	rawYear := r.URL.Query().Get("year")
	rawMonth := r.URL.Query().Get("month")

	if rawYear == "" && rawMonth == "" {
		now := time.Now().UTC()
		return now.Year(), int(now.Month()), true
	}

	year, err := strconv.Atoi(rawYear)
	if err != nil || year < 1 {
		return 0, 0, false
	}
	month, err := strconv.Atoi(rawMonth)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}

	return year, month, true
}
