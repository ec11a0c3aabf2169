package http

import (
	"net/http"

	"github.com/staffbook/staffbook-backend-go/internal/domain/payroll"
	"github.com/staffbook/staffbook-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
	NotifyMonthly(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewReportHandler(payrollService payroll.PayrollService) ReportHandler {
	return &ReportHandlerImpl{payrollService: payrollService}
}

// Monthly implements ReportHandler.
func (h *ReportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	year, month, ok := yearMonthQuery(r)
	if !ok {
		response.BadRequest(w, "year and month query parameters are required", nil)
		return
	}

	report, err := h.payrollService.GetMonthlyReport(r.Context(), payroll.ReportRequest{Year: year, Month: month})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// NotifyMonthly implements ReportHandler.
func (h *ReportHandlerImpl) NotifyMonthly(w http.ResponseWriter, r *http.Request) {
	year, month, ok := yearMonthQuery(r)
	if !ok {
		response.BadRequest(w, "year and month query parameters are required", nil)
		return
	}

	sent, err := h.payrollService.SendMonthlySummaries(r.Context(), payroll.ReportRequest{Year: year, Month: month})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Monthly summaries sent", map[string]int{"sent": sent})
}

// Dashboard implements ReportHandler.
func (h *ReportHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	year, month, ok := yearMonthQuery(r)
	if !ok {
		response.BadRequest(w, "year and month query parameters are required", nil)
		return
	}

	stats, err := h.payrollService.GetDashboardStats(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
