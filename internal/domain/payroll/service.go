package payroll

import "context"

// PayrollService defines the monthly computation surface
type PayrollService interface {
	// GetMonthlyReport computes every active staff member's payroll row
	// for a calendar month
	GetMonthlyReport(ctx context.Context, req ReportRequest) (MonthlyReportResponse, error)

	// GetDashboardStats aggregates the month-level figures shown on the
	// dashboard
	GetDashboardStats(ctx context.Context, year, month int) (DashboardStatsResponse, error)

	// SendMonthlySummaries renders each active staff member's monthly
	// payroll summary and hands it to the notifier. Members without a
	// phone number are skipped. Returns the number of messages sent.
	SendMonthlySummaries(ctx context.Context, req ReportRequest) (int, error)
}
