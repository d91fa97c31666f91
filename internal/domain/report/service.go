package report

import "context"

// Service builds read-only views over normalized attendance records. All
// counting goes through the aggregation functions; this layer only fetches,
// normalizes, and shapes responses.
type Service interface {
	// DailyReport lists every marked employee for one date, sorted by
	// employee name. An optional status filter narrows the rows.
	DailyReport(ctx context.Context, req DailyReportRequest) (DailyReportResponse, error)

	// DailyReportCSV renders the daily report as CSV.
	DailyReportCSV(ctx context.Context, req DailyReportRequest) ([]byte, string, error)

	// MonthlyCalendar groups one month's records by date with per-day
	// status breakdowns.
	MonthlyCalendar(ctx context.Context, req MonthlyReportRequest) (CalendarResponse, error)

	// EmployeeReport summarizes one employee's month, rows ascending by
	// date.
	EmployeeReport(ctx context.Context, req EmployeeReportRequest) (EmployeeReportResponse, error)

	// EmployeeReportCSV renders the employee report as CSV.
	EmployeeReportCSV(ctx context.Context, req EmployeeReportRequest) ([]byte, string, error)
}
