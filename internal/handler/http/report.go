package http

import (
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/report"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Daily(w http.ResponseWriter, r *http.Request)
	DailyCSV(w http.ResponseWriter, r *http.Request)
	Calendar(w http.ResponseWriter, r *http.Request)
	Employee(w http.ResponseWriter, r *http.Request)
	EmployeeCSV(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Daily implements ReportHandler.
func (h *reportHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	req := report.DailyReportRequest{
		Date:   r.URL.Query().Get("date"),
		Status: r.URL.Query().Get("status"),
	}

	resp, err := h.reportService.DailyReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// DailyCSV implements ReportHandler.
func (h *reportHandlerImpl) DailyCSV(w http.ResponseWriter, r *http.Request) {
	req := report.DailyReportRequest{
		Date:   r.URL.Query().Get("date"),
		Status: r.URL.Query().Get("status"),
	}

	data, filename, err := h.reportService.DailyReportCSV(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeCSV(w, data, filename)
}

// Calendar implements ReportHandler.
func (h *reportHandlerImpl) Calendar(w http.ResponseWriter, r *http.Request) {
	req := report.MonthlyReportRequest{
		Month:      r.URL.Query().Get("month"),
		EmployeeID: r.URL.Query().Get("employee_id"),
	}

	resp, err := h.reportService.MonthlyCalendar(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Employee implements ReportHandler.
func (h *reportHandlerImpl) Employee(w http.ResponseWriter, r *http.Request) {
	req := report.EmployeeReportRequest{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Month:      r.URL.Query().Get("month"),
	}

	resp, err := h.reportService.EmployeeReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// EmployeeCSV implements ReportHandler.
func (h *reportHandlerImpl) EmployeeCSV(w http.ResponseWriter, r *http.Request) {
	req := report.EmployeeReportRequest{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Month:      r.URL.Query().Get("month"),
	}

	data, filename, err := h.reportService.EmployeeReportCSV(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeCSV(w, data, filename)
}

func writeCSV(w http.ResponseWriter, data []byte, filename string) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
