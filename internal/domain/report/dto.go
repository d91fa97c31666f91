package report

import (
	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// REPORT DTOs
// ========================================

type DailyReportRequest struct {
	Date string `json:"date"`
	// Status narrows the report to one status when set.
	Status string `json:"status,omitempty"`
}

func (r *DailyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if !validator.IsValidDate(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsEmpty(r.Status) && !attendance.Status(r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of Present, Absent, Leave, OFF, WFH, DO",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MonthlyReportRequest struct {
	Month string `json:"month"`
	// EmployeeID narrows the calendar to one employee when set.
	EmployeeID string `json:"employee_id,omitempty"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month is required",
		})
	} else if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeReportRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month"`
}

func (r *EmployeeReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month is required",
		})
	} else if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReportRow struct {
	EmployeeID    string `json:"employee_id"`
	EmployeeName  string `json:"employee_name"`
	EmployeeEmpID string `json:"employee_emp_id"`
	Date          string `json:"date"`
	Status        string `json:"status"`
	Comment       string `json:"comment,omitempty"`
	UpdatedBy     string `json:"updated_by,omitempty"`
}

type DailyReportResponse struct {
	Date    string                    `json:"date"`
	Rows    []ReportRow               `json:"rows"`
	Counts  map[attendance.Status]int `json:"counts"`
	Total   int                       `json:"total"`
	Skipped int                       `json:"skipped"`
	Source  string                    `json:"source"`
}

type CalendarDay struct {
	Date     string                    `json:"date"`
	Statuses []attendance.Status       `json:"statuses"`
	Counts   map[attendance.Status]int `json:"counts"`
	Total    int                       `json:"total"`
}

type CalendarResponse struct {
	Month  string        `json:"month"`
	Days   []CalendarDay `json:"days"`
	Source string        `json:"source"`
}

type EmployeeReportResponse struct {
	EmployeeID   string                    `json:"employee_id"`
	EmployeeName string                    `json:"employee_name,omitempty"`
	Month        string                    `json:"month"`
	Rows         []ReportRow               `json:"rows"`
	Counts       map[attendance.Status]int `json:"counts"`
	Total        int                       `json:"total"`
	Source       string                    `json:"source"`
}
