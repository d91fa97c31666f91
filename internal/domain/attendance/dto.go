package attendance

import (
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type MarkRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	Comment    string `json:"comment"`
}

func (r *MarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

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

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else if !Status(r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: Present, Absent, Leave, OFF, WFH, DO",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BatchMarkRequest struct {
	Date    string           `json:"date"`
	Entries []BatchMarkEntry `json:"entries"`
}

type BatchMarkEntry struct {
	EmployeeID string `json:"employee_id"`
	Status     string `json:"status"`
	Comment    string `json:"comment"`
}

func (r *BatchMarkRequest) Validate() error {
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

	if len(r.Entries) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "entries",
			Message: "entries must not be empty",
		})
	}

	for _, e := range r.Entries {
		if validator.IsEmpty(e.EmployeeID) {
			errs = append(errs, validator.ValidationError{
				Field:   "entries",
				Message: "every entry requires an employee_id",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MarkResponse struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	EmployeeName  string `json:"employee_name,omitempty"`
	EmployeeEmpID string `json:"employee_emp_id,omitempty"`
	Date          string `json:"date"`
	Status        string `json:"status"`
	Comment       string `json:"comment,omitempty"`
	UpdatedBy     string `json:"updated_by,omitempty"`
	Created       bool   `json:"created"`
}

// BatchMarkResult reports one entry's outcome. A batch is not atomic, so
// each entry succeeds or fails on its own.
type BatchMarkResult struct {
	EmployeeID string `json:"employee_id"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
}

type BatchMarkResponse struct {
	Date    string            `json:"date"`
	Results []BatchMarkResult `json:"results"`
	Failed  int               `json:"failed"`
}
