package response

import (
	"errors"
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/auth"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/domain/report"
	"github.com/attendly/attendance-backend-go/internal/pkg/docstore"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmpIDExists):
		Conflict(w, "Employee ID already exists")
	case errors.Is(err, employee.ErrInvalidStatus):
		BadRequest(w, "Status must be Active or Inactive", nil)
	case errors.Is(err, employee.ErrHasAttendance):
		Conflict(w, "Employee has attendance records and cannot be deleted")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrFutureDate):
		BadRequest(w, "Attendance cannot be marked for a future date", nil)
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Unknown attendance status", nil)
	case errors.Is(err, attendance.ErrMissingDate):
		BadRequest(w, "Record has no usable date", nil)
	case errors.Is(err, attendance.ErrUnknownStatus):
		BadRequest(w, "Record status could not be classified", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateRecord):
		Conflict(w, "Attendance already marked for this date")

	// Report domain errors
	case errors.Is(err, report.ErrInvalidDate):
		BadRequest(w, "Invalid report date", nil)
	case errors.Is(err, report.ErrInvalidMonth):
		BadRequest(w, "Invalid report month", nil)

	// Storage failures
	case errors.Is(err, docstore.ErrUnavailable):
		ServiceUnavailable(w, "Document store is unavailable")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
