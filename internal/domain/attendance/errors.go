package attendance

import "errors"

// Attendance domain errors
var (
	// Normalization errors
	ErrMissingDate   = errors.New("record has no usable date field")
	ErrUnknownStatus = errors.New("record status could not be classified")
	ErrNotMarked     = errors.New("record has no status yet")

	// Upsert errors
	ErrFutureDate      = errors.New("cannot mark attendance for a future date")
	ErrInvalidStatus   = errors.New("status must be one of: Present, Absent, Leave, OFF, WFH, DO")
	ErrRecordNotFound  = errors.New("attendance record not found")
	ErrDuplicateRecord = errors.New("attendance record already exists for this employee and date")
)
