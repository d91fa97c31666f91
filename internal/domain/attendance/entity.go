package attendance

import (
	"time"
)

// Status is the canonical attendance status.
type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusLeave   Status = "Leave"
	StatusOff     Status = "OFF"
	StatusWFH     Status = "WFH"
	StatusDayOff  Status = "DO"
)

// Statuses lists every canonical status in display order.
var Statuses = []Status{
	StatusPresent,
	StatusAbsent,
	StatusLeave,
	StatusOff,
	StatusWFH,
	StatusDayOff,
}

// IsValid reports whether s is one of the six canonical statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLeave, StatusOff, StatusWFH, StatusDayOff:
		return true
	}
	return false
}

// CommentApplies reports whether a comment is meaningful for this status.
// Only Leave and DO records carry comments; the rest are cleared on write.
func (s Status) CommentApplies() bool {
	return s == StatusLeave || s == StatusDayOff
}

// Record is a canonical attendance record. At most one exists per
// (EmployeeID, Date) pair.
//
// EmployeeName and EmployeeEmpID are a snapshot of the employee at write
// time. They are refreshed on every upsert but never re-synced on reads,
// so they can drift from the current employee record.
type Record struct {
	ID            string // empty until persisted
	EmployeeID    string
	Date          string // "YYYY-MM-DD", canonical sort and grouping key
	Status        Status
	Comment       string
	EmployeeName  string
	EmployeeEmpID string
	UpdatedBy     string
	Timestamp     time.Time // last write time
	CreatedAt     time.Time // first insert time, never overwritten
}

// CompositeKey is the deterministic document id for a record:
// "employeeID|date". Inserting under this key is what makes concurrent
// find-or-insert sequences collide instead of duplicating.
func CompositeKey(employeeID, date string) string {
	return employeeID + "|" + date
}
