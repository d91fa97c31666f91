package dashboard

import "github.com/attendly/attendance-backend-go/internal/domain/attendance"

// ========================================
// DASHBOARD DTOs
// ========================================

type TodayStats struct {
	Date         string                    `json:"date"`
	Employees    int                       `json:"employees"`
	Marked       int                       `json:"marked"`
	Unmarked     int                       `json:"unmarked"`
	Counts       map[attendance.Status]int `json:"counts"`
	Unrecognized int                       `json:"unrecognized"`
}

type ActivityEntry struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	UpdatedBy    string `json:"updated_by,omitempty"`
	Timestamp    string `json:"timestamp,omitempty"`
}

type DashboardResponse struct {
	Today          TodayStats      `json:"today"`
	RecentActivity []ActivityEntry `json:"recent_activity"`
}
