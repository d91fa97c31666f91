package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/pkg/docstore"
	repo "github.com/attendly/attendance-backend-go/internal/repository/docstore"
)

type dashboardFixture struct {
	svc            *DashboardServiceImpl
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
}

func newDashboardFixture(t *testing.T) *dashboardFixture {
	t.Helper()
	store := docstore.NewMemoryStore()
	attendanceRepo := repo.NewAttendanceRepository(store)
	employeeRepo := repo.NewEmployeeRepository(store)

	svc := NewDashboardService(attendanceRepo, employeeRepo).(*DashboardServiceImpl)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	}
	return &dashboardFixture{
		svc:            svc,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

func (f *dashboardFixture) addEmployee(t *testing.T, name string) string {
	t.Helper()
	id, err := f.employeeRepo.Create(context.Background(), employee.Employee{
		EmpID:  "EMP-" + name,
		Name:   name,
		Status: employee.StatusActive,
	})
	require.NoError(t, err)
	return id
}

func (f *dashboardFixture) mark(t *testing.T, employeeID, name, date string, status attendance.Status, ts time.Time) {
	t.Helper()
	_, err := f.attendanceRepo.Insert(context.Background(), attendance.Record{
		EmployeeID:   employeeID,
		Date:         date,
		Status:       status,
		EmployeeName: name,
		Timestamp:    ts,
	})
	require.NoError(t, err)
}

func TestGetDashboard_TodayStats(t *testing.T) {
	f := newDashboardFixture(t)
	ctx := context.Background()

	ali := f.addEmployee(t, "Ali")
	zara := f.addEmployee(t, "Zara")
	f.addEmployee(t, "Bilal") // never marked

	ts := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	f.mark(t, ali, "Ali", "2026-08-28", attendance.StatusPresent, ts)
	f.mark(t, zara, "Zara", "2026-08-28", attendance.StatusLeave, ts)
	f.mark(t, ali, "Ali", "2026-08-27", attendance.StatusPresent, ts) // yesterday

	resp, err := f.svc.GetDashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, "2026-08-28", resp.Today.Date)
	assert.Equal(t, 3, resp.Today.Employees)
	assert.Equal(t, 2, resp.Today.Marked)
	assert.Equal(t, 1, resp.Today.Unmarked)
	assert.Equal(t, 1, resp.Today.Counts[attendance.StatusPresent])
	assert.Equal(t, 1, resp.Today.Counts[attendance.StatusLeave])
}

func TestGetDashboard_ActivityUsesCurrentNames(t *testing.T) {
	f := newDashboardFixture(t)
	ctx := context.Background()

	id := f.addEmployee(t, "Ali")
	f.mark(t, id, "Ali", "2026-08-28", attendance.StatusPresent,
		time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC))

	// rename after the record stored its snapshot
	emp, err := f.employeeRepo.GetByID(ctx, id)
	require.NoError(t, err)
	emp.Name = "Ali Raza"
	require.NoError(t, f.employeeRepo.Update(ctx, id, emp))

	resp, err := f.svc.GetDashboard(ctx)
	require.NoError(t, err)

	require.Len(t, resp.RecentActivity, 1)
	assert.Equal(t, "Ali Raza", resp.RecentActivity[0].EmployeeName)
	assert.Equal(t, "2026-08-28T09:00:00Z", resp.RecentActivity[0].Timestamp)
}

func TestGetDashboard_RecentActivityOrder(t *testing.T) {
	f := newDashboardFixture(t)
	ctx := context.Background()

	id := f.addEmployee(t, "Ali")
	f.mark(t, id, "Ali", "2026-08-26", attendance.StatusPresent,
		time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC))
	f.mark(t, id, "Ali", "2026-08-28", attendance.StatusPresent,
		time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC))
	f.mark(t, id, "Ali", "2026-08-27", attendance.StatusPresent,
		time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC))

	resp, err := f.svc.GetDashboard(ctx)
	require.NoError(t, err)

	require.Len(t, resp.RecentActivity, 3)
	assert.Equal(t, "2026-08-28", resp.RecentActivity[0].Date)
	assert.Equal(t, "2026-08-27", resp.RecentActivity[1].Date)
	assert.Equal(t, "2026-08-26", resp.RecentActivity[2].Date)
}
