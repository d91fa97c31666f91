package employee

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

func newEmployeeFixture(t *testing.T) (employee.Service, attendance.Repository) {
	t.Helper()
	store := docstore.NewMemoryStore()
	attendanceRepo := repo.NewAttendanceRepository(store)
	return NewEmployeeService(repo.NewEmployeeRepository(store), attendanceRepo), attendanceRepo
}

func createRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		EmpID:       "E-104",
		Name:        "Ayesha Khan",
		FatherName:  "Imran Khan",
		Email:       "ayesha@attendly.io",
		CNIC:        "35202-1234567-1",
		Mobile:      "0300-1234567",
		Designation: "Engineer",
		JoiningDate: "2024-01-15",
		Status:      "Active",
	}
}

func TestCreateEmployee(t *testing.T) {
	svc, _ := newEmployeeFixture(t)
	ctx := context.Background()

	resp, err := svc.CreateEmployee(ctx, createRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "E-104", resp.EmpID)
	assert.Equal(t, "Active", resp.Status)

	got, err := svc.GetEmployee(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, resp, got)
}

func TestCreateEmployee_DefaultsToActive(t *testing.T) {
	svc, _ := newEmployeeFixture(t)

	req := createRequest()
	req.Status = ""
	resp, err := svc.CreateEmployee(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Active", resp.Status)
}

func TestCreateEmployee_DuplicateEmpID(t *testing.T) {
	svc, _ := newEmployeeFixture(t)
	ctx := context.Background()

	_, err := svc.CreateEmployee(ctx, createRequest())
	require.NoError(t, err)

	dup := createRequest()
	dup.Name = "Someone Else"
	_, err = svc.CreateEmployee(ctx, dup)
	assert.ErrorIs(t, err, employee.ErrEmpIDExists)
}

func TestCreateEmployee_Validation(t *testing.T) {
	svc, _ := newEmployeeFixture(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*employee.CreateEmployeeRequest)
	}{
		{"missing emp_id", func(r *employee.CreateEmployeeRequest) { r.EmpID = "" }},
		{"missing name", func(r *employee.CreateEmployeeRequest) { r.Name = "" }},
		{"bad cnic", func(r *employee.CreateEmployeeRequest) { r.CNIC = "3520212345671" }},
		{"bad mobile", func(r *employee.CreateEmployeeRequest) { r.Mobile = "03001234567" }},
		{"bad status", func(r *employee.CreateEmployeeRequest) { r.Status = "Retired" }},
		{"bad joining date", func(r *employee.CreateEmployeeRequest) { r.JoiningDate = "15-01-2024" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createRequest()
			tt.mutate(&req)
			_, err := svc.CreateEmployee(ctx, req)
			assert.Error(t, err)
		})
	}
}

func TestUpdateEmployee(t *testing.T) {
	svc, _ := newEmployeeFixture(t)
	ctx := context.Background()

	created, err := svc.CreateEmployee(ctx, createRequest())
	require.NoError(t, err)

	resp, err := svc.UpdateEmployee(ctx, created.ID, employee.UpdateEmployeeRequest{
		Name:        "Ayesha Khan",
		Designation: "Lead Engineer",
		Status:      "Inactive",
	})
	require.NoError(t, err)
	assert.Equal(t, "Lead Engineer", resp.Designation)
	assert.Equal(t, "Inactive", resp.Status)
	// emp_id never changes on update
	assert.Equal(t, "E-104", resp.EmpID)
}

func TestUpdateEmployee_NotFound(t *testing.T) {
	svc, _ := newEmployeeFixture(t)

	_, err := svc.UpdateEmployee(context.Background(), "missing", employee.UpdateEmployeeRequest{
		Name: "Anyone",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestListEmployees_StatusFilter(t *testing.T) {
	svc, _ := newEmployeeFixture(t)
	ctx := context.Background()

	_, err := svc.CreateEmployee(ctx, createRequest())
	require.NoError(t, err)

	second := createRequest()
	second.EmpID = "E-105"
	second.Name = "Bilal Ahmed"
	second.Status = "Inactive"
	second.Email = "bilal@attendly.io"
	_, err = svc.CreateEmployee(ctx, second)
	require.NoError(t, err)

	all, err := svc.ListEmployees(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)

	active, err := svc.ListEmployees(ctx, "Active")
	require.NoError(t, err)
	require.Equal(t, 1, active.Total)
	assert.Equal(t, "Ayesha Khan", active.Employees[0].Name)

	_, err = svc.ListEmployees(ctx, "Retired")
	assert.ErrorIs(t, err, employee.ErrInvalidStatus)
}

func TestDeleteEmployee(t *testing.T) {
	svc, _ := newEmployeeFixture(t)
	ctx := context.Background()

	created, err := svc.CreateEmployee(ctx, createRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEmployee(ctx, created.ID))

	_, err = svc.GetEmployee(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDeleteEmployee_BlockedByAttendance(t *testing.T) {
	svc, attendanceRepo := newEmployeeFixture(t)
	ctx := context.Background()

	created, err := svc.CreateEmployee(ctx, createRequest())
	require.NoError(t, err)

	_, err = attendanceRepo.Insert(ctx, attendance.Record{
		EmployeeID: created.ID,
		Date:       "2026-08-27",
		Status:     attendance.StatusPresent,
		Timestamp:  time.Now(),
	})
	require.NoError(t, err)

	err = svc.DeleteEmployee(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrHasAttendance)

	// still there
	_, err = svc.GetEmployee(ctx, created.ID)
	require.NoError(t, err)
}
