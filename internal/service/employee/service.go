package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo   employee.Repository
	attendanceRepo attendance.Repository
	now            func() time.Time
}

func NewEmployeeService(
	employeeRepo employee.Repository,
	attendanceRepo attendance.Repository,
) employee.Service {
	return &EmployeeServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

// CreateEmployee implements employee.Service.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.employeeRepo.ExistsByEmpID(ctx, req.EmpID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee ID: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmpIDExists
	}

	status := employee.Status(req.Status)
	if status == "" {
		status = employee.StatusActive
	}

	now := s.now().UTC()
	emp := employee.Employee{
		EmpID:       req.EmpID,
		Name:        req.Name,
		FatherName:  req.FatherName,
		Email:       req.Email,
		CNIC:        req.CNIC,
		Mobile:      req.Mobile,
		Designation: req.Designation,
		JoiningDate: req.JoiningDate,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}
	emp.ID = id

	return mapEmployeeToResponse(emp), nil
}

// GetEmployee implements employee.Service.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return mapEmployeeToResponse(emp), nil
}

// ListEmployees implements employee.Service.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, status string) (employee.ListEmployeesResponse, error) {
	st := employee.Status(status)
	if status != "" && !st.IsValid() {
		return employee.ListEmployeesResponse{}, employee.ErrInvalidStatus
	}

	employees, err := s.employeeRepo.List(ctx, st)
	if err != nil {
		return employee.ListEmployeesResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	resp := employee.ListEmployeesResponse{
		Employees: make([]employee.EmployeeResponse, 0, len(employees)),
		Total:     len(employees),
	}
	for _, emp := range employees {
		resp.Employees = append(resp.Employees, mapEmployeeToResponse(emp))
	}
	return resp, nil
}

// UpdateEmployee implements employee.Service. EmpID is immutable; the rest
// of the profile is replaced wholesale.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	emp.Name = req.Name
	emp.FatherName = req.FatherName
	emp.Email = req.Email
	emp.CNIC = req.CNIC
	emp.Mobile = req.Mobile
	emp.Designation = req.Designation
	emp.JoiningDate = req.JoiningDate
	if req.Status != "" {
		emp.Status = employee.Status(req.Status)
	}
	emp.UpdatedAt = s.now().UTC()

	if err := s.employeeRepo.Update(ctx, id, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return mapEmployeeToResponse(emp), nil
}

// DeleteEmployee implements employee.Service. An employee with attendance
// history cannot be removed, otherwise reports would reference a ghost.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}

	count, err := s.attendanceRepo.CountByEmployee(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count attendance records: %w", err)
	}
	if count > 0 {
		return employee.ErrHasAttendance
	}

	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:          emp.ID,
		EmpID:       emp.EmpID,
		Name:        emp.Name,
		FatherName:  emp.FatherName,
		Email:       emp.Email,
		CNIC:        emp.CNIC,
		Mobile:      emp.Mobile,
		Designation: emp.Designation,
		JoiningDate: emp.JoiningDate,
		Status:      string(emp.Status),
	}
}
