package docstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/pkg/docstore"
)

const employeeCollection = "employees"

type employeeRepository struct {
	store docstore.Store
}

func NewEmployeeRepository(store docstore.Store) employee.Repository {
	return &employeeRepository{store: store}
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (string, error) {
	id, err := r.store.Insert(ctx, employeeCollection, encodeEmployee(emp))
	if err != nil {
		return "", fmt.Errorf("create employee: %w", err)
	}
	return id, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	doc, err := r.store.Get(ctx, employeeCollection, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("get employee: %w", err)
	}
	return decodeEmployee(doc), nil
}

func (r *employeeRepository) ExistsByEmpID(ctx context.Context, empID string) (bool, error) {
	filters := []docstore.Filter{
		{Field: "empId", Op: docstore.OpEq, Value: empID},
	}
	docs, err := r.store.Query(ctx, employeeCollection, filters, nil, 1)
	if err != nil {
		return false, fmt.Errorf("check emp id: %w", err)
	}
	return len(docs) > 0, nil
}

// List sorts by name in memory. The store orders strings case-sensitively,
// which would put "ali" after "Zara"; directory listings want
// case-insensitive order.
func (r *employeeRepository) List(ctx context.Context, status employee.Status) ([]employee.Employee, error) {
	var filters []docstore.Filter
	if status != "" {
		filters = append(filters, docstore.Filter{
			Field: "status", Op: docstore.OpEq, Value: string(status),
		})
	}
	docs, err := r.store.Query(ctx, employeeCollection, filters, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	employees := make([]employee.Employee, 0, len(docs))
	for _, doc := range docs {
		employees = append(employees, decodeEmployee(doc))
	}
	sort.SliceStable(employees, func(i, j int) bool {
		return strings.ToLower(employees[i].Name) < strings.ToLower(employees[j].Name)
	})
	return employees, nil
}

func (r *employeeRepository) Update(ctx context.Context, id string, emp employee.Employee) error {
	if err := r.store.Update(ctx, employeeCollection, id, encodeEmployee(emp)); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, employeeCollection, id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}

func encodeEmployee(emp employee.Employee) map[string]any {
	data := map[string]any{
		"empId":       emp.EmpID,
		"name":        emp.Name,
		"fatherName":  emp.FatherName,
		"email":       emp.Email,
		"cnic":        emp.CNIC,
		"mobile":      emp.Mobile,
		"designation": emp.Designation,
		"joiningDate": emp.JoiningDate,
		"status":      string(emp.Status),
	}
	if !emp.CreatedAt.IsZero() {
		data["createdAt"] = emp.CreatedAt.UTC().Format(time.RFC3339)
	}
	if !emp.UpdatedAt.IsZero() {
		data["updatedAt"] = emp.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return data
}

func decodeEmployee(doc docstore.Document) employee.Employee {
	emp := employee.Employee{
		ID:          doc.ID,
		EmpID:       docString(doc.Data, "empId"),
		Name:        docString(doc.Data, "name"),
		FatherName:  docString(doc.Data, "fatherName"),
		Email:       docString(doc.Data, "email"),
		CNIC:        docString(doc.Data, "cnic"),
		Mobile:      docString(doc.Data, "mobile"),
		Designation: docString(doc.Data, "designation"),
		JoiningDate: docString(doc.Data, "joiningDate"),
		Status:      employee.Status(docString(doc.Data, "status")),
	}
	if t, err := time.Parse(time.RFC3339, docString(doc.Data, "createdAt")); err == nil {
		emp.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, docString(doc.Data, "updatedAt")); err == nil {
		emp.UpdatedAt = t
	}
	return emp
}

func docString(data map[string]any, key string) string {
	if s, ok := data[key].(string); ok {
		return s
	}
	return ""
}
