package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/pkg/docstore"
)

func employeeFixture(name string) employee.Employee {
	return employee.Employee{
		EmpID:       "E-" + name,
		Name:        name,
		Email:       name + "@attendly.io",
		Designation: "Engineer",
		Status:      employee.StatusActive,
	}
}

func TestEmployeeRepository_CreateAndGet(t *testing.T) {
	repo := NewEmployeeRepository(docstore.NewMemoryStore())
	ctx := context.Background()

	id, err := repo.Create(ctx, employeeFixture("Ayesha"))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ayesha", got.Name)
	assert.Equal(t, "E-Ayesha", got.EmpID)
	assert.Equal(t, employee.StatusActive, got.Status)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_ExistsByEmpID(t *testing.T) {
	repo := NewEmployeeRepository(docstore.NewMemoryStore())
	ctx := context.Background()

	_, err := repo.Create(ctx, employeeFixture("Ayesha"))
	require.NoError(t, err)

	exists, err := repo.ExistsByEmpID(ctx, "E-Ayesha")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmpID(ctx, "E-404")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestEmployeeRepository_UpdateAndDelete(t *testing.T) {
	repo := NewEmployeeRepository(docstore.NewMemoryStore())
	ctx := context.Background()

	id, err := repo.Create(ctx, employeeFixture("Ayesha"))
	require.NoError(t, err)

	emp, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	emp.Designation = "Lead Engineer"
	emp.Status = employee.StatusInactive

	require.NoError(t, repo.Update(ctx, id, emp))

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Lead Engineer", got.Designation)
	assert.Equal(t, employee.StatusInactive, got.Status)

	require.NoError(t, repo.Delete(ctx, id))
	_, err = repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, id), employee.ErrEmployeeNotFound)
}
