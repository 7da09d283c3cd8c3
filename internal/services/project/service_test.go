package project

import (
	"context"
	"net/http"
	"testing"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/clover/internal/repositories/employee"
	"github.com/Ramsey-B/clover/internal/repositories/project"
	"github.com/Ramsey-B/clover/pkg/docstore"
	"github.com/Ramsey-B/clover/pkg/errors"
	"github.com/Ramsey-B/clover/pkg/models"
)

func TestGetByLegacyID_LoadsEmployees(t *testing.T) {
	logger := ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
	employeeRepo := employee.NewRepository(docstore.NewMemory[employee.EmployeeDocument](), logger)
	svc := NewService(project.NewRepository(docstore.NewMemory[project.ProjectDocument](), logger), employeeRepo, logger)
	ctx := context.Background()

	id, err := svc.Save(ctx, models.Project{LegacyID: 4698, Name: "Torre"})
	require.NoError(t, err)

	_, err = employeeRepo.Insert(ctx, models.Employee{FirstName: "Funcionario 1", Number: 1, ProjectID: id})
	require.NoError(t, err)
	_, err = employeeRepo.Insert(ctx, models.Employee{FirstName: "Funcionario 9", Number: 9, ProjectID: "other"})
	require.NoError(t, err)

	detail, err := svc.GetByLegacyID(ctx, 4698)
	require.NoError(t, err)
	assert.Equal(t, id, detail.ID)
	assert.Equal(t, "Torre", detail.Name)
	require.Len(t, detail.Employees, 1)
	assert.Equal(t, 1, detail.Employees[0].Number)
}

func TestGetByLegacyID_NotFound(t *testing.T) {
	logger := ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
	svc := NewService(
		project.NewRepository(docstore.NewMemory[project.ProjectDocument](), logger),
		employee.NewRepository(docstore.NewMemory[employee.EmployeeDocument](), logger),
		logger,
	)

	_, err := svc.GetByLegacyID(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, http.StatusNotFound, httperror.GetStatusCode(err))
}

func TestSave_UpdateKeepsID(t *testing.T) {
	logger := ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
	store := docstore.NewMemory[project.ProjectDocument]()
	svc := NewService(project.NewRepository(store, logger), employee.NewRepository(docstore.NewMemory[employee.EmployeeDocument](), logger), logger)
	ctx := context.Background()

	id, err := svc.Save(ctx, models.Project{LegacyID: 5, Name: "A"})
	require.NoError(t, err)

	again, err := svc.Save(ctx, models.Project{ID: id, LegacyID: 5, Name: "B"})
	require.NoError(t, err)
	assert.Equal(t, id, again)
	assert.Equal(t, 1, store.Len())

	p, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "B", p.Name)
}
