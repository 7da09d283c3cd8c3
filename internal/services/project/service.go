package project

import (
	"context"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/clover/internal/repositories/employee"
	"github.com/Ramsey-B/clover/internal/repositories/project"
	"github.com/Ramsey-B/clover/pkg/models"
	"github.com/Ramsey-B/clover/pkg/tracing"
	"github.com/Ramsey-B/clover/pkg/utils"
)

type ProjectService interface {
	Save(ctx context.Context, p models.Project) (string, error)
	GetByID(ctx context.Context, id string) (models.Project, error)
	GetByLegacyID(ctx context.Context, legacyID int) (models.ProjectDetail, error)
}

type Service struct {
	logger    ectologger.Logger
	repo      project.ProjectRepository
	employees employee.EmployeeRepository
}

func NewService(repo project.ProjectRepository, employees employee.EmployeeRepository, logger ectologger.Logger) *Service {
	return &Service{
		logger:    logger,
		repo:      repo,
		employees: employees,
	}
}

// Save inserts p when it has no id and updates it otherwise.
func (s *Service) Save(ctx context.Context, p models.Project) (string, error) {
	ctx, span := tracing.StartSpan(ctx, "project.Save")
	defer span.End()

	if _, err := utils.Validate(p); err != nil {
		return "", httperror.WrapError(http.StatusBadRequest, err)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}
	writeCtx := context.WithoutCancel(ctx)

	if p.ID == "" {
		return s.repo.Insert(writeCtx, p)
	}
	if err := s.repo.Update(writeCtx, p); err != nil {
		return "", err
	}
	return p.ID, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (models.Project, error) {
	ctx, span := tracing.StartSpan(ctx, "project.GetByID")
	defer span.End()

	return s.repo.GetByID(ctx, id)
}

// GetByLegacyID returns the project migrated from legacyID with its employees.
func (s *Service) GetByLegacyID(ctx context.Context, legacyID int) (models.ProjectDetail, error) {
	ctx, span := tracing.StartSpan(ctx, "project.GetByLegacyID")
	defer span.End()

	p, err := s.repo.GetByLegacyID(ctx, legacyID)
	if err != nil {
		return models.ProjectDetail{}, err
	}

	employees, err := s.employees.GetByProjectID(ctx, p.ID)
	if err != nil {
		return models.ProjectDetail{}, err
	}

	return models.ProjectDetail{Project: p, Employees: employees}, nil
}
