package employee

import (
	"context"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/clover/internal/repositories/employee"
	"github.com/Ramsey-B/clover/pkg/models"
	"github.com/Ramsey-B/clover/pkg/tracing"
	"github.com/Ramsey-B/clover/pkg/utils"
)

type EmployeeService interface {
	Save(ctx context.Context, e models.Employee) (string, error)
	GetByID(ctx context.Context, id string) (models.Employee, error)
	GetByProjectID(ctx context.Context, projectID string) ([]models.Employee, error)
}

type Service struct {
	logger ectologger.Logger
	repo   employee.EmployeeRepository
}

func NewService(repo employee.EmployeeRepository, logger ectologger.Logger) *Service {
	return &Service{
		logger: logger,
		repo:   repo,
	}
}

func (s *Service) Save(ctx context.Context, e models.Employee) (string, error) {
	ctx, span := tracing.StartSpan(ctx, "employee.Save")
	defer span.End()

	if _, err := utils.Validate(e); err != nil {
		return "", httperror.WrapError(http.StatusBadRequest, err)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}
	writeCtx := context.WithoutCancel(ctx)

	if e.ID == "" {
		return s.repo.Insert(writeCtx, e)
	}
	if err := s.repo.Update(writeCtx, e); err != nil {
		return "", err
	}
	return e.ID, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (models.Employee, error) {
	ctx, span := tracing.StartSpan(ctx, "employee.GetByID")
	defer span.End()

	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByProjectID(ctx context.Context, projectID string) ([]models.Employee, error) {
	ctx, span := tracing.StartSpan(ctx, "employee.GetByProjectID")
	defer span.End()

	if projectID == "" {
		return nil, httperror.NewHTTPError(http.StatusBadRequest, "project id is required")
	}
	return s.repo.GetByProjectID(ctx, projectID)
}
