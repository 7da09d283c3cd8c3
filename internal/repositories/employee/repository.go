package employee

import (
	"context"
	"errors"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/Ramsey-B/clover/pkg/docstore"
	"github.com/Ramsey-B/clover/pkg/models"
	"github.com/Ramsey-B/clover/pkg/tracing"
)

type EmployeeRepository interface {
	Insert(ctx context.Context, employee models.Employee) (string, error)
	Update(ctx context.Context, employee models.Employee) error
	GetByID(ctx context.Context, id string) (models.Employee, error)
	GetByProjectID(ctx context.Context, projectID string) ([]models.Employee, error)
}

type Repository struct {
	store  docstore.Store[EmployeeDocument]
	logger ectologger.Logger
}

func NewRepository(store docstore.Store[EmployeeDocument], logger ectologger.Logger) *Repository {
	return &Repository{
		store:  store,
		logger: logger,
	}
}

func (r *Repository) Insert(ctx context.Context, employee models.Employee) (string, error) {
	ctx, span := tracing.StartSpan(ctx, "EmployeeRepository.Insert")
	defer span.End()

	doc, err := FromEmployee(employee)
	if err != nil {
		return "", httperror.NewHTTPError(http.StatusBadRequest, "invalid employee id")
	}

	id, err := r.store.Insert(ctx, doc)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"project_id": employee.ProjectID,
			"number":     employee.Number,
		}).Error("error inserting employee")
		return "", httperror.WrapError(http.StatusInternalServerError, err)
	}
	return id, nil
}

func (r *Repository) Update(ctx context.Context, employee models.Employee) error {
	ctx, span := tracing.StartSpan(ctx, "EmployeeRepository.Update")
	defer span.End()

	doc, err := FromEmployee(employee)
	if err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid employee id")
	}

	err = r.store.UpdateByID(ctx, employee.ID, doc)
	if errors.Is(err, docstore.ErrNotFound) {
		return httperror.NewHTTPErrorf(http.StatusNotFound, "employee %s not found", employee.ID)
	}
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).WithField("id", employee.ID).Error("error updating employee")
		return httperror.WrapError(http.StatusInternalServerError, err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (models.Employee, error) {
	ctx, span := tracing.StartSpan(ctx, "EmployeeRepository.GetByID")
	defer span.End()

	doc, err := r.store.FindByID(ctx, id)
	if errors.Is(err, docstore.ErrNotFound) || errors.Is(err, docstore.ErrInvalidID) {
		return models.Employee{}, httperror.NewHTTPError(http.StatusNotFound, "employee not found")
	}
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).WithField("id", id).Error("error getting employee")
		return models.Employee{}, httperror.WrapError(http.StatusInternalServerError, err)
	}
	return ToEmployee(doc), nil
}

func (r *Repository) GetByProjectID(ctx context.Context, projectID string) ([]models.Employee, error) {
	ctx, span := tracing.StartSpan(ctx, "EmployeeRepository.GetByProjectID")
	defer span.End()

	docs, err := r.store.Find(ctx, bson.M{"projectId": projectID})
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).WithField("project_id", projectID).Error("error listing employees")
		return nil, httperror.WrapError(http.StatusInternalServerError, err)
	}

	employees := make([]models.Employee, 0, len(docs))
	for _, doc := range docs {
		employees = append(employees, ToEmployee(doc))
	}
	return employees, nil
}
