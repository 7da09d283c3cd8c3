package project

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

type ProjectRepository interface {
	Insert(ctx context.Context, project models.Project) (string, error)
	Update(ctx context.Context, project models.Project) error
	GetByID(ctx context.Context, id string) (models.Project, error)
	GetByLegacyID(ctx context.Context, legacyID int) (models.Project, error)
}

type Repository struct {
	store  docstore.Store[ProjectDocument]
	logger ectologger.Logger
}

func NewRepository(store docstore.Store[ProjectDocument], logger ectologger.Logger) *Repository {
	return &Repository{
		store:  store,
		logger: logger,
	}
}

func (r *Repository) Insert(ctx context.Context, project models.Project) (string, error) {
	ctx, span := tracing.StartSpan(ctx, "ProjectRepository.Insert")
	defer span.End()

	doc, err := FromProject(project)
	if err != nil {
		return "", httperror.NewHTTPError(http.StatusBadRequest, "invalid project id")
	}

	id, err := r.store.Insert(ctx, doc)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).WithField("legacy_id", project.LegacyID).Error("error inserting project")
		return "", httperror.WrapError(http.StatusInternalServerError, err)
	}

	r.logger.WithContext(ctx).WithFields(map[string]any{
		"id":        id,
		"legacy_id": project.LegacyID,
	}).Info("Inserted project")
	return id, nil
}

func (r *Repository) Update(ctx context.Context, project models.Project) error {
	ctx, span := tracing.StartSpan(ctx, "ProjectRepository.Update")
	defer span.End()

	doc, err := FromProject(project)
	if err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid project id")
	}

	err = r.store.UpdateByID(ctx, project.ID, doc)
	if errors.Is(err, docstore.ErrNotFound) {
		return httperror.NewHTTPErrorf(http.StatusNotFound, "project %s not found", project.ID)
	}
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).WithField("id", project.ID).Error("error updating project")
		return httperror.WrapError(http.StatusInternalServerError, err)
	}

	r.logger.WithContext(ctx).WithFields(map[string]any{
		"id":        project.ID,
		"legacy_id": project.LegacyID,
	}).Info("Updated project")
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (models.Project, error) {
	ctx, span := tracing.StartSpan(ctx, "ProjectRepository.GetByID")
	defer span.End()

	doc, err := r.store.FindByID(ctx, id)
	return r.result(ctx, doc, err, "id", id)
}

func (r *Repository) GetByLegacyID(ctx context.Context, legacyID int) (models.Project, error) {
	ctx, span := tracing.StartSpan(ctx, "ProjectRepository.GetByLegacyID")
	defer span.End()

	doc, err := r.store.FindOne(ctx, bson.M{"legacyId": legacyID})
	return r.result(ctx, doc, err, "legacy_id", legacyID)
}

func (r *Repository) result(ctx context.Context, doc ProjectDocument, err error, key string, value any) (models.Project, error) {
	if errors.Is(err, docstore.ErrNotFound) || errors.Is(err, docstore.ErrInvalidID) {
		r.logger.WithContext(ctx).WithField(key, value).Debug("Project not found")
		return models.Project{}, httperror.NewHTTPError(http.StatusNotFound, "project not found")
	}
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).WithField(key, value).Error("error getting project")
		return models.Project{}, httperror.WrapError(http.StatusInternalServerError, err)
	}
	return ToProject(doc), nil
}
