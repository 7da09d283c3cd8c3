package areaactivity

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

type AreaActivityRepository interface {
	Insert(ctx context.Context, area models.AreaActivity) (string, error)
	Update(ctx context.Context, area models.AreaActivity) error
	Exists(ctx context.Context, id string) (bool, error)
	GetByProjectID(ctx context.Context, projectID int) ([]models.AreaActivity, error)
}

type Repository struct {
	store  docstore.Store[AreaActivityDocument]
	logger ectologger.Logger
}

func NewRepository(store docstore.Store[AreaActivityDocument], logger ectologger.Logger) *Repository {
	return &Repository{
		store:  store,
		logger: logger,
	}
}

// Insert stores area, keeping area.ID when it is set.
func (r *Repository) Insert(ctx context.Context, area models.AreaActivity) (string, error) {
	ctx, span := tracing.StartSpan(ctx, "AreaActivityRepository.Insert")
	defer span.End()

	doc, err := FromAreaActivity(area)
	if err != nil {
		return "", httperror.NewHTTPError(http.StatusBadRequest, "invalid area activity id")
	}

	id, err := r.store.Insert(ctx, doc)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"name":       area.Name,
			"project_id": area.ProjectID,
		}).Error("error inserting area activity")
		return "", httperror.WrapError(http.StatusInternalServerError, err)
	}
	return id, nil
}

func (r *Repository) Update(ctx context.Context, area models.AreaActivity) error {
	ctx, span := tracing.StartSpan(ctx, "AreaActivityRepository.Update")
	defer span.End()

	doc, err := FromAreaActivity(area)
	if err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid area activity id")
	}

	err = r.store.UpdateByID(ctx, area.ID, doc)
	if errors.Is(err, docstore.ErrNotFound) {
		return httperror.NewHTTPErrorf(http.StatusNotFound, "area activity %s not found", area.ID)
	}
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).WithField("id", area.ID).Error("error updating area activity")
		return httperror.WrapError(http.StatusInternalServerError, err)
	}
	return nil
}

func (r *Repository) Exists(ctx context.Context, id string) (bool, error) {
	ctx, span := tracing.StartSpan(ctx, "AreaActivityRepository.Exists")
	defer span.End()

	_, err := r.store.FindByID(ctx, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return false, nil
	}
	if errors.Is(err, docstore.ErrInvalidID) {
		return false, httperror.NewHTTPError(http.StatusBadRequest, "invalid area activity id")
	}
	if err != nil {
		return false, httperror.WrapError(http.StatusInternalServerError, err)
	}
	return true, nil
}

func (r *Repository) GetByProjectID(ctx context.Context, projectID int) ([]models.AreaActivity, error) {
	ctx, span := tracing.StartSpan(ctx, "AreaActivityRepository.GetByProjectID")
	defer span.End()

	docs, err := r.store.Find(ctx, bson.M{"projectId": projectID})
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).WithField("project_id", projectID).Error("error listing area activities")
		return nil, httperror.WrapError(http.StatusInternalServerError, err)
	}

	areas := make([]models.AreaActivity, 0, len(docs))
	for _, doc := range docs {
		areas = append(areas, ToAreaActivity(doc))
	}
	return areas, nil
}
