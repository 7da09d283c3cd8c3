package areaactivity

import (
	"context"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/clover/internal/repositories/areaactivity"
	"github.com/Ramsey-B/clover/pkg/models"
	"github.com/Ramsey-B/clover/pkg/tracing"
	"github.com/Ramsey-B/clover/pkg/utils"
)

type AreaActivityService interface {
	Save(ctx context.Context, areas []models.AreaActivity) ([]string, error)
	GetByProjectID(ctx context.Context, projectID int) ([]models.AreaActivity, error)
}

type Service struct {
	logger ectologger.Logger
	repo   areaactivity.AreaActivityRepository
}

func NewService(repo areaactivity.AreaActivityRepository, logger ectologger.Logger) *Service {
	return &Service{
		logger: logger,
		repo:   repo,
	}
}

// Save upserts every area: an area whose id exists is updated, any other is
// inserted keeping its id. Areas missing from the list are left untouched.
// The whole list is validated before anything is written. Cancellation is
// observed between areas, a started write always completes.
func (s *Service) Save(ctx context.Context, areas []models.AreaActivity) ([]string, error) {
	ctx, span := tracing.StartSpan(ctx, "areaactivity.Save")
	defer span.End()

	if err := utils.ValidateSlice(areas); err != nil {
		return nil, httperror.WrapError(http.StatusBadRequest, err)
	}

	ids := make([]string, 0, len(areas))
	inserted, updated := 0, 0
	for _, area := range areas {
		if err := ctx.Err(); err != nil {
			return ids, err
		}

		exists := false
		if area.ID != "" {
			var err error
			exists, err = s.repo.Exists(ctx, area.ID)
			if err != nil {
				return ids, err
			}
		}

		writeCtx := context.WithoutCancel(ctx)
		if exists {
			if err := s.repo.Update(writeCtx, area); err != nil {
				return ids, err
			}
			ids = append(ids, area.ID)
			updated++
			continue
		}

		id, err := s.repo.Insert(writeCtx, area)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
		inserted++
	}

	s.logger.WithContext(ctx).WithFields(map[string]any{
		"inserted": inserted,
		"updated":  updated,
	}).Info("Saved area activities")
	return ids, nil
}

func (s *Service) GetByProjectID(ctx context.Context, projectID int) ([]models.AreaActivity, error) {
	ctx, span := tracing.StartSpan(ctx, "areaactivity.GetByProjectID")
	defer span.End()

	return s.repo.GetByProjectID(ctx, projectID)
}
