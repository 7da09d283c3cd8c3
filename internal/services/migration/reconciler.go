package migration

import (
	"context"
	"strings"

	"github.com/Ramsey-B/clover/internal/services/areaactivity"
	"github.com/Ramsey-B/clover/internal/services/project"
	"github.com/Ramsey-B/clover/pkg/errors"
	"github.com/Ramsey-B/clover/pkg/models"
	"github.com/Ramsey-B/clover/pkg/tracing"
)

// Reconciler finds target entities created by earlier runs by natural key.
type Reconciler struct {
	projects project.ProjectService
	areas    areaactivity.AreaActivityService
}

func NewReconciler(projects project.ProjectService, areas areaactivity.AreaActivityService) *Reconciler {
	return &Reconciler{
		projects: projects,
		areas:    areas,
	}
}

// ResolveProject returns the migrated project for legacyProjectID with its
// linked employees. ok is false when the project was never migrated.
func (r *Reconciler) ResolveProject(ctx context.Context, legacyProjectID int) (models.ProjectDetail, bool, error) {
	ctx, span := tracing.StartSpan(ctx, "Reconciler.ResolveProject")
	defer span.End()

	detail, err := r.projects.GetByLegacyID(ctx, legacyProjectID)
	if errors.IsNotFound(err) {
		return models.ProjectDetail{}, false, nil
	}
	if err != nil {
		return models.ProjectDetail{}, false, err
	}
	return detail, true, nil
}

// ResolveProjectID returns the target id of the project migrated from
// legacyProjectID.
func (r *Reconciler) ResolveProjectID(ctx context.Context, legacyProjectID int) (string, bool, error) {
	detail, ok, err := r.ResolveProject(ctx, legacyProjectID)
	if err != nil || !ok {
		return "", false, err
	}
	return detail.ID, true, nil
}

// ResolveAreaIDs maps area name to target id for the areas already migrated
// for the project. Names are case-sensitive, blank names are skipped and the
// first area of a duplicated name wins.
func (r *Reconciler) ResolveAreaIDs(ctx context.Context, legacyProjectID int) (map[string]string, error) {
	ctx, span := tracing.StartSpan(ctx, "Reconciler.ResolveAreaIDs")
	defer span.End()

	existing, err := r.areas.GetByProjectID(ctx, legacyProjectID)
	if err != nil {
		return nil, err
	}
	return IndexAreaIDs(existing), nil
}

func IndexAreaIDs(areas []models.AreaActivity) map[string]string {
	ids := make(map[string]string, len(areas))
	for _, area := range areas {
		if strings.TrimSpace(area.Name) == "" || area.ID == "" {
			continue
		}
		if _, seen := ids[area.Name]; seen {
			continue
		}
		ids[area.Name] = area.ID
	}
	return ids
}

// ResolveEmployeeByNumber finds the employee occupying slot.
func ResolveEmployeeByNumber(existing []models.Employee, slot int) (string, bool) {
	for _, employee := range existing {
		if employee.Number == slot {
			return employee.ID, true
		}
	}
	return "", false
}
