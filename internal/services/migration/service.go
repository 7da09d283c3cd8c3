// Package migration moves one legacy project into the document store:
// project, employees, then areas with their task items.
package migration

import (
	"context"
	"fmt"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/google/uuid"

	"github.com/Ramsey-B/clover/internal/repositories/legacy"
	"github.com/Ramsey-B/clover/internal/services/areaactivity"
	"github.com/Ramsey-B/clover/internal/services/employee"
	"github.com/Ramsey-B/clover/internal/services/project"
	clovercontext "github.com/Ramsey-B/clover/pkg/context"
	"github.com/Ramsey-B/clover/pkg/errors"
	"github.com/Ramsey-B/clover/pkg/metrics"
	"github.com/Ramsey-B/clover/pkg/models"
	"github.com/Ramsey-B/clover/pkg/tracing"
)

type MigrationService interface {
	MigrateProject(ctx context.Context, legacyProjectID int, descriptor string) models.MigrationResult
}

// ProjectLocker serializes runs of the same legacy project. LockProject must
// return an error wrapping errors.ErrProjectLocked when another run holds the
// project; any other error is treated as the locker being unreachable.
type ProjectLocker interface {
	LockProject(ctx context.Context, legacyProjectID int) (release func(context.Context) error, err error)
}

// Publisher announces finished runs.
type Publisher interface {
	EmitProjectMigrated(ctx context.Context, report models.MigrationReport) error
	EmitProjectMigrationFailed(ctx context.Context, legacyProjectID int, kind, message string) error
}

type Option func(*Service)

func WithLocker(locker ProjectLocker) Option {
	return func(s *Service) { s.locker = locker }
}

func WithPublisher(publisher Publisher) Option {
	return func(s *Service) { s.publisher = publisher }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

type Service struct {
	sources    legacy.SourceFactory
	projects   project.ProjectService
	employees  employee.EmployeeService
	areas      areaactivity.AreaActivityService
	reconciler *Reconciler
	locker     ProjectLocker
	publisher  Publisher
	logger     ectologger.Logger
	now        func() time.Time
}

func NewService(
	sources legacy.SourceFactory,
	projects project.ProjectService,
	employees employee.EmployeeService,
	areas areaactivity.AreaActivityService,
	logger ectologger.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		sources:    sources,
		projects:   projects,
		employees:  employees,
		areas:      areas,
		reconciler: NewReconciler(projects, areas),
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MigrateProject runs the whole pipeline for one legacy project. It never
// returns an error: every failure is folded into the result.
func (s *Service) MigrateProject(ctx context.Context, legacyProjectID int, descriptor string) (result models.MigrationResult) {
	ctx, span := tracing.StartSpan(ctx, "migration.MigrateProject")
	defer span.End()

	runID := uuid.New().String()
	ctx = clovercontext.SetRunID(ctx, runID)
	ctx = clovercontext.SetLegacyProjectID(ctx, legacyProjectID)
	rep := newReporter(ctx, s.logger, legacyProjectID, runID)
	start := time.Now()

	defer func() {
		if rec := recover(); rec != nil {
			result = s.fail(ctx, legacyProjectID, errors.Newf(errors.KindUnexpected, "unexpected error during migration: %v", rec))
		}
		status := "success"
		if !result.Success {
			status = "failure"
		}
		metrics.ObserveRun(status, time.Since(start))
	}()

	rep.info("Starting project migration", nil)

	report, err := s.runLocked(ctx, legacyProjectID, descriptor, rep)
	if err != nil {
		return s.fail(ctx, legacyProjectID, err)
	}

	report.Warnings = rep.warnings
	metrics.ObserveWritten(report.AreasMigrated, report.TotalItems)
	rep.info("Project migration finished", map[string]any{
		"areas_migrated":     report.AreasMigrated,
		"total_items":        report.TotalItems,
		"employees_migrated": report.EmployeesMigrated,
		"warnings":           len(report.Warnings),
	})

	if s.publisher != nil {
		if err := s.publisher.EmitProjectMigrated(context.WithoutCancel(ctx), report); err != nil {
			s.logger.WithContext(ctx).WithError(err).Warn("failed to publish project migrated event")
		}
	}

	return models.MigrationResult{
		Success: true,
		Message: fmt.Sprintf("migrated %d areas with %d items for project %d", report.AreasMigrated, report.TotalItems, legacyProjectID),
		Data:    &report,
	}
}

// runLocked holds the project lock around run. The lock is released before
// returning so a failed release still lands in the report warnings.
func (s *Service) runLocked(ctx context.Context, legacyProjectID int, descriptor string, rep *reporter) (report models.MigrationReport, err error) {
	if s.locker == nil {
		return s.run(ctx, legacyProjectID, descriptor, rep)
	}

	release, err := s.locker.LockProject(ctx, legacyProjectID)
	if err != nil {
		if errors.IsProjectLocked(err) {
			return report, errors.Wrap(errors.KindConflict, fmt.Sprintf("migration already running for project %d", legacyProjectID), err)
		}
		return report, errors.Wrap(errors.KindUnexpected, fmt.Sprintf("error acquiring migration lock for project %d", legacyProjectID), err)
	}
	defer func() {
		if releaseErr := release(context.WithoutCancel(ctx)); releaseErr != nil {
			rep.warn(releaseErr, "failed to release migration lock")
		}
	}()

	return s.run(ctx, legacyProjectID, descriptor, rep)
}

func (s *Service) run(ctx context.Context, legacyProjectID int, descriptor string, rep *reporter) (models.MigrationReport, error) {
	report := models.MigrationReport{ProjectID: legacyProjectID}

	source, err := s.sources.Open(ctx, descriptor)
	if err != nil {
		return report, errors.Wrap(errors.KindSourceUnavailable, "legacy source connection error", err)
	}
	defer func() {
		if err := source.Close(); err != nil {
			rep.warn(err, "failed to close legacy source")
		}
	}()

	legacyProject, err := source.GetProject(ctx, legacyProjectID)
	if err != nil {
		return report, errors.Wrap(errors.KindSourceUnavailable, "legacy source error", err)
	}
	if legacyProject == nil {
		return report, errors.Newf(errors.KindNotFound, "project %d not found in source", legacyProjectID)
	}

	if err := s.upsertProject(ctx, *legacyProject); err != nil {
		return report, err
	}

	detail, linked, err := s.reconciler.ResolveProject(ctx, legacyProjectID)
	if err := checkpoint(ctx); err != nil {
		return report, err
	}
	switch {
	case err != nil:
		rep.warn(err, "project linkage unavailable")
	case !linked:
		rep.warn(nil, "project linkage unavailable: project %d not found after save", legacyProjectID)
	default:
		report.TargetProjectID = detail.ID
	}

	legacyEmployees, err := source.GetEmployees(ctx, legacyProjectID)
	if err != nil {
		return report, errors.Wrap(errors.KindSourceUnavailable, "legacy source error", err)
	}
	report.EmployeesMigrated = len(legacyEmployees)

	var defaultEmployeeID *string
	if linked {
		if err := s.upsertEmployees(ctx, detail, legacyEmployees, rep); err != nil {
			return report, err
		}
		defaultEmployeeID, err = s.defaultEmployee(ctx, detail.ID, rep)
		if err != nil {
			return report, err
		}
	} else if len(legacyEmployees) > 0 {
		rep.warn(nil, "skipped %d employees: project linkage unavailable", len(legacyEmployees))
	}

	legacyAreas, err := source.GetAreas(ctx, legacyProjectID)
	if err != nil {
		return report, errors.Wrap(errors.KindSourceUnavailable, "legacy source error", err)
	}
	if len(legacyAreas) == 0 {
		return report, errors.Newf(errors.KindNotFound, "no areas found for project %d in source", legacyProjectID)
	}

	legacyTasks, err := source.GetTasks(ctx, legacyProjectID)
	if err != nil {
		return report, errors.Wrap(errors.KindSourceUnavailable, "legacy source error", err)
	}

	areas := BuildAreaActivities(legacyAreas, legacyTasks, legacyProjectID, defaultEmployeeID)

	existing, err := s.reconciler.ResolveAreaIDs(ctx, legacyProjectID)
	if err != nil {
		return report, errors.Wrap(errors.KindWriteFailure, "error resolving existing areas", err)
	}
	reused := ApplyExistingIDs(areas, existing)
	rep.info("Built area activities", map[string]any{
		"areas":  len(areas),
		"reused": reused,
	})

	if err := checkpoint(ctx); err != nil {
		return report, err
	}
	if _, err := s.areas.Save(ctx, areas); err != nil {
		return report, errors.Wrap(errors.KindWriteFailure, "error saving area activities", err)
	}

	report.AreasMigrated = len(areas)
	report.TotalItems = CountItems(areas)
	report.EmployeeIDAssigned = defaultEmployeeID != nil
	report.EmployeeID = defaultEmployeeID
	return report, nil
}

func (s *Service) upsertProject(ctx context.Context, legacyProject models.LegacyProject) error {
	existingID, _, err := s.reconciler.ResolveProjectID(ctx, legacyProject.WorkHeaderID)
	if err != nil {
		return errors.Wrap(errors.KindWriteFailure, "error resolving project", err)
	}
	if err := checkpoint(ctx); err != nil {
		return err
	}

	p := BuildProject(legacyProject, existingID, s.now())
	if _, err := s.projects.Save(ctx, p); err != nil {
		return errors.Wrap(errors.KindWriteFailure, "error saving project", err)
	}
	return nil
}

// upsertEmployees writes every legacy employee. A failed employee is
// reported and skipped, only cancellation stops the loop.
func (s *Service) upsertEmployees(ctx context.Context, detail models.ProjectDetail, legacyEmployees []models.LegacyEmployee, rep *reporter) error {
	for _, legacyEmployee := range legacyEmployees {
		if err := checkpoint(ctx); err != nil {
			return err
		}

		existingID, _ := ResolveEmployeeByNumber(detail.Employees, legacyEmployee.Slot)
		e := BuildEmployee(legacyEmployee, existingID, detail.ID)
		if _, err := s.employees.Save(ctx, e); err != nil {
			if cerr := checkpoint(ctx); cerr != nil {
				return cerr
			}
			metrics.EmployeeFailuresTotal.Inc()
			rep.warn(err, "failed to save employee %d", legacyEmployee.Slot)
		}
	}
	return nil
}

// defaultEmployee returns the first employee linked to the project, nil
// when there is none or the lookup fails.
func (s *Service) defaultEmployee(ctx context.Context, projectID string, rep *reporter) (*string, error) {
	employees, err := s.employees.GetByProjectID(ctx, projectID)
	if cerr := checkpoint(ctx); cerr != nil {
		return nil, cerr
	}
	if err != nil {
		rep.warn(err, "default employee unavailable")
		return nil, nil
	}
	if len(employees) == 0 {
		return nil, nil
	}
	id := employees[0].ID
	return &id, nil
}

func (s *Service) fail(ctx context.Context, legacyProjectID int, err error) models.MigrationResult {
	kind := errors.KindOf(err)
	message := err.Error()

	s.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
		"legacy_project_id": legacyProjectID,
		"kind":              string(kind),
	}).Error("Project migration failed")

	if s.publisher != nil {
		if perr := s.publisher.EmitProjectMigrationFailed(context.WithoutCancel(ctx), legacyProjectID, string(kind), message); perr != nil {
			s.logger.WithContext(ctx).WithError(perr).Warn("failed to publish project migration failed event")
		}
	}

	return models.MigrationResult{
		Success: false,
		Message: message,
	}
}

func checkpoint(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(errors.KindCancelled, "migration cancelled", err)
	}
	return nil
}
