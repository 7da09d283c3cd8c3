package legacy

import (
	"context"
	"time"

	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/clover/pkg/database"
	"github.com/Ramsey-B/clover/pkg/errors"
	"github.com/Ramsey-B/clover/pkg/models"
	"github.com/Ramsey-B/clover/pkg/tracing"
)

// Source reads one legacy project. Empty results are not errors.
type Source interface {
	GetProject(ctx context.Context, projectID int) (*models.LegacyProject, error)
	GetEmployees(ctx context.Context, projectID int) ([]models.LegacyEmployee, error)
	GetAreas(ctx context.Context, projectID int) ([]models.LegacyArea, error)
	GetTasks(ctx context.Context, projectID int) ([]models.LegacyTask, error)
	Close() error
}

// SourceFactory opens a Source from a connection descriptor.
type SourceFactory interface {
	Open(ctx context.Context, descriptor string) (Source, error)
}

type Factory struct {
	opts         database.Options
	queryTimeout time.Duration
	logger       ectologger.Logger
}

func NewFactory(opts database.Options, queryTimeout time.Duration, logger ectologger.Logger) *Factory {
	return &Factory{
		opts:         opts,
		queryTimeout: queryTimeout,
		logger:       logger,
	}
}

func (f *Factory) Open(ctx context.Context, descriptor string) (Source, error) {
	ctx, span := tracing.StartSpan(ctx, "LegacyFactory.Open")
	defer span.End()

	db, err := database.Open(ctx, descriptor, f.opts, f.logger)
	if err != nil {
		f.logger.WithContext(ctx).WithError(err).Error("Failed to connect to legacy database")
		return nil, errors.Wrap(errors.KindSourceUnavailable, "legacy database connection failed", err)
	}
	return NewRepository(db, f.logger, f.queryTimeout), nil
}

type Repository struct {
	db           database.DB
	logger       ectologger.Logger
	queryTimeout time.Duration
}

func NewRepository(db database.DB, logger ectologger.Logger, queryTimeout time.Duration) *Repository {
	return &Repository{
		db:           db,
		logger:       logger,
		queryTimeout: queryTimeout,
	}
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) GetProject(ctx context.Context, projectID int) (*models.LegacyProject, error) {
	ctx, span := tracing.StartSpan(ctx, "LegacyRepository.GetProject")
	defer span.End()

	query, args := projectQuery(projectID)
	rows, err := r.query(ctx, "project", projectID, query, args)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		r.logger.WithContext(ctx).WithField("legacy_project_id", projectID).Warn("Legacy project not found")
		return nil, nil
	}

	project := toLegacyProject(rows[0])
	return &project, nil
}

func (r *Repository) GetEmployees(ctx context.Context, projectID int) ([]models.LegacyEmployee, error) {
	ctx, span := tracing.StartSpan(ctx, "LegacyRepository.GetEmployees")
	defer span.End()

	query, args := employeesQuery(projectID)
	rows, err := r.query(ctx, "employees", projectID, query, args)
	if err != nil {
		return nil, err
	}

	employees := make([]models.LegacyEmployee, 0, len(rows))
	for _, row := range rows {
		employees = append(employees, toLegacyEmployee(row))
	}
	return employees, nil
}

func (r *Repository) GetAreas(ctx context.Context, projectID int) ([]models.LegacyArea, error) {
	ctx, span := tracing.StartSpan(ctx, "LegacyRepository.GetAreas")
	defer span.End()

	query, args := areasQuery(projectID)
	rows, err := r.query(ctx, "areas", projectID, query, args)
	if err != nil {
		return nil, err
	}

	areas := make([]models.LegacyArea, 0, len(rows))
	for _, row := range rows {
		areas = append(areas, toLegacyArea(row))
	}
	return areas, nil
}

func (r *Repository) GetTasks(ctx context.Context, projectID int) ([]models.LegacyTask, error) {
	ctx, span := tracing.StartSpan(ctx, "LegacyRepository.GetTasks")
	defer span.End()

	query, args := tasksQuery(projectID)
	rows, err := r.query(ctx, "tasks", projectID, query, args)
	if err != nil {
		return nil, err
	}

	tasks := make([]models.LegacyTask, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, toLegacyTask(row))
	}
	return tasks, nil
}

func (r *Repository) query(ctx context.Context, what string, projectID int, query string, args []any) ([]row, error) {
	if r.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.queryTimeout)
		defer cancel()
	}

	fields := map[string]any{
		"legacy_project_id": projectID,
		"query":             what,
	}
	r.logger.WithContext(ctx).WithFields(fields).Debug("Querying legacy database")

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(fields).Error("error querying legacy database")
		return nil, errors.Wrap(errors.KindSourceUnavailable, "error querying legacy "+what, err)
	}

	result, err := scanRows(rows)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(fields).Error("error reading legacy rows")
		return nil, errors.Wrap(errors.KindSourceUnavailable, "error reading legacy "+what, err)
	}

	fields["rows"] = len(result)
	r.logger.WithContext(ctx).WithFields(fields).Debug("Queried legacy database")
	return result, nil
}
