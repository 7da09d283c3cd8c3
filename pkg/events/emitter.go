// Package events announces the outcome of migration runs.
package events

import (
	"context"
	"strconv"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/google/uuid"

	clovercontext "github.com/Ramsey-B/clover/pkg/context"
	"github.com/Ramsey-B/clover/pkg/metrics"
	"github.com/Ramsey-B/clover/pkg/models"
	"github.com/Ramsey-B/clover/pkg/tracing"
)

// Publisher is satisfied by kafka.Producer.
type Publisher interface {
	Publish(ctx context.Context, key, eventType string, event any) error
}

type Emitter struct {
	publisher Publisher
	logger    ectologger.Logger
	now       func() time.Time
}

func NewEmitter(publisher Publisher, logger ectologger.Logger) *Emitter {
	return &Emitter{
		publisher: publisher,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (e *Emitter) EmitProjectMigrated(ctx context.Context, report models.MigrationReport) error {
	ctx, span := tracing.StartSpan(ctx, "events.Emitter.EmitProjectMigrated")
	defer span.End()

	event := ProjectMigratedEvent{
		BaseEvent:       e.base(ctx, EventTypeProjectMigrated),
		LegacyProjectID: report.ProjectID,
		Report:          report,
	}
	return e.emit(ctx, report.ProjectID, EventTypeProjectMigrated, event)
}

func (e *Emitter) EmitProjectMigrationFailed(ctx context.Context, legacyProjectID int, kind, message string) error {
	ctx, span := tracing.StartSpan(ctx, "events.Emitter.EmitProjectMigrationFailed")
	defer span.End()

	event := ProjectMigrationFailedEvent{
		BaseEvent:       e.base(ctx, EventTypeProjectMigrationFailed),
		LegacyProjectID: legacyProjectID,
		Kind:            kind,
		Message:         message,
	}
	return e.emit(ctx, legacyProjectID, EventTypeProjectMigrationFailed, event)
}

func (e *Emitter) base(ctx context.Context, eventType EventType) BaseEvent {
	return BaseEvent{
		EventID:       uuid.New().String(),
		EventType:     eventType,
		SchemaVersion: SchemaVersion,
		Timestamp:     e.now(),
		RunID:         clovercontext.GetRunID(ctx),
	}
}

func (e *Emitter) emit(ctx context.Context, legacyProjectID int, eventType EventType, event any) error {
	if err := e.publisher.Publish(ctx, strconv.Itoa(legacyProjectID), string(eventType), event); err != nil {
		metrics.EventsPublishedTotal.WithLabelValues(string(eventType), "error").Inc()
		e.logger.WithContext(ctx).WithError(err).Errorf("Failed to emit %s event", eventType)
		return err
	}
	metrics.EventsPublishedTotal.WithLabelValues(string(eventType), "ok").Inc()
	return nil
}
