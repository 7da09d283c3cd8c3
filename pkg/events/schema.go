package events

import (
	"time"

	"github.com/Ramsey-B/clover/pkg/models"
)

const SchemaVersion = "1.0"

type EventType string

const (
	EventTypeProjectMigrated        EventType = "project.migrated"
	EventTypeProjectMigrationFailed EventType = "project.migration_failed"
)

type BaseEvent struct {
	EventID       string    `json:"event_id"`
	EventType     EventType `json:"event_type"`
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	RunID         string    `json:"run_id,omitempty"`
}

type ProjectMigratedEvent struct {
	BaseEvent
	LegacyProjectID int                    `json:"legacy_project_id"`
	Report          models.MigrationReport `json:"report"`
}

type ProjectMigrationFailedEvent struct {
	BaseEvent
	LegacyProjectID int    `json:"legacy_project_id"`
	Kind            string `json:"kind"`
	Message         string `json:"message"`
}
