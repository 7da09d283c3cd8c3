package migration

import (
	"net/http"
	"strings"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/clover/internal/services/migration"
	"github.com/Ramsey-B/clover/pkg/tracing"
	"github.com/Ramsey-B/clover/pkg/utils"
)

type MigrateRequest struct {
	LegacyProjectID  int    `json:"legacy_project_id" validate:"required,gt=0"`
	ConnectionString string `json:"connection_string"`
}

type Handler struct {
	service           migration.MigrationService
	defaultConnection string
}

// NewHandler builds the migration handler. defaultConnection is used when a
// request carries no connection string.
func NewHandler(service migration.MigrationService, defaultConnection string) *Handler {
	return &Handler{
		service:           service,
		defaultConnection: defaultConnection,
	}
}

func Register(g *echo.Group, h *Handler) {
	g.POST("/from-sqlserver", h.Migrate)
}

// Migrate runs a migration synchronously and answers with its result.
func (h *Handler) Migrate(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "migration_handler.Migrate")
	defer span.End()

	req, err := utils.BindRequest[MigrateRequest](c)
	if err != nil {
		return err
	}

	descriptor := strings.TrimSpace(req.ConnectionString)
	if descriptor == "" {
		descriptor = h.defaultConnection
	}
	if descriptor == "" {
		return httperror.NewHTTPError(http.StatusBadRequest, "connection_string is required")
	}

	result := h.service.MigrateProject(ctx, req.LegacyProjectID, descriptor)
	if !result.Success {
		return c.JSON(http.StatusBadRequest, result)
	}
	return c.JSON(http.StatusOK, result)
}
