package project

import (
	"net/http"
	"strconv"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/clover/internal/services/project"
	"github.com/Ramsey-B/clover/pkg/tracing"
)

type Handler struct {
	service project.ProjectService
}

func NewHandler(service project.ProjectService) *Handler {
	return &Handler{service: service}
}

func Register(g *echo.Group, h *Handler) {
	g.GET("/legacy/:legacyId", h.GetByLegacyID)
	g.GET("/:id", h.Get)
}

// GetByLegacyID returns a migrated project with its employees.
func (h *Handler) GetByLegacyID(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "project_handler.GetByLegacyID")
	defer span.End()

	legacyID, err := strconv.Atoi(c.Param("legacyId"))
	if err != nil || legacyID <= 0 {
		return httperror.NewHTTPError(http.StatusBadRequest, "legacyId must be a positive integer")
	}

	detail, err := h.service.GetByLegacyID(ctx, legacyID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *Handler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "project_handler.Get")
	defer span.End()

	p, err := h.service.GetByID(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}
