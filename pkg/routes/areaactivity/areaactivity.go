package areaactivity

import (
	"net/http"
	"strconv"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/clover/internal/services/areaactivity"
	"github.com/Ramsey-B/clover/pkg/tracing"
)

type Handler struct {
	service areaactivity.AreaActivityService
}

func NewHandler(service areaactivity.AreaActivityService) *Handler {
	return &Handler{service: service}
}

func Register(g *echo.Group, h *Handler) {
	g.GET("", h.List)
}

// List returns the area activities of a legacy project, project_id query
// parameter required.
func (h *Handler) List(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "areaactivity_handler.List")
	defer span.End()

	projectID, err := strconv.Atoi(c.QueryParam("project_id"))
	if err != nil || projectID <= 0 {
		return httperror.NewHTTPError(http.StatusBadRequest, "project_id must be a positive integer")
	}

	areas, err := h.service.GetByProjectID(ctx, projectID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, areas)
}
