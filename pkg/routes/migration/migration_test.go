package migration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/clover/pkg/models"
)

type fakeMigrationService struct {
	gotID         int
	gotDescriptor string
	result        models.MigrationResult
}

func (f *fakeMigrationService) MigrateProject(_ context.Context, legacyProjectID int, descriptor string) models.MigrationResult {
	f.gotID = legacyProjectID
	f.gotDescriptor = descriptor
	return f.result
}

func serve(t *testing.T, h *Handler, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/migrations/from-sqlserver", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, h.Migrate(e.NewContext(req, rec))
}

func TestMigrate_Success(t *testing.T) {
	svc := &fakeMigrationService{result: models.MigrationResult{
		Success: true,
		Message: "migrated 1 areas with 1 items for project 4698",
		Data:    &models.MigrationReport{ProjectID: 4698, AreasMigrated: 1, TotalItems: 1},
	}}
	h := NewHandler(svc, "")

	rec, err := serve(t, h, `{"legacy_project_id":4698,"connection_string":"server=legacy"}`)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 4698, svc.gotID)
	assert.Equal(t, "server=legacy", svc.gotDescriptor)

	var body models.MigrationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 1, body.Data.AreasMigrated)
}

func TestMigrate_FailureIsBadRequest(t *testing.T) {
	svc := &fakeMigrationService{result: models.MigrationResult{Message: "project 1 not found in source"}}
	h := NewHandler(svc, "server=default")

	rec, err := serve(t, h, `{"legacy_project_id":1}`)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "server=default", svc.gotDescriptor)
}

func TestMigrate_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing id", `{"connection_string":"server=legacy"}`},
		{"negative id", `{"legacy_project_id":-3,"connection_string":"server=legacy"}`},
		{"no connection", `{"legacy_project_id":4698}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeMigrationService{}
			_, err := serve(t, NewHandler(svc, ""), tt.body)

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, httperror.GetStatusCode(err))
			assert.Zero(t, svc.gotID)
		})
	}
}
