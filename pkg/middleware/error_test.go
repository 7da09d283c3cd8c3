package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	migrationerrors "github.com/Ramsey-B/clover/pkg/errors"
)

func handle(t *testing.T, err error) (*httptest.ResponseRecorder, ErrorResponse) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	Error(ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {}))(err, c)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestError_MigrationError(t *testing.T) {
	rec, body := handle(t, migrationerrors.Newf(migrationerrors.KindNotFound, "project %d not found in source", 9))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, body.Message, "project 9 not found in source")
	assert.Equal(t, "not_found", body.Meta["kind"])
}

func TestError_HTTPError(t *testing.T) {
	rec, _ := handle(t, httperror.NewHTTPError(http.StatusBadRequest, "project_id must be a positive integer"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestError_EchoError(t *testing.T) {
	rec, body := handle(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "method not allowed", body.Message)
}

func TestError_Unknown(t *testing.T) {
	rec, body := handle(t, assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", body.Message)
}
