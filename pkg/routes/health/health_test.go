package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func get(t *testing.T, c *Checker, path string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	c.RegisterRoutes(e)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	c := NewChecker("test")
	c.AddCheck("mongo", pingerFunc(func(context.Context) error { return nil }))
	c.AddCheck("redis", pingerFunc(func(context.Context) error { return errors.New("connection refused") }))

	rec := get(t, c, "/api/v1/health")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var status HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "unhealthy", status.Status)
	assert.Equal(t, "healthy", status.Checks["mongo"].Status)
	assert.Equal(t, "connection refused", status.Checks["redis"].Message)
}

func TestReady(t *testing.T) {
	c := NewChecker("test")
	assert.Equal(t, http.StatusServiceUnavailable, get(t, c, "/api/v1/health/ready").Code)

	c.SetReady(true)
	assert.Equal(t, http.StatusOK, get(t, c, "/api/v1/health/ready").Code)
	assert.Equal(t, http.StatusOK, get(t, c, "/api/v1/health/live").Code)
}
