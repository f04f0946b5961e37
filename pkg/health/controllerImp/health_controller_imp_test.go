package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rowtrack/database"
	"rowtrack/pkg/testutil"
)

type healthBody struct {
	Status struct {
		OK bool `json:"ok"`
	} `json:"status"`
	Checks struct {
		Database check `json:"database"`
	} `json:"checks"`
	Time string `json:"time"`
}

func call(t *testing.T, h *HealthCtrl) (int, healthBody) {
	t.Helper()
	e := echo.New()
	e.GET("/health", h.Health)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	var body healthBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHealthOK(t *testing.T) {
	code, body := call(t, NewHealthCtrl(testutil.DB(t), testutil.Logger(t)))
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, body.Status.OK)
	assert.True(t, body.Checks.Database.OK)
	assert.NotEmpty(t, body.Time)
}

func TestHealthClosedDB(t *testing.T) {
	db := testutil.DB(t)
	require.NoError(t, database.Close(db))

	code, body := call(t, NewHealthCtrl(db, testutil.Logger(t)))
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.False(t, body.Status.OK)
	assert.Contains(t, body.Checks.Database.Err, "ping")
}

func TestHealthNilDB(t *testing.T) {
	code, body := call(t, NewHealthCtrl(nil, testutil.Logger(t)))
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "gorm db is nil", body.Checks.Database.Err)
}
