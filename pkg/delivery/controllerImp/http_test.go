package controllerImp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rowtrack/entities"
	repoImp "rowtrack/pkg/delivery/repositoryImp"
	svcImp "rowtrack/pkg/delivery/serviceImp"
	stakeholderRepoImp "rowtrack/pkg/stakeholder/repositoryImp"
	"rowtrack/pkg/testutil"
)

func setup(t *testing.T) (*echo.Echo, *entities.Project, *entities.Stakeholder) {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	p := testutil.SeedProject(t, db, "Line 4")
	s := testutil.SeedStakeholder(t, db, p.ID, "Ada")

	e := echo.New()
	svc := svcImp.New(db, log, repoImp.New(db, log), repoImp.NewPackageRepo(db), stakeholderRepoImp.New(db, log))
	New(svc).Register(e.Group("/api/v1"))
	return e, p, s
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateAndFetchDelivery(t *testing.T) {
	e, p, s := setup(t)

	body := fmt.Sprintf(`{"date":"2024-06-01","projectId":%d,"packages":[{"stakeholderId":%d}]}`, p.ID, s.ID)
	rec := do(e, http.MethodPost, "/api/v1/deliveries", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var d entities.Delivery
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
	assert.Equal(t, entities.DeliveryPlanned, d.Status)
	require.Len(t, d.Packages, 1)

	rec = do(e, http.MethodGet, fmt.Sprintf("/api/v1/deliveries/%d", d.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(e, http.MethodGet, fmt.Sprintf("/api/v1/projects/%d/deliveries?from=2024-05-01&to=2024-06-30", p.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []entities.Delivery
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	rec = do(e, http.MethodPatch, fmt.Sprintf("/api/v1/deliveries/%d", d.ID), `{"status":"DELIVERED"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"DELIVERED"`)
}

func TestCreateDeliveryErrors(t *testing.T) {
	e, p, _ := setup(t)

	rec := do(e, http.MethodPost, "/api/v1/deliveries", fmt.Sprintf(`{"date":"2024-06-01","projectId":%d,"packages":[]}`, p.ID))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body struct {
		Error  string `json:"error"`
		Fields []struct {
			Field string `json:"field"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Fields, 1)
	assert.Equal(t, "packages", body.Fields[0].Field)

	rec = do(e, http.MethodPost, "/api/v1/deliveries", fmt.Sprintf(`{"date":"2024-06-01","projectId":%d,"packages":[{"stakeholderId":999}]}`, p.ID))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(e, http.MethodPost, "/api/v1/deliveries", `{"date":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodGet, "/api/v1/deliveries/12345", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(e, http.MethodGet, fmt.Sprintf("/api/v1/projects/%d/deliveries?from=June", p.ID), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
