package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brayanmoyano53/dashboard/internal/dataset"
	apierrors "github.com/brayanmoyano53/dashboard/internal/errors"
	"github.com/brayanmoyano53/dashboard/internal/services"
	"github.com/brayanmoyano53/dashboard/internal/shared/testutil"
	"github.com/brayanmoyano53/dashboard/pkg/contracts/domain"
)

func testViews() *domain.Views {
	return &domain.Views{
		Year: 2019,
		Map: []domain.DepartmentDeaths{
			{DepartmentCode: "05", DepartmentName: "ANTIOQUIA", TotalDeaths: 4},
			{DepartmentCode: "76", DepartmentName: "VALLE DEL CAUCA", TotalDeaths: 5},
		},
		ViolentCities: []domain.MunicipalityHomicides{
			{MunicipalityName: "CALI", TotalHomicides: 3},
		},
	}
}

func newTestRouter(t *testing.T, result *services.Result) chi.Router {
	t.Helper()
	logger, _ := testutil.NewTestLogger(t)
	errorHandler := apierrors.NewErrorHandler(logger, false)

	viewsService := services.NewViewsService(result, logger)
	viewsHandler := NewViewsHandler(viewsService, logger, errorHandler)
	healthHandler := NewHealthHandler(services.NewHealthService("1.0.0", "", viewsService, logger), logger)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Mount("/views", viewsHandler.Routes())
		r.Mount("/geo", viewsHandler.GeoRoutes())
		r.Mount("/health", healthHandler.Routes())
		r.Get("/version", healthHandler.Version)
	})
	return r
}

func fixtureResult(t *testing.T) *services.Result {
	t.Helper()
	geo, err := dataset.LoadGeoJSON(strings.NewReader(testutil.GeoJSON))
	require.NoError(t, err)
	return &services.Result{Views: testViews(), Boundaries: geo}
}

func doRequest(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestViewsHandler_ListViews(t *testing.T) {
	rec := doRequest(t, newTestRouter(t, fixtureResult(t)), "/api/views")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status string                 `json:"status"`
		Count  int                    `json:"count"`
		Data   []services.ViewSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, len(domain.ViewNames()), body.Count)
	assert.Equal(t, services.ViewSummary{Name: domain.ViewMap, Rows: 2}, body.Data[0])
}

func TestViewsHandler_GetView(t *testing.T) {
	rec := doRequest(t, newTestRouter(t, fixtureResult(t)), "/api/views/map")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Name string                    `json:"name"`
			Year int                       `json:"year"`
			Rows []domain.DepartmentDeaths `json:"rows"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "map", body.Data.Name)
	assert.Equal(t, 2019, body.Data.Year)
	assert.Equal(t, testViews().Map, body.Data.Rows)
}

func TestViewsHandler_UnknownView(t *testing.T) {
	rec := doRequest(t, newTestRouter(t, fixtureResult(t)), "/api/views/nope")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var problem map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, apierrors.TypeViewNotFound, problem["type"])
	assert.Equal(t, "VIEW_NOT_FOUND", problem["error_code"])
	assert.Equal(t, float64(http.StatusNotFound), problem["status"])
}

func TestViewsHandler_NotComputed(t *testing.T) {
	rec := doRequest(t, newTestRouter(t, nil), "/api/views")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = doRequest(t, newTestRouter(t, nil), "/api/geo/departments")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestViewsHandler_GetBoundaries(t *testing.T) {
	rec := doRequest(t, newTestRouter(t, fixtureResult(t)), "/api/geo/departments")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/geo+json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, testutil.GeoJSON, rec.Body.String())
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name   string
		result *services.Result
		path   string
		status int
		field  string
	}{
		{name: "health", result: nil, path: "/api/health", status: http.StatusOK, field: "ok"},
		{name: "live", result: nil, path: "/api/health/live", status: http.StatusOK, field: "alive"},
		{name: "ready", result: &services.Result{Views: testViews()}, path: "/api/health/ready", status: http.StatusOK, field: "ready"},
		{name: "not ready", result: nil, path: "/api/health/ready", status: http.StatusServiceUnavailable, field: "not_ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, newTestRouter(t, tt.result), tt.path)
			require.Equal(t, tt.status, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.field, body["status"])
		})
	}
}

func TestHealthHandler_Version(t *testing.T) {
	rec := doRequest(t, newTestRouter(t, nil), "/api/version")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"version":"1.0.0"`)
}

func TestMetricsHandler(t *testing.T) {
	exporter := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("# HELP up\n"))
	})

	rec := doRequest(t, NewMetricsHandler(exporter, nil), "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "# HELP")

	rec = doRequest(t, NewMetricsHandler(nil, nil), "/metrics")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
