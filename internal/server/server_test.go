package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alexiusacademia/framecalc/internal/catalog"
	"github.com/alexiusacademia/framecalc/internal/config"
	"github.com/alexiusacademia/framecalc/internal/layout"
	"github.com/alexiusacademia/framecalc/internal/portal"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cat, err := catalog.Builtin()
	require.NoError(t, err)
	cfg := config.Default()
	defaults := portal.Request{Building: cfg.Building, Sections: cfg.Sections}
	return New(portal.New(cat, cfg), cat, defaults, cfg.Server, "test")
}

func do(t *testing.T, s *Server, method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, s.HandleHealth(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "test", body["version"])
}

func TestHealthMsgpack(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/api/health", "", map[string]string{
		echo.HeaderAccept: mimeMsgpack,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, mimeMsgpack, rec.Header().Get(echo.HeaderContentType))

	var body map[string]string
	require.NoError(t, msgpack.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestRequestID(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/api/health", "", nil)
	id, err := uuid.Parse(rec.Header().Get(echo.HeaderXRequestID))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
}

func TestHandleLayoutDefaults(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodPost, "/api/layout", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body LayoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEqual(t, uuid.Nil, body.ID)
	assert.Equal(t, 5, body.Request.Building.Portals)
	assert.Equal(t, "IPE 360", body.Column.Designation)
	assert.Equal(t, 9.20, body.Geometry.RafterLength)
	assert.Len(t, body.Plan.Segments, 72)
	assert.Equal(t, 48, body.Plan.BracingCount)
	assert.Equal(t, 6, body.Elevation.Count(layout.ColumnLine))
}

func TestHandleLayoutOverlaysBody(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodPost, "/api/layout",
		`{"building":{"width":26,"pitch":30}}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body LayoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 26.0, body.Request.Building.Width)
	assert.Equal(t, 30.0, body.Request.Building.Pitch)
	assert.Equal(t, 5, body.Request.Building.Portals, "untouched inputs keep their defaults")
	assert.Equal(t, 15.01, body.Geometry.RafterLength)
	assert.Equal(t, 72, body.Plan.BracingCount)
}

func TestHandleEstimate(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodPost, "/api/estimate", `{}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body EstimateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 48, body.Estimate.BracingCount)
	assert.True(t, body.Estimate.BracingConsistent)
	assert.Equal(t, "EUR", body.Estimate.Currency)
	assert.Equal(t, 8, body.Rates.BracingPerBay)
	assert.Equal(t, body.Estimate, body.Estimate.Rounded(), "values are already rounded")
}

func TestHandleEstimateMsgpack(t *testing.T) {
	in, err := msgpack.Marshal(map[string]interface{}{
		"building": map[string]interface{}{"width": 26.0, "pitch": 30.0},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/estimate", bytes.NewReader(in))
	req.Header.Set(echo.HeaderContentType, mimeMsgpack)
	req.Header.Set(echo.HeaderAccept, mimeMsgpack)
	rec := httptest.NewRecorder()
	newTestServer(t).Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, mimeMsgpack, rec.Header().Get(echo.HeaderContentType))

	var body EstimateResponse
	require.NoError(t, msgpack.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 80, body.Estimate.BracingCount)
	assert.Equal(t, 72, body.Estimate.PlanBracingCount)
	assert.False(t, body.Estimate.BracingConsistent)
}

func TestCalculationErrors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		body       string
		wantStatus int
		errCode    string
	}{
		{
			name:       "too few portals",
			target:     "/api/layout",
			body:       `{"building":{"portals":3}}`,
			wantStatus: http.StatusBadRequest,
			errCode:    "VALIDATION_ERROR",
		},
		{
			name:       "too many portals",
			target:     "/api/layout",
			body:       `{"building":{"portals":2000000000}}`,
			wantStatus: http.StatusBadRequest,
			errCode:    "VALIDATION_ERROR",
		},
		{
			name:       "flat roof",
			target:     "/api/estimate",
			body:       `{"building":{"pitch":0}}`,
			wantStatus: http.StatusBadRequest,
			errCode:    "VALIDATION_ERROR",
		},
		{
			name:       "unknown profile",
			target:     "/api/layout",
			body:       `{"sections":{"column":{"family":"IPE","designation":"IPE 999"},"rafter":{"family":"IPE","designation":"IPE 360"}}}`,
			wantStatus: http.StatusNotFound,
			errCode:    "NOT_FOUND",
		},
		{
			name:       "no purlins",
			target:     "/api/estimate",
			body:       `{"building":{"width":0.3,"pitch":10}}`,
			wantStatus: http.StatusUnprocessableEntity,
			errCode:    "UNBUILDABLE",
		},
		{
			name:       "broken body",
			target:     "/api/layout",
			body:       `{"building":`,
			wantStatus: http.StatusBadRequest,
			errCode:    "BAD_REQUEST",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newTestServer(t), http.MethodPost, tt.target, tt.body, nil)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var apiErr APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
			assert.Equal(t, tt.errCode, apiErr.Code)
			assert.NotEmpty(t, apiErr.Message)
		})
	}
}

func TestHandleProfiles(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		check      func(t *testing.T, body ProfilesResponse)
	}{
		{
			name:       "families",
			target:     "/api/profiles",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body ProfilesResponse) {
				assert.Equal(t, s.catalog.Families(), body.Families)
				assert.Empty(t, body.Profiles)
			},
		},
		{
			name:       "search",
			target:     "/api/profiles?q=hea+30",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body ProfilesResponse) {
				assert.Equal(t, "hea 30", body.Query)
				assert.Len(t, body.Profiles, 1)
			},
		},
		{
			name:       "short query",
			target:     "/api/profiles?q=h",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body ProfilesResponse) {
				assert.NotNil(t, body.Profiles)
				assert.Empty(t, body.Profiles)
			},
		},
		{
			name:       "family",
			target:     "/api/profiles/ipe",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body ProfilesResponse) {
				want, err := s.catalog.Profiles("IPE")
				require.NoError(t, err)
				assert.Equal(t, want, body.Profiles)
			},
		},
		{
			name:       "unknown family",
			target:     "/api/profiles/UPN",
			wantStatus: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodGet, tt.target, "", nil)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.check == nil {
				return
			}
			var body ProfilesResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			tt.check(t, body)
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/api/nothing", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var apiErr APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, "HTTP_ERROR", apiErr.Code)
}
