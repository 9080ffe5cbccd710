package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0x0FACED/go-voronoi/pkg/config"
	"github.com/0x0FACED/go-voronoi/pkg/logger"
)

func serve(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	router := newRouter(config.Default(), logger.NewNop())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestDiagramPage(t *testing.T) {
	rec := serve(t, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Параметры для диаграммы Вороного")
	assert.Contains(t, body, "Станции")
	assert.Contains(t, body, "[v] Алгоритм Форчуна запущен")
}

func TestDiagramPagePost(t *testing.T) {
	form := url.Values{
		"width":  {"200"},
		"height": {"100"},
		"points": {"10, 10\n(50, 80)\n150, 20\n500, 500"},
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := serve(t, req)
	require.Equal(t, http.StatusOK, rec.Code)
	// the point outside the box is dropped
	assert.Contains(t, rec.Body.String(), `"sites": 3`)
}

func TestBadParameters(t *testing.T) {
	cases := []struct {
		Name  string
		Query string
	}{
		{Name: "not a number", Query: "width=wide"},
		{Name: "zero height", Query: "height=0"},
		{Name: "negative stations", Query: "stations=-1"},
		{Name: "bad seed", Query: "random=true&seed=x"},
		{Name: "too many stations", Query: "stations=501"},
		{Name: "huge stations", Query: "stations=500000000"},
		{Name: "too wide", Query: "width=5001"},
		{Name: "huge canvas", Query: "width=1000000&height=1000000"},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			rec := serve(t, httptest.NewRequest(http.MethodGet, "/diagram.svg?"+c.Query, nil))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestLimitsAreInclusive(t *testing.T) {
	rec := serve(t, httptest.NewRequest(http.MethodGet, "/diagram.geojson?width=5000&height=5000&stations=500", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTooManyPoints(t *testing.T) {
	points := strings.Repeat("1, 1\n", maxPoints+1)
	form := url.Values{"points": {points}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := serve(t, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "too many points")
}

func TestSVGEndpoint(t *testing.T) {
	rec := serve(t, httptest.NewRequest(http.MethodGet, "/diagram.svg?width=300&height=200&stations=6", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `width="300"`)
}

func TestPNGEndpoint(t *testing.T) {
	rec := serve(t, httptest.NewRequest(http.MethodGet, "/diagram.png?random=true&seed=5", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "\x89PNG"))
}

func TestGeoJSONEndpoint(t *testing.T) {
	q := url.Values{"width": {"20"}, "height": {"20"}, "points": {"0, 0\n10, 0\n5, 10"}}
	rec := serve(t, httptest.NewRequest(http.MethodGet, "/diagram.geojson?"+q.Encode(), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/geo+json", rec.Header().Get("Content-Type"))

	fc, err := geojson.UnmarshalFeatureCollection(rec.Body.Bytes())
	require.NoError(t, err)
	assert.Len(t, fc.Features, 7)
}

func TestRandomIsSeeded(t *testing.T) {
	a := serve(t, httptest.NewRequest(http.MethodGet, "/diagram.geojson?random=true&seed=11", nil))
	b := serve(t, httptest.NewRequest(http.MethodGet, "/diagram.geojson?random=true&seed=11", nil))

	require.Equal(t, http.StatusOK, a.Code)
	assert.Equal(t, a.Body.String(), b.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	rec := serve(t, httptest.NewRequest(http.MethodDelete, "/", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
