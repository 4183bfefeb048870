package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/chartkit/chartkit/pkg/pipeline"
	"github.com/chartkit/chartkit/pkg/store"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	return New(Options{
		Store:  store.NewMemoryStore(),
		Runner: pipeline.NewRunner(nil, nil, log.NewWithOptions(io.Discard, log.Options{})),
		Logger: log.NewWithOptions(io.Discard, log.Options{}),
	})
}

func createBody() string {
	return `{
		"series": {
			"title": "revenue",
			"points": [
				{"label": "Q1", "value": 10},
				{"label": "Q2", "value": 25},
				{"label": "Q3", "value": 18}
			]
		},
		"options": {"formats": ["svg"]}
	}`
}

func createChart(t *testing.T, s *Server) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/charts", strings.NewReader(createBody()))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body)
	}
	var resp struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if resp.ID == "" {
		t.Fatal("create returned no ID")
	}
	return resp.ID
}

func TestHealthz(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestCreateAndGetChart(t *testing.T) {
	s := testServer(t)
	id := createChart(t, s)

	req := httptest.NewRequest(http.MethodGet, "/api/charts/"+id, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}

	var c store.Chart
	if err := json.Unmarshal(rec.Body.Bytes(), &c); err != nil {
		t.Fatalf("decode chart: %v", err)
	}
	if c.Title != "revenue" || len(c.Series.Points) != 3 {
		t.Errorf("chart = %+v", c)
	}
	if len(c.Layout.Points) != 3 {
		t.Errorf("stored layout has %d points, want 3", len(c.Layout.Points))
	}
	if c.Layout.Width == 0 {
		t.Error("stored layout has no surface size")
	}
}

func TestCreateChartInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed JSON", body: "{oops"},
		{name: "single point", body: `{"series":{"points":[{"label":"a","value":1}]}}`},
		{name: "bad style", body: `{"series":{"points":[{"label":"a","value":1},{"label":"b","value":2}]},"options":{"style":"pie"}}`},
	}

	s := testServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/charts", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			s.Handler().ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400; body %s", rec.Code, rec.Body)
			}
		})
	}
}

func TestListCharts(t *testing.T) {
	s := testServer(t)
	createChart(t, s)
	createChart(t, s)

	req := httptest.NewRequest(http.MethodGet, "/api/charts", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var charts []json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &charts); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(charts) != 2 {
		t.Errorf("list = %d charts, want 2", len(charts))
	}
}

func TestDeleteChart(t *testing.T) {
	s := testServer(t)
	id := createChart(t, s)

	req := httptest.NewRequest(http.MethodDelete, "/api/charts/"+id, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/charts/"+id, nil)
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", rec.Code)
	}
}

func TestGetChartNotFound(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/charts/no-such-id", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestRenderChartSVG(t *testing.T) {
	s := testServer(t)
	id := createChart(t, s)

	req := httptest.NewRequest(http.MethodGet, "/api/charts/"+id+".svg?style=bar&grid=true", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("render status = %d, body %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type = %q", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "<svg") {
		t.Error("body is not SVG")
	}
}

func TestRenderChartPNG(t *testing.T) {
	s := testServer(t)
	id := createChart(t, s)

	req := httptest.NewRequest(http.MethodGet, "/api/charts/"+id+".png", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("render status = %d", rec.Code)
	}
	sig := []byte{0x89, 'P', 'N', 'G'}
	if !bytes.HasPrefix(rec.Body.Bytes(), sig) {
		t.Error("body is not PNG")
	}
}
