package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chartkit/chartkit/pkg/errors"
	"github.com/chartkit/chartkit/pkg/pipeline"
	"github.com/chartkit/chartkit/pkg/series"
	"github.com/chartkit/chartkit/pkg/store"
)

// createChartRequest is the POST /api/charts payload: the input series
// plus optional pipeline options.
type createChartRequest struct {
	Series  series.Series    `json:"series"`
	Options pipeline.Options `json:"options"`
}

// chartResponse is the stored chart summary returned by the write and
// list endpoints. The full layout is available from GET /api/charts/{id}.
type chartResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title,omitempty"`
	Points    int    `json:"points"`
	CreatedAt string `json:"created_at"`
}

func summarize(c store.Chart) chartResponse {
	return chartResponse{
		ID:        c.ID,
		Title:     c.Title,
		Points:    len(c.Series.Points),
		CreatedAt: c.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (s *Server) handleCreateChart(w http.ResponseWriter, r *http.Request) {
	var req createChartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidData, err, "invalid request body"))
		return
	}

	if err := req.Series.Validate(); err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.opts.Runner.Execute(r.Context(), req.Series, req.Options)
	if err != nil {
		s.writeError(w, err)
		return
	}

	c := store.NewChart(req.Series, result.Layout)
	if err := s.opts.Store.Put(r.Context(), c); err != nil {
		s.writeError(w, err)
		return
	}

	s.logger.Info("chart created", "id", c.ID, "points", len(c.Series.Points))
	writeJSON(w, http.StatusCreated, summarize(c))
}

func (s *Server) handleListCharts(w http.ResponseWriter, r *http.Request) {
	charts, err := s.opts.Store.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	out := make([]chartResponse, len(charts))
	for i, c := range charts {
		out[i] = summarize(c)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetChart(w http.ResponseWriter, r *http.Request) {
	c, err := s.opts.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleDeleteChart(w http.ResponseWriter, r *http.Request) {
	if err := s.opts.Store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleRenderChart renders a stored chart's cached layout in the given
// format. Style and title come from query parameters.
func (s *Server) handleRenderChart(format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := s.opts.Store.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			s.writeError(w, err)
			return
		}

		opts := pipeline.Options{
			Formats: []string{format},
			Style:   r.URL.Query().Get("style"),
			Title:   r.URL.Query().Get("title"),
			Grid:    r.URL.Query().Get("grid") == "true",
		}

		artifacts, err := s.opts.Runner.Render(r.Context(), c.Layout, opts)
		if err != nil {
			s.writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(artifacts[format])
	}
}
