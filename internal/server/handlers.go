package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/cascade/pkg/chart"
	"github.com/matzehuels/cascade/pkg/errors"
	"github.com/matzehuels/cascade/pkg/pipeline"
	"github.com/matzehuels/cascade/pkg/store"
)

// renderRequest is the body of POST /api/v1/render and POST /api/v1/charts.
type renderRequest struct {
	Title      string           `json:"title,omitempty"`
	Categories []chart.Category `json:"categories"`
	Chart      chart.Config     `json:"chart,omitempty"`
	Formats    []string         `json:"formats,omitempty"`
	Style      string           `json:"style,omitempty"`
	Refresh    bool             `json:"refresh,omitempty"`
}

func (req renderRequest) options() pipeline.Options {
	return pipeline.Options{
		Title:      req.Title,
		Categories: req.Categories,
		Chart:      req.Chart,
		Formats:    req.Formats,
		Style:      req.Style,
		Refresh:    req.Refresh,
	}
}

// renderResponse is the JSON envelope for render results. Artifact
// bytes are base64-encoded by encoding/json.
type renderResponse struct {
	DataHash  string             `json:"data_hash"`
	Bars      int                `json:"bars"`
	Artifacts map[string][]byte  `json:"artifacts"`
	CacheInfo pipeline.CacheInfo `json:"cache_info"`
}

// contentTypes maps output formats to MIME types for raw artifact
// responses.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleRender runs the full pipeline on the posted definition and
// returns the artifacts.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid request body"))
		return
	}

	result, err := s.runner.Execute(r.Context(), req.options())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, renderResponse{
		DataHash:  result.DataHash,
		Bars:      result.Stats.BarCount,
		Artifacts: result.Artifacts,
		CacheInfo: result.CacheInfo,
	})
}

// handleCreateChart validates the posted definition, computes its
// geometry, and persists it.
func (s *Server) handleCreateChart(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid request body"))
		return
	}

	opts := req.options()
	g, err := s.runner.ComputeLayout(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}

	c := store.New(req.Title, opts.Categories, opts.Chart)
	c.Geometry = g
	if err := s.store.Put(r.Context(), c); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleListCharts(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if list == nil {
		list = []store.Summary{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetChart(w http.ResponseWriter, r *http.Request) {
	c, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleDeleteChart(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleRenderChart renders a saved chart in the requested format and
// responds with the raw artifact.
func (s *Server) handleRenderChart(w http.ResponseWriter, r *http.Request) {
	c, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		writeError(w, err)
		return
	}

	opts := pipeline.Options{
		Title:      c.Title,
		Categories: c.Categories,
		Chart:      c.Config,
		Formats:    []string{format},
		Style:      r.URL.Query().Get("style"),
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps structured error codes to HTTP status codes:
// validation failures are client errors, missing resources are 404,
// everything else is a 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.IsValidation(err):
		status = http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeChartNotFound), errors.Is(err, errors.ErrCodeNotFound):
		status = http.StatusNotFound
	}
	writeJSON(w, status, errorResponse{
		Error: errors.UserMessage(err),
		Code:  errors.GetCode(err),
	})
}
