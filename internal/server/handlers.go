package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gregorio-gerardi/circuitry/pkg/errors"
	"github.com/gregorio-gerardi/circuitry/pkg/graphio"
	"github.com/gregorio-gerardi/circuitry/pkg/pipeline"
	"github.com/gregorio-gerardi/circuitry/pkg/report"
)

// defaultListLimit caps unbounded list requests.
const defaultListLimit = 20

// analyzeRequest is the body of POST /v1/analyses.
type analyzeRequest struct {
	Graph     graphio.Doc `json:"graph"`
	MinLength int         `json:"min_length,omitempty"`
	MaxLength int         `json:"max_length,omitempty"`
	Render    bool        `json:"render,omitempty"`
}

// analyzeResponse wraps the stored report with optional rendered artifacts.
type analyzeResponse struct {
	Report *report.Report `json:"report"`
	DOT    string         `json:"dot,omitempty"`
	SVG    string         `json:"svg,omitempty"`
	Cached bool           `json:"cached"`
}

// listResponse is the body of GET /v1/analyses.
type listResponse struct {
	Reports []*report.Report `json:"reports"`
}

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAnalyze runs a full analysis on a graph document posted by the
// client and persists the resulting report.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "malformed request body"))
		return
	}

	g, err := graphio.FromDoc(req.Graph)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	opts := pipeline.Options{
		Source:    "api",
		MinLength: req.MinLength,
		MaxLength: req.MaxLength,
	}
	if req.Render && s.cfg.Render {
		opts.Formats = []string{pipeline.FormatDOT, pipeline.FormatSVG}
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid analysis options"))
		return
	}

	result, err := s.runner.Analyze(r.Context(), g, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.store.Save(r.Context(), result.Report); err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := analyzeResponse{
		Report: result.Report,
		DOT:    string(result.Artifacts[pipeline.FormatDOT]),
		SVG:    string(result.Artifacts[pipeline.FormatSVG]),
		Cached: result.CacheInfo.SearchHit,
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "invalid limit: %q", v))
			return
		}
		limit = n
	}

	reports, err := s.store.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if reports == nil {
		reports = []*report.Report{}
	}
	writeJSON(w, http.StatusOK, listResponse{Reports: reports})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	rep, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// handleSVG re-renders a stored report's graph as SVG with its circuits
// highlighted. Rendering is fresh or cached per the runner's artifact cache.
func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	rep, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	g, err := graphio.FromDoc(rep.Graph)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	opts := pipeline.Options{
		Source:    rep.Source,
		MinLength: rep.Bounds.MinLength,
		MaxLength: rep.Bounds.MaxLength,
		Formats:   []string{pipeline.FormatSVG},
	}
	artifacts, err := s.runner.Render(r.Context(), g, rep.Circuits, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[pipeline.FormatSVG])
}

// writeError maps an error to its HTTP status and writes the JSON body.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	}
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
		if stderrors.Is(err, report.ErrNotFound) {
			code = errors.ErrCodeReportNotFound
		}
	}
	writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    string(code),
		Message: errors.UserMessage(err),
	}})
}

// statusFor maps error codes to HTTP statuses. Unknown errors are 500s.
func statusFor(err error) int {
	if stderrors.Is(err, report.ErrNotFound) {
		return http.StatusNotFound
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidVertex, errors.ErrCodeInvalidBounds,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidManifest, errors.ErrCodeInvalidPackage,
		errors.ErrCodeParse:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeReportNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
