// Package httpapi serves the computed graph over HTTP: a category-selection
// form and JSON/SVG endpoints returning the resulting layout, grounded on
// the original environment's single `emgraph` view plus its
// `CategoriesForm` checkbox list.
package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/emgraph/emgraph/pkg/layout"
	"github.com/emgraph/emgraph/pkg/observability"
	"github.com/emgraph/emgraph/pkg/sink"
	"github.com/emgraph/emgraph/pkg/source/local"
)

// Server answers graph requests for a single scan directory, caching both
// the scanned articles and the computed layout via its embedded [layout.Runner].
type Server struct {
	Runner *layout.Runner
	Dir    string
	Logger *log.Logger
}

// NewServer builds a Server that scans Dir with [local.DirScanner] on every
// request not already satisfied by the runner's cache.
func NewServer(runner *layout.Runner, dir string, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{Runner: runner, Dir: dir, Logger: logger}
}

// Router builds the chi mux: "/" serves the category-selection form, "/api/graph"
// and "/api/graph.svg" return the computed layout in JSON and SVG.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.handleForm)
	r.Get("/api/graph", s.handleJSON)
	r.Get("/api/graph.svg", s.handleSVG)
	return r
}

// logRequests tags every request with a UUID for log correlation, echoed
// back as X-Request-Id so a caller can match a response to a server log line.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		w.Header().Set("X-Request-Id", reqID)
		logger := s.Logger.With("request_id", reqID)

		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(withLogger(r.Context(), logger)))
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}

type loggerKey struct{}

func withLogger(ctx context.Context, logger *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// requestLogger returns the per-request logger installed by logRequests,
// falling back to the server's default logger if none is present (e.g. in tests).
func (s *Server) requestLogger(r *http.Request) *log.Logger {
	if logger, ok := r.Context().Value(loggerKey{}).(*log.Logger); ok {
		return logger
	}
	return s.Logger
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := formTemplate.Execute(w, local.Categories); err != nil {
		s.requestLogger(r).Error("render form", "err", err)
	}
}

func (s *Server) handleJSON(w http.ResponseWriter, r *http.Request) {
	out, err := s.compute(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	data, err := sink.RenderJSON(out)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	out, err := s.compute(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	data, err := sink.RenderSVG(out, sink.SVGOptions{})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(data)
}

// compute runs the scan-then-layout pipeline for the categories selected in
// the request's query string ("categories=theorems,schemes"), defaulting to
// every category the scanner knows about.
func (s *Server) compute(r *http.Request) (layout.Output, error) {
	categories := local.Categories
	if raw := r.URL.Query().Get("categories"); raw != "" {
		categories = strings.Split(raw, ",")
	}
	scanner := &local.DirScanner{Dir: s.Dir, Categories: categories}
	return s.Runner.Run(r.Context(), s.Dir, scanner, layout.Options{Categories: categories})
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
	s.requestLogger(r).Error("request failed", "path", r.URL.Path, "err", err)
	http.Error(w, err.Error(), http.StatusBadRequest)
}
