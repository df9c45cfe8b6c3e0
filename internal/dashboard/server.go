// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dashboard serves the interactive explorer over HTTP. A gin engine
// renders an HTML page with a year-range filter, summary metrics, SVG
// charts, a word cloud and a preview table, and exposes the same data as
// JSON. Datasets come from the configured file or from a CSV upload.
package dashboard

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/cord-explorer/internal/load"
	"github.com/pdiddy/cord-explorer/pkg/types"
)

//go:embed templates/*.html
var templateFS embed.FS

const pageTemplate = "dashboard.html"

// Server is the web dashboard.
type Server struct {
	store  *Store
	cfg    types.DashboardConfig
	engine *gin.Engine
}

// New builds the dashboard over store. Request logs go to log when it is
// non-nil.
func New(store *Store, cfg types.DashboardConfig, log io.Writer) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	s := &Server{store: store, cfg: cfg.WithDefaults()}

	r := gin.New()
	r.Use(gin.Recovery())
	if log != nil {
		r.Use(gin.LoggerWithWriter(log))
	}
	r.SetHTMLTemplate(tmpl)

	RegisterPageRoutes(r, s)
	RegisterAPIRoutes(r, s)
	s.engine = r
	return s, nil
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Run listens on the configured address until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving dashboard: %w", err)
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdown)
	}
}

// MissingMessage is the prompt shown when the data file does not exist.
func MissingMessage(path string) string {
	return filepath.Base(path) + " not found. Please upload it."
}

// statusFor maps pipeline errors onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, load.ErrMissingFile):
		return http.StatusNotFound
	case load.IsMalformed(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
