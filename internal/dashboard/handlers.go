// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dashboard

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/cord-explorer/internal/aggregate"
	"github.com/pdiddy/cord-explorer/internal/load"
	"github.com/pdiddy/cord-explorer/internal/table"
	"github.com/pdiddy/cord-explorer/pkg/types"
)

// page is the data behind dashboard.html.
type page struct {
	Title        string
	Missing      bool
	Message      string
	Error        string
	View         *View
	YearChart    Chart
	JournalChart Chart
	Cloud        Cloud
}

// RegisterPageRoutes registers the HTML page and the upload form target.
func RegisterPageRoutes(r *gin.Engine, s *Server) {
	r.GET("/", s.handleIndex)
	r.POST("/upload", s.handleUpload)
}

// RegisterAPIRoutes registers the JSON endpoints. Every data endpoint
// accepts from and to query parameters.
func RegisterAPIRoutes(r *gin.Engine, s *Server) {
	api := r.Group("/api")
	api.GET("/health", handleHealth)
	api.GET("/summary", s.handleSummary)
	api.GET("/years", s.handleYears)
	api.GET("/journals", s.handleJournals)
	api.GET("/words", s.handleWords)
	api.GET("/sample", s.handleSample)
}

func (s *Server) handleIndex(c *gin.Context) {
	from, to := yearParams(c)
	p := page{Title: "CORD-19 Data Explorer"}

	var v View
	err := s.store.View(func(t *table.Table, source string) error {
		v = NewView(t, from, to, s.cfg)
		v.Source = source
		return nil
	})
	switch {
	case errors.Is(err, load.ErrMissingFile):
		p.Missing = true
		p.Message = MissingMessage(s.store.Path())
	case err != nil:
		p.Error = err.Error()
		c.HTML(statusFor(err), pageTemplate, p)
		return
	default:
		p.View = &v
		p.YearChart = YearChart(v.Years)
		p.JournalChart = JournalChart(v.Journals)
		p.Cloud = WordCloud(v.Words, chartWidth)
	}
	c.HTML(http.StatusOK, pageTemplate, p)
}

// handleUpload replaces the dataset with the posted CSV. Browsers are
// redirected back to the page; other clients get JSON.
func (s *Server) handleUpload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing upload field \"file\""})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	rows, err := s.store.Upload(f, fh.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if c.NegotiateFormat(gin.MIMEJSON, gin.MIMEHTML) == gin.MIMEHTML {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "loaded", "source": fh.Filename, "rows": rows})
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleSummary(c *gin.Context) {
	s.filtered(c, func(t *table.Table, source string, bounds, r types.YearRange) {
		c.JSON(http.StatusOK, gin.H{
			"source":  source,
			"bounds":  bounds,
			"range":   r,
			"metrics": aggregate.Summarize(t),
		})
	})
}

func (s *Server) handleYears(c *gin.Context) {
	s.filtered(c, func(t *table.Table, _ string, _, r types.YearRange) {
		c.JSON(http.StatusOK, gin.H{"range": r, "years": aggregate.PublicationsByYear(t)})
	})
}

func (s *Server) handleJournals(c *gin.Context) {
	n := countParam(c, s.cfg.TopJournals)
	s.filtered(c, func(t *table.Table, _ string, _, r types.YearRange) {
		c.JSON(http.StatusOK, gin.H{"range": r, "journals": aggregate.TopJournals(t, n)})
	})
}

func (s *Server) handleWords(c *gin.Context) {
	n := countParam(c, s.cfg.TopWords)
	s.filtered(c, func(t *table.Table, _ string, _, r types.YearRange) {
		c.JSON(http.StatusOK, gin.H{"range": r, "words": aggregate.CommonTitleWords(t, n, s.cfg.Stopwords)})
	})
}

func (s *Server) handleSample(c *gin.Context) {
	n := countParam(c, s.cfg.PreviewRows)
	s.filtered(c, func(t *table.Table, _ string, _, r types.YearRange) {
		c.JSON(http.StatusOK, gin.H{"range": r, "preview": NewPreview(t, n)})
	})
}

// filtered runs fn over the rows inside the requested year range and
// answers with an error status when the dataset cannot be read.
func (s *Server) filtered(c *gin.Context, fn func(t *table.Table, source string, bounds, r types.YearRange)) {
	from, to := yearParams(c)
	err := s.store.View(func(t *table.Table, source string) error {
		bounds := aggregate.YearBounds(t)
		r := SelectRange(bounds, from, to)
		ft := aggregate.FilterYears(t, r)
		defer ft.Release()
		fn(ft, source, bounds, r)
		return nil
	})
	if err != nil {
		msg := err.Error()
		if errors.Is(err, load.ErrMissingFile) {
			msg = MissingMessage(s.store.Path())
		}
		c.JSON(statusFor(err), gin.H{"error": msg})
	}
}

// yearParams reads from and to; absent or invalid values are 0.
func yearParams(c *gin.Context) (from, to int) {
	from, _ = strconv.Atoi(c.Query("from"))
	to, _ = strconv.Atoi(c.Query("to"))
	return from, to
}

func countParam(c *gin.Context, def int) int {
	n, err := strconv.Atoi(c.Query("n"))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
