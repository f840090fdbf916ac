// Package web serves the portfolio over HTTP: server-rendered pages for the
// landing, resume and contact routes plus a small JSON API backing the
// browser palette.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"

	"folio/internal/contact"
	"folio/internal/content"
	"folio/internal/domain"
	"folio/internal/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

// Options configures a Server
type Options struct {
	Portfolio *content.Portfolio
	Contact   *contact.Service
	// SecureCookie marks preference cookies Secure (HTTPS deployments)
	SecureCookie bool
	Debug        bool
}

// Server is the gin engine plus the content it renders
type Server struct {
	engine       *gin.Engine
	contact      *contact.Service
	secureCookie bool

	mu        sync.RWMutex
	portfolio *content.Portfolio
}

// New builds the engine and registers every route
func New(opts Options) *Server {
	if opts.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		engine:       gin.New(),
		contact:      opts.Contact,
		secureCookie: opts.SecureCookie,
		portfolio:    opts.Portfolio,
	}

	s.engine.Use(gin.Recovery(), requestLogger())
	s.engine.SetHTMLTemplate(template.Must(
		template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html"),
	))
	s.routes()
	return s
}

var templateFuncs = template.FuncMap{
	"comma": humanize.Comma,
	"stars": func(level int) string {
		return strings.Repeat("★", level) + strings.Repeat("☆", 5-level)
	},
	"pct": func(f float64) string {
		return humanize.FtoaWithDigits(f, 1) + "%"
	},
	"href":   entryHref,
	"action": entryAction,
}

func entryHref(e domain.NavigationEntry) string {
	switch t := e.Target.(type) {
	case domain.RouteTarget:
		return t.Path
	case domain.ActionTarget:
		if t.Kind == domain.ActionOpenExternal {
			return t.Arg
		}
	}
	return "#"
}

// entryAction names the client-side action for entries that do not navigate
func entryAction(e domain.NavigationEntry) string {
	if t, ok := e.Target.(domain.ActionTarget); ok && t.Kind != domain.ActionOpenExternal {
		return string(t.Kind)
	}
	return ""
}

func (s *Server) routes() {
	r := s.engine

	r.GET("/", s.handleHome)
	r.GET("/resume", s.handleResume)
	r.GET("/contact", s.handleContactForm)
	r.POST("/contact", s.handleContactSubmit)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.GET("/suggestions", s.handleSuggestions)
	api.POST("/theme/toggle", s.handleThemeToggle)
	api.POST("/theme/scheme", s.handleThemeScheme)

	r.NoRoute(s.handleNotFound)
}

// Handler exposes the engine for tests and custom servers
func (s *Server) Handler() http.Handler {
	return s.engine
}

// SetPortfolio swaps the rendered content, used on live reload
func (s *Server) SetPortfolio(p *content.Portfolio) {
	s.mu.Lock()
	s.portfolio = p
	s.mu.Unlock()
}

func (s *Server) content() *content.Portfolio {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.portfolio
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Web: listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("web server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("web shutdown: %w", err)
	}
	logger.Info("Web: stopped")
	return nil
}

// page assembles the data shared by every template
func (s *Server) page(c *gin.Context, title string, section domain.Section) gin.H {
	p := s.content()
	return gin.H{
		"Title":   title,
		"Theme":   string(s.effectiveTheme(c)),
		"Section": string(section),
		"Profile": p.Profile,
		"Nav":     p.Navigation,
	}
}
