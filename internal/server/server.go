// Package server exposes the frame calculator over HTTP. Responses are JSON
// unless the client accepts application/msgpack.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/alexiusacademia/framecalc/internal/catalog"
	"github.com/alexiusacademia/framecalc/internal/config"
	"github.com/alexiusacademia/framecalc/internal/portal"
	"github.com/ansel1/merry"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/powerman/structlog"
)

const mimeMsgpack = "application/msgpack"

type Server struct {
	echo     *echo.Echo
	designer *portal.Designer
	catalog  *catalog.Catalog
	defaults portal.Request
	cfg      config.Server
	version  string
	log      *structlog.Logger
}

// New wires the routes. Request bodies are decoded over defaults, so a
// client may send only the inputs it changes.
func New(designer *portal.Designer, cat *catalog.Catalog, defaults portal.Request, cfg config.Server, version string) *Server {
	s := &Server{
		echo:     echo.New(),
		designer: designer,
		catalog:  cat,
		defaults: defaults,
		cfg:      cfg,
		version:  version,
		log:      structlog.New(structlog.KeyUnit, "server"),
	}
	e := s.echo
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.errorHandler

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 1024 * 4,
	}))
	if cfg.BodyLimit != "" {
		e.Use(middleware.BodyLimit(cfg.BodyLimit))
	}
	e.Use(s.requestLog)

	api := e.Group("/api")
	api.GET("/health", s.HandleHealth)
	api.POST("/layout", s.HandleLayout)
	api.POST("/estimate", s.HandleEstimate)
	api.GET("/profiles", s.HandleProfiles)
	api.GET("/profiles/:family", s.HandleFamily)
	return s
}

// Handler returns the routed echo instance, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then shuts down gracefully within the
// configured timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", s.cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return merry.Prependf(err, "listen %s", s.cfg.Addr)
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return merry.Prepend(err, "shutdown")
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return merry.Wrap(err)
	}
	return nil
}

func (s *Server) requestLog(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if c.Path() == "/api/health" {
			return err
		}
		s.log.Debug("request",
			"id", c.Response().Header().Get(echo.HeaderXRequestID),
			"method", c.Request().Method,
			"path", c.Path(),
			"took", time.Since(start))
		return err
	}
}
