// Package web serves the rated-movie page: a horizontal strip of poster
// cards, the add/edit form and the detail popup, rendered on the server from
// the state held by a page.Page.
package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/s0up4200/kinolist/filter"
	"github.com/s0up4200/kinolist/page"
)

// Server is the web view
type Server struct {
	echo    *echo.Echo
	page    *page.Page
	filters *filter.Compiler
	logger  zerolog.Logger
}

// NewServer creates the web view over p. Every request shares p, so all
// browser tabs see the same form and popup.
func NewServer(p *page.Page, filters *filter.Compiler, logger zerolog.Logger) *Server {
	s := &Server{
		page:    p,
		filters: filters,
		logger:  logger,
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = &templateRenderer{templates: templates}
	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))

	e.GET("/", s.index)
	e.POST("/movies", s.submit)
	e.GET("/movies/:id", s.detail)
	e.POST("/movies/:id/edit", s.edit)
	e.POST("/movies/:id/delete", s.delete)
	e.POST("/popup/close", s.closePopup)
	e.GET("/api/state", s.state)
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	s.echo = e
	return s
}

// Handler returns the HTTP handler of the view
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on addr until Shutdown is called
func (s *Server) Start(addr string) error {
	s.logger.Info().Str("addr", addr).Msg("Web view listening")
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
