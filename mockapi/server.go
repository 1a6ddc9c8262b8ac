// Package mockapi is an in-memory stand-in for the mockapi.io collection the
// catalog client talks to. It serves the same five endpoints with the same
// reply shapes, which makes it usable for local development and tests.
package mockapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strconv"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// CollectionPath is where the collection is mounted
const CollectionPath = "/kinolist/rate"

// Record is an entry as stored. Rating is kept as the raw JSON value that was
// submitted; the store never coerces it.
type Record struct {
	ID          string          `json:"id"`
	Title       string          `json:"Title"`
	Poster      string          `json:"Poster"`
	Rating      json.RawMessage `json:"Rating,omitempty"`
	Description string          `json:"Description"`
}

// payload is a create or update body; absent fields are left untouched on update
type payload struct {
	Title       *string         `json:"Title"`
	Poster      *string         `json:"Poster"`
	Rating      json.RawMessage `json:"Rating"`
	Description *string         `json:"Description"`
}

// Server holds the collection and its HTTP routes
type Server struct {
	mu      sync.Mutex
	nextID  int
	records map[string]Record

	echo   *echo.Echo
	logger zerolog.Logger
}

// NewServer creates an empty collection server
func NewServer(logger zerolog.Logger) *Server {
	s := &Server{
		nextID:  1,
		records: make(map[string]Record),
		logger:  logger,
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	g := e.Group(CollectionPath)
	g.GET("", s.list)
	g.GET("/", s.list)
	g.POST("", s.create)
	g.POST("/", s.create)
	g.GET("/:id", s.get)
	g.PUT("/:id", s.update)
	g.DELETE("/:id", s.remove)

	s.echo = e
	return s
}

// Handler returns the HTTP handler serving the collection
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on addr until Shutdown is called
func (s *Server) Start(addr string) error {
	s.logger.Info().Str("addr", addr).Str("path", CollectionPath).Msg("Mock collection listening")
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Seed inserts records, assigning ids to those without one
func (s *Server) Seed(records ...Record) []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	seeded := make([]Record, 0, len(records))
	for _, r := range records {
		if r.ID == "" {
			r.ID = s.allocateID()
		} else if n, err := strconv.Atoi(r.ID); err == nil && n >= s.nextID {
			s.nextID = n + 1
		}
		s.records[r.ID] = r
		seeded = append(seeded, r)
	}
	return seeded
}

// Len returns the number of stored records
func (s *Server) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Records returns the stored records in id order
func (s *Server) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sorted()
}

func (s *Server) allocateID() string {
	id := strconv.Itoa(s.nextID)
	s.nextID++
	return id
}

func (s *Server) sorted() []Record {
	out := make([]Record, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		a, errA := strconv.Atoi(out[i].ID)
		b, errB := strconv.Atoi(out[j].ID)
		if errA == nil && errB == nil {
			return a < b
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *Server) list(c echo.Context) error {
	s.mu.Lock()
	records := s.sorted()
	s.mu.Unlock()
	return c.JSON(http.StatusOK, records)
}

func (s *Server) get(c echo.Context) error {
	s.mu.Lock()
	r, ok := s.records[c.Param("id")]
	s.mu.Unlock()
	if !ok {
		return notFound(c)
	}
	return c.JSON(http.StatusOK, r)
}

func (s *Server) create(c echo.Context) error {
	p, err := decodePayload(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, "Invalid JSON")
	}

	s.mu.Lock()
	r := Record{ID: s.allocateID()}
	p.applyTo(&r)
	s.records[r.ID] = r
	s.mu.Unlock()

	s.logger.Debug().Str("id", r.ID).Str("title", r.Title).Msg("Mock record created")
	return c.JSON(http.StatusCreated, r)
}

func (s *Server) update(c echo.Context) error {
	p, err := decodePayload(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, "Invalid JSON")
	}

	id := c.Param("id")
	s.mu.Lock()
	r, ok := s.records[id]
	if ok {
		p.applyTo(&r)
		s.records[id] = r
	}
	s.mu.Unlock()

	if !ok {
		return notFound(c)
	}
	s.logger.Debug().Str("id", id).Msg("Mock record updated")
	return c.JSON(http.StatusOK, r)
}

func (s *Server) remove(c echo.Context) error {
	id := c.Param("id")
	s.mu.Lock()
	r, ok := s.records[id]
	delete(s.records, id)
	s.mu.Unlock()

	if !ok {
		return notFound(c)
	}
	s.logger.Debug().Str("id", id).Msg("Mock record deleted")
	return c.JSON(http.StatusOK, r)
}

func decodePayload(c echo.Context) (payload, error) {
	var p payload
	dec := json.NewDecoder(http.MaxBytesReader(c.Response(), c.Request().Body, 1<<20))
	if err := dec.Decode(&p); err != nil {
		return payload{}, err
	}
	return p, nil
}

func (p payload) applyTo(r *Record) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Poster != nil {
		r.Poster = *p.Poster
	}
	if len(p.Rating) > 0 {
		r.Rating = append(json.RawMessage(nil), p.Rating...)
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
}

func notFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, "Not found")
}
