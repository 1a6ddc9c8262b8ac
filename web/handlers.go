package web

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/s0up4200/kinolist/filter"
	"github.com/s0up4200/kinolist/page"
)

// render writes the page for the current state. The strip is narrowed by the
// q query parameter when present; the held collection is left as is.
func (s *Server) render(c echo.Context, status int, notice string) error {
	state := s.page.State()
	vm := viewModel{
		State:   state,
		Entries: state.Entries,
		Query:   c.QueryParam("q"),
		Notice:  notice,
	}

	if vm.Query != "" {
		f, err := s.filters.Compile(vm.Query)
		if err != nil {
			vm.FilterError = err.Error()
		} else {
			vm.Entries = filter.Apply(f, state.Entries)
		}
	}

	return c.Render(status, "page.html", vm)
}

// index mounts the page: one fetch of the collection, then render
func (s *Server) index(c echo.Context) error {
	s.page.Mount(c.Request().Context())
	return s.render(c, http.StatusOK, "")
}

func (s *Server) submit(c echo.Context) error {
	for _, field := range page.Fields {
		s.page.SetField(field, c.FormValue(string(field)))
	}

	result := s.page.Submit(c.Request().Context())
	if result.Validation != nil {
		return s.render(c, http.StatusUnprocessableEntity, result.Validation.Message)
	}
	return s.render(c, http.StatusOK, "")
}

func (s *Server) edit(c echo.Context) error {
	result := s.page.StartEdit(c.Param("id"))
	if errors.Is(result.Err, page.ErrUnknownEntry) {
		return s.render(c, http.StatusNotFound, "Movie not found")
	}
	return s.render(c, http.StatusOK, "")
}

func (s *Server) delete(c echo.Context) error {
	s.page.Delete(c.Request().Context(), c.Param("id"))
	return s.render(c, http.StatusOK, "")
}

func (s *Server) detail(c echo.Context) error {
	s.page.SelectForDetail(c.Request().Context(), c.Param("id"))
	return s.render(c, http.StatusOK, "")
}

func (s *Server) closePopup(c echo.Context) error {
	s.page.ClosePopup()
	return s.render(c, http.StatusOK, "")
}

func (s *Server) state(c echo.Context) error {
	return c.JSON(http.StatusOK, s.page.State())
}
