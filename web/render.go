package web

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/s0up4200/kinolist/catalog"
	"github.com/s0up4200/kinolist/page"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// templateRenderer implements echo.Renderer over the embedded templates
type templateRenderer struct {
	templates *template.Template
}

func (r *templateRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// viewModel is what page.html renders
type viewModel struct {
	State       page.State
	Entries     []catalog.Entry
	Query       string
	FilterError string
	Notice      string
}
