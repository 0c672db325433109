package rest

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	player1Template = "player1_connect.html"
	player2Template = "p2Join.html"
)

type page struct {
	Status string
}

type renderer struct {
	templates *template.Template
}

func newRenderer() (*renderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &renderer{templates: templates}, nil
}

func (that *renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return that.templates.ExecuteTemplate(w, name, data)
}
