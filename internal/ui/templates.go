package ui

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/Belphemur/tvfinder/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type pageView struct {
	Term string
}

// cardView carries a show into the card template. Summary is directory
// markup and is emitted without escaping.
type cardView struct {
	ID      int
	Name    string
	Image   string
	Summary template.HTML
}

func newCardView(show models.Show) cardView {
	return cardView{
		ID:      show.ID,
		Name:    show.Name,
		Image:   show.Image,
		Summary: template.HTML(show.Summary),
	}
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
