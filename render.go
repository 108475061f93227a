package scribble

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"github.com/jideolan/scribble/account"
)

//go:embed templates/*.html
var templateFS embed.FS

// TemplateRenderer renders the gateway's pages from the embedded
// templates. Template escaping is the second line of defense behind
// account.Sanitize.
type TemplateRenderer struct {
	tmpl *template.Template
}

func NewTemplateRenderer() (*TemplateRenderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &TemplateRenderer{tmpl: t}, nil
}

func (tr *TemplateRenderer) Render(w http.ResponseWriter, status int, page account.Page, data account.PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tr.tmpl.ExecuteTemplate(w, string(page)+".html", data); err != nil {
		log.Printf("render %s: %v", page, err)
	}
}
