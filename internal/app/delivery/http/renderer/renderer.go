package renderer

import (
	"bytes"
	"embed"
	"html/template"
	"medora-portal/internal/app/models"
	"medora-portal/internal/pkg/constvars"
	"medora-portal/internal/pkg/dto/views"
	"medora-portal/internal/pkg/exceptions"
	"net/http"
	"strconv"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutTemplate = "layout.html"

type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	templates, err := template.New(layoutTemplate).Funcs(funcMap()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, exceptions.ErrTemplateParse(err)
	}
	return &Renderer{templates: templates}, nil
}

// Render writes the layout as a full HTML page. Nothing is written if the
// template fails, so the caller can still send an error response.
func (rd *Renderer) Render(w http.ResponseWriter, status int, layout *views.Layout) error {
	var buf bytes.Buffer
	if err := rd.templates.ExecuteTemplate(&buf, layoutTemplate, layout); err != nil {
		return exceptions.ErrTemplateRender(err, layoutTemplate)
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

func funcMap() template.FuncMap {
	funcs := sprig.HtmlFuncMap()
	funcs["pageTitle"] = func(page models.Page) string {
		return page.Title()
	}
	funcs["fullName"] = func(user *models.User) string {
		return user.FullName()
	}
	funcs["orDash"] = func(value string) string {
		if value == "" {
			return "-"
		}
		return value
	}
	funcs["oneDecimal"] = func(value *float64) string {
		if value == nil {
			return "-"
		}
		return strconv.FormatFloat(*value, 'f', 1, 64)
	}
	return funcs
}
