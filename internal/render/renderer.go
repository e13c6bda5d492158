package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer implements echo.Renderer over html/template. Each page
// template is parsed together with the shared layout, so templates
// reference layout blocks without re-declaring chrome.
type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	return NewRendererFS(templateFS, "templates")
}

func NewRendererFS(fsys fs.FS, dir string) (*Renderer, error) {
	pages, err := fs.Glob(fsys, path.Join(dir, "*.html"))
	if err != nil {
		return nil, err
	}

	layout := path.Join(dir, "layout.html")
	templates := map[string]*template.Template{}

	for _, page := range pages {
		if page == layout {
			continue
		}

		name := strings.TrimSuffix(path.Base(page), ".html")
		t, err := template.New("layout.html").Funcs(funcMap).ParseFS(fsys, layout, page)
		if err != nil {
			return nil, fmt.Errorf("render.NewRenderer: parse %s: %w", name, err)
		}
		templates[name] = t
	}

	return &Renderer{templates: templates}, nil
}

var funcMap = template.FuncMap{
	"year": currentYear,
}

// Render satisfies echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("render.Renderer.Render: template not found: %s", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
