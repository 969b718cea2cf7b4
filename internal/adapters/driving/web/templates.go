package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"sync"
)

//go:embed templates/*.html
var embedded embed.FS

// Page template names.
const (
	pageCatalog = "catalog.html"
	pageApply   = "apply.html"
	pageError   = "error.html"
	layoutFile  = "layout.html"
)

var pages = []string{pageCatalog, pageApply, pageError}

// DefaultTemplates returns the templates compiled into the binary.
func DefaultTemplates() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(fmt.Sprintf("web: embedded templates: %v", err))
	}
	return sub
}

// TemplatesFS selects the template source: the directory when set,
// otherwise the embedded templates.
func TemplatesFS(dir string) fs.FS {
	if dir == "" {
		return DefaultTemplates()
	}
	return os.DirFS(dir)
}

// Renderer executes page templates. Templates can be swapped at runtime
// with Reload; requests in flight keep the set they started with.
type Renderer struct {
	mu    sync.RWMutex
	pages map[string]*template.Template
}

// NewRenderer parses every page from fsys.
func NewRenderer(fsys fs.FS) (*Renderer, error) {
	r := &Renderer{}
	if err := r.Reload(fsys); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload parses every page from fsys and replaces the current set.
// On error the current set is kept.
func (r *Renderer) Reload(fsys fs.FS) error {
	parsed := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.New(page).ParseFS(fsys, layoutFile, page)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", page, err)
		}
		parsed[page] = tmpl
	}

	r.mu.Lock()
	r.pages = parsed
	r.mu.Unlock()
	return nil
}

// Render executes the page's layout into w. Output is buffered so a
// failing template writes nothing.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	r.mu.RLock()
	tmpl, ok := r.pages[page]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("rendering %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
