package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"sync"
	"time"

	"devil2devil.org/economy-web/internal/web/format"
	"devil2devil.org/economy-web/internal/web/identity"
	"devil2devil.org/economy-web/internal/web/paging"
	"devil2devil.org/economy-web/internal/web/session"
)

//go:embed layout pages partials
var files embed.FS

// BaseData carries the fields every page hands to the base layout. Page view
// models embed it.
type BaseData struct {
	Title     string
	Path      string
	LoginPath string
	Visitor   identity.Session
	CSRFToken string
	Flashes   []session.Flash
}

// Pager binds a server pagination envelope to the path its page links point
// at. Built in templates via the pager function.
type Pager struct {
	Base string
	Meta paging.Meta
}

// Renderer executes named page templates inside the base layout. In dev mode
// the template set is rebuilt on every render so edits show up without a
// restart.
type Renderer struct {
	dev bool

	mu    sync.RWMutex
	cache map[string]*template.Template
}

// New parses the embedded template tree. Pass dev=true to reparse per render.
func New(dev bool) (*Renderer, error) {
	r := &Renderer{dev: dev}
	cache, err := parseAll()
	if err != nil {
		return nil, err
	}
	r.cache = cache
	return r, nil
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"now":      time.Now,
		"points":   format.Points,
		"date":     format.Date,
		"datetime": format.DateTime,
		"relative": func(t time.Time) string { return format.Relative(t, time.Now()) },
		"filesize": format.FileSize,
		"window":   paging.Window,
		"add":      func(a, b int) int { return a + b },
		"sub":      func(a, b int) int { return a - b },
		"pager":    func(base string, meta paging.Meta) Pager { return Pager{Base: base, Meta: meta} },
	}
}

// parseAll builds one template set per page: the shared layout and partials
// plus that page's file, so every page can define its own "content" block.
func parseAll() (map[string]*template.Template, error) {
	root := template.New("_root").Funcs(funcMap())

	var shared []string
	for _, dir := range []string{"layout", "partials"} {
		entries, err := fs.ReadDir(files, dir)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), ".tmpl") {
				shared = append(shared, path.Join(dir, e.Name()))
			}
		}
	}
	root, err := root.ParseFS(files, shared...)
	if err != nil {
		return nil, err
	}

	pages, err := fs.ReadDir(files, "pages")
	if err != nil {
		return nil, err
	}
	cache := make(map[string]*template.Template, len(pages))
	for _, e := range pages {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".tmpl") {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".tmpl")
		set, err := root.Clone()
		if err != nil {
			return nil, err
		}
		set, err = set.ParseFS(files, path.Join("pages", e.Name()))
		if err != nil {
			return nil, err
		}
		cache[name] = set
	}
	if len(cache) == 0 {
		return nil, fmt.Errorf("no page templates found")
	}
	return cache, nil
}

func (r *Renderer) lookup(page string) (*template.Template, error) {
	if r.dev {
		cache, err := parseAll()
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.cache = cache
		r.mu.Unlock()
	}

	r.mu.RLock()
	set, ok := r.cache[page]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown page template %q", page)
	}
	return set, nil
}

// Render executes the base layout for the named page. Output is buffered so a
// template failure yields a clean 500 instead of a truncated page.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) {
	set, err := r.lookup(page)
	if err != nil {
		http.Error(w, fmt.Sprintf("template error: %v", err), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := set.ExecuteTemplate(&buf, "base", data); err != nil {
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
