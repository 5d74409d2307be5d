// Package render wraps html/template with the page and partial layout used by
// the site templates.
//
// A templates directory holds one file per page template ("blog.html",
// "index.html") and a partials subdirectory whose files are registered once at
// startup as named sub-templates, callable from any page as
// {{template "header" .}}.
package render

import (
	"bytes"
	"errors"
	"html/template"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	bserrors "github.com/usmansaleem/blog-static-generator/internal/errors"
	"github.com/usmansaleem/blog-static-generator/internal/markup"
)

const (
	// PartialsDir is the subdirectory of the templates directory holding sub-templates.
	PartialsDir = "partials"
	// DefaultPartialSuffix marks a file in PartialsDir as a sub-template.
	DefaultPartialSuffix = ".html"
	// TemplateExt is appended to a template name to find its file.
	TemplateExt = ".html"
)

// Engine renders named page templates.
type Engine interface {
	Render(name string, data any) ([]byte, error)
}

// Renderer is the html/template based Engine.
type Renderer struct {
	dir      string
	partials *template.Template
	pages    map[string]*template.Template
	logger   *slog.Logger
}

// Options configures New.
type Options struct {
	// PartialSuffix selects which files in the partials directory are loaded.
	PartialSuffix string
	Logger        *slog.Logger
}

// New loads all partials under dir/partials. A missing partials directory is
// a NotFound error.
func New(dir string, opts Options) (*Renderer, error) {
	if opts.PartialSuffix == "" {
		opts.PartialSuffix = DefaultPartialSuffix
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	r := &Renderer{
		dir:    dir,
		pages:  make(map[string]*template.Template),
		logger: opts.Logger,
	}
	r.partials = template.New("").Funcs(FuncMap(markup.New()))

	partialsDir := filepath.Join(dir, PartialsDir)
	info, err := os.Stat(partialsDir)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !info.IsDir()) {
		return nil, bserrors.NotFound("partials directory not found").
			WithContext("path", partialsDir).
			Build()
	}
	if err != nil {
		return nil, bserrors.IOFailure(err, "stat partials directory").WithContext("path", partialsDir).Build()
	}

	entries, err := os.ReadDir(partialsDir)
	if err != nil {
		return nil, bserrors.IOFailure(err, "read partials directory").WithContext("path", partialsDir).Build()
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), opts.PartialSuffix) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, file := range names {
		path := filepath.Join(partialsDir, file)
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, bserrors.IOFailure(err, "read partial").WithContext("path", path).Build()
		}
		name := strings.TrimSuffix(file, opts.PartialSuffix)
		if _, err := r.partials.New(name).Parse(string(src)); err != nil {
			return nil, bserrors.RenderFailure(err, "parse partial").WithContext("path", path).Build()
		}
		r.logger.Debug("Registered partial", "name", name)
	}
	r.logger.Info("Loaded partials", "count", len(names), "path", partialsDir)
	return r, nil
}

// Render executes the page template name against data. Page templates are
// parsed on first use and reused afterwards.
func (r *Renderer) Render(name string, data any) ([]byte, error) {
	tpl, err := r.page(name)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, bserrors.RenderFailure(err, "execute template").WithContext("template", name).Build()
	}
	return buf.Bytes(), nil
}

func (r *Renderer) page(name string) (*template.Template, error) {
	if tpl, ok := r.pages[name]; ok {
		return tpl, nil
	}

	path := filepath.Join(r.dir, name+TemplateExt)
	src, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, bserrors.RenderFailure(err, "template not found").WithContext("path", path).Build()
	}
	if err != nil {
		return nil, bserrors.IOFailure(err, "read template").WithContext("path", path).Build()
	}

	// Each page gets its own clone so a page cannot redefine a partial for
	// the others.
	tpl, err := r.partials.Clone()
	if err != nil {
		return nil, bserrors.RenderFailure(err, "clone partials").WithContext("template", name).Build()
	}
	if _, err := tpl.New(name).Parse(string(src)); err != nil {
		return nil, bserrors.RenderFailure(err, "parse template").WithContext("path", path).Build()
	}
	r.pages[name] = tpl
	return tpl, nil
}
