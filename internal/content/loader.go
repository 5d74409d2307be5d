// Package content loads blog posts from the persisted content source.
//
// Three source shapes are supported: a JSON array file, a YAML array file
// with the same record fields, and a directory of Markdown files with YAML
// front matter. Whatever the shape, Load returns posts sorted newest first.
package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v2"

	bserrors "github.com/usmansaleem/blog-static-generator/internal/errors"
	"github.com/usmansaleem/blog-static-generator/internal/markup"
	"github.com/usmansaleem/blog-static-generator/internal/model"
)

// Loader reads posts from a file or directory.
type Loader struct {
	Path     string
	Markdown *markup.Converter
	Logger   *slog.Logger
}

// NewLoader returns a Loader for path.
func NewLoader(path string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{Path: path, Markdown: markup.New(), Logger: logger}
}

// Load reads every post and sorts them by creation time, newest first. Posts
// created at the same instant keep their source order.
func (l *Loader) Load() ([]*model.Post, error) {
	l.Logger.Info("Loading blog data", "path", l.Path)

	info, err := os.Stat(l.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, bserrors.NotFound("data file not found").WithContext("path", l.Path).Build()
	}
	if err != nil {
		return nil, bserrors.IOFailure(err, "stat data source").WithContext("path", l.Path).Build()
	}

	var posts []*model.Post
	switch {
	case info.IsDir():
		posts, err = l.loadMarkdownDir()
	case isYAML(l.Path):
		posts, err = l.loadRecords(yamlRecords)
	default:
		posts, err = l.loadRecords(jsonRecords)
	}
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(posts, func(a, b *model.Post) int {
		return b.CreatedOn.Compare(a.CreatedOn)
	})
	l.Logger.Info("Loaded blog posts", "count", len(posts))
	return posts, nil
}

type decodeFunc func(data []byte) ([]record, error)

func (l *Loader) loadRecords(decode decodeFunc) ([]*model.Post, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, bserrors.IOFailure(err, "read data file").WithContext("path", l.Path).Build()
	}
	records, err := decode(data)
	if err != nil {
		return nil, bserrors.WrapError(err, bserrors.CategoryMalformed, "data file does not contain an array").
			WithContext("path", l.Path).
			Build()
	}

	posts := make([]*model.Post, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		post, err := r.toPost(l.Path, l.Logger)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[post.Slug]; dup {
			return nil, duplicateSlug(l.Path, post.Slug)
		}
		seen[post.Slug] = struct{}{}
		posts = append(posts, post)
	}
	return posts, nil
}

var errNotArray = errors.New("top-level value is not an array")

func jsonRecords(data []byte) ([]record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errNotArray
	}
	var records []record
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func yamlRecords(data []byte) ([]record, error) {
	var records []record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	if records == nil && len(bytes.TrimSpace(data)) > 0 {
		// A null document decodes without error.
		return nil, errNotArray
	}
	return records, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func duplicateSlug(source, slug string) error {
	return bserrors.Malformed("duplicate urlFriendlyId").
		WithContext("source", source).
		WithContext("slug", slug).
		Build()
}
