package content

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	bserrors "github.com/usmansaleem/blog-static-generator/internal/errors"
	"github.com/usmansaleem/blog-static-generator/internal/model"
)

// postFrontMatter is the front matter of a Markdown post.
type postFrontMatter struct {
	ID          string   `yaml:"id"`
	Slug        string   `yaml:"slug"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Section     string   `yaml:"section"`
	Date        string   `yaml:"date"`
	Modified    string   `yaml:"modified"`
	Categories  []string `yaml:"categories"`
}

// loadMarkdownDir reads every .md file below l.Path. The body is converted to
// HTML so that all sources yield the same kind of post body.
func (l *Loader) loadMarkdownDir() ([]*model.Post, error) {
	var posts []*model.Post
	seen := make(map[string]struct{})

	err := filepath.WalkDir(l.Path, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return bserrors.IOFailure(walkErr, "walk content directory").WithContext("path", path).Build()
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}

		post, err := l.readMarkdownPost(path)
		if err != nil {
			return err
		}
		if _, dup := seen[post.Slug]; dup {
			return duplicateSlug(path, post.Slug)
		}
		seen[post.Slug] = struct{}{}
		posts = append(posts, post)
		l.Logger.Debug("Loaded post", "path", path, "slug", post.Slug)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (l *Loader) readMarkdownPost(path string) (*model.Post, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, bserrors.IOFailure(err, "read post").WithContext("path", path).Build()
	}

	var fm postFrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return nil, bserrors.WrapError(err, bserrors.CategoryMalformed, "invalid front matter").
			WithContext("path", path).
			Build()
	}

	html, err := l.Markdown.Convert(body)
	if err != nil {
		return nil, bserrors.WrapError(err, bserrors.CategoryMalformed, "invalid markdown").
			WithContext("path", path).
			Build()
	}

	baseName := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	r := record{
		ID:            fm.ID,
		URLFriendlyID: fm.Slug,
		Title:         fm.Title,
		Description:   fm.Description,
		Body:          html,
		BlogSection:   fm.Section,
		CreatedOn:     fm.Date,
		ModifiedOn:    fm.Modified,
	}
	if r.URLFriendlyID == "" {
		r.URLFriendlyID = baseName
	}
	if r.Title == "" {
		r.Title = titleFromFileName(baseName)
	}
	if r.BlogSection == "" {
		r.BlogSection = sectionFromPath(l.Path, path)
	}
	for _, name := range fm.Categories {
		r.Categories = append(r.Categories, model.Category{Name: name})
	}
	return r.toPost(path, l.Logger)
}

// titleFromFileName turns "my-first_post" into "My First Post".
func titleFromFileName(name string) string {
	spaced := strings.ReplaceAll(strings.ReplaceAll(name, "-", " "), "_", " ")
	return cases.Title(language.English).String(spaced)
}

// sectionFromPath uses the first directory below root as the section.
func sectionFromPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return ""
	}
	dir := filepath.Dir(rel)
	if dir == "." {
		return ""
	}
	return strings.Split(filepath.ToSlash(dir), "/")[0]
}
