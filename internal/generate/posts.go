package generate

import (
	"log/slog"
	"path"

	bserrors "github.com/usmansaleem/blog-static-generator/internal/errors"
	"github.com/usmansaleem/blog-static-generator/internal/model"
	"github.com/usmansaleem/blog-static-generator/internal/render"
)

// PostTemplate is the template used for post detail pages.
const PostTemplate = "blog"

const progressEvery = 10

// PostPages renders one detail page per post.
type PostPages struct {
	OutputDir string
	Site      model.SiteData
	Engine    render.Engine
	Logger    *slog.Logger
}

// PostPath returns the output path of a post page relative to the output root.
func PostPath(slug string) string {
	return path.Join("view", "blog", slug, "index.html")
}

// GenerateAll renders every post and stops at the first failure.
func (g *PostPages) GenerateAll(posts []*model.Post) error {
	logger := loggerOrDefault(g.Logger)
	logger.Info("Generating blog post pages", "count", len(posts))

	for i, post := range posts {
		if err := g.Generate(post); err != nil {
			return err
		}
		if n := i + 1; n%progressEvery == 0 {
			logger.Info("Generated blog posts", "done", n, "total", len(posts))
		}
	}
	logger.Info("Generated all blog post pages", "count", len(posts))
	return nil
}

// Generate renders a single post page.
func (g *PostPages) Generate(post *model.Post) error {
	html, err := g.Engine.Render(PostTemplate, model.PostPageData{
		Site: g.Site,
		Post: post,
		Date: model.NewPostDate(post.CreatedOn),
	})
	if err != nil {
		return bserrors.Annotate(err, "slug", post.Slug)
	}
	return writePage(g.OutputDir, PostPath(post.Slug), html)
}

func loggerOrDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}
