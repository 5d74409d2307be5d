package generate

import (
	"log/slog"

	bserrors "github.com/usmansaleem/blog-static-generator/internal/errors"
	"github.com/usmansaleem/blog-static-generator/internal/model"
	"github.com/usmansaleem/blog-static-generator/internal/pagination"
	"github.com/usmansaleem/blog-static-generator/internal/render"
)

// IndexTemplate is the template used for listing pages.
const IndexTemplate = "index"

// IndexPages renders the paginated post listing.
type IndexPages struct {
	OutputDir string
	Site      model.SiteData
	Engine    render.Engine
	Logger    *slog.Logger

	PageSize int // defaults to pagination.DefaultPageSize
	Delta    int // window half-width; zero shows only the current page and the ends
}

// GenerateAll renders every listing page. posts must be sorted newest first.
// The page holding the newest posts is written to the site root.
//
// With no posts, a single empty listing is written to the site root with
// CurrentPage and TotalPages both zero, so the site always has a home page.
func (g *IndexPages) GenerateAll(posts []*model.Post) error {
	logger := loggerOrDefault(g.Logger)
	size := g.PageSize
	if size == 0 {
		size = pagination.DefaultPageSize
	}

	total, err := pagination.TotalPages(len(posts), size)
	if err != nil {
		return err
	}
	logger.Info("Generating pagination pages", "total", total, "newest_page", total, "oldest_page", min(total, 1))

	if total == 0 {
		return g.write("index.html", model.IndexPageData{
			Site:  g.Site,
			Posts: []*model.Post{},
			Pages: []pagination.WindowEntry{},
		})
	}

	for p := 1; p <= total; p++ {
		page, err := pagination.Plan(len(posts), size, p)
		if err != nil {
			return err
		}
		window, err := pagination.Window(p, total, g.Delta)
		if err != nil {
			return err
		}
		data := model.IndexPageData{
			Site:        g.Site,
			Posts:       posts[page.Start:page.End],
			CurrentPage: page.Number,
			TotalPages:  page.TotalPages,
			PostCount:   page.TotalPosts,
			HasPrevPage: page.HasPrevPage,
			HasNextPage: page.HasNextPage,
			PrevPageURL: page.PrevPageURL,
			NextPageURL: page.NextPageURL,
			Pages:       window,
		}
		if err := g.write(pagination.OutputPath(p, total), data); err != nil {
			return bserrors.Annotate(err, "page", p)
		}
		logger.Debug("Generated page", "page", p, "total", total)
	}
	logger.Info("Generated pagination pages", "count", total)
	return nil
}

func (g *IndexPages) write(rel string, data model.IndexPageData) error {
	html, err := g.Engine.Render(IndexTemplate, data)
	if err != nil {
		return err
	}
	return writePage(g.OutputDir, rel, html)
}
