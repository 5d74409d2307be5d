// Package build runs the site generation steps in order.
package build

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/usmansaleem/blog-static-generator/internal/config"
	"github.com/usmansaleem/blog-static-generator/internal/content"
	bserrors "github.com/usmansaleem/blog-static-generator/internal/errors"
	"github.com/usmansaleem/blog-static-generator/internal/generate"
	"github.com/usmansaleem/blog-static-generator/internal/model"
	"github.com/usmansaleem/blog-static-generator/internal/pagination"
	"github.com/usmansaleem/blog-static-generator/internal/render"
)

const totalSteps = 5

// Result summarizes a successful build.
type Result struct {
	OutputDir string
	Posts     int
	Pages     int
	Duration  time.Duration
}

// Builder generates the site. A Builder runs one build at a time.
type Builder struct {
	cfg    config.Config
	engine render.Engine
	logger *slog.Logger
	now    func() time.Time
}

// New returns a Builder rendering through engine.
func New(cfg config.Config, engine render.Engine, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{cfg: cfg, engine: engine, logger: logger, now: time.Now}
}

// Run cleans the output directory, loads content, writes post and listing
// pages and stages assets. The first failing step aborts the build; output
// written so far is left in place.
func (b *Builder) Run() (Result, error) {
	if err := b.cfg.Validate(); err != nil {
		return Result{}, err
	}
	start := b.now()
	site := model.SiteData{Title: b.cfg.SiteTitle, BaseURL: b.cfg.BaseURL}

	b.step(1, "Cleaning output directory")
	if err := cleanDir(b.cfg.OutputDir); err != nil {
		return Result{}, err
	}

	b.step(2, "Loading blog data")
	posts, err := content.NewLoader(b.cfg.DataFile, b.logger).Load()
	if err != nil {
		return Result{}, err
	}
	pages, err := pagination.TotalPages(len(posts), b.cfg.PageSize)
	if err != nil {
		return Result{}, err
	}
	if len(posts) > 0 {
		b.logger.Info("Newest post", "created", posts[0].CreatedOn.Format(time.RFC3339), "page", pages)
		b.logger.Info("Oldest post", "created", posts[len(posts)-1].CreatedOn.Format(time.RFC3339), "page", 1)
	} else {
		b.logger.Warn("No blog posts found; writing an empty home page")
	}

	b.step(3, "Generating blog post pages")
	postPages := &generate.PostPages{
		OutputDir: b.cfg.OutputDir,
		Site:      site,
		Engine:    b.engine,
		Logger:    b.logger,
	}
	if err := postPages.GenerateAll(posts); err != nil {
		return Result{}, err
	}

	b.step(4, "Generating pagination pages")
	indexPages := &generate.IndexPages{
		OutputDir: b.cfg.OutputDir,
		Site:      site,
		Engine:    b.engine,
		Logger:    b.logger,
		PageSize:  b.cfg.PageSize,
		Delta:     b.cfg.WindowDelta,
	}
	if err := indexPages.GenerateAll(posts); err != nil {
		return Result{}, err
	}

	b.step(5, "Copying static assets")
	assets := &generate.Assets{
		SourceDir: b.cfg.AssetsDir,
		OutputDir: b.cfg.OutputDir,
		Logger:    b.logger,
	}
	if err := assets.CopyAll(); err != nil {
		return Result{}, err
	}

	res := Result{
		OutputDir: b.cfg.OutputDir,
		Posts:     len(posts),
		Pages:     pages,
		Duration:  b.now().Sub(start),
	}
	b.logger.Info("Build complete", "output", res.OutputDir, "posts", res.Posts, "pages", res.Pages, "duration", res.Duration)
	return res, nil
}

func (b *Builder) step(n int, name string) {
	b.logger.Info(fmt.Sprintf("[Step %d/%d] %s", n, totalSteps, name))
}

// cleanDir removes dir and recreates it empty.
func cleanDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return bserrors.IOFailure(err, "failed to remove output directory").WithContext("path", dir).Build()
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return bserrors.IOFailure(err, "failed to create output directory").WithContext("path", dir).Build()
	}
	return nil
}
