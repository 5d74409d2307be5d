package cmd

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/usmansaleem/blog-static-generator/internal/build"
	"github.com/usmansaleem/blog-static-generator/internal/config"
	"github.com/usmansaleem/blog-static-generator/internal/render"
	"github.com/usmansaleem/blog-static-generator/internal/ui"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the static site from the data file, templates and static assets",
	Long: `The build command clears the output directory, loads posts from the data
file, renders one page per post under view/blog/{slug}/, renders the paginated
listing (newest page at the site root, older pages under page/{n}/), and copies
static assets.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuildProcess(cmd.OutOrStdout(), appConfig)
	},
}

// reportedError marks a build error whose failure banner was already printed.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

func isBuildError(err error) bool {
	var reported reportedError
	return errors.As(err, &reported)
}

func runBuildProcess(out io.Writer, cfg config.Config) error {
	ui.Start(out)
	slog.Info("Build settings",
		"output", cfg.OutputDir,
		"data", cfg.DataFile,
		"templates", cfg.TemplatesDir,
		"assets", cfg.AssetsDir,
		"page_size", cfg.PageSize)

	res, err := buildSite(cfg)
	if err != nil {
		slog.Error("Build failed", "error", err)
		ui.Failure(os.Stderr, err)
		return reportedError{err}
	}
	ui.Success(out, res.OutputDir, res.Duration)
	return nil
}

func buildSite(cfg config.Config) (build.Result, error) {
	engine, err := render.New(cfg.TemplatesDir, render.Options{
		PartialSuffix: cfg.PartialsSuffix,
		Logger:        slog.Default(),
	})
	if err != nil {
		return build.Result{}, err
	}
	return build.New(cfg, engine, slog.Default()).Run()
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
