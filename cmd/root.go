package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/usmansaleem/blog-static-generator/internal/config"
	bserrors "github.com/usmansaleem/blog-static-generator/internal/errors"
)

var (
	cfgFile   string
	verbose   bool
	appConfig config.Config
)

var rootCmd = &cobra.Command{
	Use:   "blog-static-generator",
	Short: "Generates a static, paginated blog from a list of posts",
	Long: `blog-static-generator reads blog posts from a data file, renders one page
per post and a reverse-chronological paginated listing, copies static assets,
and writes the whole site to the output directory.

Run without a subcommand to build the site.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(verbose)
		return initializeConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuildProcess(cmd.OutOrStdout(), appConfig)
	},
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if !isBuildError(err) {
			fmt.Fprintln(os.Stderr, err)
		}
		return bserrors.ExitCode(err)
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func initializeConfig() error {
	v := config.NewViper()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
			slog.Debug("No config file found; using defaults and environment")
		case cfgFile != "" && errors.Is(err, os.ErrNotExist):
			return bserrors.NotFound("config file not found").WithContext("path", cfgFile).Build()
		default:
			return bserrors.WrapError(err, bserrors.CategoryConfig, "failed to read config file").Build()
		}
	} else {
		slog.Info("Using config file", "path", v.ConfigFileUsed())
	}

	cfg, err := config.Decode(v)
	if err != nil {
		return err
	}
	appConfig = cfg
	return nil
}
