package config

import (
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	bserrors "github.com/usmansaleem/blog-static-generator/internal/errors"
	"github.com/usmansaleem/blog-static-generator/internal/pagination"
	"github.com/usmansaleem/blog-static-generator/internal/render"
)

// EnvPrefix is the prefix of environment variables overriding config keys,
// e.g. BLOGGEN_OUTPUTDIR.
const EnvPrefix = "BLOGGEN"

// Config is the build configuration.
type Config struct {
	SiteTitle      string `mapstructure:"siteTitle"`
	BaseURL        string `mapstructure:"baseURL"`
	OutputDir      string `mapstructure:"outputDir"`
	DataFile       string `mapstructure:"dataFile"`
	TemplatesDir   string `mapstructure:"templatesDir"`
	PartialsSuffix string `mapstructure:"partialsSuffix"`
	AssetsDir      string `mapstructure:"assetsDir"`
	PageSize       int    `mapstructure:"pageSize"`
	WindowDelta    int    `mapstructure:"windowDelta"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("siteTitle", "My Blog")
	v.SetDefault("baseURL", "")
	v.SetDefault("outputDir", "public_site")
	v.SetDefault("dataFile", "data/data.json")
	v.SetDefault("templatesDir", "src/templates")
	v.SetDefault("partialsSuffix", render.DefaultPartialSuffix)
	v.SetDefault("assetsDir", "static-assets")
	v.SetDefault("pageSize", pagination.DefaultPageSize)
	v.SetDefault("windowDelta", pagination.DefaultDelta)
}

// NewViper returns a viper instance with defaults and environment overrides.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Decode unmarshals v into a validated Config.
func Decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, bserrors.WrapError(err, bserrors.CategoryConfig, "unable to decode config").Build()
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration with only defaults applied.
func Default() Config {
	v := viper.New()
	SetDefaults(v)
	cfg, _ := Decode(v)
	return cfg
}

// Validate checks value ranges and required paths. The output directory is
// wiped at the start of a build, so it must not be or contain an input path.
func (c Config) Validate() error {
	switch {
	case c.PageSize <= 0:
		return bserrors.ConfigError("pageSize must be positive").WithContext("pageSize", c.PageSize).Build()
	case c.WindowDelta < 0:
		return bserrors.ConfigError("windowDelta must not be negative").WithContext("windowDelta", c.WindowDelta).Build()
	case strings.TrimSpace(c.OutputDir) == "":
		return bserrors.ConfigError("outputDir must be set").Build()
	case strings.TrimSpace(c.DataFile) == "":
		return bserrors.ConfigError("dataFile must be set").Build()
	case strings.TrimSpace(c.TemplatesDir) == "":
		return bserrors.ConfigError("templatesDir must be set").Build()
	case strings.TrimSpace(c.AssetsDir) == "":
		return bserrors.ConfigError("assetsDir must be set").Build()
	case c.PartialsSuffix == "":
		return bserrors.ConfigError("partialsSuffix must be set").Build()
	}

	inputs := []struct{ key, path string }{
		{"dataFile", c.DataFile},
		{"templatesDir", c.TemplatesDir},
		{"assetsDir", c.AssetsDir},
	}
	for _, in := range inputs {
		if within(c.OutputDir, in.path) {
			return bserrors.ConfigError("outputDir must not contain "+in.key).
				WithContext("outputDir", c.OutputDir).
				WithContext(in.key, in.path).
				Build()
		}
	}
	return nil
}

// within reports whether path is dir or lies beneath it.
func within(dir, path string) bool {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
