// Package config provides configuration loading and validation for the
// readmetrics generator.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/readmetrics/readmetrics/pkg/graphics"
)

// Sentinel validation errors.
var (
	ErrInvalidSymbolVersion = errors.New("symbol version must be between 1 and 3")
	ErrMissingSectionName   = errors.New("section name must not be empty")
	ErrInvalidParallelism   = errors.New("max parallel fetches must be positive")
	ErrMissingToken         = errors.New("github token is required")
)

// Config holds all configuration for a report generation run.
type Config struct {
	Auth    AuthConfig    `mapstructure:"auth"`
	Render  RenderConfig  `mapstructure:"render"`
	Show    ShowConfig    `mapstructure:"show"`
	Commit  CommitConfig  `mapstructure:"commit"`
	Fetch   FetchConfig   `mapstructure:"fetch"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// AuthConfig holds API credentials.
type AuthConfig struct {
	GitHubToken    string `mapstructure:"github_token"`
	WakatimeAPIKey string `mapstructure:"wakatime_api_key"`
}

// RenderConfig controls report appearance.
type RenderConfig struct {
	// SymbolVersion selects the progress bar glyph pair (1..3).
	SymbolVersion int `mapstructure:"symbol_version"`

	// SectionName identifies the managed document region.
	SectionName string `mapstructure:"section_name"`

	// Locale selects the display language for labels.
	Locale string `mapstructure:"locale"`

	// UpdatedDateLayout is the Go time layout for the footer.
	UpdatedDateLayout string `mapstructure:"updated_date_layout"`

	// ChartPath is where the LOC timeline chart is written, relative to the
	// working directory, and how the README links it. The README commit does
	// not include this file; the surrounding workflow must commit it for the
	// link to resolve on the published profile.
	ChartPath string `mapstructure:"chart_path"`
}

// ShowConfig toggles individual report blocks.
type ShowConfig struct {
	Commit           bool `mapstructure:"commit"`
	DaysOfWeek       bool `mapstructure:"days_of_week"`
	Timezone         bool `mapstructure:"timezone"`
	Language         bool `mapstructure:"language"`
	Editors          bool `mapstructure:"editors"`
	Projects         bool `mapstructure:"projects"`
	OperatingSystems bool `mapstructure:"operating_systems"`
	ShortInfo        bool `mapstructure:"short_info"`
	LanguagePerRepo  bool `mapstructure:"language_per_repo"`
	LinesOfCode      bool `mapstructure:"lines_of_code"`
	LocChart         bool `mapstructure:"loc_chart"`
	TotalCodeTime    bool `mapstructure:"total_code_time"`
	ProfileViews     bool `mapstructure:"profile_views"`
	UpdatedDate      bool `mapstructure:"updated_date"`
}

// CommitConfig controls how the README update is committed.
type CommitConfig struct {
	Message  string `mapstructure:"message"`
	Branch   string `mapstructure:"branch"`
	Username string `mapstructure:"username"`
	Email    string `mapstructure:"email"`
}

// FetchConfig controls the data retrieval layer.
type FetchConfig struct {
	// MaxParallel bounds concurrent per-repository history fetches.
	MaxParallel int `mapstructure:"max_parallel"`

	// CacheDir is the on-disk response cache location; empty disables caching.
	CacheDir string `mapstructure:"cache_dir"`

	// CacheTTL is how long cached responses stay valid. New activity only
	// shows up once entries expire, so the lifetime should stay well under
	// the run cadence. Non-positive keeps entries forever.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// LoggingConfig holds logging and tracing configuration.
type LoggingConfig struct {
	Level        string `mapstructure:"level"`
	Format       string `mapstructure:"format"`
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
}

// Load reads configuration from an optional YAML file, a .env file when
// present, and READMETRICS_-prefixed environment variables.
func Load(configPath string) (*Config, error) {
	// A missing .env file is the normal case outside CI.
	_ = godotenv.Load()

	// ExperimentalBindStruct makes Unmarshal see READMETRICS_-prefixed env
	// vars for keys without defaults; it is the default in viper >= 1.21 and
	// opt-in on the 1.20 line pinned here.
	viperCfg := viper.NewWithOptions(viper.ExperimentalBindStruct())
	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("readmetrics")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("./config")
	}

	viperCfg.SetEnvPrefix("READMETRICS")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// validateConfig validates the loaded configuration.
func validateConfig(config *Config) error {
	if config.Render.SymbolVersion < 1 || config.Render.SymbolVersion > graphics.SymbolVersionCount {
		return fmt.Errorf("%w: %d", ErrInvalidSymbolVersion, config.Render.SymbolVersion)
	}

	if config.Render.SectionName == "" {
		return ErrMissingSectionName
	}

	if config.Fetch.MaxParallel <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidParallelism, config.Fetch.MaxParallel)
	}

	return nil
}
