package config

import (
	"time"

	"github.com/spf13/viper"
)

// Default configuration values.
const (
	defaultSymbolVersion = 1
	defaultSectionName   = "waka"
	defaultLocale        = "en"
	defaultDateLayout    = "02/01/2006 15:04:05"
	defaultMaxParallel   = 4
	defaultCommitMessage = "Updated with Dev Metrics"
	defaultChartPath     = "charts/loc_timeline.html"

	// defaultCacheTTL keeps cached responses shorter-lived than the usual
	// daily run cadence so fresh activity is picked up.
	defaultCacheTTL = 6 * time.Hour
)

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	// Render defaults.
	viperCfg.SetDefault("render.symbol_version", defaultSymbolVersion)
	viperCfg.SetDefault("render.section_name", defaultSectionName)
	viperCfg.SetDefault("render.locale", defaultLocale)
	viperCfg.SetDefault("render.updated_date_layout", defaultDateLayout)
	viperCfg.SetDefault("render.chart_path", defaultChartPath)

	// Show defaults mirror a useful out-of-the-box report.
	viperCfg.SetDefault("show.commit", true)
	viperCfg.SetDefault("show.days_of_week", true)
	viperCfg.SetDefault("show.timezone", false)
	viperCfg.SetDefault("show.language", true)
	viperCfg.SetDefault("show.editors", false)
	viperCfg.SetDefault("show.projects", false)
	viperCfg.SetDefault("show.operating_systems", false)
	viperCfg.SetDefault("show.short_info", true)
	viperCfg.SetDefault("show.language_per_repo", true)
	viperCfg.SetDefault("show.lines_of_code", false)
	viperCfg.SetDefault("show.loc_chart", false)
	viperCfg.SetDefault("show.total_code_time", true)
	viperCfg.SetDefault("show.profile_views", false)
	viperCfg.SetDefault("show.updated_date", false)

	// Commit defaults.
	viperCfg.SetDefault("commit.message", defaultCommitMessage)
	viperCfg.SetDefault("commit.branch", "")
	viperCfg.SetDefault("commit.username", "readme-bot")
	viperCfg.SetDefault("commit.email", "41898282+github-actions[bot]@users.noreply.github.com")

	// Fetch defaults.
	viperCfg.SetDefault("fetch.max_parallel", defaultMaxParallel)
	viperCfg.SetDefault("fetch.cache_dir", "")
	viperCfg.SetDefault("fetch.cache_ttl", defaultCacheTTL)

	// Logging defaults.
	viperCfg.SetDefault("logging.level", "info")
	viperCfg.SetDefault("logging.format", "text")
	viperCfg.SetDefault("logging.otlp_endpoint", "")
}
