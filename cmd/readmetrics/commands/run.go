package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/readmetrics/readmetrics/internal/cache"
	"github.com/readmetrics/readmetrics/pkg/config"
	"github.com/readmetrics/readmetrics/pkg/github"
	"github.com/readmetrics/readmetrics/pkg/graphics"
	"github.com/readmetrics/readmetrics/pkg/locale"
	"github.com/readmetrics/readmetrics/pkg/observability"
	"github.com/readmetrics/readmetrics/pkg/report"
	"github.com/readmetrics/readmetrics/pkg/sections"
	"github.com/readmetrics/readmetrics/pkg/wakatime"
)

const serviceName = "readmetrics"

// NewRunCommand creates the run subcommand: generate the full report and
// update the profile README when it changed.
func NewRunCommand() *cobra.Command {
	var (
		configPath string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate the report and update the profile README",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd.Context(), configPath, dryRun)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the README diff instead of committing")

	return cmd
}

// runGenerate wires configuration, observability and clients together, then
// regenerates the managed README section.
func runGenerate(ctx context.Context, configPath string, dryRun bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Auth.GitHubToken == "" {
		return config.ErrMissingToken
	}

	runID := uuid.NewString()

	providers, err := observability.Init(observability.Config{
		Service:      serviceName,
		RunID:        runID,
		OTLPEndpoint: cfg.Logging.OTLPEndpoint,
		LogLevel:     cfg.Logging.Level,
		LogFormat:    cfg.Logging.Format,
	})
	if err != nil {
		return fmt.Errorf("init observability: %w", err)
	}

	defer func() {
		shutdownErr := providers.Shutdown(context.Background())
		if shutdownErr != nil {
			fmt.Fprintf(os.Stderr, "telemetry shutdown: %v\n", shutdownErr)
		}
	}()

	ctx, span := providers.Tracer.Start(ctx, "generate")
	defer span.End()

	logger := providers.Logger

	opts, err := renderOptions(cfg)
	if err != nil {
		return err
	}

	store, err := cache.New(cfg.Fetch.CacheDir, cfg.Fetch.CacheTTL)
	if err != nil {
		return err
	}

	gh := github.NewClient(cfg.Auth.GitHubToken,
		github.WithCache(store),
		github.WithLogger(logger),
	)

	user, err := gh.Viewer(ctx)
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "generating report", "user", user.Login)

	var waka *wakatime.Client
	if cfg.Auth.WakatimeAPIKey != "" {
		waka = wakatime.NewClient(cfg.Auth.WakatimeAPIKey)
	}

	builder := &reportBuilder{
		cfg:    cfg,
		gh:     gh,
		waka:   waka,
		user:   user,
		opts:   opts,
		logger: logger,
	}

	body, err := builder.build(ctx)
	if err != nil {
		return err
	}

	return publish(ctx, gh, user, cfg, body, dryRun, logger)
}

// renderOptions resolves the translator and glyph pair from configuration.
// Both are injected into every render call; nothing reads process globals.
func renderOptions(cfg *config.Config) (report.Options, error) {
	translator, err := locale.NewTranslator(cfg.Render.Locale)
	if err != nil {
		return report.Options{}, err
	}

	pair, err := graphics.Symbols(cfg.Render.SymbolVersion)
	if err != nil {
		return report.Options{}, err
	}

	return report.Options{Translator: translator, Symbols: pair}, nil
}

// publish replaces the managed README section and commits the result when it
// differs from what is published.
func publish(ctx context.Context, gh *github.Client, user *github.User, cfg *config.Config, body string, dryRun bool, logger *slog.Logger) error {
	readme, err := gh.Readme(ctx, user.Login, user.Login)
	if err != nil {
		return err
	}

	newContent, changed, err := sections.Replace(readme.Content, body, cfg.Render.SectionName)
	if err != nil {
		// Marker absence is a setup problem, deliberately distinct from
		// "nothing to update".
		return err
	}

	if !changed {
		logger.InfoContext(ctx, "readme already up to date")

		return nil
	}

	if dryRun {
		printDiff(readme.Content, newContent)

		return nil
	}

	committer := github.Committer{Name: cfg.Commit.Username, Email: cfg.Commit.Email}

	err = gh.UpdateReadme(ctx, user.Login, user.Login, readme, newContent, cfg.Commit.Message, cfg.Commit.Branch, committer)
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "readme updated")

	return nil
}

// printDiff writes a colored character diff of the README change to stdout.
func printDiff(oldContent, newContent string) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldContent, newContent, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	color.New(color.Bold).Println("README changes (dry run):")
	fmt.Println(dmp.DiffPrettyText(diffs))
}
