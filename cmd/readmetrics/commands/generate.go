package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/readmetrics/readmetrics/pkg/chart"
	"github.com/readmetrics/readmetrics/pkg/config"
	"github.com/readmetrics/readmetrics/pkg/github"
	"github.com/readmetrics/readmetrics/pkg/report"
	"github.com/readmetrics/readmetrics/pkg/wakatime"
)

const chartDirPerm = 0o750

// fallbackTimezone localizes commits when no time-tracking timezone is
// available.
const fallbackTimezone = "Etc/UTC"

// reportBuilder assembles the full report body from the configured blocks.
type reportBuilder struct {
	cfg    *config.Config
	gh     *github.Client
	waka   *wakatime.Client
	user   *github.User
	opts   report.Options
	logger *slog.Logger

	// history is fetched once and shared by the commit tables, the LOC
	// badge and the timeline chart.
	history []github.CommitStat

	// summary is the weekly time-tracking summary, fetched once and shared
	// by the weekly stats block and the commit table time zone.
	summary *wakatime.Summary
}

// build renders every enabled block in publication order.
func (b *reportBuilder) build(ctx context.Context) (string, error) {
	var body strings.Builder

	steps := []func(context.Context, *strings.Builder) error{
		b.addCodeTimeBadge,
		b.addProfileViewsBadge,
		b.addLinesOfCodeBadge,
		b.addShortInfo,
		b.addCommitTables,
		b.addWeeklyStats,
		b.addLanguagesPerRepo,
		b.addTimeline,
		b.addUpdatedDate,
	}

	for _, step := range steps {
		err := step(ctx, &body)
		if err != nil {
			return "", err
		}
	}

	return strings.TrimRight(body.String(), "\n"), nil
}

func (b *reportBuilder) addCodeTimeBadge(ctx context.Context, body *strings.Builder) error {
	if !b.cfg.Show.TotalCodeTime || b.waka == nil {
		return nil
	}

	total, err := b.waka.AllTime(ctx)
	if err != nil {
		return err
	}

	body.WriteString(report.CodeTimeBadge(total))

	return nil
}

func (b *reportBuilder) addProfileViewsBadge(ctx context.Context, body *strings.Builder) error {
	if !b.cfg.Show.ProfileViews {
		return nil
	}

	views, err := b.gh.ProfileViews(ctx, b.user.Login, b.user.Login)
	if err != nil {
		return err
	}

	body.WriteString(report.ProfileViewsBadge(views, b.opts))

	return nil
}

func (b *reportBuilder) addLinesOfCodeBadge(ctx context.Context, body *strings.Builder) error {
	if !b.cfg.Show.LinesOfCode {
		return nil
	}

	history, err := b.fetchHistory(ctx)
	if err != nil {
		return err
	}

	var total int64
	for _, stat := range history {
		total += stat.Additions + stat.Deletions
	}

	body.WriteString(report.LinesOfCodeBadge(total, b.opts))

	return nil
}

func (b *reportBuilder) addShortInfo(ctx context.Context, body *strings.Builder) error {
	if !b.cfg.Show.ShortInfo {
		return nil
	}

	contributions, err := b.gh.Contributions(ctx, b.user.Login)
	if err != nil {
		return err
	}

	info := report.ProfileInfo{
		DiskUsageKB:       b.user.DiskUsageKB,
		ContributionCount: contributions,
		ContributionYear:  time.Now().UTC().Year(),
		Hireable:          b.user.Hireable,
		PublicRepos:       b.user.PublicRepos,
		PrivateRepos:      b.user.PrivateRepos,
		HasContributions:  contributions > 0,
	}

	body.WriteString(report.ShortInfo(info, b.opts))
	body.WriteString("\n")

	return nil
}

func (b *reportBuilder) addCommitTables(ctx context.Context, body *strings.Builder) error {
	if !b.cfg.Show.Commit {
		return nil
	}

	history, err := b.fetchHistory(ctx)
	if err != nil {
		return err
	}

	block, err := report.CommitTimes(github.Times(history), b.timezone(ctx), b.cfg.Show.DaysOfWeek, b.opts)
	if errors.Is(err, report.ErrNoActivity) {
		b.logger.InfoContext(ctx, "no commit activity, skipping commit tables")

		return nil
	}

	if err != nil {
		return err
	}

	body.WriteString(block)
	body.WriteString("\n\n")

	return nil
}

func (b *reportBuilder) addWeeklyStats(ctx context.Context, body *strings.Builder) error {
	if b.waka == nil {
		return nil
	}

	toggles := report.WakaToggles{
		ShowTimezone:         b.cfg.Show.Timezone,
		ShowLanguage:         b.cfg.Show.Language,
		ShowEditors:          b.cfg.Show.Editors,
		ShowProjects:         b.cfg.Show.Projects,
		ShowOperatingSystems: b.cfg.Show.OperatingSystems,
	}

	if !toggles.Any() {
		return nil
	}

	summary, err := b.fetchSummary(ctx)
	if err != nil {
		return err
	}

	body.WriteString(report.WakaTime(summary, toggles, b.opts))

	return nil
}

func (b *reportBuilder) addLanguagesPerRepo(ctx context.Context, body *strings.Builder) error {
	if !b.cfg.Show.LanguagePerRepo {
		return nil
	}

	owned, err := b.gh.OwnedRepositories(ctx, b.user.Login)
	if err != nil {
		return err
	}

	repos := make([]report.RepositoryLanguage, len(owned))
	for i, repo := range owned {
		repos[i] = report.RepositoryLanguage{Repository: repo.Name, Language: repo.Language}
	}

	block, err := report.LanguagesPerRepo(repos, b.opts)
	if err != nil {
		return err
	}

	body.WriteString(block)

	return nil
}

func (b *reportBuilder) addTimeline(ctx context.Context, body *strings.Builder) error {
	if !b.cfg.Show.LocChart {
		return nil
	}

	history, err := b.fetchHistory(ctx)
	if err != nil {
		return err
	}

	line := chart.BuildTimeline(b.opts.Translator.T("Timeline"), quarterSamples(history))

	// The chart file is written into the working tree and linked relatively;
	// the workflow around the run is responsible for committing it alongside
	// the README.
	chartPath := b.cfg.Render.ChartPath

	err = os.MkdirAll(filepath.Dir(chartPath), chartDirPerm)
	if err != nil {
		return fmt.Errorf("create chart directory: %w", err)
	}

	err = chart.WriteHTML(line, chartPath)
	if err != nil {
		return err
	}

	body.WriteString(fmt.Sprintf("**%s**\n\n[Lines of Code chart](%s)\n\n",
		b.opts.Translator.T("Timeline"), chartPath))

	return nil
}

func (b *reportBuilder) addUpdatedDate(_ context.Context, body *strings.Builder) error {
	if !b.cfg.Show.UpdatedDate {
		return nil
	}

	body.WriteString(report.UpdatedOn(time.Now(), b.cfg.Render.UpdatedDateLayout))

	return nil
}

// fetchHistory fetches the commit history once; later blocks reuse it.
func (b *reportBuilder) fetchHistory(ctx context.Context) ([]github.CommitStat, error) {
	if b.history != nil {
		return b.history, nil
	}

	contributed, err := b.gh.ContributedRepositories(ctx, b.user.Login)
	if err != nil {
		return nil, err
	}

	history, err := b.gh.History(ctx, contributed, b.user.NodeID, b.cfg.Fetch.MaxParallel)
	if err != nil {
		return nil, err
	}

	if history == nil {
		history = []github.CommitStat{}
	}

	b.history = history

	return history, nil
}

// fetchSummary fetches the weekly summary once; later blocks reuse it.
func (b *reportBuilder) fetchSummary(ctx context.Context) (*wakatime.Summary, error) {
	if b.summary != nil {
		return b.summary, nil
	}

	summary, err := b.waka.Latest(ctx)
	if err != nil {
		return nil, err
	}

	b.summary = summary

	return summary, nil
}

// timezone resolves the reporting time zone from the time tracker, falling
// back to UTC.
func (b *reportBuilder) timezone(ctx context.Context) string {
	if b.waka == nil {
		return fallbackTimezone
	}

	summary, err := b.fetchSummary(ctx)
	if err != nil || summary.Timezone == "" {
		return fallbackTimezone
	}

	return summary.Timezone
}

// quarterSamples aggregates commit history into per-quarter LOC samples.
func quarterSamples(history []github.CommitStat) []chart.QuarterLOC {
	type key struct {
		year    int
		quarter int
	}

	byQuarter := make(map[key]*chart.QuarterLOC)

	for _, stat := range history {
		when := stat.CommittedAt
		k := key{year: when.Year(), quarter: (int(when.Month())-1)/3 + 1}

		sample, ok := byQuarter[k]
		if !ok {
			sample = &chart.QuarterLOC{Year: k.year, Quarter: k.quarter}
			byQuarter[k] = sample
		}

		sample.Added += stat.Additions
		sample.Removed += stat.Deletions
	}

	samples := make([]chart.QuarterLOC, 0, len(byQuarter))
	for _, sample := range byQuarter {
		samples = append(samples, *sample)
	}

	return samples
}
