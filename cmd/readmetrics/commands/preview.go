package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/readmetrics/readmetrics/pkg/config"
	"github.com/readmetrics/readmetrics/pkg/langscan"
	"github.com/readmetrics/readmetrics/pkg/report"
	"github.com/readmetrics/readmetrics/pkg/sections"
	"github.com/readmetrics/readmetrics/pkg/stats"
)

// ErrNoRepositoriesFound is returned when the scanned directory holds no
// repositories.
var ErrNoRepositoriesFound = errors.New("no repositories found under the scanned directory")

const previewFilePerm = 0o644

// NewPreviewCommand creates the preview subcommand: render report blocks
// from a local directory scan, without any API access.
func NewPreviewCommand() *cobra.Command {
	var (
		configPath string
		scanDir    string
		applyFile  string
		showTable  bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render report blocks locally without touching GitHub",
		Long: `Preview scans a directory of local repositories, detects each
repository's primary language and renders the language-per-repo block. With
--apply the block is spliced into a local markdown file between the section
markers, which mirrors what run does to the profile README.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runPreview(configPath, scanDir, applyFile, showTable)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")
	cmd.Flags().StringVarP(&scanDir, "local", "l", ".", "directory holding repositories to scan")
	cmd.Flags().StringVar(&applyFile, "apply", "", "markdown file to splice the rendered block into")
	cmd.Flags().BoolVar(&showTable, "table", false, "print the underlying measures as a table")

	return cmd
}

// runPreview renders the language-per-repo block from a local scan.
func runPreview(configPath, scanDir, applyFile string, showTable bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	opts, err := renderOptions(cfg)
	if err != nil {
		return err
	}

	repos, err := langscan.ScanRepositories(scanDir)
	if err != nil {
		return err
	}

	if len(repos) == 0 {
		return ErrNoRepositoriesFound
	}

	block, err := report.LanguagesPerRepo(repos, opts)
	if err != nil {
		return err
	}

	if showTable {
		printMeasureTable(repos)
	}

	if applyFile != "" {
		return applySection(applyFile, block, cfg.Render.SectionName)
	}

	fmt.Print(block)

	return nil
}

// printMeasureTable prints the raw language tally as a bordered table, a
// debugging view of what the fixed-width renderer consumes.
func printMeasureTable(repos []report.RepositoryLanguage) {
	tally := stats.NewLanguageTally()
	for _, repo := range repos {
		tally.Add(repo.Language)
	}

	total := tally.Total()

	tbl := table.NewWriter()
	tbl.SetOutputMirror(os.Stdout)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Language", "Repos", "Percent"})

	for _, name := range tally.Names() {
		count := tally.Count(name)

		percent, err := stats.Percent(count, total)
		if err != nil {
			continue
		}

		tbl.AppendRow(table.Row{name, count, fmt.Sprintf("%05.2f %%", percent)})
	}

	tbl.AppendFooter(table.Row{"Total", total, ""})
	tbl.Render()
}

// applySection splices the rendered block into a local markdown file,
// reporting whether anything changed.
func applySection(path, block, sectionName string) error {
	document, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	updated, changed, err := sections.Replace(string(document), block, sectionName)
	if err != nil {
		return err
	}

	if !changed {
		color.Green("%s is already up to date", path)

		return nil
	}

	err = os.WriteFile(path, []byte(updated), previewFilePerm)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	color.Green("%s updated", path)

	return nil
}
