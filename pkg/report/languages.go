package report

import (
	"fmt"

	"github.com/readmetrics/readmetrics/pkg/graphics"
	"github.com/readmetrics/readmetrics/pkg/stats"
)

// RepositoryLanguage pairs a repository with its primary language display
// name. An empty Language means the repository has no primary language and
// is excluded from counting.
type RepositoryLanguage struct {
	Repository string
	Language   string
}

// LanguagesPerRepo renders the per-language repository count table, titled
// with the most used language. Repositories without a primary language are
// skipped. An input with no countable repositories renders an empty string
// rather than a zero-total table.
func LanguagesPerRepo(repos []RepositoryLanguage, opts Options) (string, error) {
	tally := stats.NewLanguageTally()
	for _, repo := range repos {
		tally.Add(repo.Language)
	}

	total := tally.Total()
	if total == 0 {
		return "", nil
	}

	tr := opts.Translator
	names := tally.Names()
	texts := make([]string, len(names))
	percents := make([]float64, len(names))

	for i, name := range names {
		count := tally.Count(name)

		unit := tr.T("repos")
		if count == 1 {
			unit = tr.T("repo")
		}

		texts[i] = fmt.Sprintf("%d %s", count, unit)

		percent, err := stats.Percent(count, total)
		if err != nil {
			return "", fmt.Errorf("language percent: %w", err)
		}

		percents[i] = percent
	}

	measures, err := graphics.Zip(names, texts, percents)
	if err != nil {
		return "", fmt.Errorf("language measures: %w", err)
	}

	title := tr.Tf("I Mostly Code in", tally.Top())
	list := graphics.MakeList(measures, opts.listOptions(graphics.DefaultTopN, true))

	return fmt.Sprintf("**%s** \n\n```text\n%s\n```\n\n", title, list), nil
}
