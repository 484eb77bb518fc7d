package report

import (
	"fmt"
	"strings"

	"github.com/readmetrics/readmetrics/pkg/graphics"
	"github.com/readmetrics/readmetrics/pkg/wakatime"
)

// WakaToggles select which sub-reports of the weekly time-tracking summary
// are rendered.
type WakaToggles struct {
	ShowTimezone         bool
	ShowLanguage         bool
	ShowEditors          bool
	ShowProjects         bool
	ShowOperatingSystems bool
}

// Any reports whether at least one sub-report is enabled.
func (t WakaToggles) Any() bool {
	return t.ShowTimezone || t.ShowLanguage || t.ShowEditors || t.ShowProjects || t.ShowOperatingSystems
}

// WakaTime renders the "This Week I Spent My Time On" block from a weekly
// summary. Empty measure lists render the localized no-activity message
// instead of a zero-entry table.
func WakaTime(summary *wakatime.Summary, toggles WakaToggles, opts Options) string {
	if !toggles.Any() {
		return ""
	}

	tr := opts.Translator
	noActivity := tr.T("No Activity Tracked This Week")

	var block strings.Builder

	block.WriteString(fmt.Sprintf("📊 **%s** \n\n```text\n", tr.T("This Week I Spend My Time On")))

	if toggles.ShowTimezone {
		block.WriteString(fmt.Sprintf("🕑︎ %s: %s\n\n", tr.T("Timezone"), summary.Timezone))
	}

	if toggles.ShowLanguage {
		block.WriteString(fmt.Sprintf("💬 %s: \n%s\n\n", tr.T("Languages"), listOrNoActivity(summary.Languages, noActivity, opts)))
	}

	if toggles.ShowEditors {
		block.WriteString(fmt.Sprintf("🔥 %s: \n%s\n\n", tr.T("Editors"), listOrNoActivity(summary.Editors, noActivity, opts)))
	}

	if toggles.ShowProjects {
		block.WriteString(fmt.Sprintf("🐱‍💻 %s: \n%s\n\n", tr.T("Projects"), listOrNoActivity(summary.Projects, noActivity, opts)))
	}

	if toggles.ShowOperatingSystems {
		block.WriteString(fmt.Sprintf("💻 %s: \n%s\n\n", tr.T("operating system"), listOrNoActivity(summary.OperatingSystems, noActivity, opts)))
	}

	// Collapse the final double newline before closing the code fence.
	return strings.TrimSuffix(block.String(), "\n") + "```\n\n"
}

// listOrNoActivity renders measures as a list, or the no-activity message
// when there is nothing to show.
func listOrNoActivity(measures []graphics.Measure, noActivity string, opts Options) string {
	if len(measures) == 0 {
		return noActivity
	}

	return graphics.MakeList(measures, opts.listOptions(graphics.DefaultTopN, true))
}
