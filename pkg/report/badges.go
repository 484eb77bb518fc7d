package report

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dustin/go-humanize"
)

// badgeFormat is the shields.io static badge URL shape.
const badgeFormat = "![%s](https://img.shields.io/badge/%s-%s-blue)\n\n"

// badgeEscape encodes a badge path segment. Path escaping keeps spaces as
// %20, which shields.io renders as a space.
func badgeEscape(segment string) string {
	return url.PathEscape(segment)
}

// CodeTimeBadge renders the total tracked code time badge.
func CodeTimeBadge(total string) string {
	return fmt.Sprintf(badgeFormat, "Code Time", badgeEscape("Code Time"), badgeEscape(total))
}

// ProfileViewsBadge renders the weekly profile views badge.
func ProfileViewsBadge(views int, opts Options) string {
	label := opts.Translator.T("Profile Views")

	return fmt.Sprintf(badgeFormat, "Profile Views", badgeEscape(label), fmt.Sprintf("%d", views))
}

// LinesOfCodeBadge renders the lifetime lines-of-code badge with a
// humanized SI quantity (for example "1.2 M").
func LinesOfCodeBadge(totalLines int64, opts Options) string {
	tr := opts.Translator
	quantity := strings.TrimSpace(humanize.SIWithDigits(float64(totalLines), 1, ""))
	value := fmt.Sprintf("%s %s", quantity, tr.T("Lines of code"))

	return fmt.Sprintf(badgeFormat, "Lines of code",
		badgeEscape(tr.T("From Hello World I have written")), badgeEscape(value))
}
