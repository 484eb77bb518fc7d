// Package report composes bucketed activity statistics into the markdown
// text blocks published to a profile document. All rendering is pure:
// localization and glyph selection are injected, never read from globals.
package report

import (
	"errors"

	"github.com/readmetrics/readmetrics/pkg/graphics"
	"github.com/readmetrics/readmetrics/pkg/locale"
)

// ErrNoActivity is returned when an axis has zero events, so percentage
// normalization would divide by zero. Callers render a localized
// "no activity" message instead of propagating NaN into output.
var ErrNoActivity = errors.New("no activity to report")

// Options carry the injected rendering context shared by all report blocks.
type Options struct {
	// Translator resolves display labels.
	Translator *locale.Translator

	// Symbols is the glyph pair for progress bars.
	Symbols graphics.Pair
}

// listOptions builds graphics list options bound to the report glyph pair.
func (o Options) listOptions(topN int, sortByPercent bool) graphics.ListOptions {
	return graphics.ListOptions{
		TopN:    topN,
		Sort:    sortByPercent,
		Symbols: o.Symbols,
	}
}
