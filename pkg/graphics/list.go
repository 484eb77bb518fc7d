package graphics

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrLengthMismatch is returned when parallel name/text/percent sequences
// have unequal lengths.
var ErrLengthMismatch = errors.New("names, texts and percents must have equal lengths")

// Column widths of a rendered list line.
const (
	// NameWidth is the width of the measure name column.
	NameWidth = 25

	// TextWidth is the width of the quantity description column.
	TextWidth = 20

	// DefaultTopN is the default number of measures shown per list.
	DefaultTopN = 5
)

// Measure is one renderable statistic: a display label, a quantity
// description and its share of the related total.
type Measure struct {
	Name    string
	Text    string
	Percent float64
}

// ListOptions control list rendering. The glyph pair is injected explicitly
// so rendering stays a pure function of its inputs.
type ListOptions struct {
	// TopN is how many measures to display.
	TopN int

	// Sort reorders the selected window by percent, descending.
	Sort bool

	// Symbols is the glyph pair used for every bar in the list.
	Symbols Pair
}

// DefaultListOptions returns the standard list rendering options: top five
// entries, sorted, solid block glyphs.
func DefaultListOptions() ListOptions {
	return ListOptions{
		TopN:    DefaultTopN,
		Sort:    true,
		Symbols: VersionOne,
	}
}

// Zip combines parallel name, text and percent sequences into measures.
// Lengths must match exactly.
func Zip(names, texts []string, percents []float64) ([]Measure, error) {
	if len(names) != len(texts) || len(texts) != len(percents) {
		return nil, fmt.Errorf("%w: %d names, %d texts, %d percents",
			ErrLengthMismatch, len(names), len(texts), len(percents))
	}

	measures := make([]Measure, len(names))
	for i := range names {
		measures[i] = Measure{Name: names[i], Text: texts[i], Percent: percents[i]}
	}

	return measures, nil
}

// MakeList renders measures as a column-aligned block of progress bar lines.
// The selection window is the first TopN measures in input order; sorting
// (when enabled) only reorders within that window. Lines are joined with a
// single newline and no trailing newline is added.
func MakeList(measures []Measure, opts ListOptions) string {
	top := len(measures)
	if opts.TopN > 0 && opts.TopN < top {
		top = opts.TopN
	}

	window := make([]Measure, top)
	copy(window, measures[:top])

	if opts.Sort {
		sort.SliceStable(window, func(i, j int) bool {
			return window[i].Percent > window[j].Percent
		})
	}

	lines := make([]string, len(window))
	for i, measure := range window {
		lines[i] = makeLine(measure, opts.Symbols)
	}

	return strings.Join(lines, "\n")
}

// makeLine renders one measure: name (25 cols), text (20 cols), 25-cell bar,
// three spaces, zero-padded percent, literal " % " suffix.
func makeLine(measure Measure, pair Pair) string {
	return fmt.Sprintf("%s%s%s   %05.2f %% ",
		padColumn(measure.Name, NameWidth),
		padColumn(measure.Text, TextWidth),
		MakeGraph(measure.Percent, pair),
		measure.Percent,
	)
}

// padColumn truncates s to width runes and pads with spaces to exactly
// width. Counting runes rather than bytes keeps emoji-bearing labels from
// shifting the bar column.
func padColumn(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width])
	}

	return s + strings.Repeat(" ", width-len(runes))
}
