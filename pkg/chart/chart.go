// Package chart renders the lines-of-code timeline as an HTML chart.
package chart

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	chartWidth  = "900px"
	chartHeight = "480px"

	filePerm = 0o600
)

// QuarterLOC is the lines added and removed in one quarter of a year.
type QuarterLOC struct {
	Year    int
	Quarter int
	Added   int64
	Removed int64
}

// sortQuarters orders samples chronologically.
func sortQuarters(samples []QuarterLOC) {
	sort.Slice(samples, func(i, j int) bool {
		if samples[i].Year != samples[j].Year {
			return samples[i].Year < samples[j].Year
		}

		return samples[i].Quarter < samples[j].Quarter
	})
}

// BuildTimeline builds a two-series line chart (added, removed) over
// quarterly samples.
func BuildTimeline(title string, samples []QuarterLOC) *charts.Line {
	sortQuarters(samples)

	labels := make([]string, len(samples))
	added := make([]opts.LineData, len(samples))
	removed := make([]opts.LineData, len(samples))

	for i, sample := range samples {
		labels[i] = fmt.Sprintf("%d Q%d", sample.Year, sample.Quarter)
		added[i] = opts.LineData{Value: sample.Added}
		removed[i] = opts.LineData{Value: sample.Removed}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
	)

	line.SetXAxis(labels).
		AddSeries("Added", added).
		AddSeries("Removed", removed)

	return line
}

// WriteHTML renders the chart to a standalone HTML file.
func WriteHTML(line *charts.Line, path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer file.Close()

	err = line.Render(file)
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	return nil
}
