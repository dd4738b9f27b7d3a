// Package chart turns aggregation results into renderable chart
// descriptions. It performs no I/O; the page draws whatever it is given.
package chart

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"jobpulse/internal/analytics"
)

// Type hints how a result should be drawn.
type Type string

const (
	Bar Type = "bar"
	Pie Type = "pie"
)

// Config is a complete, renderable chart description.
type Config struct {
	Type       Type     `json:"type"`
	Title      string   `json:"title"`
	XAxis      string   `json:"x_axis,omitempty"`
	YAxis      string   `json:"y_axis,omitempty"`
	Series     []Series `json:"series"`
	Colors     []string `json:"colors,omitempty"`
	ShowLegend bool     `json:"show_legend"`
	ShowGrid   bool     `json:"show_grid"`
	Empty      bool     `json:"empty"`
}

// Series is one named data series.
type Series struct {
	Name string  `json:"name"`
	Data []Point `json:"data"`
}

// Point is a single labelled value.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

var palette = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// Build converts an aggregation result into a chart description. An empty
// result yields an explicitly empty chart (Empty=true, no series) rather
// than nil, so the page always has something to render.
func Build(buckets []analytics.Bucket, typ Type, title string, kind analytics.Kind) *Config {
	cfg := &Config{
		Type:       typ,
		Title:      title,
		ShowLegend: typ == Pie,
		ShowGrid:   typ != Pie,
	}

	if len(buckets) == 0 {
		cfg.Empty = true
		return cfg
	}

	// A Caser is stateful and not safe for concurrent use; Build runs on
	// every request, so each call gets its own.
	cfg.XAxis = cases.Title(language.English).String(string(kind))
	cfg.YAxis = "Postings"

	points := make([]Point, 0, len(buckets))
	for _, b := range buckets {
		points = append(points, Point{Label: b.Label, Value: float64(b.Count)})
	}

	cfg.Series = []Series{{Name: title, Data: points}}
	cfg.Colors = assignColors(len(points))
	return cfg
}

func assignColors(count int) []string {
	colors := make([]string, count)
	for i := range colors {
		colors[i] = palette[i%len(palette)]
	}
	return colors
}
