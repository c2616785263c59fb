// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package chart draws the two-candidate pie chart.
package chart

import (
	"errors"
	"fmt"
	"io"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/danielhkuo/precinct-results/models"
)

// ErrNoVotes is returned for a location where neither candidate has votes
var ErrNoVotes = errors.New("no votes recorded")

// Format is an output image format
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

// ContentType returns the response media type for f
func (f Format) ContentType() string {
	if f == SVG {
		return "image/svg+xml"
	}
	return "image/png"
}

func (f Format) provider() (gochart.RendererProvider, error) {
	switch f {
	case PNG:
		return gochart.PNG, nil
	case SVG:
		return gochart.SVG, nil
	default:
		return nil, fmt.Errorf("unsupported chart format: %q", f)
	}
}

type Options struct {
	Width  int
	Height int
}

// DefaultOptions fits the chart region of the page
func DefaultOptions() Options {
	return Options{Width: 384, Height: 384}
}

// RenderPie writes a pie chart of p's slices. Each slice label carries its percentage.
func RenderPie(w io.Writer, p models.Presentation, f Format, opts Options) error {
	if p.Total <= 0 {
		return ErrNoVotes
	}
	rp, err := f.provider()
	if err != nil {
		return err
	}

	values := make([]gochart.Value, 0, len(p.Slices))
	for _, s := range p.Slices {
		if s.Value <= 0 {
			continue
		}
		values = append(values, gochart.Value{
			Value: float64(s.Value),
			Label: s.Name + " " + s.Percent,
			Style: gochart.Style{
				FillColor:   colorFromHex(s.Color),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 2,
				FontColor:   drawing.ColorWhite,
				FontSize:    12,
			},
		})
	}

	pie := gochart.PieChart{
		Width:  opts.Width,
		Height: opts.Height,
		Values: values,
	}
	// A lone slice is drawn as a circle from the chart style, not the value style
	if len(values) == 1 {
		pie.SliceStyle = values[0].Style
	}

	if err := pie.Render(rp, w); err != nil {
		return fmt.Errorf("failed to render pie chart: %w", err)
	}
	return nil
}

func colorFromHex(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
