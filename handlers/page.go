// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/precinct-results/chart"
	"github.com/danielhkuo/precinct-results/cliparse"
	"github.com/danielhkuo/precinct-results/loader"
	"github.com/danielhkuo/precinct-results/models"
	"github.com/danielhkuo/precinct-results/results"
)

//go:embed templates/page.html
var templateFS embed.FS

var pageTemplate = template.Must(
	template.New("page.html").
		Funcs(template.FuncMap{"comma": humanize.Comma}).
		ParseFS(templateFS, "templates/page.html"),
)

type PageHandler struct {
	loader *loader.Loader
	cfg    cliparse.Config
}

func NewPageHandler(l *loader.Loader, cfg cliparse.Config) *PageHandler {
	return &PageHandler{loader: l, cfg: cfg}
}

// pageData is everything the template reads
type pageData struct {
	Title        string
	Status       string
	Locations    []string
	Selected     string
	HasTally     bool
	Presentation models.Presentation
	Chart        template.HTML
}

// ServePage handles GET /
// Always answers 200; an unavailable source renders a neutral notice instead of the chart.
func (h *PageHandler) ServePage(w http.ResponseWriter, r *http.Request) {
	state := loadState(r, h.loader, h.cfg.Debug)

	data := pageData{
		Title:     h.cfg.Title,
		Status:    state.Status,
		Locations: state.Locations(),
		Selected:  state.Selection,
	}

	if tally, ok := state.Current(); ok {
		data.HasTally = true
		data.Selected = tally.Location
		data.Presentation = results.Derive(tally, h.loader.Schema().Candidates)
		data.Chart = h.inlineChart(data.Presentation)
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		slog.Error("failed to render page", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// inlineChart renders the pie as SVG markup, or nothing when there is nothing to draw
func (h *PageHandler) inlineChart(p models.Presentation) template.HTML {
	var buf bytes.Buffer
	err := chart.RenderPie(&buf, p, chart.SVG, chart.DefaultOptions())
	if errors.Is(err, chart.ErrNoVotes) {
		return ""
	}
	if err != nil {
		slog.Error("failed to render inline chart", "location", p.Location, "error", err)
		return ""
	}
	// Slice labels come from the configured schema, never from the request
	return template.HTML(buf.String())
}
