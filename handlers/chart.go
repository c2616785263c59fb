// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/precinct-results/chart"
	"github.com/danielhkuo/precinct-results/cliparse"
	"github.com/danielhkuo/precinct-results/loader"
	"github.com/danielhkuo/precinct-results/middleware"
	"github.com/danielhkuo/precinct-results/results"
)

type ChartHandler struct {
	loader *loader.Loader
	cfg    cliparse.Config
	opts   chart.Options
}

func NewChartHandler(l *loader.Loader, cfg cliparse.Config) *ChartHandler {
	return &ChartHandler{loader: l, cfg: cfg, opts: chart.DefaultOptions()}
}

// ServePNG handles GET /chart.png
func (h *ChartHandler) ServePNG(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, chart.PNG)
}

// ServeSVG handles GET /chart.svg
func (h *ChartHandler) ServeSVG(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, chart.SVG)
}

// serve draws the pie for ?location=, or the default location when it is absent or unknown
func (h *ChartHandler) serve(w http.ResponseWriter, r *http.Request, format chart.Format) {
	state := loadState(r, h.loader, h.cfg.Debug)
	if !state.Ready() {
		unavailable(w)
		return
	}

	tally, ok := state.Current()
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "No locations reported")
		return
	}

	p := results.Derive(tally, h.loader.Schema().Candidates)

	var buf bytes.Buffer
	err := chart.RenderPie(&buf, p, format, h.opts)
	if errors.Is(err, chart.ErrNoVotes) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No votes recorded")
		return
	}
	if err != nil {
		slog.Error("failed to render chart",
			"location", p.Location,
			"format", string(format),
			"error", err,
		)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render chart")
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
