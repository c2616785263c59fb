// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/precinct-results/cliparse"
	"github.com/danielhkuo/precinct-results/loader"
	"github.com/danielhkuo/precinct-results/middleware"
	"github.com/danielhkuo/precinct-results/models"
	"github.com/danielhkuo/precinct-results/results"
	"github.com/danielhkuo/precinct-results/view"
	"github.com/danielhkuo/precinct-results/workbook"
)

type ResultsHandler struct {
	loader *loader.Loader
	cfg    cliparse.Config
}

func NewResultsHandler(l *loader.Loader, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{loader: l, cfg: cfg}
}

// GetLocations handles GET /api/locations
// Returns the selector list: sorted, without blank or BALLOT GROUP keys
func (h *ResultsHandler) GetLocations(w http.ResponseWriter, r *http.Request) {
	state := loadState(r, h.loader, h.cfg.Debug)
	if !state.Ready() {
		unavailable(w)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.LocationsResponse{
		Status:    state.Status,
		Locations: state.Locations(),
	})
}

// GetTable handles GET /api/results
// Returns every tally, listed or not, plus the location a page would select
func (h *ResultsHandler) GetTable(w http.ResponseWriter, r *http.Request) {
	state := loadState(r, h.loader, h.cfg.Debug)
	if !state.Ready() {
		unavailable(w)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TableResponse{
		Status:    state.Status,
		Selected:  state.Selection,
		Locations: state.Locations(),
		Tallies:   state.Table.Tallies(),
	})
}

// GetLocation handles GET /api/results/{location}
// Returns 404 for a location that is not in the selector list
func (h *ResultsHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	location := r.PathValue("location")
	if location == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "location is required")
		return
	}

	state := loadState(r, h.loader, h.cfg.Debug)
	if !state.Ready() {
		unavailable(w)
		return
	}

	state = view.Reduce(state, view.Selected{Location: location})
	if state.Selection != location {
		middleware.ErrorResponse(w, http.StatusNotFound, "Location not found")
		return
	}

	tally, _ := state.Current()
	middleware.JSONResponse(w, http.StatusOK, results.Derive(tally, h.loader.Schema().Candidates))
}

// ExportWorkbook handles GET /election_results.xlsx
// Returns one spreadsheet row per listed location
func (h *ResultsHandler) ExportWorkbook(w http.ResponseWriter, r *http.Request) {
	state := loadState(r, h.loader, h.cfg.Debug)
	if !state.Ready() {
		unavailable(w)
		return
	}

	var buf bytes.Buffer
	if err := workbook.Write(&buf, state.Table, h.loader.Schema().Candidates); err != nil {
		slog.Error("failed to export workbook", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to export results")
		return
	}

	w.Header().Set("Content-Type", workbook.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="election_results.xlsx"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func unavailable(w http.ResponseWriter) {
	middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Election data unavailable")
}
