// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/danielhkuo/precinct-results/cliparse"
	"github.com/danielhkuo/precinct-results/middleware"
)

// DataHandler serves the raw CSV the pages are built from
type DataHandler struct {
	cfg cliparse.Config
}

func NewDataHandler(cfg cliparse.Config) *DataHandler {
	return &DataHandler{cfg: cfg}
}

// ServeCSV handles GET /election_data.csv
func (h *DataHandler) ServeCSV(w http.ResponseWriter, r *http.Request) {
	if h.cfg.DataPath == "" {
		middleware.ErrorResponse(w, http.StatusNotFound, "No local data file configured")
		return
	}

	f, err := os.Open(h.cfg.DataPath)
	if errors.Is(err, fs.ErrNotExist) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Data file not found")
		return
	}
	if err != nil {
		slog.Error("failed to open data file", "path", h.cfg.DataPath, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to read data file")
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		slog.Error("failed to stat data file", "path", h.cfg.DataPath, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to read data file")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}
