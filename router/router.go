// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/precinct-results/cliparse"
	"github.com/danielhkuo/precinct-results/handlers"
	"github.com/danielhkuo/precinct-results/loader"
	"github.com/danielhkuo/precinct-results/middleware"
)

// NewRouter registers every route and wraps the mux in the referer rewrite and header policy
func NewRouter(l *loader.Loader, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(l, cfg)
	dataHandler := handlers.NewDataHandler(cfg)
	resultsHandler := handlers.NewResultsHandler(l, cfg)
	chartHandler := handlers.NewChartHandler(l, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Results page
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pageHandler.ServePage))

	// Raw data
	mux.HandleFunc("GET /election_data.csv", middleware.WithLogging(dataHandler.ServeCSV))
	mux.HandleFunc("GET /election_results.xlsx", middleware.WithLogging(resultsHandler.ExportWorkbook))

	// JSON API
	mux.HandleFunc("GET /api/locations", middleware.WithLogging(resultsHandler.GetLocations))
	mux.HandleFunc("GET /api/results", middleware.WithLogging(resultsHandler.GetTable))
	mux.HandleFunc("GET /api/results/{location}", middleware.WithLogging(resultsHandler.GetLocation))

	// Charts
	mux.HandleFunc("GET /chart.png", middleware.WithLogging(chartHandler.ServePNG))
	mux.HandleFunc("GET /chart.svg", middleware.WithLogging(chartHandler.ServeSVG))

	return middleware.RefererRewrite(middleware.HeaderPolicy(cfg.Headers.Policy())(mux))
}
