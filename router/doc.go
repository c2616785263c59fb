// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the precinct results service.

# Route Registration

NewRouter creates the full handler chain:

	handler := router.NewRouter(loader, cfg)

The returned handler is the mux wrapped by middleware.RefererRewrite and
middleware.HeaderPolicy, so the policy headers reach every path, unknown
paths and preflight requests included.

# Endpoints

Health:

	GET /health

Page:

	GET /                          - Results page, ?location= selects

Data:

	GET /election_data.csv         - The CSV the results are built from
	GET /election_results.xlsx     - Per-location results as a spreadsheet

JSON API:

	GET /api/locations             - Selector list
	GET /api/results               - All tallies and the default selection
	GET /api/results/{location}    - Percentages and margin for one location

Charts:

	GET /chart.png                 - Pie chart, ?location= selects
	GET /chart.svg

# Handler Initialization

The router creates handler instances with dependency injection:

	pageHandler := handlers.NewPageHandler(l, cfg)
	resultsHandler := handlers.NewResultsHandler(l, cfg)

Handlers share the loader, which holds no state between loads.
*/
package router
