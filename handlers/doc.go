// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the precinct results service.

# Handler Types

Each handler is a struct with loader and config dependencies:

  - PageHandler: HTML results page with inline SVG chart
  - DataHandler: Raw CSV download
  - ResultsHandler: JSON locations, tallies, per-location presentation and XLSX export
  - ChartHandler: PNG and SVG pie charts

Handlers are created via constructor functions that accept *loader.Loader and Config:

	pageHandler := handlers.NewPageHandler(l, cfg)

# Request Flow

Every request loads the CSV once, aggregates it and builds a view.State:

	Loading → Ready (Loaded) or Unavailable (LoadFailed)

A ?location= query is applied as a Selected event. Unknown or unlisted
locations are ignored and the first listed location stays selected.

# Failures

  - Source or parse failure: the page renders "Election data unavailable"
    with 200; JSON and chart endpoints answer 503.
  - Unknown location on /api/results/{location}: 404.
  - Location with no votes: percentages 0.0%, margin "Tie"; the page omits
    the chart and chart endpoints answer 404 "No votes recorded".
*/
package handlers
