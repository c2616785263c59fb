// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the precinct results server.

The server turns a precinct-level election export into a per-neighborhood
vote-share page meant to be embedded in another site: a location selector,
a two-candidate pie chart, the total vote count, the margin, and one line
per candidate.

# Starting the Server

With no configuration the server reads data/election_data.csv:

	go run .

Or with flags:

	go run . -p 3318 -data data/election_data.csv -headers wildcard

# Configuration

Settings are layered: defaults, then a TOML file (-c / CONFIG_FILE), then the
environment (a .env file is loaded first when present), then flags.

  - PORT (-p): Server port (default: 3318)
  - DATA_PATH (-data): CSV served at /election_data.csv
  - SOURCE_URL (-source): Remote CSV to load instead of DATA_PATH
  - TITLE (-title): Page title
  - HEADER_VARIANT (-headers): named or wildcard
  - EMBED_ORIGIN (-origin): Origin allowed to embed the page
  - FRAME_ANCESTORS (-frame-ancestors): CSP frame-ancestors sources
  - DEBUG (-debug): Debug logging and strict state checks

Candidate columns, labels and colors are set in the [schema] table of the
TOML file.

# Architecture

Every page view loads the CSV once and builds its own state; nothing is
shared between requests.

  - loader: CSV sources and the single load per request
  - results: Parsing, aggregation and percentage/margin derivation
  - view: Immutable page state and its transitions
  - chart: Pie chart rendering (PNG and SVG)
  - workbook: XLSX export of the per-location results
  - handlers: Page, data, JSON and chart handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: Header policy, referer rewrite, logging, JSON helpers
  - models: Shared types
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
