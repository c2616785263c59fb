// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain and response types shared across packages.

# Domain Types

  - RawRow: one parsed CSV record (location, type, two vote counts)
  - LocationTally: summed TOTAL-row votes for one location
  - DisplaySlice: one candidate's value, color and percentage
  - Presentation: both slices plus total, leader and margin text

# Response Types

  - LocationsResponse: status, locations
  - TableResponse: status, selected, locations, tallies
  - ErrorResponse: error, message

# Constants

Row type counted by aggregation:

	TypeTotal = "TOTAL"

Load status:

	StatusLoading     = "loading"
	StatusReady       = "ready"
	StatusUnavailable = "unavailable"

Leader and margin text for equal counts:

	TieLabel = "Tie"
*/
package models
