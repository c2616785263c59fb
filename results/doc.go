// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package results turns precinct CSV exports into per-neighborhood tallies.

# Parsing

ParseCSV reads the header row and binds the columns declared by a Schema:

	rows, stats, err := results.ParseCSV(r, results.DefaultSchema())

Only the two candidate columns are numeric. A vote cell that is empty or not
a whole non-negative number counts as 0 and is reported in stats.Defaulted.
A header without a declared column fails with ErrMissingColumn; text the CSV
reader rejects (an unterminated quote, for example) fails with *ParseError.

# Aggregation

	table := results.Aggregate(rows)

Only rows with TYPE "TOTAL" are summed, grouped by the exact LOCATION string.
Table.Locations lists the keys shown to users: sorted, without the empty
location and without keys starting with "BALLOT GROUP".

# Presentation

	p := results.Derive(tally, schema.Candidates)

Derive returns the two chart slices (fixed order and colors), the total,
one-decimal percentages ("0.0%" when nobody voted) and the margin line:

	Harris +1,234 votes

The difference is taken as candidate A minus candidate B. An exact tie is
reported as "Tie".
*/
package results
