// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package loader fetches the election CSV and parses it in one step.

	l := loader.New(loader.FileSource{Path: "data/election_data.csv"}, schema)
	out := l.Load(r.Context())
	if !out.OK() {
		// show "data unavailable"
	}

Sources:

  - FileSource: local file
  - HTTPSource: remote URL (30s timeout, non-200 is an error)

A failed Outcome carries a *StageError (stage "fetch" or "parse") that
matches ErrUnavailable with errors.Is. Rows are never returned alongside an
error.
*/
package loader
