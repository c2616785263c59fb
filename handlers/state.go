// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/precinct-results/loader"
	"github.com/danielhkuo/precinct-results/view"
)

// loadState runs the one load a request gets and applies ?location= if present.
// An unknown location leaves the default selection in place.
func loadState(r *http.Request, l *loader.Loader, strict bool) view.State {
	state := view.FromOutcome(strict, l.Load(r.Context()))
	if location := r.URL.Query().Get("location"); location != "" {
		state = view.Reduce(state, view.Selected{Location: location})
	}
	return state
}
