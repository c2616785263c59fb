// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package view holds the page state for one page load as an immutable
// snapshot. Transitions are pure: Reduce(state, event) returns a new State.
package view

import (
	"fmt"
	"log/slog"

	"github.com/danielhkuo/precinct-results/loader"
	"github.com/danielhkuo/precinct-results/models"
	"github.com/danielhkuo/precinct-results/results"
)

// State is one page's view of the data. The zero value is not useful; start from Initial.
type State struct {
	Status    string
	Table     *results.Table
	Selection string
	Err       error

	// Strict panics on a selection that is not in the table instead of falling back.
	Strict bool
}

// Event is something that happened to the page
type Event interface {
	apply(s State) State
}

// Loaded carries the aggregate built from a successful load
type Loaded struct {
	Table *results.Table
}

// LoadFailed carries the reason the data could not be loaded
type LoadFailed struct {
	Err error
}

// Selected asks to show another location
type Selected struct {
	Location string
}

// Initial is the loading state every page starts in
func Initial(strict bool) State {
	return State{Status: models.StatusLoading, Strict: strict}
}

// Reduce applies e to s. s is not modified.
func Reduce(s State, e Event) State {
	return e.apply(s)
}

// FromOutcome runs the load transition for a loader outcome
func FromOutcome(strict bool, out loader.Outcome) State {
	if !out.OK() {
		return Reduce(Initial(strict), LoadFailed{Err: out.Err})
	}
	return Reduce(Initial(strict), Loaded{Table: results.Aggregate(out.Rows)})
}

func (e Loaded) apply(s State) State {
	s.Status = models.StatusReady
	s.Table = e.Table
	s.Err = nil
	s.Selection = ""
	if locations := e.Table.Locations(); len(locations) > 0 {
		s.Selection = locations[0]
	}
	return s
}

func (e LoadFailed) apply(s State) State {
	s.Status = models.StatusUnavailable
	s.Table = nil
	s.Selection = ""
	s.Err = e.Err
	return s
}

// Unknown or unlisted locations leave the selection unchanged.
func (e Selected) apply(s State) State {
	if s.Status != models.StatusReady || !results.Listed(e.Location) {
		return s
	}
	if _, ok := s.Table.Get(e.Location); !ok {
		return s
	}
	s.Selection = e.Location
	return s
}

// Ready reports whether a table is loaded
func (s State) Ready() bool {
	return s.Status == models.StatusReady
}

// Locations returns the selector entries, empty unless ready
func (s State) Locations() []string {
	if !s.Ready() {
		return []string{}
	}
	return s.Table.Locations()
}

// Current returns the tally of the selected location. It is false when nothing
// is loaded or no location is listed.
func (s State) Current() (models.LocationTally, bool) {
	if !s.Ready() {
		return models.LocationTally{}, false
	}
	if t, ok := s.Table.Get(s.Selection); ok && results.Listed(s.Selection) {
		return t, true
	}

	locations := s.Table.Locations()
	if len(locations) == 0 {
		return models.LocationTally{}, false
	}

	// Reduce never produces this; it means a stale selection slipped through.
	if s.Strict {
		panic(fmt.Sprintf("view: selection %q is not a listed location", s.Selection))
	}
	slog.Warn("selection not in table, falling back",
		"selection", s.Selection,
		"fallback", locations[0],
	)
	t, _ := s.Table.Get(locations[0])
	return t, true
}
