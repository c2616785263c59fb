// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package results

import (
	"maps"
	"sort"
	"strings"

	"github.com/danielhkuo/precinct-results/models"
)

// Table is the per-location aggregate of TOTAL rows. It is read-only once built.
type Table struct {
	tallies   map[string]models.LocationTally
	locations []string
}

// Aggregate sums both candidate columns per location over TOTAL rows only.
// Itemized rows repeat what the TOTAL row already counts.
func Aggregate(rows []models.RawRow) *Table {
	tallies := make(map[string]models.LocationTally)

	for _, row := range rows {
		if row.Type != models.TypeTotal {
			continue
		}

		// Group by the exact location string
		t := tallies[row.Location]
		t.Location = row.Location
		t.CandidateA += row.VotesA
		t.CandidateB += row.VotesB
		tallies[row.Location] = t
	}

	locations := make([]string, 0, len(tallies))
	for loc := range tallies {
		if Listed(loc) {
			locations = append(locations, loc)
		}
	}
	sort.Strings(locations)

	return &Table{tallies: tallies, locations: locations}
}

// Listed reports whether a group key belongs in the location selector
func Listed(location string) bool {
	return location != "" && !strings.HasPrefix(location, ExcludedPrefix)
}

// Get returns the tally for a location, including unlisted keys
func (t *Table) Get(location string) (models.LocationTally, bool) {
	if t == nil {
		return models.LocationTally{}, false
	}
	tally, ok := t.tallies[location]
	return tally, ok
}

// Locations returns the sorted, filtered location list
func (t *Table) Locations() []string {
	if t == nil {
		return []string{}
	}
	out := make([]string, len(t.locations))
	copy(out, t.locations)
	return out
}

// Len is the number of group keys, listed or not
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.tallies)
}

// Tallies returns a copy of every group, listed or not
func (t *Table) Tallies() map[string]models.LocationTally {
	if t == nil {
		return map[string]models.LocationTally{}
	}
	return maps.Clone(t.tallies)
}

// Totals sums each candidate over every group
func (t *Table) Totals() (a, b int64) {
	if t == nil {
		return 0, 0
	}
	for _, tally := range t.tallies {
		a += tally.CandidateA
		b += tally.CandidateB
	}
	return a, b
}
