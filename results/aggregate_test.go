// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package results

import (
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/danielhkuo/precinct-results/models"
)

func scenarioRows() []models.RawRow {
	return []models.RawRow{
		{Location: "PARK", Type: "TOTAL", VotesA: 100, VotesB: 50},
		{Location: "PARK", Type: "ITEMIZED", VotesA: 10, VotesB: 10},
		{Location: "", Type: "TOTAL", VotesA: 5, VotesB: 5},
		{Location: "BALLOT GROUP 1", Type: "TOTAL", VotesA: 1, VotesB: 1},
	}
}

func TestAggregate_Scenario(t *testing.T) {
	table := Aggregate(scenarioRows())

	expected := map[string]models.LocationTally{
		"PARK":           {Location: "PARK", CandidateA: 100, CandidateB: 50},
		"":               {Location: "", CandidateA: 5, CandidateB: 5},
		"BALLOT GROUP 1": {Location: "BALLOT GROUP 1", CandidateA: 1, CandidateB: 1},
	}
	if diff := cmp.Diff(expected, table.Tallies()); diff != "" {
		t.Errorf("tallies mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"PARK"}, table.Locations()); diff != "" {
		t.Errorf("locations mismatch (-want +got):\n%s", diff)
	}

	tally, ok := table.Get("PARK")
	if !ok {
		t.Fatal("Expected PARK to be present")
	}
	p := Derive(tally, testSchema().Candidates)
	if p.Total != 150 {
		t.Errorf("Expected total 150, got %d", p.Total)
	}
	if p.Slices[0].Percent != "66.7%" {
		t.Errorf("Expected A 66.7%%, got %s", p.Slices[0].Percent)
	}
	if p.Slices[1].Percent != "33.3%" {
		t.Errorf("Expected B 33.3%%, got %s", p.Slices[1].Percent)
	}
	if p.MarginText != "A +50 votes" {
		t.Errorf("Expected margin 'A +50 votes', got '%s'", p.MarginText)
	}
}

func TestAggregate_Empty(t *testing.T) {
	for _, rows := range [][]models.RawRow{nil, {}} {
		table := Aggregate(rows)

		if table.Len() != 0 {
			t.Errorf("Expected empty table, got %d keys", table.Len())
		}
		locations := table.Locations()
		if locations == nil || len(locations) != 0 {
			t.Errorf("Expected empty non-nil location list, got %#v", locations)
		}
		if _, ok := table.Get("PARK"); ok {
			t.Error("Expected lookup on empty table to miss")
		}
	}
}

func TestAggregate_OnlyTotalRowsCount(t *testing.T) {
	rows := []models.RawRow{
		{Location: "ECHO PARK", Type: "TOTAL", VotesA: 1200, VotesB: 300},
		{Location: "ECHO PARK", Type: "TOTAL", VotesA: 800, VotesB: 200},
		{Location: "ECHO PARK", Type: "VBM", VotesA: 900, VotesB: 100},
		{Location: "ECHO PARK", Type: "total", VotesA: 1, VotesB: 1},
		{Location: "VENICE", Type: "TOTAL", VotesA: 0, VotesB: 0},
		{Location: "VENICE", Type: "POLLS", VotesA: 7, VotesB: 7},
		{Location: "WATTS", Type: "TOTAL ", VotesA: 3, VotesB: 3},
	}

	var wantA, wantB int64
	for _, r := range rows {
		if r.Type == models.TypeTotal {
			wantA += r.VotesA
			wantB += r.VotesB
		}
	}

	table := Aggregate(rows)
	gotA, gotB := table.Totals()
	if gotA+gotB != wantA+wantB || gotA != wantA || gotB != wantB {
		t.Errorf("Expected totals %d/%d, got %d/%d", wantA, wantB, gotA, gotB)
	}

	echo, _ := table.Get("ECHO PARK")
	if echo.CandidateA != 2000 || echo.CandidateB != 500 {
		t.Errorf("Expected ECHO PARK 2000/500, got %d/%d", echo.CandidateA, echo.CandidateB)
	}

	if _, ok := table.Get("WATTS"); ok {
		t.Error("Type match must be exact; WATTS has no TOTAL rows")
	}

	venice, ok := table.Get("VENICE")
	if !ok {
		t.Fatal("Expected VENICE with a zero tally")
	}
	if venice.Total() != 0 {
		t.Errorf("Expected zero total, got %d", venice.Total())
	}
}

func TestAggregate_LocationsAreExactKeys(t *testing.T) {
	rows := []models.RawRow{
		{Location: "Park", Type: "TOTAL", VotesA: 1},
		{Location: "PARK", Type: "TOTAL", VotesA: 2},
		{Location: " PARK", Type: "TOTAL", VotesA: 4},
	}

	table := Aggregate(rows)
	if table.Len() != 3 {
		t.Fatalf("Expected 3 distinct groups, got %d", table.Len())
	}
	if diff := cmp.Diff([]string{" PARK", "PARK", "Park"}, table.Locations()); diff != "" {
		t.Errorf("locations mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregate_LocationListProperties(t *testing.T) {
	names := []string{"WESTWOOD", "", "BALLOT GROUP 12", "ALHAMBRA", "BALLOT GROUP", "WESTWOOD",
		"BALLOT GROUPIE", "ballot group 3", "ZUMA", "ALHAMBRA", "MID-CITY"}

	var rows []models.RawRow
	for i, n := range names {
		rows = append(rows, models.RawRow{Location: n, Type: "TOTAL", VotesA: int64(i), VotesB: 1})
	}

	locations := Aggregate(rows).Locations()

	if !sort.StringsAreSorted(locations) {
		t.Errorf("Expected ascending order, got %v", locations)
	}
	seen := make(map[string]bool)
	for i, loc := range locations {
		if seen[loc] {
			t.Errorf("Duplicate location %q", loc)
		}
		seen[loc] = true
		if i > 0 && locations[i-1] >= loc {
			t.Errorf("Expected strictly ascending at %d: %q >= %q", i, locations[i-1], loc)
		}
		if loc == "" {
			t.Error("Empty location must be excluded")
		}
		if strings.HasPrefix(loc, ExcludedPrefix) {
			t.Errorf("Reserved prefix must be excluded: %q", loc)
		}
	}

	expected := []string{"ALHAMBRA", "MID-CITY", "WESTWOOD", "ZUMA", "ballot group 3"}
	if diff := cmp.Diff(expected, locations); diff != "" {
		t.Errorf("locations mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	input := "LOCATION,TYPE,A,B\n" +
		"PARK,TOTAL,100,50\n" +
		"PARK,ITEMIZED,10,10\n" +
		"LAKE,TOTAL,7,x\n" +
		"LAKE,TOTAL,3,9\n"

	first, _, err := ParseCSV(strings.NewReader(input), testSchema())
	if err != nil {
		t.Fatal(err)
	}
	second, _, err := ParseCSV(strings.NewReader(input), testSchema())
	if err != nil {
		t.Fatal(err)
	}

	a, b := Aggregate(first), Aggregate(second)
	if diff := cmp.Diff(a.Tallies(), b.Tallies()); diff != "" {
		t.Errorf("tallies differ between runs:\n%s", diff)
	}
	if diff := cmp.Diff(a.Locations(), b.Locations()); diff != "" {
		t.Errorf("locations differ between runs:\n%s", diff)
	}
}

func TestTable_CopiesAreIndependent(t *testing.T) {
	table := Aggregate(scenarioRows())

	locations := table.Locations()
	locations[0] = "MUTATED"
	tallies := table.Tallies()
	delete(tallies, "PARK")

	if table.Locations()[0] != "PARK" {
		t.Error("Mutating Locations() result changed the table")
	}
	if _, ok := table.Get("PARK"); !ok {
		t.Error("Mutating Tallies() result changed the table")
	}
}
