// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package results

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/danielhkuo/precinct-results/models"
)

func TestPercentage(t *testing.T) {
	testCases := []struct {
		value    int64
		total    int64
		expected string
	}{
		{100, 150, "66.7%"},
		{50, 150, "33.3%"},
		{1, 3, "33.3%"},
		{2, 3, "66.7%"},
		{0, 10, "0.0%"},
		{10, 10, "100.0%"},
		{0, 0, "0.0%"},
		{5, 0, "0.0%"},
	}

	for _, tc := range testCases {
		t.Run(strconv.FormatInt(tc.value, 10)+"/"+strconv.FormatInt(tc.total, 10), func(t *testing.T) {
			if got := Percentage(tc.value, tc.total); got != tc.expected {
				t.Errorf("Expected %s, got %s", tc.expected, got)
			}
		})
	}
}

func TestDerive_ZeroTotal(t *testing.T) {
	p := Derive(models.LocationTally{Location: "EMPTY"}, testSchema().Candidates)

	if p.Total != 0 {
		t.Errorf("Expected total 0, got %d", p.Total)
	}
	for _, s := range p.Slices {
		if s.Percent != "0.0%" {
			t.Errorf("Expected 0.0%% for %s, got %s", s.Name, s.Percent)
		}
		if strings.Contains(s.Percent, "NaN") || strings.Contains(s.Percent, "Inf") {
			t.Errorf("Percent must be finite, got %s", s.Percent)
		}
	}
	if p.MarginText != models.TieLabel {
		t.Errorf("Expected tie margin, got %s", p.MarginText)
	}
}

func TestDerive_PercentagesSumToHundred(t *testing.T) {
	tallies := []models.LocationTally{
		{CandidateA: 1, CandidateB: 2},
		{CandidateA: 1, CandidateB: 1},
		{CandidateA: 2, CandidateB: 1},
		{CandidateA: 1, CandidateB: 6},
		{CandidateA: 12345, CandidateB: 6789},
		{CandidateA: 0, CandidateB: 17},
		{CandidateA: 999999, CandidateB: 1},
		{CandidateA: 333, CandidateB: 667},
	}

	for _, tally := range tallies {
		p := Derive(tally, testSchema().Candidates)

		var sum float64
		for _, s := range p.Slices {
			f, err := strconv.ParseFloat(strings.TrimSuffix(s.Percent, "%"), 64)
			if err != nil {
				t.Fatalf("Percent %q is not a number: %v", s.Percent, err)
			}
			sum += f
		}
		if math.Abs(sum-100) > 0.1+1e-9 {
			t.Errorf("%d/%d: percentages sum to %.1f", tally.CandidateA, tally.CandidateB, sum)
		}
	}
}

func TestDerive_SlicesKeepCandidateOrder(t *testing.T) {
	cands := DefaultSchema().Candidates

	for _, tally := range []models.LocationTally{
		{CandidateA: 10, CandidateB: 90},
		{CandidateA: 90, CandidateB: 10},
	} {
		p := Derive(tally, cands)

		if p.Slices[0].Name != "Harris" || p.Slices[0].Color != "#0066CC" {
			t.Errorf("Expected Harris first in blue, got %+v", p.Slices[0])
		}
		if p.Slices[1].Name != "Trump" || p.Slices[1].Color != "#CC0000" {
			t.Errorf("Expected Trump second in red, got %+v", p.Slices[1])
		}
		if p.Slices[0].Value != tally.CandidateA || p.Slices[1].Value != tally.CandidateB {
			t.Errorf("Slice values do not match tally: %+v", p.Slices)
		}
	}
}

func TestMarginText(t *testing.T) {
	cands := DefaultSchema().Candidates

	testCases := []struct {
		name           string
		a, b           int64
		expectedLeader string
		expectedText   string
	}{
		{"A leads", 1500, 500, "Harris", "Harris +1,000 votes"},
		{"B leads", 500, 1500, "Trump", "Trump +1,000 votes"},
		{"small margin", 11, 10, "Harris", "Harris +1 votes"},
		{"large margin", 2345678, 1, "Harris", "Harris +2,345,677 votes"},
		{"tie", 42, 42, "Tie", "Tie"},
		{"no votes", 0, 0, "Tie", "Tie"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			leader, text := MarginText(tc.a, tc.b, cands)
			if leader != tc.expectedLeader {
				t.Errorf("Expected leader %s, got %s", tc.expectedLeader, leader)
			}
			if text != tc.expectedText {
				t.Errorf("Expected '%s', got '%s'", tc.expectedText, text)
			}
		})
	}
}

func TestSchemaValidate(t *testing.T) {
	if err := DefaultSchema().Validate(); err != nil {
		t.Fatalf("Default schema should be valid: %v", err)
	}

	testCases := []struct {
		name   string
		mutate func(s *Schema)
	}{
		{"no location column", func(s *Schema) { s.LocationColumn = "" }},
		{"no type column", func(s *Schema) { s.TypeColumn = "" }},
		{"no candidate column", func(s *Schema) { s.Candidates[1].Column = "" }},
		{"no label", func(s *Schema) { s.Candidates[0].Label = "" }},
		{"reserved label", func(s *Schema) { s.Candidates[0].Label = "Tie" }},
		{"bad color", func(s *Schema) { s.Candidates[0].Color = "blue" }},
		{"short color", func(s *Schema) { s.Candidates[0].Color = "#06C" }},
		{"same column twice", func(s *Schema) { s.Candidates[1].Column = s.Candidates[0].Column }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultSchema()
			tc.mutate(&s)
			if err := s.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}
