// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package results

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/danielhkuo/precinct-results/models"
)

// ExcludedPrefix marks group keys that are not real neighborhoods
const ExcludedPrefix = "BALLOT GROUP"

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Candidate binds a vote column of the source CSV to its display identity.
// Color is part of the contract: it stays the same for every location.
type Candidate struct {
	Column string `toml:"column"`
	Label  string `toml:"label"`
	Color  string `toml:"color"`
}

// Schema declares the columns read from the CSV. Columns not listed here are ignored
// and never coerced.
type Schema struct {
	LocationColumn string       `toml:"location_column"`
	TypeColumn     string       `toml:"type_column"`
	Candidates     [2]Candidate `toml:"candidates"`
}

// DefaultSchema matches the Los Angeles County 2024 presidential export
func DefaultSchema() Schema {
	return Schema{
		LocationColumn: "LOCATION",
		TypeColumn:     "TYPE",
		Candidates: [2]Candidate{
			{Column: "KAMALA D HARRIS", Label: "Harris", Color: "#0066CC"},
			{Column: "DONALD J TRUMP", Label: "Trump", Color: "#CC0000"},
		},
	}
}

// Validate checks that every declared column is named and colors are #RRGGBB
func (s Schema) Validate() error {
	if s.LocationColumn == "" {
		return errors.New("location column is required")
	}
	if s.TypeColumn == "" {
		return errors.New("type column is required")
	}
	for i, c := range s.Candidates {
		if c.Column == "" {
			return fmt.Errorf("candidate %d: column is required", i+1)
		}
		if c.Label == "" {
			return fmt.Errorf("candidate %d: label is required", i+1)
		}
		if c.Label == models.TieLabel {
			return fmt.Errorf("candidate %d: label %q is reserved", i+1, c.Label)
		}
		if !hexColor.MatchString(c.Color) {
			return fmt.Errorf("candidate %d: invalid color %q", i+1, c.Color)
		}
	}
	if s.Candidates[0].Column == s.Candidates[1].Column {
		return errors.New("candidates must use different columns")
	}
	return nil
}
