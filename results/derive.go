// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package results

import (
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/precinct-results/models"
)

// Derive builds the display values for one location.
// Slices always come in candidate order so colors line up across selections.
func Derive(t models.LocationTally, cands [2]Candidate) models.Presentation {
	total := t.Total()
	leader, margin := MarginText(t.CandidateA, t.CandidateB, cands)

	values := [2]int64{t.CandidateA, t.CandidateB}
	var slices [2]models.DisplaySlice
	for i, c := range cands {
		slices[i] = models.DisplaySlice{
			Name:    c.Label,
			Value:   values[i],
			Color:   c.Color,
			Percent: Percentage(values[i], total),
		}
	}

	return models.Presentation{
		Location:   t.Location,
		Slices:     slices,
		Total:      total,
		Leader:     leader,
		MarginText: margin,
	}
}

// Percentage formats value/total with one decimal. A zero total yields "0.0%".
func Percentage(value, total int64) string {
	if total <= 0 {
		return "0.0%"
	}
	pct := float64(value) / float64(total) * 100
	return strconv.FormatFloat(pct, 'f', 1, 64) + "%"
}

// MarginText compares a against b. A positive difference means candidate A leads;
// an exact tie reports models.TieLabel for both return values.
func MarginText(a, b int64, cands [2]Candidate) (leader, text string) {
	diff := a - b
	switch {
	case diff > 0:
		leader = cands[0].Label
	case diff < 0:
		leader = cands[1].Label
		diff = -diff
	default:
		return models.TieLabel, models.TieLabel
	}
	return leader, leader + " +" + humanize.Comma(diff) + " votes"
}
