// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package workbook exports the aggregate table as an XLSX spreadsheet.
package workbook

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/precinct-results/results"
)

// SheetName is the only sheet in the exported workbook
const SheetName = "Results"

// ContentType is the media type of the exported workbook
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Header returns the column titles for the given candidates
func Header(cands [2]results.Candidate) []interface{} {
	return []interface{}{
		"Location",
		cands[0].Label + " Votes",
		cands[1].Label + " Votes",
		"Total Votes",
		cands[0].Label + " %",
		cands[1].Label + " %",
		"Leader",
		"Margin",
	}
}

// Write writes one row per listed location, in selector order, to w
func Write(w io.Writer, t *results.Table, cands [2]results.Candidate) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := Header(cands)
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", bold); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	if err := f.SetColWidth(SheetName, "A", "A", 28); err != nil {
		return fmt.Errorf("failed to size location column: %w", err)
	}

	for i, location := range t.Locations() {
		tally, _ := t.Get(location)
		p := results.Derive(tally, cands)

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			p.Location,
			p.Slices[0].Value,
			p.Slices[1].Value,
			p.Total,
			p.Slices[0].Percent,
			p.Slices[1].Percent,
			p.Leader,
			p.MarginText,
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", location, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
