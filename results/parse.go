// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package results

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/danielhkuo/precinct-results/models"
)

var (
	ErrNoHeader      = errors.New("csv has no header row")
	ErrMissingColumn = errors.New("csv header is missing a required column")
)

// ParseError reports CSV text the reader could not tolerate
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed csv at line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseStats summarizes a successful parse
type ParseStats struct {
	Rows      int
	Defaulted int // vote cells that were missing or not a whole non-negative number
}

// ParseCSV reads CSV text with a header row into RawRows.
// On any error no rows are returned.
func ParseCSV(r io.Reader, s Schema) ([]models.RawRow, ParseStats, error) {
	var stats ParseStats

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, stats, ErrNoHeader
	}
	if err != nil {
		return nil, stats, wrapCSVError(err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}

	columns := []string{s.LocationColumn, s.TypeColumn, s.Candidates[0].Column, s.Candidates[1].Column}
	pos := make([]int, len(columns))
	for i, name := range columns {
		p, ok := idx[name]
		if !ok {
			return nil, stats, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
		pos[i] = p
	}

	var rows []models.RawRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, ParseStats{}, wrapCSVError(err)
		}

		a, okA := parseVotes(cell(record, pos[2]))
		b, okB := parseVotes(cell(record, pos[3]))
		if !okA {
			stats.Defaulted++
		}
		if !okB {
			stats.Defaulted++
		}

		rows = append(rows, models.RawRow{
			Location: cell(record, pos[0]),
			Type:     cell(record, pos[1]),
			VotesA:   a,
			VotesB:   b,
		})
	}
	stats.Rows = len(rows)

	return rows, stats, nil
}

// cell returns the i-th field, or "" when a ragged row is too short
func cell(record []string, i int) string {
	if i < len(record) {
		return record[i]
	}
	return ""
}

// parseVotes accepts whole non-negative numbers ("12", " 12 ", "12.0").
// Anything else counts as zero votes.
func parseVotes(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n < 0 {
			return 0, false
		}
		return n, true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || f != math.Trunc(f) || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func wrapCSVError(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &ParseError{Line: csvErr.Line, Err: csvErr.Err}
	}
	return &ParseError{Err: err}
}
