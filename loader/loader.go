// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/precinct-results/models"
	"github.com/danielhkuo/precinct-results/results"
)

// ErrUnavailable is wrapped by every failed Outcome
var ErrUnavailable = errors.New("election data unavailable")

// Load stages
const (
	StageFetch = "fetch"
	StageParse = "parse"
)

// StageError records where a load failed
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s stage: %v", ErrUnavailable, e.Stage, e.Err)
}

func (e *StageError) Unwrap() []error {
	return []error{ErrUnavailable, e.Err}
}

// Outcome is either rows or an error, never both
type Outcome struct {
	Rows  []models.RawRow
	Stats results.ParseStats
	Err   error
}

// OK reports whether the load succeeded
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Loader fetches and parses the CSV once per call
type Loader struct {
	source Source
	schema results.Schema
}

func New(source Source, schema results.Schema) *Loader {
	return &Loader{source: source, schema: schema}
}

func (l *Loader) Schema() results.Schema {
	return l.schema
}

// Load fetches the CSV and parses it. Failures are logged and returned in the Outcome.
func (l *Loader) Load(ctx context.Context) Outcome {
	start := time.Now()

	rc, err := l.source.Open(ctx)
	if err != nil {
		return l.fail(StageFetch, err)
	}
	defer rc.Close()

	rows, stats, err := results.ParseCSV(rc, l.schema)
	if err != nil {
		return l.fail(StageParse, err)
	}

	if stats.Defaulted > 0 {
		slog.Debug("vote cells defaulted to zero",
			"source", l.source.String(),
			"cells", stats.Defaulted,
		)
	}
	slog.Debug("election data loaded",
		"source", l.source.String(),
		"rows", stats.Rows,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return Outcome{Rows: rows, Stats: stats}
}

func (l *Loader) fail(stage string, err error) Outcome {
	slog.Error("failed to load election data",
		"source", l.source.String(),
		"stage", stage,
		"error", err,
	)
	return Outcome{Err: &StageError{Stage: stage, Err: err}}
}
