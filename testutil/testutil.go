// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/precinct-results/cliparse"
	"github.com/danielhkuo/precinct-results/loader"
)

// SampleCSV is a small export in the default schema.
//
//	Bel-Air    400 / 600   Trump +200 votes
//	Echo Park 1900 / 500   Harris +1,400 votes (VBM row is itemized)
//	Empty Lot    0 / 0     Tie, no chart
//	Venice     250 / 250   Tie
//
// The BALLOT GROUP and blank locations are aggregated but never listed.
const SampleCSV = `PRECINCT,LOCATION,TYPE,KAMALA D HARRIS,DONALD J TRUMP,BALLOTS CAST
9000001A,Echo Park,TOTAL,700,300,1010
9000001A,Echo Park,VBM,500,200,705
9000002A,Echo Park,TOTAL,1200,200,1410
9000003A,Bel-Air,TOTAL,400,600,1005
9000004A,Venice,TOTAL,250,250,502
9000005A,Empty Lot,TOTAL,0,0,0
9000006A,BALLOT GROUP 12,TOTAL,10,5,15
9000007A,,TOTAL,3,4,7
`

// SampleLocations is the selector list SampleCSV produces
var SampleLocations = []string{"Bel-Air", "Echo Park", "Empty Lot", "Venice"}

// StaticSource serves fixed CSV text
type StaticSource string

func (s StaticSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return io.NopCloser(strings.NewReader(string(s))), nil
}

func (s StaticSource) String() string {
	return "static"
}

// FailingSource never opens
type FailingSource struct {
	Err error
}

func (s FailingSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if s.Err == nil {
		return nil, errors.New("source offline")
	}
	return nil, s.Err
}

func (s FailingSource) String() string {
	return "failing"
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	cfg := cliparse.DefaultConfig()
	cfg.Headers.FrameAncestors = []string{"'self'", cfg.Headers.EmbedOrigin, "*.squarespace.com"}
	return cfg
}

// NewTestLoader returns a loader over csv using the default schema
func NewTestLoader(csv string) *loader.Loader {
	return loader.New(StaticSource(csv), GetTestConfig().Schema)
}

// NewFailingLoader returns a loader whose every load fails at the fetch stage
func NewFailingLoader() *loader.Loader {
	return loader.New(FailingSource{}, GetTestConfig().Schema)
}

// MakeRequest creates an HTTP request with optional JSON body and headers
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
