package models

// Row classifier constants
const (
	TypeTotal = "TOTAL"
)

// Load status constants
const (
	StatusLoading     = "loading"
	StatusReady       = "ready"
	StatusUnavailable = "unavailable"
)

// TieLabel is reported as the leader when both candidates have the same count.
const TieLabel = "Tie"

// Domain types

// RawRow is one parsed CSV record. Only the columns the aggregator needs are kept.
type RawRow struct {
	Location string
	Type     string
	VotesA   int64
	VotesB   int64
}

type LocationTally struct {
	Location   string `json:"location"`
	CandidateA int64  `json:"candidate_a"`
	CandidateB int64  `json:"candidate_b"`
}

// Total returns the combined vote count of both candidates
func (t LocationTally) Total() int64 {
	return t.CandidateA + t.CandidateB
}

type DisplaySlice struct {
	Name    string `json:"name"`
	Value   int64  `json:"value"`
	Color   string `json:"color"`
	Percent string `json:"percent"`
}

type Presentation struct {
	Location   string          `json:"location"`
	Slices     [2]DisplaySlice `json:"slices"`
	Total      int64           `json:"total"`
	Leader     string          `json:"leader"`
	MarginText string          `json:"margin_text"`
}

// Response types

type LocationsResponse struct {
	Status    string   `json:"status"`
	Locations []string `json:"locations"`
}

type TableResponse struct {
	Status    string                   `json:"status"`
	Selected  string                   `json:"selected,omitempty"`
	Locations []string                 `json:"locations"`
	Tallies   map[string]LocationTally `json:"tallies"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
