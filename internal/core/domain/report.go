package domain

import (
	"time"

	"github.com/google/uuid"
)

// RunReport is the complete outcome of one pipeline run: which sources
// loaded, what happened to every player, and the final ranked records.
type RunReport struct {
	RunID        uuid.UUID       `json:"run_id"`
	StartedAt    time.Time       `json:"started_at"`
	Sources      []SourceOutcome `json:"sources"`
	RowsIngested int             `json:"rows_ingested"`
	Results      []Result        `json:"results"`
	Records      []PlayerRecord  `json:"records"`
}

// PlayersSeen is the number of distinct player names encountered
func (r *RunReport) PlayersSeen() int {
	return len(r.Results)
}

// CountByStatus returns how many players ended in the given status
func (r *RunReport) CountByStatus(status ResultStatus) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}

// Failures returns the per-player failures, in processing order
func (r *RunReport) Failures() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Status == StatusFailed {
			failed = append(failed, res)
		}
	}
	return failed
}

// RoleDistribution counts final records per role
func (r *RunReport) RoleDistribution() map[string]int {
	dist := make(map[string]int)
	for _, rec := range r.Records {
		dist[rec.Role]++
	}
	return dist
}

// EraDistribution counts final records per era
func (r *RunReport) EraDistribution() map[string]int {
	dist := make(map[string]int)
	for _, rec := range r.Records {
		dist[rec.Era]++
	}
	return dist
}
