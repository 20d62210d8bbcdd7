package domain

// ResultStatus classifies the outcome of processing one player
type ResultStatus string

const (
	StatusIncluded ResultStatus = "included"
	StatusFiltered ResultStatus = "filtered"
	StatusFailed   ResultStatus = "failed"
)

// Result is the per-player outcome. A failure carries its cause instead of
// aborting the run; the report aggregates all of them.
type Result struct {
	RawName string        `json:"raw_name"`
	Status  ResultStatus  `json:"status"`
	Record  *PlayerRecord `json:"record,omitempty"`
	Reason  string        `json:"reason,omitempty"`
	Err     error         `json:"-"`
}

// SourceStatus classifies the outcome of loading one source file
type SourceStatus string

const (
	SourceLoaded     SourceStatus = "loaded"
	SourceMissing    SourceStatus = "missing"
	SourceUnreadable SourceStatus = "unreadable"
)

// SourceOutcome records what happened to one (category, format) source
type SourceOutcome struct {
	Category Category     `json:"category"`
	Format   Format       `json:"format"`
	Path     string       `json:"path"`
	Status   SourceStatus `json:"status"`
	Rows     int          `json:"rows"`
	Err      error        `json:"-"`
}
