package domain

// PlayerRecord is the final output entity, immutable once constructed
type PlayerRecord struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Role    string  `json:"role"`
	Matches int     `json:"matches"`
	Runs    int     `json:"runs"`
	Wickets int     `json:"wickets"`
	Average float64 `json:"average"`
	Era     string  `json:"era"`
}

// RankScore orders the output: wickets are weighted so top bowlers rank
// alongside top batsmen.
func (r PlayerRecord) RankScore() int {
	return r.Runs + r.Wickets*50
}
