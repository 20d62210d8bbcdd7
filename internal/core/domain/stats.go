package domain

// CombinedStats holds a player's format-merged totals. Computed once from
// the accumulator and never mutated afterward.
type CombinedStats struct {
	Runs           int
	BattingMatches int
	BattingAverage float64
	Span           string

	Wickets        int
	BowlingMatches int
	BowlingAverage float64

	Dismissals int
	Stumpings  int
}

// TotalMatches is the maximum of the batting and bowling match counts;
// fielding tables repeat the same appearances and carry no count of their own.
func (s CombinedStats) TotalMatches() int {
	if s.BattingMatches > s.BowlingMatches {
		return s.BattingMatches
	}
	return s.BowlingMatches
}
