package aggregate

import (
	"github.com/alejandroruanova/cricket-stats-service/internal/core/domain"
	"github.com/alejandroruanova/cricket-stats-service/internal/core/services/cleanse"
)

// Expected source columns per category
const (
	colPlayer = "Player"
	colRuns   = "Runs"
	colMat    = "Mat"
	colAve    = "Ave"
	colSpan   = "Span"
	colWkts   = "Wkts"
	colDis    = "Dis"
	colSt     = "St"
)

// combine merges a player's per-format rows into career totals. Counting
// stats sum across the formats present; the average and span come from the
// first format in Test, ODI, T20 order whose cell is nonzero or nonempty
// and are not overwritten by later formats. A zero cleaned average does
// not claim the slot, so a later format may still fill it.
func combine(acc *domain.PlayerAccumulator) domain.CombinedStats {
	var stats domain.CombinedStats

	for _, format := range domain.MergeOrder() {
		if row := acc.Batting.Get(format); row != nil {
			stats.Runs += cleanse.Integer(row[colRuns])
			stats.BattingMatches += cleanse.Integer(row[colMat])
			if stats.BattingAverage == 0 && row[colAve] != "" {
				stats.BattingAverage = cleanse.Number(row[colAve])
			}
			if stats.Span == "" && row[colSpan] != "" {
				stats.Span = row[colSpan]
			}
		}
	}

	for _, format := range domain.MergeOrder() {
		if row := acc.Bowling.Get(format); row != nil {
			stats.Wickets += cleanse.Integer(row[colWkts])
			stats.BowlingMatches += cleanse.Integer(row[colMat])
			if stats.BowlingAverage == 0 && row[colAve] != "" {
				stats.BowlingAverage = cleanse.Number(row[colAve])
			}
		}
	}

	for _, format := range domain.MergeOrder() {
		if row := acc.Fielding.Get(format); row != nil {
			stats.Dismissals += cleanse.Integer(row[colDis])
			stats.Stumpings += cleanse.Integer(row[colSt])
		}
	}

	return stats
}
