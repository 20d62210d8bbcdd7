// Package summary renders the end-of-run console report
package summary

import (
	"fmt"
	"io"
	"sort"

	"github.com/alejandroruanova/cricket-stats-service/internal/core/domain"
)

// Print writes the human-readable run summary: processed count, the top
// records, and the role and era distributions. Distribution lines are
// sorted by count descending, then name, so output stays deterministic.
func Print(w io.Writer, report *domain.RunReport, sampleSize int) {
	fmt.Fprintf(w, "\nProcessed %d players successfully!\n", len(report.Records))

	if sampleSize > len(report.Records) {
		sampleSize = len(report.Records)
	}
	if sampleSize > 0 {
		fmt.Fprintf(w, "\nSample of processed data (first %d players):\n", sampleSize)
		for i := 0; i < sampleSize; i++ {
			rec := report.Records[i]
			fmt.Fprintf(w, "%d. %s - %s - %d runs, %d wickets\n",
				i+1, rec.Name, rec.Role, rec.Runs, rec.Wickets)
		}
	}

	fmt.Fprintf(w, "\nStatistics:\n")
	fmt.Fprintf(w, "Total players: %d\n", len(report.Records))

	fmt.Fprintln(w, "Roles distribution:")
	printDistribution(w, report.RoleDistribution())

	fmt.Fprintln(w, "Era distribution:")
	printDistribution(w, report.EraDistribution())
}

func printDistribution(w io.Writer, dist map[string]int) {
	type entry struct {
		label string
		count int
	}

	entries := make([]entry, 0, len(dist))
	for label, count := range dist {
		entries = append(entries, entry{label, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].label < entries[j].label
	})

	for _, e := range entries {
		fmt.Fprintf(w, "  %s: %d\n", e.label, e.count)
	}
}
