package summary

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alejandroruanova/cricket-stats-service/internal/core/domain"
)

func testReport() *domain.RunReport {
	return &domain.RunReport{
		Records: []domain.PlayerRecord{
			{Name: "Spinner", Role: "Bowler", Runs: 1200, Wickets: 500, Era: "Classic"},
			{Name: "Opener", Role: "Batsman", Runs: 9000, Wickets: 2, Era: "Modern"},
			{Name: "Anchor", Role: "Batsman", Runs: 8000, Wickets: 0, Era: "Modern"},
		},
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, testReport(), 2)

	out := buf.String()
	assert.Contains(t, out, "Processed 3 players successfully!")
	assert.Contains(t, out, "Sample of processed data (first 2 players):")
	assert.Contains(t, out, "1. Spinner - Bowler - 1200 runs, 500 wickets")
	assert.Contains(t, out, "2. Opener - Batsman - 9000 runs, 2 wickets")
	assert.NotContains(t, out, "Anchor - Batsman")
	assert.Contains(t, out, "Batsman: 2")
	assert.Contains(t, out, "Bowler: 1")
	assert.Contains(t, out, "Modern: 2")
	assert.Contains(t, out, "Classic: 1")
}

func TestPrint_SampleClampedToRecords(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, testReport(), 10)

	assert.Contains(t, buf.String(), "first 3 players")
}

func TestPrint_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, &domain.RunReport{}, 5)

	out := buf.String()
	assert.Contains(t, out, "Processed 0 players successfully!")
	assert.NotContains(t, out, "Sample of processed data")
}
