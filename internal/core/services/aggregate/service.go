// Package aggregate reconciles raw per-format rows into ranked player
// records: group by name, merge across formats, classify, filter, order.
package aggregate

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alejandroruanova/cricket-stats-service/internal/core/domain"
	"github.com/alejandroruanova/cricket-stats-service/internal/core/services/classify"
	"github.com/alejandroruanova/cricket-stats-service/internal/core/services/cleanse"
	apperrors "github.com/alejandroruanova/cricket-stats-service/internal/pkg/errors"
)

// minMatches is the inclusion threshold: the output only carries players
// with a substantial career.
const minMatches = 100

// Service accumulates raw rows per player and builds the run report.
// It owns all intermediate state for the duration of one run.
type Service struct {
	logger    *slog.Logger
	players   map[string]*domain.PlayerAccumulator
	order     []string
	rows      int
	startedAt time.Time
}

// NewService creates an aggregator for a single run
func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		logger:    logger,
		players:   make(map[string]*domain.PlayerAccumulator),
		startedAt: time.Now(),
	}
}

// AddRows ingests the rows of one (category, format) source. Rows are
// grouped by trimmed player name; rows with an empty or literal "nan" name
// are discarded. Returns the number of rows kept.
func (s *Service) AddRows(category domain.Category, format domain.Format, rows []domain.RawRow) int {
	added := 0

	for _, row := range rows {
		name := strings.TrimSpace(row[colPlayer])
		if name == "" || name == "nan" {
			continue
		}

		acc, ok := s.players[name]
		if !ok {
			acc = domain.NewPlayerAccumulator(name)
			s.players[name] = acc
			s.order = append(s.order, name)
		}

		cells := acc.Cells(category)
		if cells == nil {
			s.logger.Warn("row for unknown category dropped",
				slog.String("category", string(category)),
				slog.String("player", name))
			continue
		}

		cells.Set(format, row)
		added++
	}

	s.rows += added

	s.logger.Debug("rows ingested",
		slog.String("category", string(category)),
		slog.String("format", string(format)),
		slog.Int("rows", added))

	return added
}

// Build merges, classifies, filters and orders everything ingested so far
// and returns the run report. A failure while building one player is
// recorded in the report and the run continues; nothing here aborts it.
func (s *Service) Build(sources []domain.SourceOutcome) *domain.RunReport {
	report := &domain.RunReport{
		RunID:        uuid.New(),
		StartedAt:    s.startedAt,
		Sources:      sources,
		RowsIngested: s.rows,
		Results:      make([]domain.Result, 0, len(s.order)),
		Records:      make([]domain.PlayerRecord, 0, len(s.order)),
	}

	s.logger.Info("building player records",
		slog.String("run_id", report.RunID.String()),
		slog.Int("players", len(s.order)),
		slog.Int("rows", s.rows))

	for _, name := range s.order {
		result := s.buildPlayer(s.players[name])
		report.Results = append(report.Results, result)

		switch result.Status {
		case domain.StatusIncluded:
			report.Records = append(report.Records, *result.Record)
		case domain.StatusFailed:
			s.logger.Error("player processing failed",
				slog.String("player", name),
				slog.Any("error", result.Err))
		default:
			s.logger.Debug("player filtered",
				slog.String("player", name),
				slog.String("reason", result.Reason))
		}
	}

	// Stable sort keeps insertion order on rank ties
	sort.SliceStable(report.Records, func(i, j int) bool {
		return report.Records[i].RankScore() > report.Records[j].RankScore()
	})

	s.logger.Info("player records built",
		slog.String("run_id", report.RunID.String()),
		slog.Int("included", len(report.Records)),
		slog.Int("filtered", report.CountByStatus(domain.StatusFiltered)),
		slog.Int("failed", report.CountByStatus(domain.StatusFailed)))

	return report
}

// buildPlayer turns one accumulator into a per-player result
func (s *Service) buildPlayer(acc *domain.PlayerAccumulator) domain.Result {
	if acc == nil || acc.RawName == "" {
		return domain.Result{
			Status: domain.StatusFailed,
			Err:    apperrors.PlayerProcessing("", apperrors.Internal("empty accumulator")),
		}
	}

	stats := combine(acc)
	total := stats.TotalMatches()

	if total < minMatches || (total == 0 && stats.Runs == 0 && stats.Wickets == 0) {
		return domain.Result{
			RawName: acc.RawName,
			Status:  domain.StatusFiltered,
			Reason:  fmt.Sprintf("%d matches, below threshold of %d", total, minMatches),
		}
	}

	role := classify.Role(classify.RoleInput{
		Runs:           stats.Runs,
		BattingAverage: stats.BattingAverage,
		Wickets:        stats.Wickets,
		BowlingAverage: stats.BowlingAverage,
		Dismissals:     stats.Dismissals,
		Stumpings:      stats.Stumpings,
	})

	// Batting average when the player has one, bowling average for
	// frontline bowlers, zero otherwise
	average := stats.BattingAverage
	if average <= 0 {
		if role == classify.RoleBowler {
			average = stats.BowlingAverage
		} else {
			average = 0
		}
	}

	record := &domain.PlayerRecord{
		Name:    cleanse.DisplayName(acc.RawName),
		Country: classify.Country(acc.RawName),
		Role:    role,
		Matches: total,
		Runs:    stats.Runs,
		Wickets: stats.Wickets,
		Average: average,
		Era:     classify.Era(stats.Span),
	}

	return domain.Result{
		RawName: acc.RawName,
		Status:  domain.StatusIncluded,
		Record:  record,
	}
}
