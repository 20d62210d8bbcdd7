// Package main provides the cricketstats command-line tool: it reads the
// per-format statistic tables, reconciles them into ranked player records,
// and writes a single JSON artifact.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alejandroruanova/cricket-stats-service/internal/core/domain"
	"github.com/alejandroruanova/cricket-stats-service/internal/core/services/aggregate"
	"github.com/alejandroruanova/cricket-stats-service/internal/core/services/summary"
	"github.com/alejandroruanova/cricket-stats-service/internal/infrastructure/parsers"
	"github.com/alejandroruanova/cricket-stats-service/internal/infrastructure/sources"
	"github.com/alejandroruanova/cricket-stats-service/internal/infrastructure/storage"
	"github.com/alejandroruanova/cricket-stats-service/internal/pkg/config"
	"github.com/alejandroruanova/cricket-stats-service/internal/pkg/logger"
)

func main() {
	if err := run(context.Background(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "cricketstats: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger.Initialize(cfg.Environment, cfg.LogLevel)
	log := logger.NewServiceLogger("cricketstats")
	cfg.LogConfig(log)

	parserConfig := parsers.DefaultParserConfig()
	parserConfig.MaxFileSize = cfg.MaxFileSizeBytes()

	loader := sources.NewLoader(cfg.DataDir, parserConfig, log)
	aggregator := aggregate.NewService(log)

	outcomes := make([]domain.SourceOutcome, 0)
	for _, source := range loader.LoadAll(ctx) {
		outcomes = append(outcomes, source.Outcome)
		if source.Outcome.Status == domain.SourceLoaded {
			aggregator.AddRows(source.Outcome.Category, source.Outcome.Format, source.Rows)
		}
	}

	report := aggregator.Build(outcomes)

	writer := storage.NewArtifactWriter(log)
	if _, err := writer.WriteRecords(ctx, cfg.OutputPath, report.Records); err != nil {
		return err
	}

	summary.Print(out, report, cfg.SampleSize)

	return nil
}
