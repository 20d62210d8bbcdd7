// Package sources resolves the fixed on-disk source layout
// {data_dir}/{category}/{format}.csv and loads whatever is present.
package sources

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alejandroruanova/cricket-stats-service/internal/core/domain"
	"github.com/alejandroruanova/cricket-stats-service/internal/infrastructure/parsers"
	apperrors "github.com/alejandroruanova/cricket-stats-service/internal/pkg/errors"
)

// LoadedSource pairs a source outcome with the rows it yielded
type LoadedSource struct {
	Outcome domain.SourceOutcome
	Rows    []domain.RawRow
}

// Loader locates and parses the nine expected sources. A missing or
// unreadable source is a diagnostic, never a failure of the run.
type Loader struct {
	dataDir string
	factory *parsers.ParserFactory
	logger  *slog.Logger
}

// NewLoader creates a loader over the given data directory
func NewLoader(dataDir string, config *parsers.ParserConfig, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}

	return &Loader{
		dataDir: dataDir,
		factory: parsers.NewParserFactory(config),
		logger:  logger,
	}
}

// LoadAll loads every (category, format) source in a fixed order. Each
// source resolves to {data_dir}/{category}/{format}.csv, falling back to
// an .xlsx workbook of the same name before being declared missing.
func (l *Loader) LoadAll(ctx context.Context) []LoadedSource {
	loaded := make([]LoadedSource, 0, len(domain.Categories())*len(domain.MergeOrder()))

	for _, category := range domain.Categories() {
		for _, format := range domain.MergeOrder() {
			loaded = append(loaded, l.loadOne(ctx, category, format))
		}
	}

	return loaded
}

func (l *Loader) loadOne(ctx context.Context, category domain.Category, format domain.Format) LoadedSource {
	base := filepath.Join(l.dataDir, string(category), strings.ToLower(string(format)))

	path, ok := l.resolve(base)
	if !ok {
		l.logger.Warn("source file not found",
			slog.String("category", string(category)),
			slog.String("format", string(format)),
			slog.String("path", base+".csv"))

		return LoadedSource{Outcome: domain.SourceOutcome{
			Category: category,
			Format:   format,
			Path:     base + ".csv",
			Status:   domain.SourceMissing,
			Err:      apperrors.SourceMissing(base + ".csv"),
		}}
	}

	result, err := l.factory.ParseFile(ctx, path)
	if err != nil {
		l.logger.Error("source file unreadable",
			slog.String("path", path),
			slog.Any("error", err))

		return LoadedSource{Outcome: domain.SourceOutcome{
			Category: category,
			Format:   format,
			Path:     path,
			Status:   domain.SourceUnreadable,
			Err:      apperrors.SourceUnreadable(err, path),
		}}
	}

	rows := make([]domain.RawRow, 0, len(result.Records))
	for _, record := range result.Records {
		rows = append(rows, domain.RawRow(record))
	}

	l.logger.Info("source loaded",
		slog.String("path", path),
		slog.String("source_format", result.Format),
		slog.Int("rows", len(rows)),
		slog.Int("skipped_rows", result.SkippedRows))

	return LoadedSource{
		Outcome: domain.SourceOutcome{
			Category: category,
			Format:   format,
			Path:     path,
			Status:   domain.SourceLoaded,
			Rows:     len(rows),
		},
		Rows: rows,
	}
}

// resolve picks the first existing candidate file for a source
func (l *Loader) resolve(base string) (string, bool) {
	for _, ext := range []string{".csv", ".xlsx"} {
		candidate := base + ext
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}
