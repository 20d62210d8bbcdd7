// Package storage writes the output artifact to the local filesystem
package storage

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alejandroruanova/cricket-stats-service/internal/core/domain"
	apperrors "github.com/alejandroruanova/cricket-stats-service/internal/pkg/errors"
)

// ArtifactMetadata describes a written artifact
type ArtifactMetadata struct {
	Path      string
	Size      int64
	Hash      string
	CreatedAt time.Time
}

// ArtifactWriter persists run output as an indented UTF-8 JSON document
type ArtifactWriter struct {
	logger *slog.Logger
}

// NewArtifactWriter creates a new artifact writer
func NewArtifactWriter(logger *slog.Logger) *ArtifactWriter {
	if logger == nil {
		logger = slog.Default()
	}

	return &ArtifactWriter{
		logger: logger,
	}
}

// WriteRecords writes the player records to path. HTML escaping is off so
// non-ASCII names stay literal in the file. This is the only write of the
// run; its failure is the run's only fatal error.
func (w *ArtifactWriter) WriteRecords(ctx context.Context, path string, records []domain.PlayerRecord) (*ArtifactMetadata, error) {
	if records == nil {
		records = []domain.PlayerRecord{}
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(records); err != nil {
		return nil, apperrors.ArtifactWrite(err, path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, apperrors.ArtifactWrite(err, path)
		}
	}

	data := buf.Bytes()
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, apperrors.ArtifactWrite(err, path)
	}

	hash := sha256.Sum256(data)
	metadata := &ArtifactMetadata{
		Path:      path,
		Size:      int64(len(data)),
		Hash:      hex.EncodeToString(hash[:]),
		CreatedAt: time.Now(),
	}

	w.logger.Info("artifact written",
		slog.String("path", metadata.Path),
		slog.Int64("size", metadata.Size),
		slog.String("hash", metadata.Hash),
		slog.Int("records", len(records)))

	return metadata, nil
}
