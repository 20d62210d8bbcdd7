package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandroruanova/cricket-stats-service/internal/core/domain"
)

func sampleRecords() []domain.PlayerRecord {
	return []domain.PlayerRecord{
		{
			Name:    "Ranatunga",
			Country: "Sri Lanka",
			Role:    "Batsman",
			Matches: 269,
			Runs:    7456,
			Average: 35.84,
			Era:     "Classic",
		},
		{
			Name:    "Müller",
			Country: "Netherlands",
			Role:    "Bowler",
			Matches: 120,
			Wickets: 150,
			Average: 24.5,
			Era:     "Modern",
		},
	}
}

func TestArtifactWriter_WriteRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.json")

	writer := NewArtifactWriter(nil)
	meta, err := writer.WriteRecords(context.Background(), path, sampleRecords())

	require.NoError(t, err)
	assert.Equal(t, path, meta.Path)
	assert.NotEmpty(t, meta.Hash)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, meta.Size, int64(len(data)))

	var decoded []domain.PlayerRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, sampleRecords(), decoded)
}

func TestArtifactWriter_NonASCIIUnescaped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.json")

	writer := NewArtifactWriter(nil)
	_, err := writer.WriteRecords(context.Background(), path, sampleRecords())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Müller")
	assert.NotContains(t, string(data), `\u`)
}

func TestArtifactWriter_Indented(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.json")

	writer := NewArtifactWriter(nil)
	_, err := writer.WriteRecords(context.Background(), path, sampleRecords())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "\n  {"))
}

func TestArtifactWriter_Deterministic(t *testing.T) {
	dir := t.TempDir()
	writer := NewArtifactWriter(nil)

	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.json")

	_, err := writer.WriteRecords(context.Background(), first, sampleRecords())
	require.NoError(t, err)
	_, err = writer.WriteRecords(context.Background(), second, sampleRecords())
	require.NoError(t, err)

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestArtifactWriter_NilRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.json")

	writer := NewArtifactWriter(nil)
	_, err := writer.WriteRecords(context.Background(), path, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(data)))
}

func TestArtifactWriter_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "nested", "players.json")

	writer := NewArtifactWriter(nil)
	_, err := writer.WriteRecords(context.Background(), path, sampleRecords())
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
