package sources

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/alejandroruanova/cricket-stats-service/internal/core/domain"
	apperrors "github.com/alejandroruanova/cricket-stats-service/internal/pkg/errors"
)

func writeSource(t *testing.T, dataDir string, category, file, content string) {
	t.Helper()
	dir := filepath.Join(dataDir, category)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte(content), 0644))
}

func outcomeFor(loaded []LoadedSource, category domain.Category, format domain.Format) *LoadedSource {
	for i := range loaded {
		if loaded[i].Outcome.Category == category && loaded[i].Outcome.Format == format {
			return &loaded[i]
		}
	}
	return nil
}

func TestLoader_LoadAll(t *testing.T) {
	dataDir := t.TempDir()
	writeSource(t, dataDir, "batting", "test.csv",
		"Player,Mat,Runs,Ave,Span\nA (AUS),150,5000,40.5,2000-2015\n")
	writeSource(t, dataDir, "bowling", "odi.csv",
		"Player,Mat,Wkts,Ave\nB (SL),300,400,23.1\n")

	loader := NewLoader(dataDir, nil, nil)
	loaded := loader.LoadAll(context.Background())

	// All nine expected sources get an outcome either way
	require.Len(t, loaded, 9)

	batting := outcomeFor(loaded, domain.CategoryBatting, domain.FormatTest)
	require.NotNil(t, batting)
	assert.Equal(t, domain.SourceLoaded, batting.Outcome.Status)
	assert.Equal(t, 1, batting.Outcome.Rows)
	require.Len(t, batting.Rows, 1)
	assert.Equal(t, "A (AUS)", batting.Rows[0]["Player"])

	missing := outcomeFor(loaded, domain.CategoryFielding, domain.FormatT20)
	require.NotNil(t, missing)
	assert.Equal(t, domain.SourceMissing, missing.Outcome.Status)
	assert.True(t, apperrors.HasCode(missing.Outcome.Err, apperrors.ErrCodeSourceMissing))
	assert.Empty(t, missing.Rows)

	statuses := map[domain.SourceStatus]int{}
	for _, src := range loaded {
		statuses[src.Outcome.Status]++
	}
	assert.Equal(t, 2, statuses[domain.SourceLoaded])
	assert.Equal(t, 7, statuses[domain.SourceMissing])
}

func TestLoader_LowercasesFormatInPath(t *testing.T) {
	dataDir := t.TempDir()
	writeSource(t, dataDir, "batting", "t20.csv",
		"Player,Mat,Runs,Ave,Span\nC (INDIA),120,3500,35.1,2008-2022\n")

	loader := NewLoader(dataDir, nil, nil)
	loaded := loader.LoadAll(context.Background())

	t20 := outcomeFor(loaded, domain.CategoryBatting, domain.FormatT20)
	require.NotNil(t, t20)
	assert.Equal(t, domain.SourceLoaded, t20.Outcome.Status)
	assert.Equal(t, filepath.Join(dataDir, "batting", "t20.csv"), t20.Outcome.Path)
}

func TestLoader_UnreadableSource(t *testing.T) {
	dataDir := t.TempDir()
	// Empty file: the CSV parser cannot even read a header
	writeSource(t, dataDir, "batting", "odi.csv", "")

	loader := NewLoader(dataDir, nil, nil)
	loaded := loader.LoadAll(context.Background())

	odi := outcomeFor(loaded, domain.CategoryBatting, domain.FormatODI)
	require.NotNil(t, odi)
	assert.Equal(t, domain.SourceUnreadable, odi.Outcome.Status)
	assert.True(t, apperrors.HasCode(odi.Outcome.Err, apperrors.ErrCodeSourceUnreadable))
	assert.Empty(t, odi.Rows)
}

func TestLoader_ExcelFallback(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dataDir, "bowling"), 0755))

	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	header := []interface{}{"Player", "Mat", "Wkts", "Ave"}
	row := []interface{}{"M Muralidaran (SL)", 133, 800, 22.72}
	require.NoError(t, wb.SetSheetRow(sheet, "A1", &header))
	require.NoError(t, wb.SetSheetRow(sheet, "A2", &row))
	require.NoError(t, wb.SaveAs(filepath.Join(dataDir, "bowling", "test.xlsx")))

	loader := NewLoader(dataDir, nil, nil)
	loaded := loader.LoadAll(context.Background())

	test := outcomeFor(loaded, domain.CategoryBowling, domain.FormatTest)
	require.NotNil(t, test)
	assert.Equal(t, domain.SourceLoaded, test.Outcome.Status)
	require.Len(t, test.Rows, 1)
	assert.Equal(t, "800", test.Rows[0]["Wkts"])
}

func TestLoader_CSVWinsOverExcel(t *testing.T) {
	dataDir := t.TempDir()
	writeSource(t, dataDir, "batting", "test.csv",
		"Player,Mat,Runs,Ave,Span\nFrom CSV (ENG),100,4000,40,2000-2010\n")
	writeSource(t, dataDir, "batting", "test.xlsx", "not a real workbook")

	loader := NewLoader(dataDir, nil, nil)
	loaded := loader.LoadAll(context.Background())

	test := outcomeFor(loaded, domain.CategoryBatting, domain.FormatTest)
	require.NotNil(t, test)
	assert.Equal(t, domain.SourceLoaded, test.Outcome.Status)
	require.Len(t, test.Rows, 1)
	assert.Equal(t, "From CSV (ENG)", test.Rows[0]["Player"])
}
