package parsers

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "github.com/alejandroruanova/cricket-stats-service/internal/pkg/errors"
)

// ExcelParser parses Excel workbooks; only the first sheet is read
type ExcelParser struct {
	config *ParserConfig
}

// NewExcelParser creates a new Excel parser
func NewExcelParser(config *ParserConfig) *ExcelParser {
	if config == nil {
		config = DefaultParserConfig()
	}
	return &ExcelParser{
		config: config,
	}
}

// Parse reads and parses an Excel file from disk
func (p *ExcelParser) Parse(ctx context.Context, filePath string) (*ParseResult, error) {
	if p.config.MaxFileSize > 0 {
		stat, err := os.Stat(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to stat file: %w", err)
		}
		if stat.Size() > p.config.MaxFileSize {
			return nil, apperrors.FileTooLarge(p.config.MaxFileSize).WithDetails("path", filePath)
		}
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer file.Close()

	return p.ParseStream(ctx, file)
}

// ParseStream reads and parses Excel data from an io.Reader
func (p *ExcelParser) ParseStream(ctx context.Context, reader io.Reader) (*ParseResult, error) {
	workbook, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel workbook: %w", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.InvalidFile("workbook has no sheets")
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, apperrors.InvalidFile("sheet has no header row")
	}

	header := rows[0]
	if p.config.TrimWhitespace {
		for i := range header {
			header[i] = strings.TrimSpace(header[i])
		}
	}

	records := make([]Record, 0, len(rows)-1)
	totalRows := 0
	skippedRows := 0

	for _, row := range rows[1:] {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		totalRows++

		if p.config.SkipEmptyRows && isEmptyRow(row) {
			skippedRows++
			continue
		}

		records = append(records, rowToRecord(header, row, p.config.TrimWhitespace))
	}

	return &ParseResult{
		Records:     records,
		TotalRows:   totalRows,
		SkippedRows: skippedRows,
		Columns:     header,
		Format:      "Excel",
	}, nil
}

// SupportedFormats returns the file extensions this parser supports
func (p *ExcelParser) SupportedFormats() []string {
	return []string{".xlsx"}
}
