package io

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"taxsync/internal/logging"
)

// CSVReader reads header-row CSV files into record maps.
type CSVReader struct {
	delimiter rune
}

// NewCSVReader creates a CSVReader. An empty delimiter selects a comma.
func NewCSVReader(delimiter string) (*CSVReader, error) {
	delim, err := parseDelimiter(delimiter)
	if err != nil {
		return nil, err
	}
	return &CSVReader{delimiter: delim}, nil
}

func parseDelimiter(delimiter string) (rune, error) {
	if delimiter == "" {
		return ',', nil
	}
	if utf8.RuneCountInString(delimiter) != 1 {
		return 0, fmt.Errorf("invalid delimiter '%s': must be a single character", delimiter)
	}
	return []rune(delimiter)[0], nil
}

// Read loads all records from the file, keyed by the header row. Rows with a
// different field count than the header are tolerated: short rows leave the
// trailing columns empty, long rows drop the extras. A file with no data rows
// yields an empty (non-nil) slice.
func (cr *CSVReader) Read(filePath string) ([]map[string]interface{}, error) {
	logger := logging.NewLogger("csv-reader")

	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file '%s': %w", filePath, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = cr.delimiter
	reader.FieldsPerRecord = -1

	allRows, err := reader.ReadAll()
	if err != nil {
		if parseErr, ok := err.(*csv.ParseError); ok {
			return nil, fmt.Errorf("parse error in '%s' on line %d: %w", filePath, parseErr.Line, parseErr.Err)
		}
		return nil, fmt.Errorf("failed to read rows from '%s': %w", filePath, err)
	}
	if len(allRows) < 2 {
		logger.Warn().Str("file", filePath).Msg("CSV file has no data rows")
		return []map[string]interface{}{}, nil
	}

	headers := allRows[0]
	records := make([]map[string]interface{}, 0, len(allRows)-1)
	for _, row := range allRows[1:] {
		rec := make(map[string]interface{}, len(headers))
		for i, header := range headers {
			if i < len(row) {
				rec[header] = row[i]
			} else {
				rec[header] = ""
			}
		}
		records = append(records, rec)
	}

	logger.Debug().Int("records", len(records)).Str("file", filePath).Msg("Loaded CSV records")
	return records, nil
}

// CSVWriter writes record maps to a CSV file with a header row.
type CSVWriter struct {
	delimiter rune
}

// NewCSVWriter creates a CSVWriter. An empty delimiter selects a comma.
func NewCSVWriter(delimiter string) (*CSVWriter, error) {
	delim, err := parseDelimiter(delimiter)
	if err != nil {
		return nil, err
	}
	return &CSVWriter{delimiter: delim}, nil
}

// Write saves the records to filePath. Columns are the union of record keys
// in stable order (see columnOrder); missing values render as empty strings.
func (cw *CSVWriter) Write(records []map[string]interface{}, filePath string) error {
	logger := logging.NewLogger("csv-writer")

	dir := filepath.Dir(filePath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory for '%s': %w", filePath, err)
		}
	}
	f, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file '%s': %w", filePath, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	writer.Comma = cw.delimiter
	defer writer.Flush()

	if len(records) == 0 {
		logger.Warn().Str("file", filePath).Msg("No records to write, created empty file")
		return nil
	}

	headers := columnOrder(records)
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write header to '%s': %w", filePath, err)
	}
	for i, rec := range records {
		row := make([]string, len(headers))
		for j, header := range headers {
			if val, ok := rec[header]; ok && val != nil {
				row[j] = fmt.Sprintf("%v", val)
			}
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d to '%s': %w", i+1, filePath, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV data to '%s': %w", filePath, err)
	}

	logger.Debug().Int("records", len(records)).Str("file", filePath).Msg("Wrote CSV records")
	return nil
}
