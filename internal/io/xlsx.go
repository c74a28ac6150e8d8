package io

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"taxsync/internal/logging"
)

// XLSXReader reads the first sheet of an Excel workbook into record maps.
type XLSXReader struct {
	sheetName string
}

// NewXLSXReader creates an XLSXReader. An empty sheetName selects the
// workbook's first sheet.
func NewXLSXReader(sheetName string) *XLSXReader {
	return &XLSXReader{sheetName: sheetName}
}

// Read loads rows from the configured sheet, keyed by the header row.
func (xr *XLSXReader) Read(filePath string) ([]map[string]interface{}, error) {
	logger := logging.NewLogger("xlsx-reader")

	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook '%s': %w", filePath, err)
	}
	defer f.Close()

	sheet := xr.sheetName
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet '%s' from '%s': %w", sheet, filePath, err)
	}
	if len(rows) < 2 {
		logger.Warn().Str("file", filePath).Str("sheet", sheet).Msg("Workbook sheet has no data rows")
		return []map[string]interface{}{}, nil
	}

	headers := rows[0]
	records := make([]map[string]interface{}, 0, len(rows)-1)
	for _, row := range rows[1:] {
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

	logger.Debug().Int("records", len(records)).Str("file", filePath).Msg("Loaded XLSX records")
	return records, nil
}

// XLSXWriter writes record maps to an Excel workbook.
type XLSXWriter struct {
	sheetName string
}

// NewXLSXWriter creates an XLSXWriter. An empty sheetName uses the default
// sheet of a new workbook.
func NewXLSXWriter(sheetName string) *XLSXWriter {
	return &XLSXWriter{sheetName: sheetName}
}

// Write saves the records to filePath with a header row, in columnOrder.
func (xw *XLSXWriter) Write(records []map[string]interface{}, filePath string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := xw.sheetName
	if sheet == "" {
		sheet = f.GetSheetName(0)
	} else if idx, err := f.GetSheetIndex(sheet); err != nil || idx == -1 {
		f.SetSheetName(f.GetSheetName(0), sheet)
	}

	if len(records) > 0 {
		headers := columnOrder(records)
		headerRow := make([]interface{}, len(headers))
		for i, h := range headers {
			headerRow[i] = h
		}
		if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
			return fmt.Errorf("failed to write header row: %w", err)
		}
		for i, rec := range records {
			row := make([]interface{}, len(headers))
			for j, header := range headers {
				row[j] = rec[header]
			}
			cell, _ := excelize.CoordinatesToCellName(1, i+2)
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return fmt.Errorf("failed to write row %d: %w", i+1, err)
			}
		}
	}

	if err := f.SaveAs(filePath); err != nil {
		return fmt.Errorf("failed to save workbook '%s': %w", filePath, err)
	}
	logger := logging.NewLogger("xlsx-writer")
	logger.Debug().Int("records", len(records)).Str("file", filePath).Msg("Wrote XLSX records")
	return nil
}
