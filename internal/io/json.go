package io

import (
	"encoding/json"
	"fmt"
	"os"

	"taxsync/internal/logging"
)

// JSONReader reads a JSON array of objects into record maps.
type JSONReader struct{}

// Read unmarshals the file as a top-level array of records.
func (jr *JSONReader) Read(filePath string) ([]map[string]interface{}, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file '%s': %w", filePath, err)
	}
	var records []map[string]interface{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse JSON in '%s': %w", filePath, err)
	}
	logger := logging.NewLogger("json-reader")
	logger.Debug().Int("records", len(records)).Str("file", filePath).Msg("Loaded JSON records")
	return records, nil
}

// JSONWriter writes records as an indented JSON array, the structured-dump
// export shape.
type JSONWriter struct{}

// Write marshals the records and writes them to filePath. An empty path
// writes to stdout.
func (jw *JSONWriter) Write(records []map[string]interface{}, filePath string) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records to JSON: %w", err)
	}
	if filePath == "" {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON to '%s': %w", filePath, err)
	}
	logger := logging.NewLogger("json-writer")
	logger.Debug().Int("records", len(records)).Str("file", filePath).Msg("Wrote JSON records")
	return nil
}
