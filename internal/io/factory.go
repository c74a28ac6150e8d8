package io

import (
	"fmt"
	"strings"

	"taxsync/internal/logging"
)

// Supported input formats.
const (
	FormatCSV      = "csv"
	FormatXLSX     = "xlsx"
	FormatJSON     = "json"
	FormatTable    = "table"
	FormatPostgres = "postgres"
)

// SourceOptions carries the format-specific settings for building an input
// reader from command-line flags.
type SourceOptions struct {
	Format    string
	Delimiter string
	SheetName string
	DBConnStr string
	Query     string
}

// DestOptions carries the format-specific settings for building an output
// writer from command-line flags.
type DestOptions struct {
	Format    string
	Delimiter string
	SheetName string
	DBConnStr string
	Table     string
}

// NewInputReader creates an InputReader for the requested source format.
func NewInputReader(opts SourceOptions) (InputReader, error) {
	format := strings.ToLower(opts.Format)
	logger := logging.NewLogger("io")
	logger.Debug().Str("format", format).Msg("Creating input reader")

	switch format {
	case FormatCSV:
		reader, err := NewCSVReader(opts.Delimiter)
		if err != nil {
			return nil, fmt.Errorf("failed to create CSV reader: %w", err)
		}
		return reader, nil
	case FormatXLSX:
		return NewXLSXReader(opts.SheetName), nil
	case FormatJSON:
		return &JSONReader{}, nil
	case FormatPostgres:
		if opts.DBConnStr == "" {
			return nil, fmt.Errorf("database connection string (-db or DB_CREDENTIALS) is required for source format 'postgres'")
		}
		if opts.Query == "" {
			return nil, fmt.Errorf("-query is required for source format 'postgres'")
		}
		return NewPostgresReader(opts.DBConnStr, opts.Query), nil
	default:
		return nil, fmt.Errorf("unsupported source format '%s'", opts.Format)
	}
}

// NewOutputWriter creates an OutputWriter for the requested destination format.
func NewOutputWriter(opts DestOptions) (OutputWriter, error) {
	format := strings.ToLower(opts.Format)
	logger := logging.NewLogger("io")
	logger.Debug().Str("format", format).Msg("Creating output writer")

	switch format {
	case FormatJSON:
		return &JSONWriter{}, nil
	case FormatCSV:
		writer, err := NewCSVWriter(opts.Delimiter)
		if err != nil {
			return nil, fmt.Errorf("failed to create CSV writer: %w", err)
		}
		return writer, nil
	case FormatXLSX:
		return NewXLSXWriter(opts.SheetName), nil
	case FormatTable:
		return &TableWriter{}, nil
	case FormatPostgres:
		if opts.DBConnStr == "" {
			return nil, fmt.Errorf("database connection string (-db or DB_CREDENTIALS) is required for destination format 'postgres'")
		}
		if opts.Table == "" {
			return nil, fmt.Errorf("-table is required for destination format 'postgres'")
		}
		return NewPostgresWriter(opts.DBConnStr), nil
	default:
		return nil, fmt.Errorf("unsupported destination format '%s'", opts.Format)
	}
}
