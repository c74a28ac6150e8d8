package io

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"taxsync/internal/logging"
	"taxsync/internal/util"
)

// PostgresReader reads records from a PostgreSQL query, for importing tax
// rates that live in a database instead of a file.
type PostgresReader struct {
	connStr string
	query   string
}

// NewPostgresReader creates a reader for the given connection string and query.
func NewPostgresReader(connStr, query string) *PostgresReader {
	return &PostgresReader{connStr: connStr, query: query}
}

// Read executes the configured query; the path argument is ignored. Column
// names become record keys.
func (pr *PostgresReader) Read(_ string) ([]map[string]interface{}, error) {
	logger := logging.NewLogger("postgres-reader")
	ctx := context.Background()

	conn, err := pgx.Connect(ctx, util.ExpandEnvUniversal(pr.connStr))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer conn.Close(ctx)

	rows, err := conn.Query(ctx, pr.query)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query '%s': %w", pr.query, err)
	}
	defer rows.Close()

	var records []map[string]interface{}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("failed to read row values: %w", err)
		}
		fields := rows.FieldDescriptions()
		rec := make(map[string]interface{}, len(values))
		for i, fd := range fields {
			rec[string(fd.Name)] = values[i]
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query iteration failed: %w", err)
	}

	logger.Debug().Int("records", len(records)).Msg("Loaded records from PostgreSQL")
	return records, nil
}

// PostgresWriter writes exported records into a PostgreSQL table using the
// COPY protocol.
type PostgresWriter struct {
	connStr string
}

// NewPostgresWriter creates a writer for the given connection string.
func NewPostgresWriter(connStr string) *PostgresWriter {
	return &PostgresWriter{connStr: connStr}
}

// Write copies the records into the named table. Columns are taken from the
// record keys (columnOrder) and must all exist in the destination table.
func (pw *PostgresWriter) Write(records []map[string]interface{}, table string) error {
	logger := logging.NewLogger("postgres-writer")
	if len(records) == 0 {
		logger.Warn().Str("table", table).Msg("No records to load")
		return nil
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, util.ExpandEnvUniversal(pw.connStr))
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer conn.Close(ctx)

	columns := columnOrder(records)
	tableCols, err := tableColumns(ctx, conn, table)
	if err != nil {
		return fmt.Errorf("failed to retrieve columns for table '%s': %w", table, err)
	}
	for _, col := range columns {
		if _, found := tableCols[col]; !found {
			return fmt.Errorf("column '%s' not found in destination table '%s'", col, table)
		}
	}

	copyRows := make([][]interface{}, 0, len(records))
	for _, rec := range records {
		row := make([]interface{}, len(columns))
		for i, col := range columns {
			row[i] = rec[col]
		}
		copyRows = append(copyRows, row)
	}

	copied, err := conn.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(copyRows))
	if err != nil {
		return fmt.Errorf("copy into '%s' failed: %w", table, err)
	}

	logger.Info().Int64("rows", copied).Str("table", table).Msg("Loaded records into PostgreSQL")
	return nil
}

func tableColumns(ctx context.Context, conn *pgx.Conn, table string) (map[string]bool, error) {
	const q = `
SELECT column_name
FROM information_schema.columns
WHERE table_name = $1
ORDER BY ordinal_position
`
	rows, err := conn.Query(ctx, q, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		cols[name] = true
	}
	return cols, rows.Err()
}
