// Package io provides the tabular record sources used by the import flow and
// the output writers used by the export flow. Records are ordered maps from
// column name to value, one per input row.
package io

// InputReader reads an ordered record sequence from a source.
type InputReader interface {
	// Read extracts records from the source identified by pathOrQuery.
	// File-based readers treat it as a path; the Postgres reader ignores it
	// in favor of its pre-configured query.
	Read(pathOrQuery string) ([]map[string]interface{}, error)
}

// OutputWriter writes a record sequence to a destination.
type OutputWriter interface {
	// Write sends the records to the destination identified by pathOrTable.
	// File-based writers treat it as a path; the Postgres writer as a table
	// name; the console table writer ignores it when empty.
	Write(records []map[string]interface{}, pathOrTable string) error
}
