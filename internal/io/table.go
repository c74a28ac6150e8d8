package io

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

// TableWriter renders records as an aligned console table, the human-readable
// export shape. It writes to Out when the path argument is empty.
type TableWriter struct {
	// Out is the destination when no path is given. Nil means os.Stdout.
	Out io.Writer
}

// Write renders the records. A non-empty pathOrTable redirects the table to
// that file.
func (tw *TableWriter) Write(records []map[string]interface{}, pathOrTable string) error {
	out := tw.Out
	if out == nil {
		out = os.Stdout
	}
	if pathOrTable != "" {
		f, err := os.Create(pathOrTable)
		if err != nil {
			return fmt.Errorf("failed to create file '%s': %w", pathOrTable, err)
		}
		defer f.Close()
		out = f
	}

	if len(records) == 0 {
		fmt.Fprintln(out, "No records found.")
		return nil
	}

	headers := columnOrder(records)
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))

	separators := make([]string, len(headers))
	for i, h := range headers {
		separators[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(w, strings.Join(separators, "\t"))

	for _, rec := range records {
		cells := make([]string, len(headers))
		for i, header := range headers {
			if val, ok := rec[header]; ok && val != nil {
				cells[i] = fmt.Sprintf("%v", val)
			}
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	return w.Flush()
}
