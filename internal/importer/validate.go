package importer

import (
	"strings"

	"taxsync/internal/logging"
)

// ValidateColumns reports whether the record sequence carries every required
// column. Only the first record's keys are inspected; this is a deliberate
// shortcut, not a full-table scan, since every row of a well-formed tabular
// file shares the header. Returns false for an empty sequence. Missing column
// names are logged.
func ValidateColumns(records []map[string]interface{}, required []string) bool {
	logger := logging.NewLogger("validator")

	if len(records) == 0 {
		logger.Error().Msg("Input file is empty")
		return false
	}

	first := records[0]
	var missing []string
	for _, col := range required {
		if _, ok := first[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		logger.Error().
			Str("missing", strings.Join(missing, ", ")).
			Msg("Input is missing required columns")
		return false
	}
	return true
}
