package io

import "sort"

// columnOrder returns the union of all record keys in a stable order: "id"
// first when present, remaining columns sorted. Exported tax objects carry
// their identifier under "id" and readers expect it leftmost.
func columnOrder(records []map[string]interface{}) []string {
	seen := make(map[string]struct{})
	for _, rec := range records {
		for k := range rec {
			seen[k] = struct{}{}
		}
	}
	_, hasID := seen["id"]
	delete(seen, "id")

	columns := make([]string, 0, len(seen)+1)
	for k := range seen {
		columns = append(columns, k)
	}
	sort.Strings(columns)
	if hasID {
		columns = append([]string{"id"}, columns...)
	}
	return columns
}
