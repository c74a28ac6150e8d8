package importer

import "taxsync/internal/hubspot"

// Chunk splits the mapped records into order-preserving groups of at most
// size entries. The final group may be smaller; an empty input yields zero
// groups. size must be positive.
func Chunk(items []hubspot.Properties, size int) [][]hubspot.Properties {
	if size <= 0 || len(items) == 0 {
		return nil
	}
	batches := make([][]hubspot.Properties, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		batches = append(batches, items[start:end])
	}
	return batches
}
