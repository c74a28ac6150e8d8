package importer

import (
	"fmt"
	"testing"

	"taxsync/internal/hubspot"
)

func makeProps(n int) []hubspot.Properties {
	items := make([]hubspot.Properties, n)
	for i := range items {
		items[i] = hubspot.Properties{"externalId": fmt.Sprintf("J-%03d", i)}
	}
	return items
}

func TestChunk(t *testing.T) {
	testCases := []struct {
		name      string
		items     int
		size      int
		wantSizes []int
	}{
		{name: "exact multiple", items: 200, size: 100, wantSizes: []int{100, 100}},
		{name: "remainder batch", items: 130, size: 100, wantSizes: []int{100, 30}},
		{name: "single short batch", items: 5, size: 100, wantSizes: []int{5}},
		{name: "size one", items: 3, size: 1, wantSizes: []int{1, 1, 1}},
		{name: "empty input", items: 0, size: 100, wantSizes: nil},
		{name: "non-positive size", items: 10, size: 0, wantSizes: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			items := makeProps(tc.items)
			batches := Chunk(items, tc.size)
			if len(batches) != len(tc.wantSizes) {
				t.Fatalf("got %d batches, want %d", len(batches), len(tc.wantSizes))
			}
			idx := 0
			for i, batch := range batches {
				if len(batch) != tc.wantSizes[i] {
					t.Errorf("batch %d has %d items, want %d", i, len(batch), tc.wantSizes[i])
				}
				for _, props := range batch {
					want := fmt.Sprintf("J-%03d", idx)
					if props["externalId"] != want {
						t.Errorf("batch %d out of order: got %v, want %s", i, props["externalId"], want)
					}
					idx++
				}
			}
			if idx != tc.items {
				t.Errorf("batches cover %d items, want %d", idx, tc.items)
			}
		})
	}
}
