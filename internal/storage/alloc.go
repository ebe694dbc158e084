package storage

import (
	"context"
	"fmt"

	"github.com/bagworks/backend/internal/kv"
	"github.com/bagworks/backend/internal/numeric"
)

// nextID allocates the next sequential identifier for a collection by
// scanning for the current maximum key; an empty collection starts at 1.
// Rows whose key attribute does not decode as a number are skipped.
//
// Two writers that scan concurrently can observe the same maximum and
// collide on the same ID. The collections are maintained by a single
// back office, so the window is accepted rather than locked around.
func nextID(ctx context.Context, t kv.Table, keyAttr string) (int, error) {
	items, err := t.Scan(ctx)
	if err != nil {
		return 0, fmt.Errorf("allocate next %s: %w", keyAttr, err)
	}
	max := 0
	for _, it := range items {
		if id, ok := numeric.DecodeInt(it[keyAttr]); ok && id > max {
			max = id
		}
	}
	return max + 1, nil
}
