// Package kv abstracts the key-value store backing the record collections.
// A Table is one named collection of flat items; the production
// implementation talks to DynamoDB and an in-memory fake backs the tests.
package kv

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Item is a single stored record: attribute name to value.
type Item map[string]types.AttributeValue

// Table is the CRUD surface of one collection.
type Table interface {
	// Get returns the item with the given key, or nil if absent.
	Get(ctx context.Context, key Item) (Item, error)
	// Put writes the item, silently overwriting any existing item with the
	// same key.
	Put(ctx context.Context, item Item) error
	// Delete removes the item with the given key. Deleting an absent key is
	// not an error.
	Delete(ctx context.Context, key Item) error
	// Scan returns every item in the collection.
	Scan(ctx context.Context) ([]Item, error)
}

// Error is a storage-layer failure carrying the provider's error code and
// message alongside the failed operation and table.
type Error struct {
	Op      string
	Table   string
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s: %s", e.Op, e.Table, e.Code, e.Message)
}

// Detail is the provider code and message in the form surfaced to callers.
func (e *Error) Detail() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
