package kv

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Memory is a thread-safe in-memory Table keyed by a single named attribute.
// It mirrors DynamoDB's put semantics: puts overwrite silently, deletes of
// absent keys succeed. Intended for tests and local development.
type Memory struct {
	mu      sync.RWMutex
	keyAttr string
	items   map[string]Item
}

// NewMemory creates an empty in-memory table keyed by keyAttr.
func NewMemory(keyAttr string) *Memory {
	return &Memory{
		keyAttr: keyAttr,
		items:   make(map[string]Item),
	}
}

func (m *Memory) Get(_ context.Context, key Item) (Item, error) {
	k, err := m.keyOf(key)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	item, ok := m.items[k]
	if !ok {
		return nil, nil
	}
	return cloneItem(item), nil
}

func (m *Memory) Put(_ context.Context, item Item) error {
	k, err := m.keyOf(item)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[k] = cloneItem(item)
	return nil
}

func (m *Memory) Delete(_ context.Context, key Item) error {
	k, err := m.keyOf(key)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, k)
	return nil
}

func (m *Memory) Scan(_ context.Context) ([]Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Item, 0, len(m.items))
	for _, item := range m.items {
		result = append(result, cloneItem(item))
	}
	return result, nil
}

func (m *Memory) keyOf(item Item) (string, error) {
	av, ok := item[m.keyAttr]
	if !ok {
		return "", &Error{Op: "key", Table: "memory", Code: "ValidationException", Message: fmt.Sprintf("missing key attribute %s", m.keyAttr)}
	}
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return "S#" + v.Value, nil
	case *types.AttributeValueMemberN:
		return "N#" + v.Value, nil
	default:
		return "", &Error{Op: "key", Table: "memory", Code: "ValidationException", Message: fmt.Sprintf("unsupported key type for %s", m.keyAttr)}
	}
}

func cloneItem(item Item) Item {
	dst := make(Item, len(item))
	for k, v := range item {
		dst[k] = v
	}
	return dst
}
