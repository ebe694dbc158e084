package kv

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func str(v string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: v}
}

func TestMemoryGetAbsent(t *testing.T) {
	m := NewMemory("id")

	item, err := m.Get(context.Background(), Item{"id": str("missing")})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if item != nil {
		t.Fatalf("expected nil for absent key, got %v", item)
	}
}

func TestMemoryPutOverwrites(t *testing.T) {
	m := NewMemory("id")
	ctx := context.Background()

	if err := m.Put(ctx, Item{"id": str("a"), "name": str("first")}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := m.Put(ctx, Item{"id": str("a"), "name": str("second")}); err != nil {
		t.Fatalf("put: %v", err)
	}

	item, err := m.Get(ctx, Item{"id": str("a")})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	name := item["name"].(*types.AttributeValueMemberS).Value
	if name != "second" {
		t.Errorf("name = %q, want second (put must overwrite silently)", name)
	}

	items, err := m.Scan(ctx)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("scan returned %d items, want 1", len(items))
	}
}

func TestMemoryDelete(t *testing.T) {
	m := NewMemory("id")
	ctx := context.Background()

	if err := m.Put(ctx, Item{"id": str("a")}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := m.Delete(ctx, Item{"id": str("a")}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	item, err := m.Get(ctx, Item{"id": str("a")})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if item != nil {
		t.Fatalf("expected item gone after delete")
	}

	// Deleting an absent key is not an error.
	if err := m.Delete(ctx, Item{"id": str("a")}); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
}

func TestMemoryMissingKeyAttr(t *testing.T) {
	m := NewMemory("id")

	err := m.Put(context.Background(), Item{"name": str("no key")})
	if err == nil {
		t.Fatalf("expected error for item without key attribute")
	}
}

func TestMemoryNumericKey(t *testing.T) {
	m := NewMemory("AgentId")
	ctx := context.Background()

	n := &types.AttributeValueMemberN{Value: "7"}
	if err := m.Put(ctx, Item{"AgentId": n}); err != nil {
		t.Fatalf("put: %v", err)
	}
	item, err := m.Get(ctx, Item{"AgentId": &types.AttributeValueMemberN{Value: "7"}})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if item == nil {
		t.Fatalf("expected numeric-keyed item to be found")
	}
}
