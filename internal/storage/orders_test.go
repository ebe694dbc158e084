package storage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bagworks/backend/internal/domain/order"
	"github.com/bagworks/backend/internal/kv"
	"github.com/bagworks/backend/internal/logging"
)

func newOrderStore() *OrderStore {
	return NewOrderStore(kv.NewMemory(orderKey), logging.New("test"))
}

func orderPayload(id *string) order.CreatePayload {
	return order.CreatePayload{
		OrderID:      id,
		Description:  "5000 printed carry bags",
		CustomerName: "Mehta Industries",
		OrderDate:    "2026-08-01",
		DeliveryDate: "2026-08-20",
	}
}

func TestOrderCreateGeneratesPrefixedKey(t *testing.T) {
	ctx := context.Background()
	s := newOrderStore()

	o, err := s.Create(ctx, orderPayload(nil))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.HasPrefix(o.OrderID, "ORD-") || len(o.OrderID) != len("ORD-")+8 {
		t.Errorf("orderId = %q, want ORD- plus 8 hex chars", o.OrderID)
	}
	if o.OrderID != strings.ToUpper(o.OrderID) {
		t.Errorf("orderId %q not uppercase", o.OrderID)
	}
}

func TestOrderCreateWithCallerKeyOverwrites(t *testing.T) {
	ctx := context.Background()
	s := newOrderStore()
	id := "ORD-CUSTOM01"

	if _, err := s.Create(ctx, orderPayload(&id)); err != nil {
		t.Fatalf("first create: %v", err)
	}
	second := orderPayload(&id)
	second.Description = "replacement run"
	if _, err := s.Create(ctx, second); err != nil {
		t.Fatalf("second create: %v", err)
	}

	orders, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("list returned %d orders, want 1", len(orders))
	}
	if orders[0].Description == nil || *orders[0].Description != "replacement run" {
		t.Errorf("description = %v, want last write", orders[0].Description)
	}
}

func TestOrderUpdateMissing(t *testing.T) {
	ctx := context.Background()
	s := newOrderStore()

	_, err := s.Update(ctx, "ORD-MISSING0", order.UpdatePayload{
		Description:  "x",
		CustomerName: "Mehta Industries",
		OrderDate:    "2026-08-01",
		DeliveryDate: "2026-08-20",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("update missing: %v, want ErrNotFound", err)
	}
}

func TestOrderDeleteMissing(t *testing.T) {
	ctx := context.Background()
	s := newOrderStore()

	if err := s.Delete(ctx, "ORD-MISSING0"); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete missing: %v, want ErrNotFound", err)
	}
}
