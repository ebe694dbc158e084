package storage

import (
	"context"

	"github.com/bagworks/backend/internal/domain/order"
	"github.com/bagworks/backend/internal/kv"
	"github.com/bagworks/backend/internal/logging"
)

const orderKey = "orderId"

// OrderStore persists orders. Keys are caller-supplied or generated as
// ORD-XXXXXXXX.
type OrderStore struct {
	table kv.Table
	log   *logging.Logger
}

func NewOrderStore(t kv.Table, log *logging.Logger) *OrderStore {
	return &OrderStore{table: t, log: log}
}

func (s *OrderStore) List(ctx context.Context) ([]order.Order, error) {
	items, err := s.table.Scan(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]order.Order, 0, len(items))
	for _, it := range items {
		out = append(out, decodeOrder(it))
	}
	return out, nil
}

func (s *OrderStore) Get(ctx context.Context, id string) (order.Order, error) {
	it, err := s.table.Get(ctx, kv.Item{orderKey: str(id)})
	if err != nil {
		return order.Order{}, err
	}
	if it == nil {
		return order.Order{}, ErrNotFound
	}
	return decodeOrder(it), nil
}

// Create writes a new order. A caller-supplied ID that already exists is
// overwritten, matching the collection's historical last-write-wins use.
func (s *OrderStore) Create(ctx context.Context, p order.CreatePayload) (order.Order, error) {
	id := ""
	if p.OrderID != nil {
		id = *p.OrderID
	}
	if id == "" {
		id = "ORD-" + randomSuffix()
	}
	it := encodeOrder(id, p.Description, p.CustomerName, p.OrderDate, p.DeliveryDate)
	if err := s.table.Put(ctx, it); err != nil {
		return order.Order{}, err
	}
	s.log.Infof("order %s created", id)
	return decodeOrder(it), nil
}

func (s *OrderStore) Update(ctx context.Context, id string, p order.UpdatePayload) (order.Order, error) {
	existing, err := s.table.Get(ctx, kv.Item{orderKey: str(id)})
	if err != nil {
		return order.Order{}, err
	}
	if existing == nil {
		return order.Order{}, ErrNotFound
	}
	it := encodeOrder(id, p.Description, p.CustomerName, p.OrderDate, p.DeliveryDate)
	if err := s.table.Put(ctx, it); err != nil {
		return order.Order{}, err
	}
	return decodeOrder(it), nil
}

func (s *OrderStore) Delete(ctx context.Context, id string) error {
	existing, err := s.table.Get(ctx, kv.Item{orderKey: str(id)})
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	if err := s.table.Delete(ctx, kv.Item{orderKey: str(id)}); err != nil {
		return err
	}
	s.log.Infof("order %s deleted", id)
	return nil
}

func encodeOrder(id, description, customerName, orderDate, deliveryDate string) kv.Item {
	return kv.Item{
		orderKey:       str(id),
		"description":  str(description),
		"customerName": str(customerName),
		"orderDate":    str(orderDate),
		"deliveryDate": str(deliveryDate),
	}
}

func decodeOrder(it kv.Item) order.Order {
	o := order.Order{
		Description:  getStr(it, "description"),
		CustomerName: getStr(it, "customerName"),
		OrderDate:    getStr(it, "orderDate"),
		DeliveryDate: getStr(it, "deliveryDate"),
	}
	if id := getStr(it, orderKey); id != nil {
		o.OrderID = *id
	}
	return o
}
