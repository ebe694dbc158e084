package storage

import (
	"context"

	"github.com/bagworks/backend/internal/domain/product"
	"github.com/bagworks/backend/internal/kv"
	"github.com/bagworks/backend/internal/logging"
	"github.com/bagworks/backend/internal/numeric"
)

const productKey = "ProductId"

// ProductStore persists products keyed by a sequentially assigned ProductId.
type ProductStore struct {
	table kv.Table
	log   *logging.Logger
}

func NewProductStore(t kv.Table, log *logging.Logger) *ProductStore {
	return &ProductStore{table: t, log: log}
}

func (s *ProductStore) List(ctx context.Context) ([]product.Product, error) {
	items, err := s.table.Scan(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]product.Product, 0, len(items))
	for _, it := range items {
		out = append(out, decodeProduct(it))
	}
	return out, nil
}

func (s *ProductStore) Get(ctx context.Context, id int) (product.Product, error) {
	it, err := s.table.Get(ctx, kv.Item{productKey: numeric.EncodeInt(id)})
	if err != nil {
		return product.Product{}, err
	}
	if it == nil {
		return product.Product{}, ErrNotFound
	}
	return decodeProduct(it), nil
}

func (s *ProductStore) Create(ctx context.Context, p product.Payload) (product.Product, error) {
	id, err := nextID(ctx, s.table, productKey)
	if err != nil {
		return product.Product{}, err
	}
	it := encodeProduct(id, p)
	if err := s.table.Put(ctx, it); err != nil {
		return product.Product{}, err
	}
	s.log.Infof("product %d created", id)
	return decodeProduct(it), nil
}

func (s *ProductStore) Update(ctx context.Context, id int, p product.Payload) (product.Product, error) {
	existing, err := s.table.Get(ctx, kv.Item{productKey: numeric.EncodeInt(id)})
	if err != nil {
		return product.Product{}, err
	}
	if existing == nil {
		return product.Product{}, ErrNotFound
	}
	it := encodeProduct(id, p)
	if err := s.table.Put(ctx, it); err != nil {
		return product.Product{}, err
	}
	return decodeProduct(it), nil
}

func (s *ProductStore) Delete(ctx context.Context, id int) error {
	key := kv.Item{productKey: numeric.EncodeInt(id)}
	existing, err := s.table.Get(ctx, key)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	if err := s.table.Delete(ctx, key); err != nil {
		return err
	}
	s.log.Infof("product %d deleted", id)
	return nil
}

// Search scans the collection and keeps the products satisfying every set
// filter field. The catalog is small; filtering in process keeps the store
// free of index bookkeeping.
func (s *ProductStore) Search(ctx context.Context, f product.SearchFilter) ([]product.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]product.Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func encodeProduct(id int, p product.Payload) kv.Item {
	return kv.Item{
		productKey:         numeric.EncodeInt(id),
		"ProductType":      str(p.ProductType),
		"ProductSize":      numeric.EncodeFloat(p.ProductSize),
		"BagMaterial":      str(p.BagMaterial),
		"Quantity":         numeric.EncodeFloat(p.Quantity),
		"SheetGSM":         numeric.EncodeFloat(p.SheetGSM),
		"SheetColor":       str(p.SheetColor),
		"BorderGSM":        numeric.EncodeFloat(p.BorderGSM),
		"BorderColor":      str(p.BorderColor),
		"HandleType":       str(p.HandleType),
		"HandleColor":      str(p.HandleColor),
		"HandleGSM":        numeric.EncodeFloat(p.HandleGSM),
		"PrintingType":     str(p.PrintingType),
		"PrintColor":       str(p.PrintColor),
		"Color":            str(p.Color),
		"Design":           boolAttr(p.Design),
		"PlateBlockNumber": numeric.EncodeFloat(p.PlateBlockNumber),
		"PlateAvailable":   boolAttr(p.PlateAvailable),
		"Rate":             numeric.EncodeFloat(p.Rate),
	}
}

func decodeProduct(it kv.Item) product.Product {
	id, _ := numeric.DecodeInt(it[productKey])
	return product.Product{
		ProductID:        id,
		ProductType:      getStr(it, "ProductType"),
		ProductSize:      getFloat(it, "ProductSize"),
		BagMaterial:      getStr(it, "BagMaterial"),
		Quantity:         getFloat(it, "Quantity"),
		SheetGSM:         getFloat(it, "SheetGSM"),
		SheetColor:       getStr(it, "SheetColor"),
		BorderGSM:        getFloat(it, "BorderGSM"),
		BorderColor:      getStr(it, "BorderColor"),
		HandleType:       getStr(it, "HandleType"),
		HandleColor:      getStr(it, "HandleColor"),
		HandleGSM:        getFloat(it, "HandleGSM"),
		PrintingType:     getStr(it, "PrintingType"),
		PrintColor:       getStr(it, "PrintColor"),
		Color:            getStr(it, "Color"),
		Design:           getBool(it, "Design"),
		PlateBlockNumber: getFloat(it, "PlateBlockNumber"),
		PlateAvailable:   getBool(it, "PlateAvailable"),
		Rate:             getFloat(it, "Rate"),
	}
}
