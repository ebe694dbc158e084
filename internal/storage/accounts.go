package storage

import (
	"context"

	"github.com/bagworks/backend/internal/domain/account"
	"github.com/bagworks/backend/internal/kv"
	"github.com/bagworks/backend/internal/logging"
	"github.com/bagworks/backend/internal/numeric"
)

const txnKey = "txnId"

// AccountStore persists account-book transactions. Keys are caller-supplied
// or generated as TXN-XXXXXXXX.
type AccountStore struct {
	table kv.Table
	log   *logging.Logger
}

func NewAccountStore(t kv.Table, log *logging.Logger) *AccountStore {
	return &AccountStore{table: t, log: log}
}

func (s *AccountStore) List(ctx context.Context) ([]account.Transaction, error) {
	items, err := s.table.Scan(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]account.Transaction, 0, len(items))
	for _, it := range items {
		out = append(out, decodeTxn(it))
	}
	return out, nil
}

func (s *AccountStore) Get(ctx context.Context, id string) (account.Transaction, error) {
	it, err := s.table.Get(ctx, kv.Item{txnKey: str(id)})
	if err != nil {
		return account.Transaction{}, err
	}
	if it == nil {
		return account.Transaction{}, ErrNotFound
	}
	return decodeTxn(it), nil
}

func (s *AccountStore) Create(ctx context.Context, p account.CreatePayload) (account.Transaction, error) {
	id := ""
	if p.TxnID != nil {
		id = *p.TxnID
	}
	if id == "" {
		id = "TXN-" + randomSuffix()
	}
	it := encodeTxn(id, p.Type, p.Description, p.PartyName, p.Date, p.Amount)
	if err := s.table.Put(ctx, it); err != nil {
		return account.Transaction{}, err
	}
	s.log.Infof("transaction %s created", id)
	return decodeTxn(it), nil
}

func (s *AccountStore) Update(ctx context.Context, id string, p account.UpdatePayload) (account.Transaction, error) {
	existing, err := s.table.Get(ctx, kv.Item{txnKey: str(id)})
	if err != nil {
		return account.Transaction{}, err
	}
	if existing == nil {
		return account.Transaction{}, ErrNotFound
	}
	it := encodeTxn(id, p.Type, p.Description, p.PartyName, p.Date, p.Amount)
	if err := s.table.Put(ctx, it); err != nil {
		return account.Transaction{}, err
	}
	return decodeTxn(it), nil
}

func (s *AccountStore) Delete(ctx context.Context, id string) error {
	existing, err := s.table.Get(ctx, kv.Item{txnKey: str(id)})
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	if err := s.table.Delete(ctx, kv.Item{txnKey: str(id)}); err != nil {
		return err
	}
	s.log.Infof("transaction %s deleted", id)
	return nil
}

func encodeTxn(id, typ, description, partyName, date string, amount float64) kv.Item {
	return kv.Item{
		txnKey:        str(id),
		"type":        str(typ),
		"description": str(description),
		"partyName":   str(partyName),
		"date":        str(date),
		"amount":      numeric.EncodeFloat(amount),
	}
}

func decodeTxn(it kv.Item) account.Transaction {
	t := account.Transaction{
		Type:        getStr(it, "type"),
		Description: getStr(it, "description"),
		PartyName:   getStr(it, "partyName"),
		Date:        getStr(it, "date"),
		Amount:      getFloat(it, "amount"),
	}
	if id := getStr(it, txnKey); id != nil {
		t.TxnID = *id
	}
	return t
}
