package storage

import (
	"context"

	"github.com/bagworks/backend/internal/domain/party"
	"github.com/bagworks/backend/internal/kv"
	"github.com/bagworks/backend/internal/logging"
	"github.com/bagworks/backend/internal/numeric"
)

const partyKey = "PartyId"

// PartyStore persists parties keyed by a sequentially assigned PartyId.
// Agent and order references are written by value; dangling references are
// allowed.
type PartyStore struct {
	table kv.Table
	log   *logging.Logger
}

func NewPartyStore(t kv.Table, log *logging.Logger) *PartyStore {
	return &PartyStore{table: t, log: log}
}

func (s *PartyStore) List(ctx context.Context) ([]party.Party, error) {
	items, err := s.table.Scan(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]party.Party, 0, len(items))
	for _, it := range items {
		out = append(out, decodeParty(it))
	}
	return out, nil
}

func (s *PartyStore) Get(ctx context.Context, id int) (party.Party, error) {
	it, err := s.table.Get(ctx, kv.Item{partyKey: numeric.EncodeInt(id)})
	if err != nil {
		return party.Party{}, err
	}
	if it == nil {
		return party.Party{}, ErrNotFound
	}
	return decodeParty(it), nil
}

func (s *PartyStore) Create(ctx context.Context, p party.Payload) (party.Party, error) {
	id, err := nextID(ctx, s.table, partyKey)
	if err != nil {
		return party.Party{}, err
	}
	it := encodeParty(id, p)
	if err := s.table.Put(ctx, it); err != nil {
		return party.Party{}, err
	}
	s.log.Infof("party %d created", id)
	return decodeParty(it), nil
}

func (s *PartyStore) Update(ctx context.Context, id int, p party.Payload) (party.Party, error) {
	existing, err := s.table.Get(ctx, kv.Item{partyKey: numeric.EncodeInt(id)})
	if err != nil {
		return party.Party{}, err
	}
	if existing == nil {
		return party.Party{}, ErrNotFound
	}
	it := encodeParty(id, p)
	if err := s.table.Put(ctx, it); err != nil {
		return party.Party{}, err
	}
	return decodeParty(it), nil
}

func (s *PartyStore) Delete(ctx context.Context, id int) error {
	key := kv.Item{partyKey: numeric.EncodeInt(id)}
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
	s.log.Infof("party %d deleted", id)
	return nil
}

func encodeParty(id int, p party.Payload) kv.Item {
	it := kv.Item{
		partyKey:    numeric.EncodeInt(id),
		"PartyName": str(p.PartyName),
	}
	setStr(it, "AliasOrCompanyName", p.AliasOrCompanyName)
	setStr(it, "Address", p.Address)
	setStr(it, "City", p.City)
	setStr(it, "State", p.State)
	setStr(it, "Pincode", p.Pincode)
	if p.AgentID != nil {
		it["AgentId"] = numeric.EncodeInt(*p.AgentID)
	}
	setStr(it, "Contact_Person1", p.ContactPerson1)
	setStr(it, "Contact_Person2", p.ContactPerson2)
	setStr(it, "Email", p.Email)
	setStr(it, "Mobile1", p.Mobile1)
	setStr(it, "Mobile2", p.Mobile2)
	setStr(it, "OrderId", p.OrderID)
	return it
}

func decodeParty(it kv.Item) party.Party {
	id, _ := numeric.DecodeInt(it[partyKey])
	pt := party.Party{
		PartyID:            id,
		AliasOrCompanyName: getStr(it, "AliasOrCompanyName"),
		Address:            getStr(it, "Address"),
		City:               getStr(it, "City"),
		State:              getStr(it, "State"),
		Pincode:            getDigits(it, "Pincode"),
		AgentID:            getInt(it, "AgentId"),
		ContactPerson1:     getStr(it, "Contact_Person1"),
		ContactPerson2:     getStr(it, "Contact_Person2"),
		Email:              getStr(it, "Email"),
		Mobile1:            getDigits(it, "Mobile1"),
		Mobile2:            getDigits(it, "Mobile2"),
		OrderID:            getDigits(it, "OrderId"),
	}
	if name := getStr(it, "PartyName"); name != nil {
		pt.PartyName = *name
	}
	return pt
}
