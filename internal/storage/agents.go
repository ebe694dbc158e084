package storage

import (
	"context"

	"github.com/bagworks/backend/internal/domain/agent"
	"github.com/bagworks/backend/internal/kv"
	"github.com/bagworks/backend/internal/logging"
	"github.com/bagworks/backend/internal/numeric"
)

const agentKey = "AgentId"

// AgentStore persists agents keyed by a sequentially assigned AgentId.
type AgentStore struct {
	table kv.Table
	log   *logging.Logger
}

func NewAgentStore(t kv.Table, log *logging.Logger) *AgentStore {
	return &AgentStore{table: t, log: log}
}

func (s *AgentStore) List(ctx context.Context) ([]agent.Agent, error) {
	items, err := s.table.Scan(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]agent.Agent, 0, len(items))
	for _, it := range items {
		out = append(out, decodeAgent(it))
	}
	return out, nil
}

// ListLightweight returns the id/name projection used by picker widgets.
func (s *AgentStore) ListLightweight(ctx context.Context) ([]agent.Lightweight, error) {
	agents, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]agent.Lightweight, 0, len(agents))
	for _, a := range agents {
		out = append(out, agent.Lightweight{AgentID: a.AgentID, Name: a.Name})
	}
	return out, nil
}

func (s *AgentStore) Get(ctx context.Context, id int) (agent.Agent, error) {
	it, err := s.table.Get(ctx, kv.Item{agentKey: numeric.EncodeInt(id)})
	if err != nil {
		return agent.Agent{}, err
	}
	if it == nil {
		return agent.Agent{}, ErrNotFound
	}
	return decodeAgent(it), nil
}

func (s *AgentStore) Create(ctx context.Context, p agent.Payload) (agent.Agent, error) {
	id, err := nextID(ctx, s.table, agentKey)
	if err != nil {
		return agent.Agent{}, err
	}
	it := encodeAgent(id, p)
	if err := s.table.Put(ctx, it); err != nil {
		return agent.Agent{}, err
	}
	s.log.Infof("agent %d created", id)
	return decodeAgent(it), nil
}

func (s *AgentStore) Update(ctx context.Context, id int, p agent.Payload) (agent.Agent, error) {
	existing, err := s.table.Get(ctx, kv.Item{agentKey: numeric.EncodeInt(id)})
	if err != nil {
		return agent.Agent{}, err
	}
	if existing == nil {
		return agent.Agent{}, ErrNotFound
	}
	it := encodeAgent(id, p)
	if err := s.table.Put(ctx, it); err != nil {
		return agent.Agent{}, err
	}
	return decodeAgent(it), nil
}

func (s *AgentStore) Delete(ctx context.Context, id int) error {
	key := kv.Item{agentKey: numeric.EncodeInt(id)}
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
	s.log.Infof("agent %d deleted", id)
	return nil
}

func encodeAgent(id int, p agent.Payload) kv.Item {
	return kv.Item{
		agentKey:         numeric.EncodeInt(id),
		"Name":           str(p.Name),
		"Mobile":         str(p.Mobile),
		"Aadhar_Details": str(p.AadharDetails),
		"Address":        str(p.Address),
	}
}

func decodeAgent(it kv.Item) agent.Agent {
	id, _ := numeric.DecodeInt(it[agentKey])
	return agent.Agent{
		AgentID:       id,
		Name:          getStr(it, "Name"),
		Mobile:        getDigits(it, "Mobile"),
		AadharDetails: getDigits(it, "Aadhar_Details"),
		Address:       getStr(it, "Address"),
	}
}
