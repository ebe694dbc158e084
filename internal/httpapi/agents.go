package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bagworks/backend/internal/domain/agent"
)

// pathID parses the numeric {id} path variable. The route pattern restricts
// it to digits, so failures only occur on out-of-range values.
func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}

func (h *Handler) listAgents(w http.ResponseWriter, r *http.Request) {
	agents, err := h.stores.Agents.List(r.Context())
	if err != nil {
		h.writeError(w, "Agent", err)
		return
	}
	writeJSON(w, http.StatusOK, agents)
}

func (h *Handler) listAgentsLightweight(w http.ResponseWriter, r *http.Request) {
	agents, err := h.stores.Agents.ListLightweight(r.Context())
	if err != nil {
		h.writeError(w, "Agent", err)
		return
	}
	writeJSON(w, http.StatusOK, agents)
}

func (h *Handler) getAgent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	a, err := h.stores.Agents.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, "Agent", err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *Handler) createAgent(w http.ResponseWriter, r *http.Request) {
	var p agent.Payload
	if err := decodeJSON(r, &p); err != nil {
		badRequest(w, err)
		return
	}
	if err := p.Validate(); err != nil {
		h.writeError(w, "Agent", err)
		return
	}
	a, err := h.stores.Agents.Create(r.Context(), p)
	if err != nil {
		h.writeError(w, "Agent", err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (h *Handler) updateAgent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	var p agent.Payload
	if err := decodeJSON(r, &p); err != nil {
		badRequest(w, err)
		return
	}
	if err := p.Validate(); err != nil {
		h.writeError(w, "Agent", err)
		return
	}
	a, err := h.stores.Agents.Update(r.Context(), id, p)
	if err != nil {
		h.writeError(w, "Agent", err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *Handler) deleteAgent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	if err := h.stores.Agents.Delete(r.Context(), id); err != nil {
		h.writeError(w, "Agent", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
