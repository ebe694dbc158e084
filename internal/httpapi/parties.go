package httpapi

import (
	"net/http"

	"github.com/bagworks/backend/internal/domain/party"
)

func (h *Handler) listParties(w http.ResponseWriter, r *http.Request) {
	parties, err := h.stores.Parties.List(r.Context())
	if err != nil {
		h.writeError(w, "Party", err)
		return
	}
	writeJSON(w, http.StatusOK, parties)
}

func (h *Handler) getParty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	p, err := h.stores.Parties.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, "Party", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) createParty(w http.ResponseWriter, r *http.Request) {
	var p party.Payload
	if err := decodeJSON(r, &p); err != nil {
		badRequest(w, err)
		return
	}
	if err := p.Validate(); err != nil {
		h.writeError(w, "Party", err)
		return
	}
	created, err := h.stores.Parties.Create(r.Context(), p)
	if err != nil {
		h.writeError(w, "Party", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateParty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	var p party.Payload
	if err := decodeJSON(r, &p); err != nil {
		badRequest(w, err)
		return
	}
	if err := p.Validate(); err != nil {
		h.writeError(w, "Party", err)
		return
	}
	updated, err := h.stores.Parties.Update(r.Context(), id, p)
	if err != nil {
		h.writeError(w, "Party", err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteParty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	if err := h.stores.Parties.Delete(r.Context(), id); err != nil {
		h.writeError(w, "Party", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
