package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bagworks/backend/internal/domain/account"
)

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	txns, err := h.stores.Accounts.List(r.Context())
	if err != nil {
		h.writeError(w, "Transaction", err)
		return
	}
	writeJSON(w, http.StatusOK, txns)
}

func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	var p account.CreatePayload
	if err := decodeJSON(r, &p); err != nil {
		badRequest(w, err)
		return
	}
	if err := p.Validate(); err != nil {
		h.writeError(w, "Transaction", err)
		return
	}
	t, err := h.stores.Accounts.Create(r.Context(), p)
	if err != nil {
		h.writeError(w, "Transaction", err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (h *Handler) updateTransaction(w http.ResponseWriter, r *http.Request) {
	var p account.UpdatePayload
	if err := decodeJSON(r, &p); err != nil {
		badRequest(w, err)
		return
	}
	if err := p.Validate(); err != nil {
		h.writeError(w, "Transaction", err)
		return
	}
	t, err := h.stores.Accounts.Update(r.Context(), mux.Vars(r)["id"], p)
	if err != nil {
		h.writeError(w, "Transaction", err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *Handler) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	if err := h.stores.Accounts.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, "Transaction", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
