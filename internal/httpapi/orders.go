package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bagworks/backend/internal/domain/order"
)

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.stores.Orders.List(r.Context())
	if err != nil {
		h.writeError(w, "Order", err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.stores.Orders.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, "Order", err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var p order.CreatePayload
	if err := decodeJSON(r, &p); err != nil {
		badRequest(w, err)
		return
	}
	if err := p.Validate(); err != nil {
		h.writeError(w, "Order", err)
		return
	}
	o, err := h.stores.Orders.Create(r.Context(), p)
	if err != nil {
		h.writeError(w, "Order", err)
		return
	}
	writeJSON(w, http.StatusCreated, o)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	var p order.UpdatePayload
	if err := decodeJSON(r, &p); err != nil {
		badRequest(w, err)
		return
	}
	if err := p.Validate(); err != nil {
		h.writeError(w, "Order", err)
		return
	}
	o, err := h.stores.Orders.Update(r.Context(), mux.Vars(r)["id"], p)
	if err != nil {
		h.writeError(w, "Order", err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.stores.Orders.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, "Order", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
