package httpapi

import (
	"net/http"

	"github.com/bagworks/backend/internal/domain/product"
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.stores.Products.List(r.Context())
	if err != nil {
		h.writeError(w, "Product", err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	p, err := h.stores.Products.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, "Product", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var p product.Payload
	if err := decodeJSON(r, &p); err != nil {
		badRequest(w, err)
		return
	}
	if err := p.Validate(); err != nil {
		h.writeError(w, "Product", err)
		return
	}
	created, err := h.stores.Products.Create(r.Context(), p)
	if err != nil {
		h.writeError(w, "Product", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	var p product.Payload
	if err := decodeJSON(r, &p); err != nil {
		badRequest(w, err)
		return
	}
	if err := p.Validate(); err != nil {
		h.writeError(w, "Product", err)
		return
	}
	updated, err := h.stores.Products.Update(r.Context(), id, p)
	if err != nil {
		h.writeError(w, "Product", err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	if err := h.stores.Products.Delete(r.Context(), id); err != nil {
		h.writeError(w, "Product", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true, "productId": id})
}

func (h *Handler) searchProducts(w http.ResponseWriter, r *http.Request) {
	var f product.SearchFilter
	if err := decodeJSON(r, &f); err != nil {
		badRequest(w, err)
		return
	}
	found, err := h.stores.Products.Search(r.Context(), f)
	if err != nil {
		h.writeError(w, "Product", err)
		return
	}
	writeJSON(w, http.StatusOK, found)
}
