// Package httpapi exposes the REST API over the record stores.
package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bagworks/backend/internal/logging"
	"github.com/bagworks/backend/internal/metrics"
	"github.com/bagworks/backend/internal/storage"
)

// Stores bundles the five record repositories the API serves.
type Stores struct {
	Orders   *storage.OrderStore
	Accounts *storage.AccountStore
	Agents   *storage.AgentStore
	Parties  *storage.PartyStore
	Products *storage.ProductStore
}

// Handler holds the route handlers.
type Handler struct {
	stores Stores
	log    *logging.Logger
}

func New(stores Stores, log *logging.Logger) *Handler {
	return &Handler{stores: stores, log: log}
}

// Router builds the full route table.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", h.health).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/orders", h.listOrders).Methods(http.MethodGet)
	api.HandleFunc("/orders", h.createOrder).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}", h.getOrder).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}", h.updateOrder).Methods(http.MethodPut)
	api.HandleFunc("/orders/{id}", h.deleteOrder).Methods(http.MethodDelete)

	api.HandleFunc("/accounts", h.listTransactions).Methods(http.MethodGet)
	api.HandleFunc("/accounts", h.createTransaction).Methods(http.MethodPost)
	api.HandleFunc("/accounts/{id}", h.updateTransaction).Methods(http.MethodPut)
	api.HandleFunc("/accounts/{id}", h.deleteTransaction).Methods(http.MethodDelete)

	// The literal route must register before the {id} routes.
	api.HandleFunc("/agents/lightweight", h.listAgentsLightweight).Methods(http.MethodGet)
	api.HandleFunc("/agents", h.listAgents).Methods(http.MethodGet)
	api.HandleFunc("/agents", h.createAgent).Methods(http.MethodPost)
	api.HandleFunc("/agents/{id:[0-9]+}", h.getAgent).Methods(http.MethodGet)
	api.HandleFunc("/agents/{id:[0-9]+}", h.updateAgent).Methods(http.MethodPut)
	api.HandleFunc("/agents/{id:[0-9]+}", h.deleteAgent).Methods(http.MethodDelete)

	api.HandleFunc("/party", h.listParties).Methods(http.MethodGet)
	api.HandleFunc("/party", h.createParty).Methods(http.MethodPost)
	api.HandleFunc("/party/{id:[0-9]+}", h.getParty).Methods(http.MethodGet)
	api.HandleFunc("/party/{id:[0-9]+}", h.updateParty).Methods(http.MethodPut)
	api.HandleFunc("/party/{id:[0-9]+}", h.deleteParty).Methods(http.MethodDelete)

	api.HandleFunc("/products/search", h.searchProducts).Methods(http.MethodPost)
	api.HandleFunc("/products", h.listProducts).Methods(http.MethodGet)
	api.HandleFunc("/products", h.createProduct).Methods(http.MethodPost)
	api.HandleFunc("/products/{id:[0-9]+}", h.getProduct).Methods(http.MethodGet)
	api.HandleFunc("/products/{id:[0-9]+}", h.updateProduct).Methods(http.MethodPut)
	api.HandleFunc("/products/{id:[0-9]+}", h.deleteProduct).Methods(http.MethodDelete)

	return r
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
