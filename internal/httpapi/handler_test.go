package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bagworks/backend/internal/kv"
	"github.com/bagworks/backend/internal/logging"
	"github.com/bagworks/backend/internal/storage"
)

func newTestRouter() http.Handler {
	log := logging.New("test")
	stores := Stores{
		Orders:   storage.NewOrderStore(kv.NewMemory("orderId"), log),
		Accounts: storage.NewAccountStore(kv.NewMemory("txnId"), log),
		Agents:   storage.NewAgentStore(kv.NewMemory("AgentId"), log),
		Parties:  storage.NewPartyStore(kv.NewMemory("PartyId"), log),
		Products: storage.NewProductStore(kv.NewMemory("ProductId"), log),
	}
	return New(stores, log).Router()
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr *bytes.Reader
	if body == "" {
		rdr = bytes.NewReader(nil)
	} else {
		rdr = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func TestHealth(t *testing.T) {
	router := newTestRouter()
	rec := do(t, router, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestAgentCRUDFlow(t *testing.T) {
	router := newTestRouter()
	payload := `{"name":"Ramesh Kumar","mobile":"9876543210","aadhar_Details":"123412341234","address":"12 Market Road"}`

	rec := do(t, router, http.MethodPost, "/api/agents", payload)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}
	var created map[string]any
	decodeBody(t, rec, &created)
	if created["agentId"] != float64(1) {
		t.Fatalf("agentId = %v, want 1", created["agentId"])
	}

	rec = do(t, router, http.MethodGet, "/api/agents/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}

	update := `{"name":"Ramesh K Kumar","mobile":"9876543210","aadhar_Details":"123412341234","address":"14 Market Road"}`
	rec = do(t, router, http.MethodPut, "/api/agents/1", update)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", rec.Code, rec.Body.String())
	}
	var updated map[string]any
	decodeBody(t, rec, &updated)
	if updated["name"] != "Ramesh K Kumar" {
		t.Errorf("name = %v after update", updated["name"])
	}

	rec = do(t, router, http.MethodDelete, "/api/agents/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}
	var deleted map[string]any
	decodeBody(t, rec, &deleted)
	if deleted["deleted"] != true {
		t.Errorf("delete body = %v", deleted)
	}

	rec = do(t, router, http.MethodGet, "/api/agents/1", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d", rec.Code)
	}
	var nf map[string]any
	decodeBody(t, rec, &nf)
	if nf["detail"] != "Agent not found" {
		t.Errorf("detail = %v", nf["detail"])
	}
}

func TestAgentValidationErrorsAccumulate(t *testing.T) {
	router := newTestRouter()
	rec := do(t, router, http.MethodPost, "/api/agents", `{"name":"","mobile":"","aadhar_Details":"","address":""}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Detail []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"detail"`
	}
	decodeBody(t, rec, &body)
	if len(body.Detail) != 4 {
		t.Errorf("detail = %+v, want all four required fields reported", body.Detail)
	}
}

func TestUnknownFieldRejected(t *testing.T) {
	router := newTestRouter()
	rec := do(t, router, http.MethodPost, "/api/agents", `{"name":"Ramesh Kumar","mobile":"9876543210","aadhar_Details":"123412341234","address":"12 Market Road","extra":1}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for unknown field", rec.Code)
	}
}

func TestOrderCreateAssignsGeneratedID(t *testing.T) {
	router := newTestRouter()
	payload := `{"description":"5000 carry bags","customerName":"Mehta Industries","orderDate":"2026-08-01","deliveryDate":"2026-08-20"}`

	rec := do(t, router, http.MethodPost, "/api/orders", payload)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var created map[string]any
	decodeBody(t, rec, &created)
	id, _ := created["orderId"].(string)
	if !strings.HasPrefix(id, "ORD-") {
		t.Errorf("orderId = %q", id)
	}

	rec = do(t, router, http.MethodGet, "/api/orders/"+id, "")
	if rec.Code != http.StatusOK {
		t.Errorf("get created order status = %d", rec.Code)
	}
}

func TestAccountsRejectUnknownType(t *testing.T) {
	router := newTestRouter()
	payload := `{"type":"sideways","description":"scrap sale","partyName":"Mehta Industries","date":"2026-08-01","amount":1500}`

	rec := do(t, router, http.MethodPost, "/api/accounts", payload)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "must be one of: incoming, outgoing") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestAgentsLightweightRoute(t *testing.T) {
	router := newTestRouter()
	payload := `{"name":"Ramesh Kumar","mobile":"9876543210","aadhar_Details":"123412341234","address":"12 Market Road"}`
	if rec := do(t, router, http.MethodPost, "/api/agents", payload); rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d", rec.Code)
	}

	rec := do(t, router, http.MethodGet, "/api/agents/lightweight", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var light []map[string]any
	decodeBody(t, rec, &light)
	if len(light) != 1 {
		t.Fatalf("got %d entries", len(light))
	}
	if _, ok := light[0]["mobile"]; ok {
		t.Errorf("lightweight projection leaked full record: %v", light[0])
	}
}

func TestProductSearchRoute(t *testing.T) {
	router := newTestRouter()
	create := func(color string, rate float64) {
		t.Helper()
		body := map[string]any{
			"productType": "Shopping Bag", "productSize": 16, "bagMaterial": "Non Woven",
			"quantity": 5000, "sheetGSM": 80, "sheetColor": color, "borderGSM": 60,
			"borderColor": color, "handleType": "D-Cut", "handleColor": color,
			"handleGSM": 60, "printingType": "Flexo", "printColor": "Black",
			"color": color, "design": true, "plateBlockNumber": 12,
			"plateAvailable": false, "rate": rate,
		}
		raw, _ := json.Marshal(body)
		if rec := do(t, router, http.MethodPost, "/api/products", string(raw)); rec.Code != http.StatusCreated {
			t.Fatalf("create product: %d %s", rec.Code, rec.Body.String())
		}
	}
	create("Red", 4.5)
	create("Red", 9.0)
	create("Black", 4.5)

	rec := do(t, router, http.MethodPost, "/api/products/search", `{"color":"Red","maxPrice":5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("search status = %d, body %s", rec.Code, rec.Body.String())
	}
	var found []map[string]any
	decodeBody(t, rec, &found)
	if len(found) != 1 {
		t.Errorf("search returned %d products, want 1", len(found))
	}
}

func TestPartyListEmptyIsArray(t *testing.T) {
	router := newTestRouter()
	rec := do(t, router, http.MethodGet, "/api/party", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("empty list body = %q, want []", got)
	}
}
