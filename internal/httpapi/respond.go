package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bagworks/backend/internal/kv"
	"github.com/bagworks/backend/internal/storage"
	"github.com/bagworks/backend/internal/validate"
)

// decodeJSON decodes the request body, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeDetail writes the {"detail": ...} error envelope.
func writeDetail(w http.ResponseWriter, status int, detail any) {
	writeJSON(w, status, map[string]any{"detail": detail})
}

func badRequest(w http.ResponseWriter, err error) {
	writeDetail(w, http.StatusBadRequest, "invalid request body: "+err.Error())
}

// writeError maps the error taxonomy onto HTTP statuses: field violations
// become 422 with the per-field list, missing records 404 with the entity
// name, and store failures 500 carrying the provider's code and message.
func (h *Handler) writeError(w http.ResponseWriter, entity string, err error) {
	var verrs validate.Errors
	if errors.As(err, &verrs) {
		writeDetail(w, http.StatusUnprocessableEntity, verrs)
		return
	}
	if errors.Is(err, storage.ErrNotFound) {
		writeDetail(w, http.StatusNotFound, entity+" not found")
		return
	}
	var kerr *kv.Error
	if errors.As(err, &kerr) {
		h.log.Errorf("storage failure: %v", kerr)
		writeDetail(w, http.StatusInternalServerError, kerr.Detail())
		return
	}
	h.log.Errorf("unhandled error: %v", err)
	writeDetail(w, http.StatusInternalServerError, "internal error")
}
