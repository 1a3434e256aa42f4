package http

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Resource is the shaped external representation of a single record.
type Resource struct {
	Type       string         `json:"type"`
	ID         string         `json:"id"`
	Attributes map[string]any `json:"attributes"`
}

type document struct {
	Data any `json:"data"`
}

type errorDocument struct {
	Errors []errorObject `json:"errors"`
}

type errorObject struct {
	Detail string `json:"detail"`
}

func writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(document{Data: data})
}

func writeError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorDocument{Errors: []errorObject{{Detail: detail}}})
}

// storeError handles store-layer failures: logged once here, surfaced as a
// bare 500. Never retried.
func storeError(w http.ResponseWriter, op string, err error) {
	log.Error().Err(err).Str("op", op).Msg("store operation failed")
	w.WriteHeader(http.StatusInternalServerError)
}
