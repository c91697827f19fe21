// Package httputil centralizes JSON response writing so every endpoint
// returns the same envelopes and CORS headers.
package httputil

import (
	"encoding/json"
	"net/http"
)

// SetCORS applies the fixed CORS policy. The oracle is a public read-only
// decision function, so any origin may call it.
func SetCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// WriteJSON writes v as a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes the generic error envelope. Messages are intentionally
// short and free of internal detail.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"error": message})
}
