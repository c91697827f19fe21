package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"boostoracle/pkg/requestcontext"
)

// RequestIDHeader carries the id back to the caller for support tickets.
const RequestIDHeader = "X-Request-Id"

// RequestID assigns each request a uuid (or adopts the caller's) and makes
// it available to services through requestcontext.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(requestcontext.WithRequestID(r.Context(), id)))
	})
}
