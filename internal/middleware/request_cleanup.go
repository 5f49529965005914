package middleware

import (
	"io"
	"net/http"
)

// DefaultMaxBodyBytes fits a training session with a few hundred sets.
const DefaultMaxBodyBytes = 1 << 20

// LimitAndDrainRequest caps the request body at maxBytes and drains what
// the handler left unread, so the connection can be reused.
func LimitAndDrainRequest(maxBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
			if r.Body != nil {
				_, _ = io.Copy(io.Discard, r.Body)
				_ = r.Body.Close()
			}
		})
	}
}
