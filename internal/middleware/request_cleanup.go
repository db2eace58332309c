package middleware

import (
	"io"
	"net/http"
)

const DefaultMaxBodyBytes = 1 << 20

// LimitAndDrainRequest caps the request body at maxBodyBytes, and drains and
// closes whatever the handler left unread.
func LimitAndDrainRequest(maxBodyBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && maxBodyBytes > 0 {
				r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
			}
			next.ServeHTTP(w, r)
			if r.Body != nil {
				_, _ = io.Copy(io.Discard, r.Body)
				_ = r.Body.Close()
			}
		})
	}
}
