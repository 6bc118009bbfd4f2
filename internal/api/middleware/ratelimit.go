package middleware

import (
	"encoding/json"
	"net/http"
)

// Allower decides whether a request may proceed right now.
type Allower interface {
	Allow() bool
}

// RateLimit rejects requests with 429 when the limiter has no tokens left.
// onLimited, if non-nil, is called for every rejected request.
func RateLimit(l Allower, onLimited func()) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow() {
				if onLimited != nil {
					onLimited()
				}
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", "1")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "too many requests"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
