package middleware

import (
	"net/http"
	"time"
)

type httpObserver interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

// Metrics records request count and latency per route. route maps a request
// to its mux pattern; unmatched requests are reported as "unmatched".
func Metrics(obs httpObserver, route func(*http.Request) string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			pattern := route(r)
			if pattern == "" {
				pattern = "unmatched"
			}
			obs.ObserveHTTP(r.Method, pattern, sw.status, time.Since(start))
		})
	}
}
