package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// ContentType validates Content-Type headers for requests with bodies. A
// missing or non-JSON content type is rejected with 415 before any handler
// reads the body.
func ContentType(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == "POST" || r.Method == "PATCH" || r.Method == "PUT" {
				contentType := strings.ToLower(r.Header.Get("Content-Type"))
				if !strings.HasPrefix(contentType, "application/json") {
					respondErrorJSON(w, r, http.StatusUnsupportedMediaType, "Unsupported media type", "Content type must be application/json", logger)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
