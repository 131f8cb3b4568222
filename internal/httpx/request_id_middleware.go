package httpx

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"bookreviews/internal/logging"
)

const requestIDHeader = "X-Request-Id"

// RequestIDMiddleware propagates or assigns X-Request-Id and attaches it to
// the request's log attributes.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set(requestIDHeader, requestID)
		ctx := logging.WithAttrs(r.Context(), slog.String("request_id", requestID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
