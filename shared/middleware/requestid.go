package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type requestIdKey struct{}

const RequestIdHeader = "X-Request-Id"

// RequestId assigns every request a uuid (or reuses the one from the
// X-Request-Id header) and echoes it back in the response.
func RequestId(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIdHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIdHeader, id)

		ctx := context.WithValue(r.Context(), requestIdKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestId returns the request id from ctx, or "" when the middleware did not run.
func GetRequestId(ctx context.Context) string {
	id, _ := ctx.Value(requestIdKey{}).(string)
	return id
}
