// Package request provides middleware that seeds request-scoped values.
// All operations within a single HTTP request share the same "now" timestamp
// and request ID, so stored timestamps and log lines line up.
package request

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/abstract-333/name-origin-api/pkg/requestcontext"
)

// Context copies chi's request ID and the current UTC time into the context.
// Mount it after middleware.RequestID.
func Context(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now().UTC())
		if id := middleware.GetReqID(ctx); id != "" {
			ctx = requestcontext.WithRequestID(ctx, id)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
