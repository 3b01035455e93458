package testutil

import (
	"net/http"
	"time"

	"github.com/abstract-333/name-origin-api/pkg/requestcontext"
)

// WithRequestTime pins the request-scoped clock, as the request middleware
// would.
func WithRequestTime(req *http.Request, t time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), t))
}

// WithRequestID attaches a request ID to the request context.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}
