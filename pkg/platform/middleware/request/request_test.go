package request

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"

	"github.com/abstract-333/name-origin-api/pkg/requestcontext"
)

func TestContextSeedsTimeAndRequestID(t *testing.T) {
	var gotID string
	var gotTime time.Time
	h := middleware.RequestID(Context(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = requestcontext.RequestID(r.Context())
		gotTime = requestcontext.Now(r.Context())
	})))

	before := time.Now().UTC()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, gotID)
	assert.False(t, gotTime.Before(before.Add(-time.Second)))
	assert.Equal(t, time.UTC, gotTime.Location())
}
