package access

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	method, route string
	status        int
}

type fakeRecorder struct {
	observed []observation
	inFlight int
}

func (f *fakeRecorder) ObserveRequest(method, route string, status int, _ time.Duration) {
	f.observed = append(f.observed, observation{method, route, status})
}
func (f *fakeRecorder) IncInFlight() { f.inFlight++ }
func (f *fakeRecorder) DecInFlight() { f.inFlight-- }

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	rec := &fakeRecorder{}
	r := chi.NewRouter()
	r.Use(Log(slog.New(slog.NewJSONHandler(&buf, nil)), rec))
	r.Get("/api/v1/names", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/names?name=x", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	r.ServeHTTP(httptest.NewRecorder(), req)

	require.Len(t, rec.observed, 1)
	assert.Equal(t, observation{http.MethodGet, "/api/v1/names", http.StatusBadGateway}, rec.observed[0])
	assert.Equal(t, 0, rec.inFlight)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "203.0.113.7", entry["client_ip"])
	assert.Equal(t, float64(http.StatusBadGateway), entry["status"])
}

func TestLogDefaultsToOK(t *testing.T) {
	var buf bytes.Buffer
	rec := &fakeRecorder{}
	h := Log(slog.New(slog.NewJSONHandler(&buf, nil)), rec)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))
	require.Len(t, rec.observed, 1)
	assert.Equal(t, http.StatusOK, rec.observed[0].status)
	assert.Equal(t, "unmatched", rec.observed[0].route)
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", ClientIP(req))

	req.Header.Set("X-Real-IP", " 198.51.100.2 ")
	assert.Equal(t, "198.51.100.2", ClientIP(req))
}
