// Package testutil provides a fake platform backend and domain
// fixtures for tests.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// Backend is an in-process stand-in for the REST backend. Routes are
// registered per test; unregistered paths return 404 with the backend's
// error body shape. Every request is counted, including misses.
type Backend struct {
	mux      *http.ServeMux
	srv      *httptest.Server
	requests atomic.Int64
}

// NewBackend starts a fake backend that is shut down when the test
// completes.
func NewBackend(t *testing.T) *Backend {
	t.Helper()
	b := &Backend{mux: http.NewServeMux()}
	b.mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusNotFound, "Not found")
	})
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.requests.Add(1)
		b.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(b.srv.Close)
	return b
}

// URL returns the backend's base URL.
func (b *Backend) URL() string { return b.srv.URL }

// Requests returns how many requests the backend has served.
func (b *Backend) Requests() int64 { return b.requests.Load() }

// Handle registers a handler for a pattern ("GET /auth/user" or a bare
// path).
func (b *Backend) Handle(pattern string, handler http.HandlerFunc) {
	b.mux.HandleFunc(pattern, handler)
}

// JSON registers a route that always answers with the given body.
func (b *Backend) JSON(pattern string, status int, body any) {
	b.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, status, body)
	})
}

// WriteJSON encodes body with the given status.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteError writes the backend's error body shape.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"error": message})
}
