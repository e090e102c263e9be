package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harlamovads/Graph-description-training/internal/credstore"
)

func TestLogObserver_Format(t *testing.T) {
	var buf bytes.Buffer
	o := NewLogObserver(&buf)

	o.OnCallComplete(CallEvent{
		Method:    "GET",
		Path:      "/tasks",
		Status:    200,
		LatencyMs: 12,
		RequestID: "req-1",
	})
	out := buf.String()
	assert.Contains(t, out, "api_call method=GET path=/tasks status=200 latency_ms=12 request_id=req-1")

	buf.Reset()
	o.OnCallComplete(CallEvent{Method: "POST", Path: "/auth/login", Err: "UNAVAILABLE"})
	assert.Contains(t, buf.String(), "status=err:UNAVAILABLE")
}

func TestClient_ObserverSeesEveryCall(t *testing.T) {
	var events []CallEvent
	observer := observerFunc(func(e CallEvent) { events = append(events, e) })

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/tasks" {
			w.Write([]byte(`{"tasks": []}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "Task not found"}`))
	}))
	t.Cleanup(srv.Close)

	client := New(Config{BaseURL: srv.URL}, credstore.NewMemoryStore(), observer)

	_, err := client.Tasks(context.Background())
	require.NoError(t, err)
	_, err = client.Task(context.Background(), 99)
	require.Error(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, 200, events[0].Status)
	assert.Empty(t, events[0].Err)
	assert.Equal(t, 404, events[1].Status)
	assert.Equal(t, "NOT_FOUND", events[1].Err)
	assert.NotEqual(t, events[0].RequestID, events[1].RequestID)
}

type observerFunc func(CallEvent)

func (f observerFunc) OnCallComplete(e CallEvent) { f(e) }
