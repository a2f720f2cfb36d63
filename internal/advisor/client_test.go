package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	return cfg
}

func TestOllamaClient_Ask_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req ollamaRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3.2", req.Model)
		assert.False(t, req.Stream)
		assert.NotEmpty(t, req.System)
		assert.Equal(t, "best bakery near Gare de Lyon?", req.Prompt)

		resp := ollamaResponse{
			Model:    "llama3.2",
			Response: "Try the boulangerie on Rue de Bercy.",
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := NewOllamaClient(testConfig(srv.URL), NoopObserver{})
	ans, err := client.Ask(context.Background(), "best bakery near Gare de Lyon?")

	require.NoError(t, err)
	assert.Equal(t, "Try the boulangerie on Rue de Bercy.", ans.Text)
	assert.Equal(t, "llama3.2", ans.Model)
	assert.GreaterOrEqual(t, ans.LatencyMs, int64(0))
}

func TestOllamaClient_Ask_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.TimeoutMs = 50

	client := NewOllamaClient(cfg, NoopObserver{})
	_, err := client.Ask(context.Background(), "test")

	assert.ErrorIs(t, err, ErrTimeout)
}

func TestOllamaClient_Ask_Unavailable(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1") // nothing listening
	cfg.MaxRetries = 0

	client := NewOllamaClient(cfg, NoopObserver{})
	_, err := client.Ask(context.Background(), "test")

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestOllamaClient_Ask_RetryOnTransientError(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("internal error"))
			return
		}
		json.NewEncoder(w).Encode(ollamaResponse{Model: "llama3.2", Response: "ok"})
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 1

	client := NewOllamaClient(cfg, NoopObserver{})
	ans, err := client.Ask(context.Background(), "test")

	require.NoError(t, err)
	assert.Equal(t, "ok", ans.Text)
	assert.Equal(t, 2, attempts)
}

func TestOllamaClient_Ask_RetryExhausted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 1

	client := NewOllamaClient(cfg, NoopObserver{})
	_, err := client.Ask(context.Background(), "test")

	assert.ErrorIs(t, err, ErrRetryExhausted)
}

func TestOllamaClient_ObserverSeesFailure(t *testing.T) {
	var events []CallEvent
	obs := observerFunc(func(e CallEvent) { events = append(events, e) })

	cfg := testConfig("http://127.0.0.1:1")
	cfg.MaxRetries = 0

	client := NewOllamaClient(cfg, obs)
	_, err := client.Ask(context.Background(), "test")
	require.Error(t, err)

	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
	assert.Equal(t, "UNAVAILABLE", events[0].ErrorCode)
}

type observerFunc func(CallEvent)

func (f observerFunc) OnCallComplete(e CallEvent) { f(e) }

func TestOllamaClient_Available(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/tags" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewOllamaClient(testConfig(srv.URL), NoopObserver{})
	assert.True(t, client.Available(context.Background()))

	down := NewOllamaClient(testConfig("http://127.0.0.1:1"), NoopObserver{})
	assert.False(t, down.Available(context.Background()))
}

func TestLogObserver_Format(t *testing.T) {
	var b strings.Builder
	obs := NewLogObserver(&b)

	obs.OnCallComplete(CallEvent{Model: "llama3.2", LatencyMs: 12, Success: true})
	obs.OnCallComplete(CallEvent{Model: "llama3.2", LatencyMs: 3, Success: false, ErrorCode: "TIMEOUT"})

	out := b.String()
	assert.Contains(t, out, "advisor_call model=llama3.2 latency_ms=12 status=ok")
	assert.Contains(t, out, "status=err:TIMEOUT")
}
