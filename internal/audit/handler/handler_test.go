package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nbfc-gateway/internal/audit"
)

func newRouter(t *testing.T) (chi.Router, *audit.InMemoryStore) {
	t.Helper()
	store := audit.NewInMemoryStore()
	r := chi.NewRouter()
	New(audit.NewPublisher(store), slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	return r, store
}

func TestHandleLogEvent(t *testing.T) {
	t.Run("records the payload as an external event", func(t *testing.T) {
		router, store := newRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/call/log_event",
			strings.NewReader(`{"event":"agent_step","step":3}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
		assert.Equal(t, "ok", decoded["status"])

		events, err := store.ListRecent(context.Background(), 10)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, audit.CategoryExternal, events[0].Category)
		assert.Equal(t, audit.ActionExternalEventSubmitted, events[0].Action)
		assert.Equal(t, "agent_step", events[0].Detail["event"])
		assert.False(t, events[0].Timestamp.IsZero())
	})

	t.Run("rejects a non-object body", func(t *testing.T) {
		router, store := newRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/call/log_event", strings.NewReader(`"just a string"`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		events, err := store.ListRecent(context.Background(), 10)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestHandleListEvents(t *testing.T) {
	seed := func(t *testing.T, store *audit.InMemoryStore, n int) {
		t.Helper()
		for i := 0; i < n; i++ {
			require.NoError(t, store.Append(context.Background(), audit.Event{
				Category: audit.CategoryDecision,
				Action:   audit.ActionLoanUnderwritten,
				Detail:   map[string]any{"seq": i},
			}))
		}
	}

	t.Run("returns recent events with a count", func(t *testing.T) {
		router, store := newRouter(t)
		seed(t, store, 3)

		req := httptest.NewRequest(http.MethodGet, "/audit/events", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
		result := decoded["result"].(map[string]any)
		assert.Equal(t, float64(3), result["count"])
		assert.Len(t, result["events"], 3)
	})

	t.Run("honors the limit parameter", func(t *testing.T) {
		router, store := newRouter(t)
		seed(t, store, 5)

		req := httptest.NewRequest(http.MethodGet, "/audit/events?limit=2", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
		result := decoded["result"].(map[string]any)
		assert.Equal(t, float64(2), result["count"])
	})

	t.Run("rejects a non-positive limit", func(t *testing.T) {
		router, _ := newRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/audit/events?limit=0", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
