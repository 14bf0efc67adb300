package audit

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stamped(action string, offset time.Duration) Event {
	return Event{
		Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC).Add(offset),
		Category:  CategoryDecision,
		Action:    action,
	}
}

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	for i, action := range []string{"first", "second", "third"} {
		require.NoError(t, store.Append(ctx, stamped(action, time.Duration(i)*time.Minute)))
	}

	t.Run("listing preserves arrival order", func(t *testing.T) {
		events, err := store.ListRecent(ctx, 0)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, "first", events[0].Action)
		assert.Equal(t, "third", events[2].Action)
	})

	t.Run("limit keeps the newest tail", func(t *testing.T) {
		events, err := store.ListRecent(ctx, 2)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "second", events[0].Action)
		assert.Equal(t, "third", events[1].Action)
	})

	t.Run("listing returns a copy", func(t *testing.T) {
		events, err := store.ListRecent(ctx, 0)
		require.NoError(t, err)
		events[0].Action = "mutated"

		again, err := store.ListRecent(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, "first", again[0].Action)
	})
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Append(ctx, stamped("uploaded", 0)))
	require.NoError(t, store.Append(ctx, Event{
		Timestamp: time.Date(2025, 6, 1, 12, 1, 0, 0, time.UTC),
		Category:  CategoryExternal,
		Action:    "external_event_submitted",
		Detail:    map[string]any{"note": "hello"},
	}))

	t.Run("writes one JSON object per line", func(t *testing.T) {
		f, err := os.Open(filepath.Join(dir, auditFileName))
		require.NoError(t, err)
		defer f.Close()

		var lines int
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			var event Event
			require.NoError(t, json.Unmarshal(scanner.Bytes(), &event), "line %d", lines+1)
			lines++
		}
		require.NoError(t, scanner.Err())
		assert.Equal(t, 2, lines)
	})

	t.Run("reads events back with payloads intact", func(t *testing.T) {
		events, err := store.ListRecent(ctx, 0)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "uploaded", events[0].Action)
		assert.Equal(t, "hello", events[1].Detail["note"])
	})

	t.Run("limit keeps the newest tail", func(t *testing.T) {
		events, err := store.ListRecent(ctx, 1)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, CategoryExternal, events[0].Category)
	})

	t.Run("missing file lists empty", func(t *testing.T) {
		fresh, err := NewFileStore(t.TempDir())
		require.NoError(t, err)
		events, err := fresh.ListRecent(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestPublisher_StampsTimestampAndRequestID(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	publisher := NewPublisher(store)

	require.NoError(t, publisher.Emit(ctx, Event{Action: "unstamped"}))

	events, err := publisher.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.False(t, events[0].Timestamp.IsZero(), "publisher must stamp missing timestamps")
}
