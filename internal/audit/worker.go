package audit

import (
	"context"
	"log/slog"

	"nbfc-gateway/pkg/requestcontext"
)

// Inbox is the channel domain services emit into. Sends block until the
// worker picks the event up or the caller's context is cancelled, so events
// are never silently dropped.
type Inbox chan Event

// Emit stamps the event and queues it for the background worker.
func (in Inbox) Emit(ctx context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}
	select {
	case in <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Worker consumes audit events from the inbox and persists them, keeping
// emission off the request path. On shutdown it drains whatever is already
// queued before returning.
type Worker struct {
	store  Store
	inbox  Inbox
	logger *slog.Logger
}

func NewWorker(store Store, inbox Inbox, logger *slog.Logger) *Worker {
	return &Worker{store: store, inbox: inbox, logger: logger}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.drain()
			return ctx.Err()
		case event := <-w.inbox:
			w.append(event)
		}
	}
}

func (w *Worker) drain() {
	for {
		select {
		case event := <-w.inbox:
			w.append(event)
		default:
			return
		}
	}
}

func (w *Worker) append(event Event) {
	// Persist with a fresh context: the request that produced the event may
	// already be gone.
	if err := w.store.Append(context.Background(), event); err != nil && w.logger != nil {
		w.logger.Error("audit append failed", "action", event.Action, "error", err)
	}
}
