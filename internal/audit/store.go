package audit

import "context"

// Store persists audit events. Append-only; there is deliberately no update
// or delete surface.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListRecent(ctx context.Context, limit int) ([]Event, error)
}

// Emitter is the narrow dependency domain services take on the audit trail.
type Emitter interface {
	Emit(ctx context.Context, event Event) error
}
