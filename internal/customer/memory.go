package customer

import (
	"context"
	"sync"
)

// InMemoryDirectory favors clarity over performance. The RWMutex is not
// strictly needed for the immutable seed but keeps the store safe if a
// future variant adds writes.
type InMemoryDirectory struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewInMemoryDirectory returns a directory seeded with the demo dataset.
func NewInMemoryDirectory() *InMemoryDirectory {
	records := make(map[string]Record, len(seed))
	for _, rec := range seed {
		records[rec.ID] = rec
	}
	return &InMemoryDirectory{records: records}
}

func (d *InMemoryDirectory) FindByID(_ context.Context, customerID string) (Record, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if rec, ok := d.records[customerID]; ok {
		return rec, nil
	}
	return Record{}, ErrNotFound
}
