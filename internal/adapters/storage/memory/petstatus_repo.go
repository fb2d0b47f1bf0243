package memory

import (
	"context"
	"sort"
	"sync"

	"vet-clinic-ledger/internal/domain/petstatus"
)

// petStatusRepo es append-only: no expone update ni delete.
type petStatusRepo struct {
	mu     sync.RWMutex
	nextID int64
	rows   []petstatus.Event
}

func NewPetStatusRepo() petstatus.Repository {
	return &petStatusRepo{}
}

func (r *petStatusRepo) Insert(ctx context.Context, e petstatus.Event) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	e.ID = r.nextID
	r.rows = append(r.rows, e)
	return e.ID, nil
}

func (r *petStatusRepo) List(ctx context.Context) ([]petstatus.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]petstatus.Event, len(r.rows))
	copy(out, r.rows)

	// Orden por fecha desc (más reciente primero)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out, nil
}
