package memory

import (
	"context"
	"sort"
	"sync"

	"vet-clinic-ledger/internal/domain/treatments"
)

type treatmentRepo struct {
	mu     sync.RWMutex
	nextID int64
	rows   []treatments.Treatment
}

func NewTreatmentRepo() treatments.Repository {
	return &treatmentRepo{}
}

func (r *treatmentRepo) Insert(ctx context.Context, t treatments.Treatment) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	t.ID = r.nextID
	r.rows = append(r.rows, t)
	return t.ID, nil
}

func (r *treatmentRepo) List(ctx context.Context) ([]treatments.Treatment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]treatments.Treatment, len(r.rows))
	copy(out, r.rows)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out, nil
}
