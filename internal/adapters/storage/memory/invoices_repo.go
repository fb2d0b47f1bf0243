package memory

import (
	"context"
	"sort"
	"sync"

	"vet-clinic-ledger/internal/domain/invoices"
	"vet-clinic-ledger/internal/platform/errs"

	"github.com/shopspring/decimal"
)

type invoiceRepo struct {
	mu     sync.RWMutex
	nextID int64
	rows   []invoices.Invoice // orden de inserción
}

func NewInvoiceRepo() invoices.Repository {
	return &invoiceRepo{}
}

func (r *invoiceRepo) Insert(ctx context.Context, inv invoices.Invoice) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	inv.ID = r.nextID
	r.rows = append(r.rows, inv)
	return inv.ID, nil
}

func (r *invoiceRepo) UpdateAmount(ctx context.Context, id int64, amount decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return errs.ErrNotFound
	}
	r.rows[i].Amount = amount
	return nil
}

func (r *invoiceRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return errs.ErrNotFound
	}
	r.rows[i].Status = status
	return nil
}

func (r *invoiceRepo) List(ctx context.Context) ([]invoices.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]invoices.Invoice, len(r.rows))
	copy(out, r.rows)

	// Fecha desc; empates quedan en orden de inserción (igual que SQLite sin ORDER BY secundario).
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out, nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, id int64) (invoices.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return invoices.Invoice{}, errs.ErrNotFound
	}
	return r.rows[i], nil
}

func (r *invoiceRepo) indexOf(id int64) int {
	for i, inv := range r.rows {
		if inv.ID == id {
			return i
		}
	}
	return -1
}
