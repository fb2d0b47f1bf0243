package invoices

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository es el contrato del colaborador de persistencia para facturas.
// GetByID devuelve errs.ErrNotFound si no existe.
type Repository interface {
	// Insert asigna un id monótono creciente.
	Insert(ctx context.Context, inv Invoice) (int64, error)
	UpdateAmount(ctx context.Context, id int64, amount decimal.Decimal) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	// List devuelve todas las facturas ordenadas por fecha descendente (comparación de strings).
	List(ctx context.Context) ([]Invoice, error)
	GetByID(ctx context.Context, id int64) (Invoice, error)
}
