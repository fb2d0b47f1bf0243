package treatments

import "context"

// Repository es el contrato del colaborador de persistencia para tratamientos.
type Repository interface {
	// Insert devuelve el id asignado por el ledger.
	Insert(ctx context.Context, t Treatment) (int64, error)
	// List devuelve todos los tratamientos ordenados por fecha descendente.
	List(ctx context.Context) ([]Treatment, error)
}
