package petstatus

import "context"

// Repository es el contrato del colaborador de persistencia para el log de estados.
// No hay update ni delete.
type Repository interface {
	Insert(ctx context.Context, e Event) (int64, error)
	// List devuelve todos los eventos ordenados por fecha descendente.
	List(ctx context.Context) ([]Event, error)
}
