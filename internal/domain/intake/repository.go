package intake

import "context"

// Repository es el contrato del colaborador de persistencia para la recepción.
// Los listados devuelven orden de inserción.
type Repository interface {
	InsertWalkIn(ctx context.Context, w WalkIn) (int64, error)
	InsertClient(ctx context.Context, c Client) (int64, error)
	InsertAnimal(ctx context.Context, a Animal) (int64, error)
	InsertAppointment(ctx context.Context, a Appointment) (int64, error)

	ListWalkIns(ctx context.Context) ([]WalkIn, error)
	// ListClients filtra por nombre que contenga keyword (sin distinguir mayúsculas).
	ListClients(ctx context.Context, keyword string) ([]Client, error)
	ListAnimals(ctx context.Context) ([]Animal, error)
	ListAppointments(ctx context.Context) ([]Appointment, error)
}
