package memory

import (
	"context"
	"strings"
	"sync"

	"vet-clinic-ledger/internal/domain/intake"
)

// intakeRepo guarda las cuatro tablas de recepción bajo un mismo lock.
type intakeRepo struct {
	mu sync.RWMutex

	walkIns      []intake.WalkIn
	clients      []intake.Client
	animals      []intake.Animal
	appointments []intake.Appointment
}

func NewIntakeRepo() intake.Repository {
	return &intakeRepo{}
}

func (r *intakeRepo) InsertWalkIn(ctx context.Context, w intake.WalkIn) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w.ID = int64(len(r.walkIns) + 1)
	r.walkIns = append(r.walkIns, w)
	return w.ID, nil
}

func (r *intakeRepo) InsertClient(ctx context.Context, c intake.Client) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = int64(len(r.clients) + 1)
	r.clients = append(r.clients, c)
	return c.ID, nil
}

func (r *intakeRepo) InsertAnimal(ctx context.Context, a intake.Animal) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a.ID = int64(len(r.animals) + 1)
	r.animals = append(r.animals, a)
	return a.ID, nil
}

func (r *intakeRepo) InsertAppointment(ctx context.Context, a intake.Appointment) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a.ID = int64(len(r.appointments) + 1)
	r.appointments = append(r.appointments, a)
	return a.ID, nil
}

func (r *intakeRepo) ListWalkIns(ctx context.Context) ([]intake.WalkIn, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]intake.WalkIn(nil), r.walkIns...), nil
}

func (r *intakeRepo) ListClients(ctx context.Context, keyword string) ([]intake.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(keyword)
	out := make([]intake.Client, 0, len(r.clients))
	for _, c := range r.clients {
		if strings.Contains(strings.ToLower(c.Name), q) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *intakeRepo) ListAnimals(ctx context.Context) ([]intake.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]intake.Animal(nil), r.animals...), nil
}

func (r *intakeRepo) ListAppointments(ctx context.Context) ([]intake.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]intake.Appointment(nil), r.appointments...), nil
}
