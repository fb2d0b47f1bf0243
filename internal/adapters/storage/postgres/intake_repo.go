package postgres

import (
	"context"
	"database/sql"

	"vet-clinic-ledger/internal/domain/intake"
)

type IntakeRepo struct {
	db *sql.DB
}

func NewIntakeRepo(db *sql.DB) *IntakeRepo {
	return &IntakeRepo{db: db}
}

func (r *IntakeRepo) InsertWalkIn(ctx context.Context, w intake.WalkIn) (int64, error) {
	return r.insert(ctx, `
		INSERT INTO walkins (ref, client_name, contact, address, pet_name, species, breed, age, reason, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`, w.Ref, w.ClientName, w.Contact, w.Address, w.PetName, w.Species, w.Breed, nullAge(w.Age), w.Reason, w.Date)
}

func (r *IntakeRepo) InsertClient(ctx context.Context, c intake.Client) (int64, error) {
	return r.insert(ctx, `
		INSERT INTO clients (name, contact, address) VALUES ($1, $2, $3)
		RETURNING id
	`, c.Name, c.Contact, c.Address)
}

func (r *IntakeRepo) InsertAnimal(ctx context.Context, a intake.Animal) (int64, error) {
	return r.insert(ctx, `
		INSERT INTO animals (pet_name, species, breed, age, owner_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, a.PetName, a.Species, a.Breed, nullAge(a.Age), a.OwnerName)
}

func (r *IntakeRepo) InsertAppointment(ctx context.Context, a intake.Appointment) (int64, error) {
	return r.insert(ctx, `
		INSERT INTO appointments (client_name, pet_name, date, time, reason)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, a.ClientName, a.PetName, a.Date, a.Time, a.Reason)
}

func (r *IntakeRepo) insert(ctx context.Context, query string, args ...any) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&id)
	return id, err
}

func (r *IntakeRepo) ListWalkIns(ctx context.Context) ([]intake.WalkIn, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, ref::text, client_name, contact, address, pet_name, species, breed, age, reason, date
		FROM walkins ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]intake.WalkIn, 0)
	for rows.Next() {
		var w intake.WalkIn
		var age sql.NullInt64
		if err := rows.Scan(&w.ID, &w.Ref, &w.ClientName, &w.Contact, &w.Address, &w.PetName, &w.Species, &w.Breed, &age, &w.Reason, &w.Date); err != nil {
			return nil, err
		}
		w.Age = fromNullAge(age)
		out = append(out, w)
	}
	return out, rows.Err()
}

// ListClients usa ILIKE para igualar el LIKE de SQLite.
func (r *IntakeRepo) ListClients(ctx context.Context, keyword string) ([]intake.Client, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, contact, address
		FROM clients
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY id
	`, keyword)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]intake.Client, 0)
	for rows.Next() {
		var c intake.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Contact, &c.Address); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *IntakeRepo) ListAnimals(ctx context.Context) ([]intake.Animal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_name, species, breed, age, owner_name
		FROM animals ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]intake.Animal, 0)
	for rows.Next() {
		var a intake.Animal
		var age sql.NullInt64
		if err := rows.Scan(&a.ID, &a.PetName, &a.Species, &a.Breed, &age, &a.OwnerName); err != nil {
			return nil, err
		}
		a.Age = fromNullAge(age)
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *IntakeRepo) ListAppointments(ctx context.Context) ([]intake.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, client_name, pet_name, date, time, reason
		FROM appointments ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]intake.Appointment, 0)
	for rows.Next() {
		var a intake.Appointment
		if err := rows.Scan(&a.ID, &a.ClientName, &a.PetName, &a.Date, &a.Time, &a.Reason); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func nullAge(age *int) sql.NullInt64 {
	if age == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*age), Valid: true}
}

func fromNullAge(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
