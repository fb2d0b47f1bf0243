package postgres

import (
	"context"
	"database/sql"

	"vet-clinic-ledger/internal/domain/petstatus"
)

type PetStatusRepo struct {
	db *sql.DB
}

func NewPetStatusRepo(db *sql.DB) *PetStatusRepo {
	return &PetStatusRepo{db: db}
}

func (r *PetStatusRepo) Insert(ctx context.Context, e petstatus.Event) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO pet_status (pet, client, status, date, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, e.Pet, e.Client, e.Status, e.Date, e.Notes).Scan(&id)
	return id, err
}

func (r *PetStatusRepo) List(ctx context.Context) ([]petstatus.Event, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet, client, status, date, notes
		FROM pet_status
		ORDER BY date DESC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]petstatus.Event, 0)
	for rows.Next() {
		var e petstatus.Event
		if err := rows.Scan(&e.ID, &e.Pet, &e.Client, &e.Status, &e.Date, &e.Notes); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
