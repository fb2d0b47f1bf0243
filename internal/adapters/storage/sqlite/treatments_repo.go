package sqlite

import (
	"context"
	"database/sql"

	"vet-clinic-ledger/internal/domain/treatments"
)

type TreatmentsRepo struct {
	db *sql.DB
}

func NewTreatmentsRepo(db *sql.DB) *TreatmentsRepo {
	return &TreatmentsRepo{db: db}
}

func (r *TreatmentsRepo) Insert(ctx context.Context, t treatments.Treatment) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO treatments (reason, pet, client, treatment_type, date, confined, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, t.Reason, t.Pet, t.Client, t.TreatmentType, t.Date, t.Confined, t.Notes)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *TreatmentsRepo) List(ctx context.Context) ([]treatments.Treatment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, reason, pet, client, treatment_type, date, confined, notes
		FROM treatments
		ORDER BY date DESC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]treatments.Treatment, 0)
	for rows.Next() {
		var t treatments.Treatment
		if err := rows.Scan(&t.ID, &t.Reason, &t.Pet, &t.Client, &t.TreatmentType, &t.Date, &t.Confined, &t.Notes); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
