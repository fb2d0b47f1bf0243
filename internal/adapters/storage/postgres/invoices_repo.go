package postgres

import (
	"context"
	"database/sql"
	"errors"

	"vet-clinic-ledger/internal/domain/invoices"
	"vet-clinic-ledger/internal/platform/errs"

	"github.com/shopspring/decimal"
)

type InvoicesRepo struct {
	db *sql.DB
}

func NewInvoicesRepo(db *sql.DB) *InvoicesRepo {
	return &InvoicesRepo{db: db}
}

func (r *InvoicesRepo) Insert(ctx context.Context, inv invoices.Invoice) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO invoices (invoice_no, client, pet, amount, date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, inv.InvoiceNo, inv.Client, inv.Pet, inv.Amount, inv.Date, inv.Status).Scan(&id)
	return id, err
}

func (r *InvoicesRepo) UpdateAmount(ctx context.Context, id int64, amount decimal.Decimal) error {
	res, err := r.db.ExecContext(ctx, `UPDATE invoices SET amount = $2 WHERE id = $1`, id, amount)
	if err != nil {
		return err
	}
	return expectOne(res)
}

func (r *InvoicesRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE invoices SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	return expectOne(res)
}

func (r *InvoicesRepo) List(ctx context.Context) ([]invoices.Invoice, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, invoice_no, client, pet, amount, date, status
		FROM invoices
		ORDER BY date DESC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]invoices.Invoice, 0)
	for rows.Next() {
		var inv invoices.Invoice
		if err := rows.Scan(&inv.ID, &inv.InvoiceNo, &inv.Client, &inv.Pet, &inv.Amount, &inv.Date, &inv.Status); err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *InvoicesRepo) GetByID(ctx context.Context, id int64) (invoices.Invoice, error) {
	var inv invoices.Invoice
	err := r.db.QueryRowContext(ctx, `
		SELECT id, invoice_no, client, pet, amount, date, status
		FROM invoices
		WHERE id = $1
	`, id).Scan(&inv.ID, &inv.InvoiceNo, &inv.Client, &inv.Pet, &inv.Amount, &inv.Date, &inv.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return invoices.Invoice{}, errs.ErrNotFound
	}
	return inv, err
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}
