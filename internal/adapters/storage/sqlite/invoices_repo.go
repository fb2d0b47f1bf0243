package sqlite

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
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO invoices (invoice_no, client, pet, amount, date, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`, inv.InvoiceNo, inv.Client, inv.Pet, inv.Amount.String(), inv.Date, inv.Status)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *InvoicesRepo) UpdateAmount(ctx context.Context, id int64, amount decimal.Decimal) error {
	res, err := r.db.ExecContext(ctx, `UPDATE invoices SET amount = ? WHERE id = ?`, amount.String(), id)
	if err != nil {
		return err
	}
	return expectOne(res)
}

func (r *InvoicesRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE invoices SET status = ? WHERE id = ?`, status, id)
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
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *InvoicesRepo) GetByID(ctx context.Context, id int64) (invoices.Invoice, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, invoice_no, client, pet, amount, date, status
		FROM invoices
		WHERE id = ?
	`, id)

	inv, err := scanInvoice(row)
	if errors.Is(err, sql.ErrNoRows) {
		return invoices.Invoice{}, errs.ErrNotFound
	}
	return inv, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanInvoice(s scanner) (invoices.Invoice, error) {
	var inv invoices.Invoice
	var amount string
	if err := s.Scan(&inv.ID, &inv.InvoiceNo, &inv.Client, &inv.Pet, &amount, &inv.Date, &inv.Status); err != nil {
		return invoices.Invoice{}, err
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return invoices.Invoice{}, err
	}
	inv.Amount = d
	return inv, nil
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
