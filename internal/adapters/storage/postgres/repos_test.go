package postgres_test

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"vet-clinic-ledger/internal/adapters/storage/postgres"
	"vet-clinic-ledger/internal/domain/billing"
	"vet-clinic-ledger/internal/domain/catalog"
	"vet-clinic-ledger/internal/domain/intake"
	"vet-clinic-ledger/internal/domain/invoices"
	"vet-clinic-ledger/internal/domain/petstatus"
	"vet-clinic-ledger/internal/domain/treatments"
	"vet-clinic-ledger/internal/platform/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Estos tests necesitan una base real: TEST_DB_DSN=postgres://... go test ./...
func openDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}

	db, err := postgres.Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	require.NoError(t, postgres.EnsureSchema(ctx, db))
	_, err = db.ExecContext(ctx, `
		TRUNCATE clients, animals, appointments, walkins, treatments, invoices, pet_status RESTART IDENTITY
	`)
	require.NoError(t, err)
	return db
}

func TestInvoicesRepo(t *testing.T) {
	repo := postgres.NewInvoicesRepo(openDB(t))
	ctx := context.Background()

	id, err := repo.Insert(ctx, invoices.Invoice{InvoiceNo: "INV-1", Client: "Ana", Amount: decimal.RequireFromString("10.25"), Date: "2026-01-01", Status: invoices.StatusUnpaid})
	require.NoError(t, err)

	require.NoError(t, repo.UpdateAmount(ctx, id, decimal.RequireFromString("20.50")))
	require.NoError(t, repo.UpdateStatus(ctx, id, invoices.StatusPaid))

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("20.5").Equal(got.Amount))
	assert.Equal(t, invoices.StatusPaid, got.Status)

	_, err = repo.GetByID(ctx, id+100)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.ErrorIs(t, repo.UpdateStatus(ctx, id+100, "Paid"), errs.ErrNotFound)
}

func TestIntakeRepo(t *testing.T) {
	p := intake.NewProcessor(postgres.NewIntakeRepo(openDB(t)), nil, nil, nil)
	ctx := context.Background()

	res, err := p.Process(ctx, intake.RawFields{ClientName: "Ana Perez", PetName: "Rex", Age: "x", Date: "2026-03-01"})
	require.NoError(t, err)

	walkIns, err := p.ListWalkIns(ctx)
	require.NoError(t, err)
	require.Len(t, walkIns, 1)
	assert.Equal(t, res.WalkIn.Ref, walkIns[0].Ref)
	assert.Nil(t, walkIns[0].Age)

	clients, err := p.ListClients(ctx, "PEREZ")
	require.NoError(t, err)
	assert.Len(t, clients, 1)
}

func TestBillingFlow(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()

	invSvc := invoices.NewService(postgres.NewInvoicesRepo(db), nil)
	trRepo := postgres.NewTreatmentsRepo(db)
	rec := billing.NewReconciler(trRepo, invSvc, nil, nil)
	trSvc := treatments.NewService(trRepo, rec, nil)
	psSvc := petstatus.NewService(postgres.NewPetStatusRepo(db), rec, nil)

	_, _, err := trSvc.Add(ctx, treatments.AddInput{
		Reason: "visit", Pet: "PetX", Client: "ClientA", TreatmentType: catalog.Surgery, Date: "2026-02-01",
	})
	require.NoError(t, err)

	_, inv, err := psSvc.UpdateStatus(ctx, petstatus.RecordInput{
		Pet: "PetX", Client: "ClientA", Status: petstatus.StatusDischarged, Date: "2026-02-02",
	})
	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.True(t, decimal.NewFromInt(500).Equal(inv.Amount))
}
