package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"vet-clinic-ledger/internal/adapters/storage/sqlite"
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

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "clinic.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOpen_RequiresPathAndIsIdempotent(t *testing.T) {
	_, err := sqlite.Open("  ")
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "clinic.db")
	db, err := sqlite.Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = sqlite.Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestInvoicesRepo(t *testing.T) {
	repo := sqlite.NewInvoicesRepo(openDB(t))
	ctx := context.Background()

	id1, err := repo.Insert(ctx, invoices.Invoice{InvoiceNo: "INV-1", Client: "Ana", Amount: decimal.RequireFromString("10.25"), Date: "2026-01-01", Status: invoices.StatusUnpaid})
	require.NoError(t, err)
	id2, err := repo.Insert(ctx, invoices.Invoice{InvoiceNo: "INV-2", Client: "Bob", Pet: "Rex", Amount: decimal.NewFromInt(5), Date: "2026-02-01", Status: invoices.StatusUnpaid})
	require.NoError(t, err)
	id3, err := repo.Insert(ctx, invoices.Invoice{InvoiceNo: "INV-3", Client: "Cid", Amount: decimal.NewFromInt(7), Date: "2026-01-01", Status: invoices.StatusPaid})
	require.NoError(t, err)
	assert.True(t, id1 < id2 && id2 < id3)

	require.NoError(t, repo.UpdateAmount(ctx, id1, decimal.RequireFromString("99.95")))
	require.NoError(t, repo.UpdateStatus(ctx, id1, "Paid"))

	got, err := repo.GetByID(ctx, id1)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("99.95").Equal(got.Amount))
	assert.Equal(t, "Paid", got.Status)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []int64{id2, id1, id3}, []int64{items[0].ID, items[1].ID, items[2].ID})

	_, err = repo.GetByID(ctx, 404)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.ErrorIs(t, repo.UpdateAmount(ctx, 404, decimal.Zero), errs.ErrNotFound)
	assert.ErrorIs(t, repo.UpdateStatus(ctx, 404, "Paid"), errs.ErrNotFound)
}

func TestIntakeRepo_NullAgeAndLike(t *testing.T) {
	repo := sqlite.NewIntakeRepo(openDB(t))
	p := intake.NewProcessor(repo, nil, nil, nil)
	ctx := context.Background()

	_, err := p.Process(ctx, intake.RawFields{ClientName: "Ana Perez", PetName: "Rex", Species: "dog", Age: "n/a", Date: "2026-03-01"})
	require.NoError(t, err)
	_, err = p.Process(ctx, intake.RawFields{ClientName: "Bob", PetName: "Tom", Species: "cat", Age: "3", Date: "2026-03-01"})
	require.NoError(t, err)

	animals, err := p.ListAnimals(ctx)
	require.NoError(t, err)
	require.Len(t, animals, 2)
	assert.Nil(t, animals[0].Age)
	require.NotNil(t, animals[1].Age)
	assert.Equal(t, 3, *animals[1].Age)

	clients, err := p.ListClients(ctx, "perez")
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Ana Perez", clients[0].Name)

	walkIns, err := p.ListWalkIns(ctx)
	require.NoError(t, err)
	require.Len(t, walkIns, 2)
	assert.NotEqual(t, walkIns[0].Ref, walkIns[1].Ref)

	appts, err := p.ListAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, appts, 2)
	assert.Equal(t, intake.AppointmentTime, appts[0].Time)
}

func TestBillingFlowOverSQLite(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()

	invSvc := invoices.NewService(sqlite.NewInvoicesRepo(db), nil)
	trRepo := sqlite.NewTreatmentsRepo(db)
	rec := billing.NewReconciler(trRepo, invSvc, nil, nil)
	trSvc := treatments.NewService(trRepo, rec, nil)
	psSvc := petstatus.NewService(sqlite.NewPetStatusRepo(db), rec, nil)

	for _, typ := range []string{catalog.Checkup, catalog.Vaccination} {
		_, _, err := trSvc.Add(ctx, treatments.AddInput{
			Reason: "visit", Pet: "PetX", Client: "ClientA", TreatmentType: typ, Date: "2026-02-01",
		})
		require.NoError(t, err)
	}

	items, err := invSvc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, decimal.NewFromInt(125).Equal(items[0].Amount))

	_, inv, err := psSvc.UpdateStatus(ctx, petstatus.RecordInput{
		Pet: "PetX", Client: "ClientA", Status: petstatus.StatusDischarged, Date: "2026-02-03",
	})
	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.True(t, decimal.NewFromInt(125).Equal(inv.Amount))
	assert.Equal(t, "PetX", inv.Pet)

	status, ok, err := psSvc.CurrentStatus(ctx, "PetX", "ClientA")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, petstatus.StatusDischarged, status)
}
