package intake_test

import (
	"context"
	"testing"

	"vet-clinic-ledger/internal/adapters/storage/memory"
	"vet-clinic-ledger/internal/domain/intake"
	"vet-clinic-ledger/internal/domain/invoices"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedWalkIns(t *testing.T, p *intake.Processor) {
	t.Helper()
	for _, raw := range []intake.RawFields{
		{ClientName: "Ana", PetName: "Rex", Species: "dog", Breed: "golden retriever", Reason: "checkup", Date: "2026-03-01"},
		{ClientName: "Bob", PetName: "Mish", Species: "CAT", Breed: "siamese", Reason: "vaccine", Date: "2026-03-01"},
		{ClientName: "Cid", PetName: "Toby", Species: "Dog", Breed: "beagle", Reason: "checkup", Date: "2026-03-02"},
		{ClientName: "Dee", PetName: "Kiwi", Species: "parrot", Reason: "wound", Date: "2026-03-02"},
	} {
		_, err := p.Process(context.Background(), raw)
		require.NoError(t, err)
	}
}

func TestClientSummary(t *testing.T) {
	inv := invoices.NewService(memory.NewInvoiceRepo(), nil)
	p := intake.NewProcessor(memory.NewIntakeRepo(), nil, nil, inv)
	ctx := context.Background()
	seedWalkIns(t, p)

	for _, status := range []string{invoices.StatusPaid, invoices.StatusUnpaid, invoices.StatusUnpaid, "paid"} {
		_, err := inv.Create(ctx, invoices.CreateInput{Client: "Ana", Amount: decimal.NewFromInt(10), Date: "2026-03-01", Status: status})
		require.NoError(t, err)
	}

	sum, err := p.ClientSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, sum.Clients)
	assert.Equal(t, 4, sum.Animals)
	assert.Equal(t, invoices.StatusCounts{Total: 4, Paid: 1, Unpaid: 2}, sum.Invoices)
	assert.Equal(t, []intake.SpeciesCount{
		{Species: "Cat", Count: 1},
		{Species: "Dog", Count: 2},
		{Species: "Parrot", Count: 1},
	}, sum.BySpecies)
}

func TestClientSummary_WithoutInvoiceCounter(t *testing.T) {
	p := intake.NewProcessor(memory.NewIntakeRepo(), nil, nil, nil)
	seedWalkIns(t, p)

	sum, err := p.ClientSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, sum.Clients)
	assert.Zero(t, sum.Invoices.Total)
}

func TestAppointmentSummary_CountsPerReason(t *testing.T) {
	p := intake.NewProcessor(memory.NewIntakeRepo(), nil, nil, nil)
	seedWalkIns(t, p)

	sum, err := p.AppointmentSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, sum.Total)
	assert.Equal(t, []intake.ReasonCount{
		{Reason: "checkup", Count: 2},
		{Reason: "vaccine", Count: 1},
		{Reason: "wound", Count: 1},
	}, sum.ByReason)
}

func TestAnimalsBySpecies_GroupsInInsertionOrder(t *testing.T) {
	p := intake.NewProcessor(memory.NewIntakeRepo(), nil, nil, nil)
	seedWalkIns(t, p)

	groups, err := p.AnimalsBySpecies(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 3)

	assert.Equal(t, "Dog", groups[1].Species)
	require.Len(t, groups[1].Animals, 2)
	assert.Equal(t, "Rex", groups[1].Animals[0].PetName)
	assert.Equal(t, "Golden Retriever", groups[1].Animals[0].Breed)
	assert.Equal(t, "Ana", groups[1].Animals[0].OwnerName)
	assert.Equal(t, "Toby", groups[1].Animals[1].PetName)
}

func TestAnimalsBySpecies_Empty(t *testing.T) {
	p := intake.NewProcessor(memory.NewIntakeRepo(), nil, nil, nil)
	groups, err := p.AnimalsBySpecies(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}
