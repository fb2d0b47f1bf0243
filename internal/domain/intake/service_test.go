package intake_test

import (
	"context"
	"testing"
	"time"

	"vet-clinic-ledger/internal/adapters/storage/memory"
	"vet-clinic-ledger/internal/domain/intake"
	"vet-clinic-ledger/internal/platform/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countRecorder struct{ n int }

func (c *countRecorder) WalkInProcessed() { c.n++ }

func TestProcess_CreatesClientAnimalAppointment(t *testing.T) {
	repo := memory.NewIntakeRepo()
	rec := &countRecorder{}
	p := intake.NewProcessor(repo, nil, rec, nil)
	ctx := context.Background()

	res, err := p.Process(ctx, intake.RawFields{
		ClientName: " Ana ",
		PetName:    "Mish",
		Species:    "cat",
		Breed:      "siamese",
		Age:        "unknown",
		Reason:     "checkup",
		Date:       "2026-03-01",
	})
	require.NoError(t, err)

	_, err = uuid.Parse(res.WalkIn.Ref)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), res.Client.ID)
	assert.Equal(t, "Cat", res.Animal.Species)
	assert.Equal(t, "Siamese", res.Animal.Breed)
	assert.Nil(t, res.Animal.Age, "unparseable age is stored as null")
	assert.Equal(t, "Ana", res.Animal.OwnerName)
	assert.Equal(t, intake.AppointmentTime, res.Appointment.Time)
	assert.Equal(t, 1, rec.n)

	clients, err := p.ListClients(ctx, "")
	require.NoError(t, err)
	animals, err := p.ListAnimals(ctx)
	require.NoError(t, err)
	appts, err := p.ListAppointments(ctx)
	require.NoError(t, err)
	walkIns, err := p.ListWalkIns(ctx)
	require.NoError(t, err)

	assert.Len(t, clients, 1)
	assert.Len(t, animals, 1)
	assert.Len(t, appts, 1)
	assert.Len(t, walkIns, 1)
}

func TestProcess_DefaultsDateToToday(t *testing.T) {
	p := intake.NewProcessor(memory.NewIntakeRepo(), nil, nil, nil)
	intake.SetNowForTest(p, time.Date(2026, 5, 6, 12, 0, 0, 0, time.UTC))

	res, err := p.Process(context.Background(), intake.RawFields{ClientName: "Ana", PetName: "Rex"})
	require.NoError(t, err)
	assert.Equal(t, "2026-05-06", res.Appointment.Date)
	assert.Equal(t, "2026-05-06", res.WalkIn.Date)
}

func TestProcess_RequiresClientAndPet(t *testing.T) {
	repo := memory.NewIntakeRepo()
	p := intake.NewProcessor(repo, nil, nil, nil)

	_, err := p.Process(context.Background(), intake.RawFields{ClientName: "   ", PetName: "Rex", Date: "2026-03-01"})
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))

	_, err = p.Process(context.Background(), intake.RawFields{ClientName: "Ana", Date: "2026-03-01"})
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))

	_, err = p.Process(context.Background(), intake.RawFields{ClientName: "Ana", PetName: "Rex", Date: "03/01/2026"})
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))

	clients, err := repo.ListClients(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, clients)
}

func TestListClients_KeywordIsCaseInsensitive(t *testing.T) {
	p := intake.NewProcessor(memory.NewIntakeRepo(), nil, nil, nil)
	ctx := context.Background()

	for _, name := range []string{"Ana Perez", "Bob", "Mariana"} {
		_, err := p.Process(ctx, intake.RawFields{ClientName: name, PetName: "X", Date: "2026-03-01"})
		require.NoError(t, err)
	}

	got, err := p.ListClients(ctx, "ANA")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Ana Perez", got[0].Name)
	assert.Equal(t, "Mariana", got[1].Name)
}

func TestCreateAppointment(t *testing.T) {
	p := intake.NewProcessor(memory.NewIntakeRepo(), nil, nil, nil)

	ap, err := p.CreateAppointment(context.Background(), intake.AppointmentInput{
		ClientName: " Ana ", PetName: "Rex", Date: "2026-03-02", Time: "14:30", Reason: "dental",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), ap.ID)
	assert.Equal(t, "Ana", ap.ClientName)

	_, err = p.CreateAppointment(context.Background(), intake.AppointmentInput{
		ClientName: "Ana", Date: "2026-03-02", Time: "2pm",
	})
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}
