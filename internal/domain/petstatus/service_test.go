package petstatus_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"vet-clinic-ledger/internal/adapters/storage/memory"
	"vet-clinic-ledger/internal/domain/invoices"
	"vet-clinic-ledger/internal/domain/petstatus"
	"vet-clinic-ledger/internal/platform/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type discharge struct{ client, pet string }

type fakeDischarger struct {
	calls []discharge
	err   error
}

func (d *fakeDischarger) OnDischarge(ctx context.Context, client, pet string) (invoices.Invoice, error) {
	d.calls = append(d.calls, discharge{client, pet})
	if d.err != nil {
		return invoices.Invoice{}, d.err
	}
	return invoices.Invoice{ID: 9, Client: client, Pet: pet, Amount: decimal.NewFromInt(125), Status: invoices.StatusUnpaid}, nil
}

func newService(d *fakeDischarger) *petstatus.Service {
	return petstatus.NewService(memory.NewPetStatusRepo(), d, nil)
}

func record(t *testing.T, svc *petstatus.Service, status, date string) petstatus.Event {
	t.Helper()
	e, err := svc.RecordEvent(context.Background(), petstatus.RecordInput{
		Pet: "Rex", Client: "Ana", Status: status, Date: date,
	})
	require.NoError(t, err)
	return e
}

func TestRecordEvent_AnyTransitionAllowed(t *testing.T) {
	svc := newService(&fakeDischarger{})

	record(t, svc, petstatus.StatusDischarged, "2026-01-01")
	record(t, svc, petstatus.StatusAppointment, "2026-01-02")
	record(t, svc, "Something Else", "2026-01-03")

	status, ok, err := svc.CurrentStatus(context.Background(), "Rex", "Ana")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Something Else", status)
}

func TestCurrentStatus_IgnoresDateField(t *testing.T) {
	svc := newService(&fakeDischarger{})

	record(t, svc, petstatus.StatusDailyTreatment, "2026-05-30")
	record(t, svc, petstatus.StatusConfined, "2026-05-01")

	status, ok, err := svc.CurrentStatus(context.Background(), "Rex", "Ana")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, petstatus.StatusConfined, status)

	_, ok, err = svc.CurrentStatus(context.Background(), "Rex", "Nobody")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRecordEvent_Validation(t *testing.T) {
	svc := newService(&fakeDischarger{})

	_, err := svc.RecordEvent(context.Background(), petstatus.RecordInput{Pet: "Rex", Status: "Confined", Date: "2026-01-01"})
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))

	_, err = svc.RecordEvent(context.Background(), petstatus.RecordInput{Pet: "Rex", Client: "Ana", Status: "Confined", Date: "yesterday"})
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUpdateStatus_DischargeTriggersBilling(t *testing.T) {
	d := &fakeDischarger{}
	svc := newService(d)

	e, inv, err := svc.UpdateStatus(context.Background(), petstatus.RecordInput{
		Pet: "Rex", Client: "Ana", Status: petstatus.StatusConfined, Date: "2026-01-01",
	})
	require.NoError(t, err)
	assert.Nil(t, inv)
	assert.Empty(t, d.calls)
	assert.Equal(t, int64(1), e.ID)

	_, inv, err = svc.UpdateStatus(context.Background(), petstatus.RecordInput{
		Pet: "Rex", Client: "Ana", Status: "discharged", Date: "2026-01-05",
	})
	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, int64(9), inv.ID)
	assert.Equal(t, []discharge{{"Ana", "Rex"}}, d.calls)
}

func TestUpdateStatus_DischargeBillingFailureKeepsEvent(t *testing.T) {
	d := &fakeDischarger{err: errs.Persistence("insert_invoice", errors.New("readonly database"))}
	svc := newService(d)

	_, _, err := svc.UpdateStatus(context.Background(), petstatus.RecordInput{
		Pet: "Rex", Client: "Ana", Status: petstatus.StatusDischarged, Date: "2026-01-05",
	})
	require.Error(t, err)

	var be *petstatus.DischargeBillingError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, petstatus.StatusDischarged, be.Event.Status)
	assert.True(t, errs.IsPersistence(err))

	status, ok, err := svc.CurrentStatus(context.Background(), "Rex", "Ana")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, petstatus.StatusDischarged, status)
}

func TestListByStatus_CaseInsensitiveAndNotDeduped(t *testing.T) {
	svc := newService(&fakeDischarger{})

	record(t, svc, petstatus.StatusConfined, "2026-01-01")
	record(t, svc, petstatus.StatusDailyTreatment, "2026-01-02")
	record(t, svc, "confined", "2026-01-03")

	items, err := svc.ListByStatus(context.Background(), "CONFINED")
	require.NoError(t, err)
	require.Len(t, items, 2)
	// Orden del ledger: fecha desc.
	assert.Equal(t, "2026-01-03", items[0].Date)
	assert.Equal(t, "2026-01-01", items[1].Date)

	confined, err := svc.ListConfined(context.Background())
	require.NoError(t, err)
	assert.Equal(t, items, confined)
}

func TestAddConfinedNote(t *testing.T) {
	svc := newService(&fakeDischarger{})
	petstatus.SetNowForTest(svc, time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC))

	e, err := svc.AddConfinedNote(context.Background(), "Rex", "Ana", "  ate well  ")
	require.NoError(t, err)
	assert.Equal(t, petstatus.StatusConfined, e.Status)
	assert.Equal(t, "2026-04-02", e.Date)
	assert.Equal(t, "ate well", e.Notes)

	_, err = svc.AddConfinedNote(context.Background(), "Rex", "Ana", "   ")
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestTransition_UsesTodayAndDischarges(t *testing.T) {
	d := &fakeDischarger{}
	svc := newService(d)
	petstatus.SetNowForTest(svc, time.Date(2026, 4, 3, 8, 0, 0, 0, time.UTC))

	e, inv, err := svc.Transition(context.Background(), "Rex", "Ana", petstatus.StatusDischarged)
	require.NoError(t, err)
	assert.Equal(t, "2026-04-03", e.Date)
	assert.Empty(t, e.Notes)
	require.NotNil(t, inv)
	assert.Len(t, d.calls, 1)
}
