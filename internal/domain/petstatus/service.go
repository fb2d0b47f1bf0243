package petstatus

import (
	"context"
	"strings"
	"time"

	"vet-clinic-ledger/internal/domain/invoices"
	"vet-clinic-ledger/internal/platform/errs"
	"vet-clinic-ledger/internal/platform/validate"
)

// Discharger emite la factura final al dar de alta. Lo implementa billing.Reconciler.
type Discharger interface {
	OnDischarge(ctx context.Context, client, pet string) (invoices.Invoice, error)
}

// Recorder recibe eventos para métricas.
type Recorder interface {
	PetStatusRecorded(status string)
}

type noopRecorder struct{}

func (noopRecorder) PetStatusRecorded(string) {}

type Service struct {
	repo       Repository
	discharger Discharger
	metrics    Recorder
	now        func() time.Time
}

func NewService(repo Repository, d Discharger, rec Recorder) *Service {
	if rec == nil {
		rec = noopRecorder{}
	}
	return &Service{
		repo:       repo,
		discharger: d,
		metrics:    rec,
		now:        time.Now,
	}
}

type RecordInput struct {
	Pet    string `json:"pet" validate:"required"`
	Client string `json:"client" validate:"required"`
	Status string `json:"status" validate:"required"`
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Notes  string `json:"notes"`
}

// DischargeBillingError indica que el evento de alta quedó registrado pero la
// factura final no. No hay rollback del evento.
type DischargeBillingError struct {
	Event Event
	Err   error
}

func (e *DischargeBillingError) Error() string {
	return "status recorded but discharge billing failed: " + e.Err.Error()
}

func (e *DischargeBillingError) Unwrap() error { return e.Err }

// RecordEvent agrega una fila al log. No valida la transición.
func (s *Service) RecordEvent(ctx context.Context, in RecordInput) (Event, error) {
	if err := validate.Struct(in); err != nil {
		return Event{}, err
	}

	e := Event{
		Pet:    in.Pet,
		Client: in.Client,
		Status: in.Status,
		Date:   in.Date,
		Notes:  in.Notes,
	}
	id, err := s.repo.Insert(ctx, e)
	if err != nil {
		return Event{}, errs.Persistence("insert_pet_status", err)
	}
	e.ID = id
	s.metrics.PetStatusRecorded(e.Status)
	return e, nil
}

// UpdateStatus registra el evento y, si el estado es Discharged, emite la
// factura de alta. inv es nil para cualquier otro estado.
func (s *Service) UpdateStatus(ctx context.Context, in RecordInput) (Event, *invoices.Invoice, error) {
	e, err := s.RecordEvent(ctx, in)
	if err != nil {
		return Event{}, nil, err
	}
	if !MatchesStatus(e.Status, StatusDischarged) {
		return e, nil, nil
	}

	inv, err := s.discharger.OnDischarge(ctx, e.Client, e.Pet)
	if err != nil {
		return e, nil, &DischargeBillingError{Event: e, Err: err}
	}
	return e, &inv, nil
}

// Transition cambia el estado con fecha de hoy y sin notas (acción desde la
// lista de internados).
func (s *Service) Transition(ctx context.Context, pet, client, status string) (Event, *invoices.Invoice, error) {
	return s.UpdateStatus(ctx, RecordInput{
		Pet:    pet,
		Client: client,
		Status: status,
		Date:   s.today(),
	})
}

// AddConfinedNote agrega otro evento Confined con la nota y fecha de hoy.
func (s *Service) AddConfinedNote(ctx context.Context, pet, client, note string) (Event, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return Event{}, errs.Validation("notes", "is required")
	}
	return s.RecordEvent(ctx, RecordInput{
		Pet:    pet,
		Client: client,
		Status: StatusConfined,
		Date:   s.today(),
		Notes:  note,
	})
}

// CurrentStatus relee el log completo en cada llamada.
func (s *Service) CurrentStatus(ctx context.Context, pet, client string) (string, bool, error) {
	items, err := s.List(ctx)
	if err != nil {
		return "", false, err
	}
	status, ok := CurrentStatus(items, pet, client)
	return status, ok, nil
}

func (s *Service) ListByStatus(ctx context.Context, status string) ([]Event, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByStatus(items, status), nil
}

func (s *Service) ListConfined(ctx context.Context) ([]Event, error) {
	return s.ListByStatus(ctx, StatusConfined)
}

// List pasa directo a fetch_pet_status (fecha desc).
func (s *Service) List(ctx context.Context) ([]Event, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, errs.Persistence("fetch_pet_status", err)
	}
	return items, nil
}

func (s *Service) today() string {
	return s.now().Format(invoices.DateLayout)
}
