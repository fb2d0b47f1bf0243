package treatments

import (
	"context"
	"strings"

	"vet-clinic-ledger/internal/domain/catalog"
	"vet-clinic-ledger/internal/domain/invoices"
	"vet-clinic-ledger/internal/platform/errs"
	"vet-clinic-ledger/internal/platform/validate"
)

// Biller es el paso de facturación que se dispara una vez por tratamiento.
// Lo implementa billing.Reconciler; la interfaz evita el import circular.
type Biller interface {
	OnTreatmentAdded(ctx context.Context, client, treatmentType string) (invoices.Invoice, error)
}

// Recorder recibe eventos para métricas.
type Recorder interface {
	TreatmentRecorded()
}

type noopRecorder struct{}

func (noopRecorder) TreatmentRecorded() {}

type Service struct {
	repo    Repository
	biller  Biller
	metrics Recorder
}

func NewService(repo Repository, biller Biller, rec Recorder) *Service {
	if rec == nil {
		rec = noopRecorder{}
	}
	return &Service{
		repo:    repo,
		biller:  biller,
		metrics: rec,
	}
}

type AddInput struct {
	Reason        string `json:"reason" validate:"required"`
	Pet           string `json:"pet" validate:"required"`
	Client        string `json:"client" validate:"required"`
	TreatmentType string `json:"treatment_type" validate:"required"`
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
	Confined      bool   `json:"confined"`
	Notes         string `json:"notes"`
}

// BillingStepError indica que el tratamiento quedó guardado pero el paso de
// facturación falló. No se hace rollback: el caller decide si reintenta la
// facturación (reintentar Add duplicaría el tratamiento).
type BillingStepError struct {
	Treatment Treatment
	Err       error
}

func (e *BillingStepError) Error() string {
	return "treatment recorded but billing failed: " + e.Err.Error()
}

func (e *BillingStepError) Unwrap() error { return e.Err }

// Add registra el tratamiento y después llama OnTreatmentAdded exactamente una vez.
// Los valores se guardan tal cual llegan (sin recortar) para que la facturación
// por match exacto coincida con lo almacenado.
func (s *Service) Add(ctx context.Context, in AddInput) (Treatment, invoices.Invoice, error) {
	if err := validate.Struct(in); err != nil {
		return Treatment{}, invoices.Invoice{}, err
	}

	t := Treatment{
		Reason:        in.Reason,
		Pet:           in.Pet,
		Client:        in.Client,
		TreatmentType: in.TreatmentType,
		Date:          in.Date,
		Confined:      ConfinedNo,
		Notes:         in.Notes,
	}
	if in.Confined {
		t.Confined = ConfinedYes
	}
	if strings.TrimSpace(t.Notes) == "" {
		t.Notes = DefaultNotes
	}

	id, err := s.repo.Insert(ctx, t)
	if err != nil {
		return Treatment{}, invoices.Invoice{}, errs.Persistence("insert_treatment", err)
	}
	t.ID = id
	s.metrics.TreatmentRecorded()

	inv, err := s.biller.OnTreatmentAdded(ctx, t.Client, t.TreatmentType)
	if err != nil {
		return t, invoices.Invoice{}, &BillingStepError{Treatment: t, Err: err}
	}
	return t, inv, nil
}

// List pasa directo a fetch_treatments.
func (s *Service) List(ctx context.Context) ([]Treatment, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, errs.Persistence("fetch_treatments", err)
	}
	return items, nil
}

// Suggest propone el tipo de tratamiento para el motivo de una cita.
func (s *Service) Suggest(reason string) string {
	return catalog.Suggest(reason)
}
