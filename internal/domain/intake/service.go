package intake

import (
	"context"
	"strings"
	"time"

	"vet-clinic-ledger/internal/platform/errs"
	"vet-clinic-ledger/internal/platform/logger"
	"vet-clinic-ledger/internal/platform/validate"

	"github.com/google/uuid"
)

// Recorder recibe eventos para métricas.
type Recorder interface {
	WalkInProcessed()
}

type noopRecorder struct{}

func (noopRecorder) WalkInProcessed() {}

// Processor normaliza walk-ins y los persiste como cliente, animal y turno.
// No depende de billing: la recepción nunca factura.
type Processor struct {
	repo     Repository
	invoices InvoiceCounter
	log      logger.Logger
	metrics  Recorder
	now      func() time.Time
}

// NewProcessor: log, rec e inv pueden ser nil. inv solo se usa en ClientSummary.
func NewProcessor(repo Repository, log logger.Logger, rec Recorder, inv InvoiceCounter) *Processor {
	if log == nil {
		log = logger.Nop()
	}
	if rec == nil {
		rec = noopRecorder{}
	}
	if inv == nil {
		inv = noopCounter{}
	}
	return &Processor{
		repo:     repo,
		invoices: inv,
		log:      log,
		metrics:  rec,
		now:      time.Now,
	}
}

// Result son los registros creados por un walk-in, con sus ids.
type Result struct {
	WalkIn      WalkIn
	Client      Client
	Animal      Animal
	Appointment Appointment
}

type walkInCheck struct {
	ClientName string `json:"client_name" validate:"required"`
	PetName    string `json:"pet_name" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
}

// Process guarda el walk-in y después cliente, animal y turno. Cada insert se
// confirma por separado: si uno falla, los anteriores quedan.
func (p *Processor) Process(ctx context.Context, raw RawFields) (Result, error) {
	if strings.TrimSpace(raw.Date) == "" {
		raw.Date = p.now().Format("2006-01-02")
	}

	c, a, ap := Normalize(raw)
	if err := validate.Struct(walkInCheck{ClientName: c.Name, PetName: a.PetName, Date: ap.Date}); err != nil {
		return Result{}, err
	}

	w := WalkIn{
		Ref:        uuid.NewString(),
		ClientName: c.Name,
		Contact:    c.Contact,
		Address:    c.Address,
		PetName:    a.PetName,
		Species:    a.Species,
		Breed:      a.Breed,
		Age:        a.Age,
		Reason:     ap.Reason,
		Date:       ap.Date,
	}

	var err error
	if w.ID, err = p.repo.InsertWalkIn(ctx, w); err != nil {
		return Result{}, errs.Persistence("insert_walkin", err)
	}
	if c.ID, err = p.repo.InsertClient(ctx, c); err != nil {
		return Result{}, errs.Persistence("insert_client", err)
	}
	if a.ID, err = p.repo.InsertAnimal(ctx, a); err != nil {
		return Result{}, errs.Persistence("insert_animal", err)
	}
	if ap.ID, err = p.repo.InsertAppointment(ctx, ap); err != nil {
		return Result{}, errs.Persistence("insert_appointment", err)
	}

	p.metrics.WalkInProcessed()
	p.log.Info("walk-in processed", map[string]any{
		"ref":    w.Ref,
		"client": c.Name,
		"pet":    a.PetName,
	})
	return Result{WalkIn: w, Client: c, Animal: a, Appointment: ap}, nil
}

type AppointmentInput struct {
	ClientName string `json:"client_name" validate:"required"`
	PetName    string `json:"pet_name"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Time       string `json:"time" validate:"required,datetime=15:04"`
	Reason     string `json:"reason"`
}

// CreateAppointment da de alta un turno cargado a mano.
func (p *Processor) CreateAppointment(ctx context.Context, in AppointmentInput) (Appointment, error) {
	ap := Appointment{
		ClientName: strings.TrimSpace(in.ClientName),
		PetName:    strings.TrimSpace(in.PetName),
		Date:       strings.TrimSpace(in.Date),
		Time:       strings.TrimSpace(in.Time),
		Reason:     strings.TrimSpace(in.Reason),
	}
	if err := validate.Struct(AppointmentInput{
		ClientName: ap.ClientName,
		PetName:    ap.PetName,
		Date:       ap.Date,
		Time:       ap.Time,
		Reason:     ap.Reason,
	}); err != nil {
		return Appointment{}, err
	}

	id, err := p.repo.InsertAppointment(ctx, ap)
	if err != nil {
		return Appointment{}, errs.Persistence("insert_appointment", err)
	}
	ap.ID = id
	return ap, nil
}

func (p *Processor) ListWalkIns(ctx context.Context) ([]WalkIn, error) {
	items, err := p.repo.ListWalkIns(ctx)
	return items, errs.Persistence("fetch_walkins", err)
}

func (p *Processor) ListClients(ctx context.Context, keyword string) ([]Client, error) {
	items, err := p.repo.ListClients(ctx, strings.TrimSpace(keyword))
	return items, errs.Persistence("fetch_clients", err)
}

func (p *Processor) ListAnimals(ctx context.Context) ([]Animal, error) {
	items, err := p.repo.ListAnimals(ctx)
	return items, errs.Persistence("fetch_animals", err)
}

func (p *Processor) ListAppointments(ctx context.Context) ([]Appointment, error) {
	items, err := p.repo.ListAppointments(ctx)
	return items, errs.Persistence("fetch_appointments", err)
}
