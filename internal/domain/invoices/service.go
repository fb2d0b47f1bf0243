package invoices

import (
	"context"
	"sort"
	"strings"
	"time"

	"vet-clinic-ledger/internal/platform/errs"
	"vet-clinic-ledger/internal/platform/validate"

	"github.com/shopspring/decimal"
)

// OriginManual es el origen (label de métricas) de las facturas cargadas a mano.
const OriginManual = "manual"

// Recorder recibe eventos para métricas.
type Recorder interface {
	InvoiceCreated(origin string)
}

type noopRecorder struct{}

func (noopRecorder) InvoiceCreated(string) {}

type Service struct {
	repo    Repository
	metrics Recorder
}

func NewService(repo Repository, rec Recorder) *Service {
	if rec == nil {
		rec = noopRecorder{}
	}
	return &Service{
		repo:    repo,
		metrics: rec,
	}
}

// NumberFromTimestamp genera "INV-YYYYMMDDhhmmss".
func NumberFromTimestamp(t time.Time) string {
	return "INV-" + t.Format("20060102150405")
}

// NumberFromDate genera "INV-YYYYMMDD" (facturas manuales).
func NumberFromDate(date string) string {
	return "INV-" + strings.ReplaceAll(date, "-", "")
}

type CreateInput struct {
	InvoiceNo string
	Client    string
	Pet       string
	Amount    decimal.Decimal
	Date      string
	Status    string
}

// Create persiste una factura nueva tal cual llega.
func (s *Service) Create(ctx context.Context, in CreateInput) (Invoice, error) {
	inv := Invoice{
		InvoiceNo: in.InvoiceNo,
		Client:    in.Client,
		Pet:       in.Pet,
		Amount:    in.Amount,
		Date:      in.Date,
		Status:    in.Status,
	}

	id, err := s.repo.Insert(ctx, inv)
	if err != nil {
		return Invoice{}, errs.Persistence("insert_invoice", err)
	}
	inv.ID = id
	return inv, nil
}

type ManualInput struct {
	Client string `json:"client" validate:"required"`
	Pet    string `json:"pet" validate:"required"`
	Amount string `json:"amount" validate:"required,numeric"`
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
}

// CreateManual crea una factura cargada a mano: todos los campos son obligatorios
// y el número se deriva de la fecha.
func (s *Service) CreateManual(ctx context.Context, in ManualInput) (Invoice, error) {
	in.Client = strings.TrimSpace(in.Client)
	in.Pet = strings.TrimSpace(in.Pet)
	in.Amount = strings.TrimSpace(in.Amount)
	in.Date = strings.TrimSpace(in.Date)

	if err := validate.Struct(in); err != nil {
		return Invoice{}, err
	}
	amount, err := decimal.NewFromString(in.Amount)
	if err != nil {
		return Invoice{}, errs.Validation("amount", "must be a number")
	}

	inv, err := s.Create(ctx, CreateInput{
		InvoiceNo: NumberFromDate(in.Date),
		Client:    in.Client,
		Pet:       in.Pet,
		Amount:    amount,
		Date:      in.Date,
		Status:    StatusUnpaid,
	})
	if err != nil {
		return Invoice{}, err
	}
	s.metrics.InvoiceCreated(OriginManual)
	return inv, nil
}

// UpdateAmount reemplaza el monto. La suma, si hace falta, es responsabilidad del caller.
func (s *Service) UpdateAmount(ctx context.Context, id int64, amount decimal.Decimal) error {
	return errs.Persistence("update_invoice_amount", s.repo.UpdateAmount(ctx, id, amount))
}

// SetStatus guarda exactamente el string recibido; acá no se valida contra la enumeración.
func (s *Service) SetStatus(ctx context.Context, id int64, status string) error {
	return errs.Persistence("update_invoice_status", s.repo.UpdateStatus(ctx, id, status))
}

func (s *Service) MarkPaid(ctx context.Context, id int64) (Invoice, error) {
	return s.setAndGet(ctx, id, StatusPaid)
}

func (s *Service) MarkUnpaid(ctx context.Context, id int64) (Invoice, error) {
	return s.setAndGet(ctx, id, StatusUnpaid)
}

func (s *Service) setAndGet(ctx context.Context, id int64, status string) (Invoice, error) {
	if err := s.SetStatus(ctx, id, status); err != nil {
		return Invoice{}, err
	}
	return s.Get(ctx, id)
}

func (s *Service) Get(ctx context.Context, id int64) (Invoice, error) {
	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Invoice{}, errs.Persistence("fetch_invoice_by_id", err)
	}
	return inv, nil
}

// List devuelve las facturas por fecha descendente. clientSubstring filtra por
// coincidencia parcial del cliente, sin distinguir mayúsculas; vacío = todas.
func (s *Service) List(ctx context.Context, clientSubstring string) ([]Invoice, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, errs.Persistence("fetch_invoices", err)
	}

	q := strings.ToLower(strings.TrimSpace(clientSubstring))
	if q == "" {
		return items, nil
	}

	out := make([]Invoice, 0, len(items))
	for _, inv := range items {
		if strings.Contains(strings.ToLower(inv.Client), q) {
			out = append(out, inv)
		}
	}
	return out, nil
}

// Revenue suma las facturas con fecha en [from, to] (comparación de strings ISO).
// Límites vacíos no restringen. Solo "Paid" exacto suma como pagado.
func (s *Service) Revenue(ctx context.Context, from, to string) (Revenue, error) {
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)
	if err := checkDate("from", from); err != nil {
		return Revenue{}, err
	}
	if err := checkDate("to", to); err != nil {
		return Revenue{}, err
	}

	items, err := s.List(ctx, "")
	if err != nil {
		return Revenue{}, err
	}

	r := Revenue{From: from, To: to, Total: decimal.Zero, Paid: decimal.Zero, Unpaid: decimal.Zero}
	for _, inv := range items {
		if from != "" && inv.Date < from {
			continue
		}
		if to != "" && inv.Date > to {
			continue
		}
		r.Count++
		r.Total = r.Total.Add(inv.Amount)
		if inv.IsPaid() {
			r.Paid = r.Paid.Add(inv.Amount)
		} else {
			r.Unpaid = r.Unpaid.Add(inv.Amount)
		}
	}
	return r, nil
}

// CountByStatus cuenta todas las facturas y cuántas están Paid / Unpaid.
func (s *Service) CountByStatus(ctx context.Context) (StatusCounts, error) {
	items, err := s.List(ctx, "")
	if err != nil {
		return StatusCounts{}, err
	}

	var c StatusCounts
	for _, inv := range items {
		c.Total++
		switch {
		case inv.IsPaid():
			c.Paid++
		case inv.IsUnpaid():
			c.Unpaid++
		}
	}
	return c, nil
}

// Outstanding lista las facturas Unpaid de la más vieja a la más nueva.
func (s *Service) Outstanding(ctx context.Context) (Outstanding, error) {
	items, err := s.List(ctx, "")
	if err != nil {
		return Outstanding{}, err
	}

	out := Outstanding{Invoices: make([]Invoice, 0), Total: decimal.Zero}
	for _, inv := range items {
		if !inv.IsUnpaid() {
			continue
		}
		out.Invoices = append(out.Invoices, inv)
		out.Total = out.Total.Add(inv.Amount)
	}
	sort.SliceStable(out.Invoices, func(i, j int) bool {
		return out.Invoices[i].Date < out.Invoices[j].Date
	})
	return out, nil
}

func checkDate(field, v string) error {
	if v == "" {
		return nil
	}
	if _, err := time.Parse(DateLayout, v); err != nil {
		return errs.Validation(field, "must be "+DateLayout)
	}
	return nil
}
