// Package billing convierte la actividad de tratamientos en facturas.
//
// El Reconciler no guarda estado entre llamadas: cada operación relee
// tratamientos y facturas del storage. Tampoco decide cuándo se factura;
// OnTreatmentAdded debe invocarse exactamente una vez por tratamiento
// (lo hace treatments.Service) porque repetirlo cobra dos veces.
package billing

import (
	"context"
	"time"

	"vet-clinic-ledger/internal/domain/catalog"
	"vet-clinic-ledger/internal/domain/invoices"
	"vet-clinic-ledger/internal/domain/treatments"
	"vet-clinic-ledger/internal/platform/errs"
	"vet-clinic-ledger/internal/platform/logger"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Orígenes de factura (label de métricas).
const (
	OriginTreatment = "treatment"
	OriginDischarge = "discharge"
)

// Recorder recibe eventos para métricas.
type Recorder interface {
	InvoiceCreated(origin string)
	InvoiceIncremented()
}

type noopRecorder struct{}

func (noopRecorder) InvoiceCreated(string) {}
func (noopRecorder) InvoiceIncremented()   {}

type Reconciler struct {
	treatments treatments.Repository
	invoices   *invoices.Service
	catalog    *catalog.Catalog

	log     logger.Logger
	metrics Recorder
	tracer  trace.Tracer

	now func() time.Time
}

// NewReconciler usa catalog.Default(). log y rec pueden ser nil.
func NewReconciler(tr treatments.Repository, inv *invoices.Service, log logger.Logger, rec Recorder) *Reconciler {
	if log == nil {
		log = logger.Nop()
	}
	if rec == nil {
		rec = noopRecorder{}
	}
	return &Reconciler{
		treatments: tr,
		invoices:   inv,
		catalog:    catalog.Default(),
		log:        log,
		metrics:    rec,
		tracer:     otel.Tracer("vet-clinic-ledger/billing"),
		now:        time.Now,
	}
}

// ComputeTotal suma el costo de catálogo de todos los tratamientos del cliente.
// El match es exacto: sin normalizar mayúsculas ni espacios.
func (r *Reconciler) ComputeTotal(ctx context.Context, client string) (decimal.Decimal, error) {
	return r.computeTotal(ctx, client, nil)
}

// ComputeTotalForPet restringe además a pet (match exacto).
func (r *Reconciler) ComputeTotalForPet(ctx context.Context, client, pet string) (decimal.Decimal, error) {
	return r.computeTotal(ctx, client, &pet)
}

func (r *Reconciler) computeTotal(ctx context.Context, client string, pet *string) (decimal.Decimal, error) {
	ctx, span := r.tracer.Start(ctx, "billing.compute_total", trace.WithAttributes(
		attribute.String("client", client),
	))
	defer span.End()

	items, err := r.treatments.List(ctx)
	if err != nil {
		err = errs.Persistence("fetch_treatments", err)
		fail(span, err)
		return decimal.Zero, err
	}
	return Sum(r.catalog, items, client, pet), nil
}

// Sum es el fold puro detrás de ComputeTotal; el orden de items no afecta el resultado.
func Sum(c *catalog.Catalog, items []treatments.Treatment, client string, pet *string) decimal.Decimal {
	total := decimal.Zero
	for _, t := range items {
		if t.Client != client {
			continue
		}
		if pet != nil && t.Pet != *pet {
			continue
		}
		total = total.Add(c.Lookup(t.TreatmentType))
	}
	return total
}

// OnTreatmentAdded suma el costo de treatmentType a la primera factura Unpaid del
// cliente en orden de ledger (fecha desc). Si no hay ninguna, crea una nueva con
// pet vacío y número derivado del timestamp actual.
func (r *Reconciler) OnTreatmentAdded(ctx context.Context, client, treatmentType string) (invoices.Invoice, error) {
	ctx, span := r.tracer.Start(ctx, "billing.on_treatment_added", trace.WithAttributes(
		attribute.String("client", client),
		attribute.String("treatment_type", treatmentType),
	))
	defer span.End()

	cost := r.catalog.Lookup(treatmentType)

	items, err := r.invoices.List(ctx, "")
	if err != nil {
		fail(span, err)
		return invoices.Invoice{}, err
	}

	if target, ok := firstUnpaid(items, client); ok {
		target.Amount = target.Amount.Add(cost)
		if err := r.invoices.UpdateAmount(ctx, target.ID, target.Amount); err != nil {
			fail(span, err)
			return invoices.Invoice{}, err
		}
		r.metrics.InvoiceIncremented()
		span.SetAttributes(attribute.Int64("invoice_id", target.ID))
		r.log.Info("invoice incremented", map[string]any{
			"invoice_id": target.ID,
			"client":     client,
			"cost":       cost.String(),
			"amount":     target.Amount.String(),
		})
		return target, nil
	}

	now := r.now()
	inv, err := r.invoices.Create(ctx, invoices.CreateInput{
		InvoiceNo: invoices.NumberFromTimestamp(now),
		Client:    client,
		Pet:       "",
		Amount:    cost,
		Date:      now.Format(invoices.DateLayout),
		Status:    invoices.StatusUnpaid,
	})
	if err != nil {
		fail(span, err)
		return invoices.Invoice{}, err
	}
	r.metrics.InvoiceCreated(OriginTreatment)
	span.SetAttributes(attribute.Int64("invoice_id", inv.ID))
	r.log.Info("invoice created", map[string]any{
		"invoice_id": inv.ID,
		"invoice_no": inv.InvoiceNo,
		"client":     client,
		"origin":     OriginTreatment,
		"amount":     inv.Amount.String(),
	})
	return inv, nil
}

// OnDischarge crea siempre una factura nueva por el total histórico del par
// (client, pet). No se concilia con las facturas armadas por OnTreatmentAdded,
// así que el mismo cargo puede quedar en dos facturas.
func (r *Reconciler) OnDischarge(ctx context.Context, client, pet string) (invoices.Invoice, error) {
	ctx, span := r.tracer.Start(ctx, "billing.on_discharge", trace.WithAttributes(
		attribute.String("client", client),
		attribute.String("pet", pet),
	))
	defer span.End()

	total, err := r.ComputeTotalForPet(ctx, client, pet)
	if err != nil {
		fail(span, err)
		return invoices.Invoice{}, err
	}

	now := r.now()
	inv, err := r.invoices.Create(ctx, invoices.CreateInput{
		InvoiceNo: invoices.NumberFromTimestamp(now),
		Client:    client,
		Pet:       pet,
		Amount:    total,
		Date:      now.Format(invoices.DateLayout),
		Status:    invoices.StatusUnpaid,
	})
	if err != nil {
		fail(span, err)
		return invoices.Invoice{}, err
	}
	r.metrics.InvoiceCreated(OriginDischarge)
	span.SetAttributes(attribute.Int64("invoice_id", inv.ID))
	r.log.Info("discharge invoice created", map[string]any{
		"invoice_id": inv.ID,
		"invoice_no": inv.InvoiceNo,
		"client":     client,
		"pet":        pet,
		"amount":     inv.Amount.String(),
	})
	return inv, nil
}

func firstUnpaid(items []invoices.Invoice, client string) (invoices.Invoice, bool) {
	for _, inv := range items {
		if inv.IsUnpaid() && inv.Client == client {
			return inv, true
		}
	}
	return invoices.Invoice{}, false
}

func fail(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
