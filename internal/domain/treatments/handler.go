package treatments

import (
	"encoding/json"
	"errors"
	"net/http"

	"vet-clinic-ledger/internal/domain/catalog"
	"vet-clinic-ledger/internal/domain/invoices"
	"vet-clinic-ledger/internal/platform/errs"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/treatments", func(tr chi.Router) {
		tr.Post("/", addTreatmentHandler(svc))
		tr.Get("/", listTreatmentsHandler(svc))
		tr.Get("/suggest", suggestHandler(svc))
		tr.Get("/summary", summaryHandler(svc))
	})
	r.Get("/catalog", catalogHandler())
}

type treatmentResponse struct {
	ID            int64  `json:"id"`
	Reason        string `json:"reason"`
	Pet           string `json:"pet"`
	Client        string `json:"client"`
	TreatmentType string `json:"treatment_type"`
	Date          string `json:"date"`
	Confined      string `json:"confined"`
	Notes         string `json:"notes"`
}

type addTreatmentResponse struct {
	Treatment treatmentResponse         `json:"treatment"`
	Invoice   *invoices.InvoiceResponse `json:"invoice,omitempty"`
	// BillingError se completa cuando el tratamiento quedó guardado pero la factura no.
	BillingError string `json:"billing_error,omitempty"`
}

type suggestResponse struct {
	Reason        string `json:"reason"`
	TreatmentType string `json:"treatment_type"`
}

type typeSummaryResponse struct {
	TreatmentType string          `json:"treatment_type"`
	Count         int             `json:"count"`
	Known         bool            `json:"known"`
	Revenue       decimal.Decimal `json:"revenue"`
}

type summaryResponse struct {
	Total   int                   `json:"total"`
	Types   []typeSummaryResponse `json:"types"`
	Revenue decimal.Decimal       `json:"revenue"`
}

// addTreatmentHandler godoc
// @Summary Registrar tratamiento
// @Description Guarda el tratamiento y suma su costo a la primera factura Unpaid del cliente (o crea una nueva).
// @Tags treatments
// @Accept json
// @Produce json
// @Param payload body AddInput true "Datos del tratamiento"
// @Success 201 {object} addTreatmentResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 502 {object} addTreatmentResponse "tratamiento guardado, facturación fallida"
// @Router /treatments [post]
func addTreatmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		t, inv, err := svc.Add(r.Context(), req)
		if err != nil {
			var be *BillingStepError
			if errors.As(err, &be) {
				writeJSON(w, http.StatusBadGateway, addTreatmentResponse{
					Treatment:    toResponse(be.Treatment),
					BillingError: errs.PublicMessage(be.Err),
				})
				return
			}
			http.Error(w, errs.PublicMessage(err), errs.HTTPStatus(err))
			return
		}

		invResp := invoices.ToResponse(inv)
		writeJSON(w, http.StatusCreated, addTreatmentResponse{
			Treatment: toResponse(t),
			Invoice:   &invResp,
		})
	}
}

// listTreatmentsHandler godoc
// @Summary Listar tratamientos
// @Tags treatments
// @Produce json
// @Success 200 {array} treatmentResponse
// @Router /treatments [get]
func listTreatmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, errs.PublicMessage(err), errs.HTTPStatus(err))
			return
		}

		out := make([]treatmentResponse, 0, len(items))
		for _, t := range items {
			out = append(out, toResponse(t))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// suggestHandler godoc
// @Summary Sugerir tipo de tratamiento
// @Description Deriva un tipo del catálogo a partir del motivo de la cita (por defecto Checkup).
// @Tags treatments
// @Produce json
// @Param reason query string false "Motivo de la cita"
// @Success 200 {object} suggestResponse
// @Router /treatments/suggest [get]
func suggestHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reason := r.URL.Query().Get("reason")
		writeJSON(w, http.StatusOK, suggestResponse{
			Reason:        reason,
			TreatmentType: svc.Suggest(reason),
		})
	}
}

// summaryHandler godoc
// @Summary Resumen de tratamientos
// @Description Cantidad y facturación por tipo, valorizada con el catálogo.
// @Tags treatments
// @Produce json
// @Success 200 {object} summaryResponse
// @Router /treatments/summary [get]
func summaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sum, err := svc.Summary(r.Context())
		if err != nil {
			http.Error(w, errs.PublicMessage(err), errs.HTTPStatus(err))
			return
		}

		out := summaryResponse{
			Total:   sum.Total,
			Types:   make([]typeSummaryResponse, 0, len(sum.Types)),
			Revenue: sum.Revenue,
		}
		for _, ts := range sum.Types {
			out.Types = append(out.Types, typeSummaryResponse{
				TreatmentType: ts.Type,
				Count:         ts.Count,
				Known:         ts.Known,
				Revenue:       ts.Revenue,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// catalogHandler godoc
// @Summary Catálogo de costos
// @Tags treatments
// @Produce json
// @Success 200 {array} catalog.Entry
// @Router /catalog [get]
func catalogHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, catalog.Default().Entries())
	}
}

func toResponse(t Treatment) treatmentResponse {
	return treatmentResponse{
		ID:            t.ID,
		Reason:        t.Reason,
		Pet:           t.Pet,
		Client:        t.Client,
		TreatmentType: t.TreatmentType,
		Date:          t.Date,
		Confined:      t.Confined,
		Notes:         t.Notes,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
