package invoices

import (
	"encoding/json"
	"net/http"
	"strconv"

	"vet-clinic-ledger/internal/platform/errs"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/invoices", func(ir chi.Router) {
		ir.Post("/", createManualHandler(svc))
		ir.Get("/", listInvoicesHandler(svc))

		// Reportes (datos estructurados; el formateo a texto queda afuera)
		ir.Get("/revenue", revenueHandler(svc))
		ir.Get("/outstanding", outstandingHandler(svc))

		ir.Get("/{invoiceID}", getInvoiceHandler(svc))
		ir.Post("/{invoiceID}/pay", setStatusHandler(svc, StatusPaid))
		ir.Post("/{invoiceID}/unpay", setStatusHandler(svc, StatusUnpaid))
	})
}

// InvoiceResponse representa una factura devuelta por la API.
type InvoiceResponse struct {
	ID        int64           `json:"id"`
	InvoiceNo string          `json:"invoice_no"`
	Client    string          `json:"client"`
	Pet       string          `json:"pet"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
	Status    string          `json:"status"`
}

type revenueResponse struct {
	From   string          `json:"from,omitempty"`
	To     string          `json:"to,omitempty"`
	Count  int             `json:"count"`
	Total  decimal.Decimal `json:"total"`
	Paid   decimal.Decimal `json:"paid"`
	Unpaid decimal.Decimal `json:"unpaid"`
}

type outstandingResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
	Total    decimal.Decimal   `json:"total"`
}

// createManualHandler godoc
// @Summary Crear factura manual
// @Description Crea una factura Unpaid con número INV-YYYYMMDD. Todos los campos son obligatorios y amount debe ser numérico.
// @Tags invoices
// @Accept json
// @Produce json
// @Param payload body ManualInput true "Datos de la factura"
// @Success 201 {object} InvoiceResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Router /invoices [post]
func createManualHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ManualInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		inv, err := svc.CreateManual(r.Context(), req)
		if err != nil {
			http.Error(w, errs.PublicMessage(err), errs.HTTPStatus(err))
			return
		}

		writeJSON(w, http.StatusCreated, ToResponse(inv))
	}
}

// listInvoicesHandler godoc
// @Summary Listar facturas
// @Description Lista facturas por fecha descendente. `client` filtra por coincidencia parcial.
// @Tags invoices
// @Produce json
// @Param client query string false "Parte del nombre del cliente"
// @Success 200 {array} InvoiceResponse
// @Failure 500 {string} string "internal error"
// @Router /invoices [get]
func listInvoicesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), r.URL.Query().Get("client"))
		if err != nil {
			http.Error(w, errs.PublicMessage(err), errs.HTTPStatus(err))
			return
		}
		writeJSON(w, http.StatusOK, toResponses(items))
	}
}

// getInvoiceHandler godoc
// @Summary Obtener factura
// @Tags invoices
// @Produce json
// @Param invoiceID path int true "ID de la factura"
// @Success 200 {object} InvoiceResponse
// @Failure 404 {string} string "invoice not found"
// @Router /invoices/{invoiceID} [get]
func getInvoiceHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		inv, err := svc.Get(r.Context(), id)
		if err != nil {
			http.Error(w, errs.PublicMessage(err), errs.HTTPStatus(err))
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(inv))
	}
}

// setStatusHandler godoc
// @Summary Marcar factura como Paid / Unpaid
// @Description El monto no cambia; solo el estado.
// @Tags invoices
// @Produce json
// @Param invoiceID path int true "ID de la factura"
// @Success 200 {object} InvoiceResponse
// @Failure 404 {string} string "invoice not found"
// @Router /invoices/{invoiceID}/pay [post]
// @Router /invoices/{invoiceID}/unpay [post]
func setStatusHandler(svc *Service, status string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var (
			inv Invoice
			err error
		)
		if status == StatusPaid {
			inv, err = svc.MarkPaid(r.Context(), id)
		} else {
			inv, err = svc.MarkUnpaid(r.Context(), id)
		}
		if err != nil {
			http.Error(w, errs.PublicMessage(err), errs.HTTPStatus(err))
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(inv))
	}
}

// revenueHandler godoc
// @Summary Resumen de facturación
// @Description Cantidad y montos (total / pagado / impago) de facturas con fecha en [from, to].
// @Tags invoices
// @Produce json
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Success 200 {object} revenueResponse
// @Failure 400 {string} string "invalid input"
// @Router /invoices/revenue [get]
func revenueHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		rev, err := svc.Revenue(r.Context(), q.Get("from"), q.Get("to"))
		if err != nil {
			http.Error(w, errs.PublicMessage(err), errs.HTTPStatus(err))
			return
		}
		writeJSON(w, http.StatusOK, revenueResponse{
			From:   rev.From,
			To:     rev.To,
			Count:  rev.Count,
			Total:  rev.Total,
			Paid:   rev.Paid,
			Unpaid: rev.Unpaid,
		})
	}
}

// outstandingHandler godoc
// @Summary Facturas impagas
// @Tags invoices
// @Produce json
// @Success 200 {object} outstandingResponse
// @Router /invoices/outstanding [get]
func outstandingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, err := svc.Outstanding(r.Context())
		if err != nil {
			http.Error(w, errs.PublicMessage(err), errs.HTTPStatus(err))
			return
		}
		writeJSON(w, http.StatusOK, outstandingResponse{
			Invoices: toResponses(o.Invoices),
			Total:    o.Total,
		})
	}
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "invoiceID"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid invoice id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// ToResponse lo usan también billing/petstatus/treatments para devolver la factura afectada.
func ToResponse(inv Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:        inv.ID,
		InvoiceNo: inv.InvoiceNo,
		Client:    inv.Client,
		Pet:       inv.Pet,
		Amount:    inv.Amount,
		Date:      inv.Date,
		Status:    inv.Status,
	}
}

func toResponses(items []Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(items))
	for _, inv := range items {
		out = append(out, ToResponse(inv))
	}
	return out
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
