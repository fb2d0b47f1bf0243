package petstatus

import (
	"encoding/json"
	"errors"
	"net/http"

	"vet-clinic-ledger/internal/domain/invoices"
	"vet-clinic-ledger/internal/platform/errs"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pet-status", func(pr chi.Router) {
		pr.Post("/", updateStatusHandler(svc))
		pr.Get("/", listHandler(svc))
		pr.Get("/current", currentHandler(svc))
		pr.Get("/by-status", byStatusHandler(svc))

		pr.Get("/confined", confinedHandler(svc))
		pr.Post("/confined/notes", confinedNoteHandler(svc))
		pr.Post("/confined/transition", transitionHandler(svc))
	})
}

type eventResponse struct {
	ID     int64  `json:"id"`
	Pet    string `json:"pet"`
	Client string `json:"client"`
	Status string `json:"status"`
	Date   string `json:"date"`
	Notes  string `json:"notes"`
}

type updateStatusResponse struct {
	Event eventResponse `json:"event"`
	// Invoice solo viene en un alta (Discharged).
	Invoice      *invoices.InvoiceResponse `json:"invoice,omitempty"`
	BillingError string                    `json:"billing_error,omitempty"`
}

type currentResponse struct {
	Pet    string  `json:"pet"`
	Client string  `json:"client"`
	Status *string `json:"status"`
}

type confinedNoteRequest struct {
	Pet    string `json:"pet"`
	Client string `json:"client"`
	Notes  string `json:"notes"`
}

type transitionRequest struct {
	Pet    string `json:"pet"`
	Client string `json:"client"`
	Status string `json:"status"`
}

// updateStatusHandler godoc
// @Summary Registrar estado de mascota
// @Description Agrega un evento al log. Si el estado es Discharged crea la factura de alta con el total de tratamientos de la mascota.
// @Tags pet-status
// @Accept json
// @Produce json
// @Param payload body RecordInput true "Evento"
// @Success 201 {object} updateStatusResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 502 {object} updateStatusResponse "evento guardado, facturación fallida"
// @Router /pet-status [post]
func updateStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RecordInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		e, inv, err := svc.UpdateStatus(r.Context(), req)
		writeUpdate(w, e, inv, err)
	}
}

// transitionHandler godoc
// @Summary Cambiar estado de un internado
// @Description Registra el nuevo estado con fecha de hoy. Discharged dispara la factura de alta.
// @Tags pet-status
// @Accept json
// @Produce json
// @Param payload body transitionRequest true "Mascota, cliente y estado"
// @Success 201 {object} updateStatusResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Router /pet-status/confined/transition [post]
func transitionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req transitionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		e, inv, err := svc.Transition(r.Context(), req.Pet, req.Client, req.Status)
		writeUpdate(w, e, inv, err)
	}
}

func writeUpdate(w http.ResponseWriter, e Event, inv *invoices.Invoice, err error) {
	if err != nil {
		var be *DischargeBillingError
		if errors.As(err, &be) {
			writeJSON(w, http.StatusBadGateway, updateStatusResponse{
				Event:        toResponse(be.Event),
				BillingError: errs.PublicMessage(be.Err),
			})
			return
		}
		http.Error(w, errs.PublicMessage(err), errs.HTTPStatus(err))
		return
	}

	resp := updateStatusResponse{Event: toResponse(e)}
	if inv != nil {
		ir := invoices.ToResponse(*inv)
		resp.Invoice = &ir
	}
	writeJSON(w, http.StatusCreated, resp)
}

// listHandler godoc
// @Summary Listar log de estados
// @Tags pet-status
// @Produce json
// @Success 200 {array} eventResponse
// @Router /pet-status [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, errs.PublicMessage(err), errs.HTTPStatus(err))
			return
		}
		writeJSON(w, http.StatusOK, toResponses(items))
	}
}

// currentHandler godoc
// @Summary Estado actual
// @Description Estado del último evento insertado para el par (pet, client). status es null si no hay eventos.
// @Tags pet-status
// @Produce json
// @Param pet query string true "Mascota"
// @Param client query string true "Cliente"
// @Success 200 {object} currentResponse
// @Failure 400 {string} string "pet and client are required"
// @Router /pet-status/current [get]
func currentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		pet, client := q.Get("pet"), q.Get("client")
		if pet == "" || client == "" {
			http.Error(w, "pet and client are required", http.StatusBadRequest)
			return
		}

		status, ok, err := svc.CurrentStatus(r.Context(), pet, client)
		if err != nil {
			http.Error(w, errs.PublicMessage(err), errs.HTTPStatus(err))
			return
		}

		resp := currentResponse{Pet: pet, Client: client}
		if ok {
			resp.Status = &status
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// byStatusHandler godoc
// @Summary Eventos por estado
// @Description Comparación sin distinguir mayúsculas. No deduplica.
// @Tags pet-status
// @Produce json
// @Param status query string true "Estado"
// @Success 200 {array} eventResponse
// @Failure 400 {string} string "status is required"
// @Router /pet-status/by-status [get]
func byStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := r.URL.Query().Get("status")
		if status == "" {
			http.Error(w, "status is required", http.StatusBadRequest)
			return
		}

		items, err := svc.ListByStatus(r.Context(), status)
		if err != nil {
			http.Error(w, errs.PublicMessage(err), errs.HTTPStatus(err))
			return
		}
		writeJSON(w, http.StatusOK, toResponses(items))
	}
}

// confinedHandler godoc
// @Summary Internados
// @Tags pet-status
// @Produce json
// @Success 200 {array} eventResponse
// @Router /pet-status/confined [get]
func confinedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListConfined(r.Context())
		if err != nil {
			http.Error(w, errs.PublicMessage(err), errs.HTTPStatus(err))
			return
		}
		writeJSON(w, http.StatusOK, toResponses(items))
	}
}

// confinedNoteHandler godoc
// @Summary Nota de internación
// @Description Agrega otro evento Confined con la nota y fecha de hoy.
// @Tags pet-status
// @Accept json
// @Produce json
// @Param payload body confinedNoteRequest true "Nota"
// @Success 201 {object} eventResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Router /pet-status/confined/notes [post]
func confinedNoteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req confinedNoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		e, err := svc.AddConfinedNote(r.Context(), req.Pet, req.Client, req.Notes)
		if err != nil {
			http.Error(w, errs.PublicMessage(err), errs.HTTPStatus(err))
			return
		}
		writeJSON(w, http.StatusCreated, toResponse(e))
	}
}

func toResponse(e Event) eventResponse {
	return eventResponse{
		ID:     e.ID,
		Pet:    e.Pet,
		Client: e.Client,
		Status: e.Status,
		Date:   e.Date,
		Notes:  e.Notes,
	}
}

func toResponses(items []Event) []eventResponse {
	out := make([]eventResponse, 0, len(items))
	for _, e := range items {
		out = append(out, toResponse(e))
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
