package intake

import (
	"encoding/json"
	"net/http"

	"vet-clinic-ledger/internal/platform/errs"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, p *Processor) {
	r.Post("/walkins", processWalkInHandler(p))
	r.Get("/walkins", listWalkInsHandler(p))

	r.Get("/clients", listClientsHandler(p))
	r.Get("/clients/summary", clientSummaryHandler(p))
	r.Get("/animals", listAnimalsHandler(p))
	r.Get("/animals/by-species", animalsBySpeciesHandler(p))

	r.Route("/appointments", func(ar chi.Router) {
		ar.Post("/", createAppointmentHandler(p))
		ar.Get("/", listAppointmentsHandler(p))
		ar.Get("/summary", appointmentSummaryHandler(p))
	})
}

type clientResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}

type animalResponse struct {
	ID        int64  `json:"id"`
	PetName   string `json:"pet_name"`
	Species   string `json:"species"`
	Breed     string `json:"breed"`
	Age       *int   `json:"age"`
	OwnerName string `json:"owner_name"`
}

type appointmentResponse struct {
	ID         int64  `json:"id"`
	ClientName string `json:"client_name"`
	PetName    string `json:"pet_name"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Reason     string `json:"reason"`
}

type walkInResponse struct {
	ID         int64  `json:"id"`
	Ref        string `json:"ref"`
	ClientName string `json:"client_name"`
	Contact    string `json:"contact"`
	Address    string `json:"address"`
	PetName    string `json:"pet_name"`
	Species    string `json:"species"`
	Breed      string `json:"breed"`
	Age        *int   `json:"age"`
	Reason     string `json:"reason"`
	Date       string `json:"date"`
}

type processResponse struct {
	WalkIn      walkInResponse      `json:"walkin"`
	Client      clientResponse      `json:"client"`
	Animal      animalResponse      `json:"animal"`
	Appointment appointmentResponse `json:"appointment"`
}

type countResponse struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

type clientSummaryResponse struct {
	Clients        int             `json:"clients"`
	Animals        int             `json:"animals"`
	Invoices       int             `json:"invoices"`
	PaidInvoices   int             `json:"paid_invoices"`
	UnpaidInvoices int             `json:"unpaid_invoices"`
	BySpecies      []countResponse `json:"by_species"`
}

type appointmentSummaryResponse struct {
	Total    int             `json:"total"`
	ByReason []countResponse `json:"by_reason"`
}

type speciesAnimalResponse struct {
	PetName   string `json:"pet_name"`
	Breed     string `json:"breed"`
	OwnerName string `json:"owner_name"`
}

type speciesGroupResponse struct {
	Species string                  `json:"species"`
	Count   int                     `json:"count"`
	Animals []speciesAnimalResponse `json:"animals"`
}

// processWalkInHandler godoc
// @Summary Registrar walk-in
// @Description Normaliza el formulario y crea cliente, animal y turno (09:00). No crea tratamientos ni facturas.
// @Tags intake
// @Accept json
// @Produce json
// @Param payload body RawFields true "Formulario de recepción"
// @Success 201 {object} processResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Router /walkins [post]
func processWalkInHandler(p *Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RawFields
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res, err := p.Process(r.Context(), req)
		if err != nil {
			http.Error(w, errs.PublicMessage(err), errs.HTTPStatus(err))
			return
		}

		writeJSON(w, http.StatusCreated, processResponse{
			WalkIn:      toWalkInResponse(res.WalkIn),
			Client:      toClientResponse(res.Client),
			Animal:      toAnimalResponse(res.Animal),
			Appointment: toAppointmentResponse(res.Appointment),
		})
	}
}

// listWalkInsHandler godoc
// @Summary Listar walk-ins
// @Tags intake
// @Produce json
// @Success 200 {array} walkInResponse
// @Router /walkins [get]
func listWalkInsHandler(p *Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := p.ListWalkIns(r.Context())
		if err != nil {
			http.Error(w, errs.PublicMessage(err), errs.HTTPStatus(err))
			return
		}
		out := make([]walkInResponse, 0, len(items))
		for _, it := range items {
			out = append(out, toWalkInResponse(it))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// listClientsHandler godoc
// @Summary Listar clientes
// @Tags intake
// @Produce json
// @Param q query string false "Parte del nombre"
// @Success 200 {array} clientResponse
// @Router /clients [get]
func listClientsHandler(p *Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := p.ListClients(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			http.Error(w, errs.PublicMessage(err), errs.HTTPStatus(err))
			return
		}
		out := make([]clientResponse, 0, len(items))
		for _, it := range items {
			out = append(out, toClientResponse(it))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// listAnimalsHandler godoc
// @Summary Listar animales
// @Tags intake
// @Produce json
// @Success 200 {array} animalResponse
// @Router /animals [get]
func listAnimalsHandler(p *Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := p.ListAnimals(r.Context())
		if err != nil {
			http.Error(w, errs.PublicMessage(err), errs.HTTPStatus(err))
			return
		}
		out := make([]animalResponse, 0, len(items))
		for _, it := range items {
			out = append(out, toAnimalResponse(it))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createAppointmentHandler godoc
// @Summary Crear turno
// @Tags intake
// @Accept json
// @Produce json
// @Param payload body AppointmentInput true "Turno"
// @Success 201 {object} appointmentResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Router /appointments [post]
func createAppointmentHandler(p *Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AppointmentInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ap, err := p.CreateAppointment(r.Context(), req)
		if err != nil {
			http.Error(w, errs.PublicMessage(err), errs.HTTPStatus(err))
			return
		}
		writeJSON(w, http.StatusCreated, toAppointmentResponse(ap))
	}
}

// listAppointmentsHandler godoc
// @Summary Listar turnos
// @Tags intake
// @Produce json
// @Success 200 {array} appointmentResponse
// @Router /appointments [get]
func listAppointmentsHandler(p *Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := p.ListAppointments(r.Context())
		if err != nil {
			http.Error(w, errs.PublicMessage(err), errs.HTTPStatus(err))
			return
		}
		out := make([]appointmentResponse, 0, len(items))
		for _, it := range items {
			out = append(out, toAppointmentResponse(it))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// clientSummaryHandler godoc
// @Summary Resumen de clientes
// @Description Totales de clientes, animales y facturas; animales por especie; facturas Paid / Unpaid.
// @Tags reports
// @Produce json
// @Success 200 {object} clientSummaryResponse
// @Router /clients/summary [get]
func clientSummaryHandler(p *Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sum, err := p.ClientSummary(r.Context())
		if err != nil {
			http.Error(w, errs.PublicMessage(err), errs.HTTPStatus(err))
			return
		}
		out := clientSummaryResponse{
			Clients:        sum.Clients,
			Animals:        sum.Animals,
			Invoices:       sum.Invoices.Total,
			PaidInvoices:   sum.Invoices.Paid,
			UnpaidInvoices: sum.Invoices.Unpaid,
			BySpecies:      make([]countResponse, 0, len(sum.BySpecies)),
		}
		for _, sc := range sum.BySpecies {
			out.BySpecies = append(out.BySpecies, countResponse{Key: sc.Species, Count: sc.Count})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// appointmentSummaryHandler godoc
// @Summary Resumen de turnos
// @Description Cantidad total y por motivo.
// @Tags reports
// @Produce json
// @Success 200 {object} appointmentSummaryResponse
// @Router /appointments/summary [get]
func appointmentSummaryHandler(p *Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sum, err := p.AppointmentSummary(r.Context())
		if err != nil {
			http.Error(w, errs.PublicMessage(err), errs.HTTPStatus(err))
			return
		}
		out := appointmentSummaryResponse{Total: sum.Total, ByReason: make([]countResponse, 0, len(sum.ByReason))}
		for _, rc := range sum.ByReason {
			out.ByReason = append(out.ByReason, countResponse{Key: rc.Reason, Count: rc.Count})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// animalsBySpeciesHandler godoc
// @Summary Animales por especie
// @Description Agrupa los animales por especie con raza y dueño.
// @Tags reports
// @Produce json
// @Success 200 {array} speciesGroupResponse
// @Router /animals/by-species [get]
func animalsBySpeciesHandler(p *Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groups, err := p.AnimalsBySpecies(r.Context())
		if err != nil {
			http.Error(w, errs.PublicMessage(err), errs.HTTPStatus(err))
			return
		}
		out := make([]speciesGroupResponse, 0, len(groups))
		for _, g := range groups {
			gr := speciesGroupResponse{
				Species: g.Species,
				Count:   len(g.Animals),
				Animals: make([]speciesAnimalResponse, 0, len(g.Animals)),
			}
			for _, a := range g.Animals {
				gr.Animals = append(gr.Animals, speciesAnimalResponse{PetName: a.PetName, Breed: a.Breed, OwnerName: a.OwnerName})
			}
			out = append(out, gr)
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toClientResponse(c Client) clientResponse {
	return clientResponse{ID: c.ID, Name: c.Name, Contact: c.Contact, Address: c.Address}
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:        a.ID,
		PetName:   a.PetName,
		Species:   a.Species,
		Breed:     a.Breed,
		Age:       a.Age,
		OwnerName: a.OwnerName,
	}
}

func toAppointmentResponse(a Appointment) appointmentResponse {
	return appointmentResponse{
		ID:         a.ID,
		ClientName: a.ClientName,
		PetName:    a.PetName,
		Date:       a.Date,
		Time:       a.Time,
		Reason:     a.Reason,
	}
}

func toWalkInResponse(w WalkIn) walkInResponse {
	return walkInResponse{
		ID:         w.ID,
		Ref:        w.Ref,
		ClientName: w.ClientName,
		Contact:    w.Contact,
		Address:    w.Address,
		PetName:    w.PetName,
		Species:    w.Species,
		Breed:      w.Breed,
		Age:        w.Age,
		Reason:     w.Reason,
		Date:       w.Date,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
