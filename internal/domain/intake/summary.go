package intake

import (
	"context"
	"sort"

	"vet-clinic-ledger/internal/domain/invoices"
)

// InvoiceCounter cuenta facturas por estado; lo implementa invoices.Service.
type InvoiceCounter interface {
	CountByStatus(ctx context.Context) (invoices.StatusCounts, error)
}

type noopCounter struct{}

func (noopCounter) CountByStatus(context.Context) (invoices.StatusCounts, error) {
	return invoices.StatusCounts{}, nil
}

type SpeciesCount struct {
	Species string
	Count   int
}

type ReasonCount struct {
	Reason string
	Count  int
}

// ClientSummary: totales de clientes, animales y facturas, animales por especie
// y facturas Paid / Unpaid.
type ClientSummary struct {
	Clients   int
	Animals   int
	Invoices  invoices.StatusCounts
	BySpecies []SpeciesCount
}

type AppointmentSummary struct {
	Total    int
	ByReason []ReasonCount
}

// SpeciesGroup son los animales de una especie en orden de alta.
type SpeciesGroup struct {
	Species string
	Animals []Animal
}

// CountSpecies agrupa por especie exacta, ordenado por especie.
func CountSpecies(animals []Animal) []SpeciesCount {
	groups := GroupBySpecies(animals)
	out := make([]SpeciesCount, 0, len(groups))
	for _, g := range groups {
		out = append(out, SpeciesCount{Species: g.Species, Count: len(g.Animals)})
	}
	return out
}

// GroupBySpecies agrupa por especie exacta (ya viene normalizada del walk-in).
func GroupBySpecies(animals []Animal) []SpeciesGroup {
	idx := make(map[string]int)
	var out []SpeciesGroup
	for _, a := range animals {
		i, ok := idx[a.Species]
		if !ok {
			i = len(out)
			idx[a.Species] = i
			out = append(out, SpeciesGroup{Species: a.Species})
		}
		out[i].Animals = append(out[i].Animals, a)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Species < out[j].Species })
	if out == nil {
		out = []SpeciesGroup{}
	}
	return out
}

// CountReasons cuenta turnos por motivo exacto, ordenado por motivo.
func CountReasons(appts []Appointment) []ReasonCount {
	counts := make(map[string]int)
	for _, ap := range appts {
		counts[ap.Reason]++
	}
	out := make([]ReasonCount, 0, len(counts))
	for reason, n := range counts {
		out = append(out, ReasonCount{Reason: reason, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Reason < out[j].Reason })
	return out
}

func (p *Processor) ClientSummary(ctx context.Context) (ClientSummary, error) {
	clients, err := p.ListClients(ctx, "")
	if err != nil {
		return ClientSummary{}, err
	}
	animals, err := p.ListAnimals(ctx)
	if err != nil {
		return ClientSummary{}, err
	}
	counts, err := p.invoices.CountByStatus(ctx)
	if err != nil {
		return ClientSummary{}, err
	}

	return ClientSummary{
		Clients:   len(clients),
		Animals:   len(animals),
		Invoices:  counts,
		BySpecies: CountSpecies(animals),
	}, nil
}

func (p *Processor) AppointmentSummary(ctx context.Context) (AppointmentSummary, error) {
	appts, err := p.ListAppointments(ctx)
	if err != nil {
		return AppointmentSummary{}, err
	}
	return AppointmentSummary{Total: len(appts), ByReason: CountReasons(appts)}, nil
}

func (p *Processor) AnimalsBySpecies(ctx context.Context) ([]SpeciesGroup, error) {
	animals, err := p.ListAnimals(ctx)
	if err != nil {
		return nil, err
	}
	return GroupBySpecies(animals), nil
}
