// Package catalog es la tabla fija de costos por tipo de tratamiento.
// Existe una sola instancia compartida (Default); todo cálculo de costo pasa por acá.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Tipos de tratamiento conocidos.
const (
	Checkup         = "Checkup"
	Vaccination     = "Vaccination"
	Surgery         = "Surgery"
	DentalCleaning  = "Dental Cleaning"
	XRay            = "X-Ray"
	BloodTest       = "Blood Test"
	Grooming        = "Grooming"
	WoundCare       = "Wound Care"
	PhysicalTherapy = "Physical Therapy"
	Medication      = "Medication"
)

// Entry es una fila del catálogo.
type Entry struct {
	Type string          `json:"type"`
	Cost decimal.Decimal `json:"cost"`
}

// Catalog es inmutable después de construido.
type Catalog struct {
	entries     []Entry
	byType      map[string]decimal.Decimal
	defaultCost decimal.Decimal
}

var defaultCatalog = newCatalog([]Entry{
	{Checkup, decimal.NewFromInt(50)},
	{Vaccination, decimal.NewFromInt(75)},
	{Surgery, decimal.NewFromInt(500)},
	{DentalCleaning, decimal.NewFromInt(150)},
	{XRay, decimal.NewFromInt(100)},
	{BloodTest, decimal.NewFromInt(80)},
	{Grooming, decimal.NewFromInt(60)},
	{WoundCare, decimal.NewFromInt(120)},
	{PhysicalTherapy, decimal.NewFromInt(100)},
	{Medication, decimal.NewFromInt(40)},
}, decimal.NewFromInt(50))

// Default devuelve el catálogo compartido.
func Default() *Catalog { return defaultCatalog }

func newCatalog(entries []Entry, def decimal.Decimal) *Catalog {
	c := &Catalog{
		entries:     make([]Entry, len(entries)),
		byType:      make(map[string]decimal.Decimal, len(entries)),
		defaultCost: def,
	}
	copy(c.entries, entries)
	for _, e := range entries {
		c.byType[e.Type] = e.Cost
	}
	return c
}

// Lookup devuelve el costo de treatmentType (match exacto).
// Tipos desconocidos cuestan el default (50).
func (c *Catalog) Lookup(treatmentType string) decimal.Decimal {
	if cost, ok := c.byType[treatmentType]; ok {
		return cost
	}
	return c.defaultCost
}

// Known indica si treatmentType está en la tabla.
func (c *Catalog) Known(treatmentType string) bool {
	_, ok := c.byType[treatmentType]
	return ok
}

// Entries devuelve una copia de la tabla en orden de catálogo.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Types lista los tipos en orden de catálogo.
func (c *Catalog) Types() []string {
	out := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e.Type)
	}
	return out
}

// Keywords (en minúscula) que se buscan dentro del motivo de la cita.
var suggestions = []struct {
	keyword string
	typ     string
}{
	{"checkup", Checkup},
	{"vaccine", Vaccination},
	{"surgery", Surgery},
	{"dental", DentalCleaning},
	{"x-ray", XRay},
	{"blood", BloodTest},
	{"groom", Grooming},
	{"wound", WoundCare},
	{"therapy", PhysicalTherapy},
	{"medicine", Medication},
}

// Suggest propone un tipo de tratamiento a partir del motivo de una cita.
// Sin coincidencias devuelve Checkup.
func Suggest(reason string) string {
	r := strings.ToLower(reason)
	for _, s := range suggestions {
		if strings.Contains(r, s.keyword) {
			return s.typ
		}
	}
	return Checkup
}
