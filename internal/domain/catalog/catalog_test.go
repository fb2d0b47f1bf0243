package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLookup_FixedTable(t *testing.T) {
	want := map[string]int64{
		"Checkup":          50,
		"Vaccination":      75,
		"Surgery":          500,
		"Dental Cleaning":  150,
		"X-Ray":            100,
		"Blood Test":       80,
		"Grooming":         60,
		"Wound Care":       120,
		"Physical Therapy": 100,
		"Medication":       40,
	}

	c := Default()
	assert.Len(t, c.Types(), len(want))
	for typ, cost := range want {
		assert.True(t, c.Lookup(typ).Equal(decimal.NewFromInt(cost)), "cost for %s", typ)
		assert.True(t, c.Known(typ))
	}
}

func TestLookup_UnknownFallsBackTo50(t *testing.T) {
	c := Default()
	assert.True(t, c.Lookup("unknown").Equal(decimal.NewFromInt(50)))
	// match exacto: sin normalizar mayúsculas ni espacios
	assert.True(t, c.Lookup("surgery").Equal(decimal.NewFromInt(50)))
	assert.True(t, c.Lookup(" Surgery").Equal(decimal.NewFromInt(50)))
	assert.False(t, c.Known("surgery"))
}

func TestDefault_IsShared(t *testing.T) {
	assert.Same(t, Default(), Default())

	// Entries devuelve copia: mutarla no toca el catálogo.
	entries := Default().Entries()
	entries[0].Cost = decimal.NewFromInt(999)
	assert.True(t, Default().Lookup(Checkup).Equal(decimal.NewFromInt(50)))
}

func TestSuggest(t *testing.T) {
	assert.Equal(t, Vaccination, Suggest("Annual VACCINE booster"))
	assert.Equal(t, DentalCleaning, Suggest("dental pain"))
	assert.Equal(t, XRay, Suggest("needs x-ray"))
	assert.Equal(t, PhysicalTherapy, Suggest("Physical Therapy"))
	assert.Equal(t, Checkup, Suggest("Behavioral Consultation"))
}
