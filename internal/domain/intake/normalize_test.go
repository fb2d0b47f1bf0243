package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_TrimsAndCanonicalizes(t *testing.T) {
	c, a, ap := Normalize(RawFields{
		ClientName: "  Ana Perez ",
		Contact:    " 555-0101 ",
		Address:    " Calle 1 ",
		PetName:    " Rex ",
		Species:    "  DOG ",
		Breed:      "  golden   RETRIEVER ",
		Age:        " 4 ",
		Reason:     " vaccine booster ",
		Date:       " 2026-03-01 ",
	})

	assert.Equal(t, Client{Name: "Ana Perez", Contact: "555-0101", Address: "Calle 1"}, c)

	assert.Equal(t, "Rex", a.PetName)
	assert.Equal(t, "Dog", a.Species)
	assert.Equal(t, "Golden Retriever", a.Breed)
	require.NotNil(t, a.Age)
	assert.Equal(t, 4, *a.Age)
	assert.Equal(t, "Ana Perez", a.OwnerName)

	assert.Equal(t, Appointment{
		ClientName: "Ana Perez",
		PetName:    "Rex",
		Date:       "2026-03-01",
		Time:       "09:00",
		Reason:     "vaccine booster",
	}, ap)
}

func TestNormalizeSpecies(t *testing.T) {
	cases := map[string]string{
		"dog":            "Dog",
		"Cat":            "Cat",
		" cAt ":          "Cat",
		"rabbit":         "Rabbit",
		"GUINEA PIG":     "Guinea Pig",
		"bearded dragon": "Bearded Dragon",
		"":               "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeSpecies(in), "species %q", in)
	}
}

func TestNormalizeBreed(t *testing.T) {
	assert.Equal(t, "German Shepherd", NormalizeBreed("german shepherd"))
	assert.Equal(t, "Shih-tzu", NormalizeBreed("SHIH-TZU"))
	assert.Equal(t, "", NormalizeBreed("   "))
}

func TestParseAge(t *testing.T) {
	require.NotNil(t, ParseAge("12"))
	assert.Equal(t, 12, *ParseAge("12"))
	assert.Equal(t, 0, *ParseAge("0"))

	for _, bad := range []string{"", "four", "3.5", "2y"} {
		assert.Nil(t, ParseAge(bad), "age %q", bad)
	}
}
