package intake

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize es puro: no toca storage y nunca falla. Produce exactamente un
// cliente, un animal y un turno; jamás tratamientos ni facturas.
func Normalize(raw RawFields) (Client, Animal, Appointment) {
	clientName := strings.TrimSpace(raw.ClientName)
	petName := strings.TrimSpace(raw.PetName)
	date := strings.TrimSpace(raw.Date)

	c := Client{
		Name:    clientName,
		Contact: strings.TrimSpace(raw.Contact),
		Address: strings.TrimSpace(raw.Address),
	}
	a := Animal{
		PetName:   petName,
		Species:   NormalizeSpecies(raw.Species),
		Breed:     NormalizeBreed(raw.Breed),
		Age:       ParseAge(raw.Age),
		OwnerName: clientName,
	}
	ap := Appointment{
		ClientName: clientName,
		PetName:    petName,
		Date:       date,
		Time:       AppointmentTime,
		Reason:     strings.TrimSpace(raw.Reason),
	}
	return c, a, ap
}

// NormalizeSpecies: "dog"/"cat" en cualquier capitalización pasan a "Dog"/"Cat";
// el resto queda en title case.
func NormalizeSpecies(s string) string {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "":
		return ""
	case "dog":
		return "Dog"
	case "cat":
		return "Cat"
	default:
		// Un Caser tiene estado: se crea uno por llamada.
		return cases.Title(language.Und).String(s)
	}
}

// NormalizeBreed capitaliza cada palabra (primera letra en mayúscula, resto en
// minúscula) y colapsa los espacios.
func NormalizeBreed(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
}

// ParseAge devuelve nil si s no es un entero.
func ParseAge(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}
