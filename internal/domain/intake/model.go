package intake

// AppointmentTime es la hora fija de los turnos creados desde un walk-in.
const AppointmentTime = "09:00"

// RawFields es el formulario de walk-in tal como llega.
// Age es texto: si no parsea como entero queda en null.
type RawFields struct {
	ClientName string `json:"client_name"`
	Contact    string `json:"contact"`
	Address    string `json:"address"`
	PetName    string `json:"pet_name"`
	Species    string `json:"species"`
	Breed      string `json:"breed"`
	Age        string `json:"age"`
	Reason     string `json:"reason"`
	Date       string `json:"date"`
}

type Client struct {
	ID      int64
	Name    string
	Contact string
	Address string
}

// Animal se vincula al cliente por nombre (OwnerName), no por id.
type Animal struct {
	ID        int64
	PetName   string
	Species   string
	Breed     string
	Age       *int
	OwnerName string
}

type Appointment struct {
	ID         int64
	ClientName string
	PetName    string
	Date       string // YYYY-MM-DD
	Time       string // HH:MM
	Reason     string
}

// WalkIn guarda el formulario normalizado. Ref identifica el ingreso ante la
// recepción (el id numérico es interno del storage).
type WalkIn struct {
	ID         int64
	Ref        string
	ClientName string
	Contact    string
	Address    string
	PetName    string
	Species    string
	Breed      string
	Age        *int
	Reason     string
	Date       string
}
