package petstatus

// Estados que usa la clínica. El ledger acepta cualquier string: no hay máquina
// de estados y cualquier estado puede seguir a cualquier otro.
const (
	StatusAppointment    = "Appointment"
	StatusConfined       = "Confined"
	StatusDailyTreatment = "Daily Treatment"
	StatusDischarged     = "Discharged"
)

// Event es una fila del log append-only. ID refleja el orden de inserción.
type Event struct {
	ID     int64
	Pet    string
	Client string
	Status string
	Date   string // YYYY-MM-DD
	Notes  string
}
