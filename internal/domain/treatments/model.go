package treatments

// Valores de Confined.
const (
	ConfinedYes = "Yes"
	ConfinedNo  = "No"
)

// DefaultNotes se guarda cuando la carga no trae notas.
const DefaultNotes = "No notes"

// Treatment es un tratamiento aplicado. El costo nunca se guarda: se deriva del catálogo
// al agregar.
type Treatment struct {
	ID            int64
	Reason        string
	Pet           string
	Client        string
	TreatmentType string
	Date          string // YYYY-MM-DD
	Confined      string // "Yes" / "No"
	Notes         string
}
