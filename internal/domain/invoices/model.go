package invoices

import "github.com/shopspring/decimal"

// Estados conocidos. La capa de ledger guarda cualquier string (ver SetStatus).
const (
	StatusUnpaid = "Unpaid"
	StatusPaid   = "Paid"
)

// DateLayout es el formato ISO con el que se guardan y comparan fechas.
const DateLayout = "2006-01-02"

// Invoice nunca se borra; después de creada solo cambian Amount y Status.
type Invoice struct {
	ID        int64
	InvoiceNo string
	Client    string
	Pet       string // puede venir vacío si no se conoce al crear
	Amount    decimal.Decimal
	Date      string // YYYY-MM-DD
	Status    string
}

// Revenue resume facturación en un rango de fechas.
type Revenue struct {
	From   string
	To     string
	Count  int
	Total  decimal.Decimal
	Paid   decimal.Decimal
	Unpaid decimal.Decimal
}

// Outstanding lista las facturas impagas (fecha ascendente) y su total.
type Outstanding struct {
	Invoices []Invoice
	Total    decimal.Decimal
}

// StatusCounts cuenta facturas por estado. Paid y Unpaid son matches exactos;
// un estado distinto solo suma en Total.
type StatusCounts struct {
	Total  int
	Paid   int
	Unpaid int
}

// IsUnpaid es el único criterio de "impaga" (match exacto con StatusUnpaid); lo
// usan la conciliación y el listado de pendientes.
func (inv Invoice) IsUnpaid() bool { return inv.Status == StatusUnpaid }

// IsPaid es match exacto con StatusPaid. En Revenue todo lo que no es Paid
// cuenta como impago.
func (inv Invoice) IsPaid() bool { return inv.Status == StatusPaid }
