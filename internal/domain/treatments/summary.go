package treatments

import (
	"context"
	"sort"

	"vet-clinic-ledger/internal/domain/catalog"

	"github.com/shopspring/decimal"
)

// TypeSummary agrupa los tratamientos de un tipo. Known es false cuando el tipo
// no está en el catálogo y se cobró al costo por defecto.
type TypeSummary struct {
	Type    string
	Count   int
	Known   bool
	Revenue decimal.Decimal
}

// Summary es el resumen de tratamientos por tipo, ordenado por nombre de tipo.
type Summary struct {
	Total   int
	Types   []TypeSummary
	Revenue decimal.Decimal
}

// Summarize agrupa por tipo y valoriza cada grupo con el catálogo compartido.
func Summarize(c *catalog.Catalog, items []Treatment) Summary {
	counts := make(map[string]int)
	for _, t := range items {
		counts[t.TreatmentType]++
	}

	out := Summary{Total: len(items), Types: make([]TypeSummary, 0, len(counts)), Revenue: decimal.Zero}
	for typ, n := range counts {
		rev := c.Lookup(typ).Mul(decimal.NewFromInt(int64(n)))
		out.Types = append(out.Types, TypeSummary{
			Type:    typ,
			Count:   n,
			Known:   c.Known(typ),
			Revenue: rev,
		})
		out.Revenue = out.Revenue.Add(rev)
	}
	sort.Slice(out.Types, func(i, j int) bool { return out.Types[i].Type < out.Types[j].Type })
	return out
}

// Summary relee todos los tratamientos y los resume por tipo.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	items, err := s.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(catalog.Default(), items), nil
}
