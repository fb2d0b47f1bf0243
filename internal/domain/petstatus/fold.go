package petstatus

import "strings"

// CurrentStatus devuelve el estado del evento insertado más recientemente
// (mayor ID) para el par exacto (pet, client). La fecha no interviene.
// ok es false si el par no tiene eventos.
func CurrentStatus(events []Event, pet, client string) (status string, ok bool) {
	var latest *Event
	for i := range events {
		e := &events[i]
		if e.Pet != pet || e.Client != client {
			continue
		}
		if latest == nil || e.ID > latest.ID {
			latest = e
		}
	}
	if latest == nil {
		return "", false
	}
	return latest.Status, true
}

// MatchesStatus es la única regla de comparación de estados del sistema:
// sin distinguir mayúsculas, ignorando espacios en los extremos.
func MatchesStatus(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// FilterByStatus conserva el orden de entrada. No deduplica: un par con dos
// eventos Confined aparece dos veces.
func FilterByStatus(events []Event, status string) []Event {
	out := make([]Event, 0)
	for _, e := range events {
		if MatchesStatus(e.Status, status) {
			out = append(out, e)
		}
	}
	return out
}
