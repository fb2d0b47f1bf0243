package billing

import (
	"encoding/json"
	"net/http"

	"vet-clinic-ledger/internal/platform/errs"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

func RegisterRoutes(r chi.Router, rec *Reconciler) {
	r.Get("/billing/total", totalHandler(rec))
}

type totalResponse struct {
	Client string          `json:"client"`
	Pet    *string         `json:"pet,omitempty"`
	Total  decimal.Decimal `json:"total"`
}

// totalHandler godoc
// @Summary Total de tratamientos
// @Description Suma el costo de catálogo de los tratamientos del cliente (y de la mascota si se pasa `pet`). Match exacto.
// @Tags billing
// @Produce json
// @Param client query string true "Cliente (tal como se guardó)"
// @Param pet query string false "Mascota (tal como se guardó)"
// @Success 200 {object} totalResponse
// @Failure 400 {string} string "client is required"
// @Router /billing/total [get]
func totalHandler(rec *Reconciler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		client := q.Get("client")
		if client == "" {
			http.Error(w, "client is required", http.StatusBadRequest)
			return
		}

		resp := totalResponse{Client: client}
		var (
			total decimal.Decimal
			err   error
		)
		if q.Has("pet") {
			pet := q.Get("pet")
			resp.Pet = &pet
			total, err = rec.ComputeTotalForPet(r.Context(), client, pet)
		} else {
			total, err = rec.ComputeTotal(r.Context(), client)
		}
		if err != nil {
			http.Error(w, errs.PublicMessage(err), errs.HTTPStatus(err))
			return
		}
		resp.Total = total
		writeJSON(w, http.StatusOK, resp)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
