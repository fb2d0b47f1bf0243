package validate

import (
	"testing"

	"vet-clinic-ledger/internal/platform/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Client string `json:"client" validate:"required"`
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Amount string `json:"amount" validate:"omitempty,numeric"`
}

func TestStruct_OK(t *testing.T) {
	assert.NoError(t, Struct(sample{Client: "Ana", Date: "2025-01-02", Amount: "12.5"}))
}

func TestStruct_ReportsFirstFieldByJSONName(t *testing.T) {
	err := Struct(sample{Date: "2025-01-02"})
	require.Error(t, err)

	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "client", ve.Field)
	assert.Equal(t, "is required", ve.Reason)
}

func TestStruct_BadDateAndAmount(t *testing.T) {
	err := Struct(sample{Client: "Ana", Date: "02/01/2025"})
	assert.EqualError(t, err, "invalid input: date must be 2006-01-02")

	err = Struct(sample{Client: "Ana", Date: "2025-01-02", Amount: "abc"})
	assert.EqualError(t, err, "invalid input: amount must be a number")
}
