package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersistence_WrapsAndUnwraps(t *testing.T) {
	cause := errors.New("disk full")
	err := Persistence("insert_invoice", cause)

	assert.True(t, IsPersistence(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "persistence: insert_invoice: disk full", err.Error())
}

func TestPersistence_KeepsNotFoundAndNil(t *testing.T) {
	assert.NoError(t, Persistence("x", nil))

	err := Persistence("fetch_invoice_by_id", fmt.Errorf("row: %w", ErrNotFound))
	assert.False(t, IsPersistence(err))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(Validation("age", "must be a number")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(ErrNotFound))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(Persistence("op", errors.New("boom"))))
	assert.Equal(t, "internal error", PublicMessage(Persistence("op", errors.New("boom"))))
	assert.Equal(t, "invalid input: client is required", PublicMessage(Validation("client", "is required")))
}
