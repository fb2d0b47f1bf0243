package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsBadBaseURL(t *testing.T) {
	for _, bad := range []string{"", "localhost:8080", "ftp://x"} {
		_, err := New(bad, 0)
		assert.Error(t, err, bad)
	}

	c, err := New("http://localhost:8080/", 0)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", c.BaseURL)
	assert.Equal(t, DefaultTimeout, c.HTTP.Timeout)
}

func TestDo_JSONRoundTripAndQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/billing/total", r.URL.Path)
		assert.Equal(t, "Ana Perez", r.URL.Query().Get("client"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_ = json.NewEncoder(w).Encode(map[string]string{"total": "125"})
	}))
	defer srv.Close()

	c, err := New(srv.URL, 0)
	require.NoError(t, err)

	var out struct {
		Total string `json:"total"`
	}
	err = c.Do(context.Background(), http.MethodGet, "billing/total", url.Values{"client": {"Ana Perez"}}, nil, &out)
	require.NoError(t, err)
	assert.Equal(t, "125", out.Total)
}

func TestDo_Non2xxIsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid input: client is required", http.StatusBadRequest)
	}))
	defer srv.Close()

	c, err := New(srv.URL, 0)
	require.NoError(t, err)

	err = c.Do(context.Background(), http.MethodPost, "/invoices", nil, map[string]string{}, nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, StatusOf(err))
	assert.Contains(t, err.Error(), "client is required")
}
