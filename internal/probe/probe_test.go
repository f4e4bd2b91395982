package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	gippityErrors "github.com/harunnryd/gippity/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		name   string
		status int
	}{
		{name: "ok", status: http.StatusOK},
		{name: "not found", status: http.StatusNotFound},
		{name: "server error", status: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var method string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				method = r.Method
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			got, err := StatusCode(context.Background(), srv.Client(), srv.URL+"/health")
			require.NoError(t, err)
			assert.Equal(t, tc.status, got)
			assert.Equal(t, http.MethodGet, method)
		})
	}
}

func TestStatusCodeTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := StatusCode(context.Background(), nil, url)
	require.Error(t, err)
	assert.ErrorIs(t, err, gippityErrors.ErrTransport)
}

func TestStatusCodeInvalidInput(t *testing.T) {
	_, err := StatusCode(context.Background(), nil, "  ")
	assert.ErrorIs(t, err, gippityErrors.ErrInvalidInput)

	_, err = StatusCode(context.Background(), nil, "http://[::1")
	assert.ErrorIs(t, err, gippityErrors.ErrInvalidInput)
}
