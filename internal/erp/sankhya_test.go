package erp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductVolumes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/produtos/volumes", r.URL.Path)
		assert.Equal(t, "2001", r.URL.Query().Get("codProd"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"CODVOL":"UN","QUANTIDADE":1},{"CODVOL":"CX","QUANTIDADE":24}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "tok")
	volumes, err := client.ProductVolumes(context.Background(), 2001)
	require.NoError(t, err)
	require.Len(t, volumes, 2)
	assert.Equal(t, "CX", volumes[1].Code)
	assert.InDelta(t, 24.0, volumes[1].Factor, 1e-9)
}

func TestProductVolumesGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	_, err := client.ProductVolumes(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	assert.NoError(t, client.Ping(context.Background()))
}

func TestProductImageURL(t *testing.T) {
	client := NewClient("http://gw", "")
	assert.Equal(t, "http://gw/produtos/imagem?codProd=55", client.ProductImageURL(55))
}
