package mix

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/mix-produtos", r.URL.Path)

		var req SuggestionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(101), req.PartnerID)
		assert.Equal(t, 6, req.MonthsLookback)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"sugestoes":[{"CODPROD":2001,"DESCRPROD":"Cafe Torrado 500g","VLRUNIT":18.4,"UNIDADE":"UN"}],
			"resumo":{"totalNotas":14,"produtosUnicos":9,"periodo":"2026-02 a 2026-08"}
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	resp, err := client.Suggest(context.Background(), SuggestionRequest{PartnerID: 101, MonthsLookback: 6})
	require.NoError(t, err)
	require.Len(t, resp.Suggestions, 1)
	assert.Equal(t, int64(2001), resp.Suggestions[0].ProductID)
	require.NotNil(t, resp.Summary)
	assert.Equal(t, 14, resp.Summary.InvoiceCount)
}

func TestSuggestServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Suggest(context.Background(), SuggestionRequest{PartnerID: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
