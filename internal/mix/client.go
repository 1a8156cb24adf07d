// Package mix wraps the product-mix suggestion service. The suggestion
// engine is an external collaborator; this client only speaks its contract.
package mix

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// SuggestionRequest asks for a product mix based on a partner's purchase
// history over the lookback window.
type SuggestionRequest struct {
	PartnerID      int64 `json:"partnerId"`
	MonthsLookback int   `json:"monthsLookback"`
}

// Suggestion is one recommended product.
type Suggestion struct {
	ProductID   int64   `json:"CODPROD"`
	Description string  `json:"DESCRPROD"`
	UnitPrice   float64 `json:"VLRUNIT"`
	Unit        string  `json:"UNIDADE"`
}

// HistorySummary describes the data the suggestions were derived from.
type HistorySummary struct {
	InvoiceCount   int    `json:"totalNotas"`
	UniqueProducts int    `json:"produtosUnicos"`
	Period         string `json:"periodo"`
}

// SuggestionResponse is the full suggestion result.
type SuggestionResponse struct {
	Suggestions []Suggestion    `json:"sugestoes"`
	Summary     *HistorySummary `json:"resumo"`
}

// Client wraps interactions with the mix-produtos API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a new client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Suggest requests a product mix for the partner.
func (c *Client) Suggest(ctx context.Context, sreq SuggestionRequest) (*SuggestionResponse, error) {
	body, err := json.Marshal(sreq)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/mix-produtos", c.baseURL), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("mix suggestion failed with status %d", resp.StatusCode)
	}

	var out SuggestionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode suggestions: %w", err)
	}
	return &out, nil
}
