// Package erp wraps the Sankhya lookup services the dashboard consumes.
// Order submission itself happens elsewhere; this client only serves the
// product lookups the order form needs.
package erp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Volume is one unit of measure for a product. Factor is the quantity per
// unit relative to the base unit and feeds the unit-price recomputation.
type Volume struct {
	Code   string  `json:"CODVOL"`
	Factor float64 `json:"QUANTIDADE"`
}

// Client wraps interactions with the Sankhya gateway.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient constructs a new client.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Ping checks if the remote gateway is available.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/health", c.baseURL), nil)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sankhya gateway returned status %d", resp.StatusCode)
	}
	return nil
}

// ProductVolumes fetches the units of measure configured for a product.
func (c *Client) ProductVolumes(ctx context.Context, productID int64) ([]Volume, error) {
	endpoint := fmt.Sprintf("%s/produtos/volumes?codProd=%d", c.baseURL, productID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("volumes lookup failed with status %d", resp.StatusCode)
	}

	var volumes []Volume
	if err := json.NewDecoder(resp.Body).Decode(&volumes); err != nil {
		return nil, fmt.Errorf("decode volumes: %w", err)
	}
	return volumes, nil
}

// ProductImageURL builds the gateway URL serving a product image.
func (c *Client) ProductImageURL(productID int64) string {
	return fmt.Sprintf("%s/produtos/imagem?codProd=%s", c.baseURL, url.QueryEscape(fmt.Sprintf("%d", productID)))
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return c.httpClient.Do(req)
}
