package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/clinwell/billing/internal/entity"
	"github.com/clinwell/billing/pkg/transport"
)

// Client resolves catalog price entries referenced by gateway payment
// metadata into invoice line items.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout:   time.Second,
			Transport: transport.NewJWTRoundTripper(http.DefaultTransport),
		},
	}
}

type priceEntryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BasePrice int64  `json:"basePrice"`
}

func (c *Client) Price(ctx context.Context, id string) (entity.PriceEntry, error) {
	reqURL := fmt.Sprintf("%s/api/internal/prices/%s", c.baseURL, url.PathEscape(id))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return entity.PriceEntry{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return entity.PriceEntry{}, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.PriceEntry{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusNotFound {
			return entity.PriceEntry{}, fmt.Errorf("price entry %q: %w", id, entity.ErrNotFound)
		}

		return entity.PriceEntry{}, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, body)
	}

	var data priceEntryResponse

	err = json.Unmarshal(body, &data)
	if err != nil {
		return entity.PriceEntry{}, fmt.Errorf("decode response: %w", err)
	}

	return entity.PriceEntry{
		ID:        data.ID,
		Name:      data.Name,
		BasePrice: data.BasePrice,
	}, nil
}
