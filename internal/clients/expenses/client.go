package expenses

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/clinwell/billing/internal/entity"
	"github.com/clinwell/billing/pkg/transport"
)

// Client reads the external expense ledger consumed by reporting.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout:   2 * time.Second,
			Transport: transport.NewJWTRoundTripper(http.DefaultTransport),
		},
	}
}

type expensesResponse struct {
	Expenses []expenseRecord `json:"expenses"`
}

type expenseRecord struct {
	Amount       int64     `json:"amount"`
	Category     string    `json:"category"`
	PaidAt       time.Time `json:"paidAt"`
	IsDeductible bool      `json:"isDeductible"`
	HasInvoice   bool      `json:"hasInvoice"`
}

func (c *Client) Expenses(ctx context.Context, from, to time.Time) ([]entity.Expense, error) {
	reqURL := fmt.Sprintf("%s/api/internal/expenses?from=%s&to=%s",
		c.baseURL, from.Format(time.RFC3339), to.Format(time.RFC3339))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	jwt := entity.JWTFromCtx(ctx)
	if jwt != "" {
		req.Header.Set("Authorization", "Bearer "+jwt)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, body)
	}

	var data expensesResponse

	err = json.Unmarshal(body, &data)
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	records := make([]entity.Expense, 0, len(data.Expenses))
	for _, e := range data.Expenses {
		records = append(records, entity.Expense{
			Amount:       e.Amount,
			Category:     e.Category,
			PaidAt:       e.PaidAt,
			IsDeductible: e.IsDeductible,
			HasInvoice:   e.HasInvoice,
		})
	}

	return records, nil
}
