package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/shopspring/decimal"

	"github.com/clinwell/billing/internal/entity"
	"github.com/clinwell/billing/pkg/config"
)

// Client fetches authoritative payment records from the payment processor.
// Reconciliation never trusts notification payloads: every event is
// re-verified through this client with the server-held credential.
type Client struct {
	cfg  config.Gateway
	http *http.Client
}

func NewClient(cfg config.Gateway) *Client {
	const timeout = 10 * time.Second

	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.HTTPClient.Timeout = timeout
	rc.Logger = nil

	return &Client{
		cfg:  cfg,
		http: rc.StandardClient(),
	}
}

type paymentResponse struct {
	ID                string          `json:"id"`
	Status            string          `json:"status"`
	TransactionAmount decimal.Decimal `json:"transaction_amount"`
	DateApproved      time.Time       `json:"date_approved"`
	Payer             struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"payer"`
	Metadata struct {
		PriceEntryIDs []string `json:"price_entry_ids"`
	} `json:"metadata"`
}

func (c *Client) Payment(ctx context.Context, id string) (entity.GatewayPayment, error) {
	reqURL := fmt.Sprintf("%s/v1/payments/%s", c.cfg.BaseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return entity.GatewayPayment{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return entity.GatewayPayment{}, fmt.Errorf("%w: fetch payment %q: %s", entity.ErrGatewayUnavailable, id, err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.GatewayPayment{}, fmt.Errorf("%w: read response for payment %q: %s", entity.ErrGatewayUnavailable, id, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return entity.GatewayPayment{}, fmt.Errorf("payment %q: %w", id, entity.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return entity.GatewayPayment{}, fmt.Errorf("%w: unexpected status code %d, body: %s",
			entity.ErrGatewayUnavailable, resp.StatusCode, body)
	}

	var data paymentResponse

	err = json.Unmarshal(body, &data)
	if err != nil {
		return entity.GatewayPayment{}, fmt.Errorf("decode payment %q: %w", id, err)
	}

	return entity.GatewayPayment{
		ID:     data.ID,
		Status: entity.GatewayPaymentStatus(data.Status),
		// The gateway reports amounts as decimals; the ledger stores whole
		// minor units only.
		Amount:        data.TransactionAmount.Round(0).IntPart(),
		PayerName:     data.Payer.Name,
		PayerEmail:    data.Payer.Email,
		PriceEntryIDs: data.Metadata.PriceEntryIDs,
		ApprovedAt:    data.DateApproved,
		Raw:           body,
	}, nil
}
