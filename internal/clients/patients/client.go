package patients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/clinwell/billing/internal/entity"
	"github.com/clinwell/billing/pkg/transport"
)

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

type patientResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	TaxID   string    `json:"taxId"`
	Address string    `json:"address"`
	Email   string    `json:"email"`
}

func (c *Client) Patient(ctx context.Context, id uuid.UUID) (entity.Patient, error) {
	reqURL := fmt.Sprintf("%s/api/internal/patients/%s", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return entity.Patient{}, fmt.Errorf("create request: %w", err)
	}

	jwt := entity.JWTFromCtx(ctx)
	if jwt != "" {
		req.Header.Set("Authorization", "Bearer "+jwt)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return entity.Patient{}, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.Patient{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusNotFound {
			return entity.Patient{}, fmt.Errorf("patient %s: %w", id, entity.ErrNotFound)
		}

		return entity.Patient{}, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, body)
	}

	var data patientResponse

	err = json.Unmarshal(body, &data)
	if err != nil {
		return entity.Patient{}, fmt.Errorf("decode response: %w", err)
	}

	return entity.Patient{
		ID:      data.ID,
		Name:    data.Name,
		TaxID:   data.TaxID,
		Address: data.Address,
		Email:   data.Email,
	}, nil
}
