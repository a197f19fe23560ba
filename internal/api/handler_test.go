package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/clinwell/billing/internal/api"
	"github.com/clinwell/billing/internal/entity"
	"github.com/clinwell/billing/internal/mocks"
	"github.com/clinwell/billing/internal/service"
	"github.com/clinwell/billing/pkg/security"
)

const webhookSecret = "dev-secret"

type Tester struct {
	server *httptest.Server
	svc    *mocks.MockService
	auth   *mocks.MockAuthService
}

func NewTester(t *testing.T) Tester {
	t.Helper()

	ctrl := gomock.NewController(t)
	svcMock := mocks.NewMockService(ctrl)
	authMock := mocks.NewMockAuthService(ctrl)

	handler := api.NewHandler(svcMock, true, webhookSecret)
	mw := api.NewMiddleware(authMock, false, "dev", nil)

	server := httptest.NewServer(api.NewRouter(handler, mw))
	t.Cleanup(server.Close)

	return Tester{
		server: server,
		svc:    svcMock,
		auth:   authMock,
	}
}

func (c Tester) expectUser(t *testing.T) entity.User {
	t.Helper()

	user := entity.User{
		ID:        uuid.Must(uuid.NewV4()),
		FirstName: "Test first name",
		LastName:  "Test last name",
		Email:     "user@example.com",
		Role: entity.UserRole{
			Name: entity.RoleReceptionist,
		},
	}

	c.auth.EXPECT().User(gomock.Any(), "dev").Return(user, nil)

	return user
}

func (c Tester) do(t *testing.T, method, path, token string, body any, headers map[string]string) *http.Response {
	t.Helper()

	var reader io.Reader

	if body != nil {
		j, err := json.Marshal(body)
		require.NoError(t, err)

		reader = bytes.NewReader(j)
	}

	req, err := http.NewRequest(method, c.server.URL+path, reader)
	require.NoError(t, err)

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var data T

	err := json.NewDecoder(resp.Body).Decode(&data)
	require.NoError(t, err)

	return data
}

func TestHandler_CreateInvoice(t *testing.T) {
	t.Parallel()

	c := NewTester(t)
	c.expectUser(t)

	due := time.Now().Add(30 * 24 * time.Hour).Truncate(time.Second)

	c.svc.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, params service.CreateInvoiceParams) (entity.Invoice, error) {
			require.Equal(t, entity.InvoiceTypeReceipt, params.Type)
			require.Len(t, params.Items, 1)
			require.Equal(t, int64(25000), params.Items[0].UnitPrice)

			return entity.Invoice{
				ID:            uuid.Must(uuid.NewV4()),
				Number:        12,
				Type:          params.Type,
				ClientName:    params.ClientName,
				Subtotal:      25000,
				Tax:           4750,
				Total:         29750,
				PaymentStatus: entity.PaymentStatusPending,
				DueDate:       params.DueDate,
				IssuedAt:      time.Now(),
			}, nil
		})

	resp := c.do(t, http.MethodPost, "/api/billing/invoices", "dev", api.CreateInvoiceRequest{
		Type:       entity.InvoiceTypeReceipt.String(),
		ClientName: "Juan Soto",
		Items: []api.InvoiceItemRequest{
			{Description: "Consulta general", Quantity: 1, UnitPrice: 25000},
		},
		DueDate: &due,
	}, nil)

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	got := decode[api.CreateInvoiceResponse](t, resp)
	require.Equal(t, int64(12), got.Invoice.Number)
	require.Equal(t, int64(29750), got.Invoice.Total)
	require.Equal(t, entity.PaymentStatusPending.String(), got.Invoice.PaymentStatus)
}

func TestHandler_CreateInvoice_Validation(t *testing.T) {
	t.Parallel()

	c := NewTester(t)
	c.expectUser(t)

	c.svc.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
		Return(entity.Invoice{}, entity.ErrInvalidArgument)

	resp := c.do(t, http.MethodPost, "/api/billing/invoices", "dev", api.CreateInvoiceRequest{
		Type:       entity.InvoiceTypeReceipt.String(),
		ClientName: "Juan Soto",
	}, nil)

	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandler_CreateInvoice_Unauthorized(t *testing.T) {
	t.Parallel()

	c := NewTester(t)

	resp := c.do(t, http.MethodPost, "/api/billing/invoices", "", api.CreateInvoiceRequest{}, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandler_RegisterPayment(t *testing.T) {
	t.Parallel()

	c := NewTester(t)
	c.expectUser(t)

	invoiceID := uuid.Must(uuid.NewV4())

	c.svc.EXPECT().RegisterPayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, params service.RegisterPaymentParams) (entity.Invoice, entity.Payment, error) {
			require.Equal(t, invoiceID, params.InvoiceID)
			require.Equal(t, entity.PaymentMethodCash, params.Method)

			return entity.Invoice{
					ID:            invoiceID,
					Total:         29750,
					PaidAmount:    10000,
					PaymentStatus: entity.PaymentStatusPartial,
					IssuedAt:      time.Now(),
				}, entity.Payment{
					ID:        uuid.Must(uuid.NewV4()),
					InvoiceID: invoiceID,
					Amount:    params.Amount,
					Method:    params.Method,
					CreatedAt: time.Now(),
				}, nil
		})

	resp := c.do(t, http.MethodPost, "/api/billing/invoices/"+invoiceID.String()+"/payments", "dev",
		api.RegisterPaymentRequest{Amount: 10000, Method: entity.PaymentMethodCash.String()}, nil)

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	got := decode[api.RegisterPaymentResponse](t, resp)
	require.Equal(t, entity.PaymentStatusPartial.String(), got.Invoice.PaymentStatus)
	require.Equal(t, int64(10000), got.Payment.Amount)
}

func TestHandler_RegisterPayment_Duplicate(t *testing.T) {
	t.Parallel()

	c := NewTester(t)
	c.expectUser(t)

	invoiceID := uuid.Must(uuid.NewV4())

	c.svc.EXPECT().RegisterPayment(gomock.Any(), gomock.Any()).Return(
		entity.Invoice{ID: invoiceID, PaymentStatus: entity.PaymentStatusPaid, IssuedAt: time.Now()},
		entity.Payment{ID: uuid.Must(uuid.NewV4()), InvoiceID: invoiceID, ExternalPaymentID: "pay-1", CreatedAt: time.Now()},
		entity.ErrDuplicatePayment,
	)

	resp := c.do(t, http.MethodPost, "/api/billing/invoices/"+invoiceID.String()+"/payments", "dev",
		api.RegisterPaymentRequest{Amount: 10000, Method: entity.PaymentMethodGateway.String(), ExternalPaymentID: "pay-1"}, nil)

	// Replays return the committed state, not an error.
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decode[api.RegisterPaymentResponse](t, resp)
	require.Equal(t, "pay-1", got.Payment.ExternalPaymentID)
}

func TestHandler_RegisterPayment_Overpayment(t *testing.T) {
	t.Parallel()

	c := NewTester(t)
	c.expectUser(t)

	invoiceID := uuid.Must(uuid.NewV4())

	c.svc.EXPECT().RegisterPayment(gomock.Any(), gomock.Any()).
		Return(entity.Invoice{}, entity.Payment{}, entity.ErrOverpayment)

	resp := c.do(t, http.MethodPost, "/api/billing/invoices/"+invoiceID.String()+"/payments", "dev",
		api.RegisterPaymentRequest{Amount: 99999999, Method: entity.PaymentMethodCash.String()}, nil)

	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestHandler_Invoice_NotFound(t *testing.T) {
	t.Parallel()

	c := NewTester(t)
	c.expectUser(t)

	id := uuid.Must(uuid.NewV4())

	c.svc.EXPECT().Invoice(gomock.Any(), id).Return(entity.Invoice{}, entity.ErrNotFound)

	resp := c.do(t, http.MethodGet, "/api/billing/invoices/"+id.String(), "dev", nil, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_Invoices(t *testing.T) {
	t.Parallel()

	c := NewTester(t)
	c.expectUser(t)

	c.svc.EXPECT().Invoices(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, filter entity.InvoiceFilter) ([]entity.Invoice, int, error) {
			require.NotNil(t, filter.Status)
			require.Equal(t, entity.PaymentStatusOverdue, *filter.Status)
			require.Equal(t, uint64(10), filter.Limit)
			require.Equal(t, uint64(1), filter.Page)
			require.Equal(t, entity.SortByIssuedAt, filter.SortBy)
			require.Equal(t, entity.DESC, filter.OrderBy)

			return []entity.Invoice{
				{ID: uuid.Must(uuid.NewV4()), Number: 1, PaymentStatus: entity.PaymentStatusPending, IssuedAt: time.Now()},
			}, 1, nil
		})

	resp := c.do(t, http.MethodGet, "/api/billing/invoices?status=OVERDUE", "dev", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decode[api.InvoicesResponse](t, resp)
	require.Equal(t, 1, got.TotalCount)
	require.Len(t, got.Invoices, 1)
}

func TestHandler_Invoices_BadDateBound(t *testing.T) {
	t.Parallel()

	c := NewTester(t)
	c.expectUser(t)

	resp := c.do(t, http.MethodGet, "/api/billing/invoices?from=ayer", "dev", nil, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_Invoices_PageZeroClamped(t *testing.T) {
	t.Parallel()

	c := NewTester(t)
	c.expectUser(t)

	c.svc.EXPECT().Invoices(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, filter entity.InvoiceFilter) ([]entity.Invoice, int, error) {
			require.Equal(t, uint64(1), filter.Page)

			return nil, 0, nil
		})

	resp := c.do(t, http.MethodGet, "/api/billing/invoices?page=0", "dev", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_InvoiceStats(t *testing.T) {
	t.Parallel()

	c := NewTester(t)
	c.expectUser(t)

	c.svc.EXPECT().InvoiceStats(gomock.Any(), gomock.Any(), gomock.Any()).Return(entity.InvoiceStats{
		Paid:    entity.StatusBucket{Count: 2, Total: 59500, Paid: 59500},
		Overdue: entity.StatusBucket{Count: 1, Total: 29750, Unpaid: 29750},
	}, nil)

	resp := c.do(t, http.MethodGet, "/api/billing/invoices/stats?from=2026-01-01&to=2026-02-01", "dev", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decode[api.InvoiceStatsResponse](t, resp)
	require.Equal(t, int64(2), got.Paid.Count)
	require.Equal(t, int64(29750), got.Overdue.Unpaid)
}

func TestHandler_MonthlyReport_MissingPeriod(t *testing.T) {
	t.Parallel()

	c := NewTester(t)
	c.expectUser(t)

	resp := c.do(t, http.MethodGet, "/api/billing/reports/monthly", "dev", nil, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_TaxReport(t *testing.T) {
	t.Parallel()

	c := NewTester(t)
	c.expectUser(t)

	c.svc.EXPECT().TaxReport(gomock.Any(), gomock.Any(), gomock.Any()).Return(entity.TaxReport{
		SalesCount:     3,
		SalesTax:       14250,
		PurchaseCount:  1,
		PurchaseCredit: 4750,
		NetPosition:    9500,
	}, nil)

	resp := c.do(t, http.MethodGet, "/api/billing/reports/tax?from=2026-01-01&to=2026-02-01", "dev", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decode[api.TaxReportResponse](t, resp)
	require.Equal(t, int64(9500), got.NetPosition)
	require.True(t, got.Payable)
}

func gatewayCallbackHeaders(requestID, paymentID string) map[string]string {
	return map[string]string{
		"X-Request-Id": requestID,
		"X-Signature":  security.Sign(webhookSecret, requestID, paymentID),
	}
}

func TestHandler_GatewayCallback(t *testing.T) {
	t.Parallel()

	c := NewTester(t)

	invoiceID := uuid.Must(uuid.NewV4())

	c.svc.EXPECT().ProcessGatewayEvent(gomock.Any(), entity.GatewayEvent{
		Type: entity.GatewayEventTypePayment,
		Data: entity.GatewayEventData{ID: "pay-1"},
	}).Return(entity.Invoice{ID: invoiceID, PaymentStatus: entity.PaymentStatusPaid}, nil)

	req := api.GatewayCallbackRequest{Type: entity.GatewayEventTypePayment}
	req.Data.ID = "pay-1"

	resp := c.do(t, http.MethodPost, "/api/billing/callbacks/gateway", "", req,
		gatewayCallbackHeaders("req-1", "pay-1"))

	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decode[api.GatewayCallbackResponse](t, resp)
	require.Equal(t, invoiceID.String(), got.InvoiceID)
}

func TestHandler_GatewayCallback_BadSignature(t *testing.T) {
	t.Parallel()

	c := NewTester(t)

	req := api.GatewayCallbackRequest{Type: entity.GatewayEventTypePayment}
	req.Data.ID = "pay-1"

	resp := c.do(t, http.MethodPost, "/api/billing/callbacks/gateway", "", req, map[string]string{
		"X-Request-Id": "req-1",
		"X-Signature":  security.Sign("wrong-secret", "req-1", "pay-1"),
	})

	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestHandler_GatewayCallback_GatewayDown(t *testing.T) {
	t.Parallel()

	c := NewTester(t)

	c.svc.EXPECT().ProcessGatewayEvent(gomock.Any(), gomock.Any()).
		Return(entity.Invoice{}, entity.ErrGatewayUnavailable)

	req := api.GatewayCallbackRequest{Type: entity.GatewayEventTypePayment}
	req.Data.ID = "pay-1"

	resp := c.do(t, http.MethodPost, "/api/billing/callbacks/gateway", "", req,
		gatewayCallbackHeaders("req-1", "pay-1"))

	// Non-2xx makes the gateway redeliver; the settlement path is
	// idempotent so the retry is safe.
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestHandler_HealthHandler(t *testing.T) {
	t.Parallel()

	c := NewTester(t)

	resp := c.do(t, http.MethodGet, "/api/health", "", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
