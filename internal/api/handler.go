package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/clinwell/billing/internal/entity"
	"github.com/clinwell/billing/internal/service"
	"github.com/clinwell/billing/pkg/security"
)

// @title Billing API
// @version 1.0
// @description Clinic billing: invoices, payments and tax reporting
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-Api-Key

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks

type Service interface {
	CreateInvoice(ctx context.Context, params service.CreateInvoiceParams) (entity.Invoice, error)
	RegisterPayment(ctx context.Context, params service.RegisterPaymentParams) (entity.Invoice, entity.Payment, error)
	Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error)
	Invoices(ctx context.Context, filter entity.InvoiceFilter) ([]entity.Invoice, int, error)
	InvoiceStats(ctx context.Context, from, to *time.Time) (entity.InvoiceStats, error)
	MonthlyReport(ctx context.Context, from, to time.Time) ([]entity.MonthlyReportRow, error)
	TaxReport(ctx context.Context, from, to time.Time) (entity.TaxReport, error)
	ProcessGatewayEvent(ctx context.Context, event entity.GatewayEvent) (entity.Invoice, error)
}

type Handler struct {
	s                   Service
	webhookCheckEnabled bool
	webhookSecret       string
}

func NewHandler(s Service, webhookCheckEnabled bool, webhookSecret string) *Handler {
	return &Handler{
		s:                   s,
		webhookCheckEnabled: webhookCheckEnabled,
		webhookSecret:       webhookSecret,
	}
}

type InvoiceItemRequest struct {
	Description  string `json:"description"`
	Quantity     int64  `json:"quantity"`
	UnitPrice    int64  `json:"unitPrice"`
	Discount     int64  `json:"discount"`
	PriceEntryID string `json:"priceEntryId"`
}

type CreateInvoiceRequest struct {
	Type          string               `json:"type"`
	PatientID     *uuid.UUID           `json:"patientId"`
	ClientName    string               `json:"clientName"`
	ClientTaxID   string               `json:"clientTaxId"`
	ClientAddress string               `json:"clientAddress"`
	ClientEmail   string               `json:"clientEmail"`
	Items         []InvoiceItemRequest `json:"items"`
	DueDate       *time.Time           `json:"dueDate"`
	Notes         string               `json:"notes"`
}

type InvoiceItemEntity struct {
	ID           string `json:"id"`
	Description  string `json:"description"`
	Quantity     int64  `json:"quantity"`
	UnitPrice    int64  `json:"unitPrice"`
	Discount     int64  `json:"discount"`
	PriceEntryID string `json:"priceEntryId,omitempty"`
	LineSubtotal int64  `json:"lineSubtotal"`
}

type InvoiceEntity struct {
	ID            string              `json:"id"`
	Number        int64               `json:"number"`
	Type          string              `json:"type"`
	PatientID     *uuid.UUID          `json:"patientId,omitempty"`
	ClientName    string              `json:"clientName"`
	ClientTaxID   string              `json:"clientTaxId,omitempty"`
	ClientAddress string              `json:"clientAddress,omitempty"`
	ClientEmail   string              `json:"clientEmail,omitempty"`
	Items         []InvoiceItemEntity `json:"items,omitempty"`
	Subtotal      int64               `json:"subtotal"`
	Tax           int64               `json:"tax"`
	Total         int64               `json:"total"`
	PaymentStatus string              `json:"paymentStatus"`
	PaidAmount    int64               `json:"paidAmount"`
	PaidAt        *time.Time          `json:"paidAt,omitempty"`
	DueDate       *time.Time          `json:"dueDate,omitempty"`
	Notes         string              `json:"notes,omitempty"`
	IssuedAt      time.Time           `json:"issuedAt"`
}

type CreateInvoiceResponse struct {
	Invoice InvoiceEntity `json:"invoice"`
}

// CreateInvoice issues a new invoice
// @Summary Create invoice
// @Description Issues an invoice with an allocated sequential number
// @Tags invoices
// @Accept json
// @Produce json
// @Param CreateInvoiceRequest body CreateInvoiceRequest true "Invoice creation request"
// @Success 201 {object} CreateInvoiceResponse
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 404 {object} ErrorResponse "Patient not found"
// @Failure 422 {object} ErrorResponse "Invalid invoice data"
// @Failure 500 {object} ErrorResponse "Failed to create invoice"
// @Router /billing/invoices [post]
// @Security BearerAuth
func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateInvoiceRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	items := make([]service.InvoiceItemParams, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.InvoiceItemParams{
			Description:  it.Description,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			Discount:     it.Discount,
			PriceEntryID: it.PriceEntryID,
		})
	}

	inv, err := h.s.CreateInvoice(ctx, service.CreateInvoiceParams{
		Type:          entity.InvoiceType(req.Type),
		PatientID:     req.PatientID,
		ClientName:    req.ClientName,
		ClientTaxID:   req.ClientTaxID,
		ClientAddress: req.ClientAddress,
		ClientEmail:   req.ClientEmail,
		Items:         items,
		DueDate:       req.DueDate,
		Notes:         req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Paciente no encontrado")
		case errors.Is(err, entity.ErrInvalidArgument):
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Datos de la boleta inválidos")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "No se pudo emitir la boleta")
		}

		return
	}

	SendJSON(ctx, w, http.StatusCreated, CreateInvoiceResponse{Invoice: invoiceToAPI(inv, time.Now())})
}

type PaymentEntity struct {
	ID                string    `json:"id"`
	InvoiceID         string    `json:"invoiceId"`
	Amount            int64     `json:"amount"`
	Method            string    `json:"method"`
	Reference         string    `json:"reference,omitempty"`
	ExternalPaymentID string    `json:"externalPaymentId,omitempty"`
	ExternalStatus    string    `json:"externalStatus,omitempty"`
	Notes             string    `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

type RegisterPaymentRequest struct {
	Amount            int64  `json:"amount"`
	Method            string `json:"method"`
	Reference         string `json:"reference"`
	ExternalPaymentID string `json:"externalPaymentId"`
	Notes             string `json:"notes"`
}

type RegisterPaymentResponse struct {
	Invoice InvoiceEntity `json:"invoice"`
	Payment PaymentEntity `json:"payment"`
}

// RegisterPayment appends a payment to an invoice
// @Summary Register payment
// @Description Registers a payment against an invoice; replays of an external payment id return the already committed state
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Param RegisterPaymentRequest body RegisterPaymentRequest true "Payment registration request"
// @Success 201 {object} RegisterPaymentResponse
// @Success 200 {object} RegisterPaymentResponse "Payment was already registered"
// @Failure 400 {object} ErrorResponse "Invalid JSON or invoice id"
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 409 {object} ErrorResponse "Payment exceeds the outstanding balance"
// @Failure 422 {object} ErrorResponse "Invalid payment data"
// @Failure 500 {object} ErrorResponse "Failed to register payment"
// @Router /billing/invoices/{id}/payments [post]
// @Security BearerAuth
func (h *Handler) RegisterPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	invoiceID, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'id' debe ser un UUID")
		return
	}

	var req RegisterPaymentRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	inv, p, err := h.s.RegisterPayment(ctx, service.RegisterPaymentParams{
		InvoiceID:         invoiceID,
		Amount:            req.Amount,
		Method:            entity.PaymentMethod(req.Method),
		Reference:         req.Reference,
		ExternalPaymentID: req.ExternalPaymentID,
		Notes:             req.Notes,
	})

	now := time.Now()

	switch {
	case err == nil:
		SendJSON(ctx, w, http.StatusCreated, RegisterPaymentResponse{
			Invoice: invoiceToAPI(inv, now),
			Payment: paymentToAPI(p),
		})
	case errors.Is(err, entity.ErrDuplicatePayment):
		SendJSON(ctx, w, http.StatusOK, RegisterPaymentResponse{
			Invoice: invoiceToAPI(inv, now),
			Payment: paymentToAPI(p),
		})
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "Boleta no encontrada")
	case errors.Is(err, entity.ErrOverpayment):
		SendJSONErr(ctx, w, http.StatusConflict, err, "El pago excede el saldo pendiente")
	case errors.Is(err, entity.ErrInvalidArgument):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Datos del pago inválidos")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "No se pudo registrar el pago")
	}
}

type InvoiceResponse struct {
	Invoice InvoiceEntity `json:"invoice"`
}

// Invoice returns one invoice with its items
// @Summary Get invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Success 200 {object} InvoiceResponse
// @Failure 400 {object} ErrorResponse "Invalid invoice id"
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 500 {object} ErrorResponse "Failed to get invoice"
// @Router /billing/invoices/{id} [get]
// @Security BearerAuth
func (h *Handler) Invoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'id' debe ser un UUID")
		return
	}

	inv, err := h.s.Invoice(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Boleta no encontrada")
		} else {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Error interno")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, InvoiceResponse{Invoice: invoiceToAPI(inv, time.Now())})
}

type InvoicesResponse struct {
	Invoices   []InvoiceEntity `json:"invoices"`
	TotalCount int             `json:"totalCount"`
}

// Invoices lists invoices with filters and pagination
// @Summary List invoices
// @Tags invoices
// @Produce json
// @Param status query string false "Filter by payment status (PENDING, PARTIAL, PAID, OVERDUE)"
// @Param type query string false "Filter by invoice type (RECEIPT, TAX_INVOICE)"
// @Param patientId query string false "Filter by originating patient"
// @Param from query string false "Issued-at lower bound (RFC3339 or YYYY-MM-DD)"
// @Param to query string false "Issued-at upper bound (RFC3339 or YYYY-MM-DD)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param page query int false "Page number (default 1)"
// @Param sortBy query string false "Sort column (number, total, issued_at, due_date)"
// @Param orderBy query string false "Sort order (asc, desc)"
// @Success 200 {object} InvoicesResponse
// @Failure 400 {object} ErrorResponse "Invalid date bound"
// @Failure 500 {object} ErrorResponse "Failed to list invoices"
// @Router /billing/invoices [get]
// @Security BearerAuth
func (h *Handler) Invoices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := parseInvoiceFilter(r.URL.Query())
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Rango de fechas inválido")
		return
	}

	invs, totalCount, err := h.s.Invoices(ctx, filter)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "No se pudo obtener el listado de boletas")
		return
	}

	now := time.Now()
	res := make([]InvoiceEntity, 0, len(invs))

	for _, inv := range invs {
		res = append(res, invoiceToAPI(inv, now))
	}

	SendJSON(ctx, w, http.StatusOK, InvoicesResponse{Invoices: res, TotalCount: totalCount})
}

type StatusBucketEntity struct {
	Count  int64 `json:"count"`
	Total  int64 `json:"total"`
	Paid   int64 `json:"paid"`
	Unpaid int64 `json:"unpaid"`
}

type InvoiceStatsResponse struct {
	Pending StatusBucketEntity `json:"pending"`
	Partial StatusBucketEntity `json:"partial"`
	Paid    StatusBucketEntity `json:"paid"`
	Overdue StatusBucketEntity `json:"overdue"`
}

// InvoiceStats aggregates invoices by effective payment status
// @Summary Invoice statistics
// @Description Counts and amounts per status; unpaid invoices past due date show up in the overdue bucket
// @Tags reports
// @Produce json
// @Param from query string false "Issued-at lower bound (RFC3339 or YYYY-MM-DD)"
// @Param to query string false "Issued-at upper bound (RFC3339 or YYYY-MM-DD)"
// @Success 200 {object} InvoiceStatsResponse
// @Failure 400 {object} ErrorResponse "Invalid date bound"
// @Failure 500 {object} ErrorResponse "Failed to aggregate invoices"
// @Router /billing/invoices/stats [get]
// @Security BearerAuth
func (h *Handler) InvoiceStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	from, err := parseTimeParam(r.URL.Query().Get("from"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'from' inválido")
		return
	}

	to, err := parseTimeParam(r.URL.Query().Get("to"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'to' inválido")
		return
	}

	stats, err := h.s.InvoiceStats(ctx, from, to)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "No se pudieron calcular las estadísticas")
		return
	}

	SendJSON(ctx, w, http.StatusOK, InvoiceStatsResponse{
		Pending: bucketToAPI(stats.Pending),
		Partial: bucketToAPI(stats.Partial),
		Paid:    bucketToAPI(stats.Paid),
		Overdue: bucketToAPI(stats.Overdue),
	})
}

type MonthlyReportRowEntity struct {
	Month   string `json:"month"` // YYYY-MM
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
	Profit  int64  `json:"profit"`
}

type MonthlyReportResponse struct {
	Months []MonthlyReportRowEntity `json:"months"`
}

// MonthlyReport returns per-month income, expense and profit
// @Summary Monthly report
// @Tags reports
// @Produce json
// @Param from query string true "Period start (RFC3339 or YYYY-MM-DD)"
// @Param to query string true "Period end (RFC3339 or YYYY-MM-DD)"
// @Success 200 {object} MonthlyReportResponse
// @Failure 400 {object} ErrorResponse "Missing or invalid period bounds"
// @Failure 500 {object} ErrorResponse "Failed to build the report"
// @Router /billing/reports/monthly [get]
// @Security BearerAuth
func (h *Handler) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	from, to, err := parsePeriod(r.URL.Query())
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Periodo inválido")
		return
	}

	rows, err := h.s.MonthlyReport(ctx, from, to)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "No se pudo generar el informe mensual")
		return
	}

	res := make([]MonthlyReportRowEntity, 0, len(rows))
	for _, row := range rows {
		res = append(res, MonthlyReportRowEntity{
			Month:   row.Month.Format("2006-01"),
			Income:  row.Income,
			Expense: row.Expense,
			Profit:  row.Profit,
		})
	}

	SendJSON(ctx, w, http.StatusOK, MonthlyReportResponse{Months: res})
}

type TaxReportResponse struct {
	From           time.Time `json:"from"`
	To             time.Time `json:"to"`
	SalesCount     int64     `json:"salesCount"`
	SalesTax       int64     `json:"salesTax"`
	PurchaseCount  int64     `json:"purchaseCount"`
	PurchaseCredit int64     `json:"purchaseCredit"`
	NetPosition    int64     `json:"netPosition"`
	Payable        bool      `json:"payable"`
}

// TaxReport returns the tax position for a period
// @Summary Tax report
// @Description Sales tax from stored invoice tax, purchase credit from deductible invoice-backed expenses
// @Tags reports
// @Produce json
// @Param from query string true "Period start (RFC3339 or YYYY-MM-DD)"
// @Param to query string true "Period end (RFC3339 or YYYY-MM-DD)"
// @Success 200 {object} TaxReportResponse
// @Failure 400 {object} ErrorResponse "Missing or invalid period bounds"
// @Failure 500 {object} ErrorResponse "Failed to build the report"
// @Router /billing/reports/tax [get]
// @Security BearerAuth
func (h *Handler) TaxReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	from, to, err := parsePeriod(r.URL.Query())
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Periodo inválido")
		return
	}

	report, err := h.s.TaxReport(ctx, from, to)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "No se pudo generar el informe de impuestos")
		return
	}

	SendJSON(ctx, w, http.StatusOK, TaxReportResponse{
		From:           report.From,
		To:             report.To,
		SalesCount:     report.SalesCount,
		SalesTax:       report.SalesTax,
		PurchaseCount:  report.PurchaseCount,
		PurchaseCredit: report.PurchaseCredit,
		NetPosition:    report.NetPosition,
		Payable:        report.Payable(),
	})
}

type GatewayCallbackRequest struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

type GatewayCallbackResponse struct {
	InvoiceID string `json:"invoiceId,omitempty"`
}

// GatewayCallback settles an approved gateway payment
// @Summary Handle gateway callback
// @Description Settles the referenced payment into a paid invoice; duplicate deliveries return the already committed invoice
// @Tags payments
// @Accept json
// @Produce json
// @Param GatewayCallbackRequest body GatewayCallbackRequest true "Gateway notification"
// @Success 200 {object} GatewayCallbackResponse
// @Failure 400 {object} ErrorResponse "Invalid JSON or event payload"
// @Failure 403 {object} ErrorResponse "Signature check failed"
// @Failure 502 {object} ErrorResponse "Gateway unavailable, retry later"
// @Failure 500 {object} ErrorResponse "Failed to process the event"
// @Router /billing/callbacks/gateway [post]
func (h *Handler) GatewayCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req GatewayCallbackRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	err = h.verifyWebhookSignature(r, req.Data.ID)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusForbidden, fmt.Errorf("verify webhook signature: %w", err), "Firma inválida")
		return
	}

	inv, err := h.s.ProcessGatewayEvent(ctx, entity.GatewayEvent{
		Type: req.Type,
		Data: entity.GatewayEventData{ID: req.Data.ID},
	})
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrGatewayUnavailable):
			// The sender redelivers on non-2xx; redelivery is safe because
			// settlement is idempotent on the external payment id.
			SendJSONErr(ctx, w, http.StatusBadGateway, err, "Pasarela de pagos no disponible")
		case errors.Is(err, entity.ErrInvalidArgument):
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Notificación inválida")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "No se pudo procesar la notificación")
		}

		return
	}

	resp := GatewayCallbackResponse{}
	if inv.ID != uuid.Nil {
		resp.InvoiceID = inv.ID.String()
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

func (h *Handler) verifyWebhookSignature(r *http.Request, paymentID string) error {
	if !h.webhookCheckEnabled {
		return nil
	}

	return security.VerifySignature(
		h.webhookSecret,
		r.Header.Get("X-Request-Id"),
		paymentID,
		r.Header.Get("X-Signature"),
	)
}

// HealthHandler - returns service health status.
// @Summary Health check
// @Tags health
// @Accept text/plain
// @Produce text/plain
// @Success 200 {string} string "ok"
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("ok\n"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "health check failed")
		return
	}
}

func parseInvoiceFilter(url url.Values) (entity.InvoiceFilter, error) {
	const (
		defaultLimit uint64 = 10
		maxLimit     uint64 = 100
		defaultPage  uint64 = 1
	)

	qLimit := url.Get("limit")
	qPage := url.Get("page")
	sortBy := entity.InvoiceSortCol(url.Get("sortBy"))
	orderBy := entity.OrderByCol(url.Get("orderBy"))

	limit, err := strconv.ParseUint(qLimit, 10, 64)
	if err != nil {
		limit = defaultLimit
	}

	if limit > maxLimit {
		limit = maxLimit
	}

	page, err := strconv.ParseUint(qPage, 10, 64)
	if err != nil || page < 1 {
		page = defaultPage
	}

	if !sortBy.IsValid() {
		sortBy = entity.SortByIssuedAt
	}

	if !orderBy.IsValid() {
		orderBy = entity.DESC
	}

	filter := entity.InvoiceFilter{
		Page:    page,
		Limit:   limit,
		SortBy:  sortBy,
		OrderBy: orderBy,
	}

	if s := url.Get("status"); s != "" {
		status := entity.PaymentStatus(s)
		filter.Status = &status
	}

	if t := url.Get("type"); t != "" {
		invoiceType := entity.InvoiceType(t)
		filter.Type = &invoiceType
	}

	if p := url.Get("patientId"); p != "" {
		if patientID, err := uuid.FromString(p); err == nil {
			filter.Patient = &patientID
		}
	}

	from, err := parseTimeParam(url.Get("from"))
	if err != nil {
		return entity.InvoiceFilter{}, fmt.Errorf("%w: 'from'", entity.ErrInvalidArgument)
	}

	filter.IssuedFrom = from

	to, err := parseTimeParam(url.Get("to"))
	if err != nil {
		return entity.InvoiceFilter{}, fmt.Errorf("%w: 'to'", entity.ErrInvalidArgument)
	}

	filter.IssuedTo = to

	return filter, nil
}

func invoiceToAPI(inv entity.Invoice, now time.Time) InvoiceEntity {
	items := make([]InvoiceItemEntity, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, InvoiceItemEntity{
			ID:           it.ID.String(),
			Description:  it.Description,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			Discount:     it.Discount,
			PriceEntryID: it.PriceEntryID,
			LineSubtotal: it.LineSubtotal,
		})
	}

	return InvoiceEntity{
		ID:            inv.ID.String(),
		Number:        inv.Number,
		Type:          inv.Type.String(),
		PatientID:     inv.Patient,
		ClientName:    inv.ClientName,
		ClientTaxID:   inv.ClientTaxID,
		ClientAddress: inv.ClientAddress,
		ClientEmail:   inv.ClientEmail,
		Items:         items,
		Subtotal:      inv.Subtotal,
		Tax:           inv.Tax,
		Total:         inv.Total,
		PaymentStatus: inv.EffectiveStatus(now).String(),
		PaidAmount:    inv.PaidAmount,
		PaidAt:        inv.PaidAt,
		DueDate:       inv.DueDate,
		Notes:         inv.Notes,
		IssuedAt:      inv.IssuedAt,
	}
}

func paymentToAPI(p entity.Payment) PaymentEntity {
	return PaymentEntity{
		ID:                p.ID.String(),
		InvoiceID:         p.InvoiceID.String(),
		Amount:            p.Amount,
		Method:            p.Method.String(),
		Reference:         p.Reference,
		ExternalPaymentID: p.ExternalPaymentID,
		ExternalStatus:    p.ExternalStatus,
		Notes:             p.Notes,
		CreatedAt:         p.CreatedAt,
	}
}

func bucketToAPI(b entity.StatusBucket) StatusBucketEntity {
	return StatusBucketEntity{
		Count:  b.Count,
		Total:  b.Total,
		Paid:   b.Paid,
		Unpaid: b.Unpaid,
	}
}
