package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sethvargo/go-retry"

	"github.com/clinwell/billing/internal/entity"
	"github.com/clinwell/billing/internal/tax"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	CreateInvoice(ctx context.Context, inv entity.Invoice) (entity.Invoice, error)
	RegisterPayment(ctx context.Context, p entity.Payment) (entity.Invoice, entity.Payment, error)
	CreatePaidInvoice(ctx context.Context, inv entity.Invoice, p entity.Payment) (entity.Invoice, entity.Payment, error)
	Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error)
	Invoices(ctx context.Context, f entity.InvoiceFilter) ([]entity.Invoice, int, error)
	PaymentByExternalID(ctx context.Context, externalID string) (entity.Payment, error)
	InvoiceStats(ctx context.Context, from, to *time.Time, now time.Time) (entity.InvoiceStats, error)
	MonthlyIncome(ctx context.Context, from, to time.Time) ([]entity.MonthlyIncome, error)
	PaidInvoiceTax(ctx context.Context, from, to time.Time) (count, taxTotal int64, err error)
	OverdueInvoices(ctx context.Context, now time.Time) ([]entity.Invoice, error)
}

type PatientService interface {
	Patient(ctx context.Context, id uuid.UUID) (entity.Patient, error)
}

type CatalogService interface {
	Price(ctx context.Context, id string) (entity.PriceEntry, error)
}

type ExpenseService interface {
	Expenses(ctx context.Context, from, to time.Time) ([]entity.Expense, error)
}

type Gateway interface {
	Payment(ctx context.Context, id string) (entity.GatewayPayment, error)
}

type Auditor interface {
	Record(ctx context.Context, e entity.AuditEntry)
}

type Notifier interface {
	SendInvoiceSettled(ctx context.Context, inv entity.Invoice)
	SendPaymentReminder(ctx context.Context, inv entity.Invoice)
}

type Service struct {
	repo     Repository
	patients PatientService
	catalog  CatalogService
	expenses ExpenseService
	gateway  Gateway
	audit    Auditor
	notify   Notifier
}

func New(
	repo Repository,
	patients PatientService,
	catalog CatalogService,
	expenses ExpenseService,
	gateway Gateway,
	audit Auditor,
	notify Notifier,
) *Service {
	return &Service{
		repo:     repo,
		patients: patients,
		catalog:  catalog,
		expenses: expenses,
		gateway:  gateway,
		audit:    audit,
		notify:   notify,
	}
}

type InvoiceItemParams struct {
	Description  string
	Quantity     int64
	UnitPrice    int64
	Discount     int64
	PriceEntryID string
}

type CreateInvoiceParams struct {
	Type      entity.InvoiceType
	PatientID *uuid.UUID

	// Client identity, used as the invoice snapshot when no patient
	// reference is supplied.
	ClientName    string
	ClientTaxID   string
	ClientAddress string
	ClientEmail   string

	Items   []InvoiceItemParams
	DueDate *time.Time
	Notes   string
}

func (s *Service) CreateInvoice(ctx context.Context, params CreateInvoiceParams) (entity.Invoice, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Invoice{}, err
	}

	err = params.Type.Validate()
	if err != nil {
		return entity.Invoice{}, err
	}

	if len(params.Items) == 0 {
		return entity.Invoice{}, fmt.Errorf("%w: invoice must have at least one item", entity.ErrInvalidArgument)
	}

	items := make([]entity.InvoiceItem, 0, len(params.Items))

	for _, p := range params.Items {
		item := entity.InvoiceItem{
			ID:           uuid.Must(uuid.NewV4()),
			Description:  p.Description,
			Quantity:     p.Quantity,
			UnitPrice:    p.UnitPrice,
			Discount:     p.Discount,
			PriceEntryID: p.PriceEntryID,
			LineSubtotal: tax.LineSubtotal(p.Quantity, p.UnitPrice, p.Discount),
		}

		err = item.Validate()
		if err != nil {
			return entity.Invoice{}, err
		}

		items = append(items, item)
	}

	inv := entity.Invoice{
		ID:            uuid.Must(uuid.NewV4()),
		Number:        0, // Fill in by CreateInvoice repository method.
		Type:          params.Type,
		Patient:       params.PatientID,
		ClientName:    params.ClientName,
		ClientTaxID:   params.ClientTaxID,
		ClientAddress: params.ClientAddress,
		ClientEmail:   params.ClientEmail,
		Items:         items,
		PaymentStatus: entity.PaymentStatusPending,
		DueDate:       params.DueDate,
		Notes:         params.Notes,
		IssuedAt:      time.Now(),
	}

	if params.PatientID != nil {
		patient, err := s.patients.Patient(ctx, *params.PatientID)
		if err != nil {
			return entity.Invoice{}, fmt.Errorf("resolve patient %s: %w", *params.PatientID, err)
		}

		// Identity is copied at issue time. Later patient-record edits
		// never change an issued invoice.
		inv.ClientName = patient.Name
		inv.ClientTaxID = patient.TaxID
		inv.ClientAddress = patient.Address
		inv.ClientEmail = patient.Email
	}

	if inv.ClientName == "" {
		return entity.Invoice{}, fmt.Errorf("%w: client name is empty", entity.ErrInvalidArgument)
	}

	if inv.Type == entity.InvoiceTypeTaxInvoice && inv.ClientTaxID == "" {
		return entity.Invoice{}, fmt.Errorf("%w: tax invoice requires a client tax id", entity.ErrInvalidArgument)
	}

	if inv.ClientTaxID != "" && !tax.ValidateRUT(inv.ClientTaxID) {
		return entity.Invoice{}, fmt.Errorf("%w: client tax id %q has a bad check digit", entity.ErrInvalidArgument, inv.ClientTaxID)
	}

	totals := tax.InvoiceTotals(items)
	inv.Subtotal = totals.Subtotal
	inv.Tax = totals.Tax
	inv.Total = totals.Total

	inv, err = s.repo.CreateInvoice(ctx, inv)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("create invoice: %w", err)
	}

	s.audit.Record(ctx, entity.AuditEntry{
		Actor:        user.ID.String(),
		Action:       entity.AuditActionInvoiceCreated,
		ResourceKind: "invoice",
		ResourceID:   inv.ID.String(),
		Details: map[string]any{
			"number": inv.Number,
			"type":   inv.Type.String(),
			"total":  inv.Total,
		},
		Origin: entity.OriginFromCtx(ctx),
		At:     time.Now(),
	})

	slog.InfoContext(ctx, fmt.Sprintf("Issued %s #%d for %q, total %d", inv.Type, inv.Number, inv.ClientName, inv.Total))

	return inv, nil
}

type RegisterPaymentParams struct {
	InvoiceID         uuid.UUID
	Amount            int64
	Method            entity.PaymentMethod
	Reference         string
	ExternalPaymentID string
	Notes             string
}

// RegisterPayment appends a payment to an invoice and moves the invoice's
// payment status forward. Replays of an already-registered external payment
// id return the committed (invoice, payment) pair together with
// ErrDuplicatePayment so callers can tell a replay from a new registration.
func (s *Service) RegisterPayment(ctx context.Context, params RegisterPaymentParams) (entity.Invoice, entity.Payment, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Invoice{}, entity.Payment{}, err
	}

	if params.Amount <= 0 {
		return entity.Invoice{}, entity.Payment{}, fmt.Errorf(
			"%w: payment amount %d must be positive", entity.ErrInvalidArgument, params.Amount)
	}

	err = params.Method.Validate()
	if err != nil {
		return entity.Invoice{}, entity.Payment{}, err
	}

	p := entity.Payment{
		ID:                uuid.Must(uuid.NewV4()),
		InvoiceID:         params.InvoiceID,
		Amount:            params.Amount,
		Method:            params.Method,
		Reference:         params.Reference,
		ExternalPaymentID: params.ExternalPaymentID,
		Notes:             params.Notes,
		CreatedAt:         time.Now(),
	}

	inv, p, err := s.registerPayment(ctx, p)
	if err != nil {
		if errors.Is(err, entity.ErrDuplicatePayment) {
			slog.InfoContext(ctx, fmt.Sprintf("Payment %q already registered against invoice #%d", p.ExternalPaymentID, inv.Number))

			return inv, p, err
		}

		return entity.Invoice{}, entity.Payment{}, fmt.Errorf("register payment: %w", err)
	}

	s.audit.Record(ctx, entity.AuditEntry{
		Actor:        user.ID.String(),
		Action:       entity.AuditActionPaymentRegistered,
		ResourceKind: "payment",
		ResourceID:   p.ID.String(),
		Details: map[string]any{
			"invoice_id": inv.ID.String(),
			"amount":     p.Amount,
			"method":     p.Method.String(),
			"status":     inv.PaymentStatus.String(),
		},
		Origin: entity.OriginFromCtx(ctx),
		At:     time.Now(),
	})

	if inv.PaymentStatus == entity.PaymentStatusPaid {
		s.notify.SendInvoiceSettled(ctx, inv)
	}

	slog.InfoContext(ctx, fmt.Sprintf("Registered %s payment of %d against invoice #%d, status %s",
		p.Method, p.Amount, inv.Number, inv.PaymentStatus))

	return inv, p, nil
}

// registerPayment retries serialization and deadlock aborts a few times
// before giving up. Replays must not be retried.
func (s *Service) registerPayment(ctx context.Context, p entity.Payment) (entity.Invoice, entity.Payment, error) {
	var (
		inv  entity.Invoice
		pay  entity.Payment
		errR error
	)

	backoff := retry.WithMaxRetries(3, retry.NewFibonacci(50*time.Millisecond))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		inv, pay, errR = s.repo.RegisterPayment(ctx, p)
		if errors.Is(errR, entity.ErrTxConflict) {
			return retry.RetryableError(errR)
		}

		return errR
	})

	return inv, pay, err
}

func (s *Service) Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	inv, err := s.repo.Invoice(ctx, id)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get invoice %s: %w", id, err)
	}

	return inv, nil
}

func (s *Service) Invoices(ctx context.Context, filter entity.InvoiceFilter) ([]entity.Invoice, int, error) {
	invs, count, err := s.repo.Invoices(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list invoices: %w", err)
	}

	return invs, count, nil
}

func (s *Service) InvoiceStats(ctx context.Context, from, to *time.Time) (entity.InvoiceStats, error) {
	stats, err := s.repo.InvoiceStats(ctx, from, to, time.Now())
	if err != nil {
		return entity.InvoiceStats{}, fmt.Errorf("invoice stats: %w", err)
	}

	return stats, nil
}
