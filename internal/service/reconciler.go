package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/clinwell/billing/internal/entity"
	"github.com/clinwell/billing/internal/tax"
)

// ProcessGatewayEvent settles an approved gateway payment into a paid
// invoice. The notification payload is only trusted for the payment id; the
// authoritative record is re-fetched from the gateway. Redeliveries converge
// on the invoice committed by the first delivery.
func (s *Service) ProcessGatewayEvent(ctx context.Context, event entity.GatewayEvent) (entity.Invoice, error) {
	if event.Type != entity.GatewayEventTypePayment {
		slog.InfoContext(ctx, fmt.Sprintf("Ignoring gateway event of type %q", event.Type))

		return entity.Invoice{}, nil
	}

	if event.Data.ID == "" {
		return entity.Invoice{}, fmt.Errorf("%w: gateway payment event without an id", entity.ErrInvalidArgument)
	}

	payment, err := s.gateway.Payment(ctx, event.Data.ID)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("fetch gateway payment %q: %w", event.Data.ID, err)
	}

	if payment.Status != entity.GatewayPaymentStatusApproved {
		slog.InfoContext(ctx, fmt.Sprintf("Gateway payment %q is %q, nothing to settle", payment.ID, payment.Status))

		return entity.Invoice{}, nil
	}

	// Payments must carry money. Acknowledging here keeps a malformed record
	// from looping through redeliveries forever.
	if payment.Amount <= 0 {
		slog.WarnContext(ctx, fmt.Sprintf("Gateway payment %q approved with non-positive amount %d, nothing to settle",
			payment.ID, payment.Amount))

		return entity.Invoice{}, nil
	}

	existing, err := s.repo.PaymentByExternalID(ctx, payment.ID)
	if err == nil {
		return s.settledInvoice(ctx, existing)
	}

	if !errors.Is(err, entity.ErrNotFound) {
		return entity.Invoice{}, fmt.Errorf("look up payment %q: %w", payment.ID, err)
	}

	inv, err := s.buildGatewayInvoice(ctx, payment)
	if err != nil {
		return entity.Invoice{}, err
	}

	p := entity.Payment{
		ID:                uuid.Must(uuid.NewV4()),
		Amount:            payment.Amount,
		Method:            entity.PaymentMethodGateway,
		ExternalPaymentID: payment.ID,
		ExternalStatus:    payment.Status.String(),
		RawResponse:       payment.Raw,
		CreatedAt:         time.Now(),
	}

	inv, p, err = s.repo.CreatePaidInvoice(ctx, inv, p)
	if err != nil {
		// A concurrent delivery won the insert race. Its invoice is the
		// one that exists; ours rolled back whole.
		if errors.Is(err, entity.ErrDuplicatePayment) {
			existing, lookupErr := s.repo.PaymentByExternalID(ctx, payment.ID)
			if lookupErr != nil {
				return entity.Invoice{}, fmt.Errorf("look up payment %q after lost race: %w", payment.ID, lookupErr)
			}

			return s.settledInvoice(ctx, existing)
		}

		return entity.Invoice{}, fmt.Errorf("settle gateway payment %q: %w", payment.ID, err)
	}

	s.audit.Record(ctx, entity.AuditEntry{
		Actor:        entity.SystemActor,
		Action:       entity.AuditActionPaymentReconciled,
		ResourceKind: "payment",
		ResourceID:   p.ID.String(),
		Details: map[string]any{
			"invoice_id":          inv.ID.String(),
			"external_payment_id": payment.ID,
			"amount":              p.Amount,
		},
		Origin: entity.OriginFromCtx(ctx),
		At:     time.Now(),
	})

	s.notify.SendInvoiceSettled(ctx, inv)

	slog.InfoContext(ctx, fmt.Sprintf("Settled gateway payment %q into invoice #%d for %q, total %d",
		payment.ID, inv.Number, inv.ClientName, inv.Total))

	return inv, nil
}

func (s *Service) settledInvoice(ctx context.Context, p entity.Payment) (entity.Invoice, error) {
	inv, err := s.repo.Invoice(ctx, p.InvoiceID)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get invoice %s for payment %q: %w", p.InvoiceID, p.ExternalPaymentID, err)
	}

	slog.InfoContext(ctx, fmt.Sprintf("Gateway payment %q already settled as invoice #%d", p.ExternalPaymentID, inv.Number))

	return inv, nil
}

// buildGatewayInvoice assembles the receipt for a gateway payment. Line
// items come from the catalog entries referenced in the payment metadata.
// When the references are missing, or their catalog prices no longer add up
// to the charged amount, the charged amount wins: a single line is
// back-computed from it so the stored total matches the money received.
func (s *Service) buildGatewayInvoice(ctx context.Context, payment entity.GatewayPayment) (entity.Invoice, error) {
	var items []entity.InvoiceItem

	for _, entryID := range payment.PriceEntryIDs {
		price, err := s.catalog.Price(ctx, entryID)
		if err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				slog.WarnContext(ctx, fmt.Sprintf("Price entry %q from payment %q not found in catalog", entryID, payment.ID))

				items = nil

				break
			}

			return entity.Invoice{}, fmt.Errorf("resolve price entry %q: %w", entryID, err)
		}

		items = append(items, entity.InvoiceItem{
			ID:           uuid.Must(uuid.NewV4()),
			Description:  price.Name,
			Quantity:     1,
			UnitPrice:    price.BasePrice,
			PriceEntryID: price.ID,
			LineSubtotal: price.BasePrice,
		})
	}

	totals := tax.InvoiceTotals(items)

	if len(items) == 0 || totals.Total != payment.Amount {
		if len(items) > 0 {
			slog.WarnContext(ctx, fmt.Sprintf("Catalog total %d differs from charged amount %d for payment %q",
				totals.Total, payment.Amount, payment.ID))
		}

		net := tax.NetFromTotal(payment.Amount)

		items = []entity.InvoiceItem{{
			ID:           uuid.Must(uuid.NewV4()),
			Description:  fmt.Sprintf("Online payment %s", payment.ID),
			Quantity:     1,
			UnitPrice:    net,
			LineSubtotal: net,
		}}

		totals = tax.Totals{
			Subtotal: net,
			Tax:      payment.Amount - net,
			Total:    payment.Amount,
		}
	}

	return entity.Invoice{
		ID:            uuid.Must(uuid.NewV4()),
		Number:        0, // Fill in by CreatePaidInvoice repository method.
		Type:          entity.InvoiceTypeReceipt,
		ClientName:    payment.PayerName,
		ClientEmail:   payment.PayerEmail,
		Items:         items,
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Total:         totals.Total,
		PaymentStatus: entity.PaymentStatusPending,
		Notes:         fmt.Sprintf("Reconciled from gateway payment %s", payment.ID),
		IssuedAt:      time.Now(),
	}, nil
}
