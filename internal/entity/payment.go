package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
)

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "CASH"
	PaymentMethodCard     PaymentMethod = "CARD"
	PaymentMethodTransfer PaymentMethod = "TRANSFER"
	PaymentMethodGateway  PaymentMethod = "GATEWAY"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer, PaymentMethodGateway:
		return nil
	default:
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidArgument, string(m))
	}
}

// Payment is one entry of the append-only ledger backing an invoice's paid
// amount. Rows are never updated or deleted after insert.
type Payment struct {
	ID        uuid.UUID
	InvoiceID uuid.UUID
	Amount    int64
	Method    PaymentMethod
	Reference string

	// ExternalPaymentID deduplicates gateway-originated payments. Globally
	// unique when present, enforced by the storage layer.
	ExternalPaymentID string
	ExternalStatus    string

	// RawResponse is the gateway's payment record as fetched, kept opaque
	// for dispute resolution.
	RawResponse []byte

	Notes     string
	CreatedAt time.Time
}
