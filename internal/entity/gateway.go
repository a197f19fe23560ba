package entity

import (
	"time"
)

// GatewayEvent is an inbound payment-gateway notification. The gateway
// delivers at least once, so duplicates may arrive, including concurrently.
// Payload fields beyond the payment id are never trusted; the authoritative
// record is re-fetched from the gateway by id.
type GatewayEvent struct {
	Type string           `json:"type"`
	Data GatewayEventData `json:"data"`
}

type GatewayEventData struct {
	ID string `json:"id"`
}

const GatewayEventTypePayment = "payment"

type GatewayPaymentStatus string

const (
	GatewayPaymentStatusApproved GatewayPaymentStatus = "approved"
	GatewayPaymentStatusPending  GatewayPaymentStatus = "pending"
	GatewayPaymentStatusRejected GatewayPaymentStatus = "rejected"
)

func (s GatewayPaymentStatus) String() string {
	return string(s)
}

// GatewayPayment is the payment record as fetched from the gateway API.
type GatewayPayment struct {
	ID         string
	Status     GatewayPaymentStatus
	Amount     int64 // Minor currency units.
	PayerName  string
	PayerEmail string

	// PriceEntryIDs are the catalog price entries attached to the payment
	// metadata, used to rebuild the invoice line items.
	PriceEntryIDs []string

	ApprovedAt time.Time
	Raw        []byte
}

// PriceEntry is a catalog service entry resolved for invoice line
// generation. BasePrice is net (pre-tax), in minor units.
type PriceEntry struct {
	ID        string
	Name      string
	BasePrice int64
}
