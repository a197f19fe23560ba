package entity

import (
	"time"
)

// SystemActor attributes audit entries produced without a human caller,
// such as gateway reconciliation.
const SystemActor = "system:gateway"

const (
	AuditActionInvoiceCreated    = "invoice.created"
	AuditActionPaymentRegistered = "payment.registered"
	AuditActionPaymentReconciled = "payment.reconciled"
)

// AuditEntry is emitted to the external audit sink once per mutating
// operation. Emission is best-effort but never silently skipped.
type AuditEntry struct {
	Actor        string
	Action       string
	ResourceKind string
	ResourceID   string
	Details      map[string]any
	Origin       string
	At           time.Time
}
