package entity

import (
	"time"
)

type StatusBucket struct {
	Count  int64
	Total  int64
	Paid   int64
	Unpaid int64
}

// InvoiceStats aggregates invoices by effective payment status. The overdue
// bucket is a query-time reclassification of unpaid invoices past their due
// date; it never corresponds to a stored status.
type InvoiceStats struct {
	Pending StatusBucket
	Partial StatusBucket
	Paid    StatusBucket
	Overdue StatusBucket
}

type MonthlyIncome struct {
	Month  time.Time // First day of the month, UTC.
	Income int64
	Count  int64
}

type MonthlyReportRow struct {
	Month   time.Time
	Income  int64
	Expense int64
	Profit  int64
}

// TaxReport is the tax-period summary. Sales tax comes from the stored tax
// field of paid invoices, never recomputed. Purchase credit is back-computed
// from gross expense amounts.
type TaxReport struct {
	From time.Time
	To   time.Time

	SalesCount     int64
	SalesTax       int64
	PurchaseCount  int64
	PurchaseCredit int64

	// NetPosition = SalesTax - PurchaseCredit. Positive is payable,
	// negative refundable.
	NetPosition int64
}

func (r TaxReport) Payable() bool {
	return r.NetPosition > 0
}

// Expense is a record from the external expense ledger. Amount is gross
// (tax included); the ledger does not store tax separately.
type Expense struct {
	Amount       int64
	Category     string
	PaidAt       time.Time
	IsDeductible bool
	HasInvoice   bool
}
