// Package tax implements the IVA arithmetic shared by invoicing and
// reporting. All monetary values are whole minor currency units; every
// result is rounded to the nearest integer before it leaves this package.
package tax

import (
	"github.com/clinwell/billing/internal/entity"
)

// RatePercent is the single IVA rate applied to all invoices.
const RatePercent = 19

// roundDiv divides num by den rounding half up. num must be non-negative.
func roundDiv(num, den int64) int64 {
	return (2*num + den) / (2 * den)
}

// IVAFromNet returns the tax charged on a net amount.
func IVAFromNet(net int64) int64 {
	return roundDiv(net*RatePercent, 100)
}

// TotalFromNet returns the gross amount for a net amount.
func TotalFromNet(net int64) int64 {
	return net + IVAFromNet(net)
}

// NetFromTotal back-computes the net amount from a gross amount. Used only
// for gross-amount records that do not store tax separately.
func NetFromTotal(total int64) int64 {
	return roundDiv(total*100, 100+RatePercent)
}

// IVAFromTotal back-computes the tax included in a gross amount.
func IVAFromTotal(total int64) int64 {
	return total - NetFromTotal(total)
}

// LineSubtotal returns the net value of one invoice line.
func LineSubtotal(quantity, unitPrice, discount int64) int64 {
	return quantity*unitPrice - discount
}

// Totals holds the aggregate amounts of one invoice.
// Total == Subtotal + Tax holds exactly.
type Totals struct {
	Subtotal int64
	Tax      int64
	Total    int64
}

// InvoiceTotals computes invoice amounts from its line items. Tax is
// computed once on the aggregate subtotal, never summed per line: per-line
// rounding drifts from the aggregate value and would diverge from external
// tax reporting.
func InvoiceTotals(items []entity.InvoiceItem) Totals {
	var subtotal int64
	for _, item := range items {
		subtotal += LineSubtotal(item.Quantity, item.UnitPrice, item.Discount)
	}

	iva := IVAFromNet(subtotal)

	return Totals{
		Subtotal: subtotal,
		Tax:      iva,
		Total:    subtotal + iva,
	}
}
