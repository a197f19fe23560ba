package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"

	"github.com/clinwell/billing/internal/entity"
)

const selectInvoice = `
SELECT
	id,
	number,
	invoice_type,
	patient_id,
	client_name,
	client_tax_id,
	client_address,
	client_email,
	subtotal,
	tax,
	total,
	payment_status,
	paid_amount,
	paid_at,
	due_date,
	notes,
	issued_at
FROM invoices`

const selectItem = `
SELECT
	id,
	invoice_id,
	description,
	quantity,
	unit_price,
	discount,
	price_entry_id,
	line_subtotal
FROM invoice_items`

const selectPayment = `
SELECT
	id,
	invoice_id,
	amount,
	method,
	reference,
	external_payment_id,
	external_status,
	raw_response,
	notes,
	created_at
FROM payments`

func scanInvoice(row pgx.Row) (inv entity.Invoice, err error) {
	err = row.Scan(
		&inv.ID,
		&inv.Number,
		&inv.Type,
		&inv.Patient,
		&inv.ClientName,
		(*zeronull.Text)(&inv.ClientTaxID),
		(*zeronull.Text)(&inv.ClientAddress),
		(*zeronull.Text)(&inv.ClientEmail),
		&inv.Subtotal,
		&inv.Tax,
		&inv.Total,
		&inv.PaymentStatus,
		&inv.PaidAmount,
		&inv.PaidAt,
		&inv.DueDate,
		(*zeronull.Text)(&inv.Notes),
		&inv.IssuedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Invoice{}, entity.ErrNotFound
		}

		return entity.Invoice{}, translateErr(err)
	}

	return inv, nil
}

func scanPayment(row pgx.Row) (p entity.Payment, err error) {
	err = row.Scan(
		&p.ID,
		&p.InvoiceID,
		&p.Amount,
		&p.Method,
		(*zeronull.Text)(&p.Reference),
		(*zeronull.Text)(&p.ExternalPaymentID),
		(*zeronull.Text)(&p.ExternalStatus),
		&p.RawResponse,
		(*zeronull.Text)(&p.Notes),
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Payment{}, entity.ErrNotFound
		}

		return entity.Payment{}, translateErr(err)
	}

	return p, nil
}
