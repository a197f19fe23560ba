package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinwell/billing/internal/entity"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

// CreateInvoice persists an invoice with its items, allocating the next
// invoice number inside the same transaction. The counter row is locked by
// the upsert, so concurrent creations of the same type serialize; an
// aborted transaction rolls the counter back and leaks no number.
func (r *Repository) CreateInvoice(ctx context.Context, inv entity.Invoice) (entity.Invoice, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entity.Invoice{}, translateErr(err)
	}

	defer tx.Rollback(ctx)

	inv, err = insertInvoice(ctx, tx, inv)
	if err != nil {
		return entity.Invoice{}, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return entity.Invoice{}, translateErr(err)
	}

	return inv, nil
}

// RegisterPayment appends one payment to an invoice's ledger and updates
// the invoice's paid amount and status, all in one transaction serialized
// per invoice by a row lock. Returns ErrDuplicatePayment together with the
// previously committed (invoice, payment) pair when the external payment id
// was already registered.
func (r *Repository) RegisterPayment(ctx context.Context, p entity.Payment) (entity.Invoice, entity.Payment, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entity.Invoice{}, entity.Payment{}, translateErr(err)
	}

	defer tx.Rollback(ctx)

	inv, err := scanInvoice(tx.QueryRow(ctx, selectInvoice+" WHERE id = $1 FOR UPDATE", p.InvoiceID))
	if err != nil {
		return entity.Invoice{}, entity.Payment{}, err
	}

	// Fast path for redelivered gateway payments. The unique index on
	// external_payment_id is the correctness backstop for the race this
	// pre-check cannot see.
	if p.ExternalPaymentID != "" {
		existing, err := scanPayment(tx.QueryRow(ctx, selectPayment+" WHERE external_payment_id = $1", p.ExternalPaymentID))
		if err == nil {
			return r.existingPair(ctx, existing)
		}

		if !errors.Is(err, entity.ErrNotFound) {
			return entity.Invoice{}, entity.Payment{}, err
		}
	}

	if inv.PaidAmount+p.Amount > inv.Total {
		return entity.Invoice{}, entity.Payment{}, fmt.Errorf(
			"%w: invoice %s paid %d of %d, payment of %d rejected",
			entity.ErrOverpayment, inv.ID, inv.PaidAmount, inv.Total, p.Amount)
	}

	err = insertPayment(ctx, tx, p)
	if err != nil {
		if errors.Is(err, entity.ErrDuplicatePayment) {
			_ = tx.Rollback(ctx)

			existing, lookupErr := r.PaymentByExternalID(ctx, p.ExternalPaymentID)
			if lookupErr != nil {
				return entity.Invoice{}, entity.Payment{}, lookupErr
			}

			return r.existingPair(ctx, existing)
		}

		return entity.Invoice{}, entity.Payment{}, err
	}

	inv, err = applyPayment(ctx, tx, inv, p)
	if err != nil {
		return entity.Invoice{}, entity.Payment{}, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return entity.Invoice{}, entity.Payment{}, translateErr(err)
	}

	return inv, p, nil
}

// CreatePaidInvoice is the reconciliation path: invoice, items, and the
// settling payment commit or roll back together. When two deliveries of
// the same external payment race, the loser's payment insert violates the
// uniqueness constraint and takes its whole invoice down with it, so
// exactly one invoice and one payment survive.
func (r *Repository) CreatePaidInvoice(ctx context.Context, inv entity.Invoice, p entity.Payment) (entity.Invoice, entity.Payment, error) {
	if p.Amount > inv.Total {
		return entity.Invoice{}, entity.Payment{}, fmt.Errorf(
			"%w: invoice total %d, gateway payment of %d rejected",
			entity.ErrOverpayment, inv.Total, p.Amount)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entity.Invoice{}, entity.Payment{}, translateErr(err)
	}

	defer tx.Rollback(ctx)

	inv, err = insertInvoice(ctx, tx, inv)
	if err != nil {
		return entity.Invoice{}, entity.Payment{}, err
	}

	p.InvoiceID = inv.ID

	err = insertPayment(ctx, tx, p)
	if err != nil {
		return entity.Invoice{}, entity.Payment{}, err
	}

	inv, err = applyPayment(ctx, tx, inv, p)
	if err != nil {
		return entity.Invoice{}, entity.Payment{}, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return entity.Invoice{}, entity.Payment{}, translateErr(err)
	}

	return inv, p, nil
}

func (r *Repository) Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	inv, err := scanInvoice(r.db.QueryRow(ctx, selectInvoice+" WHERE id = $1", id))
	if err != nil {
		return entity.Invoice{}, err
	}

	inv.Items, err = r.invoiceItems(ctx, id)
	if err != nil {
		return entity.Invoice{}, err
	}

	return inv, nil
}

func (r *Repository) PaymentByExternalID(ctx context.Context, externalID string) (entity.Payment, error) {
	return scanPayment(r.db.QueryRow(ctx, selectPayment+" WHERE external_payment_id = $1", externalID))
}

// existingPair resolves the already-committed invoice and payment for an
// idempotent no-op result.
func (r *Repository) existingPair(ctx context.Context, p entity.Payment) (entity.Invoice, entity.Payment, error) {
	inv, err := r.Invoice(ctx, p.InvoiceID)
	if err != nil {
		return entity.Invoice{}, entity.Payment{}, err
	}

	return inv, p, entity.ErrDuplicatePayment
}

func (r *Repository) invoiceItems(ctx context.Context, invoiceID uuid.UUID) ([]entity.InvoiceItem, error) {
	rows, err := r.db.Query(ctx, selectItem+" WHERE invoice_id = $1 ORDER BY position", invoiceID)
	if err != nil {
		return nil, translateErr(err)
	}

	defer rows.Close()

	var items []entity.InvoiceItem

	for rows.Next() {
		var item entity.InvoiceItem

		err = rows.Scan(
			&item.ID,
			&item.InvoiceID,
			&item.Description,
			&item.Quantity,
			&item.UnitPrice,
			&item.Discount,
			(*zeronull.Text)(&item.PriceEntryID),
			&item.LineSubtotal,
		)
		if err != nil {
			return nil, translateErr(err)
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

func insertInvoice(ctx context.Context, tx pgx.Tx, inv entity.Invoice) (entity.Invoice, error) {
	const counterQ = `
	INSERT INTO invoice_counters (invoice_type, last_value)
	VALUES ($1, 1)
	ON CONFLICT (invoice_type) DO UPDATE SET last_value = invoice_counters.last_value + 1
	RETURNING last_value
	`

	err := tx.QueryRow(ctx, counterQ, inv.Type).Scan(&inv.Number)
	if err != nil {
		return entity.Invoice{}, translateErr(err)
	}

	const invoiceQ = `
	INSERT INTO invoices (
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
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err = tx.Exec(ctx, invoiceQ,
		inv.ID,
		inv.Number,
		inv.Type,
		inv.Patient,
		inv.ClientName,
		zeronull.Text(inv.ClientTaxID),
		zeronull.Text(inv.ClientAddress),
		zeronull.Text(inv.ClientEmail),
		inv.Subtotal,
		inv.Tax,
		inv.Total,
		inv.PaymentStatus,
		inv.PaidAmount,
		inv.PaidAt,
		inv.DueDate,
		zeronull.Text(inv.Notes),
		inv.IssuedAt,
	)
	if err != nil {
		return entity.Invoice{}, translateErr(err)
	}

	const itemQ = `
	INSERT INTO invoice_items (id, invoice_id, position, description, quantity, unit_price, discount, price_entry_id, line_subtotal)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	for i := range inv.Items {
		inv.Items[i].InvoiceID = inv.ID

		item := inv.Items[i]

		_, err = tx.Exec(ctx, itemQ,
			item.ID,
			item.InvoiceID,
			i,
			item.Description,
			item.Quantity,
			item.UnitPrice,
			item.Discount,
			zeronull.Text(item.PriceEntryID),
			item.LineSubtotal,
		)
		if err != nil {
			return entity.Invoice{}, translateErr(err)
		}
	}

	return inv, nil
}

func insertPayment(ctx context.Context, tx pgx.Tx, p entity.Payment) error {
	const q = `
	INSERT INTO payments (
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
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := tx.Exec(ctx, q,
		p.ID,
		p.InvoiceID,
		p.Amount,
		p.Method,
		zeronull.Text(p.Reference),
		zeronull.Text(p.ExternalPaymentID),
		zeronull.Text(p.ExternalStatus),
		p.RawResponse,
		zeronull.Text(p.Notes),
		p.CreatedAt,
	)

	return translateErr(err)
}

// applyPayment recomputes the invoice's ledger-derived fields after a
// payment insert. paid_at is written once, on the first transition to PAID.
func applyPayment(ctx context.Context, tx pgx.Tx, inv entity.Invoice, p entity.Payment) (entity.Invoice, error) {
	inv.PaidAmount += p.Amount

	if inv.PaidAmount == inv.Total {
		inv.PaymentStatus = entity.PaymentStatusPaid
	} else if inv.PaidAmount > 0 {
		inv.PaymentStatus = entity.PaymentStatusPartial
	}

	if inv.PaymentStatus == entity.PaymentStatusPaid && inv.PaidAt == nil {
		paidAt := p.CreatedAt
		inv.PaidAt = &paidAt
	}

	const q = `
	UPDATE invoices
	SET paid_amount = $1, payment_status = $2, paid_at = COALESCE(paid_at, $3)
	WHERE id = $4
	`

	result, err := tx.Exec(ctx, q, inv.PaidAmount, inv.PaymentStatus, inv.PaidAt, inv.ID)
	if err != nil {
		return entity.Invoice{}, translateErr(err)
	}

	if result.RowsAffected() == 0 {
		return entity.Invoice{}, entity.ErrNotFound
	}

	return inv, nil
}

// translateErr maps driver errors onto the entity taxonomy: the external
// payment uniqueness violation becomes ErrDuplicatePayment, serialization
// failures and deadlocks become the retryable ErrTxConflict.
func translateErr(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505" && pgErr.ConstraintName == "payments_external_payment_id_key":
			return fmt.Errorf("%w: %s", entity.ErrDuplicatePayment, pgErr.Detail)
		case pgErr.Code == "40001" || pgErr.Code == "40P01":
			return fmt.Errorf("%w: %s", entity.ErrTxConflict, pgErr.Message)
		}
	}

	return err
}

// OverdueInvoices lists unpaid invoices past their due date at the given
// instant. Read-only: the stored status is never rewritten to OVERDUE.
func (r *Repository) OverdueInvoices(ctx context.Context, now time.Time) ([]entity.Invoice, error) {
	q := selectInvoice + ` WHERE payment_status IN ($1, $2) AND due_date < $3 ORDER BY due_date`

	rows, err := r.db.Query(ctx, q, entity.PaymentStatusPending, entity.PaymentStatusPartial, now)
	if err != nil {
		return nil, translateErr(err)
	}

	defer rows.Close()

	var invoices []entity.Invoice

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}

		invoices = append(invoices, inv)
	}

	return invoices, rows.Err()
}
