package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgtype/zeronull"

	"github.com/clinwell/billing/internal/entity"
)

func (r *Repository) Invoices(ctx context.Context, f entity.InvoiceFilter) ([]entity.Invoice, int, error) {
	stmt := sq.Select(
		"id",
		"number",
		"invoice_type",
		"patient_id",
		"client_name",
		"client_tax_id",
		"client_address",
		"client_email",
		"subtotal",
		"tax",
		"total",
		"payment_status",
		"paid_amount",
		"paid_at",
		"due_date",
		"notes",
		"issued_at",
		"COUNT(*) OVER() AS total_count",
	).From("invoices").PlaceholderFormat(sq.Dollar)

	stmt = applyInvoiceFilter(stmt, f).
		Limit(f.Limit).
		Offset(f.Page*f.Limit - f.Limit).
		OrderBy(fmt.Sprintf("%s %s", f.SortBy, f.OrderBy))

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, translateErr(err)
	}
	defer rows.Close()

	invoices := make([]entity.Invoice, 0, f.Limit)

	var totalCount int

	for rows.Next() {
		var inv entity.Invoice

		var count int

		err = rows.Scan(
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
			&count,
		)
		if err != nil {
			return nil, 0, translateErr(err)
		}

		totalCount = count

		invoices = append(invoices, inv)
	}

	return invoices, totalCount, rows.Err()
}

func applyInvoiceFilter(stmt sq.SelectBuilder, f entity.InvoiceFilter) sq.SelectBuilder {
	if f.Status != nil {
		// OVERDUE is not a stored status: filter unpaid invoices past due.
		if *f.Status == entity.PaymentStatusOverdue {
			stmt = stmt.Where(sq.Eq{"payment_status": []entity.PaymentStatus{
				entity.PaymentStatusPending, entity.PaymentStatusPartial,
			}})
			stmt = stmt.Where(sq.Lt{"due_date": time.Now()})
		} else {
			stmt = stmt.Where(sq.Eq{"payment_status": *f.Status})
		}
	}

	if f.Type != nil {
		stmt = stmt.Where(sq.Eq{"invoice_type": *f.Type})
	}

	if f.Patient != nil {
		stmt = stmt.Where(sq.Eq{"patient_id": *f.Patient})
	}

	if f.IssuedFrom != nil {
		stmt = stmt.Where(sq.GtOrEq{"issued_at": *f.IssuedFrom})
	}

	if f.IssuedTo != nil {
		stmt = stmt.Where(sq.Lt{"issued_at": *f.IssuedTo})
	}

	return stmt
}

// InvoiceStats aggregates invoice counts and amounts by effective status
// within an optional issue-date window. Unpaid invoices past their due date
// surface under the OVERDUE bucket; this is a reporting reclassification,
// the stored status is untouched.
func (r *Repository) InvoiceStats(ctx context.Context, from, to *time.Time, now time.Time) (entity.InvoiceStats, error) {
	builder := sq.Select().
		Column(sq.Expr(`CASE
			WHEN payment_status IN ('PENDING', 'PARTIAL') AND due_date < ? THEN 'OVERDUE'
			ELSE payment_status
		END AS effective_status`, now)).
		Column("COUNT(*)").
		Column(sq.Expr("COALESCE(SUM(total), 0)")).
		Column(sq.Expr("COALESCE(SUM(paid_amount), 0)")).
		From("invoices").
		PlaceholderFormat(sq.Dollar)

	if from != nil {
		builder = builder.Where(sq.GtOrEq{"issued_at": *from})
	}

	if to != nil {
		builder = builder.Where(sq.Lt{"issued_at": *to})
	}

	builder = builder.GroupBy("1")

	sql, args, err := builder.ToSql()
	if err != nil {
		return entity.InvoiceStats{}, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return entity.InvoiceStats{}, translateErr(err)
	}
	defer rows.Close()

	var stats entity.InvoiceStats

	for rows.Next() {
		var (
			status entity.PaymentStatus
			bucket entity.StatusBucket
		)

		err = rows.Scan(&status, &bucket.Count, &bucket.Total, &bucket.Paid)
		if err != nil {
			return entity.InvoiceStats{}, translateErr(err)
		}

		bucket.Unpaid = bucket.Total - bucket.Paid

		switch status {
		case entity.PaymentStatusPending:
			stats.Pending = bucket
		case entity.PaymentStatusPartial:
			stats.Partial = bucket
		case entity.PaymentStatusPaid:
			stats.Paid = bucket
		case entity.PaymentStatusOverdue:
			stats.Overdue = bucket
		}
	}

	return stats, rows.Err()
}

// MonthlyIncome buckets paid invoices by issue month.
func (r *Repository) MonthlyIncome(ctx context.Context, from, to time.Time) ([]entity.MonthlyIncome, error) {
	const q = `
	SELECT date_trunc('month', issued_at) AS month, COALESCE(SUM(total), 0), COUNT(*)
	FROM invoices
	WHERE payment_status = $1 AND issued_at >= $2 AND issued_at < $3
	GROUP BY 1
	ORDER BY 1
	`

	rows, err := r.db.Query(ctx, q, entity.PaymentStatusPaid, from, to)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	var months []entity.MonthlyIncome

	for rows.Next() {
		var m entity.MonthlyIncome

		err = rows.Scan(&m.Month, &m.Income, &m.Count)
		if err != nil {
			return nil, translateErr(err)
		}

		months = append(months, m)
	}

	return months, rows.Err()
}

// PaidInvoiceTax sums the stored tax of paid invoices in the period. The
// stored value is authoritative: recomputing from totals could drift from
// what was actually charged.
func (r *Repository) PaidInvoiceTax(ctx context.Context, from, to time.Time) (count, taxTotal int64, err error) {
	const q = `
	SELECT COUNT(*), COALESCE(SUM(tax), 0)
	FROM invoices
	WHERE payment_status = $1 AND issued_at >= $2 AND issued_at < $3
	`

	err = r.db.QueryRow(ctx, q, entity.PaymentStatusPaid, from, to).Scan(&count, &taxTotal)
	if err != nil {
		return 0, 0, translateErr(err)
	}

	return count, taxTotal, nil
}
