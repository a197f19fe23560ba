package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/clinwell/billing/internal/entity"
	"github.com/clinwell/billing/internal/tax"
)

// MonthlyReport buckets paid-invoice income by issue month and expenses by
// their paid month, yielding per-month profit.
func (s *Service) MonthlyReport(ctx context.Context, from, to time.Time) ([]entity.MonthlyReportRow, error) {
	income, err := s.repo.MonthlyIncome(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("monthly income: %w", err)
	}

	expenses, err := s.expenses.Expenses(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("get expenses: %w", err)
	}

	months := make(map[time.Time]*entity.MonthlyReportRow)

	for _, in := range income {
		month := monthOf(in.Month)
		months[month] = &entity.MonthlyReportRow{Month: month, Income: in.Income}
	}

	for _, e := range expenses {
		month := monthOf(e.PaidAt)

		row, ok := months[month]
		if !ok {
			row = &entity.MonthlyReportRow{Month: month}
			months[month] = row
		}

		row.Expense += e.Amount
	}

	rows := make([]entity.MonthlyReportRow, 0, len(months))

	for _, row := range months {
		row.Profit = row.Income - row.Expense
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Month.Before(rows[j].Month)
	})

	return rows, nil
}

// TaxReport sums the stored tax of paid invoices in the period against the
// tax credit of deductible, invoice-backed expenses. Sales tax is never
// recomputed from totals; the amount charged at issue time is authoritative.
func (s *Service) TaxReport(ctx context.Context, from, to time.Time) (entity.TaxReport, error) {
	salesCount, salesTax, err := s.repo.PaidInvoiceTax(ctx, from, to)
	if err != nil {
		return entity.TaxReport{}, fmt.Errorf("paid invoice tax: %w", err)
	}

	expenses, err := s.expenses.Expenses(ctx, from, to)
	if err != nil {
		return entity.TaxReport{}, fmt.Errorf("get expenses: %w", err)
	}

	var (
		purchaseCount  int64
		purchaseCredit int64
	)

	for _, e := range expenses {
		if !e.IsDeductible || !e.HasInvoice {
			continue
		}

		purchaseCount++
		purchaseCredit += tax.IVAFromTotal(e.Amount)
	}

	return entity.TaxReport{
		From:           from,
		To:             to,
		SalesCount:     salesCount,
		SalesTax:       salesTax,
		PurchaseCount:  purchaseCount,
		PurchaseCredit: purchaseCredit,
		NetPosition:    salesTax - purchaseCredit,
	}, nil
}

// NotifyOverdueInvoices emits a reminder event for every unpaid invoice past
// its due date. Stored payment status is never touched; overdue is a
// reporting classification, not a state transition.
func (s *Service) NotifyOverdueInvoices(ctx context.Context) error {
	invs, err := s.repo.OverdueInvoices(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("get overdue invoices: %w", err)
	}

	for _, inv := range invs {
		s.notify.SendPaymentReminder(ctx, inv)
	}

	if len(invs) > 0 {
		slog.InfoContext(ctx, fmt.Sprintf("Sent payment reminders for %d overdue invoices", len(invs)))
	}

	return nil
}

func monthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
