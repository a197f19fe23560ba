package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/clinwell/billing/internal/entity"
)

func TestService_MonthlyReport(t *testing.T) {
	t.Parallel()

	c := newTester(t)
	ctx := context.Background()

	from := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.March, 31, 23, 59, 59, 0, time.UTC)

	january := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	february := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	march := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	c.repo.EXPECT().MonthlyIncome(ctx, from, to).Return([]entity.MonthlyIncome{
		{Month: january, Income: 100000, Count: 4},
		{Month: february, Income: 50000, Count: 2},
	}, nil)

	c.expenses.EXPECT().Expenses(ctx, from, to).Return([]entity.Expense{
		{Amount: 30000, PaidAt: january.Add(5 * 24 * time.Hour)},
		{Amount: 10000, PaidAt: january.Add(20 * 24 * time.Hour)},
		// A month with expenses but no income still shows up.
		{Amount: 20000, PaidAt: march.Add(24 * time.Hour)},
	}, nil)

	rows, err := c.s.MonthlyReport(ctx, from, to)
	require.NoError(t, err)

	require.Equal(t, []entity.MonthlyReportRow{
		{Month: january, Income: 100000, Expense: 40000, Profit: 60000},
		{Month: february, Income: 50000, Expense: 0, Profit: 50000},
		{Month: march, Income: 0, Expense: 20000, Profit: -20000},
	}, rows)
}

func TestService_TaxReport(t *testing.T) {
	t.Parallel()

	c := newTester(t)
	ctx := context.Background()

	from := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.January, 31, 23, 59, 59, 0, time.UTC)

	c.repo.EXPECT().PaidInvoiceTax(ctx, from, to).Return(int64(3), int64(14250), nil)

	c.expenses.EXPECT().Expenses(ctx, from, to).Return([]entity.Expense{
		// ivaFromTotal(29750) = 4750.
		{Amount: 29750, IsDeductible: true, HasInvoice: true},
		// Not deductible, no credit.
		{Amount: 11900, IsDeductible: false, HasInvoice: true},
		// No supplier invoice, no credit.
		{Amount: 11900, IsDeductible: true, HasInvoice: false},
	}, nil)

	report, err := c.s.TaxReport(ctx, from, to)
	require.NoError(t, err)

	require.Equal(t, int64(3), report.SalesCount)
	require.Equal(t, int64(14250), report.SalesTax)
	require.Equal(t, int64(1), report.PurchaseCount)
	require.Equal(t, int64(4750), report.PurchaseCredit)
	require.Equal(t, int64(9500), report.NetPosition)
	require.True(t, report.Payable())
}

func TestService_TaxReport_Refundable(t *testing.T) {
	t.Parallel()

	c := newTester(t)
	ctx := context.Background()

	from := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.February, 28, 23, 59, 59, 0, time.UTC)

	c.repo.EXPECT().PaidInvoiceTax(ctx, from, to).Return(int64(1), int64(1900), nil)

	c.expenses.EXPECT().Expenses(ctx, from, to).Return([]entity.Expense{
		{Amount: 29750, IsDeductible: true, HasInvoice: true},
	}, nil)

	report, err := c.s.TaxReport(ctx, from, to)
	require.NoError(t, err)

	require.Equal(t, int64(-2850), report.NetPosition)
	require.False(t, report.Payable())
}
