package tax_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clinwell/billing/internal/entity"
	"github.com/clinwell/billing/internal/tax"
)

func TestIVAFromNet(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name    string
		net     int64
		wantIVA int64
	}{
		{name: "zero", net: 0, wantIVA: 0},
		{name: "exact", net: 25000, wantIVA: 4750},
		{name: "rounds down", net: 7, wantIVA: 1},     // 1.33
		{name: "rounds up", net: 10, wantIVA: 2},      // 1.9
		{name: "rounds half up", net: 50, wantIVA: 10}, // 9.5
		{name: "big", net: 1_000_000_000, wantIVA: 190_000_000},
	} {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.wantIVA, tax.IVAFromNet(tt.net))
		})
	}
}

func TestTotalFromNet_Consistency(t *testing.T) {
	t.Parallel()

	// Total must always equal net plus tax, for any net amount.
	for net := int64(0); net <= 10_000; net++ {
		require.Equal(t, net+tax.IVAFromNet(net), tax.TotalFromNet(net), "net %d", net)
	}
}

func TestNetFromTotal_RoundTrip(t *testing.T) {
	t.Parallel()

	// Reverse computation may lose at most one unit to rounding.
	for net := int64(0); net <= 10_000; net++ {
		got := tax.NetFromTotal(tax.TotalFromNet(net))

		diff := got - net
		if diff < 0 {
			diff = -diff
		}

		require.LessOrEqual(t, diff, int64(1), "net %d round-tripped to %d", net, got)
	}
}

func TestIVAFromTotal(t *testing.T) {
	t.Parallel()

	require.Equal(t, int64(4750), tax.IVAFromTotal(29750))
	require.Equal(t, int64(0), tax.IVAFromTotal(0))

	// Net plus back-computed tax always reassembles the gross amount.
	for total := int64(0); total <= 10_000; total++ {
		require.Equal(t, total, tax.NetFromTotal(total)+tax.IVAFromTotal(total))
	}
}

func TestLineSubtotal(t *testing.T) {
	t.Parallel()

	require.Equal(t, int64(25000), tax.LineSubtotal(1, 25000, 0))
	require.Equal(t, int64(45000), tax.LineSubtotal(2, 25000, 5000))
	require.Equal(t, int64(0), tax.LineSubtotal(3, 1000, 3000))
}

func TestInvoiceTotals(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name  string
		items []entity.InvoiceItem
		want  tax.Totals
	}{
		{
			name:  "single consultation",
			items: []entity.InvoiceItem{{Quantity: 1, UnitPrice: 25000}},
			want:  tax.Totals{Subtotal: 25000, Tax: 4750, Total: 29750},
		},
		{
			name: "multiple lines with discount",
			items: []entity.InvoiceItem{
				{Quantity: 2, UnitPrice: 15000, Discount: 2000},
				{Quantity: 1, UnitPrice: 8000},
			},
			want: tax.Totals{Subtotal: 36000, Tax: 6840, Total: 42840},
		},
		{
			name:  "empty",
			items: nil,
			want:  tax.Totals{},
		},
	} {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tax.InvoiceTotals(tt.items)
			require.Equal(t, tt.want, got)
			require.Equal(t, got.Total, got.Subtotal+got.Tax)
		})
	}
}

func TestInvoiceTotals_AggregateRounding(t *testing.T) {
	t.Parallel()

	// Tax is computed once on the aggregate subtotal. Summing per-line tax
	// rounds each line and drifts from the aggregate value.
	items := []entity.InvoiceItem{
		{Quantity: 1, UnitPrice: 7},
		{Quantity: 1, UnitPrice: 7},
		{Quantity: 1, UnitPrice: 7},
	}

	perLine := 3 * tax.IVAFromNet(7) // 3 * round(1.33) = 3
	got := tax.InvoiceTotals(items)

	require.Equal(t, tax.IVAFromNet(21), got.Tax) // round(3.99) = 4
	require.NotEqual(t, perLine, got.Tax)
}

func TestValidateRUT(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name string
		id   string
		want bool
	}{
		{name: "valid with separators", id: "12.345.678-5", want: true},
		{name: "valid bare", id: "123456785", want: true},
		{name: "valid K check digit", id: "999.999-K", want: true},
		{name: "valid lowercase k", id: "999999-k", want: true},
		{name: "flipped check digit", id: "12.345.678-6", want: false},
		{name: "non-digit body", id: "12.34A.678-5", want: false},
		{name: "too short", id: "5", want: false},
		{name: "empty", id: "", want: false},
	} {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, tax.ValidateRUT(tt.id))
		})
	}
}
