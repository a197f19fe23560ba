package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/clinwell/billing/internal/entity"
)

func TestInvoice_EffectiveStatus(t *testing.T) {
	t.Parallel()

	now := time.Now()
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	for _, tt := range []struct {
		name    string
		status  entity.PaymentStatus
		dueDate *time.Time
		want    entity.PaymentStatus
	}{
		{name: "pending past due", status: entity.PaymentStatusPending, dueDate: &past, want: entity.PaymentStatusOverdue},
		{name: "partial past due", status: entity.PaymentStatusPartial, dueDate: &past, want: entity.PaymentStatusOverdue},
		{name: "paid past due stays paid", status: entity.PaymentStatusPaid, dueDate: &past, want: entity.PaymentStatusPaid},
		{name: "pending not yet due", status: entity.PaymentStatusPending, dueDate: &future, want: entity.PaymentStatusPending},
		{name: "pending without due date", status: entity.PaymentStatusPending, dueDate: nil, want: entity.PaymentStatusPending},
	} {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			inv := entity.Invoice{PaymentStatus: tt.status, DueDate: tt.dueDate}
			require.Equal(t, tt.want, inv.EffectiveStatus(now))
		})
	}
}

func TestInvoiceItem_Validate(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name    string
		item    entity.InvoiceItem
		wantErr bool
	}{
		{name: "ok", item: entity.InvoiceItem{Description: "Consultation", Quantity: 1, UnitPrice: 25000}},
		{name: "ok with discount", item: entity.InvoiceItem{Description: "Control", Quantity: 2, UnitPrice: 10000, Discount: 20000}},
		{name: "empty description", item: entity.InvoiceItem{Quantity: 1, UnitPrice: 100}, wantErr: true},
		{name: "zero quantity", item: entity.InvoiceItem{Description: "x", Quantity: 0, UnitPrice: 100}, wantErr: true},
		{name: "negative price", item: entity.InvoiceItem{Description: "x", Quantity: 1, UnitPrice: -1}, wantErr: true},
		{name: "negative discount", item: entity.InvoiceItem{Description: "x", Quantity: 1, UnitPrice: 100, Discount: -1}, wantErr: true},
		{name: "discount over line value", item: entity.InvoiceItem{Description: "x", Quantity: 2, UnitPrice: 100, Discount: 201}, wantErr: true},
	} {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.item.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, entity.ErrInvalidArgument)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
