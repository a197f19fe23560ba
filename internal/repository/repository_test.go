package repository_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/clinwell/billing/internal/entity"
	"github.com/clinwell/billing/internal/repository"
	"github.com/clinwell/billing/pkg/postgres"
)

func TestRepository_CreateInvoice(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	now := time.Now().UTC().Truncate(time.Millisecond)

	inv := testInvoice(now)

	created, err := repo.CreateInvoice(context.Background(), inv)
	require.NoError(t, err)
	require.NotZero(t, created.Number)

	got, err := repo.Invoice(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
	require.Len(t, got.Items, 2)
	require.Equal(t, got.Total, got.Subtotal+got.Tax)
}

func TestRepository_CreateInvoice_SequentialNumbers(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	now := time.Now().UTC().Truncate(time.Millisecond)

	// Tax invoices use their own counter; no other test touches it.
	a := testInvoice(now)
	a.Type = entity.InvoiceTypeTaxInvoice
	b := testInvoice(now)
	b.Type = entity.InvoiceTypeTaxInvoice

	first, err := repo.CreateInvoice(context.Background(), a)
	require.NoError(t, err)

	second, err := repo.CreateInvoice(context.Background(), b)
	require.NoError(t, err)

	require.Equal(t, first.Number+1, second.Number)
}

func TestRepository_RegisterPayment(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	now := time.Now().UTC().Truncate(time.Millisecond)

	inv, err := repo.CreateInvoice(context.Background(), testInvoice(now))
	require.NoError(t, err)

	half := inv.Total / 2

	got, p, err := repo.RegisterPayment(context.Background(), testPayment(inv.ID, half, "", now))
	require.NoError(t, err)
	require.Equal(t, entity.PaymentStatusPartial, got.PaymentStatus)
	require.Equal(t, half, got.PaidAmount)
	require.Nil(t, got.PaidAt)
	require.Equal(t, half, p.Amount)

	got, _, err = repo.RegisterPayment(context.Background(), testPayment(inv.ID, inv.Total-half, "", now))
	require.NoError(t, err)
	require.Equal(t, entity.PaymentStatusPaid, got.PaymentStatus)
	require.Equal(t, inv.Total, got.PaidAmount)
	require.NotNil(t, got.PaidAt)
}

func TestRepository_RegisterPayment_Overpayment(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	now := time.Now().UTC().Truncate(time.Millisecond)

	inv, err := repo.CreateInvoice(context.Background(), testInvoice(now))
	require.NoError(t, err)

	_, _, err = repo.RegisterPayment(context.Background(), testPayment(inv.ID, inv.Total+1, "", now))
	require.ErrorIs(t, err, entity.ErrOverpayment)

	// The rejected payment left no trace.
	got, err := repo.Invoice(context.Background(), inv.ID)
	require.NoError(t, err)
	require.Equal(t, entity.PaymentStatusPending, got.PaymentStatus)
	require.Zero(t, got.PaidAmount)
}

func TestRepository_RegisterPayment_DuplicateExternalID(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	now := time.Now().UTC().Truncate(time.Millisecond)

	inv, err := repo.CreateInvoice(context.Background(), testInvoice(now))
	require.NoError(t, err)

	externalID := uuid.Must(uuid.NewV4()).String()

	first, p1, err := repo.RegisterPayment(context.Background(), testPayment(inv.ID, inv.Total, externalID, now))
	require.NoError(t, err)

	second, p2, err := repo.RegisterPayment(context.Background(), testPayment(inv.ID, inv.Total, externalID, now))
	require.ErrorIs(t, err, entity.ErrDuplicatePayment)
	require.Equal(t, p1.ID, p2.ID)
	require.Equal(t, first.PaidAmount, second.PaidAmount)
	require.Equal(t, first.PaidAt, second.PaidAt)
}

func TestRepository_RegisterPayment_Concurrent(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	now := time.Now().UTC().Truncate(time.Millisecond)

	inv, err := repo.CreateInvoice(context.Background(), testInvoice(now))
	require.NoError(t, err)

	half := inv.Total / 2
	amounts := []int64{half, inv.Total - half}

	var wg sync.WaitGroup

	errs := make([]error, len(amounts))

	for i, amount := range amounts {
		i, amount := i, amount

		wg.Add(1)

		go func() {
			defer wg.Done()

			_, _, errs[i] = repo.RegisterPayment(context.Background(), testPayment(inv.ID, amount, "", now))
		}()
	}

	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	got, err := repo.Invoice(context.Background(), inv.ID)
	require.NoError(t, err)
	require.Equal(t, inv.Total, got.PaidAmount)
	require.Equal(t, entity.PaymentStatusPaid, got.PaymentStatus)
}

func TestRepository_CreatePaidInvoice_Duplicate(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	now := time.Now().UTC().Truncate(time.Millisecond)

	externalID := uuid.Must(uuid.NewV4()).String()

	inv := testInvoice(now)

	settled, p, err := repo.CreatePaidInvoice(context.Background(), inv, testPayment(uuid.Nil, inv.Total, externalID, now))
	require.NoError(t, err)
	require.Equal(t, entity.PaymentStatusPaid, settled.PaymentStatus)
	require.Equal(t, settled.ID, p.InvoiceID)

	// Redelivery: the second invoice rolls back entirely, only the
	// duplicate payment error surfaces.
	again := testInvoice(now)

	_, _, err = repo.CreatePaidInvoice(context.Background(), again, testPayment(uuid.Nil, again.Total, externalID, now))
	require.ErrorIs(t, err, entity.ErrDuplicatePayment)

	_, err = repo.Invoice(context.Background(), again.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func testInvoice(now time.Time) entity.Invoice {
	return entity.Invoice{
		ID:            uuid.Must(uuid.NewV4()),
		Type:          entity.InvoiceTypeReceipt,
		ClientName:    "Ana Rojas",
		ClientTaxID:   "12.345.678-5",
		ClientEmail:   "ana@example.com",
		Items: []entity.InvoiceItem{
			{ID: uuid.Must(uuid.NewV4()), Description: "Consultation", Quantity: 1, UnitPrice: 25000, LineSubtotal: 25000},
			{ID: uuid.Must(uuid.NewV4()), Description: "Lab panel", Quantity: 1, UnitPrice: 15000, LineSubtotal: 15000},
		},
		Subtotal:      40000,
		Tax:           7600,
		Total:         47600,
		PaymentStatus: entity.PaymentStatusPending,
		IssuedAt:      now,
	}
}

func testPayment(invoiceID uuid.UUID, amount int64, externalID string, now time.Time) entity.Payment {
	return entity.Payment{
		ID:                uuid.Must(uuid.NewV4()),
		InvoiceID:         invoiceID,
		Amount:            amount,
		Method:            entity.PaymentMethodCash,
		ExternalPaymentID: externalID,
		CreatedAt:         now,
	}
}

func newRepository(t *testing.T) *repository.Repository {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	pool, err := postgres.Connect(context.Background(), dsn, 10)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.UpMigrations(dsn))

	return repository.New(pool)
}
