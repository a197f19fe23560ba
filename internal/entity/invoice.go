package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
)

type InvoiceType string

const (
	InvoiceTypeReceipt    InvoiceType = "RECEIPT"
	InvoiceTypeTaxInvoice InvoiceType = "TAX_INVOICE"
)

func (t InvoiceType) String() string {
	return string(t)
}

func (t InvoiceType) Validate() error {
	switch t {
	case InvoiceTypeReceipt, InvoiceTypeTaxInvoice:
		return nil
	default:
		return fmt.Errorf("%w: unknown invoice type %q", ErrInvalidArgument, string(t))
	}
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPartial PaymentStatus = "PARTIAL"
	PaymentStatusPaid    PaymentStatus = "PAID"

	// PaymentStatusOverdue is never stored. It is derived at query time
	// for PENDING/PARTIAL invoices whose due date has passed.
	PaymentStatusOverdue PaymentStatus = "OVERDUE"
)

func (s PaymentStatus) String() string {
	return string(s)
}

type Invoice struct {
	ID      uuid.UUID
	Number  int64 // Sequential per invoice type. Filled by the repository.
	Type    InvoiceType
	Patient *uuid.UUID

	// Client identity snapshot, captured at issue time. Later edits to the
	// patient record never change an issued invoice.
	ClientName    string
	ClientTaxID   string
	ClientAddress string
	ClientEmail   string

	Items []InvoiceItem

	Subtotal int64
	Tax      int64
	Total    int64

	PaymentStatus PaymentStatus
	PaidAmount    int64
	PaidAt        *time.Time
	DueDate       *time.Time
	Notes         string
	IssuedAt      time.Time
}

// EffectiveStatus reclassifies an unpaid invoice past its due date as
// OVERDUE. Reporting only; the stored status is left untouched.
func (i Invoice) EffectiveStatus(now time.Time) PaymentStatus {
	switch i.PaymentStatus {
	case PaymentStatusPending, PaymentStatusPartial:
		if i.DueDate != nil && i.DueDate.Before(now) {
			return PaymentStatusOverdue
		}
	}

	return i.PaymentStatus
}

func (i Invoice) Outstanding() int64 {
	return i.Total - i.PaidAmount
}

type InvoiceItem struct {
	ID           uuid.UUID
	InvoiceID    uuid.UUID
	Description  string
	Quantity     int64
	UnitPrice    int64
	Discount     int64
	PriceEntryID string // Optional catalog price entry the line came from.
	LineSubtotal int64
}

func (i InvoiceItem) Validate() error {
	if i.Description == "" {
		return fmt.Errorf("%w: item description is empty", ErrInvalidArgument)
	}

	if i.Quantity <= 0 {
		return fmt.Errorf("%w: item quantity %d must be positive", ErrInvalidArgument, i.Quantity)
	}

	if i.UnitPrice < 0 {
		return fmt.Errorf("%w: item unit price %d must not be negative", ErrInvalidArgument, i.UnitPrice)
	}

	if i.Discount < 0 {
		return fmt.Errorf("%w: item discount %d must not be negative", ErrInvalidArgument, i.Discount)
	}

	if i.Discount > i.Quantity*i.UnitPrice {
		return fmt.Errorf("%w: item discount %d exceeds line value %d",
			ErrInvalidArgument, i.Discount, i.Quantity*i.UnitPrice)
	}

	return nil
}

type InvoiceFilter struct {
	Status     *PaymentStatus
	Type       *InvoiceType
	Patient    *uuid.UUID
	IssuedFrom *time.Time
	IssuedTo   *time.Time
	Page       uint64
	Limit      uint64
	SortBy     InvoiceSortCol
	OrderBy    OrderByCol
}

type InvoiceSortCol string

const (
	SortByNumber   InvoiceSortCol = "number"
	SortByTotal    InvoiceSortCol = "total"
	SortByIssuedAt InvoiceSortCol = "issued_at"
	SortByDueDate  InvoiceSortCol = "due_date"
)

func (c InvoiceSortCol) String() string {
	return string(c)
}

func (c InvoiceSortCol) IsValid() bool {
	switch c {
	case SortByNumber, SortByTotal, SortByIssuedAt, SortByDueDate:
		return true
	}

	return false
}

type OrderByCol string

const (
	DESC OrderByCol = "desc"
	ASC  OrderByCol = "asc"
)

func (o OrderByCol) String() string {
	return string(o)
}

func (o OrderByCol) IsValid() bool {
	switch o {
	case DESC, ASC:
		return true
	}

	return false
}
