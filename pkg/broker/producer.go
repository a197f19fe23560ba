package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"

	"github.com/clinwell/billing/internal/entity"
)

// Producer emits billing events to Kafka. Audit entries are written
// synchronously so the caller awaits delivery; notification events are
// written asynchronously and their failure only gets logged.
type Producer struct {
	l                  *slog.Logger
	auditW             *kafka.Writer
	notifyW            *kafka.Writer
	auditTopic         string
	notificationsTopic string
}

func NewProducer(l *slog.Logger, brokers []string, auditTopic, notificationsTopic string) *Producer {
	l = l.WithGroup("kafka")

	auditW := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		Async:                  false,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	notifyW := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:                  l,
		auditW:             auditW,
		notifyW:            notifyW,
		auditTopic:         auditTopic,
		notificationsTopic: notificationsTopic,
	}
}

type AuditEvent struct {
	Actor        string         `json:"actor"`
	Action       string         `json:"action"`
	ResourceKind string         `json:"resource_kind"`
	ResourceID   string         `json:"resource_id"`
	Details      map[string]any `json:"details,omitempty"`
	Origin       string         `json:"origin,omitempty"`
	At           time.Time      `json:"at"`
}

// Record emits one audit entry and waits for the write to resolve. A failed
// write is logged, never propagated: financial state must not depend on
// audit-sink availability.
func (p *Producer) Record(ctx context.Context, e entity.AuditEntry) {
	event := AuditEvent{
		Actor:        e.Actor,
		Action:       e.Action,
		ResourceKind: e.ResourceKind,
		ResourceID:   e.ResourceID,
		Details:      e.Details,
		Origin:       e.Origin,
		At:           e.At,
	}

	b, err := json.Marshal(event)
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("marshal audit event: %s", err))
		return
	}

	err = p.auditW.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.ResourceID),
		Value: b,
		Topic: p.auditTopic,
	})
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("write audit event %q for %s/%s: %s",
			e.Action, e.ResourceKind, e.ResourceID, err))
	}
}

type InvoiceSettledEvent struct {
	InvoiceID     uuid.UUID `json:"invoice_id"`
	InvoiceNumber int64     `json:"invoice_number"`
	InvoiceType   string    `json:"invoice_type"`
	Total         int64     `json:"total"`
	ClientName    string    `json:"client_name"`
	ClientEmail   string    `json:"client_email"`
	PaidAt        time.Time `json:"paid_at"`
}

// SendInvoiceSettled queues a downstream notification (invoice e-mail) for
// a settled invoice. Best-effort: the financial state is already committed.
func (p *Producer) SendInvoiceSettled(ctx context.Context, inv entity.Invoice) {
	paidAt := time.Now()
	if inv.PaidAt != nil {
		paidAt = *inv.PaidAt
	}

	event := InvoiceSettledEvent{
		InvoiceID:     inv.ID,
		InvoiceNumber: inv.Number,
		InvoiceType:   inv.Type.String(),
		Total:         inv.Total,
		ClientName:    inv.ClientName,
		ClientEmail:   inv.ClientEmail,
		PaidAt:        paidAt,
	}

	p.sendNotification(ctx, inv.ID.String(), "invoice.settled", event)
}

type PaymentReminderEvent struct {
	InvoiceID     uuid.UUID  `json:"invoice_id"`
	InvoiceNumber int64      `json:"invoice_number"`
	ClientName    string     `json:"client_name"`
	ClientEmail   string     `json:"client_email"`
	Outstanding   int64      `json:"outstanding"`
	DueDate       *time.Time `json:"due_date,omitempty"`
}

// SendPaymentReminder queues an overdue-invoice reminder.
func (p *Producer) SendPaymentReminder(ctx context.Context, inv entity.Invoice) {
	event := PaymentReminderEvent{
		InvoiceID:     inv.ID,
		InvoiceNumber: inv.Number,
		ClientName:    inv.ClientName,
		ClientEmail:   inv.ClientEmail,
		Outstanding:   inv.Outstanding(),
		DueDate:       inv.DueDate,
	}

	p.sendNotification(ctx, inv.ID.String(), "payment.reminder", event)
}

func (p *Producer) sendNotification(ctx context.Context, key, kind string, event any) {
	b, err := json.Marshal(event)
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("marshal %s event: %s", kind, err))
		return
	}

	err = p.notifyW.WriteMessages(ctx, kafka.Message{
		Key:     []byte(key),
		Value:   b,
		Topic:   p.notificationsTopic,
		Headers: []kafka.Header{{Key: "kind", Value: []byte(kind)}},
	})
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("write %s event: %s", kind, err))
	}
}

func (p *Producer) Close() {
	if err := p.auditW.Close(); err != nil {
		p.l.Error(fmt.Sprintf("close audit writer: %s", err))
	}

	if err := p.notifyW.Close(); err != nil {
		p.l.Error(fmt.Sprintf("close notifications writer: %s", err))
	}
}

type infoLogger struct {
	l *slog.Logger
}

func (l *infoLogger) Printf(format string, v ...any) {
	l.l.Info(fmt.Sprintf(format, v...))
}

type errorLogger struct {
	l *slog.Logger
}

func (l *errorLogger) Printf(format string, v ...any) {
	l.l.Error(fmt.Sprintf(format, v...))
}
