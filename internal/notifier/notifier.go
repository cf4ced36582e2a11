package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/oleocontrol/oleocontrol/internal/core/events"
)

// Notifier consumes domain events and sends best-effort email to the
// affected member or user. Send failures are logged and swallowed so the
// originating write is never affected.
type Notifier struct {
	mailer Mailer
	logger *slog.Logger
}

func New(mailer Mailer, logger *slog.Logger) *Notifier {
	return &Notifier{mailer: mailer, logger: logger}
}

// Register subscribes every consumer on the bus.
func (n *Notifier) Register(bus *events.EventBus) {
	bus.Subscribe(events.EventUserCreated, n.HandleUserCreated)
	bus.Subscribe(events.EventEntryCreated, n.HandleEntryCreated)
	bus.Subscribe(events.EventAnalysisCompleted, n.HandleAnalysisCompleted)
	bus.Subscribe(events.EventSettlementResolved, n.HandleSettlementResolved)
	bus.Subscribe(events.EventNotificationSent, n.HandleNotificationSent)
}

func (n *Notifier) HandleUserCreated(ctx context.Context, event events.Event) error {
	p := payload(event)
	email := p.str("email")
	if email == "" {
		return nil
	}

	body := fmt.Sprintf(
		"Hola %s,\n\nTu cuenta en OleoControl ha sido creada.\n\nUn saludo,\nOleoControl",
		p.str("first_name"))
	n.send(email, "Bienvenido a OleoControl", body)
	return nil
}

func (n *Notifier) HandleEntryCreated(ctx context.Context, event events.Event) error {
	p := payload(event)
	email := p.str("email")
	if email == "" {
		return nil
	}

	body := fmt.Sprintf(
		"Hemos registrado tu entrega de aceituna.\n\nEntrada: %d\nCantidad: %s kg\n\nRecibirás el resultado del análisis en cuanto esté disponible.",
		p.id("entry_id"), p.str("olive_quantity"))
	n.send(email, "Entrega de aceituna registrada", body)
	return nil
}

func (n *Notifier) HandleAnalysisCompleted(ctx context.Context, event events.Event) error {
	p := payload(event)
	email := p.str("email")
	if email == "" {
		return nil
	}

	report, err := analysisReportPDF(
		p.id("analysis_id"), p.id("entry_id"),
		p.str("acidity"), p.str("humidity"), p.str("yield"))
	if err != nil {
		n.logger.Error("failed to build analysis report pdf", "analysis_id", p.id("analysis_id"), "error", err)
		report = nil
	}

	body := fmt.Sprintf(
		"El análisis de tu entrada %d está completado.\n\nAcidez: %s %%\nHumedad: %s %%\nRendimiento: %s %%",
		p.id("entry_id"), p.str("acidity"), p.str("humidity"), p.str("yield"))

	if report != nil {
		n.send(email, "Análisis completado", body, Attachment{
			Filename:    fmt.Sprintf("analisis-%d.pdf", p.id("analysis_id")),
			ContentType: "application/pdf",
			Content:     report,
		})
	} else {
		n.send(email, "Análisis completado", body)
	}
	return nil
}

func (n *Notifier) HandleSettlementResolved(ctx context.Context, event events.Event) error {
	p := payload(event)
	email := p.str("email")
	if email == "" {
		return nil
	}

	receipt, err := settlementReceiptPDF(
		p.id("settlement_id"), p.str("status"), p.str("amount"), p.str("price"))
	if err != nil {
		n.logger.Error("failed to build settlement receipt pdf", "settlement_id", p.id("settlement_id"), "error", err)
		receipt = nil
	}

	body := fmt.Sprintf(
		"Tu liquidación %d ha sido resuelta.\n\nEstado: %s\nCantidad: %s kg\nPrecio: %s EUR/kg",
		p.id("settlement_id"), p.str("status"), p.str("amount"), p.str("price"))

	if receipt != nil {
		n.send(email, "Liquidación resuelta", body, Attachment{
			Filename:    fmt.Sprintf("liquidacion-%d.pdf", p.id("settlement_id")),
			ContentType: "application/pdf",
			Content:     receipt,
		})
	} else {
		n.send(email, "Liquidación resuelta", body)
	}
	return nil
}

// HandleNotificationSent only records delivery; in-app notifications are
// read through the API, not mailed.
func (n *Notifier) HandleNotificationSent(ctx context.Context, event events.Event) error {
	p := payload(event)
	n.logger.Info("in-app notification delivered",
		"notification_id", p.id("notification_id"),
		"receiver_id", p.id("receiver_id"))
	return nil
}

func (n *Notifier) send(to, subject, body string, attachments ...Attachment) {
	if err := n.mailer.Send(to, subject, body, attachments...); err != nil {
		n.logger.Error("failed to send mail", "to", to, "subject", subject, "error", err)
		return
	}
	n.logger.Info("mail sent", "to", to, "subject", subject)
}

// ----------------- PAYLOAD ACCESS -----------------

type eventPayload map[string]interface{}

func payload(event events.Event) eventPayload {
	if m, ok := event.Payload().(map[string]interface{}); ok {
		return m
	}
	return eventPayload{}
}

func (p eventPayload) str(key string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return ""
}

func (p eventPayload) id(key string) int64 {
	switch v := p[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}
