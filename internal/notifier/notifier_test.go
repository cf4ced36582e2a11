package notifier_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/oleocontrol/oleocontrol/internal/core/events"
	"github.com/oleocontrol/oleocontrol/internal/notifier"
)

func TestNotifier(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Notifier Suite")
}

type sentMail struct {
	to          string
	subject     string
	body        string
	attachments []notifier.Attachment
}

type mockMailer struct {
	sent      []sentMail
	sendError error
}

func (m *mockMailer) Send(to, subject, body string, attachments ...notifier.Attachment) error {
	if m.sendError != nil {
		return m.sendError
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body, attachments: attachments})
	return nil
}

var _ = Describe("Notifier", func() {
	var (
		mailer *mockMailer
		n      *notifier.Notifier
		ctx    context.Context
	)

	BeforeEach(func() {
		mailer = &mockMailer{}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		n = notifier.New(mailer, logger)
		ctx = context.Background()
	})

	Describe("HandleUserCreated", func() {
		It("sends a welcome mail", func() {
			err := n.HandleUserCreated(ctx, events.NewUserCreatedEvent(1, "pepe@example.com", "Pepe"))
			Expect(err).NotTo(HaveOccurred())
			Expect(mailer.sent).To(HaveLen(1))
			Expect(mailer.sent[0].to).To(Equal("pepe@example.com"))
			Expect(mailer.sent[0].body).To(ContainSubstring("Pepe"))
		})

		It("skips events without an email address", func() {
			err := n.HandleUserCreated(ctx, events.NewUserCreatedEvent(1, "", "Pepe"))
			Expect(err).NotTo(HaveOccurred())
			Expect(mailer.sent).To(BeEmpty())
		})
	})

	Describe("HandleEntryCreated", func() {
		It("sends the delivery receipt with the quantity", func() {
			err := n.HandleEntryCreated(ctx, events.NewEntryCreatedEvent(7, 3, "socio@example.com", "250.5"))
			Expect(err).NotTo(HaveOccurred())
			Expect(mailer.sent).To(HaveLen(1))
			Expect(mailer.sent[0].body).To(ContainSubstring("250.5"))
		})
	})

	Describe("HandleAnalysisCompleted", func() {
		It("attaches the analysis report as a PDF", func() {
			err := n.HandleAnalysisCompleted(ctx,
				events.NewAnalysisCompletedEvent(9, 7, "socio@example.com", "0.8", "12.5", "21.3"))
			Expect(err).NotTo(HaveOccurred())
			Expect(mailer.sent).To(HaveLen(1))
			Expect(mailer.sent[0].attachments).To(HaveLen(1))
			Expect(mailer.sent[0].attachments[0].Filename).To(Equal("analisis-9.pdf"))
			Expect(mailer.sent[0].attachments[0].ContentType).To(Equal("application/pdf"))
			Expect(mailer.sent[0].attachments[0].Content).NotTo(BeEmpty())
		})
	})

	Describe("HandleSettlementResolved", func() {
		It("attaches the settlement receipt as a PDF", func() {
			err := n.HandleSettlementResolved(ctx,
				events.NewSettlementResolvedEvent(4, 3, "socio@example.com", "Accepted", "50", "4.25"))
			Expect(err).NotTo(HaveOccurred())
			Expect(mailer.sent).To(HaveLen(1))
			Expect(mailer.sent[0].attachments[0].Filename).To(Equal("liquidacion-4.pdf"))
			Expect(mailer.sent[0].body).To(ContainSubstring("Accepted"))
		})
	})

	It("swallows mailer failures", func() {
		mailer.sendError = errors.New("smtp down")
		err := n.HandleUserCreated(ctx, events.NewUserCreatedEvent(1, "pepe@example.com", "Pepe"))
		Expect(err).NotTo(HaveOccurred())
	})

	It("delivers events through the bus synchronously", func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		bus := events.NewEventBus(logger)
		n.Register(bus)

		err := bus.PublishSync(ctx, events.NewUserCreatedEvent(1, "pepe@example.com", "Pepe"))
		Expect(err).NotTo(HaveOccurred())
		Expect(mailer.sent).To(HaveLen(1))
	})
})
