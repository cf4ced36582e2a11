package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/oleocontrol/oleocontrol/internal/notifier"
	"github.com/oleocontrol/oleocontrol/pkg/logger"
)

var (
	notifierCmd = &cobra.Command{
		Use:   "notifier",
		Short: "Verify the outbound mail channel",
		Long:  `Send a test email through the configured SMTP relay and exit.`,
		Run: func(cmd *cobra.Command, args []string) {
			runNotifierCheck()
		},
	}
	testRecipient string
)

func init() {
	notifierCmd.Flags().StringVar(&testRecipient, "to", "", "recipient of the test email")
}

func runNotifierCheck() {
	cfg, err := loadConfig(".")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger.Init(os.Getenv("APP_ENV"), cfg.Observability.Logging.Level)

	if testRecipient == "" {
		log.Fatal("--to is required")
	}
	if cfg.SMTP.Host == "" {
		log.Fatal("smtp host is not configured")
	}

	mailer := notifier.NewSMTPMailer(cfg.SMTP)
	if err := mailer.Send(testRecipient, "OleoControl - prueba de correo",
		"Este es un mensaje de prueba del canal de notificaciones de OleoControl."); err != nil {
		log.Fatalf("failed to send test email: %v", err)
	}

	log.Printf("test email sent to %s", testRecipient)
}
