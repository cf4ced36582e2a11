package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/oleocontrol/oleocontrol/internal"
	"github.com/oleocontrol/oleocontrol/internal/analysis"
	analysisRepo "github.com/oleocontrol/oleocontrol/internal/analysis/postgres"
	"github.com/oleocontrol/oleocontrol/internal/auth"
	authRepo "github.com/oleocontrol/oleocontrol/internal/auth/postgres"
	"github.com/oleocontrol/oleocontrol/internal/core/events"
	"github.com/oleocontrol/oleocontrol/internal/department"
	departmentRepo "github.com/oleocontrol/oleocontrol/internal/department/postgres"
	"github.com/oleocontrol/oleocontrol/internal/employee"
	employeeRepo "github.com/oleocontrol/oleocontrol/internal/employee/postgres"
	"github.com/oleocontrol/oleocontrol/internal/entry"
	entryRepo "github.com/oleocontrol/oleocontrol/internal/entry/postgres"
	"github.com/oleocontrol/oleocontrol/internal/inventory"
	inventoryRepo "github.com/oleocontrol/oleocontrol/internal/inventory/postgres"
	"github.com/oleocontrol/oleocontrol/internal/member"
	memberRepo "github.com/oleocontrol/oleocontrol/internal/member/postgres"
	"github.com/oleocontrol/oleocontrol/internal/notification"
	notificationRepo "github.com/oleocontrol/oleocontrol/internal/notification/postgres"
	"github.com/oleocontrol/oleocontrol/internal/notifier"
	"github.com/oleocontrol/oleocontrol/internal/oil"
	oilRepo "github.com/oleocontrol/oleocontrol/internal/oil/postgres"
	"github.com/oleocontrol/oleocontrol/internal/settlement"
	settlementRepo "github.com/oleocontrol/oleocontrol/internal/settlement/postgres"
	"github.com/oleocontrol/oleocontrol/internal/transport/rest"
	"github.com/oleocontrol/oleocontrol/internal/user"
	userRepo "github.com/oleocontrol/oleocontrol/internal/user/postgres"
	"github.com/oleocontrol/oleocontrol/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

func startHTTPServer() {
	cfg, err := loadConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(os.Getenv("APP_ENV"), cfg.Observability.Logging.Level)
	log := logger.LoggerWrapper()

	db, err := initDB(cfg.Database)
	if err != nil {
		log.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	gormDB, err := initGorm(cfg.Database)
	if err != nil {
		log.Error("failed to initialize orm", "error", err)
		os.Exit(1)
	}

	router := buildRouter(cfg, db, gormDB)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	log.Info("starting HTTP server", "address", addr)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		log.Info("received signal, shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Error("server shutdown error", "error", err)
		}
		if err := db.Close(); err != nil {
			log.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	log.Info("server stopped")
}

// buildRouter wires repositories, services and handlers onto the route tree.
func buildRouter(cfg *internal.Config, db *sqlx.DB, gormDB *gorm.DB) http.Handler {
	log := logger.LoggerWrapper()

	bus := events.NewEventBus(log)
	mailer := notifier.NewSMTPMailer(cfg.SMTP)
	notifier.New(mailer, log).Register(bus)

	tokenGen := auth.NewJWTTokenGenerator(
		cfg.Security.AccessTokenSecret,
		cfg.Security.RefreshTokenSecret,
		cfg.Security.AccessTokenDuration,
		cfg.Security.RefreshTokenDuration,
	)
	authSvc := auth.NewService(authRepo.NewRepository(gormDB), tokenGen, cfg.Security.BCryptCost)

	userSvc := user.NewService(userRepo.NewRepository(gormDB), authSvc, bus, log)
	memberSvc := member.NewService(memberRepo.NewRepository(gormDB), log)
	employeeSvc := employee.NewService(employeeRepo.NewRepository(gormDB), log)
	departmentSvc := department.NewService(departmentRepo.NewRepository(gormDB), log)
	oilSvc := oil.NewService(oilRepo.NewRepository(gormDB), log)
	entrySvc := entry.NewService(entryRepo.NewRepository(gormDB), bus, log)
	analysisSvc := analysis.NewService(analysisRepo.NewRepository(gormDB), bus, log)
	settlementSvc := settlement.NewService(settlementRepo.NewRepository(gormDB), bus, log)
	inventorySvc := inventory.NewService(inventoryRepo.NewRepository(gormDB), log)
	notificationSvc := notification.NewService(notificationRepo.NewRepository(gormDB), bus, log)

	handlers := rest.Handlers{
		Auth:         auth.NewHandler(authSvc),
		User:         user.NewHandler(userSvc),
		Member:       member.NewHandler(memberSvc),
		Employee:     employee.NewHandler(employeeSvc),
		Department:   department.NewHandler(departmentSvc),
		Oil:          oil.NewHandler(oilSvc),
		Entry:        entry.NewHandler(entrySvc),
		Analysis:     analysis.NewHandler(analysisSvc),
		Settlement:   settlement.NewHandler(settlementSvc),
		Inventory:    inventory.NewHandler(inventorySvc),
		Notification: notification.NewHandler(notificationSvc),
		Health:       rest.NewHealthHandler(db),
	}

	return rest.NewRouter(handlers, cfg.Server.AllowedOrigins, "api/openapi.yml")
}

// initDB opens the raw pgx-backed handle used for health checks.
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

func initGorm(cfg internal.DatabaseConfig) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.Source), &gorm.Config{})
}
