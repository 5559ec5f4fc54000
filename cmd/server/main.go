package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/bahikhata/bahikhata.go/db"
	"github.com/bahikhata/bahikhata.go/db/migrations"
	"github.com/bahikhata/bahikhata.go/lib/logging"
	"github.com/bahikhata/bahikhata.go/lib/service"
	"github.com/bahikhata/bahikhata.go/lib/transport"
	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/uptrace/bun/migrate"
)

func main() {

	c := &service.Config{}

	// Load configuration from environment variables
	err := godotenv.Load(".env")
	if err != nil {
		fmt.Println("Failed to load .env file")
	}
	err = envconfig.Process("", c)
	if err != nil {
		log.Fatalf("Error loading environment variables: %v", err)
	}

	// Setup logging to STDOUT or a configured log file
	logger := logging.Logger(c.LogFilePath)

	// Open a DB connection based on the configured DATABASE_URI
	dbConn, err := db.Open(c)
	if err != nil {
		logger.Fatalf("Error initializing db connection: %v", err)
	}

	// Migrate the DB
	startupCtx := context.Background()
	migrator := migrate.NewMigrator(dbConn, migrations.Migrations)
	err = migrator.Init(startupCtx)
	if err != nil {
		logger.Fatalf("Error initializing db migrator: %v", err)
	}
	_, err = migrator.Migrate(startupCtx)
	if err != nil {
		logger.Fatalf("Error migrating database: %v", err)
	}

	// Setup exception tracking with Sentry if configured
	// sentry init needs to happen before the echo middlewares are added
	if c.SentryDSN != "" {
		if err = sentry.Init(sentry.ClientOptions{
			Dsn:              c.SentryDSN,
			IgnoreErrors:     []string{"401"},
			EnableTracing:    c.SentryTracesSampleRate > 0,
			TracesSampleRate: c.SentryTracesSampleRate,
		}); err != nil {
			logger.Errorf("sentry init error: %v", err)
		}
	}

	svc := &service.LedgerService{
		Config: c,
		DB:     dbConn,
		Logger: logger,
	}

	e := transport.InitEcho(c, logger)
	e.Use(transport.CreateLoggingMiddleware(logger))
	transport.RegisterEndpoints(svc, e)

	if c.EnablePrometheus {
		go transport.StartPrometheusEcho(logger, c, e)
	}

	// Start server
	go func() {
		if err := e.Start(fmt.Sprintf(":%v", c.Port)); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server")
		}
	}()

	shutdownCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	<-shutdownCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
	if err := dbConn.Close(); err != nil {
		e.Logger.Fatal(err)
	}
	logger.Info("Ledger exiting gracefully. Goodbye.")
}
