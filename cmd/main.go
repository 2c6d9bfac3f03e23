// Package main is the entry point for the application
// It initializes all components and starts the HTTP server
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/eggmansigma/zuckmyeggs/config"
	"github.com/eggmansigma/zuckmyeggs/contracts"
	httpDelivery "github.com/eggmansigma/zuckmyeggs/delivery/http"
	"github.com/eggmansigma/zuckmyeggs/domain/model"
	"github.com/eggmansigma/zuckmyeggs/pkg/database"
	"github.com/eggmansigma/zuckmyeggs/pkg/extract"
	"github.com/eggmansigma/zuckmyeggs/pkg/logger"
	"github.com/eggmansigma/zuckmyeggs/pkg/metrics"
	"github.com/eggmansigma/zuckmyeggs/repository/gormdb"
	"github.com/eggmansigma/zuckmyeggs/usecase"
)

// main is the entry point of the application
// It performs the following steps:
// 1. Initializes the logger
// 2. Loads configuration from files or defaults
// 3. Sets up the database connection and runs migrations
// 4. Initializes the repository, usecase, and handler layers
// 5. Dispatches to the requested mode: migrate-only, seed-demo, chat, or serve
// 6. Starts the HTTP server with graceful shutdown
func main() {
	// configure logger
	appLogger := logger.NewJSONDefault()

	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	seedDemo := flag.Bool("seed-demo", false, "seed the demo farms and exit")
	chatText := flag.String("chat", "", "create an RFQ from intake text, export its CSV, and exit")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		appLogger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Initialize database client
	dbClient, err := database.NewClient(cfg.DatabaseConfig())
	if err != nil {
		appLogger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	// Run database migrations
	err = dbClient.Migrate(
		&model.RFQ{},
		&model.LineItem{},
		&model.Supplier{},
		&model.Quote{},
		&model.Fact{},
		&model.DeckProfile{},
	)
	if err != nil {
		appLogger.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	rfqRepo := gormdb.NewRFQRepository(dbClient.GetDB(), appLogger)
	supplierRepo := gormdb.NewSupplierRepository(dbClient.GetDB(), appLogger)
	quoteRepo := gormdb.NewQuoteRepository(dbClient.GetDB(), appLogger)
	deckRepo := gormdb.NewDeckRepository(dbClient.GetDB(), appLogger)

	ctx := context.Background()

	// Seed the deck profile row so the progress gauge has a home
	if err := deckRepo.EnsureProfile(ctx); err != nil {
		appLogger.Error("Failed to seed deck profile", "error", err)
		os.Exit(1)
	}

	// Initialize usecases
	rfqUsecase := usecase.NewRFQUseCase(rfqRepo, extract.NewKeyword(), appLogger)
	supplierUsecase := usecase.NewSupplierUseCase(supplierRepo, appLogger)
	quoteUsecase := usecase.NewQuoteUseCase(quoteRepo, rfqRepo, supplierRepo, appLogger)
	matchUsecase := usecase.NewMatchUseCase(rfqRepo, supplierRepo, appLogger)
	compareUsecase := usecase.NewCompareUseCase(rfqRepo, quoteRepo, appLogger)
	deckUsecase := usecase.NewDeckUseCase(deckRepo, appLogger)

	// One-shot modes exit before the server starts
	if *migrateOnly {
		appLogger.Info("Migrations applied", "driver", cfg.Storage.Driver)
		closeDB(dbClient, appLogger)
		return
	}
	if *seedDemo {
		seeded, err := supplierUsecase.SeedDemo(ctx)
		if err != nil {
			appLogger.Error("Failed to seed demo suppliers", "error", err)
			os.Exit(1)
		}
		appLogger.Info("Demo seed finished", "seeded", seeded)
		closeDB(dbClient, appLogger)
		return
	}
	if *chatText != "" {
		if err := runChat(ctx, rfqUsecase, *chatText); err != nil {
			appLogger.Error("Chat intake failed", "error", err)
			os.Exit(1)
		}
		closeDB(dbClient, appLogger)
		return
	}

	// Optional demo seed on boot
	if cfg.Seed.Demo {
		seeded, err := supplierUsecase.SeedDemo(ctx)
		if err != nil {
			appLogger.Error("Failed to seed demo suppliers", "error", err)
			os.Exit(1)
		}
		if seeded {
			appLogger.Info("Demo suppliers seeded on boot")
		}
	}

	// Initialize metrics
	appMetrics := metrics.NewHTTPMetrics("eggdesk")

	// Initialize handlers
	rfqHandler := httpDelivery.NewRFQHandler(rfqUsecase, appLogger, appMetrics)
	quoteHandler := httpDelivery.NewQuoteHandler(quoteUsecase, appLogger, appMetrics)
	matchHandler := httpDelivery.NewMatchHandler(matchUsecase, appLogger)
	compareHandler := httpDelivery.NewCompareHandler(compareUsecase, appLogger)
	shareHandler := httpDelivery.NewShareHandler(compareUsecase, appLogger)
	supplierHandler := httpDelivery.NewSupplierHandler(supplierUsecase, appLogger, appMetrics)
	deckHandler := httpDelivery.NewDeckHandler(deckUsecase, appLogger, appMetrics)
	healthHandler := httpDelivery.NewHealthHandler(dbClient, appLogger)

	// Initialize router
	router := httpDelivery.NewRouter(
		rfqHandler,
		quoteHandler,
		matchHandler,
		compareHandler,
		shareHandler,
		supplierHandler,
		deckHandler,
		healthHandler,
		appMetrics,
		cfg.Deck.Token,
		appLogger,
	)

	// Setup routes
	httpHandler := router.SetupRoutes()

	// Start server
	server := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Server.Port),
		Handler:      httpHandler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Create channel to listen for interrupt signal
	quit := make(chan os.Signal, 1)

	// Register the channel to receive specific signals
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Start HTTP server in a separate goroutine
	go func() {
		appLogger.Info("Service starting", "name", cfg.Application.Name, "version", cfg.Application.Version, "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Block until a signal is received
	<-quit
	appLogger.Info("Shutting down server...")

	// Create a context with timeout for graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Shutdown the server gracefully
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	// Close database connection
	closeDB(dbClient, appLogger)

	appLogger.Info("Server exited")
}

// runChat handles the offline intake mode: it drafts an RFQ from the text,
// persists it with the default line item, writes the CSV next to the binary,
// and prints the stored RFQ as JSON.
func runChat(ctx context.Context, rfqUsecase usecase.RFQUseCase, text string) error {
	draft, err := rfqUsecase.DraftRFQ(ctx, text)
	if err != nil {
		return fmt.Errorf("failed to draft rfq: %w", err)
	}

	rfq := &model.RFQ{Notes: text, Items: draft.Items}
	if err := rfqUsecase.CreateRFQ(ctx, rfq); err != nil {
		return fmt.Errorf("failed to create rfq: %w", err)
	}

	data, filename, err := rfqUsecase.ExportCSV(ctx, rfq.ID)
	if err != nil {
		return fmt.Errorf("failed to export rfq csv: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}

	out, err := json.MarshalIndent(contracts.RFQModelToResponse(rfq), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render rfq: %w", err)
	}
	fmt.Println(string(out))
	fmt.Printf("Wrote %s\n", filename)
	return nil
}

func closeDB(dbClient database.Client, appLogger logger.LoggerInterface) {
	if err := dbClient.Close(); err != nil {
		appLogger.Warn("Error closing database connection", "error", err)
	}
}
