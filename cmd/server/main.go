package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tdejong/Trading-Journal-Backend/internal/api"
	"github.com/tdejong/Trading-Journal-Backend/internal/config"
	"github.com/tdejong/Trading-Journal-Backend/internal/database"
	"github.com/tdejong/Trading-Journal-Backend/internal/repository"
	"github.com/tdejong/Trading-Journal-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply schema migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Create repositories
	transactionRepo := repository.NewTransactionRepository(db)
	tradeRepo := repository.NewTradeRepository(db)
	strategyRepo := repository.NewStrategyRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	transactionService := service.NewTransactionService(transactionRepo)
	strategyService := service.NewStrategyService(strategyRepo)
	tradeService := service.NewTradeService(tradeRepo, strategyRepo)
	portfolioService := service.NewPortfolioService(
		transactionService,
		tradeService,
		cfg.Portfolio.InitialCapital,
	)
	snapshotService := service.NewSnapshotService(snapshotRepo, portfolioService)

	// Write today's summary snapshot and schedule the daily refresh
	if err := snapshotService.StartScheduler(context.Background()); err != nil {
		log.Fatalf("Failed to start snapshot scheduler: %v", err)
	}
	defer snapshotService.StopScheduler()

	// Create router
	router := api.NewRouter(systemService, transactionService, tradeService, strategyService, portfolioService, snapshotService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
