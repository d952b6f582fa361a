package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tdejong/Trading-Journal-Backend/internal/api/handlers"
	custommiddleware "github.com/tdejong/Trading-Journal-Backend/internal/api/middleware"
	"github.com/tdejong/Trading-Journal-Backend/internal/config"
	"github.com/tdejong/Trading-Journal-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	transactionService *service.TransactionService,
	tradeService *service.TradeService,
	strategyService *service.StrategyService,
	portfolioService *service.PortfolioService,
	snapshotService *service.SnapshotService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/transaction", func(r chi.Router) {
			transactionHandler := handlers.NewTransactionHandler(transactionService)
			r.Get("/", transactionHandler.AllTransactions)
			r.Post("/", transactionHandler.CreateTransaction)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateIDMiddleware)
				r.Get("/", transactionHandler.GetTransaction)
				r.Put("/", transactionHandler.UpdateTransaction)
				r.Delete("/", transactionHandler.DeleteTransaction)
			})
		})

		r.Route("/trade", func(r chi.Router) {
			tradeHandler := handlers.NewTradeHandler(tradeService)
			r.Get("/", tradeHandler.AllTrades)
			r.Post("/", tradeHandler.CreateTrade)
			r.Post("/preview", tradeHandler.PreviewTrade)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateIDMiddleware)
				r.Get("/", tradeHandler.GetTrade)
				r.Put("/", tradeHandler.UpdateTrade)
				r.Delete("/", tradeHandler.DeleteTrade)
			})
		})

		r.Route("/strategy", func(r chi.Router) {
			strategyHandler := handlers.NewStrategyHandler(strategyService)
			r.Get("/", strategyHandler.AllStrategies)
			r.Post("/", strategyHandler.CreateStrategy)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateIDMiddleware)
				r.Get("/", strategyHandler.GetStrategy)
				r.Put("/", strategyHandler.UpdateStrategy)
				r.Delete("/", strategyHandler.DeleteStrategy)
			})
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(portfolioService, snapshotService)
			r.Get("/positions", portfolioHandler.Positions)
			r.Get("/summary", portfolioHandler.Summary)
			r.Get("/allocation", portfolioHandler.Allocation)
			r.Get("/history", portfolioHandler.History)
		})
	})

	return r
}
