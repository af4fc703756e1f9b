package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/wealthflow/wealthflow-backend/internal/api/handlers"
	custommiddleware "github.com/wealthflow/wealthflow-backend/internal/api/middleware"
	"github.com/wealthflow/wealthflow-backend/internal/config"
	"github.com/wealthflow/wealthflow-backend/internal/service"
)

// Services bundles the service layer dependencies needed by the router.
type Services struct {
	System      *service.SystemService
	Auth        *service.AuthService
	Account     *service.AccountService
	Stock       *service.StockService
	Transaction *service.TransactionService
	Dashboard   *service.DashboardService
	Setting     *service.SettingService
}

// NewRouter creates and configures the HTTP router
func NewRouter(svcs Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	requireAuth := custommiddleware.Auth(svcs.Auth)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace, unauthenticated
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svcs.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/auth", func(r chi.Router) {
			authHandler := handlers.NewAuthHandler(svcs.Auth)
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Get("/me", authHandler.Me)
			})
		})

		// Everything below requires a valid session token.
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Route("/account", func(r chi.Router) {
				accountHandler := handlers.NewAccountHandler(svcs.Account)
				r.Get("/", accountHandler.Accounts)
				r.Post("/", accountHandler.CreateAccount)

				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Put("/", accountHandler.UpdateAccount)
					r.Delete("/", accountHandler.DeleteAccount)
				})
			})

			r.Route("/stock", func(r chi.Router) {
				stockHandler := handlers.NewStockHandler(svcs.Stock)
				r.Get("/", stockHandler.Stocks)
				r.Post("/", stockHandler.CreateStock)
				r.Post("/refresh-prices", stockHandler.RefreshPrices)

				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Delete("/", stockHandler.DeleteStock)
				})
			})

			r.Route("/transaction", func(r chi.Router) {
				transactionHandler := handlers.NewTransactionHandler(svcs.Transaction)
				r.Get("/", transactionHandler.Transactions)
				r.Post("/", transactionHandler.CreateTransaction)
			})

			r.Route("/dashboard", func(r chi.Router) {
				dashboardHandler := handlers.NewDashboardHandler(svcs.Dashboard)
				r.Get("/summary", dashboardHandler.Summary)
				r.Get("/cashflow", dashboardHandler.Cashflow)
				r.Get("/stream", dashboardHandler.Stream)
			})

			r.Route("/settings", func(r chi.Router) {
				settingHandler := handlers.NewSettingHandler(svcs.Setting)
				r.Get("/", settingHandler.Settings)
				r.Put("/gemini-key", settingHandler.UpdateGeminiKey)
			})

			categoryHandler := handlers.NewCategoryHandler()
			r.Get("/categories", categoryHandler.Categories)
		})
	})

	return r
}
