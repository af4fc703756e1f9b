package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/wealthflow/wealthflow-backend/internal/ai"
	"github.com/wealthflow/wealthflow-backend/internal/api"
	"github.com/wealthflow/wealthflow-backend/internal/config"
	"github.com/wealthflow/wealthflow-backend/internal/database"
	"github.com/wealthflow/wealthflow-backend/internal/repository"
	"github.com/wealthflow/wealthflow-backend/internal/service"
	"github.com/wealthflow/wealthflow-backend/internal/snapshot"
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

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create repositories
	userRepo := repository.NewUserRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	stockRepo := repository.NewStockRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// Snapshot hub feeding the dashboard and its event stream
	loader := snapshot.NewRepositoryLoader(accountRepo, stockRepo, transactionRepo)
	hub := snapshot.NewHub(loader)

	// Create services
	systemService := service.NewSystemService(db)
	authService := service.NewAuthService(userRepo, cfg.Auth.JWTSecret)
	settingService, err := service.NewSettingService(settingRepo, cfg.Auth.FernetKey)
	if err != nil {
		log.Fatalf("Failed to initialize settings: %v", err)
	}
	accountService := service.NewAccountService(accountRepo, hub)
	transactionService := service.NewTransactionService(transactionRepo, hub)
	stockService := service.NewStockService(
		stockRepo,
		settingService,
		ai.NewGeminiClient(cfg.Gemini.Model),
		hub,
		cfg.Gemini.APIKey,
	)
	dashboardService := service.NewDashboardService(hub)

	// Nightly price refresh, best-effort per user
	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.Gemini.RefreshSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		ids, err := userRepo.ListIDs()
		if err != nil {
			log.Printf("Scheduled price refresh aborted: %v", err)
			return
		}
		for _, id := range ids {
			if _, err := stockService.RefreshPrices(ctx, id); err != nil {
				log.Printf("Scheduled price refresh failed for user %s: %v", id, err)
			}
		}
	})
	if err != nil {
		log.Fatalf("Invalid PRICE_REFRESH_SCHEDULE: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create router
	router := api.NewRouter(api.Services{
		System:      systemService,
		Auth:        authService,
		Account:     accountService,
		Stock:       stockService,
		Transaction: transactionService,
		Dashboard:   dashboardService,
		Setting:     settingService,
	}, cfg)

	// Create HTTP server. WriteTimeout stays 0 so the dashboard event stream
	// can outlive a fixed deadline; regular handlers finish well within the
	// read timeout.
	server := &http.Server{
		Addr:        cfg.Server.Addr,
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
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
