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

	"finance-tracker/internal/api"
	"finance-tracker/internal/coingecko"
	"finance-tracker/internal/config"
	"finance-tracker/internal/database"
	"finance-tracker/internal/marketdata"
	"finance-tracker/internal/repository"
	"finance-tracker/internal/service"
	"finance-tracker/internal/yahoo"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection and apply migrations
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	investmentRepo := repository.NewInvestmentRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	budgetRepo := repository.NewBudgetRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	priceRepo := repository.NewPriceRepository(db)

	// Market data gateway: cache-first, throttled, zero-fallback
	gateway := marketdata.NewGateway(
		yahoo.NewFinanceClient(cfg.Market.YahooBaseURL),
		coingecko.NewClient(cfg.Market.CoinGeckoBaseURL, cfg.Market.CoinGeckoAPIKey),
		marketdata.NewQuoteCache(cfg.Market.CacheTTL, nil),
		marketdata.NewThrottle(cfg.Market.MinRequestInterval),
		nil,
	)

	// Create services
	systemService := service.NewSystemService(db)
	investmentService := service.NewInvestmentService(investmentRepo, gateway)
	transactionService := service.NewTransactionService(transactionRepo)
	budgetService := service.NewBudgetService(budgetRepo, transactionRepo)
	goalService := service.NewGoalService(goalRepo)
	refreshService := service.NewRefreshService(investmentRepo, priceRepo, gateway)

	settingService, err := service.NewSettingService(settingRepo, cfg.Security.SettingsKey)
	if err != nil {
		log.Fatalf("Failed to initialize settings: %v", err)
	}

	// Scheduled price refresh
	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.Market.RefreshSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		if err := refreshService.RefreshAll(ctx); err != nil {
			log.Printf("Scheduled price refresh failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Invalid refresh schedule %q: %v", cfg.Market.RefreshSchedule, err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create router
	router := api.NewRouter(api.Services{
		System:      systemService,
		Investment:  investmentService,
		Transaction: transactionService,
		Budget:      budgetService,
		Goal:        goalService,
		Setting:     settingService,
		Refresh:     refreshService,
	}, cfg)

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
