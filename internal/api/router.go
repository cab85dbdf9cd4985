package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"finance-tracker/internal/api/handlers"
	custommiddleware "finance-tracker/internal/api/middleware"
	"finance-tracker/internal/config"
	"finance-tracker/internal/service"
)

// Services bundles the service dependencies the router wires to handlers.
type Services struct {
	System      *service.SystemService
	Investment  *service.InvestmentService
	Transaction *service.TransactionService
	Budget      *service.BudgetService
	Goal        *service.GoalService
	Setting     *service.SettingService
	Refresh     *service.RefreshService
}

// NewRouter creates and configures the HTTP router
func NewRouter(services Services, cfg *config.Config) http.Handler {
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
			systemHandler := handlers.NewSystemHandler(services.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/investment", func(r chi.Router) {
			investmentHandler := handlers.NewInvestmentHandler(services.Investment)
			r.Get("/", investmentHandler.Investments)
			r.Post("/", investmentHandler.CreateInvestment)
			r.Get("/portfolio/summary", investmentHandler.PortfolioSummary)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", investmentHandler.GetInvestment)
				r.Delete("/", investmentHandler.DeleteInvestment)
				r.Get("/lots", investmentHandler.Lots)
				r.Post("/lots", investmentHandler.RecordLot)
				r.Get("/performance", investmentHandler.Performance)
				r.Get("/history", investmentHandler.History)
			})
		})

		r.Route("/transaction", func(r chi.Router) {
			transactionHandler := handlers.NewTransactionHandler(services.Transaction)
			r.Get("/", transactionHandler.Transactions)
			r.Post("/", transactionHandler.CreateTransaction)
			r.Get("/summary", transactionHandler.MonthlySummary)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", transactionHandler.GetTransaction)
				r.Put("/", transactionHandler.UpdateTransaction)
				r.Delete("/", transactionHandler.DeleteTransaction)
			})
		})

		r.Route("/budget", func(r chi.Router) {
			budgetHandler := handlers.NewBudgetHandler(services.Budget)
			r.Get("/", budgetHandler.Budgets)
			r.Post("/", budgetHandler.CreateBudget)
			r.Get("/summary", budgetHandler.Summary)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Put("/", budgetHandler.UpdateBudget)
				r.Delete("/", budgetHandler.DeleteBudget)
			})
		})

		r.Route("/goal", func(r chi.Router) {
			goalHandler := handlers.NewGoalHandler(services.Goal)
			r.Get("/", goalHandler.Goals)
			r.Post("/", goalHandler.CreateGoal)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", goalHandler.GetGoal)
				r.Put("/", goalHandler.UpdateGoal)
				r.Delete("/", goalHandler.DeleteGoal)
				r.Post("/contribute", goalHandler.Contribute)
			})
		})

		r.Route("/settings", func(r chi.Router) {
			settingHandler := handlers.NewSettingHandler(services.Setting)
			r.Get("/", settingHandler.Settings)
			r.Get("/{key}", settingHandler.GetSetting)
			r.Put("/{key}", settingHandler.SetSetting)
		})

		r.Route("/price", func(r chi.Router) {
			priceHandler := handlers.NewPriceHandler(services.Refresh)
			r.Post("/refresh", priceHandler.Refresh)
			r.Get("/{symbol}", priceHandler.LatestPrice)
		})
	})

	return r
}
