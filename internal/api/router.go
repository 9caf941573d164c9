package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fvdberg/DCA-Planner-Backend/internal/api/handlers"
	custommiddleware "github.com/fvdberg/DCA-Planner-Backend/internal/api/middleware"
	"github.com/fvdberg/DCA-Planner-Backend/internal/config"
	"github.com/fvdberg/DCA-Planner-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	fundService *service.FundService,
	planService *service.PlanService,
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

		fundHandler := handlers.NewFundHandler(fundService)
		planHandler := handlers.NewPlanHandler(planService)

		r.Route("/fund", func(r chi.Router) {
			r.Get("/", fundHandler.GetAllFunds)
			r.Post("/", fundHandler.CreateFund)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", fundHandler.GetFund)
				r.Get("/plan", planHandler.GetPlanForFund)
				r.Put("/plan", planHandler.SavePlan)
			})
		})

		r.Route("/plan", func(r chi.Router) {
			r.Get("/", planHandler.GetAllPlans)
			r.Get("/overview", planHandler.GetPlanOverview)
			r.Get("/preview", planHandler.PreviewFirstDate)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", planHandler.GetPlan)
				r.Delete("/", planHandler.DeletePlan)
			})
		})
	})

	return r
}
