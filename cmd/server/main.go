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

	"github.com/fvdberg/DCA-Planner-Backend/internal/api"
	"github.com/fvdberg/DCA-Planner-Backend/internal/config"
	"github.com/fvdberg/DCA-Planner-Backend/internal/database"
	"github.com/fvdberg/DCA-Planner-Backend/internal/repository"
	"github.com/fvdberg/DCA-Planner-Backend/internal/service"
	"github.com/fvdberg/DCA-Planner-Backend/internal/timezone"
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

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Resolve the calendar zone once; everything that needs "today" gets it
	// from here.
	tz := timezone.NewResolver(cfg.Time.Zone)
	log.Printf("Resolved calendar zone: %s", tz.Location())

	// Create repositories
	fundRepo := repository.NewFundRepository(db)
	planRepo := repository.NewPlanRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	fundService := service.NewFundService(fundRepo)
	planService := service.NewPlanService(planRepo, fundRepo, tz)
	digestService := service.NewDigestService(planRepo, tz)

	// Schedule the daily plan digest in the resolved zone
	c := cron.New(cron.WithLocation(tz.Location()))
	if err := digestService.Schedule(c); err != nil {
		log.Fatalf("Failed to schedule plan digest: %v", err)
	}
	c.Start()
	defer c.Stop()

	// Create router
	router := api.NewRouter(systemService, fundService, planService, cfg)

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
