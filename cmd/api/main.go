package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mamisoa/girofle-api/internal/application/service"
	"github.com/mamisoa/girofle-api/internal/config"
	"github.com/mamisoa/girofle-api/internal/infrastructure/database"
	infraRepo "github.com/mamisoa/girofle-api/internal/infrastructure/repository"
	"github.com/mamisoa/girofle-api/internal/presentation/http/handler"
	"github.com/mamisoa/girofle-api/internal/presentation/http/routes"
	"github.com/mamisoa/girofle-api/pkg/utils"
)

func main() {
	cfg := config.Load()

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.SeedAdminUser(db); err != nil {
		log.Printf("Warning: failed to seed admin user: %v", err)
	}

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours, cfg.JWT.RefreshExpiryHours)

	// Repositories
	receiptRepo := infraRepo.NewReceiptRepository(db)
	billingRepo := infraRepo.NewBillingRepository(db)
	adjustmentRepo := infraRepo.NewAdjustmentRepository(db)
	deliverySlipRepo := infraRepo.NewDeliverySlipRepository(db)
	statsRepo := infraRepo.NewStatsRepository(db)
	userRepo := infraRepo.NewUserRepository(db)

	// Services
	receiptService := service.NewReceiptService(receiptRepo)
	billingService := service.NewBillingService(billingRepo, receiptRepo)
	adjustmentService := service.NewAdjustmentService(adjustmentRepo, receiptRepo)
	deliveryService := service.NewDeliveryService(deliverySlipRepo, receiptRepo)
	statsService := service.NewStatsService(statsRepo)
	authService := service.NewAuthService(userRepo, jwtManager)

	// Handlers
	handlers := &routes.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Receipt:      handler.NewReceiptHandler(receiptService, deliveryService),
		Billing:      handler.NewBillingHandler(billingService),
		Adjustment:   handler.NewAdjustmentHandler(adjustmentService),
		DeliverySlip: handler.NewDeliverySlipHandler(deliveryService),
		Stats:        handler.NewStatsHandler(statsService),
	}

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("%s listening on port %s", cfg.App.Name, cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}

	log.Println("Server stopped")
}
