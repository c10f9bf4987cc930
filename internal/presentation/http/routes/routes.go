package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mamisoa/girofle-api/internal/config"
	"github.com/mamisoa/girofle-api/internal/presentation/http/handler"
	"github.com/mamisoa/girofle-api/internal/presentation/http/middleware"
	"github.com/mamisoa/girofle-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth         *handler.AuthHandler
	Receipt      *handler.ReceiptHandler
	Billing      *handler.BillingHandler
	Adjustment   *handler.AdjustmentHandler
	DeliverySlip *handler.DeliverySlipHandler
	Stats        *handler.StatsHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-operator rate limiter
		rateLimiterCfg := middleware.DefaultRateLimiterConfig()
		if deps.Cfg.RateLimit.Requests > 0 && deps.Cfg.RateLimit.Duration > 0 {
			rateLimiterCfg = middleware.RateLimiterConfig{
				RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
				BurstSize:         deps.Cfg.RateLimit.Requests,
				CleanupInterval:   5 * time.Minute,
				EntryTTL:          10 * time.Minute,
			}
		}
		rateLimiter := middleware.NewClientRateLimiter(rateLimiterCfg)
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Profile
	protected.GET("/profile", h.Auth.GetProfile)

	// Receipts and their lifecycle
	registerReceiptRoutes(protected, h)

	// Billings
	registerBillingRoutes(protected, h)

	// Adjustments
	registerAdjustmentRoutes(protected, h)

	// Delivery slips
	registerDeliverySlipRoutes(protected, h)

	// Statistics
	registerStatsRoutes(protected, h)
}

func registerReceiptRoutes(protected *gin.RouterGroup, h *Handlers) {
	receipts := protected.Group("/receipts")
	{
		receipts.GET("", h.Receipt.List)
		receipts.POST("", h.Receipt.Create)
		receipts.POST("/deliver", h.Receipt.DeliverBatch)
		receipts.GET("/:id", h.Receipt.Get)
		receipts.PUT("/:id", h.Receipt.Update)
		receipts.DELETE("/:id", h.Receipt.Delete)
		receipts.GET("/:id/transitions", h.Receipt.GetTransitions)
		receipts.POST("/:id/deliver", h.Receipt.Deliver)
		receipts.GET("/:id/billing", h.Billing.GetByReceipt)
		receipts.GET("/:id/adjustment", h.Adjustment.GetByReceipt)
		receipts.GET("/:id/delivery-slip", h.DeliverySlip.GetByReceipt)
	}
}

func registerBillingRoutes(protected *gin.RouterGroup, h *Handlers) {
	billings := protected.Group("/billings")
	{
		billings.GET("", h.Billing.List)
		billings.POST("", h.Billing.Create)
		billings.GET("/:id", h.Billing.Get)
		billings.PUT("/:id", h.Billing.Update)
		billings.DELETE("/:id", h.Billing.Delete)
	}
}

func registerAdjustmentRoutes(protected *gin.RouterGroup, h *Handlers) {
	adjustments := protected.Group("/adjustments")
	{
		adjustments.GET("", h.Adjustment.List)
		adjustments.POST("", h.Adjustment.Create)
		adjustments.GET("/:id", h.Adjustment.Get)
		adjustments.PUT("/:id", h.Adjustment.Update)
	}
}

func registerDeliverySlipRoutes(protected *gin.RouterGroup, h *Handlers) {
	slips := protected.Group("/delivery-slips")
	{
		slips.GET("", h.DeliverySlip.List)
		slips.POST("", h.DeliverySlip.Create)
		slips.GET("/:id", h.DeliverySlip.Get)
		slips.PUT("/:id", h.DeliverySlip.Update)
		slips.DELETE("/:id", h.DeliverySlip.Delete)
	}
}

func registerStatsRoutes(protected *gin.RouterGroup, h *Handlers) {
	stats := protected.Group("/stats")
	{
		stats.GET("/summary", h.Stats.GetSummary)
		stats.GET("/undelivered", h.Stats.GetUndeliveredQuantities)
		stats.GET("/undelivered/:type", h.Stats.GetUndeliveredDetails)
	}
}
