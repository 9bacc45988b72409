package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/storekeep/backoffice-api/internal/config"
	"github.com/storekeep/backoffice-api/internal/presentation/http/handler"
	"github.com/storekeep/backoffice-api/internal/presentation/http/middleware"
	applog "github.com/storekeep/backoffice-api/pkg/logger"
	"github.com/storekeep/backoffice-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	User        *handler.UserHandler
	PointOfSale *handler.PointOfSaleHandler
	Product     *handler.ProductHandler
	Customer    *handler.CustomerHandler
	Order       *handler.OrderHandler
	Settings    *handler.SettingsHandler
	Upload      *handler.UploadHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
	Log        *applog.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Log))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Uploaded files are served directly from local storage
	router.Static(deps.Cfg.Storage.PublicBaseURL, deps.Cfg.Storage.Path)

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

		// Per-point-of-sale rate limiter
		rateLimiter := middleware.NewPointOfSaleRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth/Profile routes
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Settings
	protected.GET("/settings", h.Settings.GetSettings)
	protected.PUT("/settings", h.Settings.UpdateSettings)

	// Uploads
	protected.POST("/upload", h.Upload.Upload)

	registerPointOfSaleRoutes(protected, h)
	registerUserRoutes(protected, h)
	registerProductRoutes(protected, h)
	registerCustomerRoutes(protected, h)
	registerOrderRoutes(protected, h)
}

func registerPointOfSaleRoutes(protected *gin.RouterGroup, h *Handlers) {
	points := protected.Group("/points-of-sale")
	{
		points.GET("", h.PointOfSale.List)
		points.POST("", h.PointOfSale.Create)
		points.GET("/:id", h.PointOfSale.Get)
		points.PUT("/:id", h.PointOfSale.Update)
		points.DELETE("/:id", h.PointOfSale.Delete)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.POST("/select-pos", h.User.SelectPointOfSale)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
	}
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers) {
	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.POST("", h.Order.Create)
		orders.GET("/:id", h.Order.Get)
	}
}
