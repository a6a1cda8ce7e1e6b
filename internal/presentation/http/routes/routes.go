package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rizkyfh/laundry-pos-api/internal/config"
	"github.com/rizkyfh/laundry-pos-api/internal/presentation/http/handler"
	"github.com/rizkyfh/laundry-pos-api/internal/presentation/http/middleware"
	"github.com/rizkyfh/laundry-pos-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Handlers bundles every HTTP handler the router wires up.
type Handlers struct {
	Auth     *handler.AuthHandler
	Catalog  *handler.CatalogHandler
	Promo    *handler.PromoHandler
	Customer *handler.CustomerHandler
	Order    *handler.OrderHandler
	Loyalty  *handler.LoyaltyHandler
	Settings *handler.SettingsHandler
	Realtime *handler.RealtimeHandler
}

// Setup registers all routes on the Gin engine
func Setup(router *gin.Engine, h *Handlers, jwtManager *utils.JWTManager, cfg *config.Config, log *logrus.Logger) {
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Realtime order feed for POS screens
	router.GET("/ws/orders", h.Realtime.Orders)

	v1 := router.Group("/api/v1")

	// Public routes: PIN login plus the rate-limited loyalty card view
	publicLimiter := middleware.NewIPRateLimiter(
		middleware.RateLimiterConfigFor(cfg.RateLimit.Requests, cfg.RateLimit.Duration))
	v1.POST("/auth/login", h.Auth.Login)

	loyalty := v1.Group("/loyalty", publicLimiter.Middleware())
	{
		loyalty.GET("/:id", h.Loyalty.Card)
		loyalty.GET("/:id/qr", h.Loyalty.CardQR)
	}

	// Authenticated cashier routes
	authed := v1.Group("", middleware.AuthMiddleware(jwtManager))
	{
		authed.POST("/auth/change-pin", h.Auth.ChangePIN)

		services := authed.Group("/services")
		{
			services.GET("", h.Catalog.List)
			services.POST("", h.Catalog.Create)
			services.GET("/:id", h.Catalog.Get)
			services.PATCH("/:id", h.Catalog.Update)
			services.DELETE("/:id", h.Catalog.Delete)
		}

		promos := authed.Group("/promos")
		{
			promos.GET("", h.Promo.List)
			promos.POST("", h.Promo.Create)
			promos.GET("/:id", h.Promo.Get)
			promos.PATCH("/:id", h.Promo.Update)
			promos.DELETE("/:id", h.Promo.Delete)
		}

		customers := authed.Group("/customers")
		{
			customers.GET("", h.Customer.List)
			customers.POST("", h.Customer.Create)
			customers.GET("/:id", h.Customer.Get)
			customers.PATCH("/:id", h.Customer.Update)
			customers.DELETE("/:id", h.Customer.Delete)
			customers.POST("/:id/stamps", h.Customer.AddStamps)
			customers.POST("/:id/redeem", h.Customer.Redeem)
		}

		orders := authed.Group("/orders")
		{
			orders.GET("", h.Order.List)
			orders.POST("/checkout", h.Order.Checkout)
			orders.GET("/:id", h.Order.Get)
			orders.PATCH("/:id/status", h.Order.UpdateStatus)
			orders.POST("/:id/payment/confirm", h.Order.ConfirmPayment)
			orders.PATCH("/:id/damage-note", h.Order.UpdateDamageNote)
			orders.POST("/:id/receipt", h.Order.Receipt)
			orders.POST("/:id/whatsapp", h.Order.WhatsAppLink)
			orders.DELETE("/:id", middleware.RequireRole("owner"), h.Order.Delete)
		}

		settings := authed.Group("/settings")
		{
			settings.GET("", h.Settings.Get)
			settings.PATCH("", middleware.RequireRole("owner"), h.Settings.Update)
		}
	}
}
