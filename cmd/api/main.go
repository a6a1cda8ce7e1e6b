package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rizkyfh/laundry-pos-api/internal/application/service"
	"github.com/rizkyfh/laundry-pos-api/internal/config"
	"github.com/rizkyfh/laundry-pos-api/internal/infrastructure/cache"
	"github.com/rizkyfh/laundry-pos-api/internal/infrastructure/database"
	infraRepo "github.com/rizkyfh/laundry-pos-api/internal/infrastructure/repository"
	"github.com/rizkyfh/laundry-pos-api/internal/logger"
	"github.com/rizkyfh/laundry-pos-api/internal/presentation/http/dto/request"
	"github.com/rizkyfh/laundry-pos-api/internal/presentation/http/handler"
	"github.com/rizkyfh/laundry-pos-api/internal/presentation/http/routes"
	"github.com/rizkyfh/laundry-pos-api/internal/realtime"
	"github.com/rizkyfh/laundry-pos-api/pkg/printer"
	"github.com/rizkyfh/laundry-pos-api/pkg/utils"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.App.Env, cfg.App.LogLevel)

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	if err := database.AutoMigrate(db); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}
	if err := database.SeedDefaultData(db, &cfg.Store); err != nil {
		log.WithError(err).Fatal("failed to seed default data")
	}

	redisCache, err := cache.Connect(context.Background(), &cfg.Redis)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to redis")
	}
	if redisCache != nil {
		defer redisCache.Close()
	}

	receiptPrinter, err := printer.NewPrinterFromConfig(cfg.Printer.Type, cfg.Printer.Address)
	if err != nil {
		log.WithError(err).Warn("printer unavailable, falling back to link-only receipts")
		receiptPrinter, _ = printer.NewPrinterFromConfig("none", "")
	}
	defer receiptPrinter.Close()

	// Repositories
	userRepo := infraRepo.NewUserRepository(db)
	serviceRepo := infraRepo.NewServiceRepository(db)
	promoRepo := infraRepo.NewPromoRepository(db)
	customerRepo := infraRepo.NewCustomerRepository(db)
	orderRepo := infraRepo.NewOrderRepository(db)
	settingsRepo := infraRepo.NewSettingsRepository(db)

	// Realtime hub
	hub := realtime.NewHub()

	// Services
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)
	authService := service.NewAuthService(userRepo, jwtManager, log)
	catalogService := service.NewCatalogService(serviceRepo)
	promoService := service.NewPromoService(promoRepo)
	customerService := service.NewCustomerService(customerRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	loyaltyService := service.NewLoyaltyService(customerRepo, settingsRepo, redisCache, cfg.App.BaseURL, log)
	orderService := service.NewOrderService(orderRepo, serviceRepo, promoRepo, customerRepo, settingsRepo, hub, log)
	printerService := service.NewPrinterService(orderRepo, settingsRepo, receiptPrinter, log)

	// Handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Catalog:  handler.NewCatalogHandler(catalogService),
		Promo:    handler.NewPromoHandler(promoService),
		Customer: handler.NewCustomerHandler(customerService, loyaltyService),
		Order:    handler.NewOrderHandler(orderService, printerService),
		Loyalty:  handler.NewLoyaltyHandler(loyaltyService),
		Settings: handler.NewSettingsHandler(settingsService),
		Realtime: handler.NewRealtimeHandler(hub, log),
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := request.RegisterIDPhoneValidation(v); err != nil {
			log.WithError(err).Fatal("failed to register phone validation")
		}
	}

	router := gin.New()
	router.Use(gin.Recovery())
	routes.Setup(router, handlers, jwtManager, cfg, log)

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: router,
	}

	go func() {
		log.WithField("port", cfg.App.Port).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("forced shutdown")
	}
	log.Info("server stopped")
}
