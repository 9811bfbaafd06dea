package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-backend/controllers"
	"storefront-backend/database"
	"storefront-backend/metrics"
	"storefront-backend/middleware"
	"storefront-backend/repository"
	"storefront-backend/routes"
	"storefront-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Config load failed: %v", err)
	}

	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// --- Database ---
	if err := database.Connect(database.ConnectOptions{
		Host:     cfg.PostgresHost,
		Port:     cfg.PostgresPort,
		User:     cfg.PostgresUser,
		Password: cfg.PostgresPassword,
		DBName:   cfg.PostgresDB,
		SSLMode:  cfg.PostgresSSLMode,
		TimeZone: cfg.PostgresTimeZone,
	}); err != nil {
		logger.Fatal("DB connection failed", zap.Error(err))
	}
	if err := database.Migrate(database.DB); err != nil {
		logger.Fatal("Migration failed", zap.Error(err))
	}
	if err := database.SeedProducts(database.DB); err != nil {
		logger.Warn("Product seed failed", zap.Error(err))
	}

	// --- Redis (optional product cache) ---
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			logger.Warn("Redis unreachable, product cache disabled", zap.Error(err))
			rdb = nil
		}
		cancel()
	}

	// --- Metrics ---
	reg := metrics.NewRegistry()

	// --- HTTP router ---
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	controllers.RegisterCustomValidators()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.RateLimitPerWindow(cfg.RateLimitMax, cfg.RateLimitWindow))
	r.Use(reg.GinMiddleware())

	// Structured HTTP request logging
	r.Use(func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("body_size", c.Writer.Size()),
		}
		switch {
		case status >= 500:
			logger.Error("http_request", fields...)
		case status >= 400:
			logger.Warn("http_request", fields...)
		default:
			logger.Info("http_request", fields...)
		}
	})

	// Request timeout middleware
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// --- Dependency injection ---
	orderRepo := repository.NewGormOrderRepository(database.DB)
	productRepo := repository.NewGormProductRepository(database.DB)
	reviewRepo := repository.NewGormReviewRepository(database.DB)
	fallbackStore := repository.NewMemoryOrderStore()

	checkoutService := services.NewCheckoutService(orderRepo, fallbackStore, cfg.WhatsAppNumber, logger, reg)
	orderService := services.NewOrderService(orderRepo, fallbackStore, logger)
	productService := services.NewProductService(productRepo, logger)
	reviewService := services.NewReviewService(reviewRepo, productRepo, logger)

	routes.Register(r, routes.Controllers{
		Orders:   controllers.NewOrderController(checkoutService, orderService),
		Products: controllers.NewProductController(productService, controllers.NewCacheManager(rdb)),
		Reviews:  controllers.NewReviewController(reviewService),
	}, cfg.CheckoutMax, cfg.RateLimitWindow)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	r.GET("/metrics", gin.WrapH(reg.Handler()))

	// --- HTTP server ---
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Info("Storefront backend started", zap.String("port", cfg.Port), zap.String("env", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Initiating graceful shutdown...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}
	if err := database.Close(); err != nil {
		logger.Error("Database close error", zap.Error(err))
	}
	if rdb != nil {
		_ = rdb.Close()
	}

	log.Println("Storefront backend stopped gracefully")
}
