package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"livestock_market/internal/config"
	"livestock_market/internal/handler"
	"livestock_market/internal/middleware"
	"livestock_market/internal/migrate"
	"livestock_market/internal/repository"
	"livestock_market/internal/service"
	"livestock_market/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, relying on environment variables")
	}

	// --- Configuration ---
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		logger.Fatal("failed to load DB config", zap.Error(err))
	}

	authCfg, err := config.LoadAuthConfig()
	if err != nil {
		logger.Fatal("failed to load auth config", zap.Error(err))
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	// --- Database ---
	dbPool, err := config.ConnectDB(dbCfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer dbPool.Close()

	if err := migrate.Up(context.Background(), dbCfg.DSN); err != nil {
		logger.Fatal("failed to apply migrations", zap.Error(err))
	}

	// --- Utilities ---
	jwtUtil := utils.NewJWTUtil(authCfg.SecretKey, authCfg.Algorithm, authCfg.ExpirationMinutes)

	// --- Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	animalRepo := repository.NewAnimalRepository(dbPool)
	listingRepo := repository.NewListingRepository(dbPool)
	metricsRepo := repository.NewMetricsRepository(dbPool)

	// --- Services ---
	authService := service.NewAuthService(userRepo, jwtUtil)
	animalService := service.NewAnimalService(animalRepo)
	listingService := service.NewListingService(listingRepo, animalRepo, userRepo)
	metricsService := service.NewMetricsService(metricsRepo, animalRepo)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, logger)
	animalHandler := handler.NewAnimalHandler(animalService, logger)
	listingHandler := handler.NewListingHandler(listingService, logger)
	metricsHandler := handler.NewMetricsHandler(metricsService, logger)

	// --- Router ---
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))

	// --- Middlewares ---
	authMW := middleware.Authenticate(jwtUtil, userRepo, logger)
	farmerMW := middleware.FarmerOnly()

	// --- Routes ---
	apiGroup := router.Group("/api/v1")
	authHandler.RegisterAuthRoutes(apiGroup, authMW)
	animalHandler.RegisterAnimalRoutes(apiGroup, authMW, farmerMW)
	listingHandler.RegisterListingRoutes(apiGroup, authMW, farmerMW)
	metricsHandler.RegisterMetricsRoutes(apiGroup, authMW, farmerMW)

	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Server ---
	srv := &http.Server{
		Addr:    ":" + serverPort,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", zap.String("port", serverPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exiting")
}
