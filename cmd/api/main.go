package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/langexchange/langexchange-api/config"
	"github.com/langexchange/langexchange-api/internal/cache"
	"github.com/langexchange/langexchange-api/internal/handlers"
	"github.com/langexchange/langexchange-api/internal/middleware"
	"github.com/langexchange/langexchange-api/internal/repository"
	"github.com/langexchange/langexchange-api/internal/services"
	"github.com/langexchange/langexchange-api/pkg/db"
	"github.com/langexchange/langexchange-api/pkg/logger"
	"github.com/langexchange/langexchange-api/pkg/metrics"
	"github.com/langexchange/langexchange-api/pkg/profiling"
	"github.com/langexchange/langexchange-api/pkg/tracing"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Language Exchange API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(tracing.Settings{
		ServiceName:       cfg.Observability.ServiceName,
		ServiceNamespace:  cfg.Observability.ServiceNamespace,
		ServiceVersion:    cfg.Observability.ServiceVersion,
		ServiceInstanceID: cfg.Observability.ServiceInstanceID,
		Environment:       cfg.Server.AppEnv,
		Endpoint:          cfg.Observability.ExporterEndpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	stopProfiler, err := profiling.Start(profiling.Settings{
		Enabled:        cfg.Profiling.Enabled,
		Endpoint:       cfg.Profiling.Endpoint,
		AppName:        cfg.Profiling.AppName,
		SampleTypes:    cfg.Profiling.SampleTypes,
		UploadInterval: time.Duration(cfg.Profiling.UploadIntervalSeconds) * time.Second,
		ServiceVersion: cfg.Observability.ServiceVersion,
		InstanceID:     cfg.Observability.ServiceInstanceID,
		Environment:    cfg.Server.AppEnv,
	})
	if err != nil {
		logger.Fatal("Failed to initialize profiler", zap.Error(err))
	}
	defer stopProfiler()

	// Start infrastructure metrics collection
	stopMetrics := make(chan struct{})
	defer close(stopMetrics)
	metrics.RecordInfrastructureMetrics(stopMetrics)

	// Connect to MongoDB; the client lives for the whole process
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 2*time.Minute)
	mongoClient, err := db.NewClient(connectCtx, db.ClientConfig{
		URI:            cfg.Database.MongoURI(),
		Database:       cfg.Database.Name,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		ConnectTimeout: time.Duration(cfg.Database.ConnectTimeoutSeconds) * time.Second,
	})
	cancelConnect()
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	database := mongoClient.Database()

	// Initialize repositories
	languageRepo := repository.NewLanguageRepository(database)
	tutorRepo := repository.NewTutorRepository(database)
	bookingRepo := repository.NewBookingRepository(database)

	var languageStore repository.LanguageStore = languageRepo
	if cfg.Cache.LanguageTTLSeconds > 0 {
		languageStore = cache.NewLanguageCache(languageRepo, time.Duration(cfg.Cache.LanguageTTLSeconds)*time.Second)
		logger.Info("Language cache enabled", zap.Int("ttl_seconds", cfg.Cache.LanguageTTLSeconds))
	}

	// Initialize services
	authService := services.NewAuthService(cfg)
	languageService := services.NewLanguageService(languageStore)
	tutorService := services.NewTutorService(tutorRepo)
	bookingService := services.NewBookingService(bookingRepo)

	authRateLimiter := middleware.NewRateLimiter(loginRate, loginBurst)
	defer authRateLimiter.Stop()

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := newRouter(routeDeps{
		serviceName:     cfg.Observability.ServiceName,
		allowedOrigins:  cfg.Server.AllowedOrigins,
		profileRoutes:   cfg.Profiling.Enabled,
		authRateLimiter: authRateLimiter,
		verifier:        authService,
		authHandler:     handlers.NewAuthHandler(authService),
		languageHandler: handlers.NewLanguageHandler(languageService),
		tutorHandler:    handlers.NewTutorHandler(tutorService),
		bookingHandler:  handlers.NewBookingHandler(bookingService),
		healthHandler:   handlers.NewHealthHandler(mongoClient),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	// In-flight requests are drained; the client can go
	if err := mongoClient.Close(ctx); err != nil {
		logger.Error("Failed to close MongoDB client", zap.Error(err))
	}

	logger.Info("Server exited")
}
