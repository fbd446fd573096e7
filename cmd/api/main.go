package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wms-platform/services/restock-service/pkg/cloudevents"
	"github.com/wms-platform/services/restock-service/pkg/kafka"
	"github.com/wms-platform/services/restock-service/pkg/logging"
	"github.com/wms-platform/services/restock-service/pkg/metrics"
	"github.com/wms-platform/services/restock-service/pkg/middleware"
	"github.com/wms-platform/services/restock-service/pkg/mongodb"
	"github.com/wms-platform/services/restock-service/pkg/tracing"

	"github.com/wms-platform/services/restock-service/internal/api/handlers"
	"github.com/wms-platform/services/restock-service/internal/application"
	kafkaInfra "github.com/wms-platform/services/restock-service/internal/infrastructure/kafka"
	mongoRepo "github.com/wms-platform/services/restock-service/internal/infrastructure/mongodb"
)

const serviceName = "restock-service"

func main() {
	// Setup enhanced logger
	logConfig := logging.DefaultConfig(serviceName)
	logConfig.Level = logging.LogLevel(getEnv("LOG_LEVEL", "info"))
	logger := logging.New(logConfig)
	logger.SetDefault()

	logger.Info("Starting restock-service API")

	// Load configuration
	config := loadConfig()
	ctx := context.Background()

	// Initialize OpenTelemetry tracing
	tracingConfig := tracing.DefaultConfig(serviceName)
	tracingConfig.OTLPEndpoint = getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317")
	tracingConfig.Environment = getEnv("ENVIRONMENT", "development")
	tracingConfig.Enabled = getEnv("TRACING_ENABLED", "true") == "true"

	tracerProvider, err := tracing.Initialize(ctx, tracingConfig)
	if err != nil {
		logger.WithError(err).Error("Failed to initialize tracing")
	} else if tracerProvider != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
				logger.WithError(err).Error("Failed to shutdown tracer")
			}
		}()
		logger.Info("Tracing initialized", "endpoint", tracingConfig.OTLPEndpoint)
	}

	// Initialize Prometheus metrics
	metricsConfig := metrics.DefaultConfig(serviceName)
	m := metrics.New(metricsConfig)
	logger.Info("Metrics initialized")

	// Initialize MongoDB with instrumentation and circuit breaking
	mongoClient, err := mongodb.NewProductionClient(ctx, config.MongoDB, m, logger)
	if err != nil {
		logger.WithError(err).Error("Failed to connect to MongoDB")
		os.Exit(1)
	}
	defer mongoClient.Close(ctx)
	logger.Info("Connected to MongoDB", "database", config.MongoDB.Database)

	// Initialize Kafka producer with instrumentation and circuit breaking
	producer := kafka.NewProductionProducer(config.Kafka, m, logger)
	defer producer.Close()
	logger.Info("Kafka producer initialized", "brokers", config.Kafka.Brokers)

	// Initialize CloudEvents factory
	eventFactory := cloudevents.NewEventFactory(cloudevents.SourceRestock)

	// Register request validators
	middleware.InitValidator()

	// Initialize repositories
	db := mongoClient.Database()
	restockOrderRepo := mongoRepo.NewRestockOrderRepository(db)
	skuRepo := mongoRepo.NewSKURepository(db)
	positionRepo := mongoRepo.NewPositionRepository(db)
	skuItemRepo := mongoRepo.NewSKUItemRepository(db)
	internalOrderRepo := mongoRepo.NewInternalOrderRepository(db)
	supplierRepo := mongoRepo.NewSupplierRepository(db)

	// Initialize event publisher
	eventPublisher := kafkaInfra.NewEventPublisher(producer, eventFactory, kafka.Topics)

	// Initialize application services
	restockService := application.NewRestockOrderService(restockOrderRepo, supplierRepo, skuItemRepo, eventPublisher, m, logger)
	stockService := application.NewStockService(skuRepo, positionRepo, eventPublisher, m, logger)
	skuItemService := application.NewSKUItemService(skuItemRepo, skuRepo, eventPublisher, logger)
	internalOrderService := application.NewInternalOrderService(internalOrderRepo, eventPublisher, m, logger)

	// Setup Gin router with middleware
	router := gin.New()

	// Apply standard middleware
	middlewareConfig := middleware.DefaultConfig(serviceName, logger.Logger)
	middleware.Setup(router, middlewareConfig)

	// Add metrics middleware
	router.Use(middleware.MetricsMiddleware(m))

	// Add tracing middleware
	router.Use(middleware.SimpleTracingMiddleware(serviceName))

	// Handle 404 and 405 errors
	router.NoRoute(middleware.NoRoute())
	router.NoMethod(middleware.NoMethod())

	// Health check endpoints
	router.GET("/health", middleware.HealthCheck(serviceName))
	router.GET("/ready", middleware.ReadinessCheck(serviceName, func() error {
		return mongoClient.HealthCheck(ctx)
	}))

	// Metrics endpoint
	router.GET("/metrics", middleware.MetricsEndpoint(m))

	// API routes
	api := router.Group("/api")
	handlers.NewRestockOrderHandler(restockService, logger).RegisterRoutes(api)
	handlers.NewStockHandler(stockService, logger).RegisterRoutes(api)
	handlers.NewSKUItemHandler(skuItemService, logger).RegisterRoutes(api)
	handlers.NewInternalOrderHandler(internalOrderService, logger).RegisterRoutes(api)

	// Start server
	srv := &http.Server{
		Addr:         config.ServerAddr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Error("Server error")
		}
	}()
	logger.Info("Server started", "addr", config.ServerAddr)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}

	logger.Info("Server stopped")
}

// Config holds application configuration
type Config struct {
	ServerAddr string
	MongoDB    *mongodb.Config
	Kafka      *kafka.Config
}

func loadConfig() *Config {
	return &Config{
		ServerAddr: getEnv("SERVER_ADDR", ":3001"),
		MongoDB: &mongodb.Config{
			URI:            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database:       getEnv("MONGODB_DATABASE", "warehouse_db"),
			ConnectTimeout: 10 * time.Second,
			MaxPoolSize:    100,
			MinPoolSize:    10,
		},
		Kafka: &kafka.Config{
			Brokers:      []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
			ClientID:     serviceName,
			BatchSize:    100,
			BatchTimeout: 10 * time.Millisecond,
			RequiredAcks: -1,
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
