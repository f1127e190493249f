package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/household-platform/household-service/internal/application"
	repos "github.com/household-platform/household-service/internal/infrastructure/mongodb"
	"github.com/household-platform/household-service/internal/infrastructure/vision"
	"github.com/household-platform/household-service/internal/platform/kafka"
	"github.com/household-platform/household-service/internal/platform/logging"
	"github.com/household-platform/household-service/internal/platform/metrics"
	"github.com/household-platform/household-service/internal/platform/middleware"
	"github.com/household-platform/household-service/internal/platform/mongodb"
	"github.com/household-platform/household-service/internal/scheduler"
)

const serviceName = "household-service"

func main() {
	// Local development reads config from a .env file; in deployment the
	// environment is injected and the file is absent.
	_ = godotenv.Load()

	logConfig := logging.DefaultConfig(serviceName)
	logConfig.Level = logging.LogLevel(getEnv("LOG_LEVEL", "info"))
	logger := logging.New(logConfig)
	logger.SetDefault()

	logger.Info("Starting household-service API")

	config := loadConfig()
	ctx := context.Background()

	m := metrics.New(metrics.DefaultConfig(serviceName))
	logger.Info("Metrics initialized")

	mongoClient, err := mongodb.NewClient(ctx, config.MongoDB)
	if err != nil {
		logger.WithError(err).Error("Failed to connect to MongoDB")
		os.Exit(1)
	}
	db := mongodb.NewCircuitBreakerClient(mongoClient, m, logger)
	defer func() {
		if err := mongoClient.Close(ctx); err != nil {
			logger.WithError(err).Error("Failed to close MongoDB client")
		}
	}()
	logger.Info("Connected to MongoDB", "database", config.MongoDB.Database)

	producer := kafka.NewProducer(config.Kafka, m, logger)
	defer producer.Close()
	logger.Info("Kafka producer initialized", "brokers", config.Kafka.Brokers)

	// Repositories
	stockRepo := repos.NewStockRepository(db)
	recipeRepo := repos.NewRecipeRepository(db)
	mealPlanRepo := repos.NewMealPlanRepository(db)
	transactionRepo := repos.NewTransactionRepository(db)
	savingsRepo := repos.NewSavingsRepository(db)
	billRepo := repos.NewBillRepository(db)
	userRepo := repos.NewUserRepository(db)
	announcementRepo := repos.NewAnnouncementRepository(db)

	// Vision scanner for receipt ingestion
	if config.AnthropicAPIKey == "" {
		logger.Warn("ANTHROPIC_API_KEY not set, receipt scanning will fail")
	}
	receiptScanner := vision.NewReceiptScanner(config.AnthropicAPIKey)

	// Application services
	pantryService := application.NewPantryService(stockRepo, m, logger)
	recipeService := application.NewRecipeService(recipeRepo, stockRepo, logger)
	mealPlanService := application.NewMealPlanService(mealPlanRepo, recipeRepo, stockRepo, producer, m, logger)
	shoppingService := application.NewShoppingService(stockRepo, m, logger)
	financeService := application.NewFinanceService(transactionRepo, producer, logger)
	savingsService := application.NewSavingsService(savingsRepo, logger)
	billService := application.NewBillService(billRepo, m, logger)
	userService := application.NewUserService(userRepo, logger)
	announcementService := application.NewAnnouncementService(announcementRepo, userRepo, producer, logger)
	receiptService := application.NewReceiptService(receiptScanner, financeService, m, logger)

	// Background jobs: planner roll-over and the low-stock digest
	jobs := scheduler.New(config.Scheduler, mealPlanService, shoppingService, producer, m, logger)
	if err := jobs.Start(); err != nil {
		logger.WithError(err).Error("Failed to start scheduler")
		os.Exit(1)
	}
	defer jobs.Stop()

	// HTTP router
	if getEnv("ENVIRONMENT", "development") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	middlewareConfig := middleware.DefaultConfig(serviceName, logger.Logger)
	middlewareConfig.AllowedOrigins = config.AllowedOrigins
	middleware.Setup(router, middlewareConfig)
	router.Use(middleware.MetricsMiddleware(m))
	router.Use(middleware.RoleAuth(middleware.DefaultRoleAuthConfig()))

	router.NoRoute(middleware.NoRoute())
	router.NoMethod(middleware.NoMethod())

	router.GET("/health", middleware.HealthCheck(serviceName))
	router.GET("/ready", middleware.ReadinessCheck(serviceName, func() error {
		return mongoClient.HealthCheck(ctx)
	}))
	router.GET("/metrics", middleware.MetricsEndpoint(m))

	api := router.Group("/api/v1")
	registerRoutes(api, &handlers{
		pantry:        pantryService,
		recipes:       recipeService,
		mealPlans:     mealPlanService,
		shopping:      shoppingService,
		finance:       financeService,
		savings:       savingsService,
		bills:         billService,
		users:         userService,
		announcements: announcementService,
		receipts:      receiptService,
		logger:        logger,
	})

	srv := &http.Server{
		Addr:         config.ServerAddr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server error", "error", err)
		}
	}()
	logger.Info("Server started", "addr", config.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	logger.Info("Server stopped")
}

// Config holds application configuration
type Config struct {
	ServerAddr      string
	AllowedOrigins  []string
	AnthropicAPIKey string
	MongoDB         *mongodb.Config
	Kafka           *kafka.Config
	Scheduler       *scheduler.Config
}

func loadConfig() *Config {
	return &Config{
		ServerAddr:      getEnv("SERVER_ADDR", ":8080"),
		AllowedOrigins:  strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		MongoDB: &mongodb.Config{
			URI:            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database:       getEnv("MONGODB_DATABASE", "household"),
			ConnectTimeout: 10 * time.Second,
			MaxPoolSize:    100,
			MinPoolSize:    10,
		},
		Kafka: &kafka.Config{
			Brokers:      strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			ClientID:     serviceName,
			BatchSize:    100,
			BatchTimeout: 10 * time.Millisecond,
			RequiredAcks: -1,
		},
		Scheduler: &scheduler.Config{
			AppendSchedule: getEnv("PLANNER_APPEND_SCHEDULE", "0 0 * * *"),
			DigestSchedule: getEnv("LOW_STOCK_DIGEST_SCHEDULE", "0 6 * * *"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
