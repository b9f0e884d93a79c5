package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/kingrain94/account-api/docs"
	"github.com/kingrain94/account-api/internal/api"
	"github.com/kingrain94/account-api/internal/config"
	"github.com/kingrain94/account-api/internal/middleware"
	"github.com/kingrain94/account-api/internal/repository"
	"github.com/kingrain94/account-api/internal/repository/dynamodb"
	"github.com/kingrain94/account-api/internal/repository/postgres"
	"github.com/kingrain94/account-api/internal/service"
	"github.com/kingrain94/account-api/internal/service/queue"
	"github.com/kingrain94/account-api/pkg/logger"
)

// @title           Account Swagger API
// @version         1.0
// @description     This is an Account creation swagger server.

// @host      localhost:10000
// @BasePath  /api/v1

// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.NewLogger(cfg.AppEnv)
	ctx := context.Background()

	var accountRepo repository.AccountRepository
	switch cfg.StoreBackend {
	case config.StoreBackendPostgres:
		db, err := config.DefaultDatabaseConfig().NewWriterDatabase()
		if err != nil {
			appLogger.Fatal("Failed to connect to database", err)
		}
		defer config.CloseDatabase(db)

		if err := postgres.Migrate(db); err != nil {
			appLogger.Fatal("Failed to migrate database", err)
		}
		accountRepo = postgres.NewAccountRepository(db)
	default:
		dynamoConfig := config.DefaultDynamoDBConfig()
		dynamoClient, err := dynamoConfig.GetClient(ctx)
		if err != nil {
			appLogger.Fatal("Failed to create DynamoDB client", err)
		}
		accountRepo = dynamodb.NewAccountRepository(dynamoClient, cfg.TableName)
	}
	appLogger.Info("Account store ready", zap.String("backend", cfg.StoreBackend))

	accountService := service.NewAccountService(accountRepo, appLogger)

	sqsConfig := config.DefaultSQSConfig()
	if sqsConfig.Enabled() {
		sqsClient, err := sqsConfig.GetClient(ctx)
		if err != nil {
			appLogger.Fatal("Failed to create SQS client", err)
		}
		accountService.SetEventPublisher(queue.NewSQSService(sqsClient, sqsConfig))
	}

	var rateLimitMiddleware *middleware.RateLimitMiddleware
	if cfg.GlobalRateLimit > 0 {
		var redisClient *redis.Client
		redisClient, err = config.DefaultRedisConfig().GetClient(ctx)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", err)
		}
		defer redisClient.Close()
		rateLimitMiddleware = middleware.NewRateLimitMiddleware(redisClient, appLogger)
	}
	validationMiddleware := middleware.NewValidationMiddleware(appLogger)

	server := api.NewServer(
		accountService,
		rateLimitMiddleware,
		validationMiddleware,
		cfg.GlobalRateLimit,
		appLogger,
	)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")
	server.SetupRoutes(apiGroup)

	// Swagger documentation
	docs.SwaggerInfo.Title = "Account API"
	docs.SwaggerInfo.Description = "Creates tenant accounts with exactly-once identifiers"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.ServerPort)
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http"}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Failed to start server", err)
		}
	}()
	appLogger.Info("Server started", zap.Int("port", cfg.ServerPort))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server exiting")
	appLogger.Sync()
}
