package main

import (
	"context"
	"log"
	"os"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kingrain94/account-api/internal/config"
	"github.com/kingrain94/account-api/internal/lambda"
	"github.com/kingrain94/account-api/internal/repository/dynamodb"
	"github.com/kingrain94/account-api/internal/service"
	"github.com/kingrain94/account-api/internal/service/queue"
	"github.com/kingrain94/account-api/pkg/logger"
)

func main() {
	// Only present for local invocations
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))
	defer appLogger.Sync()

	ctx := context.Background()

	// Clients are built once per execution environment and reused across
	// invocations.
	dynamoConfig := config.DefaultDynamoDBConfig()
	if dynamoConfig.TableName == "" {
		appLogger.Fatal("Failed to load config", config.ErrMissingTableName)
	}
	dynamoClient, err := dynamoConfig.GetClient(ctx)
	if err != nil {
		appLogger.Fatal("Failed to create DynamoDB client", err)
	}

	accountRepo := dynamodb.NewAccountRepository(dynamoClient, dynamoConfig.TableName)
	accountService := service.NewAccountService(accountRepo, appLogger)

	sqsConfig := config.DefaultSQSConfig()
	if sqsConfig.Enabled() {
		sqsClient, err := sqsConfig.GetClient(ctx)
		if err != nil {
			appLogger.Fatal("Failed to create SQS client", err)
		}
		accountService.SetEventPublisher(queue.NewSQSService(sqsClient, sqsConfig))
	}

	handler := lambda.NewHandler(accountService, appLogger)

	appLogger.Info("Create account function ready", zap.String("table", dynamoConfig.TableName))
	awslambda.Start(handler.Handle)
}
