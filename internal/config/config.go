package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

const (
	StoreBackendDynamoDB = "dynamodb"
	StoreBackendPostgres = "postgres"
)

var ErrMissingTableName = errors.New("DYNAMODB_TABLE_NAME is required")

type Config struct {
	AppEnv          string `json:"app_env"`
	ServerPort      int    `json:"server_port"`
	StoreBackend    string `json:"store_backend"`
	TableName       string `json:"table_name"`
	GlobalRateLimit int    `json:"global_rate_limit"`
}

func Load() (*Config, error) {
	serverPort, _ := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if serverPort == 0 {
		serverPort = 10000
	}

	// 0 turns rate limiting off
	globalRateLimit, _ := strconv.Atoi(os.Getenv("GLOBAL_RATE_LIMIT"))

	cfg := &Config{
		AppEnv:          os.Getenv("APP_ENV"),
		ServerPort:      serverPort,
		StoreBackend:    getEnvOrDefault("STORE_BACKEND", StoreBackendDynamoDB),
		TableName:       os.Getenv("DYNAMODB_TABLE_NAME"),
		GlobalRateLimit: globalRateLimit,
	}

	switch cfg.StoreBackend {
	case StoreBackendDynamoDB:
		if cfg.TableName == "" {
			return nil, ErrMissingTableName
		}
	case StoreBackendPostgres:
	default:
		return nil, fmt.Errorf("unsupported STORE_BACKEND %q", cfg.StoreBackend)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
