package config

import (
	"fmt"
	"strconv"
	"time"

	"fotoscavet-backend/internal/infrastructure/database"
)

// LoadDatabaseConfig reads the PostgreSQL settings used by the postgres store driver.
func LoadDatabaseConfig() (*database.DBConfig, error) {
	port, err := envInt("DB_PORT", "5432")
	if err != nil {
		return nil, err
	}
	maxConns, err := envInt("DB_MAX_CONNECTIONS", "10")
	if err != nil {
		return nil, err
	}
	minConns, err := envInt("DB_MIN_CONNECTIONS", "1")
	if err != nil {
		return nil, err
	}
	maxRetries, err := envInt("DB_MAX_RETRIES", "5")
	if err != nil {
		return nil, err
	}

	maxConnLifetime, err := envDuration("DB_MAX_CONN_LIFETIME", "5m")
	if err != nil {
		return nil, err
	}
	maxConnIdleTime, err := envDuration("DB_MAX_CONN_IDLE_TIME", "1m")
	if err != nil {
		return nil, err
	}
	healthCheckPeriod, err := envDuration("DB_HEALTH_CHECK_PERIOD", "1m")
	if err != nil {
		return nil, err
	}
	retryDelay, err := envDuration("DB_RETRY_DELAY", "1s")
	if err != nil {
		return nil, err
	}
	connectTimeout, err := envDuration("DB_CONNECT_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	return &database.DBConfig{
		Host:              getEnv("DB_HOST", "localhost"),
		Port:              port,
		Username:          getEnv("DB_USER", "fotoscavet"),
		Password:          getEnv("DB_PASSWORD", ""),
		DBName:            getEnv("DB_NAME", "fotoscavet"),
		SSLMode:           getEnv("DB_SSLMODE", "disable"),
		MaxConns:          int32(maxConns),
		MinConns:          int32(minConns),
		MaxConnLifetime:   maxConnLifetime,
		MaxConnIdleTime:   maxConnIdleTime,
		HealthCheckPeriod: healthCheckPeriod,
		MaxRetries:        maxRetries,
		RetryDelay:        retryDelay,
		ConnectTimeout:    connectTimeout,
	}, nil
}

func envInt(key, def string) (int, error) {
	v, err := strconv.Atoi(getEnv(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func envDuration(key, def string) (time.Duration, error) {
	v, err := time.ParseDuration(getEnv(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
