package config

import (
	"fmt"
	"os"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Store drivers
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Config holds the whole application configuration, populated from the environment.
type Config struct {
	App   AppConfig
	Store StoreConfig
	Redis RedisConfig
	CORS  CORSConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type StoreConfig struct {
	Driver     string // memory, postgres, redis
	UsersFile  string // JSON fixture loaded into the memory store
	DBPassword string // mirrors DB_PASSWORD for validation only
}

type RedisConfig struct {
	Host      string
	Password  string
	DB        int
	KeyPrefix string
}

type CORSConfig struct {
	AllowedOrigin string
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "FotosCavet Cards API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Store: StoreConfig{
			Driver:     getEnv("STORE_DRIVER", DriverMemory),
			UsersFile:  getEnv("STORE_USERS_FILE", ""),
			DBPassword: getEnv("DB_PASSWORD", ""),
		},
		Redis: RedisConfig{
			Host:      getEnv("REDIS_HOST", "localhost:6379"),
			Password:  getEnv("REDIS_PASSWORD", ""),
			DB:        getEnvInt("REDIS_DB", 0),
			KeyPrefix: getEnv("REDIS_KEY_PREFIX", "fotoscavet"),
		},
		CORS: CORSConfig{
			AllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.App,
		validation.Field(&c.App.Environment,
			validation.Required,
			validation.In("development", "staging", "production").Error("must be development, staging or production"),
		),
		validation.Field(&c.App.Port, validation.Required, is.Port),
	); err != nil {
		return fmt.Errorf("app: %w", err)
	}

	production := c.App.Environment == "production"
	if err := validation.ValidateStruct(&c.Store,
		validation.Field(&c.Store.Driver,
			validation.Required,
			validation.In(DriverMemory, DriverPostgres, DriverRedis).Error("must be memory, postgres or redis"),
		),
		validation.Field(&c.Store.DBPassword,
			validation.When(production && c.Store.Driver == DriverPostgres,
				validation.Required.Error("DB_PASSWORD must be set in production"),
			),
		),
	); err != nil {
		return fmt.Errorf("store: %w", err)
	}

	if c.Store.Driver == DriverRedis {
		if err := validation.ValidateStruct(&c.Redis,
			validation.Field(&c.Redis.Host, validation.Required),
			validation.Field(&c.Redis.DB, validation.Min(0)),
			validation.Field(&c.Redis.KeyPrefix, validation.Required),
		); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
