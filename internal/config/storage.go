package config

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// StorageConfig points at the S3-compatible bucket cards.json is published to.
type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// LoadStorageConfig reads STORAGE_* variables. Only the publishing command needs them.
func LoadStorageConfig() (*StorageConfig, error) {
	cfg := &StorageConfig{
		Endpoint:  getEnv("STORAGE_ENDPOINT", "localhost:9000"),
		AccessKey: getEnv("STORAGE_ACCESS_KEY", ""),
		SecretKey: getEnv("STORAGE_SECRET_KEY", ""),
		Bucket:    getEnv("STORAGE_BUCKET", "fotoscavet"),
		UseSSL:    getEnv("STORAGE_USE_SSL", "false") == "true",
	}

	if err := validation.ValidateStruct(cfg,
		validation.Field(&cfg.Endpoint, validation.Required),
		validation.Field(&cfg.AccessKey, validation.Required),
		validation.Field(&cfg.SecretKey, validation.Required),
		validation.Field(&cfg.Bucket, validation.Required, validation.Length(3, 63)),
	); err != nil {
		return nil, fmt.Errorf("storage config validation failed: %w", err)
	}

	return cfg, nil
}
