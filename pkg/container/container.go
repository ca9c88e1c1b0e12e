package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"fotoscavet-backend/internal/config"
	"fotoscavet-backend/internal/infrastructure/database"
	"fotoscavet-backend/internal/infrastructure/kv"

	cardHandler "fotoscavet-backend/internal/domains/card/handler"
	cardRepo "fotoscavet-backend/internal/domains/card/repository"
	cardService "fotoscavet-backend/internal/domains/card/service"
	userHandler "fotoscavet-backend/internal/domains/user/handler"
	userRepo "fotoscavet-backend/internal/domains/user/repository"
	userService "fotoscavet-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph. Exactly one of DB or
// Redis is set, depending on the store driver; the memory driver uses
// neither.
type Container struct {
	// Infrastructure
	Config *config.Config
	DB     *database.PostgresDB
	Redis  *kv.RedisClient

	// Repositories
	CardRepo cardRepo.Repository
	UserRepo userRepo.Repository

	// Services
	CardService cardService.ServiceInterface
	UserService userService.ServiceInterface

	// Handlers
	CardHandler *cardHandler.CardHandler
	UserHandler *userHandler.UserHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer loads the configuration and builds the graph in order:
// config, store, repositories, services, handlers.
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewContainerWithConfig(cfg)
}

// NewContainerWithConfig builds the graph from an already loaded config.
func NewContainerWithConfig(cfg *config.Config) (*Container, error) {
	log.Info().Str("driver", cfg.Store.Driver).Msg("Initializing DI container")

	c := &Container{Config: cfg}

	// STEP 1: store and repositories
	if err := c.initRepositories(); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to init repositories: %w", err)
	}

	// STEP 2: services
	c.initServices()

	// STEP 3: handlers
	c.initHandlers()

	log.Info().Msg("DI container initialized")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() error {
	switch c.Config.Store.Driver {
	case config.DriverPostgres:
		return c.initPostgres()
	case config.DriverRedis:
		return c.initRedis()
	default:
		return c.initMemory()
	}
}

func (c *Container) initMemory() error {
	c.CardRepo = cardRepo.NewMemoryRepository()

	if path := c.Config.Store.UsersFile; path != "" {
		users, err := userRepo.LoadMemoryRepository(path)
		if err != nil {
			return err
		}
		c.UserRepo = users
		log.Info().Str("file", path).Msg("Users loaded into memory store")
		return nil
	}

	c.UserRepo = userRepo.NewMemoryRepository()
	log.Warn().Msg("Memory store without STORE_USERS_FILE: Users table is missing")
	return nil
}

func (c *Container) initPostgres() error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}

	c.CardRepo = cardRepo.NewPostgresRepository(db.Pool)
	c.UserRepo = userRepo.NewPostgresRepository(db.Pool)
	return nil
}

func (c *Container) initRedis() error {
	rc := kv.NewRedisClient(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
		c.Config.Redis.KeyPrefix,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := rc.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.Redis = rc

	c.CardRepo = cardRepo.NewRedisRepository(rc.Client, rc.Prefix)
	c.UserRepo = userRepo.NewRedisRepository(rc.Client, rc.Prefix)
	return nil
}

func (c *Container) initServices() {
	c.CardService = cardService.NewCardService(c.CardRepo, c.UserRepo)
	c.UserService = userService.NewUserService(c.UserRepo)
}

func (c *Container) initHandlers() {
	c.CardHandler = cardHandler.NewCardHandler(c.CardService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
}

// ========================================
// HELPER METHODS
// ========================================

// HealthCheck pings the configured store. The memory store is always "ok".
func (c *Container) HealthCheck(ctx context.Context) map[string]string {
	status := map[string]string{"driver": c.Config.Store.Driver, "store": "ok"}

	var err error
	switch {
	case c.DB != nil:
		err = c.DB.HealthCheck(ctx)
	case c.Redis != nil:
		err = c.Redis.HealthCheck(ctx)
	}
	if err != nil {
		status["store"] = fmt.Sprintf("error: %v", err)
	}
	return status
}

// Cleanup releases store connections. Safe to call more than once.
func (c *Container) Cleanup() {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close database")
		} else {
			log.Info().Msg("Database connections closed")
		}
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close redis")
		} else {
			log.Info().Msg("Redis connections closed")
		}
		c.Redis = nil
	}
}
