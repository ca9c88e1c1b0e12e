package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"fotoscavet-backend/internal/config"
	"fotoscavet-backend/pkg/container"
	"fotoscavet-backend/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "cardsctl",
	Short: "Operate the FotosCavet card store",
	Long: `cardsctl seeds and inspects the store behind the FotosCavet API.

Store commands read the same environment as the API server (STORE_DRIVER,
DB_*, REDIS_*), including a .env file in the working directory.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
		logger.Init(os.Getenv("APP_ENV"))
	},
}

func init() {
	rootCmd.AddCommand(seedCardsCmd, importUsersCmd, exportCardsCmd, exportWorkbookCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openStore builds the container for a persistent store driver.
// The memory driver is refused since its state dies with the process.
func openStore() (*container.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Store.Driver == config.DriverMemory {
		return nil, fmt.Errorf("STORE_DRIVER=%s is not persistent; use %s or %s",
			config.DriverMemory, config.DriverPostgres, config.DriverRedis)
	}
	return container.NewContainerWithConfig(cfg)
}
