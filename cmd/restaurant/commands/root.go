package commands

import (
	"fmt"
	"os"

	"github.com/franciscosanchezn/restaurant-manager/internal/config"
	"github.com/franciscosanchezn/restaurant-manager/internal/database"
	"github.com/franciscosanchezn/restaurant-manager/internal/services"
	"github.com/franciscosanchezn/restaurant-manager/internal/shell"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	// Global flags
	envFile string

	configuration *config.Config
	db            *gorm.DB
)

// rootCmd starts the interactive shell when no subcommand is given
var rootCmd = &cobra.Command{
	Use:   "restaurant",
	Short: "Restaurant manager - menu, orders, inventory and sales",
	Long: `Restaurant manager keeps the menu, the orders, the ingredient stock and
the sales history of a single restaurant in a local database.

Run without a subcommand to open the interactive menus.

Examples:
  restaurant                          # Interactive shell
  restaurant report best-sellers      # Print one report
  restaurant chart sales              # Bar chart of sales per weekday
  restaurant serve                    # Read-only JSON API on APP_HOST:APP_PORT`,
	Version:           "1.0.0",
	SilenceUsage:      true,
	PersistentPreRunE: bootstrap,
	RunE:              runShell,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnFinalize(closeDatabase)

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Dotenv file to load before reading the environment")
}

// bootstrap prepares logging, configuration and the store for every command
func bootstrap(cmd *cobra.Command, args []string) error {
	loadDotenvFile(envFile)
	setUpLogger()

	conf, err := loadConfig()
	if err != nil {
		return err
	}
	configuration = conf

	return setupDatabase(conf)
}

// closeDatabase runs after every command, failed ones included
func closeDatabase() {
	if db == nil {
		return
	}
	if err := database.Close(db); err != nil {
		log.WithError(err).Warn("Failed to close database")
	}
	db = nil
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile(path string) {
	if err := godotenv.Load(path); err != nil {
		log.WithField("path", path).Debug("No .env file found, using system environment variables")
	}
}

// setUpLogger sends JSON logs to stderr so they never mix with command output
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetOutput(os.Stderr)

	level := config.LevelFor(config.GetEnvWithDefault("APP_ENV", "local"), os.Getenv("LOG_LEVEL"))
	log.SetLevel(level)
	config.SetLevel(level)
	database.SetLevel(level)
}

// loadConfig loads the application configuration from environment variables
func loadConfig() (*config.Config, error) {
	conf, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	log.Infof("Configuration loaded: %s", conf)
	return conf, nil
}

// setupDatabase opens the store and creates any missing table
func setupDatabase(conf *config.Config) error {
	dbConfig := database.NewDatabaseConfig(conf)
	conn, err := database.Open(dbConfig)
	if err != nil {
		return fmt.Errorf("open database %s: %w", dbConfig.String(), err)
	}
	db = conn
	return nil
}

// newServices builds every service over the open store
func newServices() shell.Services {
	return shell.Services{
		Orders:    services.NewOrderService(db),
		Menu:      services.NewMenuService(db),
		Inventory: services.NewInventoryService(db),
		Reports:   services.NewReportService(db),
		Queries:   services.NewQueryService(db),
	}
}
