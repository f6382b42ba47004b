package database

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/franciscosanchezn/restaurant-manager/internal/config"
	"github.com/franciscosanchezn/restaurant-manager/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(config.LevelFor(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL")))
}

// SetLevel changes the level of the package logger
func SetLevel(level logrus.Level) {
	log.SetLevel(level)
}

var retryDelays = []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second, 16 * time.Second}

// InitDatabase opens the store described by cfg.
// Both PostgreSQL and SQLite are supported; the handle is limited to a single
// connection because every operation is a sequential read-modify-write.
func InitDatabase(cfg DatabaseConfig) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	// Normalize driver name
	driver := strings.ToLower(cfg.Driver)

	log.WithFields(logrus.Fields{
		"db_driver": driver,
		"db_host":   cfg.Host,
		"db_name":   cfg.Name,
		"db_path":   cfg.Path,
	}).Info("Initializing database connection")

	maxAttempts := cfg.Attempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if maxAttempts > len(retryDelays)+1 {
		maxAttempts = len(retryDelays) + 1
	}

	gormCfg := &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		log.WithFields(logrus.Fields{
			"attempt":      attempt,
			"max_attempts": maxAttempts,
		}).Debug("Attempting database connection")

		// Select driver based on configuration
		switch driver {
		case "postgres", "postgresql":
			log.WithField("dsn_host", cfg.Host).Debug("Connecting to PostgreSQL")
			db, err = gorm.Open(postgres.Open(cfg.DSN()), gormCfg)

		case "sqlite", "":
			if strings.TrimSpace(cfg.Path) == "" {
				return nil, errors.New("sqlite path must not be empty")
			}
			log.WithField("db_path", cfg.Path).Debug("Connecting to SQLite")
			db, err = gorm.Open(sqlite.Open(cfg.DSN()), gormCfg)

		default:
			return nil, fmt.Errorf("unsupported database driver: %s (supported: postgres, sqlite)", cfg.Driver)
		}

		if err == nil {
			// Connection successful, verify with ping
			sqlDB, sqlErr := db.DB()
			if sqlErr != nil {
				log.WithError(sqlErr).Error("Failed to get database instance")
				err = sqlErr
			} else if pingErr := sqlDB.Ping(); pingErr != nil {
				log.WithError(pingErr).Error("Failed to ping database")
				err = pingErr
			} else {
				configureConnection(sqlDB)

				log.WithFields(logrus.Fields{
					"db_driver": driver,
					"attempt":   attempt,
				}).Info("Database initialized successfully")

				return db, nil
			}
		}

		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("Database connection attempt failed")

		// Don't wait after the last attempt
		if attempt < maxAttempts {
			delay := retryDelays[attempt-1]
			log.WithField("delay", delay).Info("Retrying database connection")
			time.Sleep(delay)
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxAttempts, err)
}

// configureConnection pins the pool to one connection.
// An in-memory SQLite database only lives as long as the connection that created it.
func configureConnection(sqlDB *sql.DB) {
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	log.WithFields(logrus.Fields{
		"max_open_conns": 1,
		"max_idle_conns": 1,
	}).Debug("Connection configured")
}

// Migrate creates the four restaurant tables when they are missing
func Migrate(db *gorm.DB) error {
	if db == nil {
		return errors.New("database handle is nil")
	}
	if err := db.AutoMigrate(&models.Ingredient{}, &models.Dish{}, &models.DishIngredient{}, &models.Order{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// Open initializes the store and makes sure the schema exists
func Open(cfg DatabaseConfig) (*gorm.DB, error) {
	db, err := InitDatabase(cfg)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		_ = Close(db)
		return nil, err
	}
	return db, nil
}

// Close releases the underlying connection
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
