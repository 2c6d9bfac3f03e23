// Package database provides the gorm-backed storage infrastructure
package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Client defines the interface for storage operations
// It provides methods for database migration, getting the database instance,
// health checking, and closing connections
type Client interface {
	// Migrate runs auto-migration for all models
	Migrate(dst ...any) error
	// GetDB returns the underlying gorm.DB instance
	GetDB() *gorm.DB
	// Ping verifies the database connection is alive
	Ping() error
	// Close closes the database connection
	Close() error
}

// client manages database connections and operations
type client struct {
	// DB is the GORM database instance
	DB *gorm.DB
}

// NewClient creates a new database client based on the configuration
// The driver field selects between the postgres and sqlite backends
func NewClient(cfg Config) (Client, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	case DriverPostgres, "":
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s search_path=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.Schema, cfg.SSLMode)
		if cfg.ConnectTimeout > 0 {
			dsn += fmt.Sprintf(" connect_timeout=%d", cfg.ConnectTimeout)
		}
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}

	// Set appropriate log level based on config
	var loggerInterface logger.Interface
	if cfg.Debug {
		loggerInterface = logger.Default.LogMode(logger.Info)
	} else {
		loggerInterface = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: loggerInterface,
	})
	if err != nil {
		return nil, err
	}

	dbSQL, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Pool settings only make sense for the server-backed driver
	if cfg.Driver != DriverSQLite {
		dbSQL.SetMaxIdleConns(cfg.MaxIdleConns)
		dbSQL.SetMaxOpenConns(cfg.MaxOpenConns)
		dbSQL.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTime) * time.Minute)
		dbSQL.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	}

	// Test the database connection
	if err := dbSQL.Ping(); err != nil {
		return nil, err
	}

	return &client{
		DB: db,
	}, nil
}

// Migrate runs auto-migration for all models
// Returns an error if the migration fails
func (c *client) Migrate(dst ...any) error {
	if err := c.DB.AutoMigrate(dst...); err != nil {
		return fmt.Errorf("failed to auto-migrate models: %w", err)
	}
	return nil
}

// GetDB returns the underlying gorm.DB instance
// This allows direct access to the GORM database for custom operations
func (c *client) GetDB() *gorm.DB {
	return c.DB
}

// Ping verifies the database connection is alive
func (c *client) Ping() error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Close closes the database connection
// Returns an error if closing the connection fails
func (c *client) Close() error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
