// Package config handles application configuration loading and management
package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/viper"

	"github.com/eggmansigma/zuckmyeggs/pkg/database"
)

// Config holds the entire application configuration
// It contains nested configurations for application, server, storage, deck,
// and seed settings
type Config struct {
	// Application contains application-level settings
	Application ApplicationConfig `mapstructure:"application"`
	// Server contains HTTP server settings
	Server ServerConfig `mapstructure:"server"`
	// Storage contains storage backend settings
	Storage StorageConfig `mapstructure:"storage"`
	// Deck contains investor deck settings
	Deck DeckConfig `mapstructure:"deck"`
	// Seed contains startup seeding settings
	Seed SeedConfig `mapstructure:"seed"`
}

// ApplicationConfig holds the application-level configuration
type ApplicationConfig struct {
	// Name specifies the name of the application
	Name string `mapstructure:"name"`
	// Version specifies the version of the application
	Version string `mapstructure:"version"`
}

// ServerConfig holds the server configuration
// It contains settings for HTTP server behavior including timeouts and port
type ServerConfig struct {
	// Port specifies the port number the server will listen on
	Port int `mapstructure:"port"`
	// ReadTimeout defines the maximum duration for reading the entire request, including the body, in seconds
	ReadTimeout int `mapstructure:"read_timeout"` // seconds
	// WriteTimeout defines the maximum duration before timing out writes of the response, in seconds
	WriteTimeout int `mapstructure:"write_timeout"` // seconds
	// ShutdownTimeout defines the maximum duration the server will wait for active connections to finish during shutdown, in seconds
	ShutdownTimeout int `mapstructure:"shutdown_timeout"` // seconds
}

// StorageConfig holds the storage backend configuration
// The driver selects between the postgres and sqlite backends
type StorageConfig struct {
	// Driver selects the storage backend ("postgres" or "sqlite")
	Driver string `mapstructure:"driver"`
	// Postgres contains PostgreSQL-specific settings
	Postgres PostgresConfig `mapstructure:"postgres"`
	// SQLite contains sqlite-specific settings
	SQLite SQLiteConfig `mapstructure:"sqlite"`
}

// PostgresConfig holds the PostgreSQL database configuration
// It contains all necessary parameters to establish a PostgreSQL connection
type PostgresConfig struct {
	// Host specifies the database server host
	Host string `mapstructure:"host"`
	// Port specifies the database server port
	Port int `mapstructure:"port"`
	// User specifies the database user
	User string `mapstructure:"user"`
	// Password specifies the database password
	Password string `mapstructure:"password"`
	// DBName specifies the database name
	DBName string `mapstructure:"dbname"`
	// Schema specifies the database schema
	Schema string `mapstructure:"schema"`
	// SSLMode specifies the SSL mode for database connection
	SSLMode string `mapstructure:"sslmode"`
	// MaxIdleConns specifies the maximum number of idle connections in the pool
	MaxIdleConns int `mapstructure:"max_idle_conns"`
	// MaxOpenConns specifies the maximum number of open connections to the database
	MaxOpenConns int `mapstructure:"max_open_conns"`
	// ConnMaxIdleTime specifies the maximum amount of time a connection may be idle, in minutes
	ConnMaxIdleTime int `mapstructure:"conn_max_idle_time"` // minutes
	// ConnMaxLifetime specifies the maximum amount of time a connection may be reused, in minutes
	ConnMaxLifetime int `mapstructure:"conn_max_lifetime"` // minutes
	// Debug enables or disables debug mode for database operations
	Debug bool `mapstructure:"debug"`
}

// SQLiteConfig holds the sqlite database configuration
type SQLiteConfig struct {
	// Path specifies the database file path
	Path string `mapstructure:"path"`
}

// DeckConfig holds the investor deck configuration
type DeckConfig struct {
	// Token is the shared secret expected in the X-Deck-Token header
	Token string `mapstructure:"token"`
}

// SeedConfig holds the startup seeding configuration
type SeedConfig struct {
	// Demo seeds the demo farms at startup when the supplier book is empty
	Demo bool `mapstructure:"demo"`
}

// LoadConfig loads the application configuration from various sources
// It first looks for an eggdesk.yaml file in the current directory and config directory
// If no config file is found, it uses default values
// Returns a Config struct and an error if loading fails
func LoadConfig() (*Config, error) {
	viper.SetConfigName("eggdesk")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("configs")

	// Set default values
	viper.SetDefault("application.name", "Egg RFQ Desk")
	viper.SetDefault("application.version", "1.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 15)     // seconds
	viper.SetDefault("server.write_timeout", 15)    // seconds
	viper.SetDefault("server.shutdown_timeout", 30) // seconds
	viper.SetDefault("storage.driver", database.DriverSQLite)
	viper.SetDefault("storage.sqlite.path", "eggdesk.db")
	viper.SetDefault("storage.postgres.host", "localhost")
	viper.SetDefault("storage.postgres.port", 5432)
	// No defaults for user and password - they must be provided
	viper.SetDefault("storage.postgres.dbname", "eggdesk")
	viper.SetDefault("storage.postgres.schema", "public")
	viper.SetDefault("storage.postgres.sslmode", "disable")
	viper.SetDefault("storage.postgres.max_idle_conns", 10)
	viper.SetDefault("storage.postgres.max_open_conns", 100)
	viper.SetDefault("storage.postgres.conn_max_idle_time", 5) // minutes
	viper.SetDefault("storage.postgres.conn_max_lifetime", 60) // minutes
	viper.SetDefault("storage.postgres.debug", false)
	viper.SetDefault("seed.demo", false)

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			log.Println("Config file not found, using defaults")
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Validate required settings
	if config.Deck.Token == "" {
		return nil, errors.New("deck token is required")
	}
	switch config.Storage.Driver {
	case database.DriverSQLite:
	case database.DriverPostgres:
		if config.Storage.Postgres.User == "" {
			return nil, errors.New("database user is required")
		}
		if config.Storage.Postgres.Password == "" {
			return nil, errors.New("database password is required")
		}
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", config.Storage.Driver)
	}

	return &config, nil
}

// DatabaseConfig maps the storage settings onto the database client config
func (c *Config) DatabaseConfig() database.Config {
	return database.Config{
		Driver:          c.Storage.Driver,
		Host:            c.Storage.Postgres.Host,
		Port:            c.Storage.Postgres.Port,
		User:            c.Storage.Postgres.User,
		Password:        c.Storage.Postgres.Password,
		DBName:          c.Storage.Postgres.DBName,
		Schema:          c.Storage.Postgres.Schema,
		SSLMode:         c.Storage.Postgres.SSLMode,
		SQLitePath:      c.Storage.SQLite.Path,
		MaxIdleConns:    c.Storage.Postgres.MaxIdleConns,
		MaxOpenConns:    c.Storage.Postgres.MaxOpenConns,
		ConnMaxIdleTime: c.Storage.Postgres.ConnMaxIdleTime,
		ConnMaxLifetime: c.Storage.Postgres.ConnMaxLifetime,
		Debug:           c.Storage.Postgres.Debug,
	}
}

// GetConfigPath returns the path of the loaded config file
// If no config file was loaded, it returns an empty string
func GetConfigPath() string {
	return viper.ConfigFileUsed()
}
