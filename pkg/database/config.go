// Package database provides the gorm-backed storage infrastructure
package database

// Supported storage drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds the storage configuration
// It contains all the necessary parameters to establish a database connection
// for either the postgres or the sqlite driver
type Config struct {
	// Driver selects the storage backend ("postgres" or "sqlite")
	Driver string
	// Host specifies the database server host (postgres)
	Host string
	// Port specifies the database server port (postgres)
	Port int
	// User specifies the database user (postgres)
	User string
	// Password specifies the database password (postgres)
	Password string
	// DBName specifies the database name (postgres)
	DBName string
	// Schema specifies the database schema (postgres)
	Schema string
	// SSLMode specifies the SSL mode for database connection (postgres)
	SSLMode string
	// SQLitePath specifies the database file path (sqlite)
	SQLitePath string
	// MaxIdleConns specifies the maximum number of idle connections in the pool
	MaxIdleConns int
	// MaxOpenConns specifies the maximum number of open connections to the database
	MaxOpenConns int
	// ConnMaxIdleTime specifies the maximum amount of time a connection may be idle, in minutes
	ConnMaxIdleTime int
	// ConnMaxLifetime specifies the maximum amount of time a connection may be reused, in minutes
	ConnMaxLifetime int
	// Debug enables or disables debug mode for database operations
	Debug bool
	// ConnectTimeout specifies the connection timeout in seconds (postgres)
	ConnectTimeout int
}
