package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MaxOpenConns bounds the Postgres pool. Exhaustion surfaces as a write
// failure and triggers the in-memory fallback, same as the database being
// down.
const MaxOpenConns = 10

// DB is the shared GORM handle, set by Connect.
var DB *gorm.DB

// ConnectOptions carries the Postgres connection settings.
type ConnectOptions struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	TimeZone string
}

// DSN renders the options as a GORM/pgx connection string.
func (o ConnectOptions) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		o.Host, o.User, o.Password, o.DBName, o.Port, o.SSLMode, o.TimeZone)
}

// Connect opens the Postgres connection and configures the pool.
func Connect(opts ConnectOptions) error {
	var err error
	DB, err = gorm.Open(postgres.Open(opts.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to access sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(MaxOpenConns)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return nil
}

// Close closes the underlying connection pool.
func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
