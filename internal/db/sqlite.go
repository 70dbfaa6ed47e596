package db

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Options struct {
	Driver       string
	Path         string
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
	Logger       logrus.FieldLogger
}

// Open connects to the configured database, sizes the pool and applies the
// embedded migrations for its dialect.
func Open(options Options) (*gorm.DB, error) {
	driver := strings.ToLower(strings.TrimSpace(options.Driver))
	if driver == "" {
		driver = DriverSQLite
	}

	var dialector gorm.Dialector
	switch driver {
	case DriverSQLite:
		if err := os.MkdirAll(filepath.Dir(options.Path), 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
		dialector = sqlite.Open(sqliteDSN(options.Path))
	case DriverPostgres:
		if strings.TrimSpace(options.DSN) == "" {
			return nil, fmt.Errorf("open postgres: empty dsn")
		}
		dialector = postgres.Open(options.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", options.Driver)
	}

	database, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newGormLogger(options.Logger),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("open %s pool: %w", driver, err)
	}
	if driver == DriverSQLite {
		// A single writer connection serializes transactions instead of
		// surfacing SQLITE_BUSY to concurrent requests.
		sqlDB.SetMaxOpenConns(1)
	} else {
		if options.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(options.MaxOpenConns)
		}
		if options.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(options.MaxIdleConns)
		}
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	if err := applyEmbeddedMigrations(database, driver); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply embedded migrations: %w", err)
	}

	return database, nil
}

func OpenSQLite(dbPath string) (*gorm.DB, error) {
	return Open(Options{Driver: DriverSQLite, Path: dbPath})
}

func sqliteDSN(dbPath string) string {
	return fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dbPath)
}
