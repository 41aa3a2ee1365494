// Package database provides the GORM connection and repositories for the
// tracked city list and stored credentials.
package database

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"breezy.app/internal/config"
	"breezy.app/pkg/errors"
)

// Open connects to the configured database and migrates the schema
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DatabaseDriverPostgres:
		dialector = postgres.Open(cfg.GetDSN())
	case config.DatabaseDriverSQLite:
		dialector = sqlite.Open(cfg.GetDSN())
	default:
		return nil, errors.NewConfigurationError(fmt.Sprintf("unsupported database driver: %s", cfg.Driver), nil)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		return nil, errors.NewDatabaseError("connect to database", err)
	}

	if err := RunMigrations(db); err != nil {
		_ = Close(db)
		return nil, err
	}
	return db, nil
}

// RunMigrations executes database schema migrations
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&CityModel{}, &CredentialModel{}); err != nil {
		return errors.NewDatabaseError("migrate database schema", err)
	}
	return nil
}

// Ping verifies the connection is usable
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.NewDatabaseError("get database handle", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.NewDatabaseError("ping database", err)
	}
	return nil
}

// Close safely closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
