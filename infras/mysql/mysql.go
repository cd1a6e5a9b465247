package mysql

import (
	"fmt"
	"hotel/config"
	"net"

	"github.com/rs/zerolog/log"
	gormMySQL "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	mysqlMaxIdleConnection = 10
	mysqlMaxOpenConnection = 10
)

// New opens a gorm session factory on MySQL. parseTime is required so DATE
// columns come back as time.Time.
func New(config *config.Config) (*gorm.DB, error) {
	cfg := config.DB.MySQL
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		cfg.Username,
		cfg.Password,
		net.JoinHostPort(cfg.Host, cfg.Port),
		cfg.Name,
	)

	db, err := gorm.Open(gormMySQL.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed connecting to mysql database %s: %w", cfg.Name, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get mysql connection pool: %w", err)
	}

	sqlDB.SetMaxIdleConns(mysqlMaxIdleConnection)
	sqlDB.SetMaxOpenConns(mysqlMaxOpenConnection)

	log.Info().
		Str("host", cfg.Host).
		Str("port", cfg.Port).
		Str("dbName", cfg.Name).
		Msg("Connected to database")

	return db, nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get mysql connection pool: %w", err)
	}

	return sqlDB.Close() //nolint:wrapcheck
}
