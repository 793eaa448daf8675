package database

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dcminogue/LightBnB/config"
)

// ErrNoRowsReturned is returned when an insert reports no affected rows.
var ErrNoRowsReturned = errors.New("no rows returned from insert")

// DefaultLimit caps list queries when the caller passes a non-positive limit.
const DefaultLimit = 10

type Database struct {
	db     *gorm.DB
	logger *logrus.Logger
}

// NewDatabase opens a connection handle for the configured driver.
func NewDatabase(cfg config.Database, logger *logrus.Logger) (*Database, error) {
	if logger == nil {
		logger = logrus.New()
	}

	dialector, err := openDialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(logger, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  parseLogLevel(cfg.LogLevel),
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Driver, err)
	}

	logger.WithFields(logrus.Fields{
		"driver": cfg.Driver,
		"name":   cfg.Name,
	}).Info("Connected to database")

	return &Database{db: db, logger: logger}, nil
}

// NewFromGorm wraps an already opened handle.
func NewFromGorm(db *gorm.DB, logger *logrus.Logger) *Database {
	if logger == nil {
		logger = logrus.New()
	}
	return &Database{db: db, logger: logger}
}

func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	d.logger.Info("Closing database connection pool")
	return sqlDB.Close()
}

func (d *Database) GetDB() *gorm.DB {
	return d.db
}

func openDialector(cfg config.Database) (gorm.Dialector, error) {
	switch strings.ToLower(cfg.Driver) {
	case "sqlite", "sqlite3":
		return sqlite.Open(sqliteDSN(cfg.Path)), nil
	case "postgres", "postgresql":
		dsn := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(cfg.User, cfg.Password),
			Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Path:     cfg.Name,
			RawQuery: url.Values{"sslmode": []string{cfg.SSLMode}}.Encode(),
		}
		return postgres.Open(dsn.String()), nil
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			cfg.User, cfg.Password, net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)), cfg.Name)
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}

// sqliteDSN enables foreign keys, keeping any query options already in path.
func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=on"
	}
	return path + "?_foreign_keys=on"
}

func parseLogLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

func limitOrDefault(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
