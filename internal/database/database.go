package database

import (
	"fmt"
	"time"

	"metro-homes/internal/config"
	"metro-homes/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB wraps the shared gorm connection. It is opened once in main and
// released on shutdown; handlers reach it through narrow per-entity
// interfaces.
type DB struct {
	db *gorm.DB
}

// New opens a connection for the configured driver and verifies it with
// a ping.
func New(cfg config.DatabaseConfig) (*DB, error) {
	gormCfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Type {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.MySQL.User, cfg.MySQL.Password, cfg.MySQL.Host, cfg.MySQL.Port, cfg.MySQL.Database)
		db, err = gorm.Open(mysql.Open(dsn), gormCfg)
	case "postgres", "":
		sslMode := cfg.Postgres.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password,
			cfg.Postgres.Database, sslMode)
		db, err = gorm.Open(postgres.Open(dsn), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.Type)
	}
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	return &DB{db: db}, nil
}

// NewFromGorm wraps an existing gorm connection. Used by tests.
func NewFromGorm(db *gorm.DB) *DB {
	return &DB{db: db}
}

// InitSchema creates tables and indexes with AutoMigrate. The composite
// unique indexes on wishlists and offers come from the model tags and
// are what actually enforces the one-per-user-per-property invariant.
func (d *DB) InitSchema() error {
	return d.db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.Review{},
		&models.Wishlist{},
		&models.Offer{},
		&models.Payment{},
	)
}

// Close releases the underlying connection pool.
func (d *DB) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
