package database

import (
	"fmt"
	"os"
	"time"

	"github.com/go-kit/log/level"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"gradebook_backend/internals/configs"
)

var DB *gorm.DB

func ConnectDB(cfg configs.AppConfig) {
	logger := configs.Component("database")
	level.Info(logger).Log("msg", "connecting to PostgreSQL", "host", cfg.DBHost, "db", cfg.DBName)

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s application_name=sgm options='-c statement_timeout=3000'",
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBSSLMode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(configs.Logger, gormLogger.Warn),
	})
	if err != nil {
		level.Error(logger).Log("msg", "database connection failed", "err", err)
		os.Exit(1)
	}
	DB = db
	level.Info(logger).Log("msg", "DB connected")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		level.Warn(configs.Component("database")).Log("msg", "pool tune failed", "err", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond) // beri waktu server naik
		if err := Ping(DB); err != nil {
			level.Warn(configs.Component("database")).Log("msg", "warm-up ping failed", "err", err)
		}
	}()
}

func Ping(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database not initialised")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func Close(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
