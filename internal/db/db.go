package db

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/f1rstwash/booking-api/internal/config"
	"github.com/f1rstwash/booking-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	if dir := filepath.Dir(cfg.DBPath); dir != "." && dir != "" && cfg.DBPath != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("failed to create data dir: %v", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		PrepareStmt: true,
		Logger:      gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	// SQLite allows a single writer; one connection serializes the
	// conflict-check-then-insert path without application-level locks.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	db.Exec(`PRAGMA journal_mode=WAL`)
	db.Exec(`PRAGMA foreign_keys=ON`)

	if err := db.AutoMigrate(
		&models.Service{},
		&models.Booking{},
		&models.Block{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedServices(db)

	return db
}

func seedServices(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Service{}).Count(&count).Error; err != nil {
		log.Fatalf("failed to count services: %v", err)
	}
	if count > 0 {
		return
	}

	defaults := []models.Service{
		{ID: "exterior", Name: "Exterior Wash", DurationMin: 30, Active: true},
		{ID: "interior", Name: "Interior Cleaning", DurationMin: 45, Active: true},
		{ID: "detailing", Name: "Premium Detailing", DurationMin: 90, Active: true},
		{ID: "valet", Name: "Mall Valet", DurationMin: 30, Active: true},
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&defaults).Error
	}); err != nil {
		log.Fatalf("failed to seed services: %v", err)
	}
}
