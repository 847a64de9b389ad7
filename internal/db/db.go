package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/court-scheduler/internal/config"
	"github.com/BruksfildServices01/court-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Court{},
		&models.OperatingHour{},
		&models.SpecialDate{},
		&models.BlockedSlot{},
		&models.Booking{},
		&models.BookingLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Índice parcial: no máximo uma linha ativa por slot. É o banco quem
	// decide quando duas transações inserem no mesmo slot ao mesmo tempo.
	if err := db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_active_slot
		 ON bookings (court_id, date, start_time)
		 WHERE booking_status IN ('reserved', 'confirmed')`,
	).Error; err != nil {
		log.Fatalf("failed to create active slot index: %v", err)
	}

	return db
}
