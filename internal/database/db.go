package database

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bodega-pos/internal/models"
)

// Connect opens the MySQL connection and syncs the schema. The retry loop
// covers the window where the database container is still coming up.
func Connect(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DB_DSN is not configured")
	}

	var db *gorm.DB
	var err error
	for i := 0; i < 5; i++ {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Warn),
			TranslateError: true,
		})
		if err == nil {
			break
		}
		log.Warn().Err(err).Msgf("Failed to connect to database. Retrying in 2 seconds... (%d/5)", i+1)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connect after 5 attempts: %w", err)
	}

	log.Info().Msg("Connected to MySQL")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Info().Msg("Database schema synced")
	return db, nil
}

// Migrate syncs the schema. Shared with the test setup, which runs it
// against sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Product{},
		&models.Sale{},
		&models.SaleItem{},
		&models.LowStockAlert{},
		&models.AuditLog{},
		&models.SaleCounter{},
	)
}
