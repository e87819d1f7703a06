/**
 * @description
 * PostgreSQL connection manager using GORM.
 * Handles connection pooling, schema bootstrap, and seeding of the
 * predefined loot price table.
 *
 * @dependencies
 * - gorm.io/gorm: ORM library
 * - gorm.io/driver/postgres: Postgres driver
 * - github.com/jackc/pgconn: Postgres error inspection for seed retries
 */

package db

import (
	"errors"
	"math/rand"
	"time"

	"github.com/dungeon-tracker/backend/internal/config"
	"github.com/dungeon-tracker/backend/internal/logger"
	"github.com/dungeon-tracker/backend/internal/models"
	"github.com/jackc/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormLogger "gorm.io/gorm/logger"
)

// ConnectPostgres initializes the PostgreSQL connection
func ConnectPostgres(cfg *config.Config) (*gorm.DB, error) {
	// Configure GORM logger based on environment
	gormLogLevel := gormLogger.Error
	if cfg.Server.Env == "development" {
		gormLogLevel = gormLogger.Info
	} else if cfg.Server.Env == "staging" {
		gormLogLevel = gormLogger.Warn
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DB.URL,
		PreferSimpleProtocol: true, // disable prepared statements to avoid stmtcache collisions in serverless envs
	}), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		return nil, err
	}

	// Get generic database object to set connection pool params
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Conservative pool settings for managed Postgres
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	logger.Info("✅ Connected to PostgreSQL")
	return db, nil
}

// Migrate creates or updates all tracker tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.GoldEarning{},
		&models.GoldPriceHistory{},
		&models.InventoryItem{},
		&models.BaseLootPrice{},
		&models.BasePriceHistory{},
	)
}

// SeedBaseLoot populates base_loot_prices from the predefined loot table
// if it is empty, recording an initial base_price_history row per item.
func SeedBaseLoot(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.BaseLootPrice{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rows := make([]models.BaseLootPrice, 0, len(models.PredefinedLoot))
	for _, item := range models.PredefinedLoot {
		row := models.BaseLootPrice{
			Name:      item.Name,
			Source:    item.Source,
			Rarity:    item.Rarity,
			BasePrice: item.Price,
			Weight:    item.Weight,
		}
		if item.Tier > 0 {
			tier := item.Tier
			row.Tier = &tier
		}
		rows = append(rows, row)
	}

	// Concurrent api/fetcher boots can race on the empty table; retry on
	// deadlock/serialization failures and let the unique index dedupe.
	const maxRetries = 5
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}, {Name: "source"}, {Name: "rarity"}},
			DoNothing: true,
		}).CreateInBatches(rows, 100).Error
		if err == nil {
			break
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && (pgErr.Code == "40P01" || pgErr.Code == "40001") {
			backoff := time.Duration(attempt*100+rand.Intn(100)) * time.Millisecond
			time.Sleep(backoff)
			continue
		}
		break
	}
	if err != nil {
		return err
	}

	var seeded []models.BaseLootPrice
	if err := db.Find(&seeded).Error; err != nil {
		return err
	}
	history := make([]models.BasePriceHistory, 0, len(seeded))
	for _, row := range seeded {
		history = append(history, models.BasePriceHistory{
			BaseLootID: row.ID,
			Price:      row.BasePrice,
		})
	}
	if len(history) > 0 {
		if err := db.CreateInBatches(history, 100).Error; err != nil {
			return err
		}
	}

	logger.Info("Seeded %d base loot prices", len(seeded))
	return nil
}
