/**
 * @description
 * Gold earnings bookkeeping.
 * Earnings are append-only: multiple rows per date are legitimate (a day
 * can hold several quest payouts), so writes never upsert.
 *
 * @dependencies
 * - gorm.io/gorm
 * - backend/internal/models
 */

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dungeon-tracker/backend/internal/logger"
	"github.com/dungeon-tracker/backend/internal/models"
	"gorm.io/gorm"
)

const earningDateLayout = "2006-01-02"

// EarningsService persists and lists gold earning entries
type EarningsService struct {
	DB *gorm.DB
}

func NewEarningsService(db *gorm.DB) *EarningsService {
	return &EarningsService{DB: db}
}

// List returns all earnings, newest date first. A storage failure
// degrades to an empty list so the read endpoints stay total.
func (s *EarningsService) List(ctx context.Context) []models.GoldEarning {
	var records []models.GoldEarning
	if err := s.DB.WithContext(ctx).Order("date DESC, id DESC").Find(&records).Error; err != nil {
		logger.Error("Failed to load gold earnings: %v", err)
		return []models.GoldEarning{}
	}
	return records
}

// Add appends an earning row after validating the date format
func (s *EarningsService) Add(ctx context.Context, date string, amount float64, source string) (*models.GoldEarning, error) {
	if _, err := time.Parse(earningDateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", date)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	if source == "" {
		source = "Quest"
	}

	record := models.GoldEarning{
		Date:   date,
		Amount: amount,
		Source: source,
	}
	if err := s.DB.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to store gold earning: %w", err)
	}
	return &record, nil
}
