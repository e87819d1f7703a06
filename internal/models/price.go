/**
 * @description
 * Gold token price history database model.
 * Maps to the 'gold_price_history' table in PostgreSQL.
 *
 * Every successful live fetch of the gold token price appends a row here.
 * The most recent row doubles as the durable fallback when both the live
 * source and the in-process cache are unavailable.
 *
 * @dependencies
 * - gorm.io/gorm
 */

package models

import (
	"time"
)

// GoldPriceHistory represents a historical USD price point for the gold token
type GoldPriceHistory struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Timestamp time.Time `gorm:"column:timestamp;index" json:"timestamp"`
	Price     float64   `gorm:"column:price;not null" json:"price"`
}

// TableName overrides the table name used by GoldPriceHistory to `gold_price_history`
func (GoldPriceHistory) TableName() string {
	return "gold_price_history"
}
