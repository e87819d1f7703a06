/**
 * @description
 * Loot inventory database models.
 * Maps to the 'inventory', 'base_loot_prices' and 'base_price_history'
 * tables in PostgreSQL.
 *
 * base_loot_prices holds the reference price table for every known loot
 * item (seeded at first boot); inventory holds the items the player
 * actually owns.
 *
 * @dependencies
 * - gorm.io/gorm
 */

package models

import (
	"time"
)

// InventoryItem represents an owned loot item and its current market price
type InventoryItem struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"column:name;not null" json:"name"`
	Quantity     int       `gorm:"column:quantity;not null" json:"quantity"`
	Rarity       string    `gorm:"column:rarity;not null" json:"rarity"` // grey, green, blue, purple, gold
	Source       string    `gorm:"column:source;not null" json:"source"` // "quest" or "dungeon"
	CurrentPrice float64   `gorm:"column:current_price;not null" json:"current_price"`
	Weight       float64   `gorm:"column:weight;not null;default:1.0" json:"weight"`
	Tier         *int      `gorm:"column:tier" json:"tier"` // dungeon loot only
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
}

// TableName overrides the table name used by InventoryItem to `inventory`
func (InventoryItem) TableName() string {
	return "inventory"
}

// BaseLootPrice is the reference price for a loot item, unique per
// (name, source, rarity)
type BaseLootPrice struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;not null;uniqueIndex:idx_base_loot_identity" json:"name"`
	Source      string    `gorm:"column:source;not null;uniqueIndex:idx_base_loot_identity" json:"source"`
	Rarity      string    `gorm:"column:rarity;not null;uniqueIndex:idx_base_loot_identity" json:"rarity"`
	BasePrice   float64   `gorm:"column:base_price;not null" json:"base_price"`
	Weight      float64   `gorm:"column:weight;not null" json:"weight"`
	Tier        *int      `gorm:"column:tier" json:"tier"`
	LastUpdated time.Time `gorm:"column:last_updated;autoUpdateTime" json:"last_updated"`
}

// TableName overrides the table name used by BaseLootPrice to `base_loot_prices`
func (BaseLootPrice) TableName() string {
	return "base_loot_prices"
}

// BasePriceHistory tracks price changes of a base loot item over time
type BasePriceHistory struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	BaseLootID uint64    `gorm:"column:base_loot_id;index;not null" json:"base_loot_id"`
	Price      float64   `gorm:"column:price;not null" json:"price"`
	Timestamp  time.Time `gorm:"column:timestamp;autoCreateTime" json:"timestamp"`
}

// TableName overrides the table name used by BasePriceHistory to `base_price_history`
func (BasePriceHistory) TableName() string {
	return "base_price_history"
}
