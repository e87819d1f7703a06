/**
 * @description
 * Gold earnings database model.
 * Maps to the 'gold_earnings' table in PostgreSQL.
 *
 * Rows are append-only: multiple entries per calendar day are valid
 * (e.g. a quest claim and a dungeon run on the same date).
 *
 * @dependencies
 * - gorm.io/gorm
 */

package models

import (
	"time"
)

// GoldEarning represents gold earned on a calendar day from a single source
type GoldEarning struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Date      string    `gorm:"column:date;index;not null" json:"date"` // "2006-01-02"
	Amount    float64   `gorm:"column:amount;not null" json:"amount"`
	Source    string    `gorm:"column:source;default:Quest" json:"source"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
}

// TableName overrides the table name used by GoldEarning to `gold_earnings`
func (GoldEarning) TableName() string {
	return "gold_earnings"
}
