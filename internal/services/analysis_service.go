/**
 * @description
 * Market analysis over the loot inventory.
 * Scores each item by price-per-weight efficiency against the average of
 * its peers (same rarity and source, other names) and emits SELL/HOLD
 * recommendations outside a 20% band, capped at five. A 24h gold price
 * trend from the durable history rounds out the report.
 *
 * Recommendation math is a pure function over loaded rows so it can be
 * tested without Postgres.
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

const (
	maxRecommendations = 5

	// Efficiency bands around the peer average
	sellBand = 1.2
	holdBand = 0.8
)

// Trend labels for the 24h gold price movement
const (
	TrendUp     = "UP"
	TrendDown   = "DOWN"
	TrendStable = "STABLE"
)

// Recommendation is a single SELL/HOLD call on an inventory item
type Recommendation struct {
	ItemName string `json:"item_name"`
	Action   string `json:"action"`
	Reason   string `json:"reason"`
}

// MarketAnalysis is the full analysis report
type MarketAnalysis struct {
	Recommendations []Recommendation `json:"recommendations"`
	Message         *string          `json:"message"`
	MarketTrend     string           `json:"market_trend"`
	MarketChange24h float64          `json:"market_change_24h"`
}

// AnalysisService builds market analysis from inventory and price history
type AnalysisService struct {
	DB     *gorm.DB
	Prices *PriceService
}

func NewAnalysisService(db *gorm.DB, prices *PriceService) *AnalysisService {
	return &AnalysisService{DB: db, Prices: prices}
}

// BuildRecommendations scores items by price-per-weight efficiency against
// the average of peers sharing rarity and source. Items must arrive in
// display order (current_price descending); at most five calls are made.
func BuildRecommendations(items []models.InventoryItem) []Recommendation {
	type peerKey struct {
		rarity string
		source string
		name   string
	}
	type groupKey struct {
		rarity string
		source string
	}

	// Peer averages exclude the item's own name, so pre-aggregate per
	// distinct name first.
	nameSum := map[peerKey]float64{}
	nameCount := map[peerKey]int{}
	groupNames := map[groupKey][]peerKey{}
	for _, item := range items {
		if item.Weight == 0 {
			continue
		}
		pk := peerKey{item.Rarity, item.Source, item.Name}
		if nameCount[pk] == 0 {
			gk := groupKey{item.Rarity, item.Source}
			groupNames[gk] = append(groupNames[gk], pk)
		}
		nameSum[pk] += item.CurrentPrice / item.Weight
		nameCount[pk]++
	}

	recommendations := []Recommendation{}
	for _, item := range items {
		if len(recommendations) >= maxRecommendations {
			break
		}
		if item.Weight == 0 {
			continue
		}
		efficiency := item.CurrentPrice / item.Weight

		gk := groupKey{item.Rarity, item.Source}
		var peerSum float64
		var peerCount int
		for _, pk := range groupNames[gk] {
			if pk.name == item.Name {
				continue
			}
			peerSum += nameSum[pk]
			peerCount += nameCount[pk]
		}

		avgEfficiency := efficiency
		if peerCount > 0 {
			avgEfficiency = peerSum / float64(peerCount)
		}

		switch {
		case efficiency > avgEfficiency*sellBand:
			recommendations = append(recommendations, Recommendation{
				ItemName: item.Name,
				Action:   "SELL",
				Reason:   fmt.Sprintf("Overvalued vs similar %s %s items", item.Rarity, item.Source),
			})
		case efficiency < avgEfficiency*holdBand:
			recommendations = append(recommendations, Recommendation{
				ItemName: item.Name,
				Action:   "HOLD",
				Reason:   fmt.Sprintf("Undervalued vs similar %s %s items", item.Rarity, item.Source),
			})
		}
	}
	return recommendations
}

// GoldTrend labels the price movement against a 24h-old reference price
func GoldTrend(current, dayOld float64) (string, float64) {
	if dayOld <= 0 {
		return TrendStable, 0
	}
	change := ((current - dayOld) / dayOld) * 100
	switch {
	case change > 0:
		return TrendUp, change
	case change < 0:
		return TrendDown, change
	default:
		return TrendStable, change
	}
}

// GetAnalysis assembles the full market analysis report
func (s *AnalysisService) GetAnalysis(ctx context.Context) MarketAnalysis {
	analysis := MarketAnalysis{
		Recommendations: []Recommendation{},
		MarketTrend:     TrendStable,
	}

	var items []models.InventoryItem
	if err := s.DB.WithContext(ctx).Order("current_price DESC").Find(&items).Error; err != nil {
		logger.Error("Failed to load inventory for market analysis: %v", err)
		msg := "Error fetching market analysis."
		analysis.Message = &msg
		return analysis
	}

	if len(items) == 0 {
		msg := "No items in inventory."
		analysis.Message = &msg
	} else {
		analysis.Recommendations = BuildRecommendations(items)
		if len(analysis.Recommendations) == 0 {
			msg := "No recommendations available."
			analysis.Message = &msg
		}
	}

	current := s.Prices.GetGoldPrice(ctx, false)
	analysis.MarketTrend, analysis.MarketChange24h = GoldTrend(current, s.goldPrice24hAgo(ctx))
	return analysis
}

// goldPrice24hAgo finds the newest history row older than 24 hours
func (s *AnalysisService) goldPrice24hAgo(ctx context.Context) float64 {
	var row models.GoldPriceHistory
	cutoff := time.Now().Add(-24 * time.Hour)
	err := s.DB.WithContext(ctx).
		Where("timestamp <= ?", cutoff).
		Order("timestamp DESC").
		First(&row).Error
	if err != nil {
		return 0
	}
	return row.Price
}
