/**
 * @description
 * ROI estimation over recorded gold earnings.
 * Two interchangeable strategies derive a daily earning rate and a
 * confidence label from the same records:
 * - lifetime-average: total earnings over the span of distinct earning
 *   days; confidence grows with history length.
 * - trailing-window: mean of the most recent seven records; confidence
 *   from the coefficient of variation inside the window.
 * Everything downstream of the daily rate (payback horizon, APY) is
 * shared between strategies.
 *
 * The report is pure arithmetic over already-loaded records so the math
 * is testable without a database.
 *
 * @dependencies
 * - gorm.io/gorm
 * - backend/internal/models
 */

package services

import (
	"context"
	"encoding/json"
	"math"

	"github.com/dungeon-tracker/backend/internal/logger"
	"github.com/dungeon-tracker/backend/internal/models"
	"gorm.io/gorm"
)

// Strategy selects how the daily earning rate is estimated
type Strategy string

const (
	StrategyLifetimeAverage Strategy = "lifetime-average"
	StrategyTrailingWindow  Strategy = "trailing-window"

	// trailingWindowSize is the number of most recent records the
	// trailing-window strategy averages over
	trailingWindowSize = 7
)

// Confidence labels for the daily-rate estimate
const (
	ConfidenceHigh   = "HIGH"
	ConfidenceMedium = "MEDIUM"
	ConfidenceLow    = "LOW"
)

// ParseStrategy maps a config value to a strategy, defaulting to
// lifetime-average for anything unrecognized.
func ParseStrategy(s string) Strategy {
	switch Strategy(s) {
	case StrategyLifetimeAverage, StrategyTrailingWindow:
		return Strategy(s)
	default:
		if s != "" {
			logger.Error("Unknown ROI strategy %q, falling back to %s", s, StrategyLifetimeAverage)
		}
		return StrategyLifetimeAverage
	}
}

// JSONFloat is a float64 that survives JSON encoding when non-finite.
// encoding/json rejects Inf and NaN outright; the payback horizon is
// legitimately infinite when nothing is being earned, so those values
// are encoded as strings.
type JSONFloat float64

func (f JSONFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsInf(v, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Infinity"`), nil
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	}
	return json.Marshal(v)
}

// ROIReport is the full estimator output served by the API.
// The payback horizon and the compounded APY are JSONFloat: the horizon
// is legitimately infinite with no earnings, and the 365-day compounding
// overflows float64 for large daily rates.
type ROIReport struct {
	Strategy             Strategy  `json:"strategy"`
	TotalInvestment      float64   `json:"total_investment"`
	TotalEarnings        float64   `json:"total_earnings"`
	DailyAverage         float64   `json:"daily_average"`
	ProjectedMonthly     float64   `json:"projected_monthly"`
	DaysToROI            JSONFloat `json:"days_to_roi"`
	ROIPercentage        float64   `json:"roi_percentage"`
	CurrentValueUSD      float64   `json:"current_value_usd"`
	PredictionConfidence string    `json:"prediction_confidence"`
	DailyAPY             JSONFloat `json:"daily_apy"`
	APY                  JSONFloat `json:"apy"`
}

// ComputeROIReport derives the full report from earning records (newest
// first), the current gold price in USD, and the initial investment.
func ComputeROIReport(records []models.GoldEarning, goldPrice, investment float64, strategy Strategy) ROIReport {
	var total float64
	for _, r := range records {
		total += r.Amount
	}

	dailyAverage, confidence := estimateDailyRate(records, strategy)

	currentValueUSD := total * goldPrice
	dailyAverageUSD := dailyAverage * goldPrice

	var roiPercentage float64
	if investment > 0 {
		roiPercentage = ((currentValueUSD - investment) / investment) * 100
	}

	daysToROI := math.Inf(1)
	if dailyAverageUSD > 0 {
		daysToROI = math.Max(0, investment-currentValueUSD) / dailyAverageUSD
	}

	var dailyAPY float64
	if investment > 0 {
		dailyAPY = (dailyAverageUSD / investment) * 100
	}
	apy := (math.Pow(1+dailyAPY/100, 365) - 1) * 100

	return ROIReport{
		Strategy:             strategy,
		TotalInvestment:      investment,
		TotalEarnings:        total,
		DailyAverage:         dailyAverage,
		ProjectedMonthly:     dailyAverage * 30,
		DaysToROI:            JSONFloat(daysToROI),
		ROIPercentage:        roiPercentage,
		CurrentValueUSD:      currentValueUSD,
		PredictionConfidence: confidence,
		DailyAPY:             JSONFloat(dailyAPY),
		APY:                  JSONFloat(apy),
	}
}

// estimateDailyRate returns the strategy's daily gold rate and confidence
func estimateDailyRate(records []models.GoldEarning, strategy Strategy) (float64, string) {
	if len(records) == 0 {
		return 0, ConfidenceLow
	}

	if strategy == StrategyTrailingWindow {
		window := records
		if len(window) > trailingWindowSize {
			window = window[:trailingWindowSize]
		}

		var sum float64
		for _, r := range window {
			sum += r.Amount
		}
		mean := sum / float64(len(window))

		var variance float64
		for _, r := range window {
			d := r.Amount - mean
			variance += d * d
		}
		stddev := math.Sqrt(variance / float64(len(window)))

		confidence := ConfidenceLow
		if mean > 0 {
			switch {
			case stddev < 0.2*mean:
				confidence = ConfidenceHigh
			case stddev < 0.5*mean:
				confidence = ConfidenceMedium
			}
		}
		return mean, confidence
	}

	// lifetime-average: earnings spread over distinct earning days
	days := map[string]struct{}{}
	var total float64
	for _, r := range records {
		days[r.Date] = struct{}{}
		total += r.Amount
	}
	span := len(days)
	if span < 1 {
		span = 1
	}

	confidence := ConfidenceLow
	switch {
	case span >= 30:
		confidence = ConfidenceHigh
	case span >= 14:
		confidence = ConfidenceMedium
	}
	return total / float64(span), confidence
}

// ROIService loads earnings and prices the report
type ROIService struct {
	DB         *gorm.DB
	Prices     *PriceService
	Investment float64
	Strategy   Strategy
}

// NewROIService creates the ROI service with its configured defaults
func NewROIService(db *gorm.DB, prices *PriceService, investment float64, strategy Strategy) *ROIService {
	return &ROIService{
		DB:         db,
		Prices:     prices,
		Investment: investment,
		Strategy:   strategy,
	}
}

// GetReport computes the ROI report for the current gold price.
// An optional strategy override replaces the configured default.
func (s *ROIService) GetReport(ctx context.Context, override string) ROIReport {
	strategy := s.Strategy
	if override != "" {
		strategy = ParseStrategy(override)
	}

	var records []models.GoldEarning
	if err := s.DB.WithContext(ctx).Order("date DESC, id DESC").Find(&records).Error; err != nil {
		// Storage failure degrades to an empty history, not an error page
		logger.Error("Failed to load gold earnings for ROI report: %v", err)
		records = nil
	}

	goldPrice := s.Prices.GetGoldPrice(ctx, false)
	return ComputeROIReport(records, goldPrice, s.Investment, strategy)
}
