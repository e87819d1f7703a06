package services

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/dungeon-tracker/backend/internal/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeROIReportLifetimeAverage(t *testing.T) {
	records := []models.GoldEarning{
		{Date: "2024-01-02", Amount: 150},
		{Date: "2024-01-01", Amount: 100},
	}

	report := ComputeROIReport(records, 0.1, 475, StrategyLifetimeAverage)

	if report.TotalEarnings != 250 {
		t.Errorf("expected total earnings 250, got %f", report.TotalEarnings)
	}
	if report.DailyAverage != 125 {
		t.Errorf("expected daily average 125 over 2 distinct days, got %f", report.DailyAverage)
	}
	if report.ProjectedMonthly != 3750 {
		t.Errorf("expected projected monthly 3750, got %f", report.ProjectedMonthly)
	}
	if !almostEqual(report.CurrentValueUSD, 25) {
		t.Errorf("expected current value 25 USD, got %f", report.CurrentValueUSD)
	}

	wantROI := ((25.0 - 475.0) / 475.0) * 100
	if !almostEqual(report.ROIPercentage, wantROI) {
		t.Errorf("expected roi %%%.4f, got %f", wantROI, report.ROIPercentage)
	}

	// daily USD rate is 12.5; 450 USD left to recover
	wantDays := 450.0 / 12.5
	if !almostEqual(float64(report.DaysToROI), wantDays) {
		t.Errorf("expected %f days to roi, got %f", wantDays, float64(report.DaysToROI))
	}

	if report.PredictionConfidence != ConfidenceLow {
		t.Errorf("2 days of history must be LOW confidence, got %s", report.PredictionConfidence)
	}
}

func TestComputeROIReportMultipleEarningsSameDay(t *testing.T) {
	records := []models.GoldEarning{
		{Date: "2024-01-01", Amount: 100},
		{Date: "2024-01-01", Amount: 50},
	}

	report := ComputeROIReport(records, 0.1, 475, StrategyLifetimeAverage)

	// One distinct day: the whole sum is the daily rate
	if report.DailyAverage != 150 {
		t.Errorf("expected daily average 150, got %f", report.DailyAverage)
	}
}

func TestComputeROIReportNoRecords(t *testing.T) {
	report := ComputeROIReport(nil, 0.1, 475, StrategyLifetimeAverage)

	if report.TotalEarnings != 0 || report.DailyAverage != 0 || report.CurrentValueUSD != 0 {
		t.Errorf("empty history must produce zero totals: %+v", report)
	}
	if !math.IsInf(float64(report.DaysToROI), 1) {
		t.Errorf("expected infinite payback horizon, got %f", float64(report.DaysToROI))
	}
	if report.PredictionConfidence != ConfidenceLow {
		t.Errorf("expected LOW confidence, got %s", report.PredictionConfidence)
	}
	if report.APY != 0 || report.DailyAPY != 0 {
		t.Errorf("expected zero APY without earnings, got %f / %f", report.DailyAPY, report.APY)
	}
}

func TestComputeROIReportZeroInvestment(t *testing.T) {
	records := []models.GoldEarning{{Date: "2024-01-01", Amount: 100}}

	report := ComputeROIReport(records, 0.1, 0, StrategyLifetimeAverage)

	if report.ROIPercentage != 0 {
		t.Errorf("roi percentage must be 0 with no investment, got %f", report.ROIPercentage)
	}
	if report.DailyAPY != 0 || report.APY != 0 {
		t.Errorf("apy must be 0 with no investment, got %f / %f", report.DailyAPY, report.APY)
	}
	// Nothing left to recover
	if float64(report.DaysToROI) != 0 {
		t.Errorf("expected 0 days to roi, got %f", float64(report.DaysToROI))
	}
}

func TestComputeROIReportConfidenceThresholds(t *testing.T) {
	makeDays := func(n int) []models.GoldEarning {
		records := make([]models.GoldEarning, n)
		for i := range records {
			records[i] = models.GoldEarning{Date: dayString(i), Amount: 10}
		}
		return records
	}

	cases := []struct {
		days int
		want string
	}{
		{13, ConfidenceLow},
		{14, ConfidenceMedium},
		{29, ConfidenceMedium},
		{30, ConfidenceHigh},
	}
	for _, tc := range cases {
		report := ComputeROIReport(makeDays(tc.days), 0.1, 475, StrategyLifetimeAverage)
		if report.PredictionConfidence != tc.want {
			t.Errorf("%d days: expected %s, got %s", tc.days, tc.want, report.PredictionConfidence)
		}
	}
}

func TestComputeROIReportTrailingWindow(t *testing.T) {
	// Ten records newest first; the window must only see the first seven
	records := []models.GoldEarning{
		{Date: "2024-01-10", Amount: 70},
		{Date: "2024-01-09", Amount: 70},
		{Date: "2024-01-08", Amount: 70},
		{Date: "2024-01-07", Amount: 70},
		{Date: "2024-01-06", Amount: 70},
		{Date: "2024-01-05", Amount: 70},
		{Date: "2024-01-04", Amount: 70},
		{Date: "2024-01-03", Amount: 1000},
		{Date: "2024-01-02", Amount: 1000},
		{Date: "2024-01-01", Amount: 1000},
	}

	report := ComputeROIReport(records, 0.1, 475, StrategyTrailingWindow)

	if report.DailyAverage != 70 {
		t.Errorf("expected window mean 70, got %f", report.DailyAverage)
	}
	// Identical window values: zero deviation, maximal confidence
	if report.PredictionConfidence != ConfidenceHigh {
		t.Errorf("expected HIGH confidence, got %s", report.PredictionConfidence)
	}
	// Totals still cover the whole history
	if report.TotalEarnings != 70*7+3000 {
		t.Errorf("expected total %f, got %f", float64(70*7+3000), report.TotalEarnings)
	}
}

func TestComputeROIReportTrailingWindowVolatility(t *testing.T) {
	records := []models.GoldEarning{
		{Date: "2024-01-04", Amount: 10},
		{Date: "2024-01-03", Amount: 200},
		{Date: "2024-01-02", Amount: 5},
		{Date: "2024-01-01", Amount: 300},
	}

	report := ComputeROIReport(records, 0.1, 475, StrategyTrailingWindow)

	if report.PredictionConfidence != ConfidenceLow {
		t.Errorf("volatile window must be LOW confidence, got %s", report.PredictionConfidence)
	}
}

func TestParseStrategyDefaults(t *testing.T) {
	if got := ParseStrategy("trailing-window"); got != StrategyTrailingWindow {
		t.Errorf("expected trailing-window, got %s", got)
	}
	if got := ParseStrategy("bogus"); got != StrategyLifetimeAverage {
		t.Errorf("unknown strategy must default to lifetime-average, got %s", got)
	}
	if got := ParseStrategy(""); got != StrategyLifetimeAverage {
		t.Errorf("empty strategy must default to lifetime-average, got %s", got)
	}
}

func TestROIReportEncodesOverflowingAPY(t *testing.T) {
	// A huge daily rate against a tiny investment: the 365-day
	// compounding overflows float64, and the report must still marshal.
	records := []models.GoldEarning{{Date: "2024-01-01", Amount: 1e6}}

	report := ComputeROIReport(records, 1.0, 10, StrategyLifetimeAverage)

	if !math.IsInf(float64(report.APY), 1) {
		t.Fatalf("expected overflowed APY, got %f", float64(report.APY))
	}

	payload, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("report with infinite APY must marshal: %v", err)
	}
	if !strings.Contains(string(payload), `"apy":"Infinity"`) {
		t.Errorf("expected Infinity string encoding for apy, got %s", payload)
	}
	if !strings.Contains(string(payload), `"daily_apy":10000000`) {
		t.Errorf("finite daily_apy must stay numeric, got %s", payload)
	}
}

func TestROIReportEncodesInfinityAsString(t *testing.T) {
	report := ComputeROIReport(nil, 0.1, 475, StrategyLifetimeAverage)

	payload, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("report with infinite horizon must marshal: %v", err)
	}
	if !strings.Contains(string(payload), `"days_to_roi":"Infinity"`) {
		t.Errorf("expected Infinity string encoding, got %s", payload)
	}
}

// dayString produces sequential dates starting 2024-01-01
func dayString(i int) string {
	return time.Date(2024, 1, 1+i, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}
