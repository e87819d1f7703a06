package services

import (
	"testing"

	"github.com/dungeon-tracker/backend/internal/models"
)

func item(name, rarity, source string, price, weight float64) models.InventoryItem {
	return models.InventoryItem{
		Name:         name,
		Rarity:       rarity,
		Source:       source,
		CurrentPrice: price,
		Weight:       weight,
		Quantity:     1,
	}
}

func TestBuildRecommendationsSellAndHold(t *testing.T) {
	items := []models.InventoryItem{
		item("Gem", "blue", "dungeon", 30, 1),   // eff 30 vs peer avg 11.5 -> SELL
		item("Plate", "blue", "dungeon", 18, 1), // eff 18 vs peer avg 17.5, inside band
		item("Scrap", "blue", "dungeon", 5, 1),  // eff 5 vs peer avg 24 -> HOLD
	}

	recs := BuildRecommendations(items)
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %+v", recs)
	}

	var gem, scrap *Recommendation
	for i := range recs {
		switch recs[i].ItemName {
		case "Gem":
			gem = &recs[i]
		case "Scrap":
			scrap = &recs[i]
		}
	}

	if gem == nil || gem.Action != "SELL" {
		t.Fatalf("expected SELL for Gem, got %+v", recs)
	}
	if gem.Reason != "Overvalued vs similar blue dungeon items" {
		t.Errorf("unexpected reason: %s", gem.Reason)
	}
	if scrap == nil || scrap.Action != "HOLD" {
		t.Fatalf("expected HOLD for Scrap, got %+v", recs)
	}
}

func TestBuildRecommendationsSkipsZeroWeight(t *testing.T) {
	items := []models.InventoryItem{
		item("Ghost", "gold", "quest", 1000, 0),
		item("Coin", "gold", "quest", 10, 1),
	}

	recs := BuildRecommendations(items)
	for _, r := range recs {
		if r.ItemName == "Ghost" {
			t.Fatal("zero-weight items must be skipped")
		}
	}
}

func TestBuildRecommendationsLoneItemGetsNoCall(t *testing.T) {
	// No peers: average falls back to own efficiency, inside both bands
	items := []models.InventoryItem{
		item("Solo", "purple", "dungeon", 500, 2),
	}

	if recs := BuildRecommendations(items); len(recs) != 0 {
		t.Fatalf("expected no recommendations for a lone item, got %+v", recs)
	}
}

func TestBuildRecommendationsComparesWithinRarityAndSource(t *testing.T) {
	// Cross-group items must not influence each other
	items := []models.InventoryItem{
		item("QuestThing", "green", "quest", 100, 1),
		item("DungeonThing", "green", "dungeon", 1, 1),
	}

	if recs := BuildRecommendations(items); len(recs) != 0 {
		t.Fatalf("items in different groups must not be compared, got %+v", recs)
	}
}

func TestBuildRecommendationsCapsAtFive(t *testing.T) {
	items := []models.InventoryItem{
		item("Anchor", "grey", "quest", 10, 1),
	}
	// Seven wildly undervalued peers, all eligible for HOLD
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		items = append(items, item(name, "grey", "quest", 0.1, 1))
	}

	recs := BuildRecommendations(items)
	if len(recs) > maxRecommendations {
		t.Fatalf("expected at most %d recommendations, got %d", maxRecommendations, len(recs))
	}
}

func TestGoldTrend(t *testing.T) {
	cases := []struct {
		name     string
		current  float64
		dayOld   float64
		want     string
		wantZero bool
	}{
		{"up", 0.12, 0.10, TrendUp, false},
		{"down", 0.08, 0.10, TrendDown, false},
		{"flat", 0.10, 0.10, TrendStable, true},
		{"no history", 0.10, 0, TrendStable, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			trend, change := GoldTrend(tc.current, tc.dayOld)
			if trend != tc.want {
				t.Errorf("expected %s, got %s (change %f)", tc.want, trend, change)
			}
			if tc.wantZero && change != 0 {
				t.Errorf("expected zero change without history, got %f", change)
			}
		})
	}
}
