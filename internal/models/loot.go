/**
 * @description
 * Predefined loot price table.
 * Seeded into 'base_loot_prices' (with an initial 'base_price_history' row
 * each) when the table is empty at boot.
 */

package models

// SeedLoot describes one predefined loot item
type SeedLoot struct {
	Name   string
	Source string // "quest" or "dungeon"
	Rarity string
	Price  float64
	Weight float64
	Tier   int // 0 means no tier (quest loot)
}

// PredefinedLoot is the full reference loot table for the game
var PredefinedLoot = []SeedLoot{
	// Quest loot
	{Name: "Wooden Torch", Source: "quest", Rarity: "grey", Price: 4.9, Weight: 1},
	{Name: "Broken Skull", Source: "quest", Rarity: "grey", Price: 9.7, Weight: 1},
	{Name: "Old World Map", Source: "quest", Rarity: "grey", Price: 16.2, Weight: 1},
	{Name: "Wooden Crate", Source: "quest", Rarity: "grey", Price: 81.0, Weight: 1},

	{Name: "Tome of Knowledge", Source: "quest", Rarity: "green", Price: 6.5, Weight: 2},
	{Name: "Giant Beetle Shell", Source: "quest", Rarity: "green", Price: 13.5, Weight: 2},
	{Name: "Travelers Satchel", Source: "quest", Rarity: "green", Price: 32.4, Weight: 2},
	{Name: "Elemental Stone", Source: "quest", Rarity: "green", Price: 129.6, Weight: 2},

	{Name: "Blood Elixir", Source: "quest", Rarity: "blue", Price: 9.7, Weight: 4},
	{Name: "Golden Chalice", Source: "quest", Rarity: "blue", Price: 19.4, Weight: 4},
	{Name: "Mirror of Memories", Source: "quest", Rarity: "blue", Price: 40.5, Weight: 4},
	{Name: "Crystal Ball", Source: "quest", Rarity: "blue", Price: 194.4, Weight: 4},

	{Name: "Shiny Band", Source: "quest", Rarity: "purple", Price: 13.0, Weight: 8},
	{Name: "Phoenix Feather", Source: "quest", Rarity: "purple", Price: 25.9, Weight: 8},
	{Name: "Dragon Scale", Source: "quest", Rarity: "purple", Price: 58.7, Weight: 8},
	{Name: "Giant Gold Coin Chest", Source: "quest", Rarity: "purple", Price: 283.5, Weight: 8},

	{Name: "Gem of the lost king", Source: "quest", Rarity: "gold", Price: 16.2, Weight: 16},
	{Name: "Crown Jewel", Source: "quest", Rarity: "gold", Price: 32.4, Weight: 16},
	{Name: "Kings Diamond", Source: "quest", Rarity: "gold", Price: 81.0, Weight: 16},
	{Name: "Ring of the True King", Source: "quest", Rarity: "gold", Price: 405.0, Weight: 16},

	// Dungeon loot
	{Name: "Wolfs Head", Source: "dungeon", Rarity: "grey", Price: 16.2, Weight: 1, Tier: 1},
	{Name: "Wraiths Soul", Source: "dungeon", Rarity: "grey", Price: 24.3, Weight: 1, Tier: 2},
	{Name: "Bandit Skull", Source: "dungeon", Rarity: "grey", Price: 32.4, Weight: 1, Tier: 3},
	{Name: "Frozen Heart", Source: "dungeon", Rarity: "grey", Price: 40.5, Weight: 1, Tier: 4},
	{Name: "Inquisters Trinket", Source: "dungeon", Rarity: "grey", Price: 64.5, Weight: 1, Tier: 5},

	{Name: "Wolfs Claw", Source: "dungeon", Rarity: "green", Price: 8.2, Weight: 2, Tier: 1},
	{Name: "Ancient Cloak", Source: "dungeon", Rarity: "green", Price: 13.0, Weight: 2, Tier: 2},
	{Name: "Bandit Mask", Source: "dungeon", Rarity: "green", Price: 16.2, Weight: 2, Tier: 3},
	{Name: "Frozen Tear", Source: "dungeon", Rarity: "green", Price: 19.4, Weight: 2, Tier: 4},
	{Name: "Inquisters Orb", Source: "dungeon", Rarity: "green", Price: 56.7, Weight: 2, Tier: 5},

	{Name: "Pristine Pelt", Source: "dungeon", Rarity: "blue", Price: 19.4, Weight: 4, Tier: 1},
	{Name: "Ancient Pendant", Source: "dungeon", Rarity: "blue", Price: 25.9, Weight: 4, Tier: 2},
	{Name: "Bandit Heart", Source: "dungeon", Rarity: "blue", Price: 40.5, Weight: 4, Tier: 3},
	{Name: "Ice Crown", Source: "dungeon", Rarity: "blue", Price: 48.6, Weight: 4, Tier: 4},
	{Name: "Inquistors Book", Source: "dungeon", Rarity: "blue", Price: 24.3, Weight: 4, Tier: 5},

	{Name: "Wooden Casket", Source: "dungeon", Rarity: "purple", Price: 32.4, Weight: 8, Tier: 1},
	{Name: "Enchanted Urn", Source: "dungeon", Rarity: "purple", Price: 58.7, Weight: 8, Tier: 2},
	{Name: "Bankers Briefcase", Source: "dungeon", Rarity: "purple", Price: 81.0, Weight: 8, Tier: 3},
	{Name: "Frozen Coffer", Source: "dungeon", Rarity: "purple", Price: 81.0, Weight: 8, Tier: 4},
	{Name: "Lost Runepouch", Source: "dungeon", Rarity: "purple", Price: 121.5, Weight: 8, Tier: 5},

	{Name: "Adventurers Pouch", Source: "dungeon", Rarity: "gold", Price: 121.5, Weight: 16, Tier: 1},
	{Name: "Ancient Relic", Source: "dungeon", Rarity: "gold", Price: 178.2, Weight: 16, Tier: 2},
	{Name: "Stolen Treasure", Source: "dungeon", Rarity: "gold", Price: 243.0, Weight: 16, Tier: 3},
	{Name: "Cursed Medallion", Source: "dungeon", Rarity: "gold", Price: 364.5, Weight: 16, Tier: 4},
	{Name: "Void Inscription", Source: "dungeon", Rarity: "gold", Price: 486.0, Weight: 16, Tier: 5},
}
