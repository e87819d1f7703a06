package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dungeon-tracker/backend/internal/config"
	"github.com/dungeon-tracker/backend/internal/nightvale"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Display credential status (without showing actual values)
	fmt.Println("=== Game API Credentials Check ===")
	fmt.Printf("API URL: %s\n", cfg.Nightvale.BaseURL)

	tokenSet := cfg.Nightvale.BearerToken != ""
	walletSet := cfg.Nightvale.WalletAddress != ""

	fmt.Printf("Bearer Token: %s\n", statusString(tokenSet))
	fmt.Printf("Wallet Address: %s\n", statusString(walletSet))
	fmt.Println()

	if !tokenSet || !walletSet {
		fmt.Println("❌ Missing required credentials. Please check your .env file for:")
		if !tokenSet {
			fmt.Println("  - NIGHTVALE_BEARER_TOKEN")
		}
		if !walletSet {
			fmt.Println("  - NIGHTVALE_WALLET_ADDRESS")
		}
		os.Exit(1)
	}

	// Test 1: Inspect the token expiry claim
	fmt.Println("Test 1: Checking token expiry...")
	exp, err := nightvale.TokenExpiresAt(cfg.Nightvale.BearerToken)
	switch {
	case err != nil:
		fmt.Printf("  Token is not a parsable JWT (%v); the API will judge it\n", err)
	case exp == nil:
		fmt.Println("  Token carries no expiry claim")
	case exp.Before(time.Now()):
		fmt.Printf("❌ Token expired at %s\n", exp.Format(time.RFC3339))
		os.Exit(1)
	default:
		fmt.Printf("✅ Token valid until %s\n", exp.Format(time.RFC3339))
	}
	fmt.Println()

	// Test 2: Authenticated GET against the account endpoint
	fmt.Println("Test 2: Testing authenticated GET (achievement stats)...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client := nightvale.NewClient(cfg)
	if _, err := client.Get(ctx, "/user/achievement-stat/me", nil); err != nil {
		fmt.Printf("❌ Authenticated request failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✅ Credentials accepted by the game API.")
}

func statusString(set bool) string {
	if set {
		return "✅ set"
	}
	return "❌ missing"
}
