/**
 * @description
 * Configuration loader for the Dungeon Tracker backend.
 * Reads environment variables, applies defaults, and validates the few
 * settings the service cannot run without.
 *
 * @dependencies
 * - github.com/joho/godotenv: For loading .env files
 * - standard "os": For reading env vars
 *
 * @notes
 * - A missing BIRDEYE_API_KEY or game bearer token is NOT a startup error:
 *   pricing degrades to cached/historical/default values and the proxy falls
 *   back to client-supplied headers. Only DATABASE_URL is hard-required.
 */

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Redis     RedisConfig
	Birdeye   BirdeyeConfig
	MagicEden MagicEdenConfig
	Nightvale NightvaleConfig
	ROI       ROIConfig
	Fetcher   FetcherConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port          string
	Env           string // "development" or "production"
	AllowedOrigin string // frontend origin allowed by CORS
	DataDir       string // directory snapshot JSON files are written to / served from
}

// DBConfig holds PostgreSQL settings
type DBConfig struct {
	URL string
}

// RedisConfig holds Redis settings
type RedisConfig struct {
	URL string
}

// BirdeyeConfig holds the Birdeye price API settings.
// GoldMint and SolMint are the on-chain token addresses whose USD prices we track.
type BirdeyeConfig struct {
	BaseURL  string
	APIKey   string
	GoldMint string
	SolMint  string
}

// MagicEdenConfig holds the Magic Eden collection stats API settings
type MagicEdenConfig struct {
	BaseURL    string
	Collection string
}

// NightvaleConfig holds the game production API settings.
// BearerToken and WalletAddress are the server-side credentials used by the
// snapshot fetcher and as the proxy fallback.
type NightvaleConfig struct {
	BaseURL       string
	BearerToken   string
	WalletAddress string
}

// ROIConfig holds the ROI estimation settings
type ROIConfig struct {
	TotalInvestment float64
	Strategy        string // "lifetime-average" or "trailing-window"
}

// FetcherConfig holds the snapshot fetcher settings
type FetcherConfig struct {
	Interval time.Duration
}

// Load reads .env file and populates the Config struct
func Load() (*Config, error) {
	// Attempt to load .env, but don't crash if it fails (prod might inject env vars directly)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:          getEnv("PORT", "5000"),
			Env:           getEnv("GO_ENV", "development"),
			AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
			DataDir:       getEnv("DATA_DIR", "data"),
		},
		DB: DBConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Birdeye: BirdeyeConfig{
			BaseURL:  getEnv("BIRDEYE_BASE_URL", "https://public-api.birdeye.so"),
			APIKey:   sanitizeCredential(getEnv("BIRDEYE_API_KEY", "")),
			GoldMint: getEnv("GOLD_TOKEN_MINT", "GoLDDDNBPD72mSCYbC75GoFZ1e97Uczakp8yNi7JHrK4"),
			SolMint:  getEnv("SOL_TOKEN_MINT", "So11111111111111111111111111111111111111112"),
		},
		MagicEden: MagicEdenConfig{
			BaseURL:    getEnv("MAGICEDEN_BASE_URL", "https://api-mainnet.magiceden.dev"),
			Collection: getEnv("MAGICEDEN_COLLECTION", "defi_dungeons"),
		},
		Nightvale: NightvaleConfig{
			BaseURL:       getEnv("NIGHTVALE_BASE_URL", "https://api-production.defidungeons.gg"),
			BearerToken:   sanitizeCredential(getEnv("NIGHTVALE_BEARER_TOKEN", "")),
			WalletAddress: sanitizeCredential(getEnv("NIGHTVALE_WALLET_ADDRESS", "")),
		},
		ROI: ROIConfig{
			TotalInvestment: getEnvAsFloat("TOTAL_INVESTMENT", 475),
			Strategy:        getEnv("ROI_STRATEGY", "lifetime-average"),
		},
		Fetcher: FetcherConfig{
			Interval: getEnvAsDuration("FETCH_INTERVAL", time.Hour),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks for required variables
func validate(cfg *Config) error {
	if cfg.DB.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.Birdeye.APIKey == "" {
		// Pricing still works off cached/historical/default values
		fmt.Println("Warning: BIRDEYE_API_KEY is missing. Live token prices will be unavailable.")
	}
	return nil
}

// Helper to get env var with default
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func sanitizeCredential(value string) string {
	trimmed := strings.TrimSpace(value)
	return strings.Trim(trimmed, "\"")
}

// Helper to get env var as float64
func getEnvAsFloat(key string, fallback float64) float64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return fallback
}

// Helper to get env var as duration (e.g. "30m", "1h")
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := time.ParseDuration(valueStr); err == nil && value > 0 {
		return value
	}
	return fallback
}
