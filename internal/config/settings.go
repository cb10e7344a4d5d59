package config

import (
	"time"

	"github.com/spf13/viper"
)

// Settings are the process-level knobs, read from the environment (with an
// optional .env file) rather than the asset config.
type Settings struct {
	Port          string
	DBPath        string
	ConfigPath    string
	PriceBaseURL  string
	QuoteAsset    string
	CycleInterval time.Duration
	Cooldown      time.Duration
	PriceCacheTTL time.Duration
	LogLevel      string
	Env           string
}

// LoadSettings reads settings via viper with sensible defaults.
func LoadSettings() Settings {
	v := viper.New()
	v.SetConfigFile(".env")
	_ = v.ReadInConfig()
	v.AutomaticEnv()

	v.SetDefault("API_PORT", "8080")
	v.SetDefault("DB_PATH", "data/trades.db")
	v.SetDefault("CONFIG_PATH", "")
	v.SetDefault("PRICE_BASE_URL", "https://api.binance.com")
	v.SetDefault("QUOTE_ASSET", "USDT")
	v.SetDefault("CYCLE_INTERVAL", "60s")
	v.SetDefault("CYCLE_COOLDOWN", "5s")
	v.SetDefault("PRICE_CACHE_TTL", "30s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("API_ENV", "development")

	return Settings{
		Port:          v.GetString("API_PORT"),
		DBPath:        v.GetString("DB_PATH"),
		ConfigPath:    v.GetString("CONFIG_PATH"),
		PriceBaseURL:  v.GetString("PRICE_BASE_URL"),
		QuoteAsset:    v.GetString("QUOTE_ASSET"),
		CycleInterval: v.GetDuration("CYCLE_INTERVAL"),
		Cooldown:      v.GetDuration("CYCLE_COOLDOWN"),
		PriceCacheTTL: v.GetDuration("PRICE_CACHE_TTL"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		Env:           v.GetString("API_ENV"),
	}
}
