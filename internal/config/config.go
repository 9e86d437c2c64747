package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Record store
	StoreDriver string `mapstructure:"STORE_DRIVER"` // file | sqlite | redis
	DataDir     string `mapstructure:"DATA_DIR"`
	SQLitePath  string `mapstructure:"SQLITE_PATH"`
	RedisURL    string `mapstructure:"REDIS_URL"`

	// Auth
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`

	// Insight narrator (Gemini)
	GeminiAPIKey  string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel   string `mapstructure:"GEMINI_MODEL"`
	GeminiBaseURL string `mapstructure:"GEMINI_BASE_URL"`

	// Daily checklist pre-materialization
	DailyCronSpec string `mapstructure:"DAILY_CRON_SPEC"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("STORE_DRIVER", "file")
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("SQLITE_PATH", "./data/cantina.db")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("JWT_SECRET", "cantina-dev-secret")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 12)
	viper.SetDefault("GEMINI_MODEL", "gemini-3-flash-preview")
	viper.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("DAILY_CRON_SPEC", "5 0 * * *") // 00:05 local, every day

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
