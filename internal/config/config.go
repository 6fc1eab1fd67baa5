// Package config loads the companion's configuration from environment variables.
// envconfig maps the variables onto the Config struct fields.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Store backends accepted by STORE_BACKEND.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

// Config holds ALL application settings.
type Config struct {
	// --- Telegram ---
	TelegramBotToken string `envconfig:"TELEGRAM_BOT_TOKEN" required:"true"`

	// --- Storage ---
	// memory is only useful for local runs: every restart wipes all stats.
	StoreBackend string `envconfig:"STORE_BACKEND" default:"sqlite"`
	SQLitePath   string `envconfig:"SQLITE_PATH" default:"xallet.db"`

	// --- Database (STORE_BACKEND=postgres) ---
	DBHost     string `envconfig:"DB_HOST" default:"postgres"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"xallet"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"xallet"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	DBMaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
	DBMinConns int32  `envconfig:"DB_MIN_CONNS" default:"1"`

	// --- Application ---
	AppEnv      string `envconfig:"APP_ENV" default:"development"`
	AppLogLevel string `envconfig:"APP_LOG_LEVEL" default:"debug"`
	// Timezone used to decide what "today" is for the daily rollover.
	AppTimezone string `envconfig:"APP_TIMEZONE" default:"Asia/Shanghai"`

	// --- Bot runtime ---
	BotMaxInflight          int `envconfig:"BOT_MAX_INFLIGHT" default:"64"`
	BotUpdateTimeoutSeconds int `envconfig:"BOT_UPDATE_TIMEOUT_SECONDS" default:"60"`

	// --- Gemini ---
	GeminiAPIKey     string        `envconfig:"GEMINI_API_KEY"`
	GeminiChatModel  string        `envconfig:"GEMINI_CHAT_MODEL" default:"gemini-3-pro-preview"`
	GeminiScanModel  string        `envconfig:"GEMINI_SCAN_MODEL" default:"gemini-3-flash-preview"`
	GeminiImageModel string        `envconfig:"GEMINI_IMAGE_MODEL" default:"gemini-3-pro-image-preview"`
	GeminiTimeout    time.Duration `envconfig:"GEMINI_TIMEOUT" default:"60s"`

	// --- Ledger ---
	LedgerStartingTokens int64 `envconfig:"LEDGER_STARTING_TOKENS" default:"0"`
	LedgerSeedRank       int   `envconfig:"LEDGER_SEED_RANK" default:"582"`
	// Sessions idle longer than this are closed; the next message reloads them.
	LedgerSessionTTL time.Duration `envconfig:"LEDGER_SESSION_TTL" default:"6h"`

	// --- Rate Limiting ---
	RateLimitRequests int           `envconfig:"RATE_LIMIT_REQUESTS" default:"10"`
	RateLimitWindow   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`

	// --- Feature Flags ---
	FeatureAssistantEnabled bool `envconfig:"FEATURE_ASSISTANT_ENABLED" default:"true"`
	FeatureStudioEnabled    bool `envconfig:"FEATURE_STUDIO_ENABLED" default:"true"`
}

// DatabaseDSN returns the PostgreSQL connection string.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

// Location resolves AppTimezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.AppTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// AssistantAvailable reports whether the Gemini collaborator can be built.
func (c *Config) AssistantAvailable() bool {
	return c.FeatureAssistantEnabled && c.GeminiAPIKey != ""
}

func (c *Config) Validate() error {
	switch c.StoreBackend {
	case StoreMemory, StoreSQLite:
	case StorePostgres:
		if c.DBPassword == "" {
			return fmt.Errorf("DB_PASSWORD is required for STORE_BACKEND=postgres")
		}
		if c.DBMaxConns <= 0 || c.DBMinConns < 0 || c.DBMinConns > c.DBMaxConns {
			return fmt.Errorf("invalid DB_MIN_CONNS/DB_MAX_CONNS")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}
	if c.StoreBackend == StoreSQLite && strings.TrimSpace(c.SQLitePath) == "" {
		return fmt.Errorf("SQLITE_PATH must not be empty")
	}
	if c.BotMaxInflight <= 0 {
		return fmt.Errorf("BOT_MAX_INFLIGHT must be > 0")
	}
	if c.BotUpdateTimeoutSeconds <= 0 {
		return fmt.Errorf("BOT_UPDATE_TIMEOUT_SECONDS must be > 0")
	}
	if c.LedgerStartingTokens < 0 {
		return fmt.Errorf("LEDGER_STARTING_TOKENS must be >= 0")
	}
	if c.LedgerSeedRank < 0 {
		return fmt.Errorf("LEDGER_SEED_RANK must be >= 0")
	}
	if c.LedgerSessionTTL <= 0 {
		return fmt.Errorf("LEDGER_SESSION_TTL must be > 0")
	}
	if c.RateLimitRequests <= 0 || c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS and RATE_LIMIT_WINDOW must be > 0")
	}
	return nil
}

// Load reads environment variables into Config.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg.StoreBackend = strings.ToLower(strings.TrimSpace(cfg.StoreBackend))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
