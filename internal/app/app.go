// Package app wires the application together.
// app.go is the composition root: it opens the store, builds the ledger
// registry, the AI collaborator and the Telegram bot, and the scheduler.
package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"github.com/skyuu2025-stack/xallet/internal/bot"
	"github.com/skyuu2025-stack/xallet/internal/config"
	"github.com/skyuu2025-stack/xallet/internal/db/memory"
	"github.com/skyuu2025-stack/xallet/internal/db/postgres"
	"github.com/skyuu2025-stack/xallet/internal/db/sqlite"
	"github.com/skyuu2025-stack/xallet/internal/features/assistant"
	"github.com/skyuu2025-stack/xallet/internal/features/ledger"
	"github.com/skyuu2025-stack/xallet/internal/features/wardrobe"
	"github.com/skyuu2025-stack/xallet/internal/jobs"
)

// App holds every long-lived component.
type App struct {
	Bot       *bot.Bot
	Scheduler *jobs.Scheduler
	Registry  *ledger.Registry

	closers []func()
}

// New builds the application. The order matters: later components depend
// on earlier ones.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{}

	// === 1. Catalog ===
	if err := wardrobe.Validate(wardrobe.Items); err != nil {
		return nil, fmt.Errorf("invalid wardrobe catalog: %w", err)
	}

	// === 2. Store ===
	store, err := a.openStore(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	// === 3. Ledger sessions ===
	a.Registry = ledger.NewRegistry(store,
		ledger.WithLocation(cfg.Location()),
		ledger.WithDefaults(ledger.Defaults{
			StartingTokens: cfg.LedgerStartingTokens,
			SeedRank:       cfg.LedgerSeedRank,
		}),
	)

	// === 4. AI collaborator ===
	ai, err := newCollaborator(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	// === 5. Telegram ===
	transport, err := bot.NewTelegram(ctx, cfg.TelegramBotToken, cfg.AppEnv == "development" && cfg.AppLogLevel == "trace")
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create Telegram transport: %w", err)
	}
	a.Bot = bot.New(transport, cfg, a.Registry, ai)
	a.closers = append(a.closers, a.Bot.Close)

	// === 6. Scheduler ===
	a.Scheduler = jobs.NewScheduler(a.Registry, cfg.LedgerSessionTTL, cfg.Location())

	return a, nil
}

// Close releases the store and the bot's background resources.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *App) openStore(ctx context.Context, cfg *config.Config) (ledger.Store, error) {
	switch cfg.StoreBackend {
	case config.StoreMemory:
		log.Warn("Using in-memory store, stats are lost on restart")
		return memory.NewKVStore(), nil

	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		if err := runMigrations(ctx, pool); err != nil {
			return nil, fmt.Errorf("migrations failed: %w", err)
		}
		return postgres.NewKVStore(pool), nil

	case config.StoreSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		a.closers = append(a.closers, closeDB(db))
		return sqlite.NewKVStore(db), nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}

func runMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	return postgres.RunMigrations(ctx, pool)
}

func newCollaborator(ctx context.Context, cfg *config.Config) (assistant.Collaborator, error) {
	if !cfg.AssistantAvailable() {
		log.Warn("Assistant disabled: no GEMINI_API_KEY or FEATURE_ASSISTANT_ENABLED=false")
		return assistant.Disabled{}, nil
	}
	g, err := assistant.NewGemini(ctx, assistant.GeminiConfig{
		APIKey:     cfg.GeminiAPIKey,
		ChatModel:  cfg.GeminiChatModel,
		ScanModel:  cfg.GeminiScanModel,
		ImageModel: cfg.GeminiImageModel,
		Timeout:    cfg.GeminiTimeout,
	})
	if err != nil {
		return nil, err
	}
	log.WithField("chat_model", cfg.GeminiChatModel).Info("Assistant ready")
	return g, nil
}

func closeDB(db *sql.DB) func() {
	return func() {
		if err := db.Close(); err != nil {
			log.WithError(err).Warn("Failed to close sqlite store")
		}
	}
}
