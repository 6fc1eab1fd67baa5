// Package bot is the Telegram presentation layer: it receives updates,
// runs them through the middleware and routes commands to the handlers.
package bot

import (
	"context"
	"strings"
	"time"

	"github.com/mymmrac/telego"
	log "github.com/sirupsen/logrus"

	"github.com/skyuu2025-stack/xallet/internal/bot/filters"
	"github.com/skyuu2025-stack/xallet/internal/bot/middleware"
	"github.com/skyuu2025-stack/xallet/internal/common"
	"github.com/skyuu2025-stack/xallet/internal/config"
	"github.com/skyuu2025-stack/xallet/internal/features/assistant"
	"github.com/skyuu2025-stack/xallet/internal/features/ledger"
)

// Bot ties the transport to the ledger registry and the collaborator.
type Bot struct {
	transport Transport
	cfg       *config.Config

	registry *ledger.Registry
	ai       assistant.Collaborator
	prefs    *Preferences

	chatFilter  *filters.ChatFilter
	rateLimiter *middleware.RateLimiter
	parser      *CommandParser

	now func() time.Time
	loc *time.Location

	// bounds concurrent update handling
	inflight chan struct{}
}

// New creates the bot with all its dependencies.
func New(transport Transport, cfg *config.Config, registry *ledger.Registry, ai assistant.Collaborator) *Bot {
	maxInFlight := cfg.BotMaxInflight
	if maxInFlight <= 0 {
		maxInFlight = 64
	}

	return &Bot{
		transport:   transport,
		cfg:         cfg,
		registry:    registry,
		ai:          ai,
		prefs:       NewPreferences(),
		chatFilter:  filters.NewChatFilter(transport),
		rateLimiter: middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow),
		parser:      NewCommandParser(),
		now:         time.Now,
		loc:         cfg.Location(),
		inflight:    make(chan struct{}, maxInFlight),
	}
}

// Start polls updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	updates, err := b.transport.Updates(ctx, b.cfg.BotUpdateTimeoutSeconds)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"max_inflight": cap(b.inflight),
		"timeout_sec":  b.cfg.BotUpdateTimeoutSeconds,
	}).Info("Bot started, waiting for messages...")

	for {
		select {
		case <-ctx.Done():
			log.Info("Bot stopping (ctx done)...")
			return nil

		case update, ok := <-updates:
			if !ok {
				log.Info("Updates channel closed, bot stopped")
				return nil
			}

			b.inflight <- struct{}{}
			go func(upd telego.Update) {
				defer func() { <-b.inflight }()
				b.handleUpdate(ctx, upd)
			}(update)
		}
	}
}

// Close releases background resources.
func (b *Bot) Close() {
	b.rateLimiter.Close()
}

// request is one routed message.
type request struct {
	ctx     context.Context
	chatID  int64
	userID  int64
	prefs   Prefs
	session *ledger.Session
	message *telego.Message
}

func (b *Bot) handleUpdate(ctx context.Context, update telego.Update) {
	defer middleware.Recover(log.Fields{"update_id": update.UpdateID}, nil)

	message := update.Message
	if message == nil {
		return
	}

	middleware.LogMessage(message)

	if !b.chatFilter.CheckAccess(ctx, message) {
		return
	}

	prefs := b.prefs.Get(message.From.ID, message.From.LanguageCode)
	notify := func(key string) {
		if err := b.transport.SendText(ctx, message.Chat.ID, t(prefs.Lang, key)); err != nil {
			log.WithError(err).WithField("chat_id", message.Chat.ID).Error("Failed to send message")
		}
	}
	defer middleware.Recover(log.Fields{
		"update_id": update.UpdateID,
		"user_id":   message.From.ID,
	}, func() { notify("err_internal") })

	switch b.rateLimiter.Check(message.From.ID) {
	case middleware.Throttled:
		log.WithField("user_id", message.From.ID).Debug("rate limited")
		notify("rate_limited")
		return
	case middleware.Dropped:
		return
	}

	r := &request{
		ctx:     ctx,
		chatID:  message.Chat.ID,
		userID:  message.From.ID,
		prefs:   prefs,
		message: message,
	}
	r.session = b.registry.Get(ctx, r.userID)

	if len(message.Photo) > 0 || isImageDocument(message.Document) {
		b.handleScan(r, message.Caption)
		return
	}
	if message.Text == "" {
		return
	}

	cmd, args, isCommand := b.parser.ParseCommand(message.Text)
	log.WithFields(log.Fields{
		"isCommand": isCommand,
		"cmd":       cmd,
		"args":      args,
	}).Debug("parsed command")

	if !isCommand {
		b.reply(r, t(r.prefs.Lang, "help"))
		return
	}
	b.routeCommand(r, cmd, args)
}

func (b *Bot) routeCommand(r *request, cmd string, args []string) {
	switch cmd {
	case "start", "help":
		b.reply(r, t(r.prefs.Lang, "help"))
	case "stats":
		b.handleStats(r)
	case "wardrobe":
		b.handleWardrobe(r)
	case "buy":
		b.handleBuy(r, args)
	case "equip":
		b.handleEquip(r, args)
	case "claim":
		b.handleClaim(r)
	case "milestone":
		b.handleMilestone(r)
	case "upgrade":
		b.handleUpgrade(r)
	case "gender":
		b.handleGender(r)
	case "mbti":
		b.handleMBTI(r, args)
	case "plan":
		b.handlePlan(r, args)
	case "progress":
		b.handleProgress(r, args)
	case "portfolio":
		b.handlePortfolio(r)
	case "quote":
		b.handleQuote(r)
	case "lang":
		b.handleLang(r)
	case "currency":
		b.handleCurrency(r)
	case "ask":
		b.handleAsk(r, args)
	case "draw":
		b.handleDraw(r, args)
	default:
		log.WithField("cmd", cmd).Debug("unknown command")
		b.reply(r, t(r.prefs.Lang, "help"))
	}
}

// reply sends text to the request's chat and logs delivery failures.
func (b *Bot) reply(r *request, text string) {
	if err := b.transport.SendText(r.ctx, r.chatID, text); err != nil {
		log.WithError(err).WithField("chat_id", r.chatID).Error("Failed to send message")
	}
}

func (b *Bot) today() string {
	return common.DateIn(b.now(), b.loc)
}

func isImageDocument(doc *telego.Document) bool {
	return doc != nil && strings.HasPrefix(doc.MimeType, "image/")
}

// CommandParser parses commands with the /, ! and . prefixes.
type CommandParser struct {
	validPrefixes []string
}

func NewCommandParser() *CommandParser {
	return &CommandParser{
		validPrefixes: []string{"/", "!", "."},
	}
}

// ParseCommand splits text into a lower-case command and its arguments.
// A /cmd@botname suffix is dropped.
func (p *CommandParser) ParseCommand(text string) (string, []string, bool) {
	text = strings.TrimSpace(text)

	hasPrefix := false
	for _, prefix := range p.validPrefixes {
		if strings.HasPrefix(text, prefix) {
			text = strings.TrimPrefix(text, prefix)
			hasPrefix = true
			break
		}
	}

	if !hasPrefix {
		return "", nil, false
	}

	parts := strings.Fields(text)
	if len(parts) == 0 {
		return "", nil, false
	}

	command, _, _ := strings.Cut(strings.ToLower(parts[0]), "@")
	if command == "" {
		return "", nil, false
	}
	var args []string
	if len(parts) > 1 {
		args = parts[1:]
	}

	return command, args, true
}
