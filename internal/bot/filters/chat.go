// Package filters decides which chats the bot answers in.
package filters

import (
	"context"
	"sync"

	"github.com/mymmrac/telego"
	log "github.com/sirupsen/logrus"
)

// Notifier sends the one-time notice to group chats.
type Notifier interface {
	SendText(ctx context.Context, chatID int64, text string) error
}

// ChatFilter lets private chats through. Every Telegram user owns exactly
// one ledger, so group chats are answered once with a pointer to the DM.
type ChatFilter struct {
	notifier Notifier

	mu       sync.Mutex
	notified map[int64]bool
}

func NewChatFilter(notifier Notifier) *ChatFilter {
	return &ChatFilter{
		notifier: notifier,
		notified: make(map[int64]bool),
	}
}

const groupNotice = "🛰 Xallet works in private chat only. Message me directly to open your ledger."

func (f *ChatFilter) CheckAccess(ctx context.Context, message *telego.Message) bool {
	if message == nil {
		log.WithField("component", "ChatFilter").Warn("nil message")
		return false
	}
	if message.From == nil || message.From.IsBot {
		log.WithFields(log.Fields{
			"component": "ChatFilter",
			"chat_id":   message.Chat.ID,
			"chat_type": message.Chat.Type,
		}).Debug("deny: no human sender")
		return false
	}

	if message.Chat.Type == telego.ChatTypePrivate {
		return true
	}

	logger := log.WithFields(log.Fields{
		"component": "ChatFilter",
		"chat_id":   message.Chat.ID,
		"chat_type": message.Chat.Type,
		"user_id":   message.From.ID,
	})

	f.mu.Lock()
	first := !f.notified[message.Chat.ID]
	f.notified[message.Chat.ID] = true
	f.mu.Unlock()

	if first && f.notifier != nil {
		if err := f.notifier.SendText(ctx, message.Chat.ID, groupNotice); err != nil {
			logger.WithError(err).Warn("failed to send group notice")
		}
	}
	logger.Debug("deny: not a private chat")
	return false
}
