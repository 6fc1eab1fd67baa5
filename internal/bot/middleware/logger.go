// Package middleware holds the cross-cutting update handlers: message
// logging, panic recovery and rate limiting.
package middleware

import (
	"github.com/mymmrac/telego"
	log "github.com/sirupsen/logrus"
)

// LogMessage logs an incoming message: user, chat, username and the first
// 50 characters of the text or caption.
func LogMessage(message *telego.Message) {
	if message == nil || message.From == nil {
		return
	}

	text := message.Text
	if text == "" {
		text = message.Caption
	}
	if r := []rune(text); len(r) > 50 {
		text = string(r[:50]) + "..."
	}

	log.WithFields(log.Fields{
		"user_id":  message.From.ID,
		"chat_id":  message.Chat.ID,
		"username": message.From.Username,
		"text":     text,
		"photo":    len(message.Photo) > 0,
	}).Debug("Incoming message")
}
