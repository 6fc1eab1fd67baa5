// Package bot: telegram.go adapts telego to the Transport the bot uses,
// so handlers can be tested without the Telegram API.
package bot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
	log "github.com/sirupsen/logrus"

	"github.com/skyuu2025-stack/xallet/internal/features/assistant"
)

// Messenger is everything handlers need to answer a user.
type Messenger interface {
	SendText(ctx context.Context, chatID int64, text string) error
	SendPhoto(ctx context.Context, chatID int64, img assistant.Image, caption string) error
	DownloadFile(ctx context.Context, fileID string) ([]byte, error)
}

// Transport is a Messenger that also delivers updates.
type Transport interface {
	Messenger
	Updates(ctx context.Context, timeoutSeconds int) (<-chan telego.Update, error)
}

// Telegram is the telego-backed Transport.
type Telegram struct {
	api *telego.Bot
}

// NewTelegram authorises the bot token and logs the bot username.
func NewTelegram(ctx context.Context, token string, debug bool) (*Telegram, error) {
	var opts []telego.BotOption
	if debug {
		opts = append(opts, telego.WithDefaultDebugLogger())
	}
	api, err := telego.NewBot(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	me, err := api.GetMe(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to authorise telegram bot: %w", err)
	}
	log.Infof("Authorised as @%s", me.Username)
	return &Telegram{api: api}, nil
}

func (t *Telegram) Updates(ctx context.Context, timeoutSeconds int) (<-chan telego.Update, error) {
	return t.api.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: timeoutSeconds,
	})
}

func (t *Telegram) SendText(ctx context.Context, chatID int64, text string) error {
	_, err := t.api.SendMessage(ctx, tu.Message(tu.ID(chatID), text))
	return err
}

func (t *Telegram) SendPhoto(ctx context.Context, chatID int64, img assistant.Image, caption string) error {
	file := tu.File(tu.NameReader(bytes.NewReader(img.Data), "xallet"+extensionFor(img.MIME)))
	_, err := t.api.SendPhoto(ctx, tu.Photo(tu.ID(chatID), file).WithCaption(caption))
	return err
}

func (t *Telegram) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := t.api.GetFile(ctx, &telego.GetFileParams{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("failed to get file %s: %w", fileID, err)
	}
	data, err := tu.DownloadFile(t.api.FileDownloadURL(file.FilePath))
	if err != nil {
		return nil, fmt.Errorf("failed to download file %s: %w", fileID, err)
	}
	return data, nil
}

func extensionFor(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	}
	return ".png"
}
