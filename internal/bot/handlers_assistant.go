// Package bot: handlers_assistant.go answers /ask and /draw, turns
// captioned photos into ledger records and redraws photos captioned draw.
package bot

import (
	"errors"
	"strings"

	"github.com/mymmrac/telego"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/skyuu2025-stack/xallet/internal/common"
	"github.com/skyuu2025-stack/xallet/internal/features/assistant"
	"github.com/skyuu2025-stack/xallet/internal/features/ledger"
)

type scanKind int

const (
	scanNone scanKind = iota
	scanExpense
	scanIncome
)

// scanKindOf reads the caption of a photo.
func scanKindOf(caption string) scanKind {
	c := strings.ToLower(caption)
	switch {
	case strings.Contains(c, "income"), strings.Contains(c, "收入"):
		return scanIncome
	case strings.Contains(c, "expense"), strings.Contains(c, "receipt"), strings.Contains(c, "支出"):
		return scanExpense
	}
	return scanNone
}

// editPrompt returns the prompt of a "draw <prompt>" caption, with or
// without a command prefix.
func (b *Bot) editPrompt(caption string) (string, bool) {
	if cmd, args, ok := b.parser.ParseCommand(caption); ok {
		if cmd != "draw" {
			return "", false
		}
		return strings.Join(args, " "), true
	}
	fields := strings.Fields(caption)
	if len(fields) == 0 || !strings.EqualFold(fields[0], "draw") {
		return "", false
	}
	return strings.Join(fields[1:], " "), true
}

// downloadImage fetches the message's photo or image document.
func (b *Bot) downloadImage(r *request) ([]byte, string, bool) {
	fileID, mime := imageOf(r.message)
	data, err := b.transport.DownloadFile(r.ctx, fileID)
	if err != nil {
		log.WithError(err).WithField("user_id", r.userID).Error("Photo download failed")
		b.reply(r, t(r.prefs.Lang, "err_internal"))
		return nil, "", false
	}
	return data, mime, true
}

// handleScan extracts an expense or income from the photo and records it.
// A failed extraction leaves the ledger untouched. Photos captioned
// "draw <prompt>" go to the studio instead.
func (b *Bot) handleScan(r *request, caption string) {
	lang := r.prefs.Lang
	if prompt, ok := b.editPrompt(caption); ok {
		b.handleEdit(r, prompt)
		return
	}
	kind := scanKindOf(caption)
	if kind == scanNone {
		b.reply(r, t(lang, "scan_caption"))
		return
	}

	data, mime, ok := b.downloadImage(r)
	if !ok {
		return
	}
	b.reply(r, t(lang, "scan_wait"))

	cur := r.prefs.Currency
	switch kind {
	case scanExpense:
		draft, err := b.ai.ExtractExpense(r.ctx, data, mime)
		if err != nil {
			b.reply(r, aiError(lang, err))
			return
		}
		e := ledger.NewExpense(draft.Merchant, float64(draft.Amount), draft.Date, draft.Category, b.today())
		r.session.LogExpense(e)
		r.session.Ledger.RecordExpense(r.ctx, e.Amount)

		b.reply(r, t(lang, "expense_ok",
			e.Merchant, displayAmount(e.Amount, cur), e.Category,
			common.FormatCreditsDelta(ledger.ExpenseReward),
		))

	case scanIncome:
		draft, err := b.ai.ExtractIncome(r.ctx, data, mime)
		if err != nil {
			b.reply(r, aiError(lang, err))
			return
		}
		i := ledger.NewIncome(draft.Source, float64(draft.Amount), draft.Date, draft.Category, b.today())
		r.session.LogIncome(i)
		s := r.session.Ledger.RecordIncome(r.ctx, i.Amount)

		b.reply(r, t(lang, "income_ok",
			i.Source, displayAmount(i.Amount, cur), i.Category,
			common.FormatCreditsDelta(ledger.IncomeReward(i.Amount)),
			formatRank(lang, s.Rank),
		))
	}
}

func (b *Bot) handleAsk(r *request, args []string) {
	lang := r.prefs.Lang
	prompt := strings.TrimSpace(strings.Join(args, " "))
	if prompt == "" {
		b.reply(r, t(lang, "usage_ask"))
		return
	}

	answer, err := b.ai.Chat(r.ctx, prompt, lang, string(r.prefs.Currency))
	if err != nil {
		b.reply(r, aiError(lang, err))
		return
	}
	b.reply(r, answer)
}

// handleDraw renders a studio image. Leading size and ratio arguments are
// optional: /draw 2K 16:9 a silver rocket.
func (b *Bot) handleDraw(r *request, args []string) {
	lang := r.prefs.Lang
	if !b.cfg.FeatureStudioEnabled {
		b.reply(r, t(lang, "studio_off"))
		return
	}

	var opts assistant.ImageOptions
options:
	for len(args) > 0 {
		a := strings.ToUpper(args[0])
		switch {
		case opts.Size == "" && (a == "1K" || a == "2K" || a == "4K"):
			opts.Size = a
		case opts.AspectRatio == "" && strings.Count(a, ":") == 1 && len(a) <= 5:
			opts.AspectRatio = a
		default:
			break options
		}
		args = args[1:]
	}
	prompt := strings.TrimSpace(strings.Join(args, " "))
	if prompt == "" {
		b.reply(r, t(lang, "usage_draw"))
		return
	}

	img, err := b.ai.GenerateImage(r.ctx, prompt, opts)
	if err != nil {
		b.reply(r, aiError(lang, err))
		return
	}
	if err := b.transport.SendPhoto(r.ctx, r.chatID, img, prompt); err != nil {
		log.WithError(err).WithField("chat_id", r.chatID).Error("Failed to send photo")
	}
}

// handleEdit redraws the attached photo following prompt.
func (b *Bot) handleEdit(r *request, prompt string) {
	lang := r.prefs.Lang
	if !b.cfg.FeatureStudioEnabled {
		b.reply(r, t(lang, "studio_off"))
		return
	}
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		b.reply(r, t(lang, "usage_edit"))
		return
	}

	data, mime, ok := b.downloadImage(r)
	if !ok {
		return
	}
	b.reply(r, t(lang, "edit_wait"))

	img, err := b.ai.EditImage(r.ctx, data, mime, prompt)
	if err != nil {
		b.reply(r, aiError(lang, err))
		return
	}
	if err := b.transport.SendPhoto(r.ctx, r.chatID, img, prompt); err != nil {
		log.WithError(err).WithField("chat_id", r.chatID).Error("Failed to send photo")
	}
}

// aiError turns a collaborator failure into the matching user message.
func aiError(lang string, err error) string {
	var f *assistant.Failure
	if !errors.As(err, &f) {
		return t(lang, "ai_down")
	}
	switch f.Kind {
	case assistant.KindAuth:
		return t(lang, "ai_auth")
	case assistant.KindTimeout:
		return t(lang, "ai_timeout")
	case assistant.KindMalformed:
		return t(lang, "ai_malformed")
	}
	return t(lang, "ai_down")
}

// imageOf picks the largest photo size, or the image document.
func imageOf(m *telego.Message) (fileID, mime string) {
	if n := len(m.Photo); n > 0 {
		return m.Photo[n-1].FileID, "image/jpeg"
	}
	if m.Document != nil {
		return m.Document.FileID, m.Document.MimeType
	}
	return "", ""
}

func displayAmount(usd float64, cur common.Currency) string {
	return common.FormatMoney(decimal.NewFromFloat(usd).Mul(cur.Rate()), cur)
}
