// Package bot: handlers_ledger.go answers the reward and wardrobe commands:
// /stats, /wardrobe, /buy, /equip, /claim, /milestone, /upgrade, /gender, /mbti.
package bot

import (
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/skyuu2025-stack/xallet/internal/common"
	"github.com/skyuu2025-stack/xallet/internal/features/ledger"
	"github.com/skyuu2025-stack/xallet/internal/features/wardrobe"
)

// handleStats shows the balance, rank and today's goals.
//
//	💳 Credits: 1,250 MC
//	🏆 Rank: #499
func (b *Bot) handleStats(r *request) {
	s := r.session.Ledger.Snapshot()
	lang := r.prefs.Lang

	text := t(lang, "stats",
		common.FormatCredits(s.Tokens),
		formatRank(lang, s.Rank),
		strings.ToUpper(string(s.Subscription)),
		check(s.DailyEarned),
		check(s.DailySaved),
		s.Gender,
		s.Personality,
		s.PersonalityColor(),
		equippedNames(lang, s),
	)
	if s.CanClaim() {
		text += "\n\n" + t(lang, "claim_ready")
	}
	b.reply(r, text)
}

// handleWardrobe lists the catalog by slot. Special items appear only once owned.
func (b *Bot) handleWardrobe(r *request) {
	s := r.session.Ledger.Snapshot()
	lang := r.prefs.Lang
	visible := wardrobe.Visible(s.OwnedSet())

	var sb strings.Builder
	sb.WriteString(t(lang, "wardrobe_header", common.FormatCredits(s.Tokens)))
	for _, cat := range wardrobe.Categories {
		var lines []string
		for _, item := range visible {
			if item.Category != cat {
				continue
			}
			lines = append(lines, itemLine(lang, item, s))
		}
		if len(lines) == 0 {
			continue
		}
		sb.WriteString("\n\n")
		sb.WriteString(strings.ToUpper(string(cat)))
		for _, l := range lines {
			sb.WriteString("\n")
			sb.WriteString(l)
		}
	}
	sb.WriteString("\n\n")
	sb.WriteString(t(lang, "wardrobe_hint"))
	b.reply(r, sb.String())
}

func itemLine(lang string, item wardrobe.Item, s ledger.UserStats) string {
	mark := "▫️"
	switch {
	case s.Wears(item.ID):
		mark = "✅"
	case s.Owns(item.ID):
		mark = "☑️"
	}
	price := common.FormatCredits(item.Price)
	if item.Special {
		price = "★"
	}
	return fmt.Sprintf("%s %s · %s · %s", mark, item.ID, item.Name.In(lang), price)
}

func (b *Bot) handleBuy(r *request, args []string) {
	lang := r.prefs.Lang
	if len(args) == 0 {
		b.reply(r, t(lang, "usage_buy"))
		return
	}
	id := strings.ToLower(args[0])

	s, err := r.session.Ledger.PurchaseItem(r.ctx, id)
	if err != nil {
		b.reply(r, b.ledgerError(lang, err, id, s))
		return
	}
	item, _ := wardrobe.Lookup(id)
	b.reply(r, t(lang, "bought", item.Name.In(lang), common.FormatCredits(s.Tokens)))
}

func (b *Bot) handleEquip(r *request, args []string) {
	lang := r.prefs.Lang
	if len(args) == 0 {
		b.reply(r, t(lang, "usage_equip"))
		return
	}
	id := strings.ToLower(args[0])

	s, err := r.session.Ledger.ToggleEquip(r.ctx, id)
	if err != nil {
		b.reply(r, b.ledgerError(lang, err, id, s))
		return
	}
	item, _ := wardrobe.Lookup(id)
	if s.Wears(id) {
		b.reply(r, t(lang, "equipped", item.Name.In(lang)))
	} else {
		b.reply(r, t(lang, "unequipped", item.Name.In(lang)))
	}
}

func (b *Bot) handleClaim(r *request) {
	lang := r.prefs.Lang
	res, err := r.session.Ledger.ClaimDailyReward(r.ctx)
	if err != nil {
		b.reply(r, b.ledgerError(lang, err, "", ledger.UserStats{}))
		return
	}
	if res.ItemID == "" {
		b.reply(r, t(lang, "claimed_all", common.FormatCreditsDelta(res.Bonus)))
		return
	}
	item, _ := wardrobe.Lookup(res.ItemID)
	b.reply(r, t(lang, "claimed_item", item.Name.In(lang), common.FormatCreditsDelta(res.Bonus)))
}

func (b *Bot) handleMilestone(r *request) {
	lang := r.prefs.Lang
	m := r.session.Ledger.EvaluateMilestone()
	if m.Unlocked {
		b.reply(r, t(lang, "milestone_open", common.FormatCompact(m.Tokens), *m.Rank))
		return
	}
	b.reply(r, t(lang, "milestone_lock",
		common.FormatCompact(ledger.MilestoneTokens),
		ledger.MilestoneRank,
		common.FormatCompact(m.Tokens),
		formatRank(lang, m.Rank),
	))
}

func (b *Bot) handleUpgrade(r *request) {
	lang := r.prefs.Lang
	_, upgraded := r.session.Ledger.UpgradeSubscription(r.ctx)
	if !upgraded {
		b.reply(r, t(lang, "already_premium"))
		return
	}
	log.WithField("user_id", r.userID).Info("Subscription upgraded")
	b.reply(r, t(lang, "upgraded", common.FormatCreditsDelta(ledger.PremiumBonus)))
}

func (b *Bot) handleGender(r *request) {
	s := r.session.Ledger.ToggleGender(r.ctx)
	b.reply(r, t(r.prefs.Lang, "gender", s.Gender))
}

func (b *Bot) handleMBTI(r *request, args []string) {
	lang := r.prefs.Lang
	if len(args) == 0 {
		b.reply(r, t(lang, "usage_mbti"))
		return
	}
	s, err := r.session.Ledger.SetPersonality(r.ctx, args[0])
	if err != nil {
		b.reply(r, b.ledgerError(lang, err, "", s))
		return
	}
	b.reply(r, t(lang, "mbti", s.Personality))
}

// ledgerError maps a ledger sentinel to the user-facing message.
func (b *Bot) ledgerError(lang string, err error, itemID string, s ledger.UserStats) string {
	switch {
	case errors.Is(err, common.ErrInsufficientCredits):
		item, _ := wardrobe.Lookup(itemID)
		return t(lang, "err_credits", item.Name.In(lang), common.FormatCredits(item.Price), common.FormatCredits(s.Tokens))
	case errors.Is(err, common.ErrNotOwned):
		return t(lang, "err_not_owned")
	case errors.Is(err, common.ErrUnknownItem):
		return t(lang, "err_unknown")
	case errors.Is(err, common.ErrNotPurchasable):
		return t(lang, "err_special")
	case errors.Is(err, common.ErrClaimNotReady):
		return t(lang, "err_claim")
	case errors.Is(err, common.ErrUnknownPersonality):
		return t(lang, "err_mbti")
	}
	log.WithError(err).Error("Unexpected ledger error")
	return t(lang, "err_internal")
}

func formatRank(lang string, rank *int) string {
	if rank == nil {
		return t(lang, "rank_none")
	}
	return fmt.Sprintf("#%s", common.FormatNumber(int64(*rank)))
}

func equippedNames(lang string, s ledger.UserStats) string {
	if len(s.EquippedItemIDs) == 0 {
		return t(lang, "nothing")
	}
	names := make([]string, 0, len(s.EquippedItemIDs))
	for _, id := range s.EquippedItemIDs {
		if item, ok := wardrobe.Lookup(id); ok {
			names = append(names, item.Name.In(lang))
		}
	}
	return strings.Join(names, ", ")
}

func check(done bool) string {
	if done {
		return "✅"
	}
	return "⬜"
}
