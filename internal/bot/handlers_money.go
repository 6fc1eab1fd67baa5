// Package bot: handlers_money.go answers /plan, /progress, /portfolio,
// /quote, /lang and /currency.
package bot

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/skyuu2025-stack/xallet/internal/common"
	"github.com/skyuu2025-stack/xallet/internal/features/allocation"
	"github.com/skyuu2025-stack/xallet/internal/features/portfolio"
)

// handlePlan allocates the entered income and confirms today's savings plan.
// The income is typed in the user's display currency.
func (b *Bot) handlePlan(r *request, args []string) {
	lang := r.prefs.Lang
	if len(args) == 0 {
		b.reply(r, t(lang, "usage_plan"))
		return
	}

	income := allocation.ParseIncome(args[0])
	tierArg := ""
	if len(args) > 1 {
		tierArg = args[1]
	}
	tier, err := allocation.ParseTier(tierArg)
	if err != nil {
		b.reply(r, t(lang, "err_tier"))
		return
	}

	prefs := b.prefs.Update(r.userID, func(p *Prefs) {
		p.PlanIncome = income
		p.PlanTier = tier
	})
	plan := allocation.Allocate(income, tier)
	split := tier.SplitOf()
	cur := prefs.Currency

	r.session.Ledger.ConfirmSavingsPlan(r.ctx)

	b.reply(r, t(lang, "plan",
		tierTitle(tier),
		common.FormatMoney(plan.Income, cur),
		split.Investment, common.FormatMoney(plan.Investment, cur),
		split.Operations, common.FormatMoney(plan.Operations, cur),
		split.Savings, common.FormatMoney(plan.Savings, cur),
		allocation.AdviceFor(tier, lang).Logic,
	))
}

// handleProgress compares the last plan with this session's receipts and incomes.
func (b *Bot) handleProgress(r *request, args []string) {
	lang := r.prefs.Lang
	tier := r.prefs.PlanTier
	if len(args) > 0 {
		parsed, err := allocation.ParseTier(args[0])
		if err != nil {
			b.reply(r, t(lang, "err_tier"))
			return
		}
		tier = parsed
	}

	cur := r.prefs.Currency
	plan := allocation.Allocate(r.prefs.PlanIncome, tier)

	expenses := r.session.Expenses()
	incomes := r.session.Incomes()
	spent := make([]float64, 0, len(expenses))
	for _, e := range expenses {
		spent = append(spent, e.Amount)
	}
	earned := make([]float64, 0, len(incomes))
	for _, i := range incomes {
		earned = append(earned, i.Amount)
	}
	p := allocation.Track(plan, spent, earned, cur.Rate())

	b.reply(r, t(lang, "progress",
		common.FormatMoney(plan.Operations, cur),
		common.FormatMoney(p.Spent, cur), pct(p.OperationsRealized), common.FormatMoney(p.RemainingOperations, cur),
		common.FormatMoney(p.Revenue, cur), common.FormatMoney(plan.Investment, cur), pct(p.InvestmentRealized),
		len(expenses), len(incomes),
	))
}

func (b *Bot) handlePortfolio(r *request) {
	lang := r.prefs.Lang
	cur := r.prefs.Currency
	p := portfolio.Demo

	var sb strings.Builder
	sb.WriteString(t(lang, "portfolio", common.FormatMoney(p.Total(cur), cur), signed(p.Change24h())))
	for _, share := range p.Shares() {
		for _, a := range p.Assets {
			if a.Symbol != share.Symbol {
				continue
			}
			sb.WriteString(fmt.Sprintf("\n%s %s · %s · %s%% · %s%%",
				a.Icon, a.Symbol,
				common.FormatMoney(share.Value.Mul(cur.Rate()), cur),
				share.Percent.StringFixed(2),
				signed(a.Change24h),
			))
		}
	}
	sb.WriteString("\n\n“")
	sb.WriteString(portfolio.DailyQuote(b.now().In(b.loc)).In(lang))
	sb.WriteString("”")
	b.reply(r, sb.String())
}

func (b *Bot) handleQuote(r *request) {
	b.reply(r, "🪐 "+portfolio.DailyQuote(b.now().In(b.loc)).In(r.prefs.Lang))
}

func (b *Bot) handleLang(r *request) {
	p := b.prefs.Update(r.userID, func(p *Prefs) {
		if p.Lang == langCN {
			p.Lang = langEN
		} else {
			p.Lang = langCN
		}
	})
	b.reply(r, t(p.Lang, "lang"))
}

func (b *Bot) handleCurrency(r *request) {
	p := b.prefs.Update(r.userID, func(p *Prefs) {
		p.Currency = p.Currency.Toggle()
	})
	b.reply(r, t(p.Lang, "currency", p.Currency))
}

func tierTitle(tier allocation.Tier) string {
	s := string(tier)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func pct(d decimal.Decimal) string {
	return d.Round(1).StringFixed(1)
}

func signed(d decimal.Decimal) string {
	if d.IsNegative() {
		return d.StringFixed(2)
	}
	return "+" + d.StringFixed(2)
}
