// Package portfolio values the demo asset portfolio shown on the home
// screen. Prices are static; nothing is fetched.
package portfolio

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/skyuu2025-stack/xallet/internal/common"
)

// Kind groups assets on the allocation chart.
type Kind string

const (
	KindCrypto Kind = "crypto"
	KindMetal  Kind = "metal"
	KindStock  Kind = "stock"
	KindCash   Kind = "cash"
)

// Asset is one position of the portfolio.
type Asset struct {
	Symbol    string
	Name      string
	Kind      Kind
	Amount    decimal.Decimal
	Price     decimal.Decimal // USD per unit
	Change24h decimal.Decimal // Percent
	Icon      string
}

// Value is Amount × Price in USD.
func (a Asset) Value() decimal.Decimal {
	return a.Amount.Mul(a.Price)
}

func asset(symbol, name string, kind Kind, amount, price, change, icon string) Asset {
	return Asset{
		Symbol:    symbol,
		Name:      name,
		Kind:      kind,
		Amount:    decimal.RequireFromString(amount),
		Price:     decimal.RequireFromString(price),
		Change24h: decimal.RequireFromString(change),
		Icon:      icon,
	}
}

// Demo is the fixed portfolio every user sees.
var Demo = Portfolio{Assets: []Asset{
	asset("BTC", "Bitcoin", KindCrypto, "0.42", "92450.21", "2.45", "₿"),
	asset("ETH", "Ethereum", KindCrypto, "5.12", "2850.15", "-1.20", "Ξ"),
	asset("AG", "Silver / 白银", KindMetal, "500", "34.20", "5.67", "Ag"),
	asset("NVDA", "Nvidia", KindStock, "20", "145.32", "0.85", "N"),
	asset("USDC", "USDC", KindCash, "15200", "1.00", "0.01", "$"),
}}

// Portfolio is a list of positions.
type Portfolio struct {
	Assets []Asset
}

// TotalUSD sums the value of every asset.
func (p Portfolio) TotalUSD() decimal.Decimal {
	total := decimal.Zero
	for _, a := range p.Assets {
		total = total.Add(a.Value())
	}
	return total
}

// Total converts TotalUSD into the display currency.
func (p Portfolio) Total(c common.Currency) decimal.Decimal {
	return p.TotalUSD().Mul(c.Rate())
}

// Share is one slice of the allocation chart.
type Share struct {
	Symbol  string
	Value   decimal.Decimal // USD
	Percent decimal.Decimal // Of the total, rounded to two decimals
}

// Shares returns every asset's part of the total, largest first.
func (p Portfolio) Shares() []Share {
	total := p.TotalUSD()
	out := make([]Share, 0, len(p.Assets))
	for _, a := range p.Assets {
		pct := decimal.Zero
		if !total.IsZero() {
			pct = a.Value().Div(total).Mul(decimal.NewFromInt(100)).Round(2)
		}
		out = append(out, Share{Symbol: a.Symbol, Value: a.Value(), Percent: pct})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value.GreaterThan(out[j].Value)
	})
	return out
}

// Change24h is the value-weighted daily change of the portfolio in percent.
func (p Portfolio) Change24h() decimal.Decimal {
	total := p.TotalUSD()
	if total.IsZero() {
		return decimal.Zero
	}
	weighted := decimal.Zero
	for _, a := range p.Assets {
		weighted = weighted.Add(a.Value().Mul(a.Change24h))
	}
	return weighted.Div(total).Round(2)
}
