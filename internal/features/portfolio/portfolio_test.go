package portfolio

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyuu2025-stack/xallet/internal/common"
)

func TestTotalUSD(t *testing.T) {
	// 38829.0882 + 14592.768 + 17100 + 2906.4 + 15200
	want := decimal.RequireFromString("88628.2562")
	assert.True(t, want.Equal(Demo.TotalUSD()), Demo.TotalUSD().String())
}

func TestTotalInCNY(t *testing.T) {
	got := Demo.Total(common.CNY)
	want := Demo.TotalUSD().Mul(decimal.RequireFromString("7.24"))
	assert.True(t, want.Equal(got))
	assert.True(t, Demo.Total(common.USD).Equal(Demo.TotalUSD()))
}

func TestShares(t *testing.T) {
	shares := Demo.Shares()
	require.Len(t, shares, len(Demo.Assets))
	assert.Equal(t, "BTC", shares[0].Symbol)
	assert.Equal(t, "NVDA", shares[len(shares)-1].Symbol)

	total := decimal.Zero
	for _, s := range shares {
		total = total.Add(s.Percent)
	}
	// Rounding to two decimals can drift a cent either way.
	assert.True(t, total.Sub(decimal.NewFromInt(100)).Abs().LessThanOrEqual(decimal.RequireFromString("0.05")), total.String())
}

func TestEmptyPortfolio(t *testing.T) {
	var p Portfolio
	assert.True(t, p.TotalUSD().IsZero())
	assert.True(t, p.Change24h().IsZero())
	assert.Empty(t, p.Shares())
}

func TestDailyQuote(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2026, 10, d, 9, 0, 0, 0, time.UTC) }

	assert.Equal(t, Quotes[0], DailyQuote(day(7)))
	assert.Equal(t, Quotes[4], DailyQuote(day(18)))
	assert.Equal(t, DailyQuote(day(18)), DailyQuote(day(18).Add(14*time.Hour)))
	assert.Equal(t, Quotes[1].CN, DailyQuote(day(1)).In("cn"))
	assert.Equal(t, Quotes[1].EN, DailyQuote(day(1)).In("en"))
}
