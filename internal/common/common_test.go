package common

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	cases := map[int64]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		19000:   "19,000",
		1234567: "1,234,567",
		-2500:   "-2,500",
		100000:  "100,000",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatNumber(in), "FormatNumber(%d)", in)
	}
}

func TestFormatCredits(t *testing.T) {
	assert.Equal(t, "1,250 MC", FormatCredits(1250))
	assert.Equal(t, "+50 MC", FormatCreditsDelta(50))
	assert.Equal(t, "-120 MC", FormatCreditsDelta(-120))
	assert.Equal(t, "950", FormatCompact(950))
	assert.Equal(t, "10.5K", FormatCompact(10500))
}

func TestDateIn(t *testing.T) {
	// 2026-10-18 23:30 UTC is already the 19th in Shanghai.
	ts := time.Date(2026, 10, 18, 23, 30, 0, 0, time.UTC)
	shanghai := time.FixedZone("CST", 8*60*60)

	assert.Equal(t, "2026-10-18", DateIn(ts, nil))
	assert.Equal(t, "2026-10-19", DateIn(ts, shanghai))
	assert.True(t, IsDate("2026-10-18"))
	assert.False(t, IsDate("18.10.2026"))
}

func TestCurrency(t *testing.T) {
	c, err := ParseCurrency(" cny ")
	require.NoError(t, err)
	assert.Equal(t, CNY, c)
	assert.Equal(t, USD, c.Toggle())
	assert.True(t, c.Rate().Equal(decimal.RequireFromString("7.24")))
	assert.True(t, USD.Rate().Equal(decimal.NewFromInt(1)))

	_, err = ParseCurrency("eur")
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$3,500.00", FormatMoney(decimal.NewFromInt(3500), USD))
	assert.Contains(t, FormatMoney(decimal.NewFromInt(3500), CNY), "3,500.00")
}

func TestFormatMoneyRoundsToCents(t *testing.T) {
	assert.Equal(t, "$0.13", FormatMoney(decimal.RequireFromString("0.125"), USD))
	assert.Equal(t, "$38,829.09", FormatMoney(decimal.RequireFromString("38829.0882"), USD))
}
