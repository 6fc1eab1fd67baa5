package common

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is a display currency of the companion.
type Currency string

const (
	USD Currency = "USD"
	CNY Currency = "CNY"
)

// UsdToCny is the static exchange rate used for every conversion.
var UsdToCny = decimal.RequireFromString("7.24")

// ParseCurrency accepts "usd"/"cny" in any case.
func ParseCurrency(s string) (Currency, error) {
	switch Currency(strings.ToUpper(strings.TrimSpace(s))) {
	case USD:
		return USD, nil
	case CNY:
		return CNY, nil
	}
	return "", ErrUnknownCurrency
}

// Rate returns the multiplier that converts USD amounts into c.
func (c Currency) Rate() decimal.Decimal {
	if c == CNY {
		return UsdToCny
	}
	return decimal.NewFromInt(1)
}

// Toggle switches between the two display currencies.
func (c Currency) Toggle() Currency {
	if c == CNY {
		return USD
	}
	return CNY
}

// FormatMoney renders amount in currency c using go-money templates, e.g. "$3,500.00".
// The amount is rounded to the currency's minor unit.
func FormatMoney(amount decimal.Decimal, c Currency) string {
	code := string(c)
	cur := money.GetCurrency(code)
	if cur == nil {
		code = money.USD
		cur = money.GetCurrency(code)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, code).Display()
}
