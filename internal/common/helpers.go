// Package common contains small utilities used across the project:
// calendar dates in the configured timezone and number formatting.
package common

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date layout stored in lastActionDate.
const DateLayout = "2006-01-02"

// DateIn returns the calendar date of t in loc as YYYY-MM-DD.
// A nil loc means UTC.
func DateIn(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DateLayout)
}

// IsDate reports whether s is a valid YYYY-MM-DD date.
func IsDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// FormatNumber formats n with comma thousand separators.
// Example: FormatNumber(19000) → "19,000"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var sb strings.Builder
	head := len(s) % 3
	if head > 0 {
		sb.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}

// FormatCredits renders a balance in Martian Credits.
// Example: FormatCredits(1250) → "1,250 MC"
func FormatCredits(n int64) string {
	return FormatNumber(n) + " MC"
}

// FormatCreditsDelta renders a signed credit movement.
//
//	FormatCreditsDelta(50)  → "+50 MC"
//	FormatCreditsDelta(-120) → "-120 MC"
func FormatCreditsDelta(n int64) string {
	if n >= 0 {
		return "+" + FormatCredits(n)
	}
	return FormatCredits(n)
}

// FormatCompact shortens large balances the way the milestone card does:
// values from 1000 up are shown in thousands with one decimal.
// Example: FormatCompact(10500) → "10.5K"
func FormatCompact(n int64) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%.1fK", float64(n)/1000)
}
