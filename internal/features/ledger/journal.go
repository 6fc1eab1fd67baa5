// Package ledger: journal.go keeps the expenses and incomes logged during
// a session. They feed the budget progress view and are not persisted.
package ledger

import (
	"strings"

	"github.com/google/uuid"
)

// Expense is a scanned or typed spending record.
type Expense struct {
	ID       string
	Merchant string
	Amount   float64
	Date     string // YYYY-MM-DD
	Category string
}

// Income is a scanned or typed income record.
type Income struct {
	ID       string
	Source   string
	Amount   float64
	Date     string // YYYY-MM-DD
	Category string
}

// NewExpense fills the defaults the scan screen applies to missing fields.
func NewExpense(merchant string, amount float64, date, category, today string) Expense {
	return Expense{
		ID:       uuid.NewString(),
		Merchant: orDefault(merchant, "Unknown Merchant"),
		Amount:   CoerceAmount(amount),
		Date:     orDefault(date, today),
		Category: orDefault(category, "Operations"),
	}
}

// NewIncome fills the defaults the scan screen applies to missing fields.
func NewIncome(source string, amount float64, date, category, today string) Income {
	return Income{
		ID:       uuid.NewString(),
		Source:   orDefault(source, "Unknown Source"),
		Amount:   CoerceAmount(amount),
		Date:     orDefault(date, today),
		Category: orDefault(category, "Revenue"),
	}
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
