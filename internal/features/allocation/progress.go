// Package allocation: progress.go compares the plan with what the session
// actually logged.
package allocation

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Progress is the realised side of a Plan. Amounts are in the display
// currency of the plan.
type Progress struct {
	Spent               decimal.Decimal
	Revenue             decimal.Decimal
	RemainingOperations decimal.Decimal // May be negative when over budget
	OperationsRealized  decimal.Decimal // Percent of the operations budget spent
	InvestmentRealized  decimal.Decimal // Percent of the investment target covered by revenue
}

// Track sums the logged amounts, which are stored in USD, converts them
// with rate and compares them with plan.
func Track(plan Plan, expenses, incomes []float64, rate decimal.Decimal) Progress {
	spent := sum(expenses).Mul(rate)
	revenue := sum(incomes).Mul(rate)
	return Progress{
		Spent:               spent,
		Revenue:             revenue,
		RemainingOperations: plan.Operations.Sub(spent),
		OperationsRealized:  realized(spent, plan.Operations),
		InvestmentRealized:  realized(revenue, plan.Investment),
	}
}

// realized returns actual/target in percent. A zero target counts as fully
// realised once actual is non-negative.
func realized(actual, target decimal.Decimal) decimal.Decimal {
	if target.IsZero() {
		if actual.IsNegative() {
			return decimal.Zero
		}
		return hundred
	}
	return actual.Div(target).Mul(hundred)
}

func sum(amounts []float64) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(sanitizeIncome(a)))
	}
	return total
}
