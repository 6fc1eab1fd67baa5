package ledger

import (
	"math/rand/v2"
)

// RandomSource picks the mystery box item. Intn returns a value in [0, n).
type RandomSource interface {
	Intn(n int) int
}

type defaultSource struct{}

func (defaultSource) Intn(n int) int {
	return rand.IntN(n)
}

// DefaultRandom is the process-wide source used when none is injected.
var DefaultRandom RandomSource = defaultSource{}
