package bot

import (
	"strings"
	"sync"

	"github.com/skyuu2025-stack/xallet/internal/common"
	"github.com/skyuu2025-stack/xallet/internal/features/allocation"
)

const (
	langEN = "en"
	langCN = "cn"
)

// defaultIncome prefills the calculator until the user enters one.
const defaultIncome = 10000

// Prefs is the per-user display state. It lives as long as the process.
type Prefs struct {
	Lang       string
	Currency   common.Currency
	PlanIncome float64
	PlanTier   allocation.Tier
}

// Preferences keeps Prefs per Telegram user.
type Preferences struct {
	mu sync.Mutex
	m  map[int64]Prefs
}

func NewPreferences() *Preferences {
	return &Preferences{m: make(map[int64]Prefs)}
}

// Get returns the user's prefs, guessing the language from the Telegram
// client language on first contact.
func (p *Preferences) Get(userID int64, languageCode string) Prefs {
	p.mu.Lock()
	defer p.mu.Unlock()

	if pr, ok := p.m[userID]; ok {
		return pr
	}
	pr := defaultPrefs(languageCode)
	p.m[userID] = pr
	return pr
}

// Update applies fn to the stored prefs and returns the result.
func (p *Preferences) Update(userID int64, fn func(*Prefs)) Prefs {
	p.mu.Lock()
	defer p.mu.Unlock()

	pr, ok := p.m[userID]
	if !ok {
		pr = defaultPrefs("")
	}
	fn(&pr)
	p.m[userID] = pr
	return pr
}

func defaultPrefs(languageCode string) Prefs {
	pr := Prefs{
		Lang:       langEN,
		Currency:   common.USD,
		PlanIncome: defaultIncome,
		PlanTier:   allocation.DefaultTier,
	}
	if strings.HasPrefix(strings.ToLower(languageCode), "zh") {
		pr.Lang = langCN
		pr.Currency = common.CNY
	}
	return pr
}
