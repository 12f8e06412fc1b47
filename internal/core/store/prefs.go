package store

import (
	"fmt"
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.PreferencesKeeper = (*Preferences)(nil)

// Preferences owns the currency and language scalars. Currency and
// language are persisted under separate keys so a corrupted payload
// resets only the affected scalar.
type Preferences struct {
	kv port.KeyValue
	mu sync.Mutex
	notifier
}

func NewPreferences(kv port.KeyValue) *Preferences {
	return &Preferences{kv: kv}
}

func (p *Preferences) Get() domain.Preferences {
	p.mu.Lock()
	defer p.mu.Unlock()

	prefs := domain.Preferences{
		Currency: domain.DefaultCurrency,
		Language: domain.DefaultLanguage,
	}

	var cur domain.CurrencyCode
	if p.kv.Read(currencyKey, &cur) && cur != "" {
		prefs.Currency = cur
	}

	var lang string
	if p.kv.Read(langKey, &lang) && lang != "" {
		prefs.Language = lang
	}
	return prefs
}

func (p *Preferences) SetCurrency(code domain.CurrencyCode) error {
	const op = "Preferences.SetCurrency"

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.kv.Write(currencyKey, code); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	p.publish(domain.ChangeEvent{Store: domain.StorePreferences})
	return nil
}

func (p *Preferences) SetLanguage(lang string) error {
	const op = "Preferences.SetLanguage"

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.kv.Write(langKey, lang); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	p.publish(domain.ChangeEvent{Store: domain.StorePreferences})
	return nil
}
