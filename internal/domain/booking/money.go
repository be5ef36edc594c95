package booking

import (
	"errors"
	"strings"
)

var (
	ErrNegativeAmount   = errors.New("amount cannot be negative")
	ErrInvalidCurrency  = errors.New("currency must be a three-letter ISO code")
	ErrCurrencyMismatch = errors.New("rooms must share a currency")
)

// Money is an amount in minor units tagged with its currency. No conversion
// between currencies is performed anywhere.
type Money struct {
	cents    int64
	currency string
}

func NewMoney(cents int64, currency string) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	c := strings.ToLower(strings.TrimSpace(currency))
	if len(c) != 3 {
		return Money{}, ErrInvalidCurrency
	}
	return Money{cents: cents, currency: c}, nil
}

func (m Money) Cents() int64      { return m.cents }
func (m Money) Currency() string  { return m.currency }
func (m Money) Major() float64    { return float64(m.cents) / 100.0 }
func (m Money) Times(n int) Money { return Money{cents: m.cents * int64(n), currency: m.currency} }

func (m Money) Add(o Money) (Money, error) {
	if m.currency != o.currency {
		return Money{}, ErrCurrencyMismatch
	}
	return Money{cents: m.cents + o.cents, currency: m.currency}, nil
}
