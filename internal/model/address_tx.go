package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddressTx is one history entry of an address. Value is negative for outgoing entries.
type AddressTx struct {
	Address       string          `json:"address"`
	Hash          string          `json:"hash"`
	Block         int64           `json:"block"`
	Timestamp     time.Time       `json:"timestamp"`
	Value         decimal.Decimal `json:"value"`
	Tag           string          `json:"tag,omitempty"`
	Direction     Direction       `json:"direction"`
	From          string          `json:"from"`
	To            string          `json:"to"`
	Symbol        string          `json:"symbol"`
	Currency      Currency        `json:"currency"`
	Token         string          `json:"token,omitempty"`
	Confirmations int64           `json:"confirmations"`
}

// Matches reports whether the entry passes a direction filter.
func (t AddressTx) Matches(direction Direction) bool {
	return direction == Unspecified || t.Direction == direction
}
