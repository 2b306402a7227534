package model

import "github.com/shopspring/decimal"

// Balance is the amount held by an address in display units.
// Received, Sent and Rewarded may be partially populated; Balance is authoritative.
type Balance struct {
	Address  string          `json:"address"`
	Symbol   string          `json:"symbol"`
	Currency Currency        `json:"currency"`
	Token    string          `json:"token,omitempty"`
	Balance  decimal.Decimal `json:"balance"`
	Received decimal.Decimal `json:"received"`
	Sent     decimal.Decimal `json:"sent"`
	Rewarded decimal.Decimal `json:"rewarded"`
}

// ZeroBalance is returned for addresses without a tracked balance.
func ZeroBalance(address, symbol string, currency Currency) Balance {
	return Balance{
		Address:  address,
		Symbol:   symbol,
		Currency: currency,
		Balance:  decimal.Zero,
		Received: decimal.Zero,
		Sent:     decimal.Zero,
		Rewarded: decimal.Zero,
	}
}
