// Package model holds the canonical entities returned by explorers.
package model

// Currency is the internal currency identifier.
type Currency string

// Network names a chain served by one explorer.
type Network string

// Family groups chains sharing a wire-protocol shape.
type Family string

var (
	ATOM Currency = "atom"
	BCH  Currency = "bch"
	BTC  Currency = "btc"
	AVAX Currency = "avax"
	USDT Currency = "usdt"
)

var (
	FamilyCosmos Family = "cosmos"
	FamilyUTXO   Family = "utxo"
	FamilyEVM    Family = "evm"
)

// TransferType distinguishes native coin moves from token moves.
type TransferType string

var (
	MainCoin TransferType = "main_coin"
	Token    TransferType = "token"
)

// Direction of a transfer relative to a queried address.
type Direction string

var (
	Unspecified Direction = ""
	Incoming    Direction = "incoming"
	Outgoing    Direction = "outgoing"
)

// ParseDirection accepts the textual forms used by callers.
func ParseDirection(s string) (Direction, bool) {
	switch Direction(s) {
	case Unspecified, Incoming, Outgoing:
		return Direction(s), true
	}
	if s == "unspecified" || s == "all" {
		return Unspecified, true
	}
	return Unspecified, false
}
