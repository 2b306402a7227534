package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a provider-agnostic transaction. Block is zero while unconfirmed.
type Transaction struct {
	Hash          string              `json:"hash"`
	Success       bool                `json:"success"`
	Block         int64               `json:"block,omitempty"`
	Date          time.Time           `json:"date"`
	Transfers     []Transfer          `json:"transfers"`
	Fees          decimal.NullDecimal `json:"fees"`
	Memo          string              `json:"memo,omitempty"`
	Confirmations int64               `json:"confirmations"`
}

// Transfer is one value movement inside a transaction.
// UTXO inputs and outputs keep an empty From or To.
type Transfer struct {
	Type     TransferType    `json:"type"`
	Symbol   string          `json:"symbol"`
	Currency Currency        `json:"currency"`
	From     string          `json:"from"`
	To       string          `json:"to"`
	Value    decimal.Decimal `json:"value"`
	Token    string          `json:"token,omitempty"`
	IsValid  bool            `json:"is_valid"`
}

// Failed builds the canonical result of a reverted or rejected transaction.
func Failed(hash string) Transaction {
	return Transaction{Hash: hash, Transfers: []Transfer{}}
}

// Confirmations counts blocks mined on top of height, clamped at zero.
func Confirmations(head, height int64) int64 {
	if height <= 0 || head < height {
		return 0
	}
	return head - height
}
