// Package utxo turns UTXO input and output edges into canonical entities.
package utxo

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
	"github.com/shopspring/decimal"
)

// Edge is one input or output of a transaction. Address may be empty
// for coinbase inputs or a d-<hash> pseudo address for data outputs.
type Edge struct {
	Address string
	TxHash  string
	Height  int64
	Time    time.Time
	Value   decimal.Decimal
}

// Builder holds the coin identity stamped on every produced entity.
type Builder struct {
	symbol   string
	currency model.Currency
}

// NewBuilder returns a Builder for one UTXO coin.
func NewBuilder(symbol string, currency model.Currency) Builder {
	return Builder{symbol: symbol, currency: currency}
}

// BlockTxs buckets every edge by address and height. Nothing is filtered:
// zero values and empty or pseudo addresses keep their own entries.
func (b Builder) BlockTxs(inputs, outputs []Edge) model.BlockTxs {
	out := model.NewBlockTxs()
	for _, e := range inputs {
		out.AddOutgoing(e.Address, b.entry(e))
	}
	for _, e := range outputs {
		out.AddIncoming(e.Address, b.entry(e))
	}
	return out
}

// Transaction builds a transaction from its edges. Inputs become transfers
// with an empty To, outputs transfers with an empty From.
// Fees are inputs minus outputs when inputs are known and the difference is not negative.
func (b Builder) Transaction(hash string, inputs, outputs []Edge, head int64) model.Transaction {
	tx := model.Transaction{
		Hash:      hash,
		Success:   len(inputs)+len(outputs) > 0,
		Transfers: make([]model.Transfer, 0, len(inputs)+len(outputs)),
	}
	spent, received := decimal.Zero, decimal.Zero
	for _, e := range inputs {
		tx.Transfers = append(tx.Transfers, b.transfer(e.Address, "", e.Value))
		spent = spent.Add(e.Value)
		b.stamp(&tx, e)
	}
	for _, e := range outputs {
		tx.Transfers = append(tx.Transfers, b.transfer("", e.Address, e.Value))
		received = received.Add(e.Value)
		b.stamp(&tx, e)
	}
	if len(inputs) > 0 && !spent.IsZero() && spent.GreaterThanOrEqual(received) {
		tx.Fees = decimal.NewNullDecimal(spent.Sub(received))
	}
	tx.Confirmations = model.Confirmations(head, tx.Block)
	return tx
}

// AddressTxs nets the edges of address per transaction: outputs to address
// minus inputs from it. Entries follow the first appearance of each hash.
func (b Builder) AddressTxs(address string, inputs, outputs []Edge, head int64) []model.AddressTx {
	var order []string
	byHash := map[string]*model.AddressTx{}
	add := func(e Edge, value decimal.Decimal) {
		if e.Address != address {
			return
		}
		entry, ok := byHash[e.TxHash]
		if !ok {
			entry = &model.AddressTx{
				Address:  address,
				Hash:     e.TxHash,
				Block:    e.Height,
				Value:    decimal.Zero,
				Symbol:   b.symbol,
				Currency: b.currency,
			}
			byHash[e.TxHash] = entry
			order = append(order, e.TxHash)
		}
		if entry.Timestamp.IsZero() {
			entry.Timestamp = e.Time
		}
		entry.Value = entry.Value.Add(value)
	}
	for _, e := range inputs {
		add(e, e.Value.Neg())
	}
	for _, e := range outputs {
		add(e, e.Value)
	}

	out := make([]model.AddressTx, 0, len(order))
	for _, hash := range order {
		entry := byHash[hash]
		entry.Confirmations = model.Confirmations(head, entry.Block)
		if entry.Value.IsNegative() {
			entry.Direction = model.Outgoing
			entry.From = address
		} else {
			entry.Direction = model.Incoming
			entry.To = address
		}
		out = append(out, *entry)
	}
	return out
}

func (b Builder) entry(e Edge) model.TxEntry {
	return model.TxEntry{
		TxHash:      e.TxHash,
		Value:       e.Value,
		BlockHeight: e.Height,
		Symbol:      b.symbol,
	}
}

func (b Builder) transfer(from, to string, value decimal.Decimal) model.Transfer {
	return model.Transfer{
		Type:     model.MainCoin,
		Symbol:   b.symbol,
		Currency: b.currency,
		From:     from,
		To:       to,
		Value:    value,
		IsValid:  true,
	}
}

func (b Builder) stamp(tx *model.Transaction, e Edge) {
	if tx.Block == 0 {
		tx.Block = e.Height
	}
	if tx.Date.IsZero() && !e.Time.IsZero() {
		tx.Date = e.Time.UTC()
	}
}
