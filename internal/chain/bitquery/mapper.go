package bitquery

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/chain"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/chain/utxo"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
	"github.com/shopspring/decimal"
)

// Mapper converts validated GraphQL payloads into canonical entities.
type Mapper struct {
	chain    string
	symbol   string
	currency model.Currency
	builder  utxo.Builder
}

// NewMapper returns a Mapper reading data.<chain>.
func NewMapper(chain, symbol string, currency model.Currency) *Mapper {
	return &Mapper{
		chain:    chain,
		symbol:   symbol,
		currency: currency,
		builder:  utxo.NewBuilder(symbol, currency),
	}
}

// BlockHead returns the height of the first block.
func (m *Mapper) BlockHead(r *Response) int64 {
	return r.Data[m.chain].Blocks[0].Height
}

// Balances matches records by their address field and emits them in request order.
// Addresses missing from the response get a zero balance.
func (m *Mapper) Balances(addresses []string, r *Response) []model.Balance {
	byAddress := make(map[string]decimal.Decimal, len(r.Data[m.chain].AddressStats))
	for _, stat := range r.Data[m.chain].AddressStats {
		if stat.Address == nil || stat.Address.Address == "" {
			continue
		}
		amount, err := chain.NumberToDecimal(stat.Address.Balance)
		if err != nil {
			continue
		}
		byAddress[stat.Address.Address] = amount
	}

	out := make([]model.Balance, 0, len(addresses))
	for _, address := range addresses {
		b := model.ZeroBalance(address, m.symbol, m.currency)
		if amount, ok := byAddress[address]; ok {
			b.Balance = amount
			b.Received = amount
		}
		out = append(out, b)
	}
	return out
}

// BlockTxs buckets every input and output edge.
func (m *Mapper) BlockTxs(r *Response) model.BlockTxs {
	inputs, outputs := m.edges(r)
	return m.builder.BlockTxs(inputs, outputs)
}

// Transaction builds the transaction of hash from its edges.
func (m *Mapper) Transaction(hash string, r *Response, head int64) model.Transaction {
	inputs, outputs := m.edges(r)
	return m.builder.Transaction(hash, inputs, outputs, head)
}

// AddressTxs nets the edges of address per transaction.
func (m *Mapper) AddressTxs(address string, r *Response, head int64, direction model.Direction) []model.AddressTx {
	inputs, outputs := m.edges(r)
	entries := m.builder.AddressTxs(address, inputs, outputs, head)
	out := entries[:0]
	for _, e := range entries {
		if e.Matches(direction) {
			out = append(out, e)
		}
	}
	return out
}

// edges skips records without a block or transaction; empty addresses are kept.
func (m *Mapper) edges(r *Response) (inputs, outputs []utxo.Edge) {
	c := r.Data[m.chain]
	inputs = make([]utxo.Edge, 0, len(c.Inputs))
	for _, in := range c.Inputs {
		var addr string
		if in.InputAddress != nil {
			addr = in.InputAddress.Address
		}
		if e, ok := edge(addr, in.Block, in.Transaction, in.Value); ok {
			inputs = append(inputs, e)
		}
	}
	outputs = make([]utxo.Edge, 0, len(c.Outputs))
	for _, out := range c.Outputs {
		var addr string
		if out.OutputAddress != nil {
			addr = out.OutputAddress.Address
		}
		if e, ok := edge(addr, out.Block, out.Transaction, out.Value); ok {
			outputs = append(outputs, e)
		}
	}
	return inputs, outputs
}

func edge(address string, block *Block, tx *TransactionRef, value json.Number) (utxo.Edge, bool) {
	if block == nil || tx == nil || tx.Hash == "" {
		return utxo.Edge{}, false
	}
	amount, err := chain.NumberToDecimal(value)
	if err != nil {
		return utxo.Edge{}, false
	}
	e := utxo.Edge{
		Address: address,
		TxHash:  tx.Hash,
		Height:  block.Height,
		Value:   amount,
	}
	if block.Timestamp != nil {
		e.Time = parseTime(block.Timestamp.Time)
	}
	return e, true
}

var timeLayouts = []string{time.RFC3339, "2006-01-02 15:04:05"}

func parseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC()
		}
	}
	return time.Time{}
}
