package oklink

import (
	"strconv"
	"strings"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/chain"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
	"github.com/shopspring/decimal"
)

// TokenInfo describes a tracked token contract. Amounts of a token with a
// Scale are divided by it, others are taken as reported.
type TokenInfo struct {
	Address  string
	Symbol   string
	Currency model.Currency
	Scale    string
}

// Mapper turns explorer payloads into canonical records of one EVM chain.
type Mapper struct {
	symbol   string
	currency model.Currency
	filter   recordFilter
}

// NewMapper builds a Mapper for the native coin. Records below minValue are dropped.
func NewMapper(symbol string, currency model.Currency, minValue decimal.Decimal) *Mapper {
	return &Mapper{symbol: symbol, currency: currency, filter: recordFilter{minValue: minValue}}
}

// BlockHead reads data[0].blockList[0].height.
func (m *Mapper) BlockHead(r *Response[BlockList]) int64 {
	h, _ := strconv.ParseInt(r.Data[0].BlockList[0].Height, 10, 64)
	return h
}

// Balances keys the reported balances by address and emits them in request order.
// Addresses the explorer omits get a zero balance.
func (m *Mapper) Balances(addresses []string, r *Response[Balances]) []model.Balance {
	byAddress := make(map[string]decimal.Decimal, len(r.Data[0].BalanceList))
	for _, b := range r.Data[0].BalanceList {
		v, err := chain.ParseDecimal(b.Balance)
		if err != nil {
			continue
		}
		byAddress[strings.ToLower(b.Address)] = v
	}
	out := make([]model.Balance, 0, len(addresses))
	for _, address := range addresses {
		bal := model.ZeroBalance(address, m.symbol, m.currency)
		if v, ok := byAddress[strings.ToLower(address)]; ok {
			bal.Balance = v
			bal.Received = v
		}
		out = append(out, bal)
	}
	return out
}

// TokenBalance maps the holding of address in token. Holdings of other
// contracts are ignored and an empty list is a zero balance.
func (m *Mapper) TokenBalance(address string, token TokenInfo, r *Response[TokenBalance]) model.Balance {
	out := token.zeroBalance(address)
	for _, h := range r.Data[0].TokenList {
		if h.TokenContractAddress != "" && !strings.EqualFold(h.TokenContractAddress, token.Address) {
			continue
		}
		if v, err := token.value(h.HoldingAmount); err == nil {
			out.Balance = v
			out.Received = v
		}
		break
	}
	return out
}

// TokenBalances keys the holdings of token by address and emits them in
// request order. Contracts are matched case-insensitively; addresses without
// a holding get a zero balance.
func (m *Mapper) TokenBalances(addresses []string, token TokenInfo, r *Response[TokenBalances]) []model.Balance {
	byAddress := make(map[string]decimal.Decimal, len(addresses))
	for _, h := range r.Data[0].BalanceList {
		if !strings.EqualFold(h.TokenContractAddress, token.Address) {
			continue
		}
		v, err := token.value(h.HoldingAmount)
		if err != nil {
			continue
		}
		byAddress[strings.ToLower(h.Address)] = v
	}
	out := make([]model.Balance, 0, len(addresses))
	for _, address := range addresses {
		bal := token.zeroBalance(address)
		if v, ok := byAddress[strings.ToLower(address)]; ok {
			bal.Balance = v
			bal.Received = v
		}
		out = append(out, bal)
	}
	return out
}

// Transaction maps the fills of one transaction.
func (m *Mapper) Transaction(r *Response[TxFills], head int64) model.Transaction {
	tx := r.Data[0]
	height := parseHeight(tx.Height)
	out := model.Transaction{
		Hash:          tx.TxID,
		Success:       tx.State == "success",
		Block:         height,
		Date:          parseTime(tx.TransactionTime),
		Transfers:     []model.Transfer{},
		Confirmations: model.Confirmations(head, height),
	}
	if fee, err := chain.ParseDecimal(tx.TxFee); err == nil && tx.TxFee != "" {
		out.Fees = decimal.NewNullDecimal(fee)
	}
	if !out.Success {
		return out
	}

	if tx.MethodID == transferMethodID {
		d := tx.TokenTransferDetails[0]
		value, err := chain.ParseDecimal(d.Amount)
		if err != nil {
			return out
		}
		out.Transfers = append(out.Transfers, model.Transfer{
			Type:     model.Token,
			Symbol:   d.Symbol,
			Currency: model.Currency(strings.ToLower(d.Symbol)),
			From:     d.From,
			To:       d.To,
			Value:    value,
			Token:    d.TokenContractAddress,
			IsValid:  true,
		})
		return out
	}

	value, err := chain.ParseDecimal(tx.Amount)
	if err != nil {
		return out
	}
	out.Transfers = append(out.Transfers, model.Transfer{
		Type:     model.MainCoin,
		Symbol:   m.symbol,
		Currency: m.currency,
		From:     tx.InputDetails[0].InputHash,
		To:       tx.OutputDetails[0].OutputHash,
		Value:    value,
		IsValid:  true,
	})
	return out
}

// AddressTxs maps native transaction list records of address.
func (m *Mapper) AddressTxs(address string, r *Response[TransactionPage], head int64, direction model.Direction) []model.AddressTx {
	var out []model.AddressTx
	for _, t := range r.Data[0].TransactionLists {
		if !m.filter.native(t) || t.ChallengeStatus != "" {
			continue
		}
		value, err := chain.ParseDecimal(t.Amount)
		if err != nil {
			continue
		}
		entry, ok := m.entry(address, t, value, head)
		if !ok || !entry.Matches(direction) {
			continue
		}
		entry.Symbol = m.symbol
		entry.Currency = m.currency
		out = append(out, entry)
	}
	return out
}

// TokenTxs maps token transfer records of address for one contract.
func (m *Mapper) TokenTxs(address string, token TokenInfo, r *Response[TransactionPage], head int64) []model.AddressTx {
	var out []model.AddressTx
	for _, t := range r.Data[0].TransactionLists {
		if !m.filter.token(t, token.Address) {
			continue
		}
		value, err := token.value(t.Amount)
		if err != nil {
			continue
		}
		entry, ok := m.entry(address, t, value, head)
		if !ok {
			continue
		}
		entry.Symbol = token.Symbol
		entry.Currency = token.Currency
		entry.Token = token.Address
		out = append(out, entry)
	}
	return out
}

// BlockTxs buckets the native transfers of one block.
func (m *Mapper) BlockTxs(r *Response[BlockTransactions]) model.BlockTxs {
	out := model.NewBlockTxs()
	for _, t := range r.Data[0].BlockList {
		if !m.filter.native(t) {
			continue
		}
		value, err := chain.ParseDecimal(t.Amount)
		if err != nil {
			continue
		}
		entry := model.TxEntry{
			TxHash:      t.hash(),
			Value:       value,
			BlockHeight: parseHeight(t.Height),
			Symbol:      m.symbol,
		}
		out.AddOutgoing(strings.ToLower(t.From), entry)
		out.AddIncoming(strings.ToLower(t.To), entry)
	}
	return out
}

func (m *Mapper) entry(address string, t Transaction, value decimal.Decimal, head int64) (model.AddressTx, bool) {
	height := parseHeight(t.Height)
	entry := model.AddressTx{
		Address:       address,
		Hash:          t.hash(),
		Block:         height,
		Timestamp:     parseTime(t.TransactionTime),
		From:          t.From,
		To:            t.To,
		Confirmations: model.Confirmations(head, height),
	}
	switch {
	case strings.EqualFold(t.To, address):
		entry.Direction = model.Incoming
		entry.Value = value
	case strings.EqualFold(t.From, address):
		entry.Direction = model.Outgoing
		entry.Value = value.Neg()
	default:
		// Neither side is the queried address, e.g. a contract internal
		// record; a balance change cannot be attributed to it.
		return model.AddressTx{}, false
	}
	return entry, true
}

func (t TokenInfo) zeroBalance(address string) model.Balance {
	b := model.ZeroBalance(address, t.Symbol, t.Currency)
	b.Token = t.Address
	return b
}

func (t TokenInfo) value(raw string) (decimal.Decimal, error) {
	amount, err := chain.ParseDecimal(raw)
	if err != nil || t.Scale == "" {
		return amount, err
	}
	scale, err := chain.ParseDecimal(t.Scale)
	if err != nil || scale.IsZero() {
		return amount, err
	}
	return amount.Div(scale), nil
}

func parseHeight(raw string) int64 {
	h, _ := strconv.ParseInt(raw, 10, 64)
	return h
}

// parseTime reads millisecond unix timestamps.
func parseTime(raw string) time.Time {
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
