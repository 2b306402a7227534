package cosmos

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/chain"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
	"github.com/shopspring/decimal"
)

const (
	msgSend           = "/cosmos.bank.v1beta1.MsgSend"
	msgSendLegacy     = "cosmos-sdk/MsgSend"
	msgMultiSend      = "/cosmos.bank.v1beta1.MsgMultiSend"
	msgMultiLegacy    = "cosmos-sdk/MsgMultiSend"
	msgWithdraw       = "/cosmos.distribution.v1beta1.MsgWithdrawDelegatorReward"
	msgWithdrawLegacy = "cosmos-sdk/MsgWithdrawDelegationReward"
	withdrawEvent     = "withdraw_rewards"
	amountAttribute   = "amount"
)

var coinPattern = regexp.MustCompile(`^([0-9]+)([a-zA-Z][a-zA-Z0-9/:._-]*)$`)

// Mapper converts validated Cosmos payloads into canonical entities.
// It holds configuration only and is safe for concurrent use.
type Mapper struct {
	symbol   string
	currency model.Currency
	denom    string
	exponent int32
}

// NewMapper builds a Mapper for the main denom, e.g. uatom with exponent 6.
func NewMapper(symbol string, currency model.Currency, denom string, exponent int32) *Mapper {
	return &Mapper{symbol: symbol, currency: currency, denom: denom, exponent: exponent}
}

// BlockHead returns the head height of a validated payload.
func (m *Mapper) BlockHead(r *BlockResponse) int64 {
	height, _ := strconv.ParseInt(r.Block.Header.Height, 10, 64)
	return height
}

// Balance picks the main denom out of either balance shape.
// A missing or foreign denom yields a zero balance.
func (m *Mapper) Balance(address string, r *BalanceResponse) model.Balance {
	coins := r.Balances
	if r.Balance != nil {
		coins = []Coin{*r.Balance}
	}
	out := model.ZeroBalance(address, m.symbol, m.currency)
	for _, c := range coins {
		if c.Denom != m.denom {
			continue
		}
		amount, err := chain.ScaleInteger(c.Amount, m.exponent)
		if err != nil {
			continue
		}
		out.Balance = amount
		out.Received = amount
		return out
	}
	return out
}

// Rewards sums the pending main denom staking rewards.
func (m *Mapper) Rewards(r *RewardsResponse) decimal.Decimal {
	total := decimal.Zero
	for _, c := range r.Total {
		if c.Denom != m.denom {
			continue
		}
		amount, err := chain.ParseDecimal(c.Amount)
		if err != nil {
			continue
		}
		total = total.Add(amount.Shift(-m.exponent))
	}
	return total
}

// Delegated sums the main denom stake across validators.
// Delegations in other denoms are ignored.
func (m *Mapper) Delegated(r *DelegationsResponse) decimal.Decimal {
	total := decimal.Zero
	for _, d := range r.DelegationResponses {
		if d.Balance == nil || d.Balance.Denom != m.denom {
			continue
		}
		amount, err := chain.ScaleInteger(d.Balance.Amount, m.exponent)
		if err != nil {
			continue
		}
		total = total.Add(amount)
	}
	return total
}

// Transaction normalizes a validated tx details payload.
func (m *Mapper) Transaction(r *TxDetailsResponse, head int64) model.Transaction {
	env, _ := resolveEnvelope(r)
	return m.transaction(env, head)
}

// AddressTxs normalizes a tx search page into entries of address.
// Provider order is preserved; failed transactions and self transfers are skipped.
func (m *Mapper) AddressTxs(address string, r *TxsResponse, head int64, direction model.Direction) []model.AddressTx {
	out := make([]model.AddressTx, 0, len(r.TxResponses))
	for _, resp := range r.TxResponses {
		env := envelopeOf(resp)
		if !validEnvelope(env) {
			continue
		}
		tx := m.transaction(env, head)
		if !tx.Success {
			continue
		}
		for _, tr := range tx.Transfers {
			if !tr.IsValid || tr.Type != model.MainCoin {
				continue
			}
			entry, ok := entryFor(address, tx, tr)
			if !ok || !entry.Matches(direction) {
				continue
			}
			out = append(out, entry)
		}
	}
	return out
}

func entryFor(address string, tx model.Transaction, tr model.Transfer) (model.AddressTx, bool) {
	entry := model.AddressTx{
		Address:       address,
		Hash:          tx.Hash,
		Block:         tx.Block,
		Timestamp:     tx.Date,
		Tag:           tx.Memo,
		From:          tr.From,
		To:            tr.To,
		Symbol:        tr.Symbol,
		Currency:      tr.Currency,
		Confirmations: tx.Confirmations,
	}
	switch {
	case tr.From == tr.To:
		return model.AddressTx{}, false
	case tr.To == address:
		entry.Direction = model.Incoming
		entry.Value = tr.Value
	case tr.From == address:
		entry.Direction = model.Outgoing
		entry.Value = tr.Value.Neg()
	default:
		return model.AddressTx{}, false
	}
	return entry, true
}

func (m *Mapper) transaction(env envelope, head int64) model.Transaction {
	tx := model.Failed(env.hash)
	tx.Block, _ = strconv.ParseInt(env.height, 10, 64)
	tx.Confirmations = model.Confirmations(head, tx.Block)
	if ts, err := time.Parse(time.RFC3339, env.timestamp); err == nil {
		tx.Date = ts.UTC()
	}
	if env.tx.Body != nil {
		tx.Memo = env.tx.Body.Memo
	}
	if env.code == nil || *env.code != 0 {
		return tx
	}

	tx.Success = true
	tx.Fees = m.fees(env.tx.AuthInfo)
	for i, msg := range env.tx.Body.Messages {
		tx.Transfers = append(tx.Transfers, m.transfers(msg, logFor(env.logs, i))...)
	}
	return tx
}

func (m *Mapper) fees(auth *AuthInfo) decimal.NullDecimal {
	if auth == nil || auth.Fee == nil {
		return decimal.NullDecimal{}
	}
	total := decimal.Zero
	for _, c := range auth.Fee.Amount {
		if c.Denom != m.denom {
			continue
		}
		amount, err := chain.ScaleInteger(c.Amount, m.exponent)
		if err != nil {
			return decimal.NullDecimal{}
		}
		total = total.Add(amount)
	}
	return decimal.NewNullDecimal(total)
}

// transfers returns nothing for unknown or malformed messages.
func (m *Mapper) transfers(msg Message, log *MessageLog) []model.Transfer {
	kind := msg.Type
	if kind == "" {
		kind = msg.LegacyType
	}
	switch kind {
	case msgSend, msgSendLegacy:
		var coins []Coin
		if msg.FromAddress == "" || msg.ToAddress == "" || json.Unmarshal(msg.Amount, &coins) != nil {
			return nil
		}
		return m.coinTransfers(msg.FromAddress, msg.ToAddress, coins)
	case msgMultiSend, msgMultiLegacy:
		if len(msg.Inputs) != 1 || msg.Inputs[0].Address == "" {
			return nil
		}
		var out []model.Transfer
		for _, o := range msg.Outputs {
			if o.Address == "" {
				continue
			}
			out = append(out, m.coinTransfers(msg.Inputs[0].Address, o.Address, o.Coins)...)
		}
		return out
	case msgWithdraw, msgWithdrawLegacy:
		if msg.DelegatorAddress == "" || msg.ValidatorAddress == "" || log == nil {
			return nil
		}
		coins := withdrawnCoins(log)
		return m.coinTransfers(msg.ValidatorAddress, msg.DelegatorAddress, coins)
	}
	return nil
}

func (m *Mapper) coinTransfers(from, to string, coins []Coin) []model.Transfer {
	out := make([]model.Transfer, 0, len(coins))
	for _, c := range coins {
		if c.Denom == "" || c.Amount == "" {
			continue
		}
		tr := model.Transfer{
			Type:     model.MainCoin,
			Symbol:   m.symbol,
			Currency: m.currency,
			From:     from,
			To:       to,
			IsValid:  true,
		}
		if c.Denom == m.denom {
			amount, err := chain.ScaleInteger(c.Amount, m.exponent)
			if err != nil {
				continue
			}
			tr.Value = amount
		} else {
			amount, err := chain.ParseDecimal(c.Amount)
			if err != nil {
				continue
			}
			tr.Type = model.Token
			tr.Symbol = c.Denom
			tr.Currency = model.Currency(c.Denom)
			tr.Token = c.Denom
			tr.Value = amount
			tr.IsValid = false
		}
		out = append(out, tr)
	}
	return out
}

func logFor(logs []MessageLog, index int) *MessageLog {
	for i := range logs {
		if logs[i].MsgIndex == index {
			return &logs[i]
		}
	}
	return nil
}

func withdrawnCoins(log *MessageLog) []Coin {
	var coins []Coin
	for _, ev := range log.Events {
		if ev.Type != withdrawEvent {
			continue
		}
		for _, attr := range ev.Attributes {
			if attr.Key != amountAttribute {
				continue
			}
			coins = append(coins, parseCoins(attr.Value)...)
		}
	}
	return coins
}

// parseCoins reads the "123uatom,4ibc/ABC" event attribute form.
func parseCoins(s string) []Coin {
	var coins []Coin
	for _, part := range strings.Split(s, ",") {
		match := coinPattern.FindStringSubmatch(strings.TrimSpace(part))
		if match == nil {
			continue
		}
		coins = append(coins, Coin{Amount: match[1], Denom: match[2]})
	}
	return coins
}
