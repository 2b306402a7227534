package explorer

import (
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
)

// Aggregation selects how tx details transfers are merged.
type Aggregation string

const (
	AggregateNone    Aggregation = ""
	AggregateAccount Aggregation = "account"
	AggregateMemo    Aggregation = "memo"
	AggregateUTXO    Aggregation = "utxo"
)

func (a Aggregation) validate() error {
	switch a {
	case AggregateNone, AggregateAccount, AggregateMemo, AggregateUTXO:
		return nil
	}
	return fmt.Errorf("unknown aggregation %q", a)
}

// apply merges the transfers of tx and drops transfers whose sender is the receiver.
func (a Aggregation) apply(tx model.Transaction) model.Transaction {
	if !tx.Success || len(tx.Transfers) == 0 {
		return tx
	}
	transfers := tx.Transfers
	switch a {
	case AggregateAccount:
		transfers = aggregateAccount(transfers)
	case AggregateMemo:
		if tx.Memo != "" {
			transfers = aggregateAccount(transfers)
		}
	case AggregateUTXO:
		transfers = aggregateUTXO(transfers)
	}

	out := make([]model.Transfer, 0, len(transfers))
	for _, t := range transfers {
		if t.From == t.To {
			continue
		}
		out = append(out, t)
	}
	tx.Transfers = out
	return tx
}

type accountKey struct {
	from, to, symbol, token string
}

// aggregateAccount sums transfers sharing sender, receiver and asset, in first-seen order.
func aggregateAccount(transfers []model.Transfer) []model.Transfer {
	index := map[accountKey]int{}
	out := make([]model.Transfer, 0, len(transfers))
	for _, t := range transfers {
		key := accountKey{from: t.From, to: t.To, symbol: t.Symbol, token: t.Token}
		if i, ok := index[key]; ok {
			out[i].Value = out[i].Value.Add(t.Value)
			continue
		}
		index[key] = len(out)
		out = append(out, t)
	}
	return out
}

// aggregateUTXO sums inputs per sender, then nets outputs against them.
// Outputs to addresses that never spent are summed per receiver. A sender
// whose net goes negative received more than it spent and becomes a receiver.
func aggregateUTXO(transfers []model.Transfer) []model.Transfer {
	senders := map[string]int{}
	var spent []model.Transfer
	for _, t := range transfers {
		if t.From == "" {
			continue
		}
		if i, ok := senders[t.From]; ok {
			spent[i].Value = spent[i].Value.Add(t.Value)
			continue
		}
		senders[t.From] = len(spent)
		t.To = ""
		spent = append(spent, t)
	}

	receivers := map[string]int{}
	var received []model.Transfer
	for _, t := range transfers {
		if t.To == "" {
			continue
		}
		if i, ok := senders[t.To]; ok {
			spent[i].Value = spent[i].Value.Sub(t.Value)
			continue
		}
		if i, ok := receivers[t.To]; ok {
			received[i].Value = received[i].Value.Add(t.Value)
			continue
		}
		receivers[t.To] = len(received)
		t.From = ""
		received = append(received, t)
	}

	out := make([]model.Transfer, 0, len(spent)+len(received))
	for _, t := range append(spent, received...) {
		if t.Value.IsNegative() {
			t.Value = t.Value.Abs()
			t.From, t.To = "", t.From
		}
		out = append(out, t)
	}
	return out
}
