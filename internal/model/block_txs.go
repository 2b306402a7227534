package model

import (
	"sort"

	"github.com/shopspring/decimal"
)

// TxEntry is one input or output edge seen in a block.
type TxEntry struct {
	TxHash          string          `json:"tx_hash"`
	Value           decimal.Decimal `json:"value"`
	BlockHeight     int64           `json:"block_height"`
	Symbol          string          `json:"symbol"`
	ContractAddress string          `json:"contract_address,omitempty"`
}

// TxBuckets maps address to block height to the entries recorded there.
type TxBuckets map[string]map[int64][]TxEntry

// BlockTxs is the address activity of a block range.
// Empty-string and pseudo addresses are kept as regular keys.
type BlockTxs struct {
	InputAddresses  map[string]struct{}
	OutputAddresses map[string]struct{}
	Outgoing        TxBuckets
	Incoming        TxBuckets
}

// NewBlockTxs returns an empty BlockTxs ready for Add calls.
func NewBlockTxs() BlockTxs {
	return BlockTxs{
		InputAddresses:  map[string]struct{}{},
		OutputAddresses: map[string]struct{}{},
		Outgoing:        TxBuckets{},
		Incoming:        TxBuckets{},
	}
}

// AddOutgoing records an entry spent by address.
func (b BlockTxs) AddOutgoing(address string, entry TxEntry) {
	if address != "" {
		b.InputAddresses[address] = struct{}{}
	}
	b.Outgoing.add(address, entry)
}

// AddIncoming records an entry received by address.
func (b BlockTxs) AddIncoming(address string, entry TxEntry) {
	if address != "" {
		b.OutputAddresses[address] = struct{}{}
	}
	b.Incoming.add(address, entry)
}

// Merge appends every entry of other into b.
func (b BlockTxs) Merge(other BlockTxs) {
	for addr := range other.InputAddresses {
		b.InputAddresses[addr] = struct{}{}
	}
	for addr := range other.OutputAddresses {
		b.OutputAddresses[addr] = struct{}{}
	}
	for addr, heights := range other.Outgoing {
		for _, entries := range heights {
			for _, e := range entries {
				b.Outgoing.add(addr, e)
			}
		}
	}
	for addr, heights := range other.Incoming {
		for _, entries := range heights {
			for _, e := range entries {
				b.Incoming.add(addr, e)
			}
		}
	}
}

func (t TxBuckets) add(address string, entry TxEntry) {
	heights, ok := t[address]
	if !ok {
		heights = map[int64][]TxEntry{}
		t[address] = heights
	}
	heights[entry.BlockHeight] = append(heights[entry.BlockHeight], entry)
}

// Sorted returns the members of an address set in lexical order.
func Sorted(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for addr := range set {
		out = append(out, addr)
	}
	sort.Strings(out)
	return out
}
