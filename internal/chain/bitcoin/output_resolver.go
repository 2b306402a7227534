package bitcoin

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/shopspring/decimal"
)

type output struct {
	address string
	value   decimal.Decimal
}

// outputResolver looks up the outputs spent by inputs. Results are cached for
// the lifetime of the resolver, so one resolver serves one provider call.
type outputResolver struct {
	rpc     RPCClient
	decoder *scriptDecoder
	cache   map[string][]output
}

func newOutputResolver(rpc RPCClient, decoder *scriptDecoder) *outputResolver {
	return &outputResolver{rpc: rpc, decoder: decoder, cache: map[string][]output{}}
}

// add caches the outputs of a transaction already at hand.
func (r *outputResolver) add(tx btcjson.TxRawResult) ([]output, error) {
	if outs, ok := r.cache[tx.Txid]; ok {
		return outs, nil
	}
	outs := make([]output, len(tx.Vout))
	for _, vout := range tx.Vout {
		if int(vout.N) >= len(outs) {
			return nil, fmt.Errorf("tx %s output index %d out of range", tx.Txid, vout.N)
		}
		value, err := BtcToDecimal(vout.Value)
		if err != nil {
			return nil, fmt.Errorf("tx %s output %d value: %w", tx.Txid, vout.N, err)
		}
		address, err := r.decoder.address(tx.Txid, vout)
		if err != nil {
			return nil, fmt.Errorf("decode address for tx %s output %d: %w", tx.Txid, vout.N, err)
		}
		if address == "d-"+tx.Txid {
			value = decimal.Zero
		}
		outs[vout.N] = output{address: address, value: value}
	}
	r.cache[tx.Txid] = outs
	return outs, nil
}

// resolveBatch fetches every distinct previous transaction not cached yet.
func (r *outputResolver) resolveBatch(ctx context.Context, txids []string) error {
	seen := make(map[string]struct{}, len(txids))
	for _, txid := range txids {
		if _, dup := seen[txid]; dup {
			continue
		}
		seen[txid] = struct{}{}
		if _, ok := r.cache[txid]; ok {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		hash, err := chainhash.NewHashFromStr(txid)
		if err != nil {
			return fmt.Errorf("parse txid %s: %w", txid, err)
		}
		tx, err := r.rpc.GetRawTransactionVerbose(hash)
		if err != nil {
			return fmt.Errorf("get previous tx %s: %w", txid, err)
		}
		if !ValidTx(tx) {
			return fmt.Errorf("previous tx %s: invalid response", txid)
		}
		if _, err := r.add(*tx); err != nil {
			return err
		}
	}
	return nil
}

// spent returns the output consumed by vin.
func (r *outputResolver) spent(vin btcjson.Vin) (output, error) {
	outs, ok := r.cache[vin.Txid]
	if !ok || int(vin.Vout) >= len(outs) {
		return output{}, fmt.Errorf("previous output %s:%d not resolved", vin.Txid, vin.Vout)
	}
	return outs[vin.Vout], nil
}
