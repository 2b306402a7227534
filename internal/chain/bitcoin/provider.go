package bitcoin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/chain"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/chain/utxo"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-explorer/pkg/safe"
)

// Provider reads blocks and transactions straight from a node.
type Provider struct {
	name    string
	rpc     RPCClient
	decoder *scriptDecoder
	builder utxo.Builder
}

// NewProvider builds a Provider for network, one of mainnet, testnet, regtest or signet.
func NewProvider(name string, rpc RPCClient, network, symbol string, currency model.Currency) (*Provider, error) {
	if rpc == nil {
		return nil, errors.New("rpc client is required")
	}
	decoder, err := newScriptDecoder(network)
	if err != nil {
		return nil, err
	}
	return &Provider{
		name:    name,
		rpc:     rpc,
		decoder: decoder,
		builder: utxo.NewBuilder(symbol, currency),
	}, nil
}

// Name returns the configured provider name.
func (p *Provider) Name() string {
	return p.name
}

// BatchBlocks reports that a whole range is served by one call, sharing the output cache.
func (p *Provider) BatchBlocks() bool {
	return true
}

// BlockHead returns the latest block height.
func (p *Provider) BlockHead(_ context.Context) (int64, error) {
	return p.rpc.GetBlockCount()
}

// BlockTxs buckets the edges of every block in [from, to].
func (p *Provider) BlockTxs(ctx context.Context, from, to int64) (model.BlockTxs, error) {
	resolver := newOutputResolver(p.rpc, p.decoder)
	var inputs, outputs []utxo.Edge
	for height := from; height <= to; height++ {
		if err := ctx.Err(); err != nil {
			return model.BlockTxs{}, err
		}
		block, err := p.fetchBlock(height)
		if err != nil {
			return model.BlockTxs{}, err
		}
		at := time.Unix(block.Time, 0).UTC()
		for _, tx := range block.Tx {
			if _, err := resolver.add(tx); err != nil {
				return model.BlockTxs{}, err
			}
		}
		for _, tx := range block.Tx {
			in, out, err := p.edges(ctx, resolver, tx, block.Height, at)
			if err != nil {
				return model.BlockTxs{}, err
			}
			inputs = append(inputs, in...)
			outputs = append(outputs, out...)
		}
	}
	return p.builder.BlockTxs(inputs, outputs), nil
}

// TxDetails returns the transaction with confirmations against head.
func (p *Provider) TxDetails(ctx context.Context, hash string, head int64) (model.Transaction, error) {
	txHash, err := chainhash.NewHashFromStr(hash)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parse tx hash %s: %w", hash, err)
	}
	tx, err := p.rpc.GetRawTransactionVerbose(txHash)
	if err != nil {
		return model.Transaction{}, err
	}
	if !ValidTx(tx) {
		return model.Transaction{}, chain.Invalid(p.name, "tx_details")
	}

	height, err := p.height(tx.Confirmations, head)
	if err != nil {
		return model.Transaction{}, err
	}
	resolver := newOutputResolver(p.rpc, p.decoder)
	if _, err := resolver.add(*tx); err != nil {
		return model.Transaction{}, err
	}
	var at time.Time
	if tx.Blocktime > 0 {
		at = time.Unix(tx.Blocktime, 0).UTC()
	}
	inputs, outputs, err := p.edges(ctx, resolver, *tx, height, at)
	if err != nil {
		return model.Transaction{}, err
	}
	return p.builder.Transaction(tx.Txid, inputs, outputs, head), nil
}

func (p *Provider) fetchBlock(height int64) (*btcjson.GetBlockVerboseTxResult, error) {
	hash, err := p.rpc.GetBlockHash(height)
	if err != nil {
		return nil, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	block, err := p.rpc.GetBlockVerboseTx(hash)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}
	if !ValidBlock(block) {
		return nil, chain.Invalid(p.name, "block_txs")
	}
	return block, nil
}

// edges maps the inputs and outputs of tx. Coinbase inputs become an edge
// with an empty address and zero value.
func (p *Provider) edges(ctx context.Context, resolver *outputResolver, tx btcjson.TxRawResult, height int64, at time.Time) ([]utxo.Edge, []utxo.Edge, error) {
	prev := make([]string, 0, len(tx.Vin))
	for _, vin := range tx.Vin {
		if !vin.IsCoinBase() {
			prev = append(prev, vin.Txid)
		}
	}
	if err := resolver.resolveBatch(ctx, prev); err != nil {
		return nil, nil, err
	}

	edge := func(address string, o output) utxo.Edge {
		return utxo.Edge{Address: address, TxHash: tx.Txid, Height: height, Time: at, Value: o.value}
	}

	inputs := make([]utxo.Edge, 0, len(tx.Vin))
	for _, vin := range tx.Vin {
		if vin.IsCoinBase() {
			inputs = append(inputs, edge("", output{}))
			continue
		}
		spent, err := resolver.spent(vin)
		if err != nil {
			return nil, nil, err
		}
		inputs = append(inputs, edge(spent.address, spent))
	}

	outs, err := resolver.add(tx)
	if err != nil {
		return nil, nil, err
	}
	outputs := make([]utxo.Edge, 0, len(outs))
	for _, o := range outs {
		outputs = append(outputs, edge(o.address, o))
	}
	return inputs, outputs, nil
}

// height derives the block of a transaction from its confirmations; zero means unconfirmed.
func (p *Provider) height(confirmations uint64, head int64) (int64, error) {
	if confirmations == 0 {
		return 0, nil
	}
	conf, err := safe.Int64(confirmations)
	if err != nil {
		return 0, fmt.Errorf("confirmations overflow: %w", err)
	}
	if conf > head+1 {
		return 0, nil
	}
	return head - conf + 1, nil
}
