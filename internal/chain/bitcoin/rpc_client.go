package bitcoin

import (
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/chain"
)

// ObservedClient instruments every node call and reports failures as network errors.
type ObservedClient struct {
	provider   string
	client     RPCClient
	rpcMetrics RPCMetrics
}

// NewObservedClient wraps client, usually a *rpcclient.Client.
func NewObservedClient(provider string, client RPCClient, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		provider:   provider,
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

// GetBlockCount returns the latest block count.
func (r *ObservedClient) GetBlockCount() (count int64, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_count", err, started)
	}()
	count, err = r.client.GetBlockCount()
	return count, r.wrap("get_block_count", err)
}

// GetBlockHash returns the block hash for a height.
func (r *ObservedClient) GetBlockHash(blockHeight int64) (hash *chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_hash", err, started)
	}()
	hash, err = r.client.GetBlockHash(blockHeight)
	return hash, r.wrap("get_block_hash", err)
}

// GetBlockVerboseTx returns a verbose block with transactions.
func (r *ObservedClient) GetBlockVerboseTx(blockHash *chainhash.Hash) (res *btcjson.GetBlockVerboseTxResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_verbose_tx", err, started)
	}()
	res, err = r.client.GetBlockVerboseTx(blockHash)
	return res, r.wrap("get_block_verbose_tx", err)
}

// GetRawTransactionVerbose returns a decoded transaction.
func (r *ObservedClient) GetRawTransactionVerbose(txHash *chainhash.Hash) (res *btcjson.TxRawResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_raw_transaction_verbose", err, started)
	}()
	res, err = r.client.GetRawTransactionVerbose(txHash)
	return res, r.wrap("get_raw_transaction_verbose", err)
}

func (r *ObservedClient) wrap(operation string, err error) error {
	if err == nil {
		return nil
	}
	return &chain.NetworkError{Provider: r.provider, Operation: operation, Err: err}
}
