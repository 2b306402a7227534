package explorer

import (
	"context"
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-explorer/pkg/workerpool"
)

// GetBlockHead returns the latest block height.
func (e *Explorer) GetBlockHead(ctx context.Context) (int64, error) {
	return attempt(ctx, e, OpBlockHead, e.providers.Head, func(ctx context.Context, p HeadProvider) (int64, error) {
		return p.BlockHead(ctx)
	})
}

// GetTxDetails returns one transaction. A transaction that failed on chain
// is a regular result with Success false and no transfers.
func (e *Explorer) GetTxDetails(ctx context.Context, hash string) (model.Transaction, error) {
	return attempt(ctx, e, OpTxDetails, e.providers.TxDetails, func(ctx context.Context, p TxDetailsProvider) (model.Transaction, error) {
		head, err := p.BlockHead(ctx)
		if err != nil {
			return model.Transaction{}, err
		}
		tx, err := p.TxDetails(ctx, hash, head)
		if err != nil {
			return model.Transaction{}, err
		}
		return e.opts.Aggregation.apply(tx), nil
	})
}

// GetTxDetailsBatch returns transactions keyed by hash. The head is read once
// per provider attempt and every hash is served by the same provider.
func (e *Explorer) GetTxDetailsBatch(ctx context.Context, hashes []string) (map[string]model.Transaction, error) {
	if len(hashes) == 0 {
		return map[string]model.Transaction{}, nil
	}
	return attempt(ctx, e, OpTxDetailsBatch, e.providers.TxDetails, func(ctx context.Context, p TxDetailsProvider) (map[string]model.Transaction, error) {
		head, err := p.BlockHead(ctx)
		if err != nil {
			return nil, err
		}
		return workerpool.Collect(ctx, e.opts.Workers, hashes,
			func(hash string) string { return hash },
			func(ctx context.Context, hash string) (model.Transaction, error) {
				tx, err := p.TxDetails(ctx, hash, head)
				if err != nil {
					return model.Transaction{}, err
				}
				return e.opts.Aggregation.apply(tx), nil
			})
	})
}

// GetAddressTxs returns the native history of address in provider order,
// restricted to entries matching direction.
func (e *Explorer) GetAddressTxs(ctx context.Context, address string, direction model.Direction) ([]model.AddressTx, error) {
	return attempt(ctx, e, OpAddressTxs, e.providers.AddressTxs, func(ctx context.Context, p AddressTxsProvider) ([]model.AddressTx, error) {
		head, err := p.BlockHead(ctx)
		if err != nil {
			return nil, err
		}
		txs, err := p.AddressTxs(ctx, address, direction, head)
		if err != nil {
			return nil, err
		}
		return filterHistory(address, direction, txs), nil
	})
}

// GetTokenTxs returns the token history of address for contract.
func (e *Explorer) GetTokenTxs(ctx context.Context, address, contract string) ([]model.AddressTx, error) {
	return attempt(ctx, e, OpTokenTxs, e.providers.TokenTxs, func(ctx context.Context, p TokenTxsProvider) ([]model.AddressTx, error) {
		head, err := p.BlockHead(ctx)
		if err != nil {
			return nil, err
		}
		txs, err := p.TokenTxs(ctx, address, contract, head)
		if err != nil {
			return nil, err
		}
		return filterHistory(address, model.Unspecified, txs), nil
	})
}

// filterHistory drops entries that do not involve address, such as other
// legs of a multi-transfer transaction.
func filterHistory(address string, direction model.Direction, txs []model.AddressTx) []model.AddressTx {
	out := make([]model.AddressTx, 0, len(txs))
	for _, tx := range txs {
		if !strings.EqualFold(tx.From, address) && !strings.EqualFold(tx.To, address) {
			continue
		}
		if !tx.Matches(direction) {
			continue
		}
		out = append(out, tx)
	}
	return out
}
