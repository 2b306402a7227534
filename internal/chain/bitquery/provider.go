package bitquery

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/chain"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
)

// Provider validates and maps GraphQL indexer responses for the explorer.
type Provider struct {
	name      string
	batchSize int
	client    *Client
	validator Validator
	mapper    *Mapper
}

// NewProvider builds a Provider. batchSize bounds addresses per balance query.
func NewProvider(name string, client *Client, validator Validator, mapper *Mapper, batchSize int) *Provider {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &Provider{name: name, batchSize: batchSize, client: client, validator: validator, mapper: mapper}
}

// Name returns the configured provider name.
func (p *Provider) Name() string {
	return p.name
}

// MaxBatchSize bounds addresses per Balances call.
func (p *Provider) MaxBatchSize() int {
	return p.batchSize
}

// BatchBlocks reports that a whole height range is fetched in one query.
func (p *Provider) BatchBlocks() bool {
	return true
}

// BlockHead returns the latest block height.
func (p *Provider) BlockHead(ctx context.Context) (int64, error) {
	raw, err := p.client.BlockHead(ctx)
	if err != nil {
		return 0, err
	}
	if !p.validator.ValidBlockHead(raw) {
		return 0, chain.Invalid(p.name, "block_head")
	}
	return p.mapper.BlockHead(raw), nil
}

// Balances returns balances in request order.
func (p *Provider) Balances(ctx context.Context, addresses []string) ([]model.Balance, error) {
	raw, err := p.client.Balances(ctx, addresses)
	if err != nil {
		return nil, err
	}
	if !p.validator.ValidBalances(raw) {
		return nil, chain.Invalid(p.name, "balances")
	}
	return p.mapper.Balances(addresses, raw), nil
}

// BlockTxs returns the address activity of heights from..to inclusive.
func (p *Provider) BlockTxs(ctx context.Context, from, to int64) (model.BlockTxs, error) {
	raw, err := p.client.BlockTxs(ctx, from, to)
	if err != nil {
		return model.BlockTxs{}, err
	}
	if !p.validator.ValidBlockTxs(raw) {
		return model.BlockTxs{}, chain.Invalid(p.name, "block_txs")
	}
	return p.mapper.BlockTxs(raw), nil
}

// TxDetails returns the transaction built from its edges.
func (p *Provider) TxDetails(ctx context.Context, hash string, head int64) (model.Transaction, error) {
	raw, err := p.client.TxDetails(ctx, hash)
	if err != nil {
		return model.Transaction{}, err
	}
	if !p.validator.ValidTxDetails(raw) {
		return model.Transaction{}, chain.Invalid(p.name, "tx_details")
	}
	return p.mapper.Transaction(hash, raw, head), nil
}

// AddressTxs returns net entries of address per transaction.
func (p *Provider) AddressTxs(ctx context.Context, address string, direction model.Direction, head int64) ([]model.AddressTx, error) {
	raw, err := p.client.AddressTxs(ctx, address)
	if err != nil {
		return nil, err
	}
	if !p.validator.ValidAddressTxs(raw) {
		return nil, chain.Invalid(p.name, "address_txs")
	}
	return p.mapper.AddressTxs(address, raw, head, direction), nil
}
