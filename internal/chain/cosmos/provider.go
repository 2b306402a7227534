package cosmos

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/chain"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
	"github.com/shopspring/decimal"
)

// Provider validates and maps Cosmos node responses for the explorer.
type Provider struct {
	name   string
	denom  string
	client *Client
	mapper *Mapper
}

// NewProvider builds a Provider. denom is queried through the by_denom endpoint when set.
func NewProvider(name string, client *Client, mapper *Mapper, denom string) *Provider {
	return &Provider{name: name, client: client, mapper: mapper, denom: denom}
}

// Name returns the configured provider name.
func (p *Provider) Name() string {
	return p.name
}

// MaxBatchSize reports that balances are fetched one address per request.
func (p *Provider) MaxBatchSize() int {
	return 1
}

// BlockHead returns the latest block height.
func (p *Provider) BlockHead(ctx context.Context) (int64, error) {
	raw, err := p.client.BlockHead(ctx)
	if err != nil {
		return 0, err
	}
	if !ValidBlockHead(raw) {
		return 0, chain.Invalid(p.name, "block_head")
	}
	return p.mapper.BlockHead(raw), nil
}

// Balances returns one balance per address in request order.
func (p *Provider) Balances(ctx context.Context, addresses []string) ([]model.Balance, error) {
	out := make([]model.Balance, 0, len(addresses))
	for _, address := range addresses {
		raw, err := p.client.Balance(ctx, address, p.denom)
		if err != nil {
			return nil, err
		}
		if !ValidBalance(raw) {
			return nil, chain.Invalid(p.name, "balance")
		}
		out = append(out, p.mapper.Balance(address, raw))
	}
	return out, nil
}

// TxDetails returns the transaction with confirmations against head.
func (p *Provider) TxDetails(ctx context.Context, hash string, head int64) (model.Transaction, error) {
	raw, err := p.client.TxDetails(ctx, hash)
	if err != nil {
		return model.Transaction{}, err
	}
	if !ValidTxDetails(raw) {
		return model.Transaction{}, chain.Invalid(p.name, "tx_details")
	}
	return p.mapper.Transaction(raw, head), nil
}

// AddressTxs returns history entries of address. An unspecified direction
// issues both searches, incoming entries first.
func (p *Provider) AddressTxs(ctx context.Context, address string, direction model.Direction, head int64) ([]model.AddressTx, error) {
	directions := []model.Direction{direction}
	if direction == model.Unspecified {
		directions = []model.Direction{model.Incoming, model.Outgoing}
	}

	var out []model.AddressTx
	for _, d := range directions {
		raw, err := p.client.AddressTxs(ctx, address, d)
		if err != nil {
			return nil, err
		}
		if !ValidTxs(raw) {
			return nil, chain.Invalid(p.name, "address_txs")
		}
		out = append(out, p.mapper.AddressTxs(address, raw, head, d)...)
	}
	return out, nil
}

// StakingRewards returns pending rewards of a delegator in display units.
func (p *Provider) StakingRewards(ctx context.Context, address string) (decimal.Decimal, error) {
	raw, err := p.client.Rewards(ctx, address)
	if err != nil {
		return decimal.Zero, err
	}
	if !ValidRewards(raw) {
		return decimal.Zero, chain.Invalid(p.name, "staking_rewards")
	}
	return p.mapper.Rewards(raw), nil
}

// DelegatedBalance returns the staked amount of a delegator in display units.
func (p *Provider) DelegatedBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	raw, err := p.client.Delegations(ctx, address)
	if err != nil {
		return decimal.Zero, err
	}
	if !ValidDelegations(raw) {
		return decimal.Zero, chain.Invalid(p.name, "delegations")
	}
	return p.mapper.Delegated(raw), nil
}
