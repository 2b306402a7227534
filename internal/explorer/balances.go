package explorer

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/chain"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-explorer/pkg/workerpool"
	"github.com/shopspring/decimal"
)

// GetBalance returns the balance of one address.
func (e *Explorer) GetBalance(ctx context.Context, address string) (model.Balance, error) {
	balances, err := e.GetBalances(ctx, []string{address})
	if err != nil {
		return model.Balance{}, err
	}
	return balances[0], nil
}

// GetBalances returns one balance per requested address, in request order.
// Addresses are chunked by the provider batch size and chunks are fetched
// concurrently; results are joined back by address.
func (e *Explorer) GetBalances(ctx context.Context, addresses []string) ([]model.Balance, error) {
	if len(addresses) == 0 {
		return []model.Balance{}, nil
	}
	return attempt(ctx, e, OpBalances, e.providers.Balances, func(ctx context.Context, p BalanceProvider) ([]model.Balance, error) {
		return e.chunkedBalances(ctx, addresses, p.MaxBatchSize(), p.Balances)
	})
}

// GetTokenBalances returns the contract balance of every requested address, in request order.
func (e *Explorer) GetTokenBalances(ctx context.Context, contract string, addresses []string) ([]model.Balance, error) {
	if len(addresses) == 0 {
		return []model.Balance{}, nil
	}
	return attempt(ctx, e, OpTokenBalances, e.providers.TokenBalances, func(ctx context.Context, p TokenBalanceProvider) ([]model.Balance, error) {
		return e.chunkedBalances(ctx, addresses, p.MaxBatchSize(), func(ctx context.Context, c []string) ([]model.Balance, error) {
			return p.TokenBalances(ctx, contract, c)
		})
	})
}

func (e *Explorer) chunkedBalances(
	ctx context.Context,
	addresses []string,
	batchSize int,
	fetch func(ctx context.Context, addresses []string) ([]model.Balance, error),
) ([]model.Balance, error) {
	chunks := chunk(unique(addresses), batchSize)
	results, err := workerpool.Collect(ctx, e.opts.Workers, chunks,
		func(c []string) string { return c[0] },
		fetch)
	if err != nil {
		return nil, err
	}

	byAddress := make(map[string]model.Balance, len(addresses))
	for _, balances := range results {
		for _, b := range balances {
			byAddress[b.Address] = b
		}
	}
	out := make([]model.Balance, 0, len(addresses))
	for _, address := range addresses {
		b, ok := byAddress[address]
		if !ok {
			return nil, fmt.Errorf("%w: no balance for %s", chain.ErrInvalidResponse, address)
		}
		out = append(out, b)
	}
	return out, nil
}

// GetStakingRewards returns pending staking rewards of a delegator.
func (e *Explorer) GetStakingRewards(ctx context.Context, address string) (decimal.Decimal, error) {
	return attempt(ctx, e, OpStakingRewards, e.providers.Rewards, func(ctx context.Context, p RewardsProvider) (decimal.Decimal, error) {
		return p.StakingRewards(ctx, address)
	})
}

// GetDelegatedBalance returns the amount a delegator has staked.
func (e *Explorer) GetDelegatedBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	return attempt(ctx, e, OpDelegated, e.providers.Delegations, func(ctx context.Context, p DelegationProvider) (decimal.Decimal, error) {
		return p.DelegatedBalance(ctx, address)
	})
}

func unique(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

func chunk(items []string, size int) [][]string {
	if size <= 0 {
		size = 1
	}
	out := make([][]string, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		out = append(out, items[start:end])
	}
	return out
}
