package transport

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/circuitbreaker"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Explorer is the per-network query surface served over HTTP and gRPC.
	Explorer interface {
		GetBlockHead(ctx context.Context) (int64, error)
		GetBalances(ctx context.Context, addresses []string) ([]model.Balance, error)
		GetTokenBalances(ctx context.Context, contract string, addresses []string) ([]model.Balance, error)
		GetTxDetails(ctx context.Context, hash string) (model.Transaction, error)
		GetAddressTxs(ctx context.Context, address string, direction model.Direction) ([]model.AddressTx, error)
		GetTokenTxs(ctx context.Context, address, contract string) ([]model.AddressTx, error)
		GetStakingRewards(ctx context.Context, address string) (decimal.Decimal, error)
		GetDelegatedBalance(ctx context.Context, address string) (decimal.Decimal, error)
		GetLatestBlock(ctx context.Context, after, to int64) (explorer.LatestBlock, error)
		BreakerStates() map[string]circuitbreaker.State
	}
)
