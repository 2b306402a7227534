package explorer

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Provider is a named upstream backend.
	Provider interface {
		Name() string
	}

	// HeadProvider reports the latest block height.
	HeadProvider interface {
		Name() string
		BlockHead(ctx context.Context) (int64, error)
	}

	// BalanceProvider fetches balances of up to MaxBatchSize addresses per call.
	BalanceProvider interface {
		Name() string
		MaxBatchSize() int
		Balances(ctx context.Context, addresses []string) ([]model.Balance, error)
	}

	// TokenBalanceProvider fetches token balances of one contract for up to
	// MaxBatchSize addresses per call.
	TokenBalanceProvider interface {
		Name() string
		MaxBatchSize() int
		TokenBalances(ctx context.Context, contract string, addresses []string) ([]model.Balance, error)
	}

	// TxDetailsProvider fetches single transactions.
	TxDetailsProvider interface {
		Name() string
		BlockHead(ctx context.Context) (int64, error)
		TxDetails(ctx context.Context, hash string, head int64) (model.Transaction, error)
	}

	// AddressTxsProvider fetches native coin history of an address.
	AddressTxsProvider interface {
		Name() string
		BlockHead(ctx context.Context) (int64, error)
		AddressTxs(ctx context.Context, address string, direction model.Direction, head int64) ([]model.AddressTx, error)
	}

	// TokenTxsProvider fetches token history of an address for one contract.
	TokenTxsProvider interface {
		Name() string
		BlockHead(ctx context.Context) (int64, error)
		TokenTxs(ctx context.Context, address, contract string, head int64) ([]model.AddressTx, error)
	}

	// BlockTxsProvider fetches address activity of blocks, both bounds inclusive.
	// BatchBlocks reports whether a whole range is served by a single call.
	BlockTxsProvider interface {
		Name() string
		BlockHead(ctx context.Context) (int64, error)
		BatchBlocks() bool
		BlockTxs(ctx context.Context, from, to int64) (model.BlockTxs, error)
	}

	// RewardsProvider fetches pending staking rewards of a delegator.
	RewardsProvider interface {
		Name() string
		StakingRewards(ctx context.Context, address string) (decimal.Decimal, error)
	}

	// DelegationProvider fetches the amount a delegator has staked.
	DelegationProvider interface {
		Name() string
		DelegatedBalance(ctx context.Context, address string) (decimal.Decimal, error)
	}

	// Metrics records provider attempts and exhausted fallbacks.
	Metrics interface {
		ObserveAttempt(operation, provider string, err error, started time.Time)
		ObserveExhausted(operation string)
	}
)
