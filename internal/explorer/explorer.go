// Package explorer answers chain queries by trying configured providers in order.
package explorer

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/circuitbreaker"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
	"go.uber.org/zap"
)

// Operation names used in logs, metrics and errors.
const (
	OpBlockHead      = "get_block_head"
	OpBalances       = "get_balances"
	OpTokenBalances  = "get_token_balances"
	OpTxDetails      = "get_tx_details"
	OpTxDetailsBatch = "get_tx_details_batch"
	OpAddressTxs     = "get_address_txs"
	OpTokenTxs       = "get_token_txs"
	OpBlockTxs       = "get_block_txs"
	OpStakingRewards = "get_staking_rewards"
	OpDelegated      = "get_delegated_balance"
)

// Providers lists the ordered fallback chain of every operation.
type Providers struct {
	Head          []HeadProvider
	Balances      []BalanceProvider
	TokenBalances []TokenBalanceProvider
	TxDetails     []TxDetailsProvider
	AddressTxs    []AddressTxsProvider
	TokenTxs      []TokenTxsProvider
	BlockTxs      []BlockTxsProvider
	Rewards       []RewardsProvider
	Delegations   []DelegationProvider
}

// Options tune one explorer. Zero values take the defaults noted per field.
type Options struct {
	// Aggregation merges tx details transfers; AggregateNone by default.
	Aggregation Aggregation
	// LookBack is how far behind the head a scan without a cursor starts, 5 by default.
	LookBack int64
	// MaxBlocksPerCall caps GetLatestBlock ranges, 100 by default.
	MaxBlocksPerCall int64
	// HeadOffset is subtracted from the head before scanning blocks.
	HeadOffset int64
	// Workers bounds concurrent requests issued by one call, 4 by default.
	Workers int
	// Breaker configures the per-provider circuit breakers.
	Breaker circuitbreaker.Config
}

// Explorer serves one network.
type Explorer struct {
	network   model.Network
	providers Providers
	opts      Options
	breakers  map[string]*circuitbreaker.Breaker
	metrics   Metrics
	logger    *zap.Logger
}

// New builds an Explorer. Providers sharing a name share a circuit breaker.
func New(network model.Network, providers Providers, opts Options, metrics Metrics, logger *zap.Logger) (*Explorer, error) {
	if network == "" {
		return nil, errors.New("network is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if err := opts.Aggregation.validate(); err != nil {
		return nil, err
	}
	if opts.LookBack <= 0 {
		opts.LookBack = 5
	}
	if opts.MaxBlocksPerCall <= 0 {
		opts.MaxBlocksPerCall = 100
	}
	if opts.Workers <= 0 {
		opts.Workers = 4
	}
	if len(providers.Head) == 0 {
		for _, p := range providers.BlockTxs {
			providers.Head = append(providers.Head, p)
		}
	}

	e := &Explorer{
		network:   network,
		providers: providers,
		opts:      opts,
		breakers:  map[string]*circuitbreaker.Breaker{},
		metrics:   metrics,
		logger:    logger.Named("explorer").With(zap.String("network", string(network))),
	}
	cfg := opts.Breaker
	onChange := cfg.OnStateChange
	cfg.OnStateChange = func(name string, from, to circuitbreaker.State) {
		e.logger.Info("provider breaker state changed",
			zap.String("provider", name),
			zap.Stringer("from", from),
			zap.Stringer("to", to))
		if onChange != nil {
			onChange(name, from, to)
		}
	}
	for _, name := range providers.names() {
		if _, ok := e.breakers[name]; !ok {
			e.breakers[name] = circuitbreaker.New(name, cfg)
		}
	}
	return e, nil
}

// Network returns the network served.
func (e *Explorer) Network() model.Network {
	return e.network
}

// BreakerStates reports the breaker state of every provider by name.
func (e *Explorer) BreakerStates() map[string]circuitbreaker.State {
	out := make(map[string]circuitbreaker.State, len(e.breakers))
	for name, b := range e.breakers {
		out[name] = b.State()
	}
	return out
}

// attempt calls providers in order until one succeeds. A canceled parent
// context ends the loop at once and its error is returned as is.
func attempt[P Provider, R any](ctx context.Context, e *Explorer, operation string, providers []P, call func(context.Context, P) (R, error)) (R, error) {
	var (
		zero     R
		failures []error
	)
	for _, p := range providers {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		name := p.Name()
		breaker := e.breakers[name]
		if err := breaker.Allow(); err != nil {
			e.logger.Debug("provider skipped", zap.String("provider", name), zap.String("operation", operation))
			failures = append(failures, &ProviderError{Provider: name, Err: err})
			continue
		}

		started := time.Now()
		res, err := call(ctx, p)
		e.metrics.ObserveAttempt(operation, name, err, started)
		if err == nil {
			breaker.RecordSuccess()
			return res, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return zero, ctxErr
		}
		breaker.RecordFailure()
		e.logger.Warn("provider attempt failed",
			zap.String("provider", name),
			zap.String("operation", operation),
			zap.Error(err))
		failures = append(failures, &ProviderError{Provider: name, Err: err})
	}

	e.metrics.ObserveExhausted(operation)
	e.logger.Error("providers exhausted", zap.String("operation", operation), zap.Int("providers", len(providers)))
	return zero, &UnavailableError{Network: e.network, Operation: operation, Failures: failures}
}

func (p Providers) names() []string {
	var names []string
	add := func(name string) {
		names = append(names, name)
	}
	for _, x := range p.Head {
		add(x.Name())
	}
	for _, x := range p.Balances {
		add(x.Name())
	}
	for _, x := range p.TokenBalances {
		add(x.Name())
	}
	for _, x := range p.TxDetails {
		add(x.Name())
	}
	for _, x := range p.AddressTxs {
		add(x.Name())
	}
	for _, x := range p.TokenTxs {
		add(x.Name())
	}
	for _, x := range p.BlockTxs {
		add(x.Name())
	}
	for _, x := range p.Rewards {
		add(x.Name())
	}
	for _, x := range p.Delegations {
		add(x.Name())
	}
	return names
}
