package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"sort"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/chain"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/chain/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/chain/bitquery"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/chain/cosmos"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/chain/oklink"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/circuitbreaker"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	bitqueryField       = "bitcoin"
	bitqueryKeyHeader   = "X-API-KEY"
	oklinkKeyHeader     = "Ok-Access-Key"
	defaultBitcoinChain = "mainnet"
)

// Registry holds the explorer of every configured network.
type Registry struct {
	explorers map[model.Network]*explorer.Explorer
	closers   []func()
}

// Build constructs every provider and explorer named by cfg.
// Providers are built once per network and shared across its operations.
func Build(cfg *Config, logger *zap.Logger) (*Registry, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	r := &Registry{explorers: make(map[model.Network]*explorer.Explorer, len(cfg.Networks))}
	for name, n := range cfg.Networks {
		e, err := r.buildNetwork(cfg, name, n, logger)
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("network %s: %w", name, err)
		}
		r.explorers[name] = e
	}
	return r, nil
}

// Explorer returns the explorer serving network.
func (r *Registry) Explorer(network model.Network) (*explorer.Explorer, bool) {
	e, ok := r.explorers[network]
	return e, ok
}

// Networks lists configured networks in lexical order.
func (r *Registry) Networks() []model.Network {
	out := make([]model.Network, 0, len(r.explorers))
	for n := range r.explorers {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Close releases node connections.
func (r *Registry) Close() {
	for _, c := range r.closers {
		c()
	}
	r.closers = nil
}

func (r *Registry) buildNetwork(cfg *Config, network model.Network, n Network, logger *zap.Logger) (*explorer.Explorer, error) {
	instances := map[string]explorer.Provider{}
	instance := func(name string) (explorer.Provider, error) {
		if p, ok := instances[name]; ok {
			return p, nil
		}
		p, err := r.buildProvider(network, name, cfg.Providers[name], n)
		if err != nil {
			return nil, fmt.Errorf("provider %s: %w", name, err)
		}
		instances[name] = p
		return p, nil
	}

	var (
		providers explorer.Providers
		err       error
	)
	if providers.Head, err = resolve[explorer.HeadProvider](n.Operations.Head, "head", instance); err != nil {
		return nil, err
	}
	if providers.Balances, err = resolve[explorer.BalanceProvider](n.Operations.Balances, "balances", instance); err != nil {
		return nil, err
	}
	if providers.TokenBalances, err = resolve[explorer.TokenBalanceProvider](n.Operations.TokenBalances, "token_balances", instance); err != nil {
		return nil, err
	}
	if providers.TxDetails, err = resolve[explorer.TxDetailsProvider](n.Operations.TxDetails, "tx_details", instance); err != nil {
		return nil, err
	}
	if providers.AddressTxs, err = resolve[explorer.AddressTxsProvider](n.Operations.AddressTxs, "address_txs", instance); err != nil {
		return nil, err
	}
	if providers.TokenTxs, err = resolve[explorer.TokenTxsProvider](n.Operations.TokenTxs, "token_txs", instance); err != nil {
		return nil, err
	}
	if providers.BlockTxs, err = resolve[explorer.BlockTxsProvider](n.Operations.BlockTxs, "block_txs", instance); err != nil {
		return nil, err
	}
	if providers.Rewards, err = resolve[explorer.RewardsProvider](n.Operations.Rewards, "rewards", instance); err != nil {
		return nil, err
	}
	if providers.Delegations, err = resolve[explorer.DelegationProvider](n.Operations.Delegations, "delegations", instance); err != nil {
		return nil, err
	}

	opts := explorer.Options{
		Aggregation:      explorer.Aggregation(n.Aggregation),
		LookBack:         n.LookBack,
		MaxBlocksPerCall: n.MaxBlocksPerCall,
		HeadOffset:       n.HeadOffset,
		Workers:          n.Workers,
		Breaker: circuitbreaker.Config{
			FailureThreshold: n.Breaker.FailureThreshold,
			SuccessThreshold: n.Breaker.SuccessThreshold,
			OpenTimeout:      n.Breaker.OpenTimeout,
		},
	}
	return explorer.New(network, providers, opts, metrics.NewExplorer(network), logger)
}

// resolve looks up every name and checks that its instance serves the operation.
func resolve[P explorer.Provider](names []string, operation string, instance func(string) (explorer.Provider, error)) ([]P, error) {
	out := make([]P, 0, len(names))
	for _, name := range names {
		p, err := instance(name)
		if err != nil {
			return nil, err
		}
		typed, ok := p.(P)
		if !ok {
			return nil, fmt.Errorf("%s: provider %s does not serve this operation", operation, name)
		}
		out = append(out, typed)
	}
	return out, nil
}

func (r *Registry) buildProvider(network model.Network, name string, p Provider, n Network) (explorer.Provider, error) {
	requestMetrics := metrics.NewProviderClient(network, name)
	if p.Kind == KindBitcoin {
		return r.buildBitcoin(name, p, n, requestMetrics)
	}

	headers := map[string]string{}
	if p.APIKeyEnv != "" {
		key, err := env(p.APIKeyEnv)
		if err != nil {
			return nil, err
		}
		header := p.APIKeyHeader
		if header == "" {
			header = defaultKeyHeader(p.Kind)
		}
		headers[header] = key
	}
	http, err := chain.NewJSONClient(chain.ClientConfig{
		Provider: name,
		BaseURL:  p.URL,
		Timeout:  p.Timeout,
		RPS:      p.RPS,
		Headers:  headers,
	}, requestMetrics)
	if err != nil {
		return nil, err
	}

	switch p.Kind {
	case KindCosmos:
		return cosmos.NewProvider(name,
			cosmos.NewClient(http, p.PageLimit),
			cosmos.NewMapper(n.Symbol, n.Currency, n.Denom, n.Exponent),
			n.Denom), nil
	case KindBitquery:
		return bitquery.NewProvider(name,
			bitquery.NewClient(http, n.Chain, p.PageLimit),
			bitquery.NewValidator(bitqueryField),
			bitquery.NewMapper(bitqueryField, n.Symbol, n.Currency),
			p.BatchSize), nil
	case KindOKLink:
		minValue := decimal.Zero
		if n.MinValue != "" {
			if minValue, err = decimal.NewFromString(n.MinValue); err != nil {
				return nil, fmt.Errorf("parse min_value: %w", err)
			}
		}
		tokens := make([]oklink.TokenInfo, 0, len(n.Tokens))
		for _, t := range n.Tokens {
			tokens = append(tokens, oklink.TokenInfo{Address: t.Address, Symbol: t.Symbol, Currency: t.Currency, Scale: t.Scale})
		}
		return oklink.NewProvider(name,
			oklink.NewClient(http, n.Chain, p.PageLimit),
			oklink.NewMapper(n.Symbol, n.Currency, minValue),
			tokens), nil
	}
	return nil, fmt.Errorf("unknown kind %q", p.Kind)
}

func (r *Registry) buildBitcoin(name string, p Provider, n Network, requestMetrics *metrics.ProviderClient) (explorer.Provider, error) {
	u, err := url.Parse(p.URL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("rpc url scheme %q not supported", u.Scheme)
	}
	if u.Host == "" {
		return nil, errors.New("rpc url missing host")
	}
	conn := &rpcclient.ConnConfig{
		Host:         u.Host,
		HTTPPostMode: true,
		DisableTLS:   u.Scheme == "http",
	}
	if p.UserEnv != "" {
		if conn.User, err = env(p.UserEnv); err != nil {
			return nil, err
		}
	}
	if p.PasswordEnv != "" {
		if conn.Pass, err = env(p.PasswordEnv); err != nil {
			return nil, err
		}
	}
	client, err := rpcclient.New(conn, nil)
	if err != nil {
		return nil, fmt.Errorf("init rpc client: %w", err)
	}
	r.closers = append(r.closers, func() {
		client.Shutdown()
		client.WaitForShutdown()
	})

	btcNetwork := n.BTCNetwork
	if btcNetwork == "" {
		btcNetwork = defaultBitcoinChain
	}
	provider, err := bitcoin.NewProvider(name, bitcoin.NewObservedClient(name, client, requestMetrics), btcNetwork, n.Symbol, n.Currency)
	if err != nil {
		return nil, err
	}
	return provider, nil
}

func defaultKeyHeader(kind Kind) string {
	if kind == KindOKLink {
		return oklinkKeyHeader
	}
	return bitqueryKeyHeader
}

func env(name string) (string, error) {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return "", fmt.Errorf("environment variable %s is not set", name)
	}
	return v, nil
}
