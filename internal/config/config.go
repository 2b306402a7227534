// Package config loads the provider registry and builds one explorer per network.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
	"gopkg.in/yaml.v3"
)

// Kind names a provider implementation.
type Kind string

var (
	KindCosmos   Kind = "cosmos"
	KindBitquery Kind = "bitquery"
	KindOKLink   Kind = "oklink"
	KindBitcoin  Kind = "bitcoin"
)

var familyKinds = map[model.Family][]Kind{
	model.FamilyCosmos: {KindCosmos},
	model.FamilyUTXO:   {KindBitquery, KindBitcoin},
	model.FamilyEVM:    {KindOKLink},
}

// Config is the provider registry file.
type Config struct {
	Providers map[string]Provider        `yaml:"providers"`
	Networks  map[model.Network]Network `yaml:"networks"`
}

// Provider describes one upstream endpoint. Secrets are read from the
// environment variables named by the *_env fields.
type Provider struct {
	Kind         Kind          `yaml:"kind"`
	URL          string        `yaml:"url"`
	Timeout      time.Duration `yaml:"timeout"`
	RPS          int           `yaml:"rps"`
	APIKeyEnv    string        `yaml:"api_key_env"`
	APIKeyHeader string        `yaml:"api_key_header"`
	UserEnv      string        `yaml:"user_env"`
	PasswordEnv  string        `yaml:"password_env"`
	PageLimit    int           `yaml:"page_limit"`
	BatchSize    int           `yaml:"batch_size"`
}

// Network describes one chain and the ordered providers of each operation.
type Network struct {
	Family           model.Family   `yaml:"family"`
	Symbol           string         `yaml:"symbol"`
	Currency         model.Currency `yaml:"currency"`
	Denom            string         `yaml:"denom"`
	Exponent         int32          `yaml:"exponent"`
	Chain            string         `yaml:"chain"`
	BTCNetwork       string         `yaml:"btc_network"`
	MinValue         string         `yaml:"min_value"`
	Aggregation      string         `yaml:"aggregation"`
	LookBack         int64          `yaml:"look_back"`
	MaxBlocksPerCall int64          `yaml:"max_blocks_per_call"`
	HeadOffset       int64          `yaml:"head_offset"`
	Workers          int            `yaml:"workers"`
	Tokens           []Token        `yaml:"tokens"`
	Breaker          Breaker        `yaml:"breaker"`
	Operations       Operations     `yaml:"providers"`
}

// Token is a tracked EVM token contract.
type Token struct {
	Address  string         `yaml:"address"`
	Symbol   string         `yaml:"symbol"`
	Currency model.Currency `yaml:"currency"`
	Scale    string         `yaml:"scale"`
}

// Breaker tunes the per-provider circuit breakers of a network.
type Breaker struct {
	FailureThreshold int           `yaml:"failure_threshold"`
	SuccessThreshold int           `yaml:"success_threshold"`
	OpenTimeout      time.Duration `yaml:"open_timeout"`
}

// Operations lists provider names per operation, in fallback order.
type Operations struct {
	Head          []string `yaml:"head"`
	Balances      []string `yaml:"balances"`
	TokenBalances []string `yaml:"token_balances"`
	TxDetails     []string `yaml:"tx_details"`
	AddressTxs    []string `yaml:"address_txs"`
	TokenTxs      []string `yaml:"token_txs"`
	BlockTxs      []string `yaml:"block_txs"`
	Rewards       []string `yaml:"rewards"`
	Delegations   []string `yaml:"delegations"`
}

func (o Operations) all() map[string][]string {
	return map[string][]string{
		"head":           o.Head,
		"balances":       o.Balances,
		"token_balances": o.TokenBalances,
		"tx_details":     o.TxDetails,
		"address_txs":    o.AddressTxs,
		"token_txs":      o.TokenTxs,
		"block_txs":      o.BlockTxs,
		"rewards":        o.Rewards,
		"delegations":    o.Delegations,
	}
}

// Load reads and validates the registry file at path.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and validates a registry document.
func Parse(raw []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks kinds, required fields and provider references.
func (c *Config) Validate() error {
	if len(c.Networks) == 0 {
		return errors.New("no networks configured")
	}
	for name, p := range c.Providers {
		if err := p.validate(); err != nil {
			return fmt.Errorf("provider %s: %w", name, err)
		}
	}
	for name, n := range c.Networks {
		if err := c.validateNetwork(n); err != nil {
			return fmt.Errorf("network %s: %w", name, err)
		}
	}
	return nil
}

func (p Provider) validate() error {
	switch p.Kind {
	case KindCosmos, KindBitquery, KindOKLink, KindBitcoin:
	case "":
		return errors.New("kind is required")
	default:
		return fmt.Errorf("unknown kind %q", p.Kind)
	}
	if p.URL == "" {
		return errors.New("url is required")
	}
	if p.Timeout < 0 || p.RPS < 0 || p.PageLimit < 0 || p.BatchSize < 0 {
		return errors.New("timeout, rps, page_limit and batch_size must not be negative")
	}
	return nil
}

func (c *Config) validateNetwork(n Network) error {
	kinds, ok := familyKinds[n.Family]
	if !ok {
		return fmt.Errorf("unknown family %q", n.Family)
	}
	if n.Symbol == "" || n.Currency == "" {
		return errors.New("symbol and currency are required")
	}
	if n.Family == model.FamilyCosmos && n.Denom == "" {
		return errors.New("denom is required")
	}
	if n.Family == model.FamilyEVM && n.Chain == "" {
		return errors.New("chain is required")
	}
	for _, t := range n.Tokens {
		if t.Address == "" || t.Symbol == "" {
			return errors.New("token address and symbol are required")
		}
	}
	for op, names := range n.Operations.all() {
		for _, name := range names {
			p, ok := c.Providers[name]
			if !ok {
				return fmt.Errorf("%s: unknown provider %q", op, name)
			}
			if !slices.Contains(kinds, p.Kind) {
				return fmt.Errorf("%s: provider %q of kind %s cannot serve family %s", op, name, p.Kind, n.Family)
			}
		}
	}
	return nil
}
