package oklink

import (
	"context"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/chain"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
)

const maxBalanceBatch = 20

// Provider validates and maps explorer responses of one EVM chain.
type Provider struct {
	name   string
	client *Client
	mapper *Mapper
	tokens map[string]TokenInfo
}

// NewProvider builds a Provider. tokens lists the contracts TokenTxs and TokenBalances accept.
func NewProvider(name string, client *Client, mapper *Mapper, tokens []TokenInfo) *Provider {
	byAddress := make(map[string]TokenInfo, len(tokens))
	for _, t := range tokens {
		byAddress[strings.ToLower(t.Address)] = t
	}
	return &Provider{name: name, client: client, mapper: mapper, tokens: byAddress}
}

// Name returns the configured provider name.
func (p *Provider) Name() string {
	return p.name
}

// MaxBatchSize is the address limit of balance-multi.
func (p *Provider) MaxBatchSize() int {
	return maxBalanceBatch
}

// BatchBlocks reports that blocks are fetched one height per request.
func (p *Provider) BatchBlocks() bool {
	return false
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

// Balances returns native balances in request order.
func (p *Provider) Balances(ctx context.Context, addresses []string) ([]model.Balance, error) {
	raw, err := p.client.Balances(ctx, addresses)
	if err != nil {
		return nil, err
	}
	if !ValidBalances(raw) {
		return nil, chain.Invalid(p.name, "balances")
	}
	return p.mapper.Balances(addresses, raw), nil
}

// TokenBalances returns balances of a configured token contract in request order.
// A single address is served by token-balance, more by token-balance-multi.
func (p *Provider) TokenBalances(ctx context.Context, contract string, addresses []string) ([]model.Balance, error) {
	token, ok := p.tokens[strings.ToLower(contract)]
	if !ok {
		return nil, fmt.Errorf("%s: token %s is not configured", p.name, contract)
	}
	if len(addresses) == 1 {
		raw, err := p.client.TokenBalance(ctx, addresses[0], token.Address)
		if err != nil {
			return nil, err
		}
		if !ValidTokenBalance(raw) {
			return nil, chain.Invalid(p.name, "token_balance")
		}
		return []model.Balance{p.mapper.TokenBalance(addresses[0], token, raw)}, nil
	}
	raw, err := p.client.TokenBalances(ctx, addresses)
	if err != nil {
		return nil, err
	}
	if !ValidTokenBalances(raw) {
		return nil, chain.Invalid(p.name, "token_balances")
	}
	return p.mapper.TokenBalances(addresses, token, raw), nil
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

// AddressTxs returns native history entries of address.
func (p *Provider) AddressTxs(ctx context.Context, address string, direction model.Direction, head int64) ([]model.AddressTx, error) {
	raw, err := p.client.AddressTxs(ctx, address)
	if err != nil {
		return nil, err
	}
	if !ValidTransactionPage(raw) {
		return nil, chain.Invalid(p.name, "address_txs")
	}
	return p.mapper.AddressTxs(address, raw, head, direction), nil
}

// TokenTxs returns history entries of address for a configured token contract.
func (p *Provider) TokenTxs(ctx context.Context, address, contract string, head int64) ([]model.AddressTx, error) {
	token, ok := p.tokens[strings.ToLower(contract)]
	if !ok {
		return nil, fmt.Errorf("%s: token %s is not configured", p.name, contract)
	}
	raw, err := p.client.TokenTxs(ctx, address, token.Address)
	if err != nil {
		return nil, err
	}
	if !ValidTransactionPage(raw) {
		return nil, chain.Invalid(p.name, "token_txs")
	}
	return p.mapper.TokenTxs(address, token, raw, head), nil
}

// BlockTxs collects the transfers of every height in [from, to].
func (p *Provider) BlockTxs(ctx context.Context, from, to int64) (model.BlockTxs, error) {
	out := model.NewBlockTxs()
	for height := from; height <= to; height++ {
		raw, err := p.client.BlockTxs(ctx, height)
		if err != nil {
			return model.BlockTxs{}, err
		}
		if !ValidBlockTransactions(raw) {
			return model.BlockTxs{}, chain.Invalid(p.name, "block_txs")
		}
		out.Merge(p.mapper.BlockTxs(raw))
	}
	return out, nil
}
