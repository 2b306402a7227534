// Package oklink normalizes EVM explorer JSON API responses.
package oklink

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/chain"
)

const defaultPageLimit = 50

// Client issues raw explorer requests for one chain, e.g. AVAXC.
type Client struct {
	http      *chain.JSONClient
	chain     string
	pageLimit int
}

// NewClient wraps a JSON transport. The access key travels in the transport headers.
func NewClient(http *chain.JSONClient, chainShortName string, pageLimit int) *Client {
	if pageLimit <= 0 {
		pageLimit = defaultPageLimit
	}
	return &Client{http: http, chain: chainShortName, pageLimit: pageLimit}
}

// BlockHead fetches the most recent block.
func (c *Client) BlockHead(ctx context.Context) (*Response[BlockList], error) {
	q := c.values()
	q.Set("limit", "1")
	var out Response[BlockList]
	if err := c.http.Get(ctx, "block_head", "block/block-list", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Balances fetches native balances of up to twenty addresses.
func (c *Client) Balances(ctx context.Context, addresses []string) (*Response[Balances], error) {
	q := c.values()
	q.Set("address", strings.Join(addresses, ","))
	var out Response[Balances]
	if err := c.http.Get(ctx, "balances", "address/balance-multi", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TokenBalance fetches the holding of one address in one token contract.
func (c *Client) TokenBalance(ctx context.Context, address, contract string) (*Response[TokenBalance], error) {
	q := c.values()
	q.Set("address", address)
	q.Set("protocolType", "token_20")
	q.Set("tokenContractAddress", contract)
	var out Response[TokenBalance]
	if err := c.http.Get(ctx, "token_balance", "address/token-balance", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TokenBalances fetches the token holdings of up to twenty addresses.
// The list covers every contract the addresses hold.
func (c *Client) TokenBalances(ctx context.Context, addresses []string) (*Response[TokenBalances], error) {
	q := c.values()
	q.Set("address", strings.Join(addresses, ","))
	q.Set("protocolType", "token_20")
	q.Set("limit", strconv.Itoa(c.pageLimit))
	var out Response[TokenBalances]
	if err := c.http.Get(ctx, "token_balances", "address/token-balance-multi", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TxDetails fetches the fills of one transaction.
func (c *Client) TxDetails(ctx context.Context, hash string) (*Response[TxFills], error) {
	q := c.values()
	q.Set("txid", hash)
	var out Response[TxFills]
	if err := c.http.Get(ctx, "tx_details", "transaction/transaction-fills", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddressTxs fetches the native transaction list of address.
func (c *Client) AddressTxs(ctx context.Context, address string) (*Response[TransactionPage], error) {
	q := c.values()
	q.Set("address", address)
	q.Set("protocolType", "transaction")
	q.Set("limit", strconv.Itoa(c.pageLimit))
	var out Response[TransactionPage]
	if err := c.http.Get(ctx, "address_txs", "address/transaction-list", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TokenTxs fetches ERC-20 transfers of address for one contract.
func (c *Client) TokenTxs(ctx context.Context, address, contract string) (*Response[TransactionPage], error) {
	q := c.values()
	q.Set("address", address)
	q.Set("protocolType", "token_20")
	q.Set("tokenContractAddress", contract)
	q.Set("limit", strconv.Itoa(c.pageLimit))
	var out Response[TransactionPage]
	if err := c.http.Get(ctx, "token_txs", "address/transaction-list", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BlockTxs fetches the native transactions of one block.
func (c *Client) BlockTxs(ctx context.Context, height int64) (*Response[BlockTransactions], error) {
	q := c.values()
	q.Set("height", strconv.FormatInt(height, 10))
	q.Set("protocolType", "transaction")
	q.Set("limit", "100")
	var out Response[BlockTransactions]
	if err := c.http.Get(ctx, "block_txs", "block/transaction-list", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) values() url.Values {
	return url.Values{"chainShortName": []string{c.chain}}
}
