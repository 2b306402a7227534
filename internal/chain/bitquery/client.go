// Package bitquery normalizes GraphQL UTXO indexer responses.
package bitquery

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/chain"
)

const defaultLimit = 25000

// Client issues raw GraphQL queries for one indexer network, e.g. bitcash.
type Client struct {
	http    *chain.JSONClient
	network string
	limit   int
}

// NewClient wraps a JSON transport. limit caps the edges returned per list.
func NewClient(http *chain.JSONClient, network string, limit int) *Client {
	if limit <= 0 {
		limit = defaultLimit
	}
	return &Client{http: http, network: network, limit: limit}
}

// BlockHead queries the latest block.
func (c *Client) BlockHead(ctx context.Context) (*Response, error) {
	return c.query(ctx, "block_head", blockHeadQuery, nil)
}

// Balances queries address stats for many addresses in one request.
func (c *Client) Balances(ctx context.Context, addresses []string) (*Response, error) {
	return c.query(ctx, "balances", balancesQuery, map[string]any{"addresses": addresses})
}

// BlockTxs queries every edge between two heights, both inclusive.
func (c *Client) BlockTxs(ctx context.Context, from, to int64) (*Response, error) {
	return c.query(ctx, "block_txs", blockRangeQuery, map[string]any{"from": from, "to": to, "limit": c.limit})
}

// TxDetails queries the edges of one transaction.
func (c *Client) TxDetails(ctx context.Context, hash string) (*Response, error) {
	return c.query(ctx, "tx_details", txDetailsQuery, map[string]any{"hash": hash})
}

// AddressTxs queries both edge lists of address. A spend nets against its
// change output, so the direction is applied after netting.
func (c *Client) AddressTxs(ctx context.Context, address string) (*Response, error) {
	return c.query(ctx, "address_txs", addressTxsQuery, map[string]any{"address": address, "limit": c.limit})
}

func (c *Client) query(ctx context.Context, operation, query string, vars map[string]any) (*Response, error) {
	variables := map[string]any{"network": c.network}
	for k, v := range vars {
		variables[k] = v
	}
	var out Response
	if err := c.http.Post(ctx, operation, "", request{Query: query, Variables: variables}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
