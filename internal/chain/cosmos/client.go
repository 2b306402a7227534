// Package cosmos normalizes Cosmos SDK REST node responses.
package cosmos

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/chain"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
)

const defaultPageLimit = 50

// Client issues raw requests against a Cosmos SDK REST gateway.
type Client struct {
	http      *chain.JSONClient
	pageLimit int
}

// NewClient wraps a JSON transport. pageLimit bounds tx search pages.
func NewClient(http *chain.JSONClient, pageLimit int) *Client {
	if pageLimit <= 0 {
		pageLimit = defaultPageLimit
	}
	return &Client{http: http, pageLimit: pageLimit}
}

// BlockHead fetches the latest block.
func (c *Client) BlockHead(ctx context.Context) (*BlockResponse, error) {
	var out BlockResponse
	if err := c.http.Get(ctx, "block_head", "/cosmos/base/tendermint/v1beta1/blocks/latest", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Balance fetches the balance of address. A non-empty denom narrows it to one coin.
func (c *Client) Balance(ctx context.Context, address, denom string) (*BalanceResponse, error) {
	path := "/cosmos/bank/v1beta1/balances/" + url.PathEscape(address)
	var query url.Values
	if denom != "" {
		path += "/by_denom"
		query = url.Values{"denom": {denom}}
	}
	var out BalanceResponse
	if err := c.http.Get(ctx, "balance", path, query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TxDetails fetches a transaction by hash.
func (c *Client) TxDetails(ctx context.Context, hash string) (*TxDetailsResponse, error) {
	var out TxDetailsResponse
	if err := c.http.Get(ctx, "tx_details", "/cosmos/tx/v1beta1/txs/"+url.PathEscape(hash), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddressTxs searches transactions of address. Incoming and outgoing use different event filters.
func (c *Client) AddressTxs(ctx context.Context, address string, direction model.Direction) (*TxsResponse, error) {
	var event string
	switch direction {
	case model.Incoming:
		event = fmt.Sprintf("transfer.recipient='%s'", address)
	case model.Outgoing:
		event = fmt.Sprintf("message.sender='%s'", address)
	default:
		return nil, fmt.Errorf("tx search needs a direction, got %q", direction)
	}
	query := url.Values{
		"events":           {event},
		"order_by":         {"ORDER_BY_DESC"},
		"pagination.limit": {strconv.Itoa(c.pageLimit)},
	}
	var out TxsResponse
	if err := c.http.Get(ctx, "address_txs", "/cosmos/tx/v1beta1/txs", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Rewards fetches pending staking rewards of a delegator.
func (c *Client) Rewards(ctx context.Context, address string) (*RewardsResponse, error) {
	var out RewardsResponse
	path := "/cosmos/distribution/v1beta1/delegators/" + url.PathEscape(address) + "/rewards"
	if err := c.http.Get(ctx, "staking_rewards", path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delegations fetches the staking delegations of a delegator.
func (c *Client) Delegations(ctx context.Context, address string) (*DelegationsResponse, error) {
	var out DelegationsResponse
	path := "/cosmos/staking/v1beta1/delegations/" + url.PathEscape(address)
	if err := c.http.Get(ctx, "delegations", path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
