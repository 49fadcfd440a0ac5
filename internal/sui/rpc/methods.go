package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// Coin merges go through the framework pay module: join_vec folds a
// vector of coins into the primary coin in a single transaction.
const (
	suiFrameworkPackage = "0x2"
	payModule           = "pay"
	joinVecFunction     = "join_vec"
)

// GetAllBalances returns one entry per coin type held by the owner.
func (c *Client) GetAllBalances(ctx context.Context, owner string) ([]Balance, error) {
	result, err := c.call(ctx, "suix_getAllBalances", []interface{}{owner})
	if err != nil {
		return nil, fmt.Errorf("suix_getAllBalances: %w", err)
	}

	var balances []Balance
	if err := json.Unmarshal(result, &balances); err != nil {
		return nil, fmt.Errorf("unmarshal balances: %w", err)
	}
	return balances, nil
}

// GetCoins returns one page of coin objects of the given type owned by
// the owner, resuming from the opaque server cursor when non-nil.
func (c *Client) GetCoins(ctx context.Context, owner, coinType string, cursor *string, limit int) (*CoinPage, error) {
	var cursorParam interface{}
	if cursor != nil {
		cursorParam = *cursor
	}

	params := []interface{}{owner, coinType, cursorParam, limit}
	result, err := c.call(ctx, "suix_getCoins", params)
	if err != nil {
		return nil, fmt.Errorf("suix_getCoins: %w", err)
	}

	var page CoinPage
	if err := json.Unmarshal(result, &page); err != nil {
		return nil, fmt.Errorf("unmarshal coin page: %w", err)
	}
	return &page, nil
}

// BuildMergeCoins asks the node to build a transaction folding all
// source coins into the primary coin. Gas object selection is left to
// the node; gasBudget is serialized as a decimal string per the API.
func (c *Client) BuildMergeCoins(ctx context.Context, signer, coinType, primary string, sources []string, gasBudget uint64) (*TransactionBytes, error) {
	params := []interface{}{
		signer,
		suiFrameworkPackage,
		payModule,
		joinVecFunction,
		[]string{coinType},
		[]interface{}{primary, sources},
		nil, // gas object, node-selected
		strconv.FormatUint(gasBudget, 10),
	}
	result, err := c.call(ctx, "unsafe_moveCall", params)
	if err != nil {
		return nil, fmt.Errorf("unsafe_moveCall: %w", err)
	}

	var txb TransactionBytes
	if err := json.Unmarshal(result, &txb); err != nil {
		return nil, fmt.Errorf("unmarshal transaction bytes: %w", err)
	}
	return &txb, nil
}

// ExecuteTransactionBlock submits signed transaction bytes and waits
// for local execution, returning the digest plus requested effects and
// events.
func (c *Client) ExecuteTransactionBlock(ctx context.Context, txBytes, signature string, opts ExecuteOptions) (*TransactionBlockResponse, error) {
	params := []interface{}{
		txBytes,
		[]string{signature},
		opts,
		"WaitForLocalExecution",
	}
	result, err := c.call(ctx, "sui_executeTransactionBlock", params)
	if err != nil {
		return nil, fmt.Errorf("sui_executeTransactionBlock: %w", err)
	}

	var resp TransactionBlockResponse
	if err := json.Unmarshal(result, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal execution response: %w", err)
	}
	return &resp, nil
}
