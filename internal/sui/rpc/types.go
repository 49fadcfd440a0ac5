package rpc

import "encoding/json"

// JSON-RPC request/response types

type Request struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      int           `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error,omitempty"`
}

type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return e.Message
}

// suix_getAllBalances response entry
type Balance struct {
	CoinType        string `json:"coinType"`
	CoinObjectCount int    `json:"coinObjectCount"`
	TotalBalance    string `json:"totalBalance"`
}

// suix_getCoins response
type Coin struct {
	CoinType     string `json:"coinType"`
	CoinObjectID string `json:"coinObjectId"`
	Version      string `json:"version"`
	Digest       string `json:"digest"`
	Balance      string `json:"balance"`
}

type CoinPage struct {
	Data        []Coin  `json:"data"`
	NextCursor  *string `json:"nextCursor"`
	HasNextPage bool    `json:"hasNextPage"`
}

// unsafe_moveCall response
type TransactionBytes struct {
	TxBytes string `json:"txBytes"`
}

// sui_executeTransactionBlock request options and response
type ExecuteOptions struct {
	ShowEffects bool `json:"showEffects"`
	ShowEvents  bool `json:"showEvents"`
}

type TransactionBlockResponse struct {
	Digest  string          `json:"digest"`
	Effects json.RawMessage `json:"effects,omitempty"`
	Events  json.RawMessage `json:"events,omitempty"`
}
