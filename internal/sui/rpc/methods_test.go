package rpc

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRequest(t *testing.T, r *http.Request) Request {
	t.Helper()
	body, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	var req Request
	require.NoError(t, json.Unmarshal(body, &req))
	return req
}

func writeResult(t *testing.T, w http.ResponseWriter, id int, result string) {
	t.Helper()
	resp := Response{
		JSONRPC: "2.0",
		ID:      id,
		Result:  json.RawMessage(result),
	}
	require.NoError(t, json.NewEncoder(w).Encode(resp))
}

func TestGetAllBalances(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		assert.Equal(t, "suix_getAllBalances", req.Method)
		require.Len(t, req.Params, 1)
		assert.Equal(t, "0xowner", req.Params[0])

		writeResult(t, w, req.ID, `[
			{"coinType":"0x2::sui::SUI","coinObjectCount":12,"totalBalance":"90000000"},
			{"coinType":"0xabc::usdc::USDC","coinObjectCount":3,"totalBalance":"50"}
		]`)
	})
	defer server.Close()

	balances, err := client.GetAllBalances(context.Background(), "0xowner")
	require.NoError(t, err)
	require.Len(t, balances, 2)
	assert.Equal(t, "0x2::sui::SUI", balances[0].CoinType)
	assert.Equal(t, 12, balances[0].CoinObjectCount)
	assert.Equal(t, "0xabc::usdc::USDC", balances[1].CoinType)
}

func TestGetAllBalances_Error(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	defer server.Close()

	_, err := client.GetAllBalances(context.Background(), "0xowner")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "suix_getAllBalances")
}

func TestGetCoins_FirstPage(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		assert.Equal(t, "suix_getCoins", req.Method)
		require.Len(t, req.Params, 4)
		assert.Equal(t, "0xowner", req.Params[0])
		assert.Equal(t, "0x2::sui::SUI", req.Params[1])
		assert.Nil(t, req.Params[2], "first page sends a null cursor")
		assert.Equal(t, float64(50), req.Params[3])

		writeResult(t, w, req.ID, `{
			"data":[
				{"coinType":"0x2::sui::SUI","coinObjectId":"0xc1","version":"5","digest":"d1","balance":"100"},
				{"coinType":"0x2::sui::SUI","coinObjectId":"0xc2","version":"5","digest":"d2","balance":"200"}
			],
			"nextCursor":"0xc2",
			"hasNextPage":true
		}`)
	})
	defer server.Close()

	page, err := client.GetCoins(context.Background(), "0xowner", "0x2::sui::SUI", nil, 50)
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "0xc1", page.Data[0].CoinObjectID)
	assert.Equal(t, "0xc2", page.Data[1].CoinObjectID)
	require.NotNil(t, page.NextCursor)
	assert.Equal(t, "0xc2", *page.NextCursor)
	assert.True(t, page.HasNextPage)
}

func TestGetCoins_WithCursor(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		assert.Equal(t, "0xc2", req.Params[2])

		writeResult(t, w, req.ID, `{"data":[],"nextCursor":null,"hasNextPage":false}`)
	})
	defer server.Close()

	cursor := "0xc2"
	page, err := client.GetCoins(context.Background(), "0xowner", "0x2::sui::SUI", &cursor, 50)
	require.NoError(t, err)
	assert.Empty(t, page.Data)
	assert.Nil(t, page.NextCursor)
	assert.False(t, page.HasNextPage)
}

func TestBuildMergeCoins(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		assert.Equal(t, "unsafe_moveCall", req.Method)
		require.Len(t, req.Params, 8)
		assert.Equal(t, "0xsigner", req.Params[0])
		assert.Equal(t, "0x2", req.Params[1])
		assert.Equal(t, "pay", req.Params[2])
		assert.Equal(t, "join_vec", req.Params[3])
		assert.Equal(t, []interface{}{"0x2::sui::SUI"}, req.Params[4])

		args, ok := req.Params[5].([]interface{})
		require.True(t, ok)
		require.Len(t, args, 2)
		assert.Equal(t, "0xprimary", args[0])
		assert.Equal(t, []interface{}{"0xs1", "0xs2"}, args[1])

		assert.Nil(t, req.Params[6], "gas object is node-selected")
		assert.Equal(t, "50000000", req.Params[7])

		writeResult(t, w, req.ID, `{"txBytes":"dHhieXRlcw=="}`)
	})
	defer server.Close()

	txb, err := client.BuildMergeCoins(context.Background(), "0xsigner", "0x2::sui::SUI",
		"0xprimary", []string{"0xs1", "0xs2"}, 50_000_000)
	require.NoError(t, err)
	assert.Equal(t, "dHhieXRlcw==", txb.TxBytes)
}

func TestBuildMergeCoins_RPCError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		resp := Response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &RPCError{Code: -32000, Message: "insufficient gas"},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})
	defer server.Close()

	_, err := client.BuildMergeCoins(context.Background(), "0xsigner", "0x2::sui::SUI",
		"0xprimary", []string{"0xs1"}, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient gas")
}

func TestExecuteTransactionBlock(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		assert.Equal(t, "sui_executeTransactionBlock", req.Method)
		require.Len(t, req.Params, 4)
		assert.Equal(t, "dHhieXRlcw==", req.Params[0])
		assert.Equal(t, []interface{}{"c2ln"}, req.Params[1])

		opts, ok := req.Params[2].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, true, opts["showEffects"])
		assert.Equal(t, true, opts["showEvents"])

		assert.Equal(t, "WaitForLocalExecution", req.Params[3])

		writeResult(t, w, req.ID, `{
			"digest":"9Yx7vD2qQ",
			"effects":{"status":{"status":"success"}},
			"events":[]
		}`)
	})
	defer server.Close()

	resp, err := client.ExecuteTransactionBlock(context.Background(), "dHhieXRlcw==", "c2ln",
		ExecuteOptions{ShowEffects: true, ShowEvents: true})
	require.NoError(t, err)
	assert.Equal(t, "9Yx7vD2qQ", resp.Digest)
	assert.JSONEq(t, `{"status":{"status":"success"}}`, string(resp.Effects))
}

func TestExecuteTransactionBlock_Rejected(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		resp := Response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &RPCError{Code: -32002, Message: "stale object reference"},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})
	defer server.Close()

	_, err := client.ExecuteTransactionBlock(context.Background(), "dHhieXRlcw==", "c2ln", ExecuteOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stale object reference")
}
