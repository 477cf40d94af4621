package jsonrpc

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koinledger/koin/auth"
	"github.com/koinledger/koin/codec"
	"github.com/koinledger/koin/common"
	"github.com/koinledger/koin/db"
	"github.com/koinledger/koin/dispatch"
	"github.com/koinledger/koin/ledger"
	"github.com/koinledger/koin/store"
	"github.com/koinledger/koin/types"
)

var testHostAddr = types.Address("host-authority")

type rpcError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result,omitempty"`
	Error  *rpcError       `json:"error,omitempty"`
}

func newTestRPCServer(t *testing.T) (*httptest.Server, *ledger.Token) {
	t.Helper()

	stateStore, err := store.NewStateStore(db.NewMemoryProvider())
	require.NoError(t, err)
	token := ledger.NewToken(store.NewTokenStore(stateStore))
	dispatcher := dispatch.NewDispatcher(token, testHostAddr)

	srv := NewServer("127.0.0.1:0", dispatcher, token, testHostAddr, nil)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, token
}

func rpcCall(t *testing.T, ts *httptest.Server, method string, params any) rpcResponse {
	t.Helper()

	req := map[string]any{"jsonrpc": "2.0", "id": 1, "method": method}
	if params != nil {
		req["params"] = params
	}
	body, err := json.Marshal(req)
	require.NoError(t, err)

	httpResp, err := http.Post(ts.URL, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer httpResp.Body.Close()

	var resp rpcResponse
	require.NoError(t, json.NewDecoder(httpResp.Body).Decode(&resp))
	return resp
}

func invokeViaRPC(t *testing.T, ts *httptest.Server, entryPoint uint32, args []byte, extra map[string]string) rpcResponse {
	t.Helper()

	params := map[string]any{
		"entry_point": entryPoint,
		"args":        common.EncodeBytesToBase58(args),
	}
	for k, v := range extra {
		params[k] = v
	}
	return rpcCall(t, ts, MethodContractInvoke, params)
}

func hostMint(t *testing.T, ts *httptest.Server, to types.Address, value uint64) {
	t.Helper()

	args := codec.MintArgs{To: to, Value: value}
	resp := invokeViaRPC(t, ts, dispatch.EntryMint, args.Marshal(), map[string]string{
		"caller": testHostAddr.String(),
	})
	require.Nil(t, resp.Error, "host mint must succeed")
}

func TestTokenInfoMethod(t *testing.T) {
	ts, _ := newTestRPCServer(t)

	resp := rpcCall(t, ts, MethodTokenInfo, nil)
	require.Nil(t, resp.Error)

	var info tokenInfoResponse
	require.NoError(t, json.Unmarshal(resp.Result, &info))
	assert.Equal(t, "Koin", info.Name)
	assert.Equal(t, "KOIN", info.Symbol)
	assert.Equal(t, uint32(8), info.Decimals)
}

func TestQueryMethodsReflectMintedState(t *testing.T) {
	ts, _ := newTestRPCServer(t)
	alice := types.Address("alice-account")
	hostMint(t, ts, alice, 5000)

	resp := rpcCall(t, ts, MethodTokenTotalSupply, nil)
	require.Nil(t, resp.Error)
	var supply totalSupplyResponse
	require.NoError(t, json.Unmarshal(resp.Result, &supply))
	assert.Equal(t, uint64(5000), supply.Value)

	resp = rpcCall(t, ts, MethodTokenBalanceOf, map[string]string{"address": alice.String()})
	require.Nil(t, resp.Error)
	var balance balanceOfResponse
	require.NoError(t, json.Unmarshal(resp.Result, &balance))
	assert.Equal(t, uint64(5000), balance.Balance)

	resp = rpcCall(t, ts, MethodTokenAccountRC, map[string]string{"address": alice.String()})
	require.Nil(t, resp.Error)
	var rc accountRCResponse
	require.NoError(t, json.Unmarshal(resp.Result, &rc))
	assert.Equal(t, uint64(5000), rc.RC)
}

func TestBalanceOfRejectsBadAddress(t *testing.T) {
	ts, _ := newTestRPCServer(t)

	resp := rpcCall(t, ts, MethodTokenBalanceOf, map[string]string{"address": "not/base58/0OIl"})
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeBadRequest, resp.Error.Code)
}

func TestMintRestrictedToHostAuthority(t *testing.T) {
	ts, token := newTestRPCServer(t)
	alice := types.Address("alice-account")

	args := codec.MintArgs{To: alice, Value: 100}
	resp := invokeViaRPC(t, ts, dispatch.EntryMint, args.Marshal(), map[string]string{
		"caller": alice.String(),
	})
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeInvocationFailed, resp.Error.Code)

	supply, err := token.TotalSupply()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), supply, "rejected mint must not touch state")
}

func TestMintRejectedWithoutHostAuthority(t *testing.T) {
	stateStore, err := store.NewStateStore(db.NewMemoryProvider())
	require.NoError(t, err)
	token := ledger.NewToken(store.NewTokenStore(stateStore))
	dispatcher := dispatch.NewDispatcher(token, nil)

	srv := NewServer("127.0.0.1:0", dispatcher, token, nil, nil)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	// With no host identity configured the anonymous caller is also nil;
	// the gate must still refuse to mint.
	args := codec.MintArgs{To: types.Address("mallory"), Value: 1000000}
	resp := invokeViaRPC(t, ts, dispatch.EntryMint, args.Marshal(), nil)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeInvocationFailed, resp.Error.Code)

	supply, err := token.TotalSupply()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), supply)
}

func TestInvokeTransferAsCaller(t *testing.T) {
	ts, token := newTestRPCServer(t)
	alice := types.Address("alice-account")
	bob := types.Address("bob-account")
	hostMint(t, ts, alice, 1000)

	args := codec.TransferArgs{From: alice, To: bob, Value: 400}
	resp := invokeViaRPC(t, ts, dispatch.EntryTransfer, args.Marshal(), map[string]string{
		"caller": alice.String(),
	})
	require.Nil(t, resp.Error)

	bobBalance, err := token.BalanceOf(bob)
	require.NoError(t, err)
	assert.Equal(t, uint64(400), bobBalance)
}

func TestInvokeTransferUnauthorizedFails(t *testing.T) {
	ts, _ := newTestRPCServer(t)
	alice := types.Address("alice-account")
	hostMint(t, ts, alice, 1000)

	args := codec.TransferArgs{From: alice, To: types.Address("bob-account"), Value: 400}
	resp := invokeViaRPC(t, ts, dispatch.EntryTransfer, args.Marshal(), map[string]string{
		"caller": types.Address("mallory").String(),
	})
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeInvocationFailed, resp.Error.Code)
}

func TestInvokeSignedTransfer(t *testing.T) {
	ts, token := newTestRPCServer(t)

	pub, prv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	signer := auth.DeriveAddress(pub)
	bob := types.Address("bob-account")
	hostMint(t, ts, signer, 1000)

	args := codec.TransferArgs{From: signer, To: bob, Value: 250}
	payload := args.Marshal()
	resp := invokeViaRPC(t, ts, dispatch.EntryTransfer, payload, map[string]string{
		"signer_pubkey": common.EncodeBytesToBase58(pub),
		"signature":     common.EncodeBytesToBase58(ed25519.Sign(prv, payload)),
	})
	require.Nil(t, resp.Error)

	bobBalance, err := token.BalanceOf(bob)
	require.NoError(t, err)
	assert.Equal(t, uint64(250), bobBalance)
}

func TestInvokeUnknownEntryPointReverts(t *testing.T) {
	ts, _ := newTestRPCServer(t)

	resp := invokeViaRPC(t, ts, 0xdeadbeef, nil, nil)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeInvocationReverted, resp.Error.Code)
}

func TestInvokeReturnsEncodedResult(t *testing.T) {
	ts, _ := newTestRPCServer(t)
	alice := types.Address("alice-account")
	hostMint(t, ts, alice, 777)

	args := codec.BalanceOfArgs{Owner: alice}
	resp := invokeViaRPC(t, ts, dispatch.EntryBalanceOf, args.Marshal(), nil)
	require.Nil(t, resp.Error)

	var out invokeResponse
	require.NoError(t, json.Unmarshal(resp.Result, &out))
	raw, err := common.DecodeBase58ToBytes(out.Value)
	require.NoError(t, err)

	var result codec.Uint64Result
	require.NoError(t, result.Unmarshal(raw))
	assert.Equal(t, uint64(777), result.Value)
}
