package jsonrpc

import (
	"context"
	"net/http"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/handler"
	"github.com/creachadair/jrpc2/jhttp"

	"github.com/koinledger/koin/auth"
	"github.com/koinledger/koin/common"
	"github.com/koinledger/koin/config"
	"github.com/koinledger/koin/dispatch"
	"github.com/koinledger/koin/errors"
	"github.com/koinledger/koin/interfaces"
	"github.com/koinledger/koin/logx"
	"github.com/koinledger/koin/monitoring"
	"github.com/koinledger/koin/types"
)

// JSON-RPC error codes for the two failure severities. Reverted calls get a
// distinct code so clients know the whole transaction is void.
const (
	CodeInvocationFailed   = -32000
	CodeInvocationReverted = -32001
	CodeBadRequest         = -32002
)

// --- Params/Results ---

type invokeParams struct {
	EntryPoint uint32 `json:"entry_point"`
	// Args is the base58 argument payload; it doubles as the authorization
	// token passed to the oracle.
	Args string `json:"args"`
	// Caller is a transport-attributed identity (base58 address). Used when
	// no signature is supplied.
	Caller string `json:"caller,omitempty"`
	// SignerPubkey and Signature select the ed25519 signature oracle: the
	// signature must cover the raw args payload.
	SignerPubkey string `json:"signer_pubkey,omitempty"`
	Signature    string `json:"signature,omitempty"`
}

type invokeResponse struct {
	Value string `json:"value"`
}

type tokenInfoResponse struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals uint32 `json:"decimals"`
}

type totalSupplyResponse struct {
	Value uint64 `json:"value"`
}

type balanceOfRequest struct {
	Address string `json:"address"`
}

type balanceOfResponse struct {
	Address  string `json:"address"`
	Balance  uint64 `json:"balance"`
	Decimals uint32 `json:"decimals"`
}

type accountRCRequest struct {
	Address string `json:"address"`
}

type accountRCResponse struct {
	Address string `json:"address"`
	RC      uint64 `json:"rc"`
}

// Server exposes the contract entry point over JSON-RPC
type Server struct {
	addr        string
	contractSvc interfaces.ContractService
	querySvc    interfaces.TokenQueryService
	hostAddr    types.Address
	tuning      *config.TuningConfig
	httpServer  *http.Server
}

func NewServer(addr string, contractSvc interfaces.ContractService, querySvc interfaces.TokenQueryService, hostAddr types.Address, tuning *config.TuningConfig) *Server {
	if tuning == nil {
		tuning = config.DefaultTuning()
	}
	return &Server{
		addr:        addr,
		contractSvc: contractSvc,
		querySvc:    querySvc,
		hostAddr:    hostAddr,
		tuning:      tuning,
	}
}

// Start serves the method map until Stop or a listener error
func (s *Server) Start() error {
	methods := s.buildMethodMap()
	jh := jhttp.NewBridge(methods, &jhttp.BridgeOptions{Server: &jrpc2.ServerOptions{
		Concurrency: s.tuning.RPC.Concurrency,
	}})

	mux := http.NewServeMux()
	mux.Handle("/", http.MaxBytesHandler(jh, int64(s.tuning.RPC.MaxBodyBytes)))

	s.httpServer = &http.Server{Addr: s.addr, Handler: mux}
	logx.Info("JSONRPC", "Serving on ", s.addr)
	return s.httpServer.ListenAndServe()
}

// Stop shuts the listener down
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Handler returns the bridged handler without binding a listener (tests)
func (s *Server) Handler() http.Handler {
	return jhttp.NewBridge(s.buildMethodMap(), nil)
}

// Build jrpc2 method map
func (s *Server) buildMethodMap() handler.Map {
	return handler.Map{
		MethodContractInvoke: handler.New(func(ctx context.Context, p invokeParams) (*invokeResponse, error) {
			return s.rpcInvoke(p)
		}),
		MethodTokenInfo: handler.New(func(ctx context.Context) (*tokenInfoResponse, error) {
			return &tokenInfoResponse{
				Name:     s.querySvc.Name(),
				Symbol:   s.querySvc.Symbol(),
				Decimals: s.querySvc.Decimals(),
			}, nil
		}),
		MethodTokenTotalSupply: handler.New(func(ctx context.Context) (*totalSupplyResponse, error) {
			supply, err := s.querySvc.TotalSupply()
			if err != nil {
				return nil, toJRPC2Error(err)
			}
			return &totalSupplyResponse{Value: supply}, nil
		}),
		MethodTokenBalanceOf: handler.New(func(ctx context.Context, p balanceOfRequest) (*balanceOfResponse, error) {
			addr, err := types.ParseAddress(p.Address)
			if err != nil {
				return nil, jrpc2.Errorf(CodeBadRequest, "%s", err.Error())
			}
			balance, err := s.querySvc.BalanceOf(addr)
			if err != nil {
				return nil, toJRPC2Error(err)
			}
			return &balanceOfResponse{
				Address:  p.Address,
				Balance:  balance,
				Decimals: s.querySvc.Decimals(),
			}, nil
		}),
		MethodTokenAccountRC: handler.New(func(ctx context.Context, p accountRCRequest) (*accountRCResponse, error) {
			addr, err := types.ParseAddress(p.Address)
			if err != nil {
				return nil, jrpc2.Errorf(CodeBadRequest, "%s", err.Error())
			}
			rc, err := s.querySvc.GetAccountRC(addr)
			if err != nil {
				return nil, toJRPC2Error(err)
			}
			return &accountRCResponse{Address: p.Address, RC: rc}, nil
		}),
	}
}

func (s *Server) rpcInvoke(p invokeParams) (*invokeResponse, error) {
	entry := dispatch.EntryPointName(p.EntryPoint)
	monitoring.IncreaseInvocationCount(entry)
	logx.Debug("JSONRPC", "Invoke ", entry)

	args, err := decodeArgs(p.Args)
	if err != nil {
		return nil, jrpc2.Errorf(CodeBadRequest, "invalid args payload: %s", err.Error())
	}

	az, err := s.buildAuthorizer(p, args)
	if err != nil {
		return nil, jrpc2.Errorf(CodeBadRequest, "%s", err.Error())
	}

	// Minting authority is a deployment decision, not ledger logic: this
	// host only accepts mint invocations attributed to its own identity.
	// No configured host identity means nobody mints.
	if p.EntryPoint == dispatch.EntryMint && (len(s.hostAddr) == 0 || !az.Caller().Equal(s.hostAddr)) {
		monitoring.RecordFailedInvocation(entry, string(errors.ErrCodeAuthorizationFailure))
		le := errors.Fail(errors.ErrCodeAuthorizationFailure, "mint is restricted to the host authority")
		return nil, jrpc2.Errorf(CodeInvocationFailed, "%s", le.Message).WithData(le)
	}

	result, err := s.contractSvc.Invoke(az, p.EntryPoint, args)
	if err != nil {
		s.recordInvokeError(entry, err)
		return nil, toJRPC2Error(err)
	}
	return &invokeResponse{Value: common.EncodeBytesToBase58(result)}, nil
}

// buildAuthorizer picks the oracle for one invocation: signature oracle when
// the request is signed, otherwise the transport-attributed caller with no
// extra authority.
func (s *Server) buildAuthorizer(p invokeParams, args []byte) (auth.Authorizer, error) {
	if p.SignerPubkey != "" {
		pub, err := common.DecodeBase58ToBytes(p.SignerPubkey)
		if err != nil {
			return nil, err
		}
		sig, err := common.DecodeBase58ToBytes(p.Signature)
		if err != nil {
			return nil, err
		}
		return auth.NewSignatureOracle(pub, sig)
	}
	if p.Caller == "" {
		return auth.NewCallerOracle(nil), nil
	}
	caller, err := types.ParseAddress(p.Caller)
	if err != nil {
		return nil, err
	}
	return auth.NewCallerOracle(caller), nil
}

func (s *Server) recordInvokeError(entry string, err error) {
	if re, ok := errors.RevertOf(err); ok {
		monitoring.RecordRevertedInvocation(entry, string(re.Code))
		logx.Warn("JSONRPC", "Invocation reverted: ", err.Error())
		return
	}
	if le, ok := errors.FailureOf(err); ok {
		monitoring.RecordFailedInvocation(entry, string(le.Code))
		return
	}
	logx.Error("JSONRPC", "Invocation error: ", err.Error())
}

func decodeArgs(encoded string) ([]byte, error) {
	if encoded == "" {
		return []byte{}, nil
	}
	return common.DecodeBase58ToBytes(encoded)
}

// toJRPC2Error maps ledger severities onto JSON-RPC error codes
func toJRPC2Error(err error) error {
	if re, ok := errors.RevertOf(err); ok {
		return jrpc2.Errorf(CodeInvocationReverted, "%s", re.Message).WithData(re)
	}
	if le, ok := errors.FailureOf(err); ok {
		return jrpc2.Errorf(CodeInvocationFailed, "%s", le.Message).WithData(le)
	}
	return jrpc2.Errorf(CodeInvocationFailed, "%s", err.Error())
}
