package jsonrpc

// JSON-RPC Method name constants
const (
	MethodContractInvoke = "contract.invoke"

	MethodTokenInfo        = "token.info"
	MethodTokenTotalSupply = "token.gettotalsupply"
	MethodTokenBalanceOf   = "token.getbalance"
	MethodTokenAccountRC   = "token.getaccountrc"
)
