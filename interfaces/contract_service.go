package interfaces

import (
	"github.com/koinledger/koin/auth"
	"github.com/koinledger/koin/types"
)

// ContractService is the entry-point surface the rpc server drives
type ContractService interface {
	Invoke(az auth.Authorizer, entryPoint uint32, args []byte) ([]byte, error)
}

// TokenQueryService is the read-only token surface for convenience methods
type TokenQueryService interface {
	Name() string
	Symbol() string
	Decimals() uint32
	TotalSupply() (uint64, error)
	BalanceOf(owner types.Address) (uint64, error)
	GetAccountRC(account types.Address) (uint64, error)
}
