package config

// Token display configuration. These are pure constants: the query entry
// points return them without touching state.
const (
	TokenName     = "Koin"
	TokenSymbol   = "KOIN"
	TokenDecimals = uint32(8)

	MaxNameLen   = 32
	MaxSymbolLen = 8
)
