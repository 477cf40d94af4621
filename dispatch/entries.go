package dispatch

// Entry-point identifiers. These are the stable opcodes hosts dispatch on;
// they never change once a contract is deployed.
const (
	EntryGetAccountRC     uint32 = 0x2d464aab
	EntryConsumeAccountRC uint32 = 0x80e3f5c9
	EntryName             uint32 = 0x82a3537f
	EntrySymbol           uint32 = 0xb76a7ca1
	EntryDecimals         uint32 = 0xee80fd2f
	EntryTotalSupply      uint32 = 0xb0da3934
	EntryBalanceOf        uint32 = 0x5c721497
	EntryTransfer         uint32 = 0x27f576ca
	EntryMint             uint32 = 0xdc6f17bb
	EntryBurn             uint32 = 0x859facc5
	EntryAuthorize        uint32 = 0x4a2dbd90
)

// EntryPointName returns a readable name for logs and metrics
func EntryPointName(entryPoint uint32) string {
	switch entryPoint {
	case EntryGetAccountRC:
		return "get_account_rc"
	case EntryConsumeAccountRC:
		return "consume_account_rc"
	case EntryName:
		return "name"
	case EntrySymbol:
		return "symbol"
	case EntryDecimals:
		return "decimals"
	case EntryTotalSupply:
		return "total_supply"
	case EntryBalanceOf:
		return "balance_of"
	case EntryTransfer:
		return "transfer"
	case EntryMint:
		return "mint"
	case EntryBurn:
		return "burn"
	case EntryAuthorize:
		return "authorize"
	default:
		return "unknown"
	}
}
