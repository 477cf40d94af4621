package store

// Space identifies a logical key-value space inside the state database.
// The supply space holds a single record under an empty sub-key; the balance
// space is keyed by account address.
type Space uint32

const (
	SpaceSupply  Space = 0
	SpaceBalance Space = 1
	SpaceRC      Space = 2
)

// Declare database key prefix for each space
const (
	PrefixSupply  = "supply:"
	PrefixBalance = "balance:"
	PrefixRC      = "rc:"
)

// SupplyKey is the sub-key of the single total-supply record
var SupplyKey = []byte{}

func spacePrefix(space Space) (string, bool) {
	switch space {
	case SpaceSupply:
		return PrefixSupply, true
	case SpaceBalance:
		return PrefixBalance, true
	case SpaceRC:
		return PrefixRC, true
	default:
		return "", false
	}
}
