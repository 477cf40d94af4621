package types

import (
	"bytes"
	"fmt"

	"github.com/koinledger/koin/common"
)

// MaxAddressLen bounds the byte length of account identifiers. Storage keys
// and wire records reject anything longer.
const MaxAddressLen = 25

// Address is an opaque byte-sequence account identifier. Two addresses with
// equal bytes are the same account; there is no other identity.
type Address []byte

// ParseAddress decodes a base58 string into a bounded address.
func ParseAddress(s string) (Address, error) {
	raw, err := common.DecodeBase58ToBytes(s)
	if err != nil {
		return nil, fmt.Errorf("could not parse address: %w", err)
	}
	addr := Address(raw)
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	return addr, nil
}

// Validate checks the address is non-empty and within the length bound.
func (a Address) Validate() error {
	if len(a) == 0 {
		return fmt.Errorf("address is empty")
	}
	if len(a) > MaxAddressLen {
		return fmt.Errorf("address exceeds %d bytes: got %d", MaxAddressLen, len(a))
	}
	return nil
}

// Equal reports byte equality with b.
func (a Address) Equal(b Address) bool {
	return bytes.Equal(a, b)
}

func (a Address) String() string {
	return common.EncodeBytesToBase58(a)
}
