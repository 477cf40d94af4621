package auth

import (
	"crypto/ed25519"
	"crypto/sha256"
	"fmt"

	"github.com/koinledger/koin/types"
)

const addressVersion = 0x01

// DeriveAddress maps an ed25519 public key to its 25-byte account address:
// version byte, 20 bytes of SHA-256(pubkey), 4 checksum bytes.
func DeriveAddress(pub ed25519.PublicKey) types.Address {
	digest := sha256.Sum256(pub)

	addr := make([]byte, 0, types.MaxAddressLen)
	addr = append(addr, addressVersion)
	addr = append(addr, digest[:20]...)

	check := sha256.Sum256(addr)
	check = sha256.Sum256(check[:])
	return types.Address(append(addr, check[:4]...))
}

// SignatureOracle authorizes accounts by an ed25519 signature over the call
// payload. The caller identity is the address derived from the verified
// signer key; CheckAuthority succeeds only when the signer key both signs
// the payload and derives the queried account.
type SignatureOracle struct {
	pub       ed25519.PublicKey
	signature []byte
	caller    types.Address
}

// NewSignatureOracle builds an oracle for one invocation. It does not verify
// anything yet; verification happens against the payload in CheckAuthority.
func NewSignatureOracle(pub ed25519.PublicKey, signature []byte) (*SignatureOracle, error) {
	if len(pub) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("invalid ed25519 public key size: %d", len(pub))
	}
	return &SignatureOracle{
		pub:       pub,
		signature: signature,
		caller:    DeriveAddress(pub),
	}, nil
}

func (o *SignatureOracle) Caller() types.Address {
	return o.caller
}

func (o *SignatureOracle) CheckAuthority(account types.Address, callData []byte) bool {
	if !o.caller.Equal(account) {
		return false
	}
	return ed25519.Verify(o.pub, callData, o.signature)
}
