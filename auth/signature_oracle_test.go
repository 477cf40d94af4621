package auth

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koinledger/koin/types"
)

func generateKey(t *testing.T) (ed25519.PublicKey, ed25519.PrivateKey) {
	t.Helper()
	pub, prv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return pub, prv
}

func TestDeriveAddress(t *testing.T) {
	pub, _ := generateKey(t)

	addr := DeriveAddress(pub)
	require.NoError(t, addr.Validate())
	assert.Len(t, []byte(addr), types.MaxAddressLen)
	assert.EqualValues(t, addressVersion, addr[0])

	again := DeriveAddress(pub)
	assert.True(t, addr.Equal(again), "derivation must be deterministic")

	other, _ := generateKey(t)
	assert.False(t, addr.Equal(DeriveAddress(other)))
}

func TestSignatureOracleRejectsBadKeySize(t *testing.T) {
	_, err := NewSignatureOracle([]byte("short"), nil)
	assert.Error(t, err)
}

func TestSignatureOracleCallerIsDerivedAddress(t *testing.T) {
	pub, prv := generateKey(t)
	payload := []byte("call-data")

	oracle, err := NewSignatureOracle(pub, ed25519.Sign(prv, payload))
	require.NoError(t, err)
	assert.True(t, oracle.Caller().Equal(DeriveAddress(pub)))
}

func TestSignatureOracleCheckAuthority(t *testing.T) {
	pub, prv := generateKey(t)
	payload := []byte("transfer-args")
	addr := DeriveAddress(pub)

	oracle, err := NewSignatureOracle(pub, ed25519.Sign(prv, payload))
	require.NoError(t, err)

	assert.True(t, oracle.CheckAuthority(addr, payload))
	assert.False(t, oracle.CheckAuthority(addr, []byte("different-payload")))

	otherPub, _ := generateKey(t)
	assert.False(t, oracle.CheckAuthority(DeriveAddress(otherPub), payload),
		"signer may only authorize its own account")
}

func TestCallerOracle(t *testing.T) {
	caller := types.Address("the-caller")
	granted := types.Address("granted-account")

	oracle := NewCallerOracle(caller).Grant(granted)

	assert.True(t, oracle.Caller().Equal(caller))
	assert.True(t, oracle.CheckAuthority(granted, nil))
	assert.False(t, oracle.CheckAuthority(types.Address("stranger"), nil))
}
