package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koinledger/koin/errors"
)

func TestAccountRCMirrorsBalance(t *testing.T) {
	token, _ := newTestToken(t)
	require.NoError(t, token.Mint(alice, 100))

	rc, err := token.GetAccountRC(alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), rc)

	rc, err = token.GetAccountRC(bob)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), rc)
}

func TestConsumeAccountRC(t *testing.T) {
	token, _ := newTestToken(t)
	require.NoError(t, token.Mint(alice, 100))

	require.NoError(t, token.ConsumeAccountRC(alice, 30))
	rc, err := token.GetAccountRC(alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(70), rc)

	// consuming more than what remains is a recoverable failure
	err = token.ConsumeAccountRC(alice, 71)
	le, ok := errors.FailureOf(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeInsufficientRC, le.Code)
}

func TestAccountRCClampsWhenBalanceDrops(t *testing.T) {
	token, _ := newTestToken(t)
	require.NoError(t, token.Mint(alice, 100))
	require.NoError(t, token.ConsumeAccountRC(alice, 80))

	// spending below the consumed mark must not underflow the RC budget
	require.NoError(t, token.Transfer(asCaller(alice), alice, bob, 50, nil))

	rc, err := token.GetAccountRC(alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), rc)
}
