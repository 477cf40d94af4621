package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/koinledger/koin/types"
)

func TestTransferArgsRoundTrip(t *testing.T) {
	in := TransferArgs{
		From:  types.Address("from-account"),
		To:    types.Address("to-account"),
		Value: 123456789,
	}

	var out TransferArgs
	require.NoError(t, out.Unmarshal(in.Marshal()))
	assert.True(t, in.From.Equal(out.From))
	assert.True(t, in.To.Equal(out.To))
	assert.Equal(t, in.Value, out.Value)
}

func TestAddressBoundEnforced(t *testing.T) {
	oversized := bytes.Repeat([]byte{0xAA}, types.MaxAddressLen+1)
	in := BalanceOfArgs{Owner: types.Address(oversized)}

	var out BalanceOfArgs
	err := out.Unmarshal(in.Marshal())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "owner")
}

func TestUnknownFieldsSkipped(t *testing.T) {
	in := MintArgs{To: types.Address("acct"), Value: 77}
	payload := in.Marshal()

	// append a field the schema does not know about
	payload = protowire.AppendTag(payload, 9, protowire.VarintType)
	payload = protowire.AppendVarint(payload, 42)

	var out MintArgs
	require.NoError(t, out.Unmarshal(payload))
	assert.True(t, out.To.Equal(in.To))
	assert.Equal(t, uint64(77), out.Value)
}

func TestEmptyPayloadDecodesToZeroValues(t *testing.T) {
	var out BurnArgs
	require.NoError(t, out.Unmarshal(nil))
	assert.Empty(t, out.From)
	assert.Equal(t, uint64(0), out.Value)
}

func TestMalformedPayloadRejected(t *testing.T) {
	// a bytes tag with a length running past the buffer
	payload := protowire.AppendTag(nil, 1, protowire.BytesType)
	payload = append(payload, 0x20) // claims 32 bytes, none follow

	var out BalanceOfArgs
	assert.Error(t, out.Unmarshal(payload))
}

func TestResultEncodings(t *testing.T) {
	var s StringResult
	require.NoError(t, s.Unmarshal((&StringResult{Value: "Koin"}).Marshal()))
	assert.Equal(t, "Koin", s.Value)

	var u Uint64Result
	require.NoError(t, u.Unmarshal((&Uint64Result{Value: 1 << 60}).Marshal()))
	assert.Equal(t, uint64(1)<<60, u.Value)

	var b BoolResult
	require.NoError(t, b.Unmarshal((&BoolResult{Value: true}).Marshal()))
	assert.True(t, b.Value)

	assert.Empty(t, EmptyResult{}.Marshal())
}
