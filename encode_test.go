package vlq

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		value   string
		encoded string
	}{
		{"0", "00"},
		{"1", "01"},
		{"127", "7f"},
		{"128", "8100"},
		{"300", "822c"},
		{"16383", "ff7f"},
		{"16384", "818000"},
		{"18446744073709551616", "82808080808080808000"},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			v, ok := new(big.Int).SetString(tt.value, 10)
			require.True(t, ok)
			exp, err := hex.DecodeString(tt.encoded)
			require.NoError(t, err)
			buf, err := Encode(v)
			require.NoError(t, err)
			require.Equal(t, exp, buf)
			require.Equal(t, len(buf), EncodedLen(v))
		})
	}
}

func TestEncode_Negative(t *testing.T) {
	_, err := Encode(big.NewInt(-1))
	require.ErrorIs(t, err, ErrNegativeValue)

	// Write must produce no partial output.
	var buf bytes.Buffer
	err = Write(&buf, big.NewInt(-300))
	require.ErrorIs(t, err, ErrNegativeValue)
	require.Zero(t, buf.Len())
}

func TestEncode_MinimalFirstByte(t *testing.T) {
	for i := int64(1); i <= 4096; i++ {
		buf, err := Encode(big.NewInt(i))
		require.NoError(t, err)
		require.NotZero(t, buf[0]&0x7f)
	}
}

func TestEncode_Deterministic(t *testing.T) {
	v, ok := new(big.Int).SetString("123456789123456789123456789", 10)
	require.True(t, ok)
	first, err := Encode(v)
	require.NoError(t, err)
	second, err := Encode(v)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestRoundTrip(t *testing.T) {
	v := big.NewInt(1)
	for i := 0; i < 200; i++ {
		buf, err := Encode(v)
		require.NoError(t, err)
		require.Equal(t, EncodedLen(v), len(buf))
		got, err := Decode(buf)
		require.NoError(t, err)
		require.Zero(t, v.Cmp(got))

		v.Mul(v, big.NewInt(37))
		v.Add(v, big.NewInt(11))
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, big.NewInt(300)))
	require.Equal(t, []byte{0x82, 0x2c}, buf.Bytes())

	v, err := Read(&buf)
	require.NoError(t, err)
	require.EqualValues(t, 300, v.Int64())
}
