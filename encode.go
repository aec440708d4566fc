package vlq

import (
	"io"
	"math/big"

	"github.com/pkg/errors"
)

// ErrNegativeValue is returned when a negative value is passed to Encode or
// Write. The encoding has no sign bit.
var ErrNegativeValue = errors.New("cannot encode negative value")

// Encode encodes v using the default codec.
func Encode(v *big.Int) ([]byte, error) {
	return defaultCodec.Encode(v)
}

// Write encodes v using the default codec and writes the result to w.
func Write(w io.Writer, v *big.Int) error {
	return defaultCodec.Write(w, v)
}

// EncodedLen returns the number of bytes Encode produces for v.
func EncodedLen(v *big.Int) int {
	if v.Sign() <= 0 {
		return 1
	}
	return (v.BitLen() + 6) / 7
}

// Encode returns the minimal encoding of v: 7-bit groups in big-endian
// order, the first group trimmed to the value's significant bits.
func (c *ConfiguredCodec) Encode(v *big.Int) ([]byte, error) {
	if v.Sign() < 0 {
		return nil, ErrNegativeValue
	}
	if v.Sign() == 0 {
		return []byte{0x00}, nil
	}

	buf := make([]byte, EncodedLen(v))
	rest := new(big.Int).Set(v)
	for i := len(buf) - 1; i >= 0; i-- {
		// rest is nonzero until the top group has been extracted, so the
		// low word is always present.
		b := byte(rest.Bits()[0]) & 0x7f
		if i != len(buf)-1 {
			b |= 0x80
		}
		buf[i] = b
		rest.Rsh(rest, 7)
	}
	return buf, nil
}

// Write encodes v and writes the result to w in a single call. Nothing is
// written if v cannot be encoded.
func (c *ConfiguredCodec) Write(w io.Writer, v *big.Int) error {
	buf, err := c.Encode(v)
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}
