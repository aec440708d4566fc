package vlq

import (
	"io"
	"math/big"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// ErrOverflow is returned when a decoded value does not fit the requested
// fixed-width integer type.
var ErrOverflow = errors.New("decoded value overflows target type")

// EncodeInt encodes a fixed-width integer using the default codec. Negative
// values fail with ErrNegativeValue.
func EncodeInt[T constraints.Integer](v T) ([]byte, error) {
	return defaultCodec.Encode(widen(v))
}

// WriteInt encodes a fixed-width integer using the default codec and writes
// the result to w.
func WriteInt[T constraints.Integer](w io.Writer, v T) error {
	return defaultCodec.Write(w, widen(v))
}

// DecodeInt decodes a value from the front of buf into a fixed-width integer
// type. It fails with ErrOverflow if the decoded value does not fit in T.
func DecodeInt[T constraints.Integer](buf []byte) (T, error) {
	v, err := defaultCodec.Decode(buf)
	if err != nil {
		return 0, err
	}
	return narrow[T](v)
}

// ReadInt decodes a value from the Reader into a fixed-width integer type.
// It fails with ErrOverflow if the decoded value does not fit in T.
func ReadInt[T constraints.Integer](r io.Reader) (T, error) {
	v, err := defaultCodec.Read(r)
	if err != nil {
		return 0, err
	}
	return narrow[T](v)
}

func widen[T constraints.Integer](v T) *big.Int {
	if v < 0 {
		return big.NewInt(int64(v))
	}
	return new(big.Int).SetUint64(uint64(v))
}

func narrow[T constraints.Integer](v *big.Int) (T, error) {
	if !v.IsUint64() {
		return 0, ErrOverflow
	}
	u := v.Uint64()
	out := T(u)
	if out < 0 || uint64(out) != u {
		return 0, ErrOverflow
	}
	return out, nil
}
