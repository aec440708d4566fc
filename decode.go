package vlq

import (
	"bytes"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

var (
	// ErrUnexpectedEOF is returned when the byte source is exhausted before
	// a byte with a cleared continuation bit has been read.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrLengthExceeded is returned when an encoded value is longer than
	// the codec's MaxEncodedLen.
	ErrLengthExceeded = errors.New("encoded value too large to decode")
)

type byteReader struct {
	r   io.Reader
	buf []byte
}

func newByteReader(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return &byteReader{
		r:   r,
		buf: make([]byte, 1),
	}
}

func (r *byteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(r.r, r.buf); err != nil {
		return 0, err
	}
	return r.buf[0], nil
}

// Read decodes a single value from the Reader using the default codec.
func Read(r io.Reader) (*big.Int, error) {
	return defaultCodec.Read(r)
}

// Decode decodes a single value from the front of buf using the default
// codec. Bytes beyond the decoded value are ignored.
func Decode(buf []byte) (*big.Int, error) {
	return defaultCodec.Decode(buf)
}

// Read decodes a single value from the Reader. It consumes exactly the bytes
// that make up the value, reading them one at a time.
func (c *ConfiguredCodec) Read(r io.Reader) (*big.Int, error) {
	br := newByteReader(r)
	acc := new(big.Int)
	grp := new(big.Int)
	for n := 0; ; n++ {
		if c.MaxEncodedLen > 0 && n >= c.MaxEncodedLen {
			return nil, ErrLengthExceeded
		}
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, ErrUnexpectedEOF
			}
			return nil, err
		}
		payload := b & 0x7f
		if n == 0 && payload == 0 {
			// An all-zero payload on the first byte means zero, even when
			// its continuation bit is set. See the package documentation.
			return acc, nil
		}
		acc.Lsh(acc, 7)
		grp.SetUint64(uint64(payload))
		acc.Or(acc, grp)
		if b&0x80 == 0 {
			return acc, nil
		}
	}
}

// Decode decodes a single value from the front of buf. Bytes beyond the
// decoded value are ignored.
func (c *ConfiguredCodec) Decode(buf []byte) (*big.Int, error) {
	return c.Read(bytes.NewReader(buf))
}
