/*
Package vlq implements a variable-length quantity encoding for unbounded
non-negative integers.

A value is encoded as one or more bytes, most-significant group first. In each
byte, bit 7 is a continuation flag and bits 6-0 carry payload:

	- The high bit is set on every byte except the last.
	- Bytes after the first always carry a full 7 payload bits.
	- The first byte is trimmed to the value's significant bits: only the
	  bits from its highest set payload bit down to bit 0 are meaningful,
	  so the encoding of a positive value never begins with an all-zero
	  payload group.
	- Zero is encoded as the single byte 0x00.

For example, 300 (binary 100101100) splits into the groups 10 and 0101100 and
encodes as 0x82 0x2c.

The easiest way to use this library is through the package-level functions,
which decode with a default limit of DefaultMaxEncodedLen bytes per value:

	buf, err := vlq.Encode(big.NewInt(300))
	v, err := vlq.Decode(buf)

or, against a stream:

	err := vlq.Write(w, big.NewInt(300))
	v, err := vlq.Read(r)

Fixed-width integer types are adapted through the generic EncodeInt, DecodeInt,
ReadInt and WriteInt functions, which fail with ErrOverflow when a decoded
value does not fit the requested type.

Quirk: a first byte whose entire 7-bit payload is zero decodes to the value
zero even when its continuation bit is set. Decoding stops at that byte and any
following bytes are left unread. Encode never produces such a sequence, but
decoders must accept it.
*/
package vlq
