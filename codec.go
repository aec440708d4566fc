package vlq

// DefaultMaxEncodedLen is the decode limit applied by the package-level
// functions.
const DefaultMaxEncodedLen = 16384

// ConfiguredCodec is a codec with explicit decode limits. It is safe for
// concurrent use.
type ConfiguredCodec struct {
	// MaxEncodedLen is the maximum number of bytes the codec will consume
	// while decoding a single value before stopping early. Zero disables
	// the limit. Encoding is never limited.
	MaxEncodedLen int
}

var defaultCodec = &ConfiguredCodec{
	MaxEncodedLen: DefaultMaxEncodedLen,
}
