package secure

// Envelope header layout and cipher parameters. The header is used
// verbatim as AEAD associated data, so its byte layout is load-bearing.
const (
	// HeaderSize is the fixed envelope header length: flags(1) +
	// counter_be(4) + auth_hash(8) + device_hash(8).
	HeaderSize = 21

	// FlagsSize, CounterSize, AuthHashSize, DeviceHashSize are the
	// individual field widths within the header.
	FlagsSize      = 1
	CounterSize    = 4
	AuthHashSize   = 8
	DeviceHashSize = 8

	// ReservedFlagsACK is the flags byte value ('A', 0x41) reserved to
	// disambiguate plaintext ACK frames from envelopes sharing a transport.
	ReservedFlagsACK = 0x41

	// CCMTagSize is the authentication tag length for the AES-CCM suites,
	// a non-standard 8-byte (M=8) parameterization.
	CCMTagSize = 8
	// CCMNonceSize is the nonce length for the AES-CCM suites (L=2).
	CCMNonceSize = 13

	// GCMTagSize is the authentication tag length for AES-GCM and
	// ChaCha20-Poly1305.
	GCMTagSize = 16
	// GCMNonceSize is the nonce length for AES-GCM and ChaCha20-Poly1305.
	GCMNonceSize = 12

	// FlagsCipherMask, FlagsCipherShift extract the 3-bit cipher suite
	// field from a packed Flags byte.
	FlagsCipherMask  = 0b1110_0000
	FlagsCipherShift = 5

	// FlagsVersionMask, FlagsVersionShift extract the 2-bit version field.
	FlagsVersionMask  = 0b0001_1000
	FlagsVersionShift = 3

	// FlagsMethodMask extracts the 3-bit method field (no shift needed).
	FlagsMethodMask = 0b0000_0111
)
