package secure

import "encoding/binary"

// CipherSuite identifies an AEAD construction by its 3-bit wire id.
type CipherSuite int

const (
	AES128CCM CipherSuite = iota
	AES128GCM
	AES256CCM
	AES256GCM
	ChaCha20Poly1305
)

// KeySize returns the symmetric key length required by suite.
func (s CipherSuite) KeySize() int {
	switch s {
	case AES128CCM, AES128GCM:
		return 16
	case AES256CCM, AES256GCM, ChaCha20Poly1305:
		return 32
	default:
		return 0
	}
}

// IsCCM reports whether suite uses the hand-rolled CCM mode (as opposed
// to GCM or ChaCha20-Poly1305).
func (s CipherSuite) IsCCM() bool {
	return s == AES128CCM || s == AES256CCM
}

// NonceSize returns the nonce length suite expects.
func (s CipherSuite) NonceSize() int {
	if s.IsCCM() {
		return CCMNonceSize
	}
	return GCMNonceSize
}

// TagSize returns the authentication tag length suite appends.
func (s CipherSuite) TagSize() int {
	if s.IsCCM() {
		return CCMTagSize
	}
	return GCMTagSize
}

func cipherSuiteFromID(id byte) (CipherSuite, bool) {
	switch id {
	case 0:
		return AES128CCM, true
	case 1:
		return AES128GCM, true
	case 2:
		return AES256CCM, true
	case 3:
		return AES256GCM, true
	case 4:
		return ChaCha20Poly1305, true
	default:
		return 0, false
	}
}

func (s CipherSuite) id() (byte, bool) {
	switch s {
	case AES128CCM:
		return 0, true
	case AES128GCM:
		return 1, true
	case AES256CCM:
		return 2, true
	case AES256GCM:
		return 3, true
	case ChaCha20Poly1305:
		return 4, true
	default:
		return 0, false
	}
}

// EnvelopeMethod mirrors the plaintext frame's method inside the flags
// byte, so a receiver can dispatch without first decrypting.
type EnvelopeMethod int

const (
	MethodPush EnvelopeMethod = iota
	MethodPull
	MethodPing
)

func envelopeMethodFromID(id byte) (EnvelopeMethod, bool) {
	switch id {
	case 0:
		return MethodPush, true
	case 1:
		return MethodPull, true
	case 2:
		return MethodPing, true
	default:
		return 0, false
	}
}

func (m EnvelopeMethod) id() (byte, bool) {
	switch m {
	case MethodPush:
		return 0, true
	case MethodPull:
		return 1, true
	case MethodPing:
		return 2, true
	default:
		return 0, false
	}
}

// EnvelopeVersion identifies the envelope wire format revision.
type EnvelopeVersion int

const (
	Version1 EnvelopeVersion = iota
)

// Flags is the packed header byte: cipher[3] | version[2] | method[3].
type Flags struct {
	Cipher  CipherSuite
	Version EnvelopeVersion
	Method  EnvelopeMethod
}

// Encode packs f into its single wire byte.
func (f Flags) Encode() (byte, bool) {
	cipherID, ok := f.Cipher.id()
	if !ok {
		return 0, false
	}
	methodID, ok := f.Method.id()
	if !ok {
		return 0, false
	}
	if f.Version != Version1 {
		return 0, false
	}
	b := (cipherID << FlagsCipherShift) & FlagsCipherMask
	b |= (byte(f.Version) << FlagsVersionShift) & FlagsVersionMask
	b |= methodID & FlagsMethodMask
	return b, true
}

// DecodeFlags unpacks a wire flags byte.
func DecodeFlags(b byte) (Flags, bool) {
	if b == ReservedFlagsACK {
		return Flags{}, false
	}
	cipherID := (b & FlagsCipherMask) >> FlagsCipherShift
	versionID := (b & FlagsVersionMask) >> FlagsVersionShift
	methodID := b & FlagsMethodMask

	cipher, ok := cipherSuiteFromID(cipherID)
	if !ok {
		return Flags{}, false
	}
	method, ok := envelopeMethodFromID(methodID)
	if !ok {
		return Flags{}, false
	}
	if versionID != byte(Version1) {
		return Flags{}, false
	}
	return Flags{Cipher: cipher, Version: EnvelopeVersion(versionID), Method: method}, true
}

// EnvelopeHeader is the fixed-size, unencrypted portion of a TagoTiP/S
// envelope. Its 21-byte wire form is fed directly to the AEAD as
// associated data: authenticated but never encrypted.
type EnvelopeHeader struct {
	Flags      Flags
	Counter    uint32
	AuthHash   [AuthHashSize]byte
	DeviceHash [DeviceHashSize]byte
}

// ToBytes serializes h into its 21-byte wire form.
func (h EnvelopeHeader) ToBytes() ([HeaderSize]byte, bool) {
	var out [HeaderSize]byte
	flagByte, ok := h.Flags.Encode()
	if !ok {
		return out, false
	}
	out[0] = flagByte
	binary.BigEndian.PutUint32(out[1:5], h.Counter)
	copy(out[5:13], h.AuthHash[:])
	copy(out[13:21], h.DeviceHash[:])
	return out, true
}

// HeaderFromBytes parses the first HeaderSize bytes of data as an
// envelope header.
func HeaderFromBytes(data []byte) (EnvelopeHeader, bool) {
	if len(data) < HeaderSize {
		return EnvelopeHeader{}, false
	}
	flags, ok := DecodeFlags(data[0])
	if !ok {
		return EnvelopeHeader{}, false
	}
	var h EnvelopeHeader
	h.Flags = flags
	h.Counter = binary.BigEndian.Uint32(data[1:5])
	copy(h.AuthHash[:], data[5:13])
	copy(h.DeviceHash[:], data[13:21])
	return h, true
}
