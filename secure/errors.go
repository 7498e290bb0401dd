package secure

// CryptoErrorKind identifies why a seal or open operation failed.
type CryptoErrorKind int

const (
	// ErrInvalidHeader means the header is too short or otherwise
	// malformed.
	ErrInvalidHeader CryptoErrorKind = iota
	// ErrUnsupportedCipher means the flags field names a cipher suite
	// this build does not implement.
	ErrUnsupportedCipher
	// ErrUnsupportedVersionCode means the flags field names an
	// envelope version this build does not implement.
	ErrUnsupportedVersionCode
	// ErrUnsupportedMethod means the flags field names a method this
	// build does not implement.
	ErrUnsupportedMethod
	// ErrInvalidKeyLength means the supplied key is the wrong length for
	// the selected cipher suite.
	ErrInvalidKeyLength
	// ErrInvalidNonceLength means a nonce of the wrong length was
	// constructed or supplied.
	ErrInvalidNonceLength
	// ErrInvalidAuthToken means the auth token used to derive a hash is
	// malformed.
	ErrInvalidAuthToken
	// ErrInvalidSerial means the device serial used to derive a hash is
	// empty or malformed.
	ErrInvalidSerial
	// ErrEncryptionFailed means the underlying AEAD returned an error
	// while sealing.
	ErrEncryptionFailed
	// ErrDecryptionFailed collapses every possible cause of AEAD open
	// failure (wrong key, tampered ciphertext, wrong AAD, truncated
	// input) into a single variant, so a caller cannot distinguish
	// "bad key" from "tampered data" from error type alone.
	ErrDecryptionFailed
	// ErrPlaintextACK means the input is not an envelope at all (it is
	// a plaintext ACK frame or empty data).
	ErrPlaintextACK
)

var cryptoErrorDescriptions = [...]string{
	ErrInvalidHeader:          "invalid envelope header",
	ErrUnsupportedCipher:      "unsupported cipher suite",
	ErrUnsupportedVersionCode: "unsupported envelope version",
	ErrUnsupportedMethod:      "unsupported envelope method",
	ErrInvalidKeyLength:       "invalid key length",
	ErrInvalidNonceLength:     "invalid nonce length",
	ErrInvalidAuthToken:       "invalid auth token",
	ErrInvalidSerial:          "invalid serial",
	ErrEncryptionFailed:       "encryption failed",
	ErrDecryptionFailed:       "decryption failed",
	ErrPlaintextACK:           "data is not an envelope",
}

func (k CryptoErrorKind) String() string {
	if int(k) < 0 || int(k) >= len(cryptoErrorDescriptions) {
		return "unknown crypto error"
	}
	return cryptoErrorDescriptions[k]
}

// CryptoError is returned by every sealing and opening operation in this
// package.
type CryptoError struct {
	Kind CryptoErrorKind
}

func newCryptoError(kind CryptoErrorKind) *CryptoError {
	return &CryptoError{Kind: kind}
}

func (e *CryptoError) Error() string {
	return e.Kind.String()
}
