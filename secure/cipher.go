package secure

import (
	"crypto/aes"
	"crypto/cipher"

	"golang.org/x/crypto/chacha20poly1305"
)

// newAEAD constructs the crypto/cipher.AEAD implementation for suite and
// key, dispatching to the stdlib for AES-GCM, to golang.org/x/crypto for
// ChaCha20-Poly1305, and to the hand-rolled implementation in ccm.go for
// the two AES-CCM suites.
func newAEAD(suite CipherSuite, key []byte) (cipher.AEAD, *CryptoError) {
	if len(key) != suite.KeySize() {
		return nil, newCryptoError(ErrInvalidKeyLength)
	}
	switch suite {
	case AES128CCM, AES256CCM:
		aead, err := newCCM(key)
		if err != nil {
			return nil, newCryptoError(ErrInvalidKeyLength)
		}
		return aead, nil
	case AES128GCM, AES256GCM:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, newCryptoError(ErrInvalidKeyLength)
		}
		aead, err := cipher.NewGCMWithNonceSize(block, GCMNonceSize)
		if err != nil {
			return nil, newCryptoError(ErrInvalidKeyLength)
		}
		return aead, nil
	case ChaCha20Poly1305:
		aead, err := chacha20poly1305.New(key)
		if err != nil {
			return nil, newCryptoError(ErrInvalidKeyLength)
		}
		return aead, nil
	default:
		return nil, newCryptoError(ErrUnsupportedCipher)
	}
}

// AEADEncrypt seals plaintext under suite, key, and nonce, authenticating
// aad alongside it. It returns ciphertext with the authentication tag
// appended, matching the wire layout every suite shares.
func AEADEncrypt(suite CipherSuite, key, nonce, aad, plaintext []byte) ([]byte, *CryptoError) {
	if len(nonce) != suite.NonceSize() {
		return nil, newCryptoError(ErrInvalidNonceLength)
	}
	aead, cerr := newAEAD(suite, key)
	if cerr != nil {
		return nil, cerr
	}
	return aead.Seal(nil, nonce, plaintext, aad), nil
}

// AEADDecrypt opens ciphertext (which includes the trailing authentication
// tag) under suite, key, and nonce, authenticating aad. Any failure (wrong
// key, tampered ciphertext, mismatched aad, truncated input) is reported
// uniformly as ErrDecryptionFailed so a caller cannot use the error to
// distinguish the cause.
func AEADDecrypt(suite CipherSuite, key, nonce, aad, ciphertext []byte) ([]byte, *CryptoError) {
	if len(nonce) != suite.NonceSize() {
		return nil, newCryptoError(ErrInvalidNonceLength)
	}
	aead, cerr := newAEAD(suite, key)
	if cerr != nil {
		return nil, cerr
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, newCryptoError(ErrDecryptionFailed)
	}
	return plaintext, nil
}
