package secure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testDeviceHash = [DeviceHashSize]byte{0xab, 0x77, 0x88, 0xd2, 0x2e, 0xb7, 0x37, 0x2f}

func TestConstructNonceCCMVector(t *testing.T) {
	nonce := ConstructNonce(AES128CCM, 0x00, testDeviceHash, 42)
	want := []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0xab, 0x77, 0x88, 0xd2, 0x00, 0x00, 0x00, 0x2a}
	assert.Equal(t, want, nonce)
	assert.Len(t, nonce, CCMNonceSize)
}

func TestConstructNonceGCMVector(t *testing.T) {
	nonce := ConstructNonce(AES128GCM, 0x08, testDeviceHash, 1)
	want := []byte{0x08, 0x00, 0x00, 0x00, 0xab, 0x77, 0x88, 0xd2, 0x00, 0x00, 0x00, 0x01}
	assert.Equal(t, want, nonce)
	assert.Len(t, nonce, GCMNonceSize)
}

func TestConstructNonceChaChaVector(t *testing.T) {
	nonce := ConstructNonce(ChaCha20Poly1305, 0x80, testDeviceHash, 1)
	want := []byte{0x80, 0x00, 0x00, 0x00, 0xab, 0x77, 0x88, 0xd2, 0x00, 0x00, 0x00, 0x01}
	assert.Equal(t, want, nonce)
	assert.Len(t, nonce, GCMNonceSize)
}
