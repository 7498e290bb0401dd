package secure

import "encoding/binary"

// ConstructNonce builds the per-message AEAD nonce from the header's flags
// byte, a counter, and the device hash. CCM suites use a 13-byte nonce
// ([flags][0x00 x4][device_hash[:4]][counter_be]); GCM and ChaCha20-
// Poly1305 use a 12-byte nonce ([flags][0x00 x3][device_hash[:4]]
// [counter_be]). The leading flags byte binds the nonce to the selected
// cipher suite, method, and version so a nonce cannot be replayed across a
// suite or method switch.
func ConstructNonce(suite CipherSuite, flags byte, deviceHash [DeviceHashSize]byte, counter uint32) []byte {
	size := suite.NonceSize()
	nonce := make([]byte, size)
	nonce[0] = flags

	var counterBytes [4]byte
	binary.BigEndian.PutUint32(counterBytes[:], counter)

	if suite.IsCCM() {
		// [flags:1][0:4][device_hash[:4]:4][counter_be:4] = 13 bytes.
		copy(nonce[5:9], deviceHash[:4])
		copy(nonce[9:13], counterBytes[:])
	} else {
		// [flags:1][0:3][device_hash[:4]:4][counter_be:4] = 12 bytes.
		copy(nonce[4:8], deviceHash[:4])
		copy(nonce[8:12], counterBytes[:])
	}
	return nonce
}
