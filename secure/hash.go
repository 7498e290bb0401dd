package secure

import (
	"crypto/sha256"
	"strings"
)

// DeriveAuthHash computes the 8-byte auth hash embedded in an envelope
// header: SHA-256 of the auth token with its leading "at" prefix stripped,
// truncated to the first 8 bytes.
func DeriveAuthHash(token string) ([AuthHashSize]byte, bool) {
	var out [AuthHashSize]byte
	trimmed := strings.TrimPrefix(token, "at")
	if trimmed == token || trimmed == "" {
		return out, false
	}
	sum := sha256.Sum256([]byte(trimmed))
	copy(out[:], sum[:AuthHashSize])
	return out, true
}

// DeriveDeviceHash computes the 8-byte device hash embedded in an envelope
// header: SHA-256 of the device serial, truncated to the first 8 bytes.
func DeriveDeviceHash(serial string) ([DeviceHashSize]byte, bool) {
	var out [DeviceHashSize]byte
	if serial == "" {
		return out, false
	}
	sum := sha256.Sum256([]byte(serial))
	copy(out[:], sum[:DeviceHashSize])
	return out, true
}
