package secure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAuthToken = "ate2bd319014b24e0a8aca9f00aea4c0d0"
	testSerial    = "sensor-01"
)

func allSuites() []CipherSuite {
	return []CipherSuite{AES128CCM, AES128GCM, AES256CCM, AES256GCM, ChaCha20Poly1305}
}

func keyFor(suite CipherSuite) []byte {
	key := make([]byte, suite.KeySize())
	for i := range key {
		key[i] = byte(i)
	}
	return key
}

func TestSealOpenRoundTripAllSuites(t *testing.T) {
	for _, suite := range allSuites() {
		suite := suite
		t.Run(suite.id0(), func(t *testing.T) {
			key := keyFor(suite)
			inner := []byte("sensor-01|[temp:=23.5^C]")

			envelope, cerr := SealUplink(suite, MethodPush, key, testAuthToken, testSerial, 7, inner)
			require.Nil(t, cerr)
			assert.True(t, IsEnvelope(envelope))

			header, plaintext, cerr := OpenEnvelope(key, envelope)
			require.Nil(t, cerr)
			assert.Equal(t, inner, plaintext)
			assert.Equal(t, uint32(7), header.Counter)
			assert.Equal(t, suite, header.Flags.Cipher)
			assert.Equal(t, MethodPush, header.Flags.Method)
		})
	}
}

// id0 gives each suite a readable subtest name without adding an exported
// Stringer the rest of the package doesn't need.
func (s CipherSuite) id0() string {
	switch s {
	case AES128CCM:
		return "aes-128-ccm"
	case AES128GCM:
		return "aes-128-gcm"
	case AES256CCM:
		return "aes-256-ccm"
	case AES256GCM:
		return "aes-256-gcm"
	case ChaCha20Poly1305:
		return "chacha20-poly1305"
	default:
		return "unknown"
	}
}

func TestOpenEnvelopeFailsOnWrongKey(t *testing.T) {
	key := keyFor(AES128GCM)
	wrongKey := keyFor(AES128GCM)
	wrongKey[0] ^= 0xff

	envelope, cerr := SealUplink(AES128GCM, MethodPush, key, testAuthToken, testSerial, 1, []byte("payload"))
	require.Nil(t, cerr)

	_, _, cerr = OpenEnvelope(wrongKey, envelope)
	require.NotNil(t, cerr)
	assert.Equal(t, ErrDecryptionFailed, cerr.Kind)
}

func TestIsEnvelopeRejectsReservedACKFlag(t *testing.T) {
	assert.False(t, IsEnvelope([]byte{0x41, 0, 0}))
	assert.False(t, IsEnvelope(nil))
}

func TestSealRejectsInvalidAuthToken(t *testing.T) {
	key := keyFor(AES128GCM)
	_, cerr := SealUplink(AES128GCM, MethodPush, key, "not-a-token", testSerial, 1, []byte("x"))
	require.NotNil(t, cerr)
	assert.Equal(t, ErrInvalidAuthToken, cerr.Kind)
}

func TestFlagsEncodeDecodeRoundTrip(t *testing.T) {
	for _, suite := range allSuites() {
		for _, method := range []EnvelopeMethod{MethodPush, MethodPull, MethodPing} {
			f := Flags{Cipher: suite, Version: Version1, Method: method}
			b, ok := f.Encode()
			require.True(t, ok)
			require.NotEqual(t, byte(ReservedFlagsACK), b)

			decoded, ok := DecodeFlags(b)
			require.True(t, ok)
			assert.Equal(t, f, decoded)
		}
	}
}

func TestSealUplinkCCMVector(t *testing.T) {
	key := []byte{0xfe, 0x09, 0xda, 0x81, 0xbc, 0x44, 0x00, 0xee, 0x12, 0xab, 0x56, 0xcd, 0x78, 0xef, 0x90, 0x12}
	envelope, cerr := SealUplink(AES128CCM, MethodPush, key, testAuthToken, "sensor-01", 42, []byte("sensor-01|[temp:=32]"))
	require.Nil(t, cerr)

	want := []byte{
		0x00, 0x00, 0x00, 0x00, 0x2a, 0x4d, 0xee, 0xdd, 0x7b, 0xab, 0x88, 0x17, 0xec,
		0xab, 0x77, 0x88, 0xd2, 0x2e, 0xb7, 0x37, 0x2f,
		0xc8, 0xc5, 0xaa, 0x56, 0xd7, 0x55, 0x58, 0x2b, 0xac, 0xea, 0x13, 0xbb, 0x57, 0x24, 0x93, 0xbb, 0x8c, 0xb1, 0x08, 0x03,
		0xcf, 0x82, 0x6f, 0xdb, 0x83, 0x3b, 0x79, 0xc6,
	}
	assert.Len(t, envelope, 49)
	assert.Equal(t, want, envelope)
}

func TestHeaderToBytesFromBytesRoundTrip(t *testing.T) {
	h := EnvelopeHeader{
		Flags:      Flags{Cipher: AES256GCM, Version: Version1, Method: MethodPull},
		Counter:    123456,
		AuthHash:   [AuthHashSize]byte{1, 2, 3, 4, 5, 6, 7, 8},
		DeviceHash: [DeviceHashSize]byte{8, 7, 6, 5, 4, 3, 2, 1},
	}
	bytes, ok := h.ToBytes()
	require.True(t, ok)
	assert.Len(t, bytes, HeaderSize)

	reparsed, ok := HeaderFromBytes(bytes[:])
	require.True(t, ok)
	assert.Equal(t, h, reparsed)
}
