package secure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveAuthHashVector(t *testing.T) {
	got, ok := DeriveAuthHash("ate2bd319014b24e0a8aca9f00aea4c0d0")
	require.True(t, ok)
	want := [AuthHashSize]byte{0x4d, 0xee, 0xdd, 0x7b, 0xab, 0x88, 0x17, 0xec}
	assert.Equal(t, want, got)
}

func TestDeriveDeviceHashVector(t *testing.T) {
	got, ok := DeriveDeviceHash("sensor-01")
	require.True(t, ok)
	want := [DeviceHashSize]byte{0xab, 0x77, 0x88, 0xd2, 0x2e, 0xb7, 0x37, 0x2f}
	assert.Equal(t, want, got)
}

func TestDeriveAuthHashRejectsMissingPrefix(t *testing.T) {
	_, ok := DeriveAuthHash("2bd319014b24e0a8aca9f00aea4c0d0")
	assert.False(t, ok)
}

func TestDeriveDeviceHashRejectsEmpty(t *testing.T) {
	_, ok := DeriveDeviceHash("")
	assert.False(t, ok)
}
