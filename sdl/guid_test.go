package sdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGUIDString(t *testing.T) {
	g := GUID{0x03, 0x00, 0x00, 0x00, 0x5e, 0x04, 0x00, 0x00, 0x8e, 0x02, 0x00, 0x00, 0x14, 0x01, 0x00, 0x00}
	assert.Equal(t, "030000005e0400008e02000014010000", g.String())
}

func TestGUIDRoundTrip(t *testing.T) {
	g := GUID{0xde, 0xad, 0xbe, 0xef, 0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef, 0x00, 0xff, 0x10, 0x20}
	parsed, err := GUIDFromString(g.String())
	require.NoError(t, err)
	assert.Equal(t, g, parsed)
}

func TestGUIDFromStringUppercase(t *testing.T) {
	parsed, err := GUIDFromString("DEADBEEF00000000000000000000000A")
	require.NoError(t, err)
	assert.Equal(t, GUID{0xde, 0xad, 0xbe, 0xef, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0x0a}, parsed)
}

func TestGUIDFromStringInvalid(t *testing.T) {
	_, err := GUIDFromString("deadbeef")
	assert.Error(t, err)

	_, err = GUIDFromString("zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz")
	assert.Error(t, err)
}

func TestGUIDIsZero(t *testing.T) {
	assert.True(t, GUID{}.IsZero())
	assert.False(t, GUID{15: 1}.IsZero())
}
