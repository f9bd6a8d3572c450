package sdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScancodeToKeycode(t *testing.T) {
	assert.Equal(t, Keycode(0x4000003a), ScancodeToKeycode(SCANCODE_F1))
	assert.Equal(t, K_F1, ScancodeToKeycode(SCANCODE_F1))
	assert.NotZero(t, K_LEFT&K_SCANCODE_MASK)
}

func TestPrintableKeycodes(t *testing.T) {
	// Printable keys carry their lowercase character value, no mask.
	assert.Equal(t, Keycode('a'), K_A)
	assert.Equal(t, Keycode('z'), K_Z)
	assert.Equal(t, Keycode('0'), K_0)
	assert.Zero(t, K_A&K_SCANCODE_MASK)
}

func TestKeymodCombinations(t *testing.T) {
	assert.Equal(t, KMOD_LSHIFT|KMOD_RSHIFT, KMOD_SHIFT)
	assert.Equal(t, KMOD_LCTRL|KMOD_RCTRL, KMOD_CTRL)

	held := KMOD_LCTRL | KMOD_CAPS
	assert.NotZero(t, held&KMOD_CTRL)
	assert.Zero(t, held&KMOD_ALT)
}
