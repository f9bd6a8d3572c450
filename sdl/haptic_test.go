package sdl

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

// The effect union is written through the Set methods and read back by
// the native side, so the tagged member must survive the cast intact.

func TestHapticEffectSetLeftRight(t *testing.T) {
	var e HapticEffect
	e.SetLeftRight(&HapticLeftRight{
		Type:           uint16(HAPTIC_LEFTRIGHT),
		Length:         500,
		LargeMagnitude: 0x8000,
		SmallMagnitude: 0x4000,
	})

	assert.Equal(t, uint16(HAPTIC_LEFTRIGHT), e.Type)

	lr := (*HapticLeftRight)(unsafe.Pointer(&e))
	assert.Equal(t, uint32(500), lr.Length)
	assert.Equal(t, uint16(0x8000), lr.LargeMagnitude)
}

func TestHapticEffectSetPeriodic(t *testing.T) {
	var e HapticEffect
	e.SetPeriodic(&HapticPeriodic{
		Type:      uint16(HAPTIC_SINE),
		Direction: HapticDirection{Type: HAPTIC_POLAR, Dir: [3]int32{9000, 0, 0}},
		Length:    1000,
		Period:    100,
		Magnitude: 20000,
	})

	assert.Equal(t, uint16(HAPTIC_SINE), e.Type)

	p := (*HapticPeriodic)(unsafe.Pointer(&e))
	assert.Equal(t, HAPTIC_POLAR, p.Direction.Type)
	assert.Equal(t, int32(9000), p.Direction.Dir[0])
	assert.Equal(t, int16(20000), p.Magnitude)
}

func TestHapticEffectSetReplacesPreviousMember(t *testing.T) {
	var e HapticEffect
	e.SetCondition(&HapticCondition{
		Type:     uint16(HAPTIC_SPRING),
		RightSat: [3]uint16{0xFFFF, 0xFFFF, 0xFFFF},
	})
	e.SetLeftRight(&HapticLeftRight{Type: uint16(HAPTIC_LEFTRIGHT), Length: 1})

	lr := (*HapticLeftRight)(unsafe.Pointer(&e))
	assert.Equal(t, uint32(1), lr.Length)
	assert.Zero(t, lr.LargeMagnitude, "stale condition bytes must be cleared")
}

func TestHapticFeatureBits(t *testing.T) {
	features := HAPTIC_SINE | HAPTIC_LEFTRIGHT | HAPTIC_GAIN
	assert.NotZero(t, features&HAPTIC_SINE)
	assert.Zero(t, features&HAPTIC_SPRING)
}
