package sdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAudioFormatMacros(t *testing.T) {
	assert.Equal(t, 16, AUDIO_S16LE.BitSize())
	assert.Equal(t, 2, AUDIO_S16LE.ByteSize())
	assert.True(t, AUDIO_S16LE.IsSigned())
	assert.False(t, AUDIO_S16LE.IsFloat())
	assert.False(t, AUDIO_S16LE.IsBigEndian())

	assert.True(t, AUDIO_S16BE.IsBigEndian())

	assert.Equal(t, 32, AUDIO_F32LE.BitSize())
	assert.True(t, AUDIO_F32LE.IsFloat())
	assert.True(t, AUDIO_F32LE.IsSigned())

	assert.Equal(t, 8, AUDIO_U8.BitSize())
	assert.False(t, AUDIO_U8.IsSigned())
	assert.True(t, AUDIO_S8.IsSigned())
}

func TestNativeEndianFormats(t *testing.T) {
	if littleEndian() {
		assert.Equal(t, AUDIO_S16LE, AUDIO_S16)
		assert.Equal(t, AUDIO_F32LE, AUDIO_F32)
	} else {
		assert.Equal(t, AUDIO_S16BE, AUDIO_S16)
		assert.Equal(t, AUDIO_F32BE, AUDIO_F32)
	}
}

func TestAudioSpecFrameSize(t *testing.T) {
	spec := AudioSpec{Format: AUDIO_S16LE, Channels: 2, Freq: 48000}
	assert.Equal(t, 4, spec.FrameSize())

	spec = AudioSpec{Format: AUDIO_F32LE, Channels: 6, Freq: 44100}
	assert.Equal(t, 24, spec.FrameSize())
}
