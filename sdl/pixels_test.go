package sdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefinePixelFormat(t *testing.T) {
	composed := DefinePixelFormat(PIXELTYPE_PACKED32, PACKEDORDER_ARGB, PACKEDLAYOUT_8888, 32, 4)
	assert.Equal(t, PIXELFORMAT_ARGB8888, composed)

	composed = DefinePixelFormat(PIXELTYPE_INDEX8, 0, 0, 8, 1)
	assert.Equal(t, PIXELFORMAT_INDEX8, composed)
}

func TestPixelFormatDecomposition(t *testing.T) {
	f := PIXELFORMAT_ARGB8888

	assert.False(t, f.IsFourCC())
	assert.Equal(t, PIXELTYPE_PACKED32, f.Type())
	assert.Equal(t, uint32(PACKEDORDER_ARGB), f.Order())
	assert.Equal(t, uint32(PACKEDLAYOUT_8888), f.Layout())
	assert.Equal(t, 32, f.BitsPerPixel())
	assert.Equal(t, 4, f.BytesPerPixel())
	assert.True(t, f.IsPacked())
	assert.True(t, f.HasAlpha())
	assert.False(t, f.IsIndexed())
	assert.False(t, f.Is10Bit())
	assert.False(t, f.IsFloat())
}

func TestPixelFormatClasses(t *testing.T) {
	assert.True(t, PIXELFORMAT_INDEX8.IsIndexed())
	assert.False(t, PIXELFORMAT_INDEX8.HasAlpha())

	assert.True(t, PIXELFORMAT_ARGB2101010.Is10Bit())
	assert.True(t, PIXELFORMAT_ARGB2101010.HasAlpha())

	assert.False(t, PIXELFORMAT_RGB565.HasAlpha())
	assert.Equal(t, 16, PIXELFORMAT_RGB565.BitsPerPixel())
	assert.Equal(t, 2, PIXELFORMAT_RGB565.BytesPerPixel())

	assert.Equal(t, 3, PIXELFORMAT_RGB24.BytesPerPixel())
}

func TestFourCCFormats(t *testing.T) {
	assert.True(t, PIXELFORMAT_YV12.IsFourCC())
	assert.True(t, PIXELFORMAT_NV12.IsFourCC())
	assert.Equal(t, PixelFormat(0x32315659), PIXELFORMAT_YV12)

	// FourCC formats do not decompose.
	assert.Equal(t, PIXELTYPE_UNKNOWN, PIXELFORMAT_YV12.Type())
}

func TestByteOrderAliases(t *testing.T) {
	// Whatever the host byte order, RGBA32 must be a real alpha format.
	assert.True(t, PIXELFORMAT_RGBA32.HasAlpha())
	assert.Equal(t, 4, PIXELFORMAT_RGBA32.BytesPerPixel())
	if littleEndian() {
		assert.Equal(t, PIXELFORMAT_ABGR8888, PIXELFORMAT_RGBA32)
	} else {
		assert.Equal(t, PIXELFORMAT_RGBA8888, PIXELFORMAT_RGBA32)
	}
}

func TestNamedFormatValues(t *testing.T) {
	// Spot checks against the native header's composed values.
	assert.Equal(t, PixelFormat(0x13000801), PIXELFORMAT_INDEX8)
	assert.Equal(t, PixelFormat(0x15151002), PIXELFORMAT_RGB565)
	assert.Equal(t, PixelFormat(0x16362004), PIXELFORMAT_ARGB8888)
	assert.Equal(t, PixelFormat(0x16862004), PIXELFORMAT_BGRA8888)
}
