package sdl

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

// The structs below cross the FFI boundary by pointer, so their layout
// must match the native ABI exactly on 64-bit platforms.

func TestEventLayout(t *testing.T) {
	assert.Equal(t, uintptr(128), unsafe.Sizeof(Event{}))
	assert.Equal(t, uintptr(16), unsafe.Sizeof(CommonEvent{}))

	var k KeyboardEvent
	assert.Equal(t, uintptr(16), unsafe.Offsetof(k.WindowID))
	assert.Equal(t, uintptr(24), unsafe.Offsetof(k.Scancode))
	assert.Equal(t, uintptr(28), unsafe.Offsetof(k.Key))
	assert.Equal(t, uintptr(32), unsafe.Offsetof(k.Mod))
	assert.Equal(t, uintptr(36), unsafe.Offsetof(k.Down))

	var m MouseButtonEvent
	assert.Equal(t, uintptr(24), unsafe.Offsetof(m.Button))
	assert.Equal(t, uintptr(28), unsafe.Offsetof(m.X))

	var w MouseWheelEvent
	assert.Equal(t, uintptr(32), unsafe.Offsetof(w.Direction))
}

func TestGeometryLayout(t *testing.T) {
	assert.Equal(t, uintptr(8), unsafe.Sizeof(Point{}))
	assert.Equal(t, uintptr(8), unsafe.Sizeof(FPoint{}))
	assert.Equal(t, uintptr(16), unsafe.Sizeof(Rect{}))
	assert.Equal(t, uintptr(16), unsafe.Sizeof(FRect{}))
}

func TestPixelLayout(t *testing.T) {
	assert.Equal(t, uintptr(4), unsafe.Sizeof(Color{}))
	assert.Equal(t, uintptr(16), unsafe.Sizeof(FColor{}))
	assert.Equal(t, uintptr(32), unsafe.Sizeof(PixelFormatDetails{}))
}

func TestSurfaceLayout(t *testing.T) {
	var s Surface
	assert.Equal(t, uintptr(48), unsafe.Sizeof(s))
	assert.Equal(t, uintptr(24), unsafe.Offsetof(s.Pixels))
	assert.Equal(t, uintptr(32), unsafe.Offsetof(s.RefCount))
}

func TestInputLayout(t *testing.T) {
	assert.Equal(t, uintptr(32), unsafe.Sizeof(GamepadBinding{}))
	assert.Equal(t, uintptr(72), unsafe.Sizeof(HapticEffect{}))
	assert.Equal(t, uintptr(16), unsafe.Sizeof(GUID{}))
}

func TestAudioLayout(t *testing.T) {
	assert.Equal(t, uintptr(12), unsafe.Sizeof(AudioSpec{}))
}

func TestGPULayout(t *testing.T) {
	assert.Equal(t, uintptr(64), unsafe.Sizeof(GPUColorTargetInfo{}))
	assert.Equal(t, uintptr(32), unsafe.Sizeof(GPUDepthStencilTargetInfo{}))
	assert.Equal(t, uintptr(32), unsafe.Sizeof(GPUVertexInputState{}))
	assert.Equal(t, uintptr(16), unsafe.Sizeof(GPUBufferBinding{}))
	assert.Equal(t, uintptr(16), unsafe.Sizeof(GPUVertexBufferDescription{}))
	assert.Equal(t, uintptr(16), unsafe.Sizeof(GPUVertexAttribute{}))
	assert.Equal(t, uintptr(40), unsafe.Sizeof(GPUTextureRegion{}))
	assert.Equal(t, uintptr(12), unsafe.Sizeof(GPUBufferCreateInfo{}))
	assert.Equal(t, uintptr(36), unsafe.Sizeof(GPUTextureCreateInfo{}))
	assert.Equal(t, uintptr(56), unsafe.Sizeof(GPUShaderCreateInfo{}))

	var c GPUColorTargetInfo
	assert.Equal(t, uintptr(16), unsafe.Offsetof(c.ClearColor))
	assert.Equal(t, uintptr(40), unsafe.Offsetof(c.ResolveTexture))
	assert.Equal(t, uintptr(56), unsafe.Offsetof(c.Cycle))
}

func TestFilesystemLayout(t *testing.T) {
	var p PathInfo
	assert.Equal(t, uintptr(40), unsafe.Sizeof(p))
	assert.Equal(t, uintptr(8), unsafe.Offsetof(p.Size))
}

func TestDisplayModeLayout(t *testing.T) {
	var m DisplayMode
	assert.Equal(t, uintptr(40), unsafe.Sizeof(m))
	assert.Equal(t, uintptr(32), unsafe.Offsetof(m.internal))
}

func TestTouchLayout(t *testing.T) {
	assert.Equal(t, uintptr(24), unsafe.Sizeof(Finger{}))

	var f TouchFingerEvent
	assert.Equal(t, uintptr(56), unsafe.Sizeof(f))
	assert.Equal(t, uintptr(16), unsafe.Offsetof(f.TouchID))
	assert.Equal(t, uintptr(48), unsafe.Offsetof(f.Pressure))
	assert.Equal(t, uintptr(52), unsafe.Offsetof(f.WindowID))
}

func TestSensorLayout(t *testing.T) {
	var e SensorEvent
	assert.Equal(t, uintptr(56), unsafe.Sizeof(e))
	assert.Equal(t, uintptr(20), unsafe.Offsetof(e.Data))
	assert.Equal(t, uintptr(48), unsafe.Offsetof(e.SensorTimestamp))
}

func TestCameraLayout(t *testing.T) {
	assert.Equal(t, uintptr(24), unsafe.Sizeof(CameraSpec{}))
}

func TestTimeLayout(t *testing.T) {
	assert.Equal(t, uintptr(36), unsafe.Sizeof(DateTime{}))
}
