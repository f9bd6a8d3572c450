package sdl

import "unsafe"

// TouchID identifies a touch device. FingerID identifies one finger on
// it for the duration of a touch.
type (
	TouchID  uint64
	FingerID uint64
)

// TouchDeviceType says how a touch device maps to the screen.
type TouchDeviceType int32

const (
	TOUCH_DEVICE_INVALID TouchDeviceType = iota - 1
	TOUCH_DEVICE_DIRECT
	TOUCH_DEVICE_INDIRECT_ABSOLUTE
	TOUCH_DEVICE_INDIRECT_RELATIVE
)

// Synthetic device IDs used when touch events are simulated from mouse
// input and vice versa.
const (
	TOUCH_MOUSEID MouseID = 0xFFFFFFFF
	MOUSE_TOUCHID TouchID = 0xFFFFFFFFFFFFFFFF
)

// Finger is one tracked touch point. Coordinates are normalized to
// [0, 1] over the window.
type Finger struct {
	ID       FingerID
	X        float32
	Y        float32
	Pressure float32
	_        [4]byte
}

type touchFns struct {
	GetTouchDevices    func(*int32) *TouchID          `ffi:"SDL_GetTouchDevices"`
	GetTouchDeviceName func(TouchID) string           `ffi:"SDL_GetTouchDeviceName"`
	GetTouchDeviceType func(TouchID) TouchDeviceType  `ffi:"SDL_GetTouchDeviceType"`
	GetTouchFingers    func(TouchID, *int32) **Finger `ffi:"SDL_GetTouchFingers"`
}

var touchProcs procs[touchFns]

// GetTouchDevices returns the registered touch devices. Devices may not
// appear until they have been touched.
func GetTouchDevices() ([]TouchID, error) {
	var n int32
	ptr := touchProcs.get().GetTouchDevices(&n)
	if ptr == nil {
		return nil, lastErr()
	}
	return copyIDs(ptr, n), nil
}

// Name returns the touch device's name.
func (id TouchID) Name() string {
	return touchProcs.get().GetTouchDeviceName(id)
}

// Type returns the touch device's mapping type.
func (id TouchID) Type() TouchDeviceType {
	return touchProcs.get().GetTouchDeviceType(id)
}

// Fingers returns the currently active fingers on the device. The native
// array is one allocation; the fingers are copied out before it is freed.
func (id TouchID) Fingers() ([]Finger, error) {
	var n int32
	arr := touchProcs.get().GetTouchFingers(id, &n)
	if arr == nil {
		return nil, lastErr()
	}
	out := make([]Finger, 0, n)
	for _, f := range unsafe.Slice(arr, n) {
		if f != nil {
			out = append(out, *f)
		}
	}
	free(unsafe.Pointer(arr))
	return out, nil
}
