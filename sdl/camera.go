package sdl

import "unsafe"

// CameraID identifies a camera for the lifetime of its connection.
type CameraID uint32

// Camera is an opaque handle to an opened camera.
type Camera struct{}

// CameraSpec is one frame format a camera can deliver. Framerate is the
// numerator/denominator pair frames = num/den per second.
type CameraSpec struct {
	Format               PixelFormat
	Colorspace           Colorspace
	Width                int32
	Height               int32
	FramerateNumerator   int32
	FramerateDenominator int32
}

// CameraPosition is where a camera faces relative to the display.
type CameraPosition int32

const (
	CAMERA_POSITION_UNKNOWN CameraPosition = iota
	CAMERA_POSITION_FRONT_FACING
	CAMERA_POSITION_BACK_FACING
)

// CameraPermission is the user's answer to the camera access prompt.
type CameraPermission int32

const (
	CAMERA_PERMISSION_DENIED  CameraPermission = -1
	CAMERA_PERMISSION_PENDING CameraPermission = 0
	CAMERA_PERMISSION_GRANTED CameraPermission = 1
)

type cameraFns struct {
	GetNumCameraDrivers       func() int32                        `ffi:"SDL_GetNumCameraDrivers"`
	GetCameraDriver           func(int32) string                  `ffi:"SDL_GetCameraDriver"`
	GetCurrentCameraDriver    func() string                       `ffi:"SDL_GetCurrentCameraDriver"`
	GetCameras                func(*int32) *CameraID              `ffi:"SDL_GetCameras"`
	GetCameraSupportedFormats func(CameraID, *int32) **CameraSpec `ffi:"SDL_GetCameraSupportedFormats"`
	GetCameraName             func(CameraID) string               `ffi:"SDL_GetCameraName"`
	GetCameraPosition         func(CameraID) CameraPosition       `ffi:"SDL_GetCameraPosition"`
	OpenCamera                func(CameraID, *CameraSpec) *Camera `ffi:"SDL_OpenCamera"`
	GetCameraPermissionState  func(*Camera) CameraPermission      `ffi:"SDL_GetCameraPermissionState"`
	GetCameraID               func(*Camera) CameraID              `ffi:"SDL_GetCameraID"`
	GetCameraFormat           func(*Camera, *CameraSpec) bool     `ffi:"SDL_GetCameraFormat"`
	AcquireCameraFrame        func(*Camera, *uint64) *Surface     `ffi:"SDL_AcquireCameraFrame"`
	ReleaseCameraFrame        func(*Camera, *Surface)             `ffi:"SDL_ReleaseCameraFrame"`
	CloseCamera               func(*Camera)                       `ffi:"SDL_CloseCamera"`
}

var cameraProcs procs[cameraFns]

// GetNumCameraDrivers returns the number of built-in camera drivers.
func GetNumCameraDrivers() int {
	return int(cameraProcs.get().GetNumCameraDrivers())
}

// GetCameraDriver returns the name of a built-in camera driver.
func GetCameraDriver(index int) string {
	return cameraProcs.get().GetCameraDriver(int32(index))
}

// GetCurrentCameraDriver returns the driver in use, or "" before init.
func GetCurrentCameraDriver() string {
	return cameraProcs.get().GetCurrentCameraDriver()
}

// GetCameras returns the connected cameras.
func GetCameras() ([]CameraID, error) {
	var n int32
	ptr := cameraProcs.get().GetCameras(&n)
	if ptr == nil {
		return nil, lastErr()
	}
	return copyIDs(ptr, n), nil
}

// SupportedFormats returns the frame formats the camera offers, best
// first. The native array is one allocation; the specs are copied out
// before it is freed.
func (id CameraID) SupportedFormats() ([]CameraSpec, error) {
	var n int32
	arr := cameraProcs.get().GetCameraSupportedFormats(id, &n)
	if arr == nil {
		return nil, lastErr()
	}
	out := make([]CameraSpec, 0, n)
	for _, s := range unsafe.Slice(arr, n) {
		if s != nil {
			out = append(out, *s)
		}
	}
	free(unsafe.Pointer(arr))
	return out, nil
}

// Name returns the camera's human-readable name.
func (id CameraID) Name() string {
	return cameraProcs.get().GetCameraName(id)
}

// Position reports which way the camera faces.
func (id CameraID) Position() CameraPosition {
	return cameraProcs.get().GetCameraPosition(id)
}

// Open opens the camera, requesting the given format. A nil spec asks
// for the camera's native format. Frames are not available until the
// user grants permission; watch PermissionState or the camera events.
func (id CameraID) Open(spec *CameraSpec) (*Camera, error) {
	c := cameraProcs.get().OpenCamera(id, spec)
	if c == nil {
		return nil, lastErr()
	}
	return c, nil
}

// PermissionState reports whether the user has approved camera access.
func (c *Camera) PermissionState() CameraPermission {
	return cameraProcs.get().GetCameraPermissionState(c)
}

// ID returns the instance ID of an open camera.
func (c *Camera) ID() CameraID {
	return cameraProcs.get().GetCameraID(c)
}

// Format returns the spec frames are actually delivered in, which may
// differ from the one requested at Open.
func (c *Camera) Format() (CameraSpec, error) {
	var spec CameraSpec
	if !cameraProcs.get().GetCameraFormat(c, &spec) {
		return CameraSpec{}, lastErr()
	}
	return spec, nil
}

// AcquireFrame returns the newest frame as a surface owned by the
// camera, with its capture time in nanoseconds, or nil when no new frame
// is ready yet. Hand the surface back with ReleaseFrame.
func (c *Camera) AcquireFrame() (*Surface, uint64) {
	var ts uint64
	s := cameraProcs.get().AcquireCameraFrame(c, &ts)
	return s, ts
}

// ReleaseFrame returns a frame surface to the camera for reuse.
func (c *Camera) ReleaseFrame(frame *Surface) {
	cameraProcs.get().ReleaseCameraFrame(c, frame)
}

// Close releases the camera.
func (c *Camera) Close() {
	cameraProcs.get().CloseCamera(c)
}
