package sdl

import "unsafe"

// DisplayID identifies a connected display. Zero is invalid.
type DisplayID uint32

// WindowID identifies a window for the lifetime of that window.
type WindowID uint32

// Window is an opaque native window handle.
type Window struct{}

// WindowFlags describe window state and creation options.
type WindowFlags uint64

const (
	WINDOW_FULLSCREEN         WindowFlags = 0x0000000000000001
	WINDOW_OPENGL             WindowFlags = 0x0000000000000002
	WINDOW_OCCLUDED           WindowFlags = 0x0000000000000004
	WINDOW_HIDDEN             WindowFlags = 0x0000000000000008
	WINDOW_BORDERLESS         WindowFlags = 0x0000000000000010
	WINDOW_RESIZABLE          WindowFlags = 0x0000000000000020
	WINDOW_MINIMIZED          WindowFlags = 0x0000000000000040
	WINDOW_MAXIMIZED          WindowFlags = 0x0000000000000080
	WINDOW_MOUSE_GRABBED      WindowFlags = 0x0000000000000100
	WINDOW_INPUT_FOCUS        WindowFlags = 0x0000000000000200
	WINDOW_MOUSE_FOCUS        WindowFlags = 0x0000000000000400
	WINDOW_EXTERNAL           WindowFlags = 0x0000000000000800
	WINDOW_MODAL              WindowFlags = 0x0000000000001000
	WINDOW_HIGH_PIXEL_DENSITY WindowFlags = 0x0000000000002000
	WINDOW_MOUSE_CAPTURE      WindowFlags = 0x0000000000004000
	WINDOW_ALWAYS_ON_TOP      WindowFlags = 0x0000000000008000
	WINDOW_UTILITY            WindowFlags = 0x0000000000020000
	WINDOW_TOOLTIP            WindowFlags = 0x0000000000040000
	WINDOW_POPUP_MENU         WindowFlags = 0x0000000000080000
	WINDOW_KEYBOARD_GRABBED   WindowFlags = 0x0000000000100000
	WINDOW_VULKAN             WindowFlags = 0x0000000010000000
	WINDOW_METAL              WindowFlags = 0x0000000020000000
	WINDOW_TRANSPARENT        WindowFlags = 0x0000000040000000
	WINDOW_NOT_FOCUSABLE      WindowFlags = 0x0000000080000000
)

// Special window positions for SetPosition.
const (
	WINDOWPOS_UNDEFINED int32 = 0x1fff0000
	WINDOWPOS_CENTERED  int32 = 0x2fff0000
)

// DisplayMode is one mode a display can run in.
type DisplayMode struct {
	DisplayID              DisplayID
	Format                 PixelFormat
	W                      int32
	H                      int32
	PixelDensity           float32
	RefreshRate            float32
	RefreshRateNumerator   int32
	RefreshRateDenominator int32
	internal               unsafe.Pointer
}

type videoFns struct {
	GetNumVideoDrivers     func() int32                 `ffi:"SDL_GetNumVideoDrivers"`
	GetVideoDriver         func(int32) string           `ffi:"SDL_GetVideoDriver"`
	GetCurrentVideoDriver  func() string                `ffi:"SDL_GetCurrentVideoDriver"`
	GetDisplays            func(*int32) *DisplayID      `ffi:"SDL_GetDisplays"`
	GetPrimaryDisplay      func() DisplayID             `ffi:"SDL_GetPrimaryDisplay"`
	GetDisplayName         func(DisplayID) string       `ffi:"SDL_GetDisplayName"`
	GetDisplayBounds       func(DisplayID, *Rect) bool  `ffi:"SDL_GetDisplayBounds"`
	GetDisplayUsableBounds func(DisplayID, *Rect) bool  `ffi:"SDL_GetDisplayUsableBounds"`
	GetDesktopDisplayMode  func(DisplayID) *DisplayMode `ffi:"SDL_GetDesktopDisplayMode"`
	GetCurrentDisplayMode  func(DisplayID) *DisplayMode `ffi:"SDL_GetCurrentDisplayMode"`
	GetDisplayForWindow    func(*Window) DisplayID      `ffi:"SDL_GetDisplayForWindow"`

	CreateWindow          func(string, int32, int32, WindowFlags) *Window `ffi:"SDL_CreateWindow"`
	DestroyWindow         func(*Window)                                   `ffi:"SDL_DestroyWindow"`
	GetWindowID           func(*Window) WindowID                          `ffi:"SDL_GetWindowID"`
	GetWindowFromID       func(WindowID) *Window                          `ffi:"SDL_GetWindowFromID"`
	GetWindowFlags        func(*Window) WindowFlags                       `ffi:"SDL_GetWindowFlags"`
	GetWindowProperties   func(*Window) PropertiesID                      `ffi:"SDL_GetWindowProperties"`
	SetWindowTitle        func(*Window, string) bool                      `ffi:"SDL_SetWindowTitle"`
	GetWindowTitle        func(*Window) string                            `ffi:"SDL_GetWindowTitle"`
	SetWindowPosition     func(*Window, int32, int32) bool                `ffi:"SDL_SetWindowPosition"`
	GetWindowPosition     func(*Window, *int32, *int32) bool              `ffi:"SDL_GetWindowPosition"`
	SetWindowSize         func(*Window, int32, int32) bool                `ffi:"SDL_SetWindowSize"`
	GetWindowSize         func(*Window, *int32, *int32) bool              `ffi:"SDL_GetWindowSize"`
	GetWindowSizeInPixels func(*Window, *int32, *int32) bool              `ffi:"SDL_GetWindowSizeInPixels"`
	SetWindowResizable    func(*Window, bool) bool                        `ffi:"SDL_SetWindowResizable"`
	SetWindowFullscreen   func(*Window, bool) bool                        `ffi:"SDL_SetWindowFullscreen"`
	SetWindowOpacity      func(*Window, float32) bool                     `ffi:"SDL_SetWindowOpacity"`
	GetWindowOpacity      func(*Window) float32                           `ffi:"SDL_GetWindowOpacity"`
	SetWindowIcon         func(*Window, *Surface) bool                    `ffi:"SDL_SetWindowIcon"`
	ShowWindow            func(*Window) bool                              `ffi:"SDL_ShowWindow"`
	HideWindow            func(*Window) bool                              `ffi:"SDL_HideWindow"`
	RaiseWindow           func(*Window) bool                              `ffi:"SDL_RaiseWindow"`
	MaximizeWindow        func(*Window) bool                              `ffi:"SDL_MaximizeWindow"`
	MinimizeWindow        func(*Window) bool                              `ffi:"SDL_MinimizeWindow"`
	RestoreWindow         func(*Window) bool                              `ffi:"SDL_RestoreWindow"`
	SyncWindow            func(*Window) bool                              `ffi:"SDL_SyncWindow"`
	GetWindowPixelFormat  func(*Window) PixelFormat                       `ffi:"SDL_GetWindowPixelFormat"`
	GetWindowSurface      func(*Window) *Surface                          `ffi:"SDL_GetWindowSurface"`
	UpdateWindowSurface   func(*Window) bool                              `ffi:"SDL_UpdateWindowSurface"`
	DestroyWindowSurface  func(*Window) bool                              `ffi:"SDL_DestroyWindowSurface"`

	ScreenSaverEnabled func() bool `ffi:"SDL_ScreenSaverEnabled"`
	EnableScreenSaver  func() bool `ffi:"SDL_EnableScreenSaver"`
	DisableScreenSaver func() bool `ffi:"SDL_DisableScreenSaver"`
}

var videoProcs procs[videoFns]

// GetNumVideoDrivers returns how many video drivers were compiled in.
func GetNumVideoDrivers() int {
	return int(videoProcs.get().GetNumVideoDrivers())
}

// GetVideoDriver returns the name of a compiled-in driver by index.
func GetVideoDriver(index int) string {
	return videoProcs.get().GetVideoDriver(int32(index))
}

// GetCurrentVideoDriver returns the driver in use, or "" before Init.
func GetCurrentVideoDriver() string {
	return videoProcs.get().GetCurrentVideoDriver()
}

// GetDisplays returns the connected displays.
func GetDisplays() ([]DisplayID, error) {
	var n int32
	ptr := videoProcs.get().GetDisplays(&n)
	if ptr == nil {
		return nil, lastErr()
	}
	return copyIDs(ptr, n), nil
}

// GetPrimaryDisplay returns the main display.
func GetPrimaryDisplay() (DisplayID, error) {
	id := videoProcs.get().GetPrimaryDisplay()
	if id == 0 {
		return 0, lastErr()
	}
	return id, nil
}

// Name returns the display's name.
func (d DisplayID) Name() string {
	return videoProcs.get().GetDisplayName(d)
}

// Bounds returns the display's position and size in the global desktop
// space.
func (d DisplayID) Bounds() (Rect, error) {
	var r Rect
	if !videoProcs.get().GetDisplayBounds(d, &r) {
		return Rect{}, lastErr()
	}
	return r, nil
}

// UsableBounds is Bounds minus docks, menu bars and task bars.
func (d DisplayID) UsableBounds() (Rect, error) {
	var r Rect
	if !videoProcs.get().GetDisplayUsableBounds(d, &r) {
		return Rect{}, lastErr()
	}
	return r, nil
}

// DesktopMode returns the mode the desktop is running at. The result is
// owned by the library.
func (d DisplayID) DesktopMode() (*DisplayMode, error) {
	m := videoProcs.get().GetDesktopDisplayMode(d)
	if m == nil {
		return nil, lastErr()
	}
	return m, nil
}

// CurrentMode returns the mode currently active on the display.
func (d DisplayID) CurrentMode() (*DisplayMode, error) {
	m := videoProcs.get().GetCurrentDisplayMode(d)
	if m == nil {
		return nil, lastErr()
	}
	return m, nil
}

// CreateWindow opens a window. Must be called from the main thread.
func CreateWindow(title string, w, h int, flags WindowFlags) (*Window, error) {
	win := videoProcs.get().CreateWindow(title, int32(w), int32(h), flags)
	if win == nil {
		return nil, lastErr()
	}
	return win, nil
}

// Destroy closes the window and frees its resources.
func (w *Window) Destroy() {
	videoProcs.get().DestroyWindow(w)
}

// ID returns the window's numeric identifier, as used in events.
func (w *Window) ID() WindowID {
	return videoProcs.get().GetWindowID(w)
}

// GetWindowFromID finds the window with the given identifier, or nil.
func GetWindowFromID(id WindowID) *Window {
	return videoProcs.get().GetWindowFromID(id)
}

// Flags returns the window's current state flags.
func (w *Window) Flags() WindowFlags {
	return videoProcs.get().GetWindowFlags(w)
}

// Properties returns the window's property group.
func (w *Window) Properties() PropertiesID {
	return videoProcs.get().GetWindowProperties(w)
}

// Display returns the display the window sits on.
func (w *Window) Display() (DisplayID, error) {
	id := videoProcs.get().GetDisplayForWindow(w)
	if id == 0 {
		return 0, lastErr()
	}
	return id, nil
}

// SetTitle sets the window's title.
func (w *Window) SetTitle(title string) error {
	if !videoProcs.get().SetWindowTitle(w, title) {
		return lastErr()
	}
	return nil
}

// Title returns the window's title.
func (w *Window) Title() string {
	return videoProcs.get().GetWindowTitle(w)
}

// SetPosition moves the window. WINDOWPOS_CENTERED and
// WINDOWPOS_UNDEFINED are accepted for either coordinate.
func (w *Window) SetPosition(x, y int32) error {
	if !videoProcs.get().SetWindowPosition(w, x, y) {
		return lastErr()
	}
	return nil
}

// Position returns the window's position.
func (w *Window) Position() (x, y int32, err error) {
	if !videoProcs.get().GetWindowPosition(w, &x, &y) {
		return 0, 0, lastErr()
	}
	return x, y, nil
}

// SetSize resizes the window's client area.
func (w *Window) SetSize(width, height int) error {
	if !videoProcs.get().SetWindowSize(w, int32(width), int32(height)) {
		return lastErr()
	}
	return nil
}

// Size returns the window's client area in screen coordinates.
func (w *Window) Size() (width, height int, err error) {
	var cw, ch int32
	if !videoProcs.get().GetWindowSize(w, &cw, &ch) {
		return 0, 0, lastErr()
	}
	return int(cw), int(ch), nil
}

// SizeInPixels returns the client area in pixels, which differs from Size
// on high-density displays.
func (w *Window) SizeInPixels() (width, height int, err error) {
	var cw, ch int32
	if !videoProcs.get().GetWindowSizeInPixels(w, &cw, &ch) {
		return 0, 0, lastErr()
	}
	return int(cw), int(ch), nil
}

// SetResizable toggles user resizing.
func (w *Window) SetResizable(resizable bool) error {
	if !videoProcs.get().SetWindowResizable(w, resizable) {
		return lastErr()
	}
	return nil
}

// SetFullscreen enters or leaves fullscreen. The change is asynchronous;
// Sync waits for it.
func (w *Window) SetFullscreen(fullscreen bool) error {
	if !videoProcs.get().SetWindowFullscreen(w, fullscreen) {
		return lastErr()
	}
	return nil
}

// SetOpacity sets the whole-window opacity in [0, 1].
func (w *Window) SetOpacity(opacity float32) error {
	if !videoProcs.get().SetWindowOpacity(w, opacity) {
		return lastErr()
	}
	return nil
}

// Opacity returns the whole-window opacity.
func (w *Window) Opacity() float32 {
	return videoProcs.get().GetWindowOpacity(w)
}

// SetIcon sets the window icon from a surface.
func (w *Window) SetIcon(icon *Surface) error {
	if !videoProcs.get().SetWindowIcon(w, icon) {
		return lastErr()
	}
	return nil
}

// Show makes the window visible.
func (w *Window) Show() error {
	if !videoProcs.get().ShowWindow(w) {
		return lastErr()
	}
	return nil
}

// Hide makes the window invisible.
func (w *Window) Hide() error {
	if !videoProcs.get().HideWindow(w) {
		return lastErr()
	}
	return nil
}

// Raise brings the window above its siblings and requests input focus.
func (w *Window) Raise() error {
	if !videoProcs.get().RaiseWindow(w) {
		return lastErr()
	}
	return nil
}

// Maximize asks the window manager to maximize the window.
func (w *Window) Maximize() error {
	if !videoProcs.get().MaximizeWindow(w) {
		return lastErr()
	}
	return nil
}

// Minimize asks the window manager to minimize the window.
func (w *Window) Minimize() error {
	if !videoProcs.get().MinimizeWindow(w) {
		return lastErr()
	}
	return nil
}

// Restore undoes Maximize or Minimize.
func (w *Window) Restore() error {
	if !videoProcs.get().RestoreWindow(w) {
		return lastErr()
	}
	return nil
}

// Sync blocks until pending window state changes have been applied.
func (w *Window) Sync() error {
	if !videoProcs.get().SyncWindow(w) {
		return lastErr()
	}
	return nil
}

// PixelFormat returns the format of the window's pixels.
func (w *Window) PixelFormat() PixelFormat {
	return videoProcs.get().GetWindowPixelFormat(w)
}

// Surface returns a framebuffer surface for windows drawn without a
// renderer or GPU device. Invalidated when the window resizes.
func (w *Window) Surface() (*Surface, error) {
	s := videoProcs.get().GetWindowSurface(w)
	if s == nil {
		return nil, lastErr()
	}
	return s, nil
}

// UpdateSurface copies the window surface to the screen.
func (w *Window) UpdateSurface() error {
	if !videoProcs.get().UpdateWindowSurface(w) {
		return lastErr()
	}
	return nil
}

// DestroySurface drops the framebuffer surface, for switching to a
// renderer or GPU device.
func (w *Window) DestroySurface() error {
	if !videoProcs.get().DestroyWindowSurface(w) {
		return lastErr()
	}
	return nil
}

// ScreenSaverEnabled reports whether the OS screen saver may run.
func ScreenSaverEnabled() bool {
	return videoProcs.get().ScreenSaverEnabled()
}

// EnableScreenSaver lets the OS screen saver run. SDL disables it while a
// window is open.
func EnableScreenSaver() error {
	if !videoProcs.get().EnableScreenSaver() {
		return lastErr()
	}
	return nil
}

// DisableScreenSaver keeps the OS screen saver from running.
func DisableScreenSaver() error {
	if !videoProcs.get().DisableScreenSaver() {
		return lastErr()
	}
	return nil
}
