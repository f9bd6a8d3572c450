package sdl

// MouseID identifies a connected mouse. The special SDL "touch mouse" and
// "pen mouse" IDs also appear in mouse events.
type MouseID uint32

// Cursor is an opaque native cursor handle.
type Cursor struct{}

// MouseButtonFlags is the pressed-button bitmask in mouse state queries.
type MouseButtonFlags uint32

// Mouse button indices and their state masks.
const (
	BUTTON_LEFT   uint8 = 1
	BUTTON_MIDDLE uint8 = 2
	BUTTON_RIGHT  uint8 = 3
	BUTTON_X1     uint8 = 4
	BUTTON_X2     uint8 = 5
)

// ButtonMask converts a button index into its bit in MouseButtonFlags,
// mirroring the native SDL_BUTTON_MASK macro.
func ButtonMask(button uint8) MouseButtonFlags {
	return 1 << (button - 1)
}

// MouseWheelDirection says whether wheel values are natural or inverted.
type MouseWheelDirection uint32

const (
	MOUSEWHEEL_NORMAL MouseWheelDirection = iota
	MOUSEWHEEL_FLIPPED
)

// SystemCursor names the standard cursor shapes.
type SystemCursor int32

const (
	SYSTEM_CURSOR_DEFAULT SystemCursor = iota
	SYSTEM_CURSOR_TEXT
	SYSTEM_CURSOR_WAIT
	SYSTEM_CURSOR_CROSSHAIR
	SYSTEM_CURSOR_PROGRESS
	SYSTEM_CURSOR_NWSE_RESIZE
	SYSTEM_CURSOR_NESW_RESIZE
	SYSTEM_CURSOR_EW_RESIZE
	SYSTEM_CURSOR_NS_RESIZE
	SYSTEM_CURSOR_MOVE
	SYSTEM_CURSOR_NOT_ALLOWED
	SYSTEM_CURSOR_POINTER
)

type mouseFns struct {
	HasMouse                   func() bool                               `ffi:"SDL_HasMouse"`
	GetMice                    func(*int32) *MouseID                     `ffi:"SDL_GetMice"`
	GetMouseNameForID          func(MouseID) string                      `ffi:"SDL_GetMouseNameForID"`
	GetMouseFocus              func() *Window                            `ffi:"SDL_GetMouseFocus"`
	GetMouseState              func(*float32, *float32) MouseButtonFlags `ffi:"SDL_GetMouseState"`
	GetGlobalMouseState        func(*float32, *float32) MouseButtonFlags `ffi:"SDL_GetGlobalMouseState"`
	GetRelativeMouseState      func(*float32, *float32) MouseButtonFlags `ffi:"SDL_GetRelativeMouseState"`
	WarpMouseInWindow          func(*Window, float32, float32)           `ffi:"SDL_WarpMouseInWindow"`
	SetWindowRelativeMouseMode func(*Window, bool) bool                  `ffi:"SDL_SetWindowRelativeMouseMode"`
	GetWindowRelativeMouseMode func(*Window) bool                        `ffi:"SDL_GetWindowRelativeMouseMode"`
	CaptureMouse               func(bool) bool                           `ffi:"SDL_CaptureMouse"`
	CreateSystemCursor         func(SystemCursor) *Cursor                `ffi:"SDL_CreateSystemCursor"`
	CreateColorCursor          func(*Surface, int32, int32) *Cursor      `ffi:"SDL_CreateColorCursor"`
	SetCursor                  func(*Cursor) bool                        `ffi:"SDL_SetCursor"`
	GetCursor                  func() *Cursor                            `ffi:"SDL_GetCursor"`
	DestroyCursor              func(*Cursor)                             `ffi:"SDL_DestroyCursor"`
	ShowCursor                 func() bool                               `ffi:"SDL_ShowCursor"`
	HideCursor                 func() bool                               `ffi:"SDL_HideCursor"`
	CursorVisible              func() bool                               `ffi:"SDL_CursorVisible"`
}

var mouseProcs procs[mouseFns]

// HasMouse reports whether a mouse is connected.
func HasMouse() bool {
	return mouseProcs.get().HasMouse()
}

// GetMice returns the connected mice.
func GetMice() ([]MouseID, error) {
	var n int32
	ptr := mouseProcs.get().GetMice(&n)
	if ptr == nil {
		return nil, lastErr()
	}
	return copyIDs(ptr, n), nil
}

// Name returns the mouse's name.
func (m MouseID) Name() string {
	return mouseProcs.get().GetMouseNameForID(m)
}

// GetMouseFocus returns the window holding mouse focus, or nil.
func GetMouseFocus() *Window {
	return mouseProcs.get().GetMouseFocus()
}

// GetMouseState returns the cursor position relative to the focused
// window plus the pressed buttons.
func GetMouseState() (x, y float32, buttons MouseButtonFlags) {
	buttons = mouseProcs.get().GetMouseState(&x, &y)
	return
}

// GetGlobalMouseState is GetMouseState in desktop coordinates. It queries
// the OS directly, ignoring SDL's event pipeline.
func GetGlobalMouseState() (x, y float32, buttons MouseButtonFlags) {
	buttons = mouseProcs.get().GetGlobalMouseState(&x, &y)
	return
}

// GetRelativeMouseState returns accumulated movement since the last call.
func GetRelativeMouseState() (dx, dy float32, buttons MouseButtonFlags) {
	buttons = mouseProcs.get().GetRelativeMouseState(&dx, &dy)
	return
}

// WarpMouse moves the cursor to a position within the window.
func (w *Window) WarpMouse(x, y float32) {
	mouseProcs.get().WarpMouseInWindow(w, x, y)
}

// SetRelativeMouseMode hides the cursor and delivers unbounded relative
// motion while the window has focus.
func (w *Window) SetRelativeMouseMode(enabled bool) error {
	if !mouseProcs.get().SetWindowRelativeMouseMode(w, enabled) {
		return lastErr()
	}
	return nil
}

// RelativeMouseMode reports whether relative mode is on for the window.
func (w *Window) RelativeMouseMode() bool {
	return mouseProcs.get().GetWindowRelativeMouseMode(w)
}

// CaptureMouse tracks mouse state globally while a button is held, for
// drag operations that leave the window.
func CaptureMouse(enabled bool) error {
	if !mouseProcs.get().CaptureMouse(enabled) {
		return lastErr()
	}
	return nil
}

// CreateSystemCursor creates one of the standard cursor shapes.
func CreateSystemCursor(id SystemCursor) (*Cursor, error) {
	c := mouseProcs.get().CreateSystemCursor(id)
	if c == nil {
		return nil, lastErr()
	}
	return c, nil
}

// CreateColorCursor creates a cursor from a surface with the given hot
// spot.
func CreateColorCursor(s *Surface, hotX, hotY int32) (*Cursor, error) {
	c := mouseProcs.get().CreateColorCursor(s, hotX, hotY)
	if c == nil {
		return nil, lastErr()
	}
	return c, nil
}

// Set makes this the active cursor.
func (c *Cursor) Set() error {
	if !mouseProcs.get().SetCursor(c) {
		return lastErr()
	}
	return nil
}

// GetCursor returns the active cursor, or nil when there is no mouse.
func GetCursor() *Cursor {
	return mouseProcs.get().GetCursor()
}

// Destroy frees a cursor created by this process.
func (c *Cursor) Destroy() {
	mouseProcs.get().DestroyCursor(c)
}

// ShowCursor makes the cursor visible.
func ShowCursor() error {
	if !mouseProcs.get().ShowCursor() {
		return lastErr()
	}
	return nil
}

// HideCursor makes the cursor invisible.
func HideCursor() error {
	if !mouseProcs.get().HideCursor() {
		return lastErr()
	}
	return nil
}

// CursorVisible reports whether the cursor is shown.
func CursorVisible() bool {
	return mouseProcs.get().CursorVisible()
}
