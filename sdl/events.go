package sdl

import "unsafe"

// EventType tags each entry in the event queue.
type EventType uint32

const (
	EVENT_FIRST EventType = 0

	// Application events
	EVENT_QUIT                  EventType = 0x100
	EVENT_TERMINATING           EventType = 0x101
	EVENT_LOW_MEMORY            EventType = 0x102
	EVENT_WILL_ENTER_BACKGROUND EventType = 0x103
	EVENT_DID_ENTER_BACKGROUND  EventType = 0x104
	EVENT_WILL_ENTER_FOREGROUND EventType = 0x105
	EVENT_DID_ENTER_FOREGROUND  EventType = 0x106
	EVENT_LOCALE_CHANGED        EventType = 0x107
	EVENT_SYSTEM_THEME_CHANGED  EventType = 0x108

	// Display events
	EVENT_DISPLAY_ORIENTATION           EventType = 0x151
	EVENT_DISPLAY_ADDED                 EventType = 0x152
	EVENT_DISPLAY_REMOVED               EventType = 0x153
	EVENT_DISPLAY_MOVED                 EventType = 0x154
	EVENT_DISPLAY_DESKTOP_MODE_CHANGED  EventType = 0x155
	EVENT_DISPLAY_CURRENT_MODE_CHANGED  EventType = 0x156
	EVENT_DISPLAY_CONTENT_SCALE_CHANGED EventType = 0x157

	// Window events
	EVENT_WINDOW_SHOWN                 EventType = 0x202
	EVENT_WINDOW_HIDDEN                EventType = 0x203
	EVENT_WINDOW_EXPOSED               EventType = 0x204
	EVENT_WINDOW_MOVED                 EventType = 0x205
	EVENT_WINDOW_RESIZED               EventType = 0x206
	EVENT_WINDOW_PIXEL_SIZE_CHANGED    EventType = 0x207
	EVENT_WINDOW_METAL_VIEW_RESIZED    EventType = 0x208
	EVENT_WINDOW_MINIMIZED             EventType = 0x209
	EVENT_WINDOW_MAXIMIZED             EventType = 0x20a
	EVENT_WINDOW_RESTORED              EventType = 0x20b
	EVENT_WINDOW_MOUSE_ENTER           EventType = 0x20c
	EVENT_WINDOW_MOUSE_LEAVE           EventType = 0x20d
	EVENT_WINDOW_FOCUS_GAINED          EventType = 0x20e
	EVENT_WINDOW_FOCUS_LOST            EventType = 0x20f
	EVENT_WINDOW_CLOSE_REQUESTED       EventType = 0x210
	EVENT_WINDOW_HIT_TEST              EventType = 0x211
	EVENT_WINDOW_ICCPROF_CHANGED       EventType = 0x212
	EVENT_WINDOW_DISPLAY_CHANGED       EventType = 0x213
	EVENT_WINDOW_DISPLAY_SCALE_CHANGED EventType = 0x214
	EVENT_WINDOW_SAFE_AREA_CHANGED     EventType = 0x215
	EVENT_WINDOW_OCCLUDED              EventType = 0x216
	EVENT_WINDOW_ENTER_FULLSCREEN      EventType = 0x217
	EVENT_WINDOW_LEAVE_FULLSCREEN      EventType = 0x218
	EVENT_WINDOW_DESTROYED             EventType = 0x219
	EVENT_WINDOW_HDR_STATE_CHANGED     EventType = 0x21a

	// Keyboard events
	EVENT_KEY_DOWN                EventType = 0x300
	EVENT_KEY_UP                  EventType = 0x301
	EVENT_TEXT_EDITING            EventType = 0x302
	EVENT_TEXT_INPUT              EventType = 0x303
	EVENT_KEYMAP_CHANGED          EventType = 0x304
	EVENT_KEYBOARD_ADDED          EventType = 0x305
	EVENT_KEYBOARD_REMOVED        EventType = 0x306
	EVENT_TEXT_EDITING_CANDIDATES EventType = 0x307

	// Mouse events
	EVENT_MOUSE_MOTION      EventType = 0x400
	EVENT_MOUSE_BUTTON_DOWN EventType = 0x401
	EVENT_MOUSE_BUTTON_UP   EventType = 0x402
	EVENT_MOUSE_WHEEL       EventType = 0x403
	EVENT_MOUSE_ADDED       EventType = 0x404
	EVENT_MOUSE_REMOVED     EventType = 0x405

	// Joystick events
	EVENT_JOYSTICK_AXIS_MOTION     EventType = 0x600
	EVENT_JOYSTICK_BALL_MOTION     EventType = 0x601
	EVENT_JOYSTICK_HAT_MOTION      EventType = 0x602
	EVENT_JOYSTICK_BUTTON_DOWN     EventType = 0x603
	EVENT_JOYSTICK_BUTTON_UP       EventType = 0x604
	EVENT_JOYSTICK_ADDED           EventType = 0x605
	EVENT_JOYSTICK_REMOVED         EventType = 0x606
	EVENT_JOYSTICK_BATTERY_UPDATED EventType = 0x607
	EVENT_JOYSTICK_UPDATE_COMPLETE EventType = 0x608

	// Gamepad events
	EVENT_GAMEPAD_AXIS_MOTION          EventType = 0x650
	EVENT_GAMEPAD_BUTTON_DOWN          EventType = 0x651
	EVENT_GAMEPAD_BUTTON_UP            EventType = 0x652
	EVENT_GAMEPAD_ADDED                EventType = 0x653
	EVENT_GAMEPAD_REMOVED              EventType = 0x654
	EVENT_GAMEPAD_REMAPPED             EventType = 0x655
	EVENT_GAMEPAD_TOUCHPAD_DOWN        EventType = 0x656
	EVENT_GAMEPAD_TOUCHPAD_MOTION      EventType = 0x657
	EVENT_GAMEPAD_TOUCHPAD_UP          EventType = 0x658
	EVENT_GAMEPAD_SENSOR_UPDATE        EventType = 0x659
	EVENT_GAMEPAD_UPDATE_COMPLETE      EventType = 0x65a
	EVENT_GAMEPAD_STEAM_HANDLE_UPDATED EventType = 0x65b

	// Touch events
	EVENT_FINGER_DOWN     EventType = 0x700
	EVENT_FINGER_UP       EventType = 0x701
	EVENT_FINGER_MOTION   EventType = 0x702
	EVENT_FINGER_CANCELED EventType = 0x703

	// Clipboard events
	EVENT_CLIPBOARD_UPDATE EventType = 0x900

	// Audio device events
	EVENT_AUDIO_DEVICE_ADDED          EventType = 0x1100
	EVENT_AUDIO_DEVICE_REMOVED        EventType = 0x1101
	EVENT_AUDIO_DEVICE_FORMAT_CHANGED EventType = 0x1102

	// Sensor events
	EVENT_SENSOR_UPDATE EventType = 0x1200

	// Pen events
	EVENT_PEN_PROXIMITY_IN  EventType = 0x1300
	EVENT_PEN_PROXIMITY_OUT EventType = 0x1301
	EVENT_PEN_DOWN          EventType = 0x1302
	EVENT_PEN_UP            EventType = 0x1303
	EVENT_PEN_BUTTON_DOWN   EventType = 0x1304
	EVENT_PEN_BUTTON_UP     EventType = 0x1305
	EVENT_PEN_MOTION        EventType = 0x1306
	EVENT_PEN_AXIS          EventType = 0x1307

	// Camera device events
	EVENT_CAMERA_DEVICE_ADDED    EventType = 0x1400
	EVENT_CAMERA_DEVICE_REMOVED  EventType = 0x1401
	EVENT_CAMERA_DEVICE_APPROVED EventType = 0x1402
	EVENT_CAMERA_DEVICE_DENIED   EventType = 0x1403

	// Events EVENT_USER through EVENT_LAST are free for application use;
	// allocate them with RegisterEvents.
	EVENT_USER EventType = 0x8000
	EVENT_LAST EventType = 0xffff
)

// Event is the 128-byte native event union. Type says which of the typed
// views below is valid; the accessor methods reinterpret the same bytes.
type Event struct {
	Type      EventType
	reserved  uint32
	Timestamp uint64 // nanoseconds, from GetTicksNS
	_         [112]byte
}

// CommonEvent is the header every event starts with.
type CommonEvent struct {
	Type      EventType
	Reserved  uint32
	Timestamp uint64
}

// DisplayEvent covers the EVENT_DISPLAY_* family.
type DisplayEvent struct {
	CommonEvent
	DisplayID DisplayID
	Data1     int32
	Data2     int32
}

// WindowEvent covers the EVENT_WINDOW_* family.
type WindowEvent struct {
	CommonEvent
	WindowID WindowID
	Data1    int32
	Data2    int32
}

// KeyboardDeviceEvent covers EVENT_KEYBOARD_ADDED and _REMOVED.
type KeyboardDeviceEvent struct {
	CommonEvent
	Which KeyboardID
}

// KeyboardEvent covers EVENT_KEY_DOWN and EVENT_KEY_UP.
type KeyboardEvent struct {
	CommonEvent
	WindowID WindowID
	Which    KeyboardID
	Scancode Scancode
	Key      Keycode
	Mod      Keymod
	Raw      uint16
	Down     bool
	Repeat   bool
}

// TextInputEvent covers EVENT_TEXT_INPUT. The text pointer is owned by
// the event queue; use Text to copy it out.
type TextInputEvent struct {
	CommonEvent
	WindowID WindowID
	text     *byte
}

// Text returns the typed text as a Go string.
func (e *TextInputEvent) Text() string {
	if e.text == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(e.text), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(e.text, n))
}

// MouseMotionEvent covers EVENT_MOUSE_MOTION.
type MouseMotionEvent struct {
	CommonEvent
	WindowID WindowID
	Which    MouseID
	State    MouseButtonFlags
	X        float32
	Y        float32
	Xrel     float32
	Yrel     float32
}

// MouseButtonEvent covers EVENT_MOUSE_BUTTON_DOWN and _UP.
type MouseButtonEvent struct {
	CommonEvent
	WindowID WindowID
	Which    MouseID
	Button   uint8
	Down     bool
	Clicks   uint8
	_        uint8
	X        float32
	Y        float32
}

// MouseWheelEvent covers EVENT_MOUSE_WHEEL.
type MouseWheelEvent struct {
	CommonEvent
	WindowID  WindowID
	Which     MouseID
	X         float32
	Y         float32
	Direction MouseWheelDirection
	MouseX    float32
	MouseY    float32
}

// JoyAxisEvent covers EVENT_JOYSTICK_AXIS_MOTION.
type JoyAxisEvent struct {
	CommonEvent
	Which JoystickID
	Axis  uint8
	_     [3]uint8
	Value int16
	_     uint16
}

// JoyHatEvent covers EVENT_JOYSTICK_HAT_MOTION.
type JoyHatEvent struct {
	CommonEvent
	Which JoystickID
	Hat   uint8
	Value uint8
	_     [2]uint8
}

// JoyButtonEvent covers EVENT_JOYSTICK_BUTTON_DOWN and _UP.
type JoyButtonEvent struct {
	CommonEvent
	Which  JoystickID
	Button uint8
	Down   bool
	_      [2]uint8
}

// JoyDeviceEvent covers EVENT_JOYSTICK_ADDED, _REMOVED and
// _UPDATE_COMPLETE.
type JoyDeviceEvent struct {
	CommonEvent
	Which JoystickID
}

// GamepadAxisEvent covers EVENT_GAMEPAD_AXIS_MOTION.
type GamepadAxisEvent struct {
	CommonEvent
	Which JoystickID
	Axis  uint8
	_     [3]uint8
	Value int16
	_     uint16
}

// GamepadButtonEvent covers EVENT_GAMEPAD_BUTTON_DOWN and _UP.
type GamepadButtonEvent struct {
	CommonEvent
	Which  JoystickID
	Button uint8
	Down   bool
	_      [2]uint8
}

// GamepadDeviceEvent covers gamepad add/remove/remap events.
type GamepadDeviceEvent struct {
	CommonEvent
	Which JoystickID
}

// TouchFingerEvent covers the EVENT_FINGER_* family. Coordinates and
// deltas are normalized to [0, 1] over the window.
type TouchFingerEvent struct {
	CommonEvent
	TouchID  TouchID
	FingerID FingerID
	X        float32
	Y        float32
	Dx       float32
	Dy       float32
	Pressure float32
	WindowID WindowID
}

// SensorEvent covers EVENT_SENSOR_UPDATE. Data holds up to six values;
// their meaning depends on the sensor type.
type SensorEvent struct {
	CommonEvent
	Which           SensorID
	Data            [6]float32
	_               [4]byte
	SensorTimestamp uint64
}

// PenProximityEvent covers EVENT_PEN_PROXIMITY_IN and _OUT.
type PenProximityEvent struct {
	CommonEvent
	WindowID WindowID
	Which    PenID
}

// PenMotionEvent covers EVENT_PEN_MOTION.
type PenMotionEvent struct {
	CommonEvent
	WindowID WindowID
	Which    PenID
	PenState PenInputFlags
	X        float32
	Y        float32
}

// PenTouchEvent covers EVENT_PEN_DOWN and EVENT_PEN_UP.
type PenTouchEvent struct {
	CommonEvent
	WindowID WindowID
	Which    PenID
	PenState PenInputFlags
	X        float32
	Y        float32
	Eraser   bool
	Down     bool
}

// PenButtonEvent covers EVENT_PEN_BUTTON_DOWN and _UP.
type PenButtonEvent struct {
	CommonEvent
	WindowID WindowID
	Which    PenID
	PenState PenInputFlags
	X        float32
	Y        float32
	Button   uint8
	Down     bool
}

// PenAxisEvent covers EVENT_PEN_AXIS.
type PenAxisEvent struct {
	CommonEvent
	WindowID WindowID
	Which    PenID
	PenState PenInputFlags
	X        float32
	Y        float32
	Axis     PenAxis
	Value    float32
}

// CameraDeviceEvent covers the EVENT_CAMERA_DEVICE_* family.
type CameraDeviceEvent struct {
	CommonEvent
	Which CameraID
}

// AudioDeviceEvent covers the EVENT_AUDIO_DEVICE_* family.
type AudioDeviceEvent struct {
	CommonEvent
	Which     AudioDeviceID
	Recording bool
	_         [3]uint8
}

// QuitEvent covers EVENT_QUIT.
type QuitEvent struct {
	CommonEvent
}

// UserEvent covers types allocated with RegisterEvents.
type UserEvent struct {
	CommonEvent
	WindowID WindowID
	Code     int32
	Data1    unsafe.Pointer
	Data2    unsafe.Pointer
}

// Typed views over the union. Only the view matching Type holds valid
// data.

func (e *Event) Common() *CommonEvent   { return (*CommonEvent)(unsafe.Pointer(e)) }
func (e *Event) Display() *DisplayEvent { return (*DisplayEvent)(unsafe.Pointer(e)) }
func (e *Event) Window() *WindowEvent   { return (*WindowEvent)(unsafe.Pointer(e)) }
func (e *Event) KeyboardDevice() *KeyboardDeviceEvent {
	return (*KeyboardDeviceEvent)(unsafe.Pointer(e))
}
func (e *Event) Key() *KeyboardEvent        { return (*KeyboardEvent)(unsafe.Pointer(e)) }
func (e *Event) TextInput() *TextInputEvent { return (*TextInputEvent)(unsafe.Pointer(e)) }
func (e *Event) MouseMotion() *MouseMotionEvent {
	return (*MouseMotionEvent)(unsafe.Pointer(e))
}
func (e *Event) MouseButton() *MouseButtonEvent {
	return (*MouseButtonEvent)(unsafe.Pointer(e))
}
func (e *Event) MouseWheel() *MouseWheelEvent { return (*MouseWheelEvent)(unsafe.Pointer(e)) }
func (e *Event) JoyAxis() *JoyAxisEvent       { return (*JoyAxisEvent)(unsafe.Pointer(e)) }
func (e *Event) JoyHat() *JoyHatEvent         { return (*JoyHatEvent)(unsafe.Pointer(e)) }
func (e *Event) JoyButton() *JoyButtonEvent   { return (*JoyButtonEvent)(unsafe.Pointer(e)) }
func (e *Event) JoyDevice() *JoyDeviceEvent   { return (*JoyDeviceEvent)(unsafe.Pointer(e)) }
func (e *Event) GamepadAxis() *GamepadAxisEvent {
	return (*GamepadAxisEvent)(unsafe.Pointer(e))
}
func (e *Event) GamepadButton() *GamepadButtonEvent {
	return (*GamepadButtonEvent)(unsafe.Pointer(e))
}
func (e *Event) GamepadDevice() *GamepadDeviceEvent {
	return (*GamepadDeviceEvent)(unsafe.Pointer(e))
}
func (e *Event) TouchFinger() *TouchFingerEvent {
	return (*TouchFingerEvent)(unsafe.Pointer(e))
}
func (e *Event) Sensor() *SensorEvent { return (*SensorEvent)(unsafe.Pointer(e)) }
func (e *Event) PenProximity() *PenProximityEvent {
	return (*PenProximityEvent)(unsafe.Pointer(e))
}
func (e *Event) PenMotion() *PenMotionEvent { return (*PenMotionEvent)(unsafe.Pointer(e)) }
func (e *Event) PenTouch() *PenTouchEvent   { return (*PenTouchEvent)(unsafe.Pointer(e)) }
func (e *Event) PenButton() *PenButtonEvent { return (*PenButtonEvent)(unsafe.Pointer(e)) }
func (e *Event) PenAxis() *PenAxisEvent     { return (*PenAxisEvent)(unsafe.Pointer(e)) }
func (e *Event) CameraDevice() *CameraDeviceEvent {
	return (*CameraDeviceEvent)(unsafe.Pointer(e))
}
func (e *Event) AudioDevice() *AudioDeviceEvent {
	return (*AudioDeviceEvent)(unsafe.Pointer(e))
}
func (e *Event) User() *UserEvent { return (*UserEvent)(unsafe.Pointer(e)) }

type eventFns struct {
	PumpEvents       func()                     `ffi:"SDL_PumpEvents"`
	PollEvent        func(*Event) bool          `ffi:"SDL_PollEvent"`
	WaitEvent        func(*Event) bool          `ffi:"SDL_WaitEvent"`
	WaitEventTimeout func(*Event, int32) bool   `ffi:"SDL_WaitEventTimeout"`
	PushEvent        func(*Event) bool          `ffi:"SDL_PushEvent"`
	HasEvent         func(EventType) bool       `ffi:"SDL_HasEvent"`
	FlushEvent       func(EventType)            `ffi:"SDL_FlushEvent"`
	FlushEvents      func(EventType, EventType) `ffi:"SDL_FlushEvents"`
	SetEventEnabled  func(EventType, bool)      `ffi:"SDL_SetEventEnabled"`
	EventEnabled     func(EventType) bool       `ffi:"SDL_EventEnabled"`
	RegisterEvents   func(int32) EventType      `ffi:"SDL_RegisterEvents"`
}

var eventProcs procs[eventFns]

// PumpEvents gathers pending input into the queue. PollEvent and
// WaitEvent call it for you.
func PumpEvents() {
	eventProcs.get().PumpEvents()
}

// PollEvent pops the next pending event into ev, reporting whether there
// was one. Call it on the thread that created the windows.
func PollEvent(ev *Event) bool {
	return eventProcs.get().PollEvent(ev)
}

// WaitEvent blocks until an event arrives.
func WaitEvent(ev *Event) error {
	if !eventProcs.get().WaitEvent(ev) {
		return lastErr()
	}
	return nil
}

// WaitEventTimeout is WaitEvent with a millisecond deadline; false means
// the deadline passed with no event.
func WaitEventTimeout(ev *Event, timeoutMS int32) bool {
	return eventProcs.get().WaitEventTimeout(ev, timeoutMS)
}

// PushEvent adds an event to the queue. false with a nil error means an
// event filter dropped it.
func PushEvent(ev *Event) (bool, error) {
	if eventProcs.get().PushEvent(ev) {
		return true, nil
	}
	if msg := GetError(); msg != "" {
		return false, lastErr()
	}
	return false, nil
}

// HasEvent reports whether an event of the given type is queued.
func HasEvent(typ EventType) bool {
	return eventProcs.get().HasEvent(typ)
}

// FlushEvent drops all queued events of one type.
func FlushEvent(typ EventType) {
	eventProcs.get().FlushEvent(typ)
}

// FlushEvents drops all queued events in a type range.
func FlushEvents(minType, maxType EventType) {
	eventProcs.get().FlushEvents(minType, maxType)
}

// SetEventEnabled turns processing of an event type on or off.
func SetEventEnabled(typ EventType, enabled bool) {
	eventProcs.get().SetEventEnabled(typ, enabled)
}

// EventEnabled reports whether an event type is processed.
func EventEnabled(typ EventType) bool {
	return eventProcs.get().EventEnabled(typ)
}

// RegisterEvents allocates a contiguous range of application event types,
// starting at the returned value. Zero means the space is exhausted.
func RegisterEvents(count int) EventType {
	return eventProcs.get().RegisterEvents(int32(count))
}
