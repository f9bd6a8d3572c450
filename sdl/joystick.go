package sdl

// JoystickID identifies a joystick for the lifetime of its connection.
type JoystickID uint32

// Joystick is an opaque handle to an opened joystick.
type Joystick struct{}

// JoystickType is the rough category of a device.
type JoystickType int32

const (
	JOYSTICK_TYPE_UNKNOWN JoystickType = iota
	JOYSTICK_TYPE_GAMEPAD
	JOYSTICK_TYPE_WHEEL
	JOYSTICK_TYPE_ARCADE_STICK
	JOYSTICK_TYPE_FLIGHT_STICK
	JOYSTICK_TYPE_DANCE_PAD
	JOYSTICK_TYPE_GUITAR
	JOYSTICK_TYPE_DRUM_KIT
	JOYSTICK_TYPE_ARCADE_PAD
	JOYSTICK_TYPE_THROTTLE
)

// Axis values run the full int16 range.
const (
	JOYSTICK_AXIS_MAX = 32767
	JOYSTICK_AXIS_MIN = -32768
)

// Hat positions, combinable for diagonals.
const (
	HAT_CENTERED  uint8 = 0x00
	HAT_UP        uint8 = 0x01
	HAT_RIGHT     uint8 = 0x02
	HAT_DOWN      uint8 = 0x04
	HAT_LEFT      uint8 = 0x08
	HAT_RIGHTUP         = HAT_RIGHT | HAT_UP
	HAT_RIGHTDOWN       = HAT_RIGHT | HAT_DOWN
	HAT_LEFTUP          = HAT_LEFT | HAT_UP
	HAT_LEFTDOWN        = HAT_LEFT | HAT_DOWN
)

type joystickFns struct {
	HasJoystick               func() bool                                  `ffi:"SDL_HasJoystick"`
	GetJoysticks              func(*int32) *JoystickID                     `ffi:"SDL_GetJoysticks"`
	GetJoystickNameForID      func(JoystickID) string                      `ffi:"SDL_GetJoystickNameForID"`
	GetJoystickGUIDForID      func(JoystickID) guidRaw                     `ffi:"SDL_GetJoystickGUIDForID"`
	GetJoystickTypeForID      func(JoystickID) JoystickType                `ffi:"SDL_GetJoystickTypeForID"`
	OpenJoystick              func(JoystickID) *Joystick                   `ffi:"SDL_OpenJoystick"`
	CloseJoystick             func(*Joystick)                              `ffi:"SDL_CloseJoystick"`
	GetJoystickFromID         func(JoystickID) *Joystick                   `ffi:"SDL_GetJoystickFromID"`
	GetJoystickID             func(*Joystick) JoystickID                   `ffi:"SDL_GetJoystickID"`
	GetJoystickName           func(*Joystick) string                       `ffi:"SDL_GetJoystickName"`
	GetJoystickGUID           func(*Joystick) guidRaw                      `ffi:"SDL_GetJoystickGUID"`
	GetJoystickVendor         func(*Joystick) uint16                       `ffi:"SDL_GetJoystickVendor"`
	GetJoystickProduct        func(*Joystick) uint16                       `ffi:"SDL_GetJoystickProduct"`
	GetJoystickProductVersion func(*Joystick) uint16                       `ffi:"SDL_GetJoystickProductVersion"`
	GetJoystickType           func(*Joystick) JoystickType                 `ffi:"SDL_GetJoystickType"`
	JoystickConnected         func(*Joystick) bool                         `ffi:"SDL_JoystickConnected"`
	GetNumJoystickAxes        func(*Joystick) int32                        `ffi:"SDL_GetNumJoystickAxes"`
	GetNumJoystickButtons     func(*Joystick) int32                        `ffi:"SDL_GetNumJoystickButtons"`
	GetNumJoystickHats        func(*Joystick) int32                        `ffi:"SDL_GetNumJoystickHats"`
	GetJoystickAxis           func(*Joystick, int32) int16                 `ffi:"SDL_GetJoystickAxis"`
	GetJoystickButton         func(*Joystick, int32) bool                  `ffi:"SDL_GetJoystickButton"`
	GetJoystickHat            func(*Joystick, int32) uint8                 `ffi:"SDL_GetJoystickHat"`
	RumbleJoystick            func(*Joystick, uint16, uint16, uint32) bool `ffi:"SDL_RumbleJoystick"`
	SetJoystickLED            func(*Joystick, uint8, uint8, uint8) bool    `ffi:"SDL_SetJoystickLED"`
	GetJoystickPowerInfo      func(*Joystick, *int32) PowerState           `ffi:"SDL_GetJoystickPowerInfo"`
	SetJoystickEventsEnabled  func(bool)                                   `ffi:"SDL_SetJoystickEventsEnabled"`
	JoystickEventsEnabled     func() bool                                  `ffi:"SDL_JoystickEventsEnabled"`
	UpdateJoysticks           func()                                       `ffi:"SDL_UpdateJoysticks"`
}

var joyProcs procs[joystickFns]

// HasJoystick reports whether any joystick is connected.
func HasJoystick() bool {
	return joyProcs.get().HasJoystick()
}

// GetJoysticks returns the connected joysticks.
func GetJoysticks() ([]JoystickID, error) {
	var n int32
	ptr := joyProcs.get().GetJoysticks(&n)
	if ptr == nil {
		return nil, lastErr()
	}
	return copyIDs(ptr, n), nil
}

// Name returns the joystick's name without opening it.
func (id JoystickID) Name() string {
	return joyProcs.get().GetJoystickNameForID(id)
}

// GUID returns the joystick's stable GUID without opening it.
func (id JoystickID) GUID() GUID {
	return joyProcs.get().GetJoystickGUIDForID(id).guid()
}

// Type returns the joystick's category without opening it.
func (id JoystickID) Type() JoystickType {
	return joyProcs.get().GetJoystickTypeForID(id)
}

// Open opens the joystick for use.
func (id JoystickID) Open() (*Joystick, error) {
	j := joyProcs.get().OpenJoystick(id)
	if j == nil {
		return nil, lastErr()
	}
	return j, nil
}

// Close releases the joystick.
func (j *Joystick) Close() {
	joyProcs.get().CloseJoystick(j)
}

// GetJoystickFromID returns the already-open joystick for an ID, or nil.
func GetJoystickFromID(id JoystickID) *Joystick {
	return joyProcs.get().GetJoystickFromID(id)
}

// ID returns the instance ID of an open joystick.
func (j *Joystick) ID() JoystickID {
	return joyProcs.get().GetJoystickID(j)
}

// Name returns the joystick's name.
func (j *Joystick) Name() string {
	return joyProcs.get().GetJoystickName(j)
}

// GUID returns the joystick's stable GUID.
func (j *Joystick) GUID() GUID {
	return joyProcs.get().GetJoystickGUID(j).guid()
}

// Vendor returns the USB vendor ID, 0 when unavailable.
func (j *Joystick) Vendor() uint16 {
	return joyProcs.get().GetJoystickVendor(j)
}

// Product returns the USB product ID, 0 when unavailable.
func (j *Joystick) Product() uint16 {
	return joyProcs.get().GetJoystickProduct(j)
}

// ProductVersion returns the device version, 0 when unavailable.
func (j *Joystick) ProductVersion() uint16 {
	return joyProcs.get().GetJoystickProductVersion(j)
}

// Type returns the joystick's category.
func (j *Joystick) Type() JoystickType {
	return joyProcs.get().GetJoystickType(j)
}

// Connected reports whether the device is still attached.
func (j *Joystick) Connected() bool {
	return joyProcs.get().JoystickConnected(j)
}

// NumAxes returns the number of axes.
func (j *Joystick) NumAxes() (int, error) {
	n := joyProcs.get().GetNumJoystickAxes(j)
	if n < 0 {
		return 0, lastErr()
	}
	return int(n), nil
}

// NumButtons returns the number of buttons.
func (j *Joystick) NumButtons() (int, error) {
	n := joyProcs.get().GetNumJoystickButtons(j)
	if n < 0 {
		return 0, lastErr()
	}
	return int(n), nil
}

// NumHats returns the number of POV hats.
func (j *Joystick) NumHats() (int, error) {
	n := joyProcs.get().GetNumJoystickHats(j)
	if n < 0 {
		return 0, lastErr()
	}
	return int(n), nil
}

// Axis returns the current position of an axis in
// [JOYSTICK_AXIS_MIN, JOYSTICK_AXIS_MAX].
func (j *Joystick) Axis(axis int) int16 {
	return joyProcs.get().GetJoystickAxis(j, int32(axis))
}

// Button reports whether a button is held.
func (j *Joystick) Button(button int) bool {
	return joyProcs.get().GetJoystickButton(j, int32(button))
}

// Hat returns a hat's position as HAT_* flags.
func (j *Joystick) Hat(hat int) uint8 {
	return joyProcs.get().GetJoystickHat(j, int32(hat))
}

// Rumble starts both rumble motors for a duration. Zero intensities stop
// them.
func (j *Joystick) Rumble(lowFreq, highFreq uint16, durationMS uint32) error {
	if !joyProcs.get().RumbleJoystick(j, lowFreq, highFreq, durationMS) {
		return lastErr()
	}
	return nil
}

// SetLED sets the controller LED color on devices that have one.
func (j *Joystick) SetLED(r, g, b uint8) error {
	if !joyProcs.get().SetJoystickLED(j, r, g, b) {
		return lastErr()
	}
	return nil
}

// PowerInfo returns the joystick's battery state and percent charge,
// percent -1 when unknown.
func (j *Joystick) PowerInfo() (PowerState, int) {
	var pct int32
	state := joyProcs.get().GetJoystickPowerInfo(j, &pct)
	return state, int(pct)
}

// SetJoystickEventsEnabled turns joystick event delivery on or off. With
// events off, call UpdateJoysticks yourself before polling state.
func SetJoystickEventsEnabled(enabled bool) {
	joyProcs.get().SetJoystickEventsEnabled(enabled)
}

// JoystickEventsEnabled reports whether joystick events are delivered.
func JoystickEventsEnabled() bool {
	return joyProcs.get().JoystickEventsEnabled()
}

// UpdateJoysticks refreshes joystick state. The event loop normally does
// this.
func UpdateJoysticks() {
	joyProcs.get().UpdateJoysticks()
}
