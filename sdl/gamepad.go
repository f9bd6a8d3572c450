package sdl

import "unsafe"

// Gamepad is an opaque handle to a joystick with a button/axis mapping.
type Gamepad struct{}

// GamepadType is the controller family a mapping emulates.
type GamepadType int32

const (
	GAMEPAD_TYPE_UNKNOWN GamepadType = iota
	GAMEPAD_TYPE_STANDARD
	GAMEPAD_TYPE_XBOX360
	GAMEPAD_TYPE_XBOXONE
	GAMEPAD_TYPE_PS3
	GAMEPAD_TYPE_PS4
	GAMEPAD_TYPE_PS5
	GAMEPAD_TYPE_NINTENDO_SWITCH_PRO
	GAMEPAD_TYPE_NINTENDO_SWITCH_JOYCON_LEFT
	GAMEPAD_TYPE_NINTENDO_SWITCH_JOYCON_RIGHT
	GAMEPAD_TYPE_NINTENDO_SWITCH_JOYCON_PAIR
)

// GamepadButton names buttons by position, south being the bottom face
// button regardless of label.
type GamepadButton int32

const (
	GAMEPAD_BUTTON_INVALID GamepadButton = -1
	GAMEPAD_BUTTON_SOUTH   GamepadButton = iota - 1
	GAMEPAD_BUTTON_EAST
	GAMEPAD_BUTTON_WEST
	GAMEPAD_BUTTON_NORTH
	GAMEPAD_BUTTON_BACK
	GAMEPAD_BUTTON_GUIDE
	GAMEPAD_BUTTON_START
	GAMEPAD_BUTTON_LEFT_STICK
	GAMEPAD_BUTTON_RIGHT_STICK
	GAMEPAD_BUTTON_LEFT_SHOULDER
	GAMEPAD_BUTTON_RIGHT_SHOULDER
	GAMEPAD_BUTTON_DPAD_UP
	GAMEPAD_BUTTON_DPAD_DOWN
	GAMEPAD_BUTTON_DPAD_LEFT
	GAMEPAD_BUTTON_DPAD_RIGHT
	GAMEPAD_BUTTON_MISC1
	GAMEPAD_BUTTON_RIGHT_PADDLE1
	GAMEPAD_BUTTON_LEFT_PADDLE1
	GAMEPAD_BUTTON_RIGHT_PADDLE2
	GAMEPAD_BUTTON_LEFT_PADDLE2
	GAMEPAD_BUTTON_TOUCHPAD
	GAMEPAD_BUTTON_MISC2
	GAMEPAD_BUTTON_MISC3
	GAMEPAD_BUTTON_MISC4
	GAMEPAD_BUTTON_MISC5
	GAMEPAD_BUTTON_MISC6
	GAMEPAD_BUTTON_COUNT
)

// GamepadAxis names the standard axes. Triggers range 0..32767; sticks
// use the full int16 range.
type GamepadAxis int32

const (
	GAMEPAD_AXIS_INVALID GamepadAxis = -1
	GAMEPAD_AXIS_LEFTX   GamepadAxis = iota - 1
	GAMEPAD_AXIS_LEFTY
	GAMEPAD_AXIS_RIGHTX
	GAMEPAD_AXIS_RIGHTY
	GAMEPAD_AXIS_LEFT_TRIGGER
	GAMEPAD_AXIS_RIGHT_TRIGGER
	GAMEPAD_AXIS_COUNT
)

// GamepadBindingType says what a mapping entry binds from or to.
type GamepadBindingType int32

const (
	GAMEPAD_BINDTYPE_NONE GamepadBindingType = iota
	GAMEPAD_BINDTYPE_BUTTON
	GAMEPAD_BINDTYPE_AXIS
	GAMEPAD_BINDTYPE_HAT
)

// GamepadBindingInputAxis is the axis arm of a binding input.
type GamepadBindingInputAxis struct {
	Axis    int32
	AxisMin int32
	AxisMax int32
}

// GamepadBindingInputHat is the hat arm of a binding input.
type GamepadBindingInputHat struct {
	Hat     int32
	HatMask int32
}

// GamepadBindingOutputAxis is the axis arm of a binding output.
type GamepadBindingOutputAxis struct {
	Axis    GamepadAxis
	AxisMin int32
	AxisMax int32
}

// GamepadBinding maps one raw joystick control to one gamepad control.
// The input and output fields are native unions; use the typed accessors
// after checking the corresponding type tag.
type GamepadBinding struct {
	InputType  GamepadBindingType
	input      [12]byte
	OutputType GamepadBindingType
	output     [12]byte
}

// InputButton returns the raw button index; valid when InputType is
// GAMEPAD_BINDTYPE_BUTTON.
func (b *GamepadBinding) InputButton() int32 {
	return *(*int32)(unsafe.Pointer(&b.input))
}

// InputAxis returns the raw axis arm; valid when InputType is
// GAMEPAD_BINDTYPE_AXIS.
func (b *GamepadBinding) InputAxis() GamepadBindingInputAxis {
	return *(*GamepadBindingInputAxis)(unsafe.Pointer(&b.input))
}

// InputHat returns the raw hat arm; valid when InputType is
// GAMEPAD_BINDTYPE_HAT.
func (b *GamepadBinding) InputHat() GamepadBindingInputHat {
	return *(*GamepadBindingInputHat)(unsafe.Pointer(&b.input))
}

// OutputButton returns the bound gamepad button; valid when OutputType is
// GAMEPAD_BINDTYPE_BUTTON.
func (b *GamepadBinding) OutputButton() GamepadButton {
	return *(*GamepadButton)(unsafe.Pointer(&b.output))
}

// OutputAxis returns the bound gamepad axis arm; valid when OutputType is
// GAMEPAD_BINDTYPE_AXIS.
func (b *GamepadBinding) OutputAxis() GamepadBindingOutputAxis {
	return *(*GamepadBindingOutputAxis)(unsafe.Pointer(&b.output))
}

type gamepadFns struct {
	AddGamepadMapping          func(string) int32                          `ffi:"SDL_AddGamepadMapping"`
	AddGamepadMappingsFromFile func(string) int32                          `ffi:"SDL_AddGamepadMappingsFromFile"`
	GetGamepadMappingForGUID   func(guidRaw) *byte                         `ffi:"SDL_GetGamepadMappingForGUID"`
	GetGamepadMapping          func(*Gamepad) *byte                        `ffi:"SDL_GetGamepadMapping"`
	HasGamepad                 func() bool                                 `ffi:"SDL_HasGamepad"`
	GetGamepads                func(*int32) *JoystickID                    `ffi:"SDL_GetGamepads"`
	IsGamepad                  func(JoystickID) bool                       `ffi:"SDL_IsGamepad"`
	GetGamepadNameForID        func(JoystickID) string                     `ffi:"SDL_GetGamepadNameForID"`
	GetGamepadTypeForID        func(JoystickID) GamepadType                `ffi:"SDL_GetGamepadTypeForID"`
	OpenGamepad                func(JoystickID) *Gamepad                   `ffi:"SDL_OpenGamepad"`
	CloseGamepad               func(*Gamepad)                              `ffi:"SDL_CloseGamepad"`
	GetGamepadFromID           func(JoystickID) *Gamepad                   `ffi:"SDL_GetGamepadFromID"`
	GetGamepadID               func(*Gamepad) JoystickID                   `ffi:"SDL_GetGamepadID"`
	GetGamepadName             func(*Gamepad) string                       `ffi:"SDL_GetGamepadName"`
	GetGamepadType             func(*Gamepad) GamepadType                  `ffi:"SDL_GetGamepadType"`
	GetGamepadVendor           func(*Gamepad) uint16                       `ffi:"SDL_GetGamepadVendor"`
	GetGamepadProduct          func(*Gamepad) uint16                       `ffi:"SDL_GetGamepadProduct"`
	GamepadConnected           func(*Gamepad) bool                         `ffi:"SDL_GamepadConnected"`
	GetGamepadJoystick         func(*Gamepad) *Joystick                    `ffi:"SDL_GetGamepadJoystick"`
	GamepadHasButton           func(*Gamepad, GamepadButton) bool          `ffi:"SDL_GamepadHasButton"`
	GetGamepadButton           func(*Gamepad, GamepadButton) bool          `ffi:"SDL_GetGamepadButton"`
	GamepadHasAxis             func(*Gamepad, GamepadAxis) bool            `ffi:"SDL_GamepadHasAxis"`
	GetGamepadAxis             func(*Gamepad, GamepadAxis) int16           `ffi:"SDL_GetGamepadAxis"`
	RumbleGamepad              func(*Gamepad, uint16, uint16, uint32) bool `ffi:"SDL_RumbleGamepad"`
	RumbleGamepadTriggers      func(*Gamepad, uint16, uint16, uint32) bool `ffi:"SDL_RumbleGamepadTriggers"`
	SetGamepadLED              func(*Gamepad, uint8, uint8, uint8) bool    `ffi:"SDL_SetGamepadLED"`
	GetGamepadPowerInfo        func(*Gamepad, *int32) PowerState           `ffi:"SDL_GetGamepadPowerInfo"`
	GetGamepadStringForButton  func(GamepadButton) string                  `ffi:"SDL_GetGamepadStringForButton"`
	GetGamepadButtonFromString func(string) GamepadButton                  `ffi:"SDL_GetGamepadButtonFromString"`
	GetGamepadStringForAxis    func(GamepadAxis) string                    `ffi:"SDL_GetGamepadStringForAxis"`
	GetGamepadAxisFromString   func(string) GamepadAxis                    `ffi:"SDL_GetGamepadAxisFromString"`
	GetGamepadBindings         func(*Gamepad, *int32) **GamepadBinding     `ffi:"SDL_GetGamepadBindings"`
	SetGamepadEventsEnabled    func(bool)                                  `ffi:"SDL_SetGamepadEventsEnabled"`
	GamepadEventsEnabled       func() bool                                 `ffi:"SDL_GamepadEventsEnabled"`
	UpdateGamepads             func()                                      `ffi:"SDL_UpdateGamepads"`
}

var gamepadProcs procs[gamepadFns]

// AddGamepadMapping adds or updates one mapping string in the community
// gamecontrollerdb format. Returns true when a new mapping was added,
// false when an existing one was updated.
func AddGamepadMapping(mapping string) (added bool, err error) {
	switch gamepadProcs.get().AddGamepadMapping(mapping) {
	case 1:
		return true, nil
	case 0:
		return false, nil
	}
	return false, lastErr()
}

// AddGamepadMappingsFromFile loads a mappings database file, returning
// how many mappings it added.
func AddGamepadMappingsFromFile(path string) (int, error) {
	n := gamepadProcs.get().AddGamepadMappingsFromFile(path)
	if n < 0 {
		return 0, lastErr()
	}
	return int(n), nil
}

// GamepadMappingForGUID returns the mapping string for a joystick GUID.
func GamepadMappingForGUID(guid GUID) (string, error) {
	m := takeString(gamepadProcs.get().GetGamepadMappingForGUID(guid.raw()))
	if m == "" {
		return "", lastErr()
	}
	return m, nil
}

// HasGamepad reports whether any mapped controller is connected.
func HasGamepad() bool {
	return gamepadProcs.get().HasGamepad()
}

// GetGamepads returns the connected joysticks that have mappings.
func GetGamepads() ([]JoystickID, error) {
	var n int32
	ptr := gamepadProcs.get().GetGamepads(&n)
	if ptr == nil {
		return nil, lastErr()
	}
	return copyIDs(ptr, n), nil
}

// IsGamepad reports whether the joystick has a gamepad mapping.
func (id JoystickID) IsGamepad() bool {
	return gamepadProcs.get().IsGamepad(id)
}

// GamepadName returns the mapped name for the joystick.
func (id JoystickID) GamepadName() string {
	return gamepadProcs.get().GetGamepadNameForID(id)
}

// GamepadType returns the controller family for the joystick.
func (id JoystickID) GamepadType() GamepadType {
	return gamepadProcs.get().GetGamepadTypeForID(id)
}

// OpenGamepad opens the joystick through its gamepad mapping.
func (id JoystickID) OpenGamepad() (*Gamepad, error) {
	g := gamepadProcs.get().OpenGamepad(id)
	if g == nil {
		return nil, lastErr()
	}
	return g, nil
}

// Close releases the gamepad.
func (g *Gamepad) Close() {
	gamepadProcs.get().CloseGamepad(g)
}

// GetGamepadFromID returns the already-open gamepad for an ID, or nil.
func GetGamepadFromID(id JoystickID) *Gamepad {
	return gamepadProcs.get().GetGamepadFromID(id)
}

// ID returns the underlying joystick instance ID.
func (g *Gamepad) ID() JoystickID {
	return gamepadProcs.get().GetGamepadID(g)
}

// Name returns the mapped controller name.
func (g *Gamepad) Name() string {
	return gamepadProcs.get().GetGamepadName(g)
}

// Type returns the controller family.
func (g *Gamepad) Type() GamepadType {
	return gamepadProcs.get().GetGamepadType(g)
}

// Vendor returns the USB vendor ID, 0 when unavailable.
func (g *Gamepad) Vendor() uint16 {
	return gamepadProcs.get().GetGamepadVendor(g)
}

// Product returns the USB product ID, 0 when unavailable.
func (g *Gamepad) Product() uint16 {
	return gamepadProcs.get().GetGamepadProduct(g)
}

// Connected reports whether the device is still attached.
func (g *Gamepad) Connected() bool {
	return gamepadProcs.get().GamepadConnected(g)
}

// Joystick returns the underlying joystick, owned by the gamepad.
func (g *Gamepad) Joystick() *Joystick {
	return gamepadProcs.get().GetGamepadJoystick(g)
}

// Mapping returns the mapping string in use for this controller.
func (g *Gamepad) Mapping() string {
	return takeString(gamepadProcs.get().GetGamepadMapping(g))
}

// HasButton reports whether the mapping covers the button.
func (g *Gamepad) HasButton(button GamepadButton) bool {
	return gamepadProcs.get().GamepadHasButton(g, button)
}

// Button reports whether a button is held.
func (g *Gamepad) Button(button GamepadButton) bool {
	return gamepadProcs.get().GetGamepadButton(g, button)
}

// HasAxis reports whether the mapping covers the axis.
func (g *Gamepad) HasAxis(axis GamepadAxis) bool {
	return gamepadProcs.get().GamepadHasAxis(g, axis)
}

// Axis returns the current position of an axis.
func (g *Gamepad) Axis(axis GamepadAxis) int16 {
	return gamepadProcs.get().GetGamepadAxis(g, axis)
}

// Rumble starts both rumble motors for a duration. Zero intensities stop
// them.
func (g *Gamepad) Rumble(lowFreq, highFreq uint16, durationMS uint32) error {
	if !gamepadProcs.get().RumbleGamepad(g, lowFreq, highFreq, durationMS) {
		return lastErr()
	}
	return nil
}

// RumbleTriggers rumbles the triggers on controllers that support it.
func (g *Gamepad) RumbleTriggers(left, right uint16, durationMS uint32) error {
	if !gamepadProcs.get().RumbleGamepadTriggers(g, left, right, durationMS) {
		return lastErr()
	}
	return nil
}

// SetLED sets the controller LED color on devices that have one.
func (g *Gamepad) SetLED(r, gr, b uint8) error {
	if !gamepadProcs.get().SetGamepadLED(g, r, gr, b) {
		return lastErr()
	}
	return nil
}

// PowerInfo returns the controller's battery state and percent charge,
// percent -1 when unknown.
func (g *Gamepad) PowerInfo() (PowerState, int) {
	var pct int32
	state := gamepadProcs.get().GetGamepadPowerInfo(g, &pct)
	return state, int(pct)
}

// GamepadStringForButton returns the mapping-format name of a button.
func GamepadStringForButton(button GamepadButton) string {
	return gamepadProcs.get().GetGamepadStringForButton(button)
}

// GamepadButtonFromString parses a mapping-format button name.
func GamepadButtonFromString(name string) GamepadButton {
	return gamepadProcs.get().GetGamepadButtonFromString(name)
}

// GamepadStringForAxis returns the mapping-format name of an axis.
func GamepadStringForAxis(axis GamepadAxis) string {
	return gamepadProcs.get().GetGamepadStringForAxis(axis)
}

// GamepadAxisFromString parses a mapping-format axis name.
func GamepadAxisFromString(name string) GamepadAxis {
	return gamepadProcs.get().GetGamepadAxisFromString(name)
}

// Bindings returns a copy of the raw control bindings the mapping
// resolved to for this device.
func (g *Gamepad) Bindings() ([]GamepadBinding, error) {
	var n int32
	ptr := gamepadProcs.get().GetGamepadBindings(g, &n)
	if ptr == nil {
		return nil, lastErr()
	}
	ptrs := unsafe.Slice(ptr, n)
	out := make([]GamepadBinding, 0, n)
	for _, p := range ptrs {
		if p != nil {
			out = append(out, *p)
		}
	}
	free(unsafe.Pointer(ptr))
	return out, nil
}

// SetGamepadEventsEnabled turns gamepad event delivery on or off.
func SetGamepadEventsEnabled(enabled bool) {
	gamepadProcs.get().SetGamepadEventsEnabled(enabled)
}

// GamepadEventsEnabled reports whether gamepad events are delivered.
func GamepadEventsEnabled() bool {
	return gamepadProcs.get().GamepadEventsEnabled()
}

// UpdateGamepads refreshes gamepad state. The event loop normally does
// this.
func UpdateGamepads() {
	gamepadProcs.get().UpdateGamepads()
}
