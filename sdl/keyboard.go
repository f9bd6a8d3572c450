package sdl

import "unsafe"

// KeyboardID identifies a connected keyboard.
type KeyboardID uint32

type keyboardFns struct {
	HasKeyboard          func() bool                          `ffi:"SDL_HasKeyboard"`
	GetKeyboards         func(*int32) *KeyboardID             `ffi:"SDL_GetKeyboards"`
	GetKeyboardNameForID func(KeyboardID) string              `ffi:"SDL_GetKeyboardNameForID"`
	GetKeyboardState     func(*int32) *bool                   `ffi:"SDL_GetKeyboardState"`
	ResetKeyboard        func()                               `ffi:"SDL_ResetKeyboard"`
	GetModState          func() Keymod                        `ffi:"SDL_GetModState"`
	SetModState          func(Keymod)                         `ffi:"SDL_SetModState"`
	GetKeyFromScancode   func(Scancode, Keymod, bool) Keycode `ffi:"SDL_GetKeyFromScancode"`
	GetScancodeFromKey   func(Keycode, *Keymod) Scancode      `ffi:"SDL_GetScancodeFromKey"`
	GetKeyName           func(Keycode) string                 `ffi:"SDL_GetKeyName"`
	GetKeyFromName       func(string) Keycode                 `ffi:"SDL_GetKeyFromName"`
	GetScancodeName      func(Scancode) string                `ffi:"SDL_GetScancodeName"`
	GetScancodeFromName  func(string) Scancode                `ffi:"SDL_GetScancodeFromName"`
	StartTextInput       func(*Window) bool                   `ffi:"SDL_StartTextInput"`
	StopTextInput        func(*Window) bool                   `ffi:"SDL_StopTextInput"`
	TextInputActive      func(*Window) bool                   `ffi:"SDL_TextInputActive"`
}

var keyboardProcs procs[keyboardFns]

// HasKeyboard reports whether a keyboard is connected.
func HasKeyboard() bool {
	return keyboardProcs.get().HasKeyboard()
}

// GetKeyboards returns the connected keyboards.
func GetKeyboards() ([]KeyboardID, error) {
	var n int32
	ptr := keyboardProcs.get().GetKeyboards(&n)
	if ptr == nil {
		return nil, lastErr()
	}
	return copyIDs(ptr, n), nil
}

// Name returns the keyboard's name.
func (k KeyboardID) Name() string {
	return keyboardProcs.get().GetKeyboardNameForID(k)
}

// GetKeyboardState returns a view of the per-scancode key state, indexed
// by Scancode. The slice aliases library memory that stays valid for the
// whole process and updates on each PumpEvents.
func GetKeyboardState() []bool {
	var n int32
	ptr := keyboardProcs.get().GetKeyboardState(&n)
	if ptr == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice(ptr, n)
}

// ResetKeyboard releases every key, generating key-up events.
func ResetKeyboard() {
	keyboardProcs.get().ResetKeyboard()
}

// GetModState returns the active modifier keys.
func GetModState() Keymod {
	return keyboardProcs.get().GetModState()
}

// SetModState overrides the active modifier keys.
func SetModState(mod Keymod) {
	keyboardProcs.get().SetModState(mod)
}

// KeycodeUnderMods returns the keycode the scancode produces with the
// given modifiers under the current layout.
func (s Scancode) KeycodeUnderMods(mod Keymod) Keycode {
	return keyboardProcs.get().GetKeyFromScancode(s, mod, false)
}

// Keycode returns the keycode the scancode produces unmodified.
func (s Scancode) Keycode() Keycode {
	return s.KeycodeUnderMods(KMOD_NONE)
}

// Scancode returns the key position that produces this keycode under the
// current layout, and the modifiers required to get it.
func (k Keycode) Scancode() (Scancode, Keymod) {
	var mod Keymod
	sc := keyboardProcs.get().GetScancodeFromKey(k, &mod)
	return sc, mod
}

// Name returns a human-readable name for the key.
func (k Keycode) Name() string {
	return keyboardProcs.get().GetKeyName(k)
}

// KeycodeFromName finds a keycode by its Name, K_UNKNOWN when unknown.
func KeycodeFromName(name string) Keycode {
	return keyboardProcs.get().GetKeyFromName(name)
}

// Name returns a human-readable name for the key position.
func (s Scancode) Name() string {
	return keyboardProcs.get().GetScancodeName(s)
}

// ScancodeFromName finds a scancode by its Name, SCANCODE_UNKNOWN when
// unknown.
func ScancodeFromName(name string) Scancode {
	return keyboardProcs.get().GetScancodeFromName(name)
}

// StartTextInput shows any on-screen keyboard and begins delivering
// EVENT_TEXT_INPUT events for the window.
func StartTextInput(w *Window) error {
	if !keyboardProcs.get().StartTextInput(w) {
		return lastErr()
	}
	return nil
}

// StopTextInput ends text input for the window.
func StopTextInput(w *Window) error {
	if !keyboardProcs.get().StopTextInput(w) {
		return lastErr()
	}
	return nil
}

// TextInputActive reports whether the window is receiving text input.
func TextInputActive(w *Window) bool {
	return keyboardProcs.get().TextInputActive(w)
}
