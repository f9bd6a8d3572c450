package sdl

// Hint names that change SDL behavior when set before the relevant
// subsystem starts. Only the commonly used ones are listed; any name the
// native library documents works with SetHint.
const (
	HINT_APP_NAME                         = "SDL_APP_NAME"
	HINT_AUDIO_DRIVER                     = "SDL_AUDIO_DRIVER"
	HINT_AUTO_UPDATE_JOYSTICKS            = "SDL_AUTO_UPDATE_JOYSTICKS"
	HINT_GAMECONTROLLERCONFIG             = "SDL_GAMECONTROLLERCONFIG"
	HINT_JOYSTICK_ALLOW_BACKGROUND_EVENTS = "SDL_JOYSTICK_ALLOW_BACKGROUND_EVENTS"
	HINT_MAIN_CALLBACK_RATE               = "SDL_MAIN_CALLBACK_RATE"
	HINT_MOUSE_FOCUS_CLICKTHROUGH         = "SDL_MOUSE_FOCUS_CLICKTHROUGH"
	HINT_NO_SIGNAL_HANDLERS               = "SDL_NO_SIGNAL_HANDLERS"
	HINT_RENDER_DRIVER                    = "SDL_RENDER_DRIVER"
	HINT_RENDER_VSYNC                     = "SDL_RENDER_VSYNC"
	HINT_VIDEO_DRIVER                     = "SDL_VIDEO_DRIVER"
	HINT_VIDEO_ALLOW_SCREENSAVER          = "SDL_VIDEO_ALLOW_SCREENSAVER"
)

// HintPriority orders competing hint sources.
type HintPriority int32

const (
	HINT_DEFAULT HintPriority = iota
	HINT_NORMAL
	HINT_OVERRIDE
)

type hintFns struct {
	SetHint             func(string, string) bool               `ffi:"SDL_SetHint"`
	SetHintWithPriority func(string, string, HintPriority) bool `ffi:"SDL_SetHintWithPriority"`
	GetHint             func(string) string                     `ffi:"SDL_GetHint"`
	GetHintBoolean      func(string, bool) bool                 `ffi:"SDL_GetHintBoolean"`
	ResetHint           func(string) bool                       `ffi:"SDL_ResetHint"`
	ResetHints          func()                                  `ffi:"SDL_ResetHints"`
}

var hintProcs procs[hintFns]

// SetHint sets a hint at normal priority.
func SetHint(name, value string) error {
	if !hintProcs.get().SetHint(name, value) {
		return lastErr()
	}
	return nil
}

// SetHintWithPriority sets a hint that can override environment variables
// or yield to them, depending on priority.
func SetHintWithPriority(name, value string, priority HintPriority) error {
	if !hintProcs.get().SetHintWithPriority(name, value, priority) {
		return lastErr()
	}
	return nil
}

// GetHint returns the current value of a hint, or "" when unset.
func GetHint(name string) string {
	return hintProcs.get().GetHint(name)
}

// GetHintBoolean interprets a hint as a boolean.
func GetHintBoolean(name string, def bool) bool {
	return hintProcs.get().GetHintBoolean(name, def)
}

// ResetHint puts a hint back to its default value.
func ResetHint(name string) error {
	if !hintProcs.get().ResetHint(name) {
		return lastErr()
	}
	return nil
}

// ResetHints puts every hint back to its default value.
func ResetHints() {
	hintProcs.get().ResetHints()
}
