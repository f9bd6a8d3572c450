package sdl

import "errors"

type errorFns struct {
	GetError    func() string `ffi:"SDL_GetError"`
	ClearError  func() bool   `ffi:"SDL_ClearError"`
	OutOfMemory func() bool   `ffi:"SDL_OutOfMemory"`
}

var errProcs procs[errorFns]

// GetError returns the message from the last failed native call on the
// current thread, or an empty string if there is none.
func GetError() string {
	return errProcs.get().GetError()
}

// ClearError empties SDL's error slot.
func ClearError() {
	errProcs.get().ClearError()
}

// OutOfMemory marks the error slot with SDL's standard out-of-memory
// message.
func OutOfMemory() {
	errProcs.get().OutOfMemory()
}

// lastErr converts the current SDL error slot into a Go error. Called
// immediately after a native call reports failure, so the slot still holds
// the message for that call.
func lastErr() error {
	msg := GetError()
	if msg == "" {
		msg = "unknown error"
	}
	return errors.New("sdl: " + msg)
}
