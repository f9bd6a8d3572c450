package sdl

import (
	"errors"
	"unsafe"
)

// GUID is a 128-bit identifier for an input device that is stable across
// runs. The same physical device reports the same GUID; two devices of the
// same model usually share one.
type GUID [16]byte

// guidRaw is the FFI wire form of GUID. The call layer passes and
// returns 16-byte structs in register pairs but not bare byte arrays.
type guidRaw struct{ lo, hi uint64 }

func (r guidRaw) guid() GUID { return *(*GUID)(unsafe.Pointer(&r)) }
func (g GUID) raw() guidRaw  { return *(*guidRaw)(unsafe.Pointer(&g)) }

const hexDigits = "0123456789abcdef"

// String renders the GUID as 32 lowercase hex digits, matching the native
// SDL_GUIDToString output.
func (g GUID) String() string {
	var buf [32]byte
	for i, b := range g {
		buf[i*2] = hexDigits[b>>4]
		buf[i*2+1] = hexDigits[b&0xf]
	}
	return string(buf[:])
}

// IsZero reports whether the GUID is all zeroes, the value SDL uses for
// "no GUID available".
func (g GUID) IsZero() bool {
	return g == GUID{}
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// GUIDFromString parses the 32-hex-digit form produced by String.
func GUIDFromString(s string) (GUID, error) {
	var g GUID
	if len(s) != 32 {
		return g, errors.New("sdl: GUID string must be 32 hex digits")
	}
	for i := 0; i < 16; i++ {
		hi, ok1 := hexNibble(s[i*2])
		lo, ok2 := hexNibble(s[i*2+1])
		if !ok1 || !ok2 {
			return GUID{}, errors.New("sdl: GUID string must be 32 hex digits")
		}
		g[i] = hi<<4 | lo
	}
	return g, nil
}
