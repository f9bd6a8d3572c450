package sdl

// Keycode identifies a key by what it produces under the current layout.
// Printable keys carry their lowercase Unicode value; everything else is
// its scancode with the scancode mask set.
type Keycode uint32

// K_SCANCODE_MASK marks keycodes derived from scancodes.
const K_SCANCODE_MASK Keycode = 1 << 30

// ScancodeToKeycode is the default mapping for keys with no printable
// value, mirroring the native SDL_SCANCODE_TO_KEYCODE macro.
func ScancodeToKeycode(sc Scancode) Keycode {
	return Keycode(sc) | K_SCANCODE_MASK
}

const (
	K_UNKNOWN   Keycode = 0x00
	K_RETURN    Keycode = 0x0d
	K_ESCAPE    Keycode = 0x1b
	K_BACKSPACE Keycode = 0x08
	K_TAB       Keycode = 0x09
	K_SPACE     Keycode = 0x20

	K_0 Keycode = 0x30
	K_1 Keycode = 0x31
	K_2 Keycode = 0x32
	K_3 Keycode = 0x33
	K_4 Keycode = 0x34
	K_5 Keycode = 0x35
	K_6 Keycode = 0x36
	K_7 Keycode = 0x37
	K_8 Keycode = 0x38
	K_9 Keycode = 0x39

	K_A Keycode = 0x61
	K_B Keycode = 0x62
	K_C Keycode = 0x63
	K_D Keycode = 0x64
	K_E Keycode = 0x65
	K_F Keycode = 0x66
	K_G Keycode = 0x67
	K_H Keycode = 0x68
	K_I Keycode = 0x69
	K_J Keycode = 0x6a
	K_K Keycode = 0x6b
	K_L Keycode = 0x6c
	K_M Keycode = 0x6d
	K_N Keycode = 0x6e
	K_O Keycode = 0x6f
	K_P Keycode = 0x70
	K_Q Keycode = 0x71
	K_R Keycode = 0x72
	K_S Keycode = 0x73
	K_T Keycode = 0x74
	K_U Keycode = 0x75
	K_V Keycode = 0x76
	K_W Keycode = 0x77
	K_X Keycode = 0x78
	K_Y Keycode = 0x79
	K_Z Keycode = 0x7a
)

// Keycodes for keys without printable values.
var (
	K_CAPSLOCK = ScancodeToKeycode(SCANCODE_CAPSLOCK)
	K_F1       = ScancodeToKeycode(SCANCODE_F1)
	K_F2       = ScancodeToKeycode(SCANCODE_F2)
	K_F3       = ScancodeToKeycode(SCANCODE_F3)
	K_F4       = ScancodeToKeycode(SCANCODE_F4)
	K_F5       = ScancodeToKeycode(SCANCODE_F5)
	K_F6       = ScancodeToKeycode(SCANCODE_F6)
	K_F7       = ScancodeToKeycode(SCANCODE_F7)
	K_F8       = ScancodeToKeycode(SCANCODE_F8)
	K_F9       = ScancodeToKeycode(SCANCODE_F9)
	K_F10      = ScancodeToKeycode(SCANCODE_F10)
	K_F11      = ScancodeToKeycode(SCANCODE_F11)
	K_F12      = ScancodeToKeycode(SCANCODE_F12)
	K_RIGHT    = ScancodeToKeycode(SCANCODE_RIGHT)
	K_LEFT     = ScancodeToKeycode(SCANCODE_LEFT)
	K_DOWN     = ScancodeToKeycode(SCANCODE_DOWN)
	K_UP       = ScancodeToKeycode(SCANCODE_UP)
	K_LCTRL    = ScancodeToKeycode(SCANCODE_LCTRL)
	K_LSHIFT   = ScancodeToKeycode(SCANCODE_LSHIFT)
	K_LALT     = ScancodeToKeycode(SCANCODE_LALT)
	K_LGUI     = ScancodeToKeycode(SCANCODE_LGUI)
	K_RCTRL    = ScancodeToKeycode(SCANCODE_RCTRL)
	K_RSHIFT   = ScancodeToKeycode(SCANCODE_RSHIFT)
	K_RALT     = ScancodeToKeycode(SCANCODE_RALT)
	K_RGUI     = ScancodeToKeycode(SCANCODE_RGUI)
)

// Keymod is a bitmask of active modifier keys.
type Keymod uint16

const (
	KMOD_NONE   Keymod = 0x0000
	KMOD_LSHIFT Keymod = 0x0001
	KMOD_RSHIFT Keymod = 0x0002
	KMOD_LCTRL  Keymod = 0x0040
	KMOD_RCTRL  Keymod = 0x0080
	KMOD_LALT   Keymod = 0x0100
	KMOD_RALT   Keymod = 0x0200
	KMOD_LGUI   Keymod = 0x0400
	KMOD_RGUI   Keymod = 0x0800
	KMOD_NUM    Keymod = 0x1000
	KMOD_CAPS   Keymod = 0x2000
	KMOD_MODE   Keymod = 0x4000
	KMOD_SCROLL Keymod = 0x8000

	KMOD_CTRL  = KMOD_LCTRL | KMOD_RCTRL
	KMOD_SHIFT = KMOD_LSHIFT | KMOD_RSHIFT
	KMOD_ALT   = KMOD_LALT | KMOD_RALT
	KMOD_GUI   = KMOD_LGUI | KMOD_RGUI
)
