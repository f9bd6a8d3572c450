package sdl

type clipboardFns struct {
	SetClipboardText        func(string) bool `ffi:"SDL_SetClipboardText"`
	GetClipboardText        func() *byte      `ffi:"SDL_GetClipboardText"`
	HasClipboardText        func() bool       `ffi:"SDL_HasClipboardText"`
	SetPrimarySelectionText func(string) bool `ffi:"SDL_SetPrimarySelectionText"`
	GetPrimarySelectionText func() *byte      `ffi:"SDL_GetPrimarySelectionText"`
	HasPrimarySelectionText func() bool       `ffi:"SDL_HasPrimarySelectionText"`
}

var clipboardProcs procs[clipboardFns]

// SetClipboardText puts UTF-8 text on the clipboard.
func SetClipboardText(text string) error {
	if !clipboardProcs.get().SetClipboardText(text) {
		return lastErr()
	}
	return nil
}

// GetClipboardText returns the clipboard's text, "" when empty.
func GetClipboardText() string {
	return takeString(clipboardProcs.get().GetClipboardText())
}

// HasClipboardText reports whether the clipboard holds non-empty text.
func HasClipboardText() bool {
	return clipboardProcs.get().HasClipboardText()
}

// SetPrimarySelectionText puts text in the X11 primary selection.
func SetPrimarySelectionText(text string) error {
	if !clipboardProcs.get().SetPrimarySelectionText(text) {
		return lastErr()
	}
	return nil
}

// GetPrimarySelectionText returns the primary selection's text.
func GetPrimarySelectionText() string {
	return takeString(clipboardProcs.get().GetPrimarySelectionText())
}

// HasPrimarySelectionText reports whether the primary selection holds
// non-empty text.
func HasPrimarySelectionText() bool {
	return clipboardProcs.get().HasPrimarySelectionText()
}
