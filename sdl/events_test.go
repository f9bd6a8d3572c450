package sdl

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

// The typed views reinterpret the event union in place, so writing
// through a view must be visible through the union and vice versa.

func TestKeyboardEventView(t *testing.T) {
	var e Event
	k := e.Key()
	k.Type = EVENT_KEY_DOWN
	k.Timestamp = 12345
	k.Scancode = SCANCODE_SPACE
	k.Key = K_SPACE
	k.Mod = KMOD_LSHIFT
	k.Down = true
	k.Repeat = false

	assert.Equal(t, EVENT_KEY_DOWN, e.Type)
	assert.Equal(t, uint64(12345), e.Timestamp)

	view := e.Key()
	assert.Equal(t, SCANCODE_SPACE, view.Scancode)
	assert.Equal(t, K_SPACE, view.Key)
	assert.True(t, view.Down)
	assert.False(t, view.Repeat)
}

func TestMouseButtonEventView(t *testing.T) {
	var e Event
	m := e.MouseButton()
	m.Type = EVENT_MOUSE_BUTTON_DOWN
	m.Button = BUTTON_LEFT
	m.Down = true
	m.Clicks = 2
	m.X = 100.5
	m.Y = 200.25

	assert.Equal(t, EVENT_MOUSE_BUTTON_DOWN, e.Type)
	assert.Equal(t, BUTTON_LEFT, e.MouseButton().Button)
	assert.Equal(t, uint8(2), e.MouseButton().Clicks)
	assert.Equal(t, float32(100.5), e.MouseButton().X)
}

func TestQuitEventView(t *testing.T) {
	var e Event
	e.Type = EVENT_QUIT
	assert.Equal(t, EVENT_QUIT, e.Common().Type)
}

func TestUserEventView(t *testing.T) {
	var e Event
	payload := 42
	u := e.User()
	u.Type = EVENT_USER
	u.Code = 7
	u.Data1 = unsafe.Pointer(&payload)

	assert.Equal(t, int32(7), e.User().Code)
	assert.Equal(t, 42, *(*int)(e.User().Data1))
}

func TestEventViewsShareStorage(t *testing.T) {
	var e Event
	e.Key().Type = EVENT_KEY_UP
	assert.Equal(t, EVENT_KEY_UP, e.Window().Type)

	// Rewriting through another view replaces the same bytes.
	e.Window().Type = EVENT_WINDOW_SHOWN
	assert.Equal(t, EVENT_WINDOW_SHOWN, e.Type)
}

func TestEventTypeRanges(t *testing.T) {
	assert.Equal(t, EventType(0x100), EVENT_QUIT)
	assert.Equal(t, EventType(0x300), EVENT_KEY_DOWN)
	assert.Equal(t, EventType(0x8000), EVENT_USER)
	assert.Less(t, EVENT_WINDOW_SHOWN, EVENT_KEY_DOWN)
}
