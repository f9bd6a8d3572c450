package sdl

// PenID identifies a pen for the lifetime of its proximity to a tablet.
// Pens have no query API; all pen input arrives through EVENT_PEN_*
// events carrying these types.
type PenID uint32

// Synthetic device IDs used when pen events are simulated as mouse or
// touch input.
const (
	PEN_MOUSEID MouseID = 0xFFFFFFFE
	PEN_TOUCHID TouchID = 0xFFFFFFFFFFFFFFFE
)

// PenInputFlags is the pressed state carried by pen events.
type PenInputFlags uint32

const (
	PEN_INPUT_DOWN       PenInputFlags = 1 << 0
	PEN_INPUT_BUTTON_1   PenInputFlags = 1 << 1
	PEN_INPUT_BUTTON_2   PenInputFlags = 1 << 2
	PEN_INPUT_BUTTON_3   PenInputFlags = 1 << 3
	PEN_INPUT_BUTTON_4   PenInputFlags = 1 << 4
	PEN_INPUT_BUTTON_5   PenInputFlags = 1 << 5
	PEN_INPUT_ERASER_TIP PenInputFlags = 1 << 30
)

// PenAxis names the analog inputs reported by EVENT_PEN_AXIS.
type PenAxis int32

const (
	PEN_AXIS_PRESSURE PenAxis = iota
	PEN_AXIS_XTILT
	PEN_AXIS_YTILT
	PEN_AXIS_DISTANCE
	PEN_AXIS_ROTATION
	PEN_AXIS_SLIDER
	PEN_AXIS_TANGENTIAL_PRESSURE
	PEN_AXIS_COUNT
)
