package sdl

// PowerState describes the battery situation reported by the OS.
type PowerState int32

const (
	POWERSTATE_ERROR      PowerState = -1 // error determining power status
	POWERSTATE_UNKNOWN    PowerState = 0  // cannot determine power status
	POWERSTATE_ON_BATTERY PowerState = 1  // not plugged in, running on battery
	POWERSTATE_NO_BATTERY PowerState = 2  // plugged in, no battery available
	POWERSTATE_CHARGING   PowerState = 3  // plugged in, battery charging
	POWERSTATE_CHARGED    PowerState = 4  // plugged in, battery fully charged
)

func (s PowerState) String() string {
	switch s {
	case POWERSTATE_ON_BATTERY:
		return "on battery"
	case POWERSTATE_NO_BATTERY:
		return "no battery"
	case POWERSTATE_CHARGING:
		return "charging"
	case POWERSTATE_CHARGED:
		return "charged"
	case POWERSTATE_ERROR:
		return "error"
	}
	return "unknown"
}

type powerFns struct {
	GetPowerInfo func(*int32, *int32) PowerState `ffi:"SDL_GetPowerInfo"`
}

var powerProcs procs[powerFns]

// GetPowerInfo returns the battery state plus seconds and percent of
// charge remaining. Either figure is -1 when the platform cannot tell.
func GetPowerInfo() (state PowerState, seconds, percent int, err error) {
	var secs, pct int32
	state = powerProcs.get().GetPowerInfo(&secs, &pct)
	if state == POWERSTATE_ERROR {
		return state, -1, -1, lastErr()
	}
	return state, int(secs), int(pct), nil
}
