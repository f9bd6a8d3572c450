package sdl

import "unsafe"

// HapticID identifies a connected haptic device.
type HapticID uint32

// Haptic is an opaque handle to an opened haptic device.
type Haptic struct{}

// Haptic effect types and device feature bits.
const (
	HAPTIC_CONSTANT     uint32 = 1 << 0
	HAPTIC_SINE         uint32 = 1 << 1
	HAPTIC_SQUARE       uint32 = 1 << 2
	HAPTIC_TRIANGLE     uint32 = 1 << 3
	HAPTIC_SAWTOOTHUP   uint32 = 1 << 4
	HAPTIC_SAWTOOTHDOWN uint32 = 1 << 5
	HAPTIC_RAMP         uint32 = 1 << 6
	HAPTIC_SPRING       uint32 = 1 << 7
	HAPTIC_DAMPER       uint32 = 1 << 8
	HAPTIC_INERTIA      uint32 = 1 << 9
	HAPTIC_FRICTION     uint32 = 1 << 10
	HAPTIC_LEFTRIGHT    uint32 = 1 << 11
	HAPTIC_CUSTOM       uint32 = 1 << 15
	HAPTIC_GAIN         uint32 = 1 << 16
	HAPTIC_AUTOCENTER   uint32 = 1 << 17
	HAPTIC_STATUS       uint32 = 1 << 18
	HAPTIC_PAUSE        uint32 = 1 << 19
)

// Direction encodings for HapticDirection.Type.
const (
	HAPTIC_POLAR         uint8 = 0
	HAPTIC_CARTESIAN     uint8 = 1
	HAPTIC_SPHERICAL     uint8 = 2
	HAPTIC_STEERING_AXIS uint8 = 3
)

// HAPTIC_INFINITY makes an effect run until stopped.
const HAPTIC_INFINITY uint32 = 4294967295

// HapticDirection encodes the direction a force comes from.
type HapticDirection struct {
	Type uint8
	Dir  [3]int32
}

// HapticConstant applies a constant force in a direction. The envelope
// fields shape how the effect ramps in and out; they are interpreted by
// the device, not here.
type HapticConstant struct {
	Type      uint16
	Direction HapticDirection
	Length    uint32
	Delay     uint16
	Button    uint16
	Interval  uint16
	Level     int16

	AttackLength uint16
	AttackLevel  uint16
	FadeLength   uint16
	FadeLevel    uint16
}

// HapticPeriodic applies a force following a wave shape (sine, square,
// triangle or sawtooth, per Type).
type HapticPeriodic struct {
	Type      uint16
	Direction HapticDirection
	Length    uint32
	Delay     uint16
	Button    uint16
	Interval  uint16
	Period    uint16
	Magnitude int16
	Offset    int16
	Phase     uint16

	AttackLength uint16
	AttackLevel  uint16
	FadeLength   uint16
	FadeLevel    uint16
}

// HapticCondition applies a force depending on the position or motion of
// the axes (spring, damper, inertia, friction, per Type). Array entries
// are per axis.
type HapticCondition struct {
	Type      uint16
	Direction HapticDirection
	Length    uint32
	Delay     uint16
	Button    uint16
	Interval  uint16

	RightSat   [3]uint16
	LeftSat    [3]uint16
	RightCoeff [3]int16
	LeftCoeff  [3]int16
	Deadband   [3]uint16
	Center     [3]int16
}

// HapticRamp sweeps linearly from a start to an end force.
type HapticRamp struct {
	Type      uint16
	Direction HapticDirection
	Length    uint32
	Delay     uint16
	Button    uint16
	Interval  uint16
	Start     int16
	End       int16

	AttackLength uint16
	AttackLevel  uint16
	FadeLength   uint16
	FadeLevel    uint16
}

// HapticLeftRight drives the two rumble motors directly.
type HapticLeftRight struct {
	Type           uint16
	Length         uint32
	LargeMagnitude uint16
	SmallMagnitude uint16
}

// HapticCustom plays caller-supplied per-axis sample data. Data must stay
// alive until the effect is destroyed.
type HapticCustom struct {
	Type      uint16
	Direction HapticDirection
	Length    uint32
	Delay     uint16
	Button    uint16
	Interval  uint16
	Channels  uint8
	Period    uint16
	Samples   uint16
	Data      *uint16

	AttackLength uint16
	AttackLevel  uint16
	FadeLength   uint16
	FadeLevel    uint16
}

// HapticEffect is the native effect union, sized and aligned to hold any
// member. Build one with the Set methods; the leading Type field tags
// which member is live.
type HapticEffect struct {
	Type uint16
	_    [6]byte
	_    [8]uint64
}

// SetConstant makes e a constant-force effect.
func (e *HapticEffect) SetConstant(c *HapticConstant) {
	*e = HapticEffect{}
	*(*HapticConstant)(unsafe.Pointer(e)) = *c
}

// SetPeriodic makes e a wave effect.
func (e *HapticEffect) SetPeriodic(p *HapticPeriodic) {
	*e = HapticEffect{}
	*(*HapticPeriodic)(unsafe.Pointer(e)) = *p
}

// SetCondition makes e an axis-condition effect.
func (e *HapticEffect) SetCondition(c *HapticCondition) {
	*e = HapticEffect{}
	*(*HapticCondition)(unsafe.Pointer(e)) = *c
}

// SetRamp makes e a ramp effect.
func (e *HapticEffect) SetRamp(r *HapticRamp) {
	*e = HapticEffect{}
	*(*HapticRamp)(unsafe.Pointer(e)) = *r
}

// SetLeftRight makes e a direct motor effect.
func (e *HapticEffect) SetLeftRight(lr *HapticLeftRight) {
	*e = HapticEffect{}
	*(*HapticLeftRight)(unsafe.Pointer(e)) = *lr
}

// SetCustom makes e a sampled effect.
func (e *HapticEffect) SetCustom(c *HapticCustom) {
	*e = HapticEffect{}
	*(*HapticCustom)(unsafe.Pointer(e)) = *c
}

type hapticFns struct {
	GetHaptics             func(*int32) *HapticID                   `ffi:"SDL_GetHaptics"`
	GetHapticNameForID     func(HapticID) string                    `ffi:"SDL_GetHapticNameForID"`
	OpenHaptic             func(HapticID) *Haptic                   `ffi:"SDL_OpenHaptic"`
	GetHapticFromID        func(HapticID) *Haptic                   `ffi:"SDL_GetHapticFromID"`
	CloseHaptic            func(*Haptic)                            `ffi:"SDL_CloseHaptic"`
	GetHapticName          func(*Haptic) string                     `ffi:"SDL_GetHapticName"`
	IsMouseHaptic          func() bool                              `ffi:"SDL_IsMouseHaptic"`
	OpenHapticFromMouse    func() *Haptic                           `ffi:"SDL_OpenHapticFromMouse"`
	IsJoystickHaptic       func(*Joystick) bool                     `ffi:"SDL_IsJoystickHaptic"`
	OpenHapticFromJoystick func(*Joystick) *Haptic                  `ffi:"SDL_OpenHapticFromJoystick"`
	GetMaxHapticEffects    func(*Haptic) int32                      `ffi:"SDL_GetMaxHapticEffects"`
	GetHapticFeatures      func(*Haptic) uint32                     `ffi:"SDL_GetHapticFeatures"`
	GetNumHapticAxes       func(*Haptic) int32                      `ffi:"SDL_GetNumHapticAxes"`
	HapticEffectSupported  func(*Haptic, *HapticEffect) bool        `ffi:"SDL_HapticEffectSupported"`
	CreateHapticEffect     func(*Haptic, *HapticEffect) int32       `ffi:"SDL_CreateHapticEffect"`
	UpdateHapticEffect     func(*Haptic, int32, *HapticEffect) bool `ffi:"SDL_UpdateHapticEffect"`
	RunHapticEffect        func(*Haptic, int32, uint32) bool        `ffi:"SDL_RunHapticEffect"`
	StopHapticEffect       func(*Haptic, int32) bool                `ffi:"SDL_StopHapticEffect"`
	DestroyHapticEffect    func(*Haptic, int32)                     `ffi:"SDL_DestroyHapticEffect"`
	GetHapticEffectStatus  func(*Haptic, int32) bool                `ffi:"SDL_GetHapticEffectStatus"`
	SetHapticGain          func(*Haptic, int32) bool                `ffi:"SDL_SetHapticGain"`
	SetHapticAutocenter    func(*Haptic, int32) bool                `ffi:"SDL_SetHapticAutocenter"`
	PauseHaptic            func(*Haptic) bool                       `ffi:"SDL_PauseHaptic"`
	ResumeHaptic           func(*Haptic) bool                       `ffi:"SDL_ResumeHaptic"`
	StopHapticEffects      func(*Haptic) bool                       `ffi:"SDL_StopHapticEffects"`
	HapticRumbleSupported  func(*Haptic) bool                       `ffi:"SDL_HapticRumbleSupported"`
	InitHapticRumble       func(*Haptic) bool                       `ffi:"SDL_InitHapticRumble"`
	PlayHapticRumble       func(*Haptic, float32, uint32) bool      `ffi:"SDL_PlayHapticRumble"`
	StopHapticRumble       func(*Haptic) bool                       `ffi:"SDL_StopHapticRumble"`
}

var hapticProcs procs[hapticFns]

// GetHaptics returns the connected haptic devices.
func GetHaptics() ([]HapticID, error) {
	var n int32
	ptr := hapticProcs.get().GetHaptics(&n)
	if ptr == nil {
		return nil, lastErr()
	}
	return copyIDs(ptr, n), nil
}

// Name returns the device's name without opening it.
func (id HapticID) Name() string {
	return hapticProcs.get().GetHapticNameForID(id)
}

// Open opens the haptic device for use.
func (id HapticID) Open() (*Haptic, error) {
	h := hapticProcs.get().OpenHaptic(id)
	if h == nil {
		return nil, lastErr()
	}
	return h, nil
}

// GetHapticFromID returns the already-open device for an ID, or nil.
func GetHapticFromID(id HapticID) *Haptic {
	return hapticProcs.get().GetHapticFromID(id)
}

// Close releases the device.
func (h *Haptic) Close() {
	hapticProcs.get().CloseHaptic(h)
}

// Name returns the device's name.
func (h *Haptic) Name() string {
	return hapticProcs.get().GetHapticName(h)
}

// IsMouseHaptic reports whether the mouse has haptics.
func IsMouseHaptic() bool {
	return hapticProcs.get().IsMouseHaptic()
}

// OpenHapticFromMouse opens the mouse's haptic device.
func OpenHapticFromMouse() (*Haptic, error) {
	h := hapticProcs.get().OpenHapticFromMouse()
	if h == nil {
		return nil, lastErr()
	}
	return h, nil
}

// Haptic reports whether the joystick has haptics.
func (j *Joystick) Haptic() bool {
	return hapticProcs.get().IsJoystickHaptic(j)
}

// OpenHaptic opens the joystick's haptic device.
func (j *Joystick) OpenHaptic() (*Haptic, error) {
	h := hapticProcs.get().OpenHapticFromJoystick(j)
	if h == nil {
		return nil, lastErr()
	}
	return h, nil
}

// MaxEffects returns how many effects the device can store.
func (h *Haptic) MaxEffects() (int, error) {
	n := hapticProcs.get().GetMaxHapticEffects(h)
	if n < 0 {
		return 0, lastErr()
	}
	return int(n), nil
}

// Features returns the HAPTIC_* bits the device supports.
func (h *Haptic) Features() uint32 {
	return hapticProcs.get().GetHapticFeatures(h)
}

// NumAxes returns the number of force-feedback axes.
func (h *Haptic) NumAxes() (int, error) {
	n := hapticProcs.get().GetNumHapticAxes(h)
	if n < 0 {
		return 0, lastErr()
	}
	return int(n), nil
}

// EffectSupported reports whether the device can play the effect.
func (h *Haptic) EffectSupported(effect *HapticEffect) bool {
	return hapticProcs.get().HapticEffectSupported(h, effect)
}

// CreateEffect uploads an effect to the device and returns its slot.
func (h *Haptic) CreateEffect(effect *HapticEffect) (int, error) {
	id := hapticProcs.get().CreateHapticEffect(h, effect)
	if id < 0 {
		return -1, lastErr()
	}
	return int(id), nil
}

// UpdateEffect replaces a stored effect's parameters without changing its
// run state.
func (h *Haptic) UpdateEffect(effect int, data *HapticEffect) error {
	if !hapticProcs.get().UpdateHapticEffect(h, int32(effect), data) {
		return lastErr()
	}
	return nil
}

// RunEffect plays a stored effect. HAPTIC_INFINITY repeats until stopped.
func (h *Haptic) RunEffect(effect int, iterations uint32) error {
	if !hapticProcs.get().RunHapticEffect(h, int32(effect), iterations) {
		return lastErr()
	}
	return nil
}

// StopEffect halts one stored effect.
func (h *Haptic) StopEffect(effect int) error {
	if !hapticProcs.get().StopHapticEffect(h, int32(effect)) {
		return lastErr()
	}
	return nil
}

// DestroyEffect frees a stored effect's slot, stopping it if needed.
func (h *Haptic) DestroyEffect(effect int) {
	hapticProcs.get().DestroyHapticEffect(h, int32(effect))
}

// EffectPlaying reports whether a stored effect is currently running, on
// devices with HAPTIC_STATUS.
func (h *Haptic) EffectPlaying(effect int) bool {
	return hapticProcs.get().GetHapticEffectStatus(h, int32(effect))
}

// SetGain scales all effect strengths, 0 to 100.
func (h *Haptic) SetGain(gain int) error {
	if !hapticProcs.get().SetHapticGain(h, int32(gain)) {
		return lastErr()
	}
	return nil
}

// SetAutocenter sets self-centering strength, 0 to 100.
func (h *Haptic) SetAutocenter(autocenter int) error {
	if !hapticProcs.get().SetHapticAutocenter(h, int32(autocenter)) {
		return lastErr()
	}
	return nil
}

// Pause suspends playback. Do not upload or run effects while paused.
func (h *Haptic) Pause() error {
	if !hapticProcs.get().PauseHaptic(h) {
		return lastErr()
	}
	return nil
}

// Resume continues playback after Pause.
func (h *Haptic) Resume() error {
	if !hapticProcs.get().ResumeHaptic(h) {
		return lastErr()
	}
	return nil
}

// StopEffects halts every running effect.
func (h *Haptic) StopEffects() error {
	if !hapticProcs.get().StopHapticEffects(h) {
		return lastErr()
	}
	return nil
}

// RumbleSupported reports whether the simple rumble API works here.
func (h *Haptic) RumbleSupported() bool {
	return hapticProcs.get().HapticRumbleSupported(h)
}

// InitRumble prepares the simple rumble effect.
func (h *Haptic) InitRumble() error {
	if !hapticProcs.get().InitHapticRumble(h) {
		return lastErr()
	}
	return nil
}

// PlayRumble runs a rumble at a strength in [0, 1] for a duration.
func (h *Haptic) PlayRumble(strength float32, durationMS uint32) error {
	if !hapticProcs.get().PlayHapticRumble(h, strength, durationMS) {
		return lastErr()
	}
	return nil
}

// StopRumble halts the simple rumble effect.
func (h *Haptic) StopRumble() error {
	if !hapticProcs.get().StopHapticRumble(h) {
		return lastErr()
	}
	return nil
}
