package sdl

import (
	"sync"

	"github.com/ebitengine/purego"
)

// TimerID identifies a running timer.
type TimerID uint32

// TimerCallback runs on the timer thread each time a timer fires. It
// returns the next interval in milliseconds, or 0 to cancel the timer.
type TimerCallback func(interval uint32) uint32

// Time conversion helpers matching the native unit macros.
const (
	NS_PER_MS = 1000000
	NS_PER_US = 1000
)

type timerFns struct {
	GetTicks                func() uint64                          `ffi:"SDL_GetTicks"`
	GetTicksNS              func() uint64                          `ffi:"SDL_GetTicksNS"`
	Delay                   func(uint32)                           `ffi:"SDL_Delay"`
	DelayNS                 func(uint64)                           `ffi:"SDL_DelayNS"`
	DelayPrecise            func(uint64)                           `ffi:"SDL_DelayPrecise"`
	GetPerformanceCounter   func() uint64                          `ffi:"SDL_GetPerformanceCounter"`
	GetPerformanceFrequency func() uint64                          `ffi:"SDL_GetPerformanceFrequency"`
	AddTimer                func(uint32, uintptr, uintptr) TimerID `ffi:"SDL_AddTimer"`
	RemoveTimer             func(TimerID) bool                     `ffi:"SDL_RemoveTimer"`
}

var timerProcs procs[timerFns]

// GetTicks returns milliseconds since library init.
func GetTicks() uint64 {
	return timerProcs.get().GetTicks()
}

// GetTicksNS returns nanoseconds since library init.
func GetTicksNS() uint64 {
	return timerProcs.get().GetTicksNS()
}

// Delay sleeps for at least ms milliseconds.
func Delay(ms uint32) {
	timerProcs.get().Delay(ms)
}

// DelayNS sleeps for at least ns nanoseconds.
func DelayNS(ns uint64) {
	timerProcs.get().DelayNS(ns)
}

// DelayPrecise sleeps for ns nanoseconds, trading CPU for accuracy near
// the deadline.
func DelayPrecise(ns uint64) {
	timerProcs.get().DelayPrecise(ns)
}

// GetPerformanceCounter returns the high-resolution counter value.
func GetPerformanceCounter() uint64 {
	return timerProcs.get().GetPerformanceCounter()
}

// GetPerformanceFrequency returns counter ticks per second.
func GetPerformanceFrequency() uint64 {
	return timerProcs.get().GetPerformanceFrequency()
}

// Timer callbacks registered through AddTimer, keyed by the userdata
// value handed to the native side, with a TimerID index so RemoveTimer
// can prune its entry. One shared trampoline dispatches.
var (
	timerMu      sync.Mutex
	timerFuncs   = map[uintptr]TimerCallback{}
	timerKeys    = map[TimerID]uintptr{}
	timerNextKey uintptr
	timerTramp   uintptr
)

// timerRegister stores fn under a fresh key.
func timerRegister(fn TimerCallback) uintptr {
	timerMu.Lock()
	defer timerMu.Unlock()
	timerNextKey++
	timerFuncs[timerNextKey] = fn
	return timerNextKey
}

// timerBind indexes a registered key by the timer the native side
// assigned it.
func timerBind(id TimerID, key uintptr) {
	timerMu.Lock()
	timerKeys[id] = key
	timerMu.Unlock()
}

// timerForget drops a timer's callback and its TimerID index.
func timerForget(id TimerID, key uintptr) {
	timerMu.Lock()
	delete(timerFuncs, key)
	delete(timerKeys, id)
	timerMu.Unlock()
}

// timerFire dispatches one trampoline invocation. A callback that
// cancels by returning 0 is forgotten here; the native side stops the
// timer on its own.
func timerFire(userdata uintptr, id uint32, interval uint32) uint32 {
	timerMu.Lock()
	fn := timerFuncs[userdata]
	timerMu.Unlock()
	if fn == nil {
		return 0
	}
	next := fn(interval)
	if next == 0 {
		timerForget(TimerID(id), userdata)
	}
	return next
}

func timerTrampoline() uintptr {
	timerMu.Lock()
	defer timerMu.Unlock()
	if timerTramp == 0 {
		timerTramp = purego.NewCallback(timerFire)
	}
	return timerTramp
}

// AddTimer schedules fn to run on the timer thread after interval
// milliseconds, then repeatedly at whatever interval fn returns.
func AddTimer(interval uint32, fn TimerCallback) (TimerID, error) {
	tramp := timerTrampoline()
	key := timerRegister(fn)

	id := timerProcs.get().AddTimer(interval, tramp, key)
	if id == 0 {
		timerForget(0, key)
		return 0, lastErr()
	}
	timerBind(id, key)
	return id, nil
}

// RemoveTimer cancels a timer and forgets its callback. The callback may
// still be mid-run on the timer thread.
func RemoveTimer(id TimerID) error {
	timerMu.Lock()
	key, ok := timerKeys[id]
	timerMu.Unlock()
	if ok {
		timerForget(id, key)
	}
	if !timerProcs.get().RemoveTimer(id) {
		return lastErr()
	}
	return nil
}
